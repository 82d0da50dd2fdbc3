package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/nextrip/internal/config"
	"github.com/mesh-intelligence/nextrip/internal/paths"
)

const configHeader = "# nextrip configuration\n# Environment variables NEXTRIP_<KEY> and flags take precedence.\n\n"

func (a *app) initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Long:  "Create the configuration directory and a default config.yaml. An existing file is left untouched.",
		Args:  cobra.NoArgs,
		RunE:  a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return &setupError{fmt.Errorf("resolve config dir: %w", err)}
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return &setupError{fmt.Errorf("create config directory: %w", err)}
	}

	path := paths.ConfigFile(configDir)
	written, err := writeConfigIfMissing(path)
	if err != nil {
		return &setupError{fmt.Errorf("write config: %w", err)}
	}

	if written {
		fmt.Fprintln(a.stdout, "Wrote", path)
	} else {
		fmt.Fprintln(a.stdout, "Config already exists at", path)
	}
	return nil
}

// writeConfigIfMissing creates path with default values if it does not
// exist. It reports whether a file was written.
func writeConfigIfMissing(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	cfg := config.Default()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
