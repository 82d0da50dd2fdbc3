// Package main provides the nextrip CLI.
package main

import "github.com/mesh-intelligence/nextrip/internal/cli"

func main() {
	cli.Execute()
}
