package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/nextrip/pkg/types"
)

// stageMessage renders a pipeline failure the way users see it. The text is
// the same whether the provider was unreachable or simply had no match.
func stageMessage(err error) (string, bool) {
	var se *types.StageError
	if !errors.As(err, &se) {
		return "", false
	}

	switch {
	case errors.Is(se, types.ErrRouteNotFound):
		return fmt.Sprintf("Cannot find route : %s", se.Subject), true
	case errors.Is(se, types.ErrDirectionNotFound):
		return fmt.Sprintf("Cannot find direction for this route: %s", se.Subject), true
	case errors.Is(se, types.ErrStopNotFound):
		msg := fmt.Sprintf("Cannot find stop for this route and direction: %s", se.Subject)
		if se.Candidates != nil {
			msg = fmt.Sprintf("Not found... Available stops for this route and direction are: %s\n%s",
				strings.Join(se.Candidates, ", "), msg)
		}
		return msg, true
	case errors.Is(se, types.ErrDepartureNotFound):
		return "Cannot find time for this route and direction and stop", true
	default:
		return se.Error(), true
	}
}
