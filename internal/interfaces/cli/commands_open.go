package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
)

func runOpen(ctx context.Context, r *Runner, args []string) error {
	fs := r.flags("open")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usagef(err.Error())
	}
	if fs.NArg() != 1 {
		return usagef("usage: contentbrain open <path>")
	}

	dest, err := r.enter(ctx, fs.Arg(0))
	if err != nil && dest.Name != RouteNameLogin {
		return err
	}
	if dest.Redirected {
		_, _ = fmt.Fprintf(r.stdout, "%s requires sign in. Next: contentbrain %s\n", fs.Arg(0), routeCommand(dest.Path))
		return err
	}
	_, _ = fmt.Fprintf(r.stdout, "%s -> %s. Next: contentbrain %s\n", dest.Path, dest.Name, routeCommand(dest.Path))
	return nil
}

// routeCommand names the command that shows the page at path.
func routeCommand(path string) string {
	dest := NewNavigator().Resolve(path, true)
	switch dest.Name {
	case RouteNameCalendar:
		return "calendar --profile " + dest.Vars["profileId"]
	case RouteNameProfileEdit:
		return "edit-profile --profile " + dest.Vars["profileId"]
	case RouteNameHome, RouteNameDashboard:
		return "dashboard"
	case RouteNameLinkedIn:
		return "dashboard (LinkedIn connect is not available yet)"
	case RouteNameNotFound:
		return "help"
	default:
		return dest.Name
	}
}
