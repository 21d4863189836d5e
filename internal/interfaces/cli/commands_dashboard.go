package cli

import (
	"context"
	"fmt"

	"github.com/riskibarqy/content-brain/internal/usecase"
)

func runDashboard(ctx context.Context, r *Runner, args []string) error {
	if err := parse(r.flags("dashboard"), args); err != nil {
		return err
	}
	if _, err := r.enter(ctx, usecase.RouteDashboard); err != nil {
		return err
	}

	dash, err := r.svc.Dashboard.ListProfiles(ctx)
	if err != nil {
		return err
	}
	renderDashboard(r.stdout, dash)
	return nil
}

func runGenerate(ctx context.Context, r *Runner, args []string) error {
	fs := r.flags("generate")
	profileID := fs.String("profile", "", "brand profile id")
	regenerate := fs.Bool("regenerate", false, "replace an existing calendar")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("profile", *profileID); err != nil {
		return err
	}
	if _, err := r.enter(ctx, usecase.RouteDashboard); err != nil {
		return err
	}

	result, err := r.svc.Dashboard.GenerateCalendar(ctx, *profileID, *regenerate)
	if err != nil {
		return fmt.Errorf("%w: %w", errReported, err)
	}
	if result.Offline {
		_, _ = fmt.Fprintln(r.stdout, "(offline: sample calendar generated)")
	}
	_, _ = fmt.Fprintf(r.stdout, "%d posts ready. Next: contentbrain %s\n", len(result.Posts), routeCommand(result.Redirect))
	return nil
}

func runDeleteProfile(ctx context.Context, r *Runner, args []string) error {
	fs := r.flags("delete-profile")
	profileID := fs.String("profile", "", "brand profile id")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("profile", *profileID); err != nil {
		return err
	}
	if _, err := r.enter(ctx, usecase.RouteDashboard); err != nil {
		return err
	}

	if !*yes {
		ok, err := r.prompt.Confirm(fmt.Sprintf("Delete brand profile %s and its calendar?", *profileID))
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(r.stdout, "Cancelled.")
			return nil
		}
	}
	if err := r.svc.Dashboard.DeleteProfile(ctx, *profileID); err != nil {
		return fmt.Errorf("%w: %w", errReported, err)
	}
	return nil
}
