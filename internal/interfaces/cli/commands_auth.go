package cli

import (
	"context"
	"fmt"

	"github.com/riskibarqy/content-brain/internal/usecase"
)

func runLogin(ctx context.Context, r *Runner, args []string) error {
	fs := r.flags("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := parse(fs, args); err != nil {
		return err
	}

	var err error
	if *email, err = r.value(*email, "Email"); err != nil {
		return err
	}
	if *password, err = r.value(*password, "Password"); err != nil {
		return err
	}
	if !r.svc.Auth.Login(ctx, *email, *password) {
		return errReported
	}
	_, _ = fmt.Fprintf(r.stdout, "Next: contentbrain %s\n", RouteNameDashboard)
	return nil
}

func runRegister(ctx context.Context, r *Runner, args []string) error {
	fs := r.flags("register")
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "password, at least 8 characters")
	if err := parse(fs, args); err != nil {
		return err
	}

	var err error
	if *name, err = r.value(*name, "Name"); err != nil {
		return err
	}
	if *email, err = r.value(*email, "Email"); err != nil {
		return err
	}
	if *password, err = r.value(*password, "Password"); err != nil {
		return err
	}
	if !r.svc.Auth.Register(ctx, *name, *email, *password) {
		return errReported
	}
	_, _ = fmt.Fprintf(r.stdout, "Next: contentbrain %s\n", RouteNameOnboarding)
	return nil
}

func runLogout(ctx context.Context, r *Runner, args []string) error {
	if err := parse(r.flags("logout"), args); err != nil {
		return err
	}
	r.svc.Auth.Logout(ctx)
	return nil
}

func runWhoami(_ context.Context, r *Runner, args []string) error {
	if err := parse(r.flags("whoami"), args); err != nil {
		return err
	}
	u, err := r.svc.Auth.RequireUser()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(r.stdout, "%s <%s> (id %s)\n", u.Name, u.Email, u.ID)
	return nil
}

func runForgotPassword(ctx context.Context, r *Runner, args []string) error {
	fs := r.flags("forgot-password")
	email := fs.String("email", "", "account email")
	if err := parse(fs, args); err != nil {
		return err
	}
	if _, err := r.enter(ctx, usecase.RouteForgotPassword); err != nil {
		return err
	}

	var err error
	if *email, err = r.value(*email, "Email"); err != nil {
		return err
	}
	if err := r.svc.Password.Forgot(ctx, *email); err != nil {
		return fmt.Errorf("%w: %w", errReported, err)
	}
	return nil
}

func runResetPassword(ctx context.Context, r *Runner, args []string) error {
	fs := r.flags("reset-password")
	token := fs.String("token", "", "reset token from the email link")
	password := fs.String("password", "", "new password")
	confirm := fs.String("confirm", "", "new password again")
	if err := parse(fs, args); err != nil {
		return err
	}
	if _, err := r.enter(ctx, usecase.RouteResetPassword); err != nil {
		return err
	}
	if err := required("token", *token); err != nil {
		return err
	}

	status, err := r.svc.Password.VerifyResetToken(ctx, *token)
	if err != nil {
		return fmt.Errorf("%w: %w", errReported, err)
	}
	if status.Email != "" {
		_, _ = fmt.Fprintf(r.stdout, "Resetting password for %s\n", status.Email)
	}

	if *password, err = r.value(*password, "New password"); err != nil {
		return err
	}
	if *confirm, err = r.value(*confirm, "Confirm password"); err != nil {
		return err
	}
	renderRequirements(r.stdout, usecase.PasswordRequirements(*password, *confirm))

	next, err := r.svc.Password.Reset(ctx, *token, *password, *confirm)
	if err != nil {
		return fmt.Errorf("%w: %w", errReported, err)
	}
	_, _ = fmt.Fprintf(r.stdout, "Next: contentbrain %s\n", routeCommand(next))
	return nil
}
