package cli

import (
	"context"
	"fmt"

	"github.com/riskibarqy/content-brain/internal/usecase"
)

func runSettings(ctx context.Context, r *Runner, args []string) error {
	fs := r.flags("settings")
	name := fs.String("name", "", "new display name")
	email := fs.String("email", "", "new email")
	current := fs.String("current-password", "", "current password")
	next := fs.String("new-password", "", "new password, at least 8 characters")
	confirm := fs.String("confirm-password", "", "repeat the new password")
	emailDigest := fs.Bool("email-digest", false, "receive the email digest")
	reminders := fs.Bool("post-reminders", false, "receive post reminders")
	weekly := fs.Bool("weekly-report", false, "receive the weekly report")
	logout := fs.Bool("logout", false, "sign out")
	deleteAccount := fs.Bool("delete-account", false, "delete the account")
	yes := fs.Bool("yes", false, "skip the delete confirmation")
	if err := parse(fs, args); err != nil {
		return err
	}
	if _, err := r.enter(ctx, usecase.RouteSettings); err != nil {
		return err
	}
	set := visited(fs)
	settings := r.svc.Settings

	switch {
	case *deleteAccount:
		if !*yes {
			ok, err := r.prompt.Confirm("Delete your account? This cannot be undone")
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
		_, _ = fmt.Fprintf(r.stdout, "Next: contentbrain %s\n", routeCommand(settings.DeleteAccount(ctx)))
		return nil
	case *logout:
		_, _ = fmt.Fprintf(r.stdout, "Next: contentbrain %s\n", routeCommand(settings.Logout(ctx)))
		return nil
	}

	if set["name"] || set["email"] {
		form := settings.Account()
		if set["name"] {
			form.Name = *name
		}
		if set["email"] {
			form.Email = *email
		}
		if err := settings.UpdateAccount(ctx, form); err != nil {
			return fmt.Errorf("%w: %w", errReported, err)
		}
	}

	if set["current-password"] || set["new-password"] || set["confirm-password"] {
		err := settings.ChangePassword(ctx, usecase.PasswordChangeForm{
			CurrentPassword: *current,
			NewPassword:     *next,
			ConfirmPassword: *confirm,
		})
		if err != nil {
			return fmt.Errorf("%w: %w", errReported, err)
		}
	}

	if set["email-digest"] || set["post-reminders"] || set["weekly-report"] {
		prefs := settings.Preferences()
		if set["email-digest"] {
			prefs.EmailDigest = *emailDigest
		}
		if set["post-reminders"] {
			prefs.PostReminders = *reminders
		}
		if set["weekly-report"] {
			prefs.WeeklyReport = *weekly
		}
		settings.SavePreferences(ctx, prefs)
	}

	account := settings.Account()
	prefs := settings.Preferences()
	c := newCard()
	c.line("Account")
	c.field("Name", account.Name)
	c.field("Email", account.Email)
	c.line("Notifications")
	c.field("Email digest", onOff(prefs.EmailDigest))
	c.field("Reminders", onOff(prefs.PostReminders))
	c.field("Weekly report", onOff(prefs.WeeklyReport))
	c.flush(r.stdout)
	return nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
