package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/content-brain/internal/platform/logging"
)

type AccountForm struct {
	Name  string `validate:"required" label:"Name"`
	Email string `validate:"required,email" label:"Email"`
}

type PasswordChangeForm struct {
	CurrentPassword string `validate:"required" label:"Current password"`
	NewPassword     string `validate:"min=8" label:"Password"`
	ConfirmPassword string `validate:"eqfield=NewPassword" label:"Confirm password"`
}

type NotificationPreferences struct {
	EmailDigest   bool
	PostReminders bool
	WeeklyReport  bool
}

func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{EmailDigest: true, PostReminders: true}
}

// SettingsService holds the account settings screen. There is no backend
// endpoint for these forms; they validate and acknowledge locally.
type SettingsService struct {
	session  *SessionService
	notifier Notifier
	validate *validator.Validate
	logger   *logging.Logger

	mu      sync.Mutex
	account AccountForm
	prefs   NotificationPreferences
}

func NewSettingsService(session *SessionService, notifier Notifier, logger *logging.Logger) *SettingsService {
	return &SettingsService{
		session:  session,
		notifier: notifierOrNop(notifier),
		validate: newValidator(),
		logger:   logging.OrDefault(logger).With("component", "settings"),
		prefs:    DefaultNotificationPreferences(),
	}
}

// Account returns the edited form, prefilled from the signed in user until
// the first update.
func (s *SettingsService) Account() AccountForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.account == (AccountForm{}) {
		if u := s.session.State().User; u != nil {
			s.account = AccountForm{Name: u.Name, Email: u.Email}
		}
	}
	return s.account
}

func (s *SettingsService) Preferences() NotificationPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

func (s *SettingsService) UpdateAccount(ctx context.Context, form AccountForm) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettingsService.UpdateAccount")
	defer span.End()

	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	if err := validateForm(ctx, s.validate, form); err != nil {
		s.notifier.Notify(ctx, failureToast("Error", MessageOr(err, "Failed to update profile")))
		return err
	}

	s.mu.Lock()
	s.account = form
	s.mu.Unlock()
	s.notifier.Notify(ctx, toast("Profile updated", "Your profile has been updated successfully."))
	return nil
}

func (s *SettingsService) ChangePassword(ctx context.Context, form PasswordChangeForm) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettingsService.ChangePassword")
	defer span.End()

	if err := validateForm(ctx, s.validate, form); err != nil {
		s.notifier.Notify(ctx, failureToast("Error", MessageOr(err, "Failed to update password")))
		return err
	}
	s.notifier.Notify(ctx, toast("Password updated", "Your password has been changed successfully."))
	return nil
}

func (s *SettingsService) SavePreferences(ctx context.Context, prefs NotificationPreferences) {
	s.mu.Lock()
	s.prefs = prefs
	s.mu.Unlock()
	s.logger.DebugContext(ctx, "notification preferences saved",
		"email_digest", prefs.EmailDigest,
		"post_reminders", prefs.PostReminders,
		"weekly_report", prefs.WeeklyReport,
	)
	s.notifier.Notify(ctx, toast("Preferences saved", ""))
}

func (s *SettingsService) Logout(ctx context.Context) string {
	s.session.Logout(ctx)
	return RouteLogin
}

// DeleteAccount signs out locally. No account deletion endpoint exists.
func (s *SettingsService) DeleteAccount(ctx context.Context) string {
	s.session.Logout(ctx)
	s.notifier.Notify(ctx, toast("Account deleted", "Your account has been deleted."))
	return RouteLogin
}
