package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/content-brain/internal/domain/user"
	"github.com/riskibarqy/content-brain/internal/platform/logging"
)

const MinPasswordLength = 8

type ForgotPasswordInput struct {
	Email string `validate:"required,email" label:"Email"`
}

// Requirement is one line of the password strength checklist.
type Requirement struct {
	Text string
	Met  bool
}

// PasswordRequirements is informational only; Reset enforces length and match.
func PasswordRequirements(password, confirm string) []Requirement {
	return []Requirement{
		{Text: "At least 8 characters", Met: len(password) >= MinPasswordLength},
		{Text: "Contains a number", Met: strings.ContainsFunc(password, unicode.IsDigit)},
		{Text: "Contains uppercase", Met: strings.ContainsFunc(password, unicode.IsUpper)},
		{Text: "Passwords match", Met: password != "" && password == confirm},
	}
}

type PasswordService struct {
	recovery user.PasswordRecovery
	notifier Notifier
	validate *validator.Validate
	logger   *logging.Logger
}

func NewPasswordService(recovery user.PasswordRecovery, notifier Notifier, logger *logging.Logger) *PasswordService {
	return &PasswordService{
		recovery: recovery,
		notifier: notifierOrNop(notifier),
		validate: newValidator(),
		logger:   logging.OrDefault(logger).With("component", "password"),
	}
}

func (s *PasswordService) Forgot(ctx context.Context, email string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PasswordService.Forgot")
	defer span.End()

	input := ForgotPasswordInput{Email: strings.TrimSpace(email)}
	if input.Email == "" {
		s.notifier.Notify(ctx, failureToast("Error", "Please enter your email address"))
		return &ValidationError{Field: "Email", Message: "Please enter your email address"}
	}
	if err := validateForm(ctx, s.validate, input); err != nil {
		s.notifier.Notify(ctx, failureToast("Error", MessageOr(err, "Failed to send reset email")))
		return err
	}

	if _, err := s.recovery.ForgotPassword(ctx, input.Email); err != nil {
		recordSpanError(span, err)
		s.logger.WarnContext(ctx, "forgot password failed", "error", err)
		s.notifier.Notify(ctx, failureToast("Error", MessageOr(err, "Failed to send reset email")))
		return fmt.Errorf("forgot password: %w", err)
	}

	s.notifier.Notify(ctx, toast("Email sent!", "Check your inbox for password reset instructions."))
	return nil
}

// VerifyResetToken reports the email the token belongs to.
func (s *PasswordService) VerifyResetToken(ctx context.Context, token string) (user.ResetTokenStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PasswordService.VerifyResetToken")
	defer span.End()

	if strings.TrimSpace(token) == "" {
		s.notifier.Notify(ctx, failureToast("Invalid link", "Password reset link is invalid or missing"))
		return user.ResetTokenStatus{}, fmt.Errorf("%w: reset token is missing", ErrInvalidInput)
	}

	status, err := s.recovery.VerifyResetToken(ctx, token)
	if err == nil && !status.Valid {
		err = fmt.Errorf("%w: reset token rejected", ErrInvalidInput)
	}
	if err != nil {
		recordSpanError(span, err)
		s.notifier.Notify(ctx, failureToast("Invalid or expired link", "This password reset link is invalid or has expired"))
		return user.ResetTokenStatus{}, fmt.Errorf("verify reset token: %w", err)
	}
	return status, nil
}

// Reset sets a new password. It returns the route to continue on.
func (s *PasswordService) Reset(ctx context.Context, token, password, confirm string) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PasswordService.Reset")
	defer span.End()

	if msg := resetProblem(password, confirm); msg != "" {
		s.notifier.Notify(ctx, failureToast("Error", msg))
		return "", &ValidationError{Field: "Password", Message: msg}
	}

	if _, err := s.recovery.ResetPassword(ctx, token, password); err != nil {
		recordSpanError(span, err)
		s.logger.WarnContext(ctx, "reset password failed", "error", err)
		s.notifier.Notify(ctx, failureToast("Error", MessageOr(err, "Failed to reset password")))
		return "", fmt.Errorf("reset password: %w", err)
	}

	s.notifier.Notify(ctx, toast("Success!", "Your password has been reset successfully"))
	return RouteLogin, nil
}

func resetProblem(password, confirm string) string {
	switch {
	case password == "" || confirm == "":
		return "Please fill in all fields"
	case len(password) < MinPasswordLength:
		return "Password must be at least 8 characters"
	case password != confirm:
		return "Passwords do not match"
	default:
		return ""
	}
}
