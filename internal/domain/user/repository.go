package user

import "context"

// Authenticator is the remote session boundary.
type Authenticator interface {
	Register(ctx context.Context, name, email, password string) (Session, error)
	Login(ctx context.Context, email, password string) (Session, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (User, error)
}

// PasswordRecovery covers the forgot/reset password endpoints.
type PasswordRecovery interface {
	ForgotPassword(ctx context.Context, email string) (string, error)
	VerifyResetToken(ctx context.Context, token string) (ResetTokenStatus, error)
	ResetPassword(ctx context.Context, token, password string) (string, error)
}
