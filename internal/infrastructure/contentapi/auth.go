package contentapi

import (
	"context"
	"net/http"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/content-brain/internal/domain/user"
	"github.com/riskibarqy/content-brain/internal/usecase"
)

// AuthClient implements user.Authenticator and user.PasswordRecovery.
type AuthClient struct {
	client *Client
}

func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	User  userDTO `json:"user"`
	Token string  `json:"token"`
}

type userResponse struct {
	User *userDTO `json:"user"`
}

func (a *AuthClient) Register(ctx context.Context, name, email, password string) (user.Session, error) {
	var resp sessionResponse
	if err := a.client.do(ctx, http.MethodPost, "/auth/register", registerRequest{Name: name, Email: email, Password: password}, &resp); err != nil {
		return user.Session{}, err
	}
	a.client.SetToken(resp.Token)
	return user.Session{User: resp.User.toDomain(), Token: resp.Token}, nil
}

func (a *AuthClient) Login(ctx context.Context, email, password string) (user.Session, error) {
	var resp sessionResponse
	if err := a.client.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return user.Session{}, err
	}
	a.client.SetToken(resp.Token)
	return user.Session{User: resp.User.toDomain(), Token: resp.Token}, nil
}

// Logout forgets the bearer token whether or not the call succeeds.
func (a *AuthClient) Logout(ctx context.Context) error {
	defer a.client.SetToken("")
	return a.client.do(ctx, http.MethodPost, "/auth/logout", nil, &messageResponse{})
}

func (a *AuthClient) CurrentUser(ctx context.Context) (user.User, error) {
	var resp userResponse
	if err := a.client.do(ctx, http.MethodGet, "/users", nil, &resp); err != nil {
		return user.User{}, err
	}
	if resp.User == nil || strings.TrimSpace(string(resp.User.ID)) == "" {
		return user.User{}, &usecase.RequestError{Status: http.StatusUnauthorized, Err: crerr.New("current user response has no user")}
	}
	return resp.User.toDomain(), nil
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type verifyTokenResponse struct {
	Valid bool   `json:"valid"`
	Email string `json:"email"`
}

func (a *AuthClient) ForgotPassword(ctx context.Context, email string) (string, error) {
	var resp messageResponse
	if err := a.client.do(ctx, http.MethodPost, "/password/forgot-password", forgotPasswordRequest{Email: email}, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (a *AuthClient) VerifyResetToken(ctx context.Context, token string) (user.ResetTokenStatus, error) {
	var resp verifyTokenResponse
	if err := a.client.do(ctx, http.MethodGet, "/password/verify-token/"+escape(token), nil, &resp); err != nil {
		return user.ResetTokenStatus{}, err
	}
	return user.ResetTokenStatus{Valid: resp.Valid, Email: resp.Email}, nil
}

func (a *AuthClient) ResetPassword(ctx context.Context, token, password string) (string, error) {
	var resp messageResponse
	if err := a.client.do(ctx, http.MethodPost, "/password/reset-password", resetPasswordRequest{Token: token, Password: password}, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
