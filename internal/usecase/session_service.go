package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/content-brain/internal/domain/user"
	"github.com/riskibarqy/content-brain/internal/platform/cache"
	"github.com/riskibarqy/content-brain/internal/platform/logging"
)

// AuthState is the tri-state session view handed to every screen.
type AuthState struct {
	User            *user.User
	IsAuthenticated bool
	IsLoading       bool
}

// SessionPersister keeps the transport's session credentials across runs.
type SessionPersister interface {
	Save(ctx context.Context) error
	Clear(ctx context.Context) error
}

type LoginInput struct {
	Email    string `validate:"required,email" label:"Email"`
	Password string `validate:"required" label:"Password"`
}

type RegisterInput struct {
	Name     string `validate:"required" label:"Name"`
	Email    string `validate:"required,email" label:"Email"`
	Password string `validate:"required,min=8" label:"Password"`
}

// SessionService is the session gateway. One instance lives for the
// lifetime of the application and is passed to the services that need it.
type SessionService struct {
	auth      user.Authenticator
	notifier  Notifier
	store     *cache.Store
	persister SessionPersister
	validate  *validator.Validate
	logger    *logging.Logger

	mu    sync.RWMutex
	state AuthState
}

func NewSessionService(auth user.Authenticator, notifier Notifier, store *cache.Store, persister SessionPersister, logger *logging.Logger) *SessionService {
	return &SessionService{
		auth:      auth,
		notifier:  notifierOrNop(notifier),
		store:     store,
		persister: persister,
		validate:  newValidator(),
		logger:    logging.OrDefault(logger).With("component", "session"),
		state:     AuthState{IsLoading: true},
	}
}

func (s *SessionService) State() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *SessionService) IsAuthenticated() bool {
	return s.State().IsAuthenticated
}

// Init resolves an existing session. It never fails; any error yields the
// unauthenticated state.
func (s *SessionService) Init(ctx context.Context) AuthState {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.Init")
	defer span.End()

	current, err := s.auth.CurrentUser(ctx)
	if err != nil {
		s.logger.DebugContext(ctx, "no active session", "error", err)
		s.setState(AuthState{})
		return s.State()
	}

	s.setState(AuthState{User: &current, IsAuthenticated: true})
	return s.State()
}

func (s *SessionService) Login(ctx context.Context, email, password string) bool {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.Login")
	defer span.End()

	input := LoginInput{Email: strings.TrimSpace(email), Password: password}
	if err := validateForm(ctx, s.validate, input); err != nil {
		s.notifier.Notify(ctx, failureToast("Login failed", MessageOr(err, "Invalid credentials")))
		return false
	}

	session, err := s.auth.Login(ctx, input.Email, input.Password)
	if err != nil {
		recordSpanError(span, err)
		s.logger.WarnContext(ctx, "login failed", "error", err)
		s.setState(AuthState{})
		s.notifier.Notify(ctx, failureToast("Login failed", MessageOr(err, "Invalid credentials")))
		return false
	}

	s.authenticated(ctx, session.User)
	s.notifier.Notify(ctx, toast("Welcome back!", "You have successfully logged in."))
	return true
}

// Register creates the account and leaves the caller signed in, ready for onboarding.
func (s *SessionService) Register(ctx context.Context, name, email, password string) bool {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.Register")
	defer span.End()

	input := RegisterInput{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email), Password: password}
	if err := validateForm(ctx, s.validate, input); err != nil {
		s.notifier.Notify(ctx, failureToast("Registration failed", MessageOr(err, "Please try again")))
		return false
	}

	session, err := s.auth.Register(ctx, input.Name, input.Email, input.Password)
	if err != nil {
		recordSpanError(span, err)
		s.logger.WarnContext(ctx, "register failed", "error", err)
		s.setState(AuthState{})
		s.notifier.Notify(ctx, failureToast("Registration failed", MessageOr(err, "Please try again")))
		return false
	}

	s.authenticated(ctx, session.User)
	s.notifier.Notify(ctx, toast("Welcome!", "Your account has been created."))
	return true
}

// Logout clears local state even when the remote call fails.
func (s *SessionService) Logout(ctx context.Context) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.Logout")
	defer span.End()

	if err := s.auth.Logout(ctx); err != nil {
		s.logger.DebugContext(ctx, "remote logout failed, clearing local session anyway", "error", err)
	}
	if s.persister != nil {
		if err := s.persister.Clear(ctx); err != nil {
			s.logger.WarnContext(ctx, "clear persisted session failed", "error", err)
		}
	}
	if s.store != nil {
		s.store.Clear()
	}

	s.setState(AuthState{})
	s.notifier.Notify(ctx, toast("Logged out", "See you next time!"))
}

// RequireUser returns the signed in user or ErrUnauthorized.
func (s *SessionService) RequireUser() (user.User, error) {
	state := s.State()
	if !state.IsAuthenticated || state.User == nil {
		return user.User{}, fmt.Errorf("%w: sign in first", ErrUnauthorized)
	}
	return *state.User, nil
}

func (s *SessionService) authenticated(ctx context.Context, u user.User) {
	s.setState(AuthState{User: &u, IsAuthenticated: true})
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(ctx); err != nil {
		s.logger.WarnContext(ctx, "persist session failed", "error", err)
	}
}

func (s *SessionService) setState(state AuthState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
