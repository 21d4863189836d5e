package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/riskibarqy/content-brain/internal/domain/user"
	"github.com/riskibarqy/content-brain/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/content-brain/internal/platform/id"
	"github.com/riskibarqy/content-brain/internal/platform/logging"
	"github.com/riskibarqy/content-brain/internal/usecase"
)

type fakeAuth struct {
	current *user.User
}

func (f *fakeAuth) Register(_ context.Context, name, email, _ string) (user.Session, error) {
	u := user.User{ID: "7", Name: name, Email: email}
	f.current = &u
	return user.Session{User: u, Token: "t"}, nil
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (user.Session, error) {
	if password != "secret-password" {
		return user.Session{}, errors.New("Invalid credentials")
	}
	u := user.User{ID: "7", Name: "Jane", Email: email}
	f.current = &u
	return user.Session{User: u, Token: "t"}, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.current = nil
	return nil
}

func (f *fakeAuth) CurrentUser(context.Context) (user.User, error) {
	if f.current == nil {
		return user.User{}, fmt.Errorf("%w: no session", usecase.ErrUnauthorized)
	}
	return *f.current, nil
}

type harness struct {
	runner *Runner
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newHarness(t *testing.T, signedIn bool, stdin string) harness {
	t.Helper()

	auth := &fakeAuth{}
	if signedIn {
		auth.current = &user.User{ID: "7", Name: "Jane", Email: "jane@example.com"}
	}
	var stdout, stderr bytes.Buffer
	notifier := NewTerminalNotifier(&stderr)
	logger := logging.NewNop()

	profiles := memory.NewBrandProfileRepository(nil)
	posts := memory.NewPostRepository(nil)
	session := usecase.NewSessionService(auth, notifier, nil, nil, logger)
	session.Init(context.Background())

	svc := Services{
		Auth:          session,
		Onboarding:    usecase.NewOnboardingService(profiles, id.NewUUIDGenerator(), notifier, nil, logger),
		Dashboard:     usecase.NewDashboardService(profiles, posts, nil, notifier, nil, logger),
		Calendar:      usecase.NewCalendarService(posts, nil, nil, notifier, nil, logger, 2),
		ProfileEditor: usecase.NewProfileEditorService(profiles, notifier, nil, logger),
		Settings:      usecase.NewSettingsService(session, notifier, logger),
	}
	return harness{
		runner: NewRunner(svc, strings.NewReader(stdin), &stdout, &stderr, logger),
		stdout: &stdout,
		stderr: &stderr,
	}
}

func (h harness) run(args ...string) int {
	return h.runner.Run(context.Background(), args)
}

func TestRunner_UsageAndUnknownCommand(t *testing.T) {
	t.Parallel()

	h := newHarness(t, false, "")
	if code := h.run(); code != exitUsage {
		t.Fatalf("expected usage exit code, got %d", code)
	}
	if code := h.run("help"); code != exitOK {
		t.Fatalf("expected help to succeed, got %d", code)
	}
	if !strings.Contains(h.stdout.String(), "approve-all") {
		t.Fatalf("expected command list in help output, got %s", h.stdout.String())
	}
	if code := h.run("publish"); code != exitUsage {
		t.Fatalf("expected unknown command to be a usage error, got %d", code)
	}
	if !strings.Contains(h.stderr.String(), "Unknown command: publish") {
		t.Fatalf("unexpected stderr: %s", h.stderr.String())
	}
}

func TestRunner_ProtectedCommandNeedsSignIn(t *testing.T) {
	t.Parallel()

	h := newHarness(t, false, "")
	if code := h.run("dashboard"); code != exitUnauthorized {
		t.Fatalf("expected unauthorized exit code, got %d", code)
	}
	if !strings.Contains(h.stderr.String(), "contentbrain login") {
		t.Fatalf("expected sign in hint, got %s", h.stderr.String())
	}
}

func TestRunner_LoginThenWhoami(t *testing.T) {
	t.Parallel()

	h := newHarness(t, false, "")
	if code := h.run("login", "--email", "jane@example.com", "--password", "wrong"); code != exitFailure {
		t.Fatalf("expected failed login exit code, got %d", code)
	}
	if !strings.Contains(h.stderr.String(), "[error] Login failed: Invalid credentials") {
		t.Fatalf("expected failure toast, got %s", h.stderr.String())
	}

	if code := h.run("login", "--email", "jane@example.com", "--password", "secret-password"); code != exitOK {
		t.Fatalf("expected login to succeed, got %d: %s", code, h.stderr.String())
	}
	if code := h.run("whoami"); code != exitOK {
		t.Fatalf("expected whoami to succeed, got %d", code)
	}
	if !strings.Contains(h.stdout.String(), "Jane <jane@example.com> (id 7)") {
		t.Fatalf("unexpected stdout: %s", h.stdout.String())
	}
}

func TestRunner_FlagErrorsAreUsageErrors(t *testing.T) {
	t.Parallel()

	h := newHarness(t, true, "")
	if code := h.run("generate"); code != exitUsage {
		t.Fatalf("expected missing --profile to be a usage error, got %d", code)
	}
	if code := h.run("dashboard", "--bogus"); code != exitUsage {
		t.Fatalf("expected unknown flag to be a usage error, got %d", code)
	}
	if code := h.run("dashboard", "-h"); code != exitOK {
		t.Fatalf("expected -h to succeed, got %d", code)
	}
}

func TestRunner_OnboardingThenGenerate(t *testing.T) {
	t.Parallel()

	answers := strings.Join([]string{
		"Jane Doe",      // name
		"1", "", "", "", // role, company, audience, importance
		"1",         // goal
		"",          // frequency
		"1,2,3", "", // pillars, no custom pillar
		"", "", "", "", // tone
		"", "", "", "", // creators, beliefs
		"", "", "", "", // avoid, off limits, past post, additional
		"y", // submit
	}, "\n") + "\n"

	h := newHarness(t, true, answers)
	if code := h.run("onboarding"); code != exitOK {
		t.Fatalf("expected onboarding to succeed, got %d: %s", code, h.stderr.String())
	}
	if !strings.Contains(h.stdout.String(), "Created [1]") {
		t.Fatalf("expected created profile in output, got %s", h.stdout.String())
	}
	if !strings.Contains(h.stderr.String(), "[ok] Profile Created!") {
		t.Fatalf("expected success toast, got %s", h.stderr.String())
	}

	h.stdout.Reset()
	if code := h.run("generate", "--profile", "1"); code != exitOK {
		t.Fatalf("expected generate to succeed, got %d: %s", code, h.stderr.String())
	}
	if !strings.Contains(h.stdout.String(), "Next: contentbrain calendar --profile 1") {
		t.Fatalf("unexpected generate output: %s", h.stdout.String())
	}

	h.stdout.Reset()
	if code := h.run("dashboard"); code != exitOK {
		t.Fatalf("expected dashboard to succeed, got %d", code)
	}
	if !strings.Contains(h.stdout.String(), "30 posts") {
		t.Fatalf("expected calendar count on the dashboard, got %s", h.stdout.String())
	}
}

func TestRunner_OnboardingStopsOnClosedInput(t *testing.T) {
	t.Parallel()

	h := newHarness(t, true, "J\n")
	if code := h.run("onboarding"); code != exitFailure {
		t.Fatalf("expected closed input to fail, got %d", code)
	}
	if !strings.Contains(h.stdout.String(), "at least 2 characters") {
		t.Fatalf("expected step hint, got %s", h.stdout.String())
	}
}

func TestRunner_SettingsUpdatesAccount(t *testing.T) {
	t.Parallel()

	h := newHarness(t, true, "")
	if code := h.run("settings", "--name", "Jane Q"); code != exitOK {
		t.Fatalf("expected settings update to succeed, got %d: %s", code, h.stderr.String())
	}
	out := h.stdout.String()
	if !strings.Contains(out, "Jane Q") || !strings.Contains(out, "jane@example.com") {
		t.Fatalf("unexpected settings output: %s", out)
	}

	if code := h.run("settings", "--current-password", "old", "--new-password", "longenough", "--confirm-password", "different"); code != exitUsage {
		t.Fatalf("expected mismatched passwords to be invalid input, got %d", code)
	}
	if !strings.Contains(h.stderr.String(), "Passwords do not match") {
		t.Fatalf("expected mismatch toast, got %s", h.stderr.String())
	}
}

func TestRunner_OpenResolvesRoutes(t *testing.T) {
	t.Parallel()

	h := newHarness(t, false, "")
	if code := h.run("open", "/calendar/3"); code != exitUnauthorized {
		t.Fatalf("expected protected route to need sign in, got %d", code)
	}
	if !strings.Contains(h.stdout.String(), "Next: contentbrain login") {
		t.Fatalf("unexpected open output: %s", h.stdout.String())
	}

	if code := h.run("open", "/nowhere"); code != exitNotFound {
		t.Fatalf("expected unknown route to be not found, got %d", code)
	}
	if code := h.run("open", "/register"); code != exitOK {
		t.Fatalf("expected public route to resolve, got %d", code)
	}
}

func TestNavigator_Resolve(t *testing.T) {
	t.Parallel()

	nav := NewNavigator()
	cases := []struct {
		path          string
		authenticated bool
		wantName      string
		redirected    bool
	}{
		{"/", false, RouteNameHome, false},
		{"", false, RouteNameHome, false},
		{"/login", false, RouteNameLogin, false},
		{"/reset-password?token=abc", false, RouteNameResetPassword, false},
		{"/dashboard", false, RouteNameLogin, true},
		{"/dashboard", true, RouteNameDashboard, false},
		{"/calendar/42", true, RouteNameCalendar, false},
		{"/profile/42/edit", true, RouteNameProfileEdit, false},
		{"/profile/42", true, RouteNameNotFound, false},
		{"/does-not-exist", false, RouteNameNotFound, false},
	}
	for _, tc := range cases {
		got := nav.Resolve(tc.path, tc.authenticated)
		if got.Name != tc.wantName || got.Redirected != tc.redirected {
			t.Fatalf("resolve %q (auth=%v): got %+v", tc.path, tc.authenticated, got)
		}
	}

	if got := nav.Resolve("/calendar/42", true); got.Vars["profileId"] != "42" {
		t.Fatalf("expected profile id var, got %+v", got.Vars)
	}
}

func TestRouteCommand(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		usecase.RouteDashboard:        "dashboard",
		usecase.RouteHome:             "dashboard",
		usecase.RouteLogin:            "login",
		usecase.RouteOnboarding:       "onboarding",
		usecase.CalendarRoute("3"):    "calendar --profile 3",
		usecase.ProfileEditRoute("3"): "edit-profile --profile 3",
		"/unknown":                    "help",
	}
	for path, want := range cases {
		if got := routeCommand(path); got != want {
			t.Fatalf("routeCommand(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{nil, exitOK},
		{usagef("bad flag"), exitUsage},
		{fmt.Errorf("%w: sign in", usecase.ErrUnauthorized), exitUnauthorized},
		{fmt.Errorf("%w: %w", errReported, usecase.ErrNotFound), exitNotFound},
		{fmt.Errorf("load: %w", usecase.ErrDependencyUnavailable), exitUnavailable},
		{usecase.ErrInvalidInput, exitUsage},
		{fmt.Errorf("1 of 2 posts failed to approve: %w", errors.Join(&usecase.RequestError{Status: 404})), exitNotFound},
		{fmt.Errorf("1 of 2 posts failed to approve: %w", errors.Join(&usecase.RequestError{Status: 400})), exitUsage},
		{errors.New("boom"), exitFailure},
	}
	for _, tc := range cases {
		if got := exitCode(tc.err); got != tc.want {
			t.Fatalf("exitCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestTerminalNotifier(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n := NewTerminalNotifier(&buf)
	n.Notify(context.Background(), usecase.Notification{Title: "Saved"})
	n.Notify(context.Background(), usecase.Notification{Title: "Error", Description: "Nope", Variant: usecase.VariantDestructive})

	want := "[ok] Saved\n[error] Error: Nope\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

func TestPrompter_Choose(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("2, 9, x,1\n"), &out)
	got, err := p.Choose("Pick", []string{"a", "b", "c"}, func(s string) bool { return s == "a" })
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if len(got) != 2 || got[0] != 2 || got[1] != 1 {
		t.Fatalf("unexpected picks: %v", got)
	}
	if !strings.Contains(out.String(), "[x] 1. a") || !strings.Contains(out.String(), `ignoring "9"`) {
		t.Fatalf("unexpected prompt output: %s", out.String())
	}

	if _, err := p.Ask("More", ""); !errors.Is(err, errNoInput) {
		t.Fatalf("expected errNoInput after input ends, got %v", err)
	}
}
