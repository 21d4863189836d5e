package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"

	"github.com/riskibarqy/content-brain/internal/config"
	"github.com/riskibarqy/content-brain/internal/domain/brandprofile"
	"github.com/riskibarqy/content-brain/internal/domain/onboarding"
	"github.com/riskibarqy/content-brain/internal/platform/logging"
	"github.com/riskibarqy/content-brain/internal/usecase"
)

// fakeBackend is the minimal API surface the register-to-dashboard flow hits.
type fakeBackend struct {
	mu       sync.Mutex
	profiles []map[string]any
}

func (b *fakeBackend) router(t *testing.T) http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	requireSession := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie("sid"); err != nil || c.Value != "session-1" {
				writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Not authenticated"})
				return
			}
			next(w, r)
		}
	}

	api.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		if err := jsoniter.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode register body: %v", err)
		}
		http.SetCookie(w, &http.Cookie{Name: "sid", Value: "session-1", Path: "/"})
		writeJSON(w, http.StatusCreated, map[string]any{
			"user":  map[string]any{"id": 1, "name": req["name"], "email": req["email"]},
			"token": "token-1",
		})
	}).Methods(http.MethodPost)

	api.HandleFunc("/users", requireSession(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"user": map[string]any{"id": 1, "name": "Jane", "email": "jane@example.com"}})
	})).Methods(http.MethodGet)

	api.HandleFunc("/brand-profile", requireSession(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := jsoniter.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode profile body: %v", err)
		}
		b.mu.Lock()
		body["id"] = len(b.profiles) + 1
		body["user_id"] = 1
		b.profiles = append(b.profiles, body)
		b.mu.Unlock()
		writeJSON(w, http.StatusCreated, map[string]any{"profile": body})
	})).Methods(http.MethodPost)

	api.HandleFunc("/brand-profile/my", requireSession(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"profiles": b.profiles})
	})).Methods(http.MethodGet)

	api.HandleFunc("/posts/profile/{id}", requireSession(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"posts": []any{}})
	})).Methods(http.MethodGet)

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = jsoniter.NewEncoder(w).Encode(v)
}

func testConfig(t *testing.T, baseURL string) config.Config {
	t.Helper()
	return config.Config{
		AppEnv:              config.EnvDev,
		APIBaseURL:          baseURL,
		APITimeout:          5 * time.Second,
		CacheEnabled:        true,
		CacheTTL:            time.Minute,
		MockFallbackEnabled: false,
		SessionFile:         filepath.Join(t.TempDir(), "session.yaml"),
		BatchWorkers:        2,
		LogLevel:            logging.LevelError,
	}
}

func TestApp_RegisterOnboardAndListDashboard(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{}
	srv := httptest.NewServer(backend.router(t))
	defer srv.Close()

	var (
		mu    sync.Mutex
		toast []usecase.Notification
	)
	notifier := usecase.NotifierFunc(func(_ context.Context, n usecase.Notification) {
		mu.Lock()
		toast = append(toast, n)
		mu.Unlock()
	})

	cfg := testConfig(t, srv.URL+"/api/v1")
	a, err := New(cfg, logging.NewNop(), notifier)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	ctx := context.Background()

	if state := a.Start(ctx); state.IsAuthenticated {
		t.Fatalf("expected signed out start")
	}
	if !a.Auth.Register(ctx, "Jane", "jane@example.com", "Secret123") {
		t.Fatalf("register failed: %+v", toast)
	}

	wizard := a.Onboarding.Start()
	steps := []func(*onboarding.State) error{
		func(s *onboarding.State) error { s.Name = "Jane"; return nil },
		func(s *onboarding.State) error {
			s.ToggleRole("Consultant")
			return s.SetRoleDetail("Consultant", onboarding.RoleDetail{Importance: brandprofile.ImportanceHigh})
		},
		func(s *onboarding.State) error { s.ToggleGoal("Build audience"); return nil },
		func(s *onboarding.State) error { return s.SetFrequency(8) },
		func(s *onboarding.State) error {
			s.TogglePillar("Founder journey")
			s.TogglePillar("Industry takes")
			s.TogglePillar("Wins & losses")
			return nil
		},
		func(s *onboarding.State) error { return nil },
		func(s *onboarding.State) error { return nil },
	}
	for i, fn := range steps {
		if err := wizard.Update(fn); err != nil {
			t.Fatalf("update step %d: %v", i+1, err)
		}
		if err := wizard.Next(); err != nil {
			t.Fatalf("advance step %d: %v", i+1, err)
		}
	}

	result, err := wizard.Submit(ctx)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Redirect != usecase.RouteDashboard || result.Profile == nil {
		t.Fatalf("unexpected submit result: %+v", result)
	}
	if result.Profile.Name != "Jane's Brand Profile" {
		t.Fatalf("unexpected profile name: %s", result.Profile.Name)
	}

	dash, err := a.Dashboard.ListProfiles(ctx)
	if err != nil {
		t.Fatalf("list profiles: %v", err)
	}
	if dash.Offline || len(dash.Cards) != 1 {
		t.Fatalf("unexpected dashboard: %+v", dash)
	}
	if dash.Cards[0].HasCalendar {
		t.Fatalf("fresh profile must not have a calendar")
	}

	// A second process picks up the saved cookies.
	again, err := New(cfg, logging.NewNop(), nil)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if state := again.Start(ctx); !state.IsAuthenticated || state.User.Email != "jane@example.com" {
		t.Fatalf("expected restored session, got %+v", state)
	}
}

func TestApp_OfflineDashboardUsesMockProfiles(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL + "/api/v1"
	srv.Close()

	cfg := testConfig(t, baseURL)
	cfg.MockFallbackEnabled = true
	a, err := New(cfg, logging.NewNop(), nil)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}

	dash, err := a.Dashboard.ListProfiles(context.Background())
	if err != nil {
		t.Fatalf("list profiles: %v", err)
	}
	if !dash.Offline || len(dash.Cards) != 1 {
		t.Fatalf("expected offline mock dashboard, got %+v", dash)
	}
	if card := dash.Cards[0]; card.Profile.Name != "Tech Founder Brand" || card.PostCount != 30 {
		t.Fatalf("unexpected mock card: %+v", card)
	}
}

func TestNew_RejectsEmptySessionFile(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, "http://localhost:5050/api/v1")
	cfg.SessionFile = ""
	if _, err := New(cfg, nil, nil); err == nil {
		t.Fatalf("expected error for empty session file")
	}
}
