package contentapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/riskibarqy/content-brain/internal/domain/post"
	"github.com/riskibarqy/content-brain/internal/platform/logging"
	"github.com/riskibarqy/content-brain/internal/usecase"
)

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()

	client, err := NewClient(ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL + "/api/v1",
		Logger:     logging.NewNop(),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = jsoniter.NewEncoder(w).Encode(v)
}

func TestNewClient_RejectsBadBaseURL(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "ftp://example.com", "://nope"} {
		if _, err := NewClient(ClientConfig{BaseURL: raw}); err == nil {
			t.Fatalf("expected error for base url %q", raw)
		}
	}
}

func TestNewClient_Timeout(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{name: "zero means none", timeout: 0, want: 0},
		{name: "negative means none", timeout: -time.Second, want: 0},
		{name: "explicit", timeout: 5 * time.Second, want: 5 * time.Second},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client, err := NewClient(ClientConfig{BaseURL: "http://localhost:3000/api/v1", Timeout: tc.timeout})
			if err != nil {
				t.Fatalf("new client: %v", err)
			}
			if got := client.httpClient.Timeout; got != tc.want {
				t.Fatalf("http client timeout = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestAuthClientLogin_StoresTokenAndCookie(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			if r.Method != http.MethodPost {
				t.Fatalf("unexpected method: %s", r.Method)
			}
			var req map[string]string
			if err := jsoniter.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode request body: %v", err)
			}
			if req["email"] != "john@example.com" || req["password"] != "Secret123" {
				t.Fatalf("unexpected login body: %v", req)
			}
			http.SetCookie(w, &http.Cookie{Name: "sid", Value: "cookie-1", Path: "/"})
			writeJSON(w, http.StatusOK, map[string]any{
				"user":  map[string]any{"id": 7, "name": "John Doe", "email": "john@example.com"},
				"token": "token-abc",
			})
		case "/api/v1/users":
			if got := r.Header.Get("Authorization"); got != "Bearer token-abc" {
				t.Fatalf("unexpected authorization header: %s", got)
			}
			cookie, err := r.Cookie("sid")
			if err != nil || cookie.Value != "cookie-1" {
				t.Fatalf("expected session cookie, got %v (%v)", cookie, err)
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"user": map[string]any{"id": "7", "name": "John Doe", "email": "john@example.com"},
			})
		default:
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	auth := NewAuthClient(client)

	session, err := auth.Login(context.Background(), "john@example.com", "Secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if session.User.ID != "7" || session.Token != "token-abc" {
		t.Fatalf("unexpected session: %+v", session)
	}
	if client.Token() != "token-abc" {
		t.Fatalf("expected token stored on client, got %q", client.Token())
	}

	current, err := auth.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("current user failed: %v", err)
	}
	if current.Name != "John Doe" {
		t.Fatalf("unexpected current user: %+v", current)
	}
}

func TestAuthClientLogout_ClearsTokenOnFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "logout broke"})
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	client.SetToken("token-abc")

	err := NewAuthClient(client).Logout(context.Background())
	if err == nil {
		t.Fatalf("expected logout error")
	}
	if client.Token() != "" {
		t.Fatalf("expected token cleared, got %q", client.Token())
	}
}

func TestClient_ServerMessageAndStatusMapping(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/brand-profile/my":
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Session expired"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	repo := NewBrandProfileRepository(newTestClient(t, srv))

	_, err := repo.ListMine(context.Background())
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if got := usecase.MessageOr(err, "fallback"); got != "Session expired" {
		t.Fatalf("unexpected message: %s", got)
	}

	_, err = repo.GetByID(context.Background(), "99")
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err.Error() != "HTTP error! status: 404" {
		t.Fatalf("unexpected error text: %s", err.Error())
	}
	if got := usecase.MessageOr(err, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback message, got %s", got)
	}
}

func TestClient_UnreachableIsStatusZero(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := newTestClient(t, srv)
	srv.Close()

	_, err := NewPostRepository(client).ListByProfile(context.Background(), "1")
	var reqErr *usecase.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected request error, got %T %v", err, err)
	}
	if reqErr.Status != 0 {
		t.Fatalf("expected status 0, got %d", reqErr.Status)
	}
	if !usecase.IsUnreachable(err) {
		t.Fatalf("expected unreachable error")
	}
}

func TestBrandProfileRepositoryListMine_DecodesCamelCase(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"profiles": []map[string]any{{
				"id":               1,
				"user_id":          1,
				"name":             "Tech Founder Brand",
				"primaryRole":      "SaaS Founder",
				"postingFrequency": 12,
				"toneProfile":      map[string]int{"casualToFormal": 3, "rawToPolished": 4, "punchyToStorytelling": 7, "boldToSafe": 3},
				"admiredCreators":  []string{"@naval"},
				"created_at":       "2026-01-02T10:00:00Z",
			}},
		})
	}))
	defer srv.Close()

	profiles, err := NewBrandProfileRepository(newTestClient(t, srv)).ListMine(context.Background())
	if err != nil {
		t.Fatalf("list profiles: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(profiles))
	}
	got := profiles[0]
	if got.ID != "1" || got.PrimaryRole != "SaaS Founder" || got.PostingFrequency != 12 {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if got.ToneProfile.PunchyToStorytelling != 7 {
		t.Fatalf("unexpected tone: %+v", got.ToneProfile)
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("expected created_at parsed")
	}
}

func TestPillarRepositoryCreate_SendsNumericProfileID(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/content-pillar" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		var req map[string]any
		if err := jsoniter.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if id, ok := req["brand_profile_id"].(float64); !ok || id != 3 {
			t.Fatalf("expected numeric brand_profile_id, got %#v", req["brand_profile_id"])
		}
		if req["pillar_name"] != "Hiring" {
			t.Fatalf("unexpected pillar name: %v", req["pillar_name"])
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"pillar": map[string]any{"id": 11, "pillar_name": "Hiring"},
		})
	}))
	defer srv.Close()

	created, err := NewPillarRepository(newTestClient(t, srv)).Create(context.Background(), "3", "Hiring")
	if err != nil {
		t.Fatalf("create pillar: %v", err)
	}
	if created.ID != "11" || created.Name != "Hiring" || created.BrandProfileID != "3" {
		t.Fatalf("unexpected pillar: %+v", created)
	}
}

func TestPillarRepositoryCreate_NonNumericProfileID(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("no request expected, got %s", r.URL.Path)
	}))
	defer srv.Close()

	_, err := NewPillarRepository(newTestClient(t, srv)).Create(context.Background(), "abc", "Hiring")
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestPostRepositoryGenerateCalendar(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/generate/calendar" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req map[string]any
		if err := jsoniter.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if req["brand_profile_id"] != float64(1) || req["regenerate"] != true {
			t.Fatalf("unexpected body: %v", req)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"posts": []map[string]any{
				{"id": 1, "brand_profile_id": 1, "day": 1, "hook": "I almost quit yesterday.", "status": "approved"},
				{"id": 2, "brand_profile_id": 1, "day": 2, "status": "mystery"},
			},
		})
	}))
	defer srv.Close()

	posts, err := NewPostRepository(newTestClient(t, srv)).GenerateCalendar(context.Background(), "1", true)
	if err != nil {
		t.Fatalf("generate calendar: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].Status != post.StatusApproved || posts[0].ID != "1" {
		t.Fatalf("unexpected first post: %+v", posts[0])
	}
	if posts[1].Status != post.StatusDraft {
		t.Fatalf("expected unknown status to fall back to draft, got %s", posts[1].Status)
	}
}

func TestPostRepositoryUpdate_SendsOnlyChangedFields(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/v1/posts/5" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req map[string]any
		if err := jsoniter.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if len(req) != 2 || req["status"] != "approved" {
			t.Fatalf("unexpected body: %v", req)
		}
		if tags, ok := req["hashtags"].([]any); !ok || len(tags) != 0 {
			t.Fatalf("expected empty hashtags list, got %#v", req["hashtags"])
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"post": map[string]any{"id": 5, "status": "approved"},
		})
	}))
	defer srv.Close()

	approved := post.StatusApproved
	updated, err := NewPostRepository(newTestClient(t, srv)).Update(context.Background(), "5", post.Update{
		Status:   &approved,
		Hashtags: []string{},
	})
	if err != nil {
		t.Fatalf("update post: %v", err)
	}
	if updated.Status != post.StatusApproved {
		t.Fatalf("unexpected status: %s", updated.Status)
	}
}

func TestAssistant_PostsToKindPath(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/ai/transform-style" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		var req map[string]any
		if err := jsoniter.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if req["style"] != "punchy" || req["brand_profile_id"] != float64(1) {
			t.Fatalf("unexpected body: %v", req)
		}
		writeJSON(w, http.StatusOK, map[string]any{"options": []string{"Short.", "Shorter."}})
	}))
	defer srv.Close()

	options, err := NewAssistant(newTestClient(t, srv)).Assist(context.Background(), post.AssistTransformStyle, post.AssistRequest{
		BrandProfileID: "1",
		Role:           "SaaS Founder",
		PostBody:       "Long body",
		Style:          "punchy",
	})
	if err != nil {
		t.Fatalf("assist: %v", err)
	}
	if len(options) != 2 || options[0] != "Short." {
		t.Fatalf("unexpected options: %v", options)
	}
}

func TestCurlPreview_RedactsCredentials(t *testing.T) {
	t.Parallel()

	got := curlPreview(http.MethodPost, "http://localhost/api/v1/auth/login", true, []byte(`{"email":"a@b.c","password":"x"}`))
	want := `curl -X POST 'http://localhost/api/v1/auth/login' -H 'Content-Type: application/json' -H 'Authorization: Bearer ***' -d '<redacted>'`
	if got != want {
		t.Fatalf("unexpected preview:\n got %s\nwant %s", got, want)
	}
}
