package sessionstore

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/content-brain/internal/platform/logging"
)

// Transport is the slice of the API client that holds session credentials.
type Transport interface {
	BaseURL() *url.URL
	Jar() http.CookieJar
	Token() string
	SetToken(token string)
}

type fileCookie struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type fileSession struct {
	BaseURL string       `yaml:"base_url"`
	Token   string       `yaml:"token,omitempty"`
	SavedAt time.Time    `yaml:"saved_at"`
	Cookies []fileCookie `yaml:"cookies"`
}

// FileStore keeps API cookies and the bearer token in a YAML file so a
// later run starts signed in.
type FileStore struct {
	path      string
	transport Transport
	logger    *logging.Logger
	now       func() time.Time
}

func NewFileStore(path string, transport Transport, logger *logging.Logger) *FileStore {
	return &FileStore{
		path:      path,
		transport: transport,
		logger:    logging.OrDefault(logger).With("component", "session_store"),
		now:       time.Now,
	}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Save(ctx context.Context) error {
	baseURL := s.transport.BaseURL()
	session := fileSession{
		BaseURL: baseURL.String(),
		Token:   s.transport.Token(),
		SavedAt: s.now().UTC(),
	}
	if jar := s.transport.Jar(); jar != nil {
		for _, c := range jar.Cookies(baseURL) {
			session.Cookies = append(session.Cookies, fileCookie{Name: c.Name, Value: c.Value})
		}
	}

	raw, err := yaml.Marshal(session)
	if err != nil {
		return crerr.Wrap(err, "encode session file")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return crerr.Wrapf(err, "create session directory for %s", s.path)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return crerr.Wrapf(err, "write session file %s", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return crerr.Wrapf(err, "replace session file %s", s.path)
	}

	s.logger.DebugContext(ctx, "session saved", "path", s.path, "cookies", len(session.Cookies))
	return nil
}

func (s *FileStore) Clear(ctx context.Context) error {
	s.transport.SetToken("")
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return crerr.Wrapf(err, "remove session file %s", s.path)
	}
	s.logger.DebugContext(ctx, "session cleared", "path", s.path)
	return nil
}

// Restore loads a saved session into the transport. It reports false
// when there is no file or the file belongs to another base URL.
func (s *FileStore) Restore(ctx context.Context) (bool, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, crerr.Wrapf(err, "read session file %s", s.path)
	}

	var session fileSession
	if err := yaml.Unmarshal(raw, &session); err != nil {
		return false, crerr.Wrapf(err, "decode session file %s", s.path)
	}

	baseURL := s.transport.BaseURL()
	if strings.TrimRight(session.BaseURL, "/") != strings.TrimRight(baseURL.String(), "/") {
		s.logger.InfoContext(ctx, "ignoring session for another api", "saved", session.BaseURL, "current", baseURL.String())
		return false, nil
	}

	if jar := s.transport.Jar(); jar != nil && len(session.Cookies) > 0 {
		cookies := make([]*http.Cookie, 0, len(session.Cookies))
		for _, c := range session.Cookies {
			if c.Name == "" {
				continue
			}
			cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value, Path: "/"})
		}
		jar.SetCookies(baseURL, cookies)
	}
	s.transport.SetToken(session.Token)

	s.logger.DebugContext(ctx, "session restored", "path", s.path, "cookies", len(session.Cookies))
	return true, nil
}
