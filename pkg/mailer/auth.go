// auth.go — OAuth credentials for the Gmail API: a cached token file,
// refresh, or an interactive loopback authorization.
package mailer

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/renameio/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
)

// Scope is the only permission requested: sending mail.
const Scope = gmail.GmailSendScope

// AuthorizeFunc obtains a fresh token interactively.
type AuthorizeFunc func(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error)

// TokenSource returns a token source for the client described by the
// credentials file at credPath. A valid token cached at tokenPath is used as
// is; an expired one with a refresh token is refreshed; otherwise authorize is
// called. Every new token is written back to tokenPath.
func TokenSource(ctx context.Context, credPath, tokenPath string, authorize AuthorizeFunc, log *slog.Logger) (oauth2.TokenSource, error) {
	b, err := os.ReadFile(credPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s not found; create an OAuth desktop client in Google Cloud Console and download it", ErrMissingCredentials, credPath)
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	cfg, err := google.ConfigFromJSON(b, Scope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}

	tok, err := loadToken(tokenPath)
	if err != nil {
		log.Warn("ignoring unreadable token cache", slog.String("path", tokenPath), slog.String("error", err.Error()))
		tok = nil
	}

	switch {
	case tok != nil && tok.Valid():
	case tok != nil && tok.RefreshToken != "":
		fresh, err := cfg.TokenSource(ctx, tok).Token()
		if err == nil {
			tok = fresh
			break
		}
		log.Warn("token refresh failed, authorizing again", slog.String("error", err.Error()))
		fallthrough
	default:
		if tok, err = authorize(ctx, cfg); err != nil {
			return nil, errors.Join(ErrAuthorization, err)
		}
	}

	if err := saveToken(tokenPath, tok); err != nil {
		return nil, err
	}

	return &savingTokenSource{
		src:  oauth2.ReuseTokenSource(tok, cfg.TokenSource(ctx, tok)),
		path: tokenPath,
		last: tok.AccessToken,
	}, nil
}

// savingTokenSource writes each newly issued token to path.
type savingTokenSource struct {
	src  oauth2.TokenSource
	path string

	mu   sync.Mutex
	last string
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.src.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.AccessToken != s.last {
		if err := saveToken(s.path, tok); err != nil {
			return nil, err
		}
		s.last = tok.AccessToken
	}
	return tok, nil
}

// loadToken reads a cached token. A missing file yields nil, nil.
func loadToken(path string) (*oauth2.Token, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(b, &tok); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	return &tok, nil
}

func saveToken(path string, tok *oauth2.Token) error {
	b, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	if err := renameio.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// LoopbackAuthorizer runs the installed-app flow: it serves a one-shot
// callback on 127.0.0.1 at a random port, hands the consent URL to Open and
// exchanges the returned code.
type LoopbackAuthorizer struct {
	// Open presents the consent URL to the user, e.g. by printing it.
	Open func(authURL string) error
	// Timeout bounds the wait for the callback. Zero means no limit.
	Timeout time.Duration
}

// Authorize implements AuthorizeFunc.
func (a *LoopbackAuthorizer) Authorize(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("listen for callback: %w", err)
	}

	state, err := randomState()
	if err != nil {
		ln.Close()
		return nil, err
	}

	flow := *cfg
	flow.RedirectURL = "http://" + ln.Addr().String() + "/"

	type result struct {
		code string
		err  error
	}
	results := make(chan result, 1)
	deliver := func(r result) {
		select {
		case results <- r:
		default:
		}
	}

	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		switch {
		case q.Get("state") != state:
			http.Error(w, "state mismatch", http.StatusBadRequest)
			deliver(result{err: errors.New("callback state mismatch")})
		case q.Get("error") != "":
			http.Error(w, "authorization denied", http.StatusForbidden)
			deliver(result{err: fmt.Errorf("consent denied: %s", q.Get("error"))})
		case q.Get("code") == "":
			http.Error(w, "missing code", http.StatusBadRequest)
			deliver(result{err: errors.New("callback without code")})
		default:
			fmt.Fprintln(w, "Authorization complete. You may close this window.")
			deliver(result{code: q.Get("code")})
		}
	})

	srv := &http.Server{Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go srv.Serve(ln)
	defer srv.Close()

	if a.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Timeout)
		defer cancel()
	}

	if err := a.Open(flow.AuthCodeURL(state, oauth2.AccessTypeOffline)); err != nil {
		return nil, fmt.Errorf("open consent page: %w", err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-results:
		if res.err != nil {
			return nil, res.err
		}
		tok, err := flow.Exchange(ctx, res.code)
		if err != nil {
			return nil, fmt.Errorf("exchange code: %w", err)
		}
		return tok, nil
	}
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	return hex.EncodeToString(b), nil
}
