package session

import (
	"io"
	"net/http"
	"strings"
	"time"
)

// Paths that issue credentials never carry a bearer token.
var DefaultSkipSuffixes = []string{"/auth/callback", "/auth/refresh", "/auth/token"}

// Transport attaches the bearer token of the request's session and, on a
// 401, refreshes once and retries the request once.
type Transport struct {
	Base         http.RoundTripper
	Manager      *Manager
	SkipSuffixes []string
	Now          func() time.Time
}

func NewTransport(base http.RoundTripper, manager *Manager) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{
		Base:         base,
		Manager:      manager,
		SkipSuffixes: DefaultSkipSuffixes,
		Now:          time.Now,
	}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	s, ok := FromContext(req.Context())
	if !ok || s.AccessToken == "" || t.skip(req.URL.Path) {
		return t.Base.RoundTrip(req)
	}

	if s.Expired(t.Now()) && s.RefreshToken != "" {
		if fresh, err := t.Manager.Refresh(req.Context(), s.ID, s.AccessToken); err == nil {
			s = fresh
		}
	}

	resp, err := t.Base.RoundTrip(withToken(req, s.AccessToken))
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}

	// a consumed body cannot be replayed
	if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil {
		return resp, nil
	}

	fresh, rerr := t.Manager.Refresh(req.Context(), s.ID, s.AccessToken)
	if rerr != nil {
		return resp, nil
	}

	retry := withToken(req, fresh.AccessToken)
	if req.GetBody != nil {
		body, berr := req.GetBody()
		if berr != nil {
			return resp, nil
		}
		retry.Body = body
	}

	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	return t.Base.RoundTrip(retry)
}

func (t *Transport) skip(path string) bool {
	for _, suffix := range t.SkipSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

func withToken(req *http.Request, token string) *http.Request {
	r := req.Clone(req.Context())
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}
