package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	GroupStaff = "STAFF"
	GroupAdmin = "ADMIN"
)

// Session is the credential material of one signed-in user. It is passed
// explicitly through context.Context; there is no process-wide user.
type Session struct {
	ID            string    `json:"id"`
	AccessToken   string    `json:"access_token"`
	RefreshToken  string    `json:"refresh_token"`
	IDToken       string    `json:"id_token"`
	UserID        string    `json:"user_id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
	Groups        []string  `json:"groups"`
	LoginTime     time.Time `json:"login_time"`
	ExpiresAt     time.Time `json:"expires_at"`
}

func (s Session) HasGroup(groups ...string) bool {
	for _, have := range s.Groups {
		for _, want := range groups {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Expiry prefers the backend's expires_at and falls back to the exp claim
// of the access token. The token is not verified here, the backend does.
func (s Session) Expiry() time.Time {
	if !s.ExpiresAt.IsZero() {
		return s.ExpiresAt
	}
	if s.AccessToken == "" {
		return time.Time{}
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

func (s Session) Expired(now time.Time) bool {
	exp := s.Expiry()
	return !exp.IsZero() && !now.Before(exp)
}

type ctxKey struct{}

func WithContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// Anonymous keeps ctx's values but hides its session, so backend calls made
// with it carry no token.
func Anonymous(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, nil)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}
