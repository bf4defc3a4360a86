package response

import (
	"time"

	"booking-portal/internal/pkg/session"
)

// AuthResponse is what the backend returns for a code exchange or a
// refresh. A refresh may leave the refresh token and identity fields empty.
type AuthResponse struct {
	AccessToken   string    `json:"access_token"`
	RefreshToken  string    `json:"refresh_token"`
	IDToken       string    `json:"id_token"`
	TokenType     string    `json:"token_type"`
	ExpiresIn     int       `json:"expires_in"`
	UserID        string    `json:"user_id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
	Groups        []string  `json:"groups"`
	LoginTime     time.Time `json:"login_time"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// Session converts the response, deriving the expiry from expires_in when
// the backend leaves expires_at out.
func (a AuthResponse) Session(id string, now time.Time) session.Session {
	expiresAt := a.ExpiresAt
	if expiresAt.IsZero() && a.ExpiresIn > 0 {
		expiresAt = now.Add(time.Duration(a.ExpiresIn) * time.Second)
	}

	return session.Session{
		ID:            id,
		AccessToken:   a.AccessToken,
		RefreshToken:  a.RefreshToken,
		IDToken:       a.IDToken,
		UserID:        a.UserID,
		Username:      a.Username,
		Email:         a.Email,
		EmailVerified: a.EmailVerified,
		Groups:        a.Groups,
		LoginTime:     a.LoginTime,
		ExpiresAt:     expiresAt,
	}
}

// User is the signed-in user as shown to the browser. Tokens stay
// server side.
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"emailVerified"`
	Groups        []string  `json:"groups"`
	LoginTime     time.Time `json:"loginTime"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

func NewUser(s session.Session) User {
	return User{
		ID:            s.UserID,
		Username:      s.Username,
		Email:         s.Email,
		EmailVerified: s.EmailVerified,
		Groups:        s.Groups,
		LoginTime:     s.LoginTime,
		ExpiresAt:     s.Expiry(),
	}
}
