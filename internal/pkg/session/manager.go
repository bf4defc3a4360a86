package session

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"
)

var ErrNoRefreshToken = errors.New("session has no refresh token")

// RefreshFunc exchanges a refresh token for fresh credentials.
type RefreshFunc func(ctx context.Context, refreshToken string) (Session, error)

// Manager is the only writer of refreshed credentials. Concurrent 401s on
// the same session share one refresh call.
type Manager struct {
	store   Store
	refresh RefreshFunc
	group   singleflight.Group
}

func NewManager(store Store, refresh RefreshFunc) *Manager {
	return &Manager{store: store, refresh: refresh}
}

// Refresh returns credentials newer than staleAccessToken, refreshing only
// when the store still holds the stale token.
func (m *Manager) Refresh(ctx context.Context, id, staleAccessToken string) (Session, error) {
	v, err, _ := m.group.Do(id, func() (interface{}, error) {
		current, err := m.store.Get(ctx, id)
		if err != nil {
			return Session{}, err
		}
		if current.AccessToken != staleAccessToken {
			return current, nil
		}
		if current.RefreshToken == "" {
			return Session{}, ErrNoRefreshToken
		}

		fresh, err := m.refresh(ctx, current.RefreshToken)
		if err != nil {
			return Session{}, fmt.Errorf("error refresh session: %w", err)
		}

		fresh.ID = current.ID
		if fresh.RefreshToken == "" {
			fresh.RefreshToken = current.RefreshToken
		}
		if fresh.LoginTime.IsZero() {
			fresh.LoginTime = current.LoginTime
		}
		if len(fresh.Groups) == 0 {
			fresh.Groups = current.Groups
		}

		if err := m.store.Save(ctx, fresh); err != nil {
			return Session{}, err
		}
		return fresh, nil
	})
	if err != nil {
		return Session{}, err
	}
	return v.(Session), nil
}
