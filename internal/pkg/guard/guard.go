package guard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrInFlight is returned while another holder owns the key.
	ErrInFlight = errors.New("already in flight")
	// ErrUnavailable means the lock store could not be asked at all.
	ErrUnavailable = errors.New("guard unavailable")
)

// Guard admits one holder per key until it releases.
type Guard interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

type redsyncGuard struct {
	rs     *redsync.Redsync
	prefix string
	ttl    time.Duration
}

// NewRedsync shares the guard across every portal instance behind the same
// Redis. ttl bounds how long a crashed holder keeps the key.
func NewRedsync(client *redis.Client, prefix string, ttl time.Duration) Guard {
	return &redsyncGuard{
		rs:     redsync.New(goredis.NewPool(client)),
		prefix: prefix,
		ttl:    ttl,
	}
}

func (g *redsyncGuard) Acquire(ctx context.Context, key string) (func(), error) {
	mutex := g.rs.NewMutex(g.prefix+":"+key,
		redsync.WithExpiry(g.ttl),
		redsync.WithTries(1),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, classify(key, err)
	}

	return func() {
		// the holder's request context may be gone by now
		_, _ = mutex.UnlockContext(context.Background())
	}, nil
}

// classify tells a key held elsewhere apart from a Redis that did not answer.
func classify(key string, err error) error {
	var (
		taken     *redsync.ErrTaken
		nodeTaken *redsync.ErrNodeTaken
		redisErr  *redsync.RedisError
	)
	switch {
	case errors.As(err, &redisErr):
		return fmt.Errorf("%w: lock %s: %v", ErrUnavailable, key, err)
	case errors.As(err, &taken), errors.As(err, &nodeTaken), errors.Is(err, redsync.ErrFailed):
		return fmt.Errorf("%w: %v", ErrInFlight, err)
	default:
		return fmt.Errorf("%w: lock %s: %v", ErrUnavailable, key, err)
	}
}

type localGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewLocal guards within a single process.
func NewLocal() Guard {
	return &localGuard{held: map[string]struct{}{}}
}

func (g *localGuard) Acquire(ctx context.Context, key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.held[key]; ok {
		return nil, ErrInFlight
	}
	g.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.held, key)
			g.mu.Unlock()
		})
	}, nil
}
