// Package mock is an in-memory stand-in for the ARKODE backend. It serves
// seeded collections with artificial latency so the dashboard can be demoed
// without a server.
package mock

import (
	"context"
	"crypto/rand"
	"io"
	mrand "math/rand/v2"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/config"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/model"
)

// Demo credentials accepted by Login.
const (
	DemoEmail    = "john@arkode.dev"
	DemoPassword = "password"
)

// Delays emulate network latency per call class.
type Delays struct {
	Default  time.Duration
	Health   time.Duration
	Login    time.Duration
	Generate time.Duration
}

// DefaultDelays are the latencies the demo dashboard shipped with.
func DefaultDelays() Delays {
	return Delays{
		Default:  500 * time.Millisecond,
		Health:   200 * time.Millisecond,
		Login:    800 * time.Millisecond,
		Generate: 1500 * time.Millisecond,
	}
}

// DelaysFromConfig converts configured milliseconds, honoring mock_no_delay.
func DelaysFromConfig(cfg *config.Config) Delays {
	if cfg.MockNoDelay {
		return Delays{}
	}
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	return Delays{
		Default:  ms(cfg.MockDelays.DefaultMS),
		Health:   ms(cfg.MockDelays.HealthMS),
		Login:    ms(cfg.MockDelays.LoginMS),
		Generate: ms(cfg.MockDelays.GenerateMS),
	}
}

// Options configures a Mock. The zero value has no latency and re-randomizes
// project stats on every fetch.
type Options struct {
	Delays Delays

	// StableStats caches project stats per id after the first fetch.
	StableStats bool

	// Now overrides the clock (tests).
	Now func() time.Time

	// Seed makes project stats deterministic when non-zero.
	Seed uint64
}

// Mock holds the seed collections. All methods are safe for concurrent use.
type Mock struct {
	delays      Delays
	stableStats bool
	now         func() time.Time

	mu        sync.Mutex
	rng       *mrand.Rand
	entropy   io.Reader
	connected bool

	workspaces []model.Workspace
	projects   []model.Project
	stats      map[string]model.ProjectStats
	leads      []model.Lead
	clients    []model.Client
	proposals  []model.Proposal
	calendar   []model.CalendarItem
	articles   []model.Article
	repos      []model.Repo
}

// New returns a Mock loaded with the demo seed data.
func New(opts Options) *Mock {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	var rng *mrand.Rand
	if opts.Seed != 0 {
		rng = mrand.New(mrand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	} else {
		rng = mrand.New(mrand.NewPCG(mrand.Uint64(), mrand.Uint64()))
	}

	m := &Mock{
		delays:      opts.Delays,
		stableStats: opts.StableStats,
		now:         now,
		rng:         rng,
		entropy:     ulid.Monotonic(rand.Reader, 0),
		stats:       make(map[string]model.ProjectStats),
	}
	m.seed()
	return m
}

// wait sleeps for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// newID returns a monotonic, time-ordered ULID. Caller holds m.mu.
func (m *Mock) newID() string {
	return ulid.MustNew(ulid.Timestamp(m.now()), m.entropy).String()
}

func (m *Mock) timestamp() string {
	return model.Timestamp(m.now())
}
