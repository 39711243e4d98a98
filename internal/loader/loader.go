// Package loader wraps the deal fetch in a cancellable, step-indexed progress
// protocol with a staleness-windowed result cache.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/crm"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/model"
)

var (
	// ErrTimeout surfaces a fetch that exceeded the deadline. It is distinct
	// from other transport failures so the UI can say "timeout, please retry".
	ErrTimeout = errors.New("deal fetch timed out")

	// ErrSuperseded marks a response that finished after a newer refresh had
	// already started. Its result is discarded, never applied to state.
	ErrSuperseded = errors.New("deal fetch superseded by a newer refresh")
)

const (
	// DefaultStaleness is how long the last successful result is served
	// without a refresh being considered necessary.
	DefaultStaleness = 5 * time.Minute
)

// Progress is the observable mirror of the latest in-flight report.
type Progress struct {
	Step    int
	Percent int
	Label   string
}

// Result is one successful fetch.
type Result struct {
	Deals     *model.GroupedDeals
	FetchedAt time.Time
	FromCache bool
}

// Loader runs at most one tracked fetch at a time. A second refresh does not
// cancel the first request's network call; instead a monotonically increasing
// generation counter ensures only the response matching the latest generation
// is applied, and stale responses are discarded.
type Loader struct {
	fetcher    crm.DealFetcher
	timeout    time.Duration
	staleness  time.Duration
	logger     *slog.Logger
	onProgress func(Progress)

	mu         sync.Mutex
	generation uint64
	progress   Progress
	last       *Result
}

// Option configures a Loader.
type Option func(*Loader)

// WithTimeout overrides the fetch deadline.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) { l.timeout = d }
}

// WithStaleness overrides the cache staleness window.
func WithStaleness(d time.Duration) Option {
	return func(l *Loader) { l.staleness = d }
}

// WithOnProgress registers a callback fired on every mirrored report, in
// addition to the polled Progress() state.
func WithOnProgress(fn func(Progress)) Option {
	return func(l *Loader) { l.onProgress = fn }
}

// WithLogger sets the loader's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// New creates a loader around the given fetcher.
func New(fetcher crm.DealFetcher, opts ...Option) *Loader {
	l := &Loader{
		fetcher:   fetcher,
		timeout:   crm.DefaultTimeout,
		staleness: DefaultStaleness,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches the grouped deal set. When force is false and the cached
// result is within the staleness window, the cache is returned without a
// network call; manual refresh (force) is always allowed.
func (l *Loader) Load(ctx context.Context, force bool) (*Result, error) {
	l.mu.Lock()
	if !force && l.last != nil && time.Since(l.last.FetchedAt) < l.staleness {
		cached := *l.last
		cached.FromCache = true
		l.mu.Unlock()
		return &cached, nil
	}

	l.generation++
	gen := l.generation
	// Reset to step 0 / 0% before issuing the request.
	l.progress = Progress{Step: crm.StepConnecting, Percent: 0, Label: crm.StepLabels[crm.StepConnecting]}
	l.mu.Unlock()
	l.notify()

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	deals, err := l.fetcher.FetchGroupedDeals(ctx, func(step, percent int, label string) {
		l.mirror(gen, step, percent, label)
	})

	l.mu.Lock()
	stale := gen != l.generation
	l.mu.Unlock()
	if stale {
		l.logger.Debug("discarding superseded fetch", "generation", gen)
		return nil, ErrSuperseded
	}

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrTimeout, l.timeout)
		}
		return nil, err
	}

	result := &Result{Deals: deals, FetchedAt: time.Now()}
	l.mu.Lock()
	l.last = result
	l.mu.Unlock()

	l.logger.Info("deal set loaded", "total", deals.Total, "raw_stages", len(deals.Grouped))
	return result, nil
}

// Progress returns the latest mirrored report.
func (l *Loader) Progress() Progress {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.progress
}

// ResetProgress zeroes the numeric progress. The UI calls this shortly after
// completion for transition smoothness; it carries no correctness weight.
func (l *Loader) ResetProgress() {
	l.mu.Lock()
	l.progress = Progress{}
	l.mu.Unlock()
	l.notify()
}

// Cached returns the last successful result, if any, regardless of staleness.
func (l *Loader) Cached() (*Result, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.last == nil {
		return nil, false
	}
	cached := *l.last
	cached.FromCache = true
	return &cached, true
}

// Stale reports whether the cached result is older than the staleness window
// (or absent entirely).
func (l *Loader) Stale() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last == nil || time.Since(l.last.FetchedAt) >= l.staleness
}

// mirror records a progress report, ignoring reports from superseded fetches.
func (l *Loader) mirror(gen uint64, step, percent int, label string) {
	l.mu.Lock()
	if gen != l.generation {
		l.mu.Unlock()
		return
	}
	l.progress = Progress{Step: step, Percent: percent, Label: label}
	l.mu.Unlock()
	l.notify()
}

func (l *Loader) notify() {
	if l.onProgress == nil {
		return
	}
	l.onProgress(l.Progress())
}
