package loader

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/crm"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okPayload(total int) *model.GroupedDeals {
	return &model.GroupedDeals{OK: true, Total: total, Grouped: map[string][]model.Deal{}}
}

func TestLoader_LoadMirrorsProgress(t *testing.T) {
	fetcher := &crm.MockFetcher{
		Payload: okPayload(2),
		Reports: []crm.MockReport{
			{Step: crm.StepConnecting, Percent: 5, Label: "Conectando ao CRM"},
			{Step: crm.StepFetching, Percent: 50, Label: "Buscando negócios"},
			{Step: crm.StepFinalizing, Percent: 100, Label: "Finalizando"},
		},
	}

	var seen []Progress
	l := New(fetcher, WithOnProgress(func(p Progress) {
		seen = append(seen, p)
	}))

	result, err := l.Load(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Deals.Total)
	assert.False(t, result.FromCache)

	// The initial reset plus the three mirrored reports.
	require.Len(t, seen, 4)
	assert.Equal(t, Progress{Step: 0, Percent: 0, Label: crm.StepLabels[0]}, seen[0])
	assert.Equal(t, 100, seen[3].Percent)
	assert.Equal(t, crm.StepFinalizing, l.Progress().Step)
}

func TestLoader_CacheWithinStalenessWindow(t *testing.T) {
	fetcher := &crm.MockFetcher{Payload: okPayload(1)}
	l := New(fetcher)

	first, err := l.Load(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	assert.Equal(t, 1, fetcher.Calls)

	second, err := l.Load(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, 1, fetcher.Calls, "fresh cache must not refetch")

	assert.False(t, l.Stale())
}

func TestLoader_ForceRefreshBypassesCache(t *testing.T) {
	fetcher := &crm.MockFetcher{Payload: okPayload(1)}
	l := New(fetcher)

	_, err := l.Load(context.Background(), false)
	require.NoError(t, err)

	refreshed, err := l.Load(context.Background(), true)
	require.NoError(t, err)
	assert.False(t, refreshed.FromCache)
	assert.Equal(t, 2, fetcher.Calls)
}

func TestLoader_StalenessExpiry(t *testing.T) {
	fetcher := &crm.MockFetcher{Payload: okPayload(1)}
	l := New(fetcher, WithStaleness(10*time.Millisecond))

	_, err := l.Load(context.Background(), false)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	assert.True(t, l.Stale())

	_, err = l.Load(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.Calls)
}

func TestLoader_TimeoutIsDistinct(t *testing.T) {
	fetcher := &slowFetcher{delay: 50 * time.Millisecond}
	l := New(fetcher, WithTimeout(10*time.Millisecond))

	_, err := l.Load(context.Background(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.NotErrorIs(t, err, crm.ErrUpstream)
}

func TestLoader_TransportFailurePassesThrough(t *testing.T) {
	fetcher := &crm.MockFetcher{Err: crm.ErrUpstream}
	l := New(fetcher)

	_, err := l.Load(context.Background(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, crm.ErrUpstream)
	assert.NotErrorIs(t, err, ErrTimeout)

	// A failed fetch never populates the cache.
	_, ok := l.Cached()
	assert.False(t, ok)
}

func TestLoader_SupersededFetchIsDiscarded(t *testing.T) {
	block := make(chan struct{})
	fetcher := &gateFetcher{gate: block, payload: okPayload(7), started: make(chan struct{})}
	l := New(fetcher)

	type outcome struct {
		result *Result
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		r, err := l.Load(context.Background(), true)
		done <- outcome{r, err}
	}()

	// Wait for the first fetch to be in flight, then start a newer refresh.
	<-fetcher.started
	quick := &crm.MockFetcher{Payload: okPayload(9)}
	l.fetcher = quick
	second, err := l.Load(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 9, second.Deals.Total)

	// Release the first fetch: its response must be discarded.
	close(block)
	first := <-done
	require.Error(t, first.err)
	assert.ErrorIs(t, first.err, ErrSuperseded)
	assert.Nil(t, first.result)

	cached, ok := l.Cached()
	require.True(t, ok)
	assert.Equal(t, 9, cached.Deals.Total, "stale response must not overwrite newer result")
}

func TestLoader_ResetProgress(t *testing.T) {
	fetcher := &crm.MockFetcher{
		Payload: okPayload(1),
		Reports: []crm.MockReport{{Step: crm.StepFinalizing, Percent: 100, Label: "Finalizando"}},
	}
	l := New(fetcher)

	_, err := l.Load(context.Background(), false)
	require.NoError(t, err)
	require.Equal(t, 100, l.Progress().Percent)

	l.ResetProgress()
	assert.Zero(t, l.Progress().Percent)
	assert.Zero(t, l.Progress().Step)
}

// slowFetcher blocks until its delay elapses or the context expires.
type slowFetcher struct {
	delay time.Duration
}

func (s *slowFetcher) FetchGroupedDeals(ctx context.Context, _ crm.ProgressFunc) (*model.GroupedDeals, error) {
	select {
	case <-time.After(s.delay):
		return okPayload(0), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// gateFetcher signals when a fetch starts and blocks until released.
type gateFetcher struct {
	gate    chan struct{}
	payload *model.GroupedDeals
	started chan struct{}
	once    sync.Once
}

func (g *gateFetcher) FetchGroupedDeals(ctx context.Context, _ crm.ProgressFunc) (*model.GroupedDeals, error) {
	g.once.Do(func() { close(g.started) })
	select {
	case <-g.gate:
		return g.payload, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

var _ crm.DealFetcher = (*slowFetcher)(nil)
var _ crm.DealFetcher = (*gateFetcher)(nil)

func TestLoader_WrapsSentinelErrors(t *testing.T) {
	fetcher := &crm.MockFetcher{Err: errors.New("connection refused")}
	l := New(fetcher)

	_, err := l.Load(context.Background(), false)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTimeout)
}
