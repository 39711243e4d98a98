package tui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/loader"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the funnel browser and blocks until it exits.
func Run(ctx context.Context, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Fetcher == nil {
		return fmt.Errorf("fetcher is required")
	}
	if cfg.Classifier == nil {
		return fmt.Errorf("classifier is required")
	}
	if cfg.Normalizer == nil {
		return fmt.Errorf("normalizer is required")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		cancel()
	}()

	// Buffered so a slow render loop never blocks the fetch; when the buffer
	// fills the report is dropped, the next one carries fresher numbers.
	progressCh := make(chan loader.Progress, 16)

	loaderOpts := []loader.Option{
		loader.WithOnProgress(func(p loader.Progress) {
			select {
			case progressCh <- p:
			default:
			}
		}),
	}
	if cfg.Timeout > 0 {
		loaderOpts = append(loaderOpts, loader.WithTimeout(cfg.Timeout))
	}
	if cfg.Staleness > 0 {
		loaderOpts = append(loaderOpts, loader.WithStaleness(cfg.Staleness))
	}
	ld := loader.New(cfg.Fetcher, loaderOpts...)

	p := tea.NewProgram(
		newModel(ctx, cfg, ld, progressCh),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("funnel browser failed: %w", err)
	}
	return nil
}
