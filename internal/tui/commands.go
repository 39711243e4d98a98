package tui

import (
	"errors"
	"time"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/loader"
	tea "github.com/charmbracelet/bubbletea"
)

// progressClearDelay is how long the completed progress indicator stays on
// screen before resetting.
const progressClearDelay = 250 * time.Millisecond

// loadDeals runs one tracked fetch.
func (m Model) loadDeals(force bool) tea.Cmd {
	return func() tea.Msg {
		result, err := m.loader.Load(m.ctx, force)
		return dealsLoadedMsg{result: result, err: err}
	}
}

// waitForProgress blocks on the next mirrored progress report. The command
// re-arms itself from Update after each message.
func (m Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		p, ok := <-m.progressCh
		if !ok {
			return nil
		}
		return progressMsg{progress: p}
	}
}

// scheduleProgressClear resets the progress display after a short beat.
func (m Model) scheduleProgressClear() tea.Cmd {
	return tea.Tick(progressClearDelay, func(time.Time) tea.Msg {
		return clearProgressMsg{}
	})
}

func isSuperseded(err error) bool {
	return errors.Is(err, loader.ErrSuperseded)
}
