package tui

import (
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/loader"
)

// Data loading messages.
type dealsLoadedMsg struct {
	err    error
	result *loader.Result
}

// progressMsg mirrors one loader progress report into the update loop.
type progressMsg struct {
	progress loader.Progress
}

// clearProgressMsg resets the progress display shortly after a load settles,
// so the last step does not linger on screen.
type clearProgressMsg struct{}
