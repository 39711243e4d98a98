package components

import (
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/funnel"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/model"
)

// ToggleSectionMsg asks the root model to flip one category's expanded flag.
type ToggleSectionMsg struct {
	Category model.CanonicalCategory
}

// LoadMoreMsg asks the root model to grow one category's visible window.
type LoadMoreMsg struct {
	Category model.CanonicalCategory
}

// SetAllExpandedMsg asks the root model to expand or collapse every category.
type SetAllExpandedMsg struct {
	Expanded bool
}

// ApplyFilterMsg carries the criteria assembled by the filter form.
type ApplyFilterMsg struct {
	Criteria funnel.FilterCriteria
}

// CancelFilterMsg closes the filter form without applying.
type CancelFilterMsg struct{}
