// Package viewmodel defines the data structures for TUI rendering.
package viewmodel

import (
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/funnel"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/model"
)

// FunnelView represents the funnel display data: one section per canonical
// category present in the filtered output, in funnel order.
type FunnelView struct {
	Sections    []CategorySectionView
	AllExpanded bool
	TotalShown  int
	HasFilter   bool
}

// CategorySectionView represents one canonical category's section.
type CategorySectionView struct {
	Category    model.CanonicalCategory
	Label       string
	Count       int
	HiddenCount int
	Deals       []DealRowView
	Expanded    bool
	CanLoadMore bool
}

// DealRowView represents a single deal decorated for display. Pipeline
// decoration happens here, at render time only; the engine never sees it.
type DealRowView struct {
	Name          string
	DisplayID     string
	Company       string
	Location      string
	CreatedAt     string
	PipelineName  string
	PipelineIcon  string
	PipelineColor string
}

// BuildFunnelView assembles the display model from the filtered groups, the
// disclosure state and the pipeline normalizer.
func BuildFunnelView(
	filtered map[model.CanonicalCategory][]model.Deal,
	counts map[model.CanonicalCategory]int,
	disclosure *funnel.Disclosure,
	normalizer *funnel.Normalizer,
	hasFilter bool,
) FunnelView {
	view := FunnelView{
		AllExpanded: disclosure.AllExpanded(counts),
		HasFilter:   hasFilter,
	}

	for _, cat := range model.Categories() {
		deals, ok := filtered[cat]
		if !ok {
			continue
		}

		section := CategorySectionView{
			Category:    cat,
			Label:       cat.Label(),
			Count:       counts[cat],
			Expanded:    disclosure.Expanded(cat),
			CanLoadMore: disclosure.CanLoadMore(cat, len(deals)),
		}

		if section.Expanded {
			visible := disclosure.Visible(cat, deals)
			section.HiddenCount = len(deals) - len(visible)
			section.Deals = make([]DealRowView, 0, len(visible))
			for _, d := range visible {
				section.Deals = append(section.Deals, buildDealRow(d, normalizer))
			}
		}

		view.TotalShown += section.Count
		view.Sections = append(view.Sections, section)
	}

	return view
}

func buildDealRow(d model.Deal, normalizer *funnel.Normalizer) DealRowView {
	row := DealRowView{
		Name:      d.Name,
		DisplayID: d.DisplayID,
		Company:   d.Company,
		Location:  joinLocation(d.City, d.State),
	}

	if t, ok := d.CreatedTime(); ok {
		row.CreatedAt = t.Format("02/01/2006")
	}

	if desc, ok := normalizer.Descriptor(d.Pipeline); ok {
		row.PipelineName = desc.Name
		row.PipelineIcon = desc.Icon
		row.PipelineColor = desc.Color
	}

	return row
}

func joinLocation(city, state string) string {
	switch {
	case city != "" && state != "":
		return city + " / " + state
	case city != "":
		return city
	default:
		return state
	}
}

// IsEmpty returns true if no category survived filtering.
func (fv FunnelView) IsEmpty() bool {
	return len(fv.Sections) == 0
}
