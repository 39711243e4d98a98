package tui

import (
	"context"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/funnel"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/loader"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/model"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/tui/components"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/tui/themes"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// State represents the current state of the TUI.
type State int

const (
	StateLoading State = iota
	StateBrowsing
	StateFiltering
	StateError
)

// Model holds the main TUI state.
type Model struct {
	ctx        context.Context
	theme      themes.Theme
	config     Config
	keymap     KeyMap
	loader     *loader.Loader
	engine     *funnel.Engine
	classifier *funnel.Classifier
	normalizer *funnel.Normalizer
	disclosure *funnel.Disclosure
	criteria   funnel.FilterCriteria

	// groups holds the full canonical grouping of the loaded deal set;
	// filtered/counts are the criteria projection rendered on screen.
	groups   map[model.CanonicalCategory][]model.Deal
	filtered map[model.CanonicalCategory][]model.Deal
	counts   map[model.CanonicalCategory]int

	funnelList components.FunnelListModel
	filterForm components.FilterFormModel
	progressUI components.ProgressModel
	progressCh chan loader.Progress

	lastError error
	cached    bool
	width     int
	height    int
	state     State
	quitting  bool
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, cfg Config, ld *loader.Loader, progressCh chan loader.Progress) Model {
	return Model{
		ctx:        ctx,
		theme:      cfg.Theme,
		config:     cfg,
		keymap:     DefaultKeyMap(),
		loader:     ld,
		engine:     funnel.NewEngine(cfg.Classifier, cfg.Normalizer),
		classifier: cfg.Classifier,
		normalizer: cfg.Normalizer,
		disclosure: funnel.NewDisclosure(),
		funnelList: components.NewFunnelList(cfg.Theme),
		filterForm: components.NewFilterForm(cfg.Theme, cfg.Normalizer),
		progressUI: components.NewProgress(cfg.Theme),
		progressCh: progressCh,
		width:      cfg.Width,
		height:     cfg.Height,
		state:      StateLoading,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.loadDeals(false),
		m.waitForProgress(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.funnelList, cmd = m.funnelList.Update(msg)
		cmds = append(cmds, cmd)
		m.filterForm, cmd = m.filterForm.Update(msg)
		cmds = append(cmds, cmd)
		m.progressUI, cmd = m.progressUI.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case progressMsg:
		m.progressUI = m.progressUI.SetView(viewmodel.LoadProgressView{
			Step:    msg.progress.Step,
			Percent: msg.progress.Percent,
			Label:   msg.progress.Label,
			Loading: m.state == StateLoading,
		})
		return m, m.waitForProgress()

	case dealsLoadedMsg:
		return m.handleDealsLoaded(msg)

	case clearProgressMsg:
		m.loader.ResetProgress()
		m.progressUI = m.progressUI.SetView(viewmodel.LoadProgressView{})
		return m, nil

	case components.ToggleSectionMsg:
		m.disclosure.Toggle(msg.Category)
		return m.refreshList(), nil

	case components.LoadMoreMsg:
		m.disclosure.LoadMore(msg.Category)
		return m.refreshList(), nil

	case components.SetAllExpandedMsg:
		m.disclosure.SetAllExpanded(msg.Expanded)
		return m.refreshList(), nil

	case components.ApplyFilterMsg:
		m.criteria = msg.Criteria
		m.state = StateBrowsing
		return m.refilter(), nil

	case components.CancelFilterMsg:
		m.state = StateBrowsing
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == StateFiltering {
		var cmd tea.Cmd
		m.filterForm, cmd = m.filterForm.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Refresh):
		if m.state == StateLoading {
			return m, nil
		}
		m.state = StateLoading
		m.lastError = nil
		return m, m.loadDeals(true)

	case key.Matches(msg, m.keymap.Filter):
		if m.state != StateBrowsing {
			return m, nil
		}
		m.state = StateFiltering
		m.filterForm = m.filterForm.SetCriteria(m.criteria)
		return m, nil

	case key.Matches(msg, m.keymap.ClearFilter):
		if m.criteria.IsZero() {
			return m, nil
		}
		m.criteria = funnel.FilterCriteria{}
		return m.refilter(), nil
	}

	if m.state == StateBrowsing {
		var cmd tea.Cmd
		m.funnelList, cmd = m.funnelList.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleDealsLoaded(msg dealsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// A superseded fetch is not a failure; a newer one is in flight.
		if isSuperseded(msg.err) {
			return m, nil
		}
		m.state = StateError
		m.lastError = msg.err
		return m, m.scheduleProgressClear()
	}

	m.groups = m.classifier.Group(msg.result.Deals.Grouped)
	m.cached = msg.result.FromCache
	m.state = StateBrowsing
	updated := m.refilter()
	return updated, m.scheduleProgressClear()
}

// refilter reapplies the active criteria over the full grouping. Disclosure
// state deliberately survives this.
func (m Model) refilter() Model {
	m.filtered, m.counts = m.engine.Filter(m.groups, m.criteria)
	return m.refreshList()
}

func (m Model) refreshList() Model {
	view := viewmodel.BuildFunnelView(m.filtered, m.counts, m.disclosure, m.normalizer, !m.criteria.IsZero())
	m.funnelList = m.funnelList.SetView(view)
	return m
}
