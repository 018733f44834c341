package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/carouselkit/carousel/internal/autoplay"
	"github.com/carouselkit/carousel/internal/config"
	"github.com/carouselkit/carousel/internal/events"
	"github.com/carouselkit/carousel/internal/gesture"
	"github.com/carouselkit/carousel/internal/layout"
	"github.com/carouselkit/carousel/internal/logger"
	"github.com/carouselkit/carousel/internal/responsive"
	"github.com/carouselkit/carousel/internal/slider"
	"github.com/carouselkit/carousel/internal/tui/components"
	"github.com/carouselkit/carousel/internal/watch"
)

// Options configure the slider widget.
type Options struct {
	Logger    *logger.Logger
	Publisher *events.Publisher
	Watcher   *watch.Watcher
	// Width seeds the viewport until the first WindowSizeMsg arrives.
	Width int
}

// Model is the root slider widget. It owns the single SliderState; the
// navigation surfaces and coordinators only ever read it through the
// machine's accessors and the emitted events.
type Model struct {
	// Core data
	name   string
	slides []config.Slide

	// Configuration
	base     config.SliderConfig
	cfg      config.SliderConfig
	resolver *responsive.Resolver

	// Subsystems
	machine     *slider.Machine
	recognizer  *gesture.Recognizer
	timer       *autoplay.Timer
	coordinator *layout.Coordinator
	publisher   *events.Publisher
	watcher     *watch.Watcher
	log         *logger.Logger

	// Navigation surfaces
	counter  components.Counter
	dots     components.Dots
	arrows   components.Arrows
	position components.Position
	keys     KeyMap

	// Dimensions
	width  int
	height int

	// UI state
	finished  bool
	watchNote string
}

// NewModel constructs the slider widget for a parsed deck.
func NewModel(deck *config.Deck, opts Options) Model {
	log := opts.Logger
	publisher := opts.Publisher
	if publisher == nil {
		publisher = events.NewPublisher(log)
	}

	width := opts.Width
	if width <= 0 {
		width = 80
	}

	base := config.ParseAttributes(deck.Attributes, log)
	rules, _ := config.ParseResponsive(deck.Attributes[config.AttrResponsive], log)
	resolver := responsive.NewResolver(rules, log)
	cfg := resolver.Resolve(base, width)

	m := Model{
		name:      deck.Name,
		slides:    append([]config.Slide(nil), deck.Slides...),
		base:      base,
		cfg:       cfg,
		resolver:  resolver,
		publisher: publisher,
		watcher:   opts.Watcher,
		log:       log.Component("widget"),
		counter:   components.NewCounter(cfg.CountFormat),
		dots:      components.NewDots(),
		arrows:    components.NewArrows(),
		position:  components.NewPosition(24),
		keys:      DefaultKeyMap(),
		width:     width,
		height:    24,
	}

	m.machine = slider.New(slider.Params{
		Total:    len(m.slides),
		PerView:  cfg.PerView,
		Step:     cfg.Step,
		Infinite: cfg.Infinite,
	}, cfg.Start, publisher, log)

	m.recognizer = gesture.NewRecognizer(cfg.Swipe, cfg.SwipeThreshold)
	m.timer = autoplay.NewTimer(cfg.AutoSlideInterval)
	m.coordinator = layout.NewCoordinator(cfg.FlexibleHeight, nil, log)
	m.coordinator.Measure(m.activeContentHeight())

	return m
}

// Init starts autoplay and deck watching.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if gen, ok := m.timer.Start(); ok {
		cmds = append(cmds, autoTickCmd(gen, m.timer.Interval()))
	}
	if m.watcher != nil {
		cmds = append(cmds, watchDeckCmd(m.watcher))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// GetCurrentSlide returns the committed index, consistent with the last
// slide-complete event.
func (m Model) GetCurrentSlide() int {
	return m.machine.Current()
}

// Config returns the active resolved configuration.
func (m Model) Config() config.SliderConfig {
	return m.cfg
}

// Paused reports whether autoplay is suspended.
func (m Model) Paused() bool {
	return m.timer.Paused()
}

// Next advances the slider, returning the settle command for an accepted
// transition.
func (m *Model) Next() tea.Cmd {
	tr, ok := m.machine.Next()
	if !ok {
		return nil
	}
	return transitionCmds(tr)
}

// Previous moves the slider back.
func (m *Model) Previous() tea.Cmd {
	tr, ok := m.machine.Previous()
	if !ok {
		return nil
	}
	return transitionCmds(tr)
}

// SetCurrentSlide jumps to an explicit index, wrapping or clamping
// out-of-range input. The auto-advance interval restarts from zero.
func (m *Model) SetCurrentSlide(index int) tea.Cmd {
	var cmds []tea.Cmd
	if tr, ok := m.machine.Set(index); ok {
		cmds = append(cmds, transitionCmds(tr))
	}
	// An explicit jump restarts the interval so the next auto-advance
	// happens a full period later. A paused timer stays paused.
	if m.timer.Running() && !m.timer.Paused() {
		if gen, ok := m.timer.Start(); ok {
			cmds = append(cmds, autoTickCmd(gen, m.timer.Interval()))
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// applyConfig swaps in a newly resolved configuration atomically: every
// subsystem is reconfigured before the next render, so no partially applied
// field is observable.
func (m *Model) applyConfig(cfg config.SliderConfig) tea.Cmd {
	m.cfg = cfg
	m.counter = components.NewCounter(cfg.CountFormat)

	m.machine.Reconfigure(slider.Params{
		Total:    len(m.slides),
		PerView:  cfg.PerView,
		Step:     cfg.Step,
		Infinite: cfg.Infinite,
	})
	m.recognizer.Configure(cfg.Swipe, cfg.SwipeThreshold)
	m.coordinator.SetFlexible(cfg.FlexibleHeight)
	m.coordinator.Measure(m.activeContentHeight())

	if gen, ok := m.timer.Reconfigure(cfg.AutoSlideInterval); ok {
		return autoTickCmd(gen, m.timer.Interval())
	}
	return nil
}

// teardown cancels the timer and observers; after it returns no scheduled
// callback can reach the model.
func (m *Model) teardown() {
	m.finished = true
	m.timer.Stop()
	m.coordinator.Detach()
	m.recognizer.Cancel()
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			m.log.Error(err, "closing deck watcher")
		}
	}
}

func (m Model) activeContentHeight() int {
	if len(m.slides) == 0 {
		return 0
	}
	idx := m.machine.Target()
	if idx >= len(m.slides) {
		idx = len(m.slides) - 1
	}
	slide := m.slides[idx]
	return lipgloss.Height(slide.Body) + 1 // body plus title row
}

// visibleIndices returns the slide indices shown for the current target
// position, honouring per-view and wrapping when infinite.
func (m Model) visibleIndices() []int {
	total := len(m.slides)
	if total == 0 {
		return nil
	}

	indices := make([]int, 0, m.cfg.PerView)
	start := m.machine.Target()
	for i := 0; i < m.cfg.PerView; i++ {
		idx := start + i
		if idx >= total {
			if !m.cfg.Infinite {
				break
			}
			idx %= total
		}
		indices = append(indices, idx)
	}
	return indices
}
