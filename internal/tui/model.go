package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	zone "github.com/lrstanley/bubblezone"

	"github.com/alexisbeaulieu97/pagedots/internal/config"
	"github.com/alexisbeaulieu97/pagedots/internal/indicator"
	"github.com/alexisbeaulieu97/pagedots/internal/inflate"
	"github.com/alexisbeaulieu97/pagedots/internal/logger"
	"github.com/alexisbeaulieu97/pagedots/internal/tui/components"
	uicomponents "github.com/alexisbeaulieu97/pagedots/internal/ui/components"
)

const (
	framesPerSecond = 60
	// Offsets closer than this to the target, at rest, end the animation.
	settleEpsilon = 0.01
)

// Options configures a demo Model.
type Options struct {
	Config  *config.File
	Profile uicomponents.Profile
	// Zones enables mouse selection of dots. It may be nil.
	Zones  *zone.Manager
	Logger *logger.Logger
}

// Model is the bubbletea state of the pagedots demo.
type Model struct {
	cfg      *config.File
	layout   *indicator.Layout
	carousel *inflate.Inflator[config.Page]

	keys     KeyMap
	help     help.Model
	position components.Position
	render   uicomponents.RenderContext
	styles   styles

	spring    harmonica.Spring
	offset    float64
	velocity  float64
	animating bool

	zones      *zone.Manager
	zonePrefix string
	log        *logger.Logger

	width    int
	height   int
	err      error
	quitting bool
}

// NewModel constructs the demo model from a validated config.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}

	layout, carousel, err := Build(cfg)
	if err != nil {
		return Model{}, err
	}

	theme, _ := uicomponents.ThemeByName(cfg.Theme.Name)
	profile := opts.Profile
	if profile.Glyphs.Selected == "" {
		profile = uicomponents.DefaultContext().Profile
	}

	m := Model{
		cfg:      cfg,
		layout:   layout,
		carousel: carousel,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		position: components.NewPosition(0),
		render:   uicomponents.DefaultContext().WithTheme(theme).WithProfile(profile),
		styles:   newStyles(theme),
		spring:   harmonica.NewSpring(harmonica.FPS(framesPerSecond), 7.0, 0.6),
		zones:    opts.Zones,
		log:      opts.Logger.WithComponent("tui"),
	}
	if m.zones != nil {
		m.zonePrefix = m.zones.NewPrefix()
	}

	m.offset = m.targetOffset()
	return m, nil
}

// Init starts the bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// SelectedPage returns the page under the selection.
func (m Model) SelectedPage() config.Page {
	return m.carousel.SelectedElement()
}

// SelectedRealIndex returns the index of the selected page in the deck.
func (m Model) SelectedRealIndex() int {
	return m.carousel.SelectedRealIndex()
}

// SelectedInflatedIndex returns the raw inflated selection.
func (m Model) SelectedInflatedIndex() int {
	return m.carousel.Selected()
}

// Animating reports whether the indicator window is still moving.
func (m Model) Animating() bool {
	return m.animating
}

// Offset returns the animated window offset.
func (m Model) Offset() float64 {
	return m.offset
}

// Err returns the last reload error, if any.
func (m Model) Err() error {
	return m.err
}

// frame computes the indicator geometry for the current selection.
func (m Model) frame() indicator.Frame {
	frame, err := m.layout.Frame(m.carousel.Count(), m.carousel.SelectedRealIndex())
	if err != nil {
		// Count is never zero and the real index is always in range.
		m.log.Error(err, "compute indicator frame")
	}
	return frame
}

func (m Model) targetOffset() float64 {
	return m.frame().Offset
}

// visibleFrame is the frame shifted to wherever the animated offset
// currently places the window.
func (m Model) visibleFrame() indicator.Frame {
	frame := m.frame()
	if !m.animating {
		return frame
	}
	return frame.Shifted(m.layout.WindowStartAt(frame.Total, m.offset))
}

// selectInflated moves the selection and restarts the offset animation.
func (m *Model) selectInflated(inflated int) tea.Cmd {
	m.carousel.SetSelected(inflated)

	// Leave the outermost groups before running out of headroom.
	count := m.carousel.Count()
	if inflated < count || inflated >= m.carousel.InflatedCount()-count {
		m.carousel.SetSelected(m.carousel.Recentered())
	}

	m.log.WithFields(map[string]any{
		"inflated": m.carousel.Selected(),
		"real":     m.carousel.SelectedRealIndex(),
	}).Debug("selection changed")

	return m.startAnimation()
}

// selectReal selects the real page index within the current group.
func (m *Model) selectReal(index int) tea.Cmd {
	base := m.carousel.Selected() - m.carousel.SelectedRealIndex()
	return m.selectInflated(base + index)
}

func (m *Model) startAnimation() tea.Cmd {
	if math.Abs(m.targetOffset()-m.offset) < settleEpsilon {
		m.offset = m.targetOffset()
		m.velocity = 0
		return nil
	}
	if m.animating {
		return nil
	}
	m.animating = true
	return animate()
}

// step advances the spring by one frame.
func (m *Model) step() tea.Cmd {
	if !m.animating {
		return nil
	}

	target := m.targetOffset()
	m.offset, m.velocity = m.spring.Update(m.offset, m.velocity, target)
	if math.Abs(target-m.offset) < settleEpsilon && math.Abs(m.velocity) < settleEpsilon {
		m.offset, m.velocity = target, 0
		m.animating = false
		return nil
	}
	return animate()
}

func animate() tea.Cmd {
	return tea.Tick(time.Second/framesPerSecond, func(t time.Time) tea.Msg {
		return animationFrameMsg(t)
	})
}
