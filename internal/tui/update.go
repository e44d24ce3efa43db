package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pagedots/internal/config"
	uicomponents "github.com/alexisbeaulieu97/pagedots/internal/ui/components"
)

// Update handles bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.position = m.position.WithWidth(min(40, max(10, msg.Width-12)))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case animationFrameMsg:
		cmd := m.step()
		return m, cmd

	case ConfigReloadedMsg:
		cmd := m.applyConfig(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m, m.selectInflated(m.carousel.Selected() + 1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.selectInflated(m.carousel.Selected() - 1)
	case key.Matches(msg, m.keys.First):
		return m, m.selectReal(0)
	case key.Matches(msg, m.keys.Last):
		return m, m.selectReal(m.carousel.Count() - 1)
	case key.Matches(msg, m.keys.Recenter):
		return m, m.selectInflated(m.carousel.Recentered())
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		return m, m.selectInflated(m.carousel.Selected() - 1)
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		return m, m.selectInflated(m.carousel.Selected() + 1)
	}

	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft || m.zones == nil {
		return m, nil
	}

	frame := m.visibleFrame()
	for i := frame.First; i <= frame.Last; i++ {
		if z := m.zones.Get(uicomponents.DotZoneID(m.zonePrefix, i)); z != nil && z.InBounds(msg) {
			return m, m.selectReal(i)
		}
	}
	return m, nil
}

// applyConfig rebuilds the layout and carousel from a reloaded config while
// keeping the selected page when it still exists.
func (m *Model) applyConfig(msg ConfigReloadedMsg) tea.Cmd {
	if msg.Err != nil {
		m.err = msg.Err
		m.log.Error(msg.Err, "config reload rejected")
		return nil
	}
	if msg.Config == nil {
		return nil
	}

	current := m.carousel.SelectedElement()
	index := m.carousel.SelectedRealIndex()

	cfg := *msg.Config
	cfg.Carousel.InitialPage = keepPage(cfg.Carousel.Pages, current, index).Title
	cfg.Carousel.InitialGroup = -1

	layout, carousel, err := Build(&cfg)
	if err != nil {
		m.err = err
		m.log.Error(err, "config reload rejected")
		return nil
	}

	theme, _ := uicomponents.ThemeByName(cfg.Theme.Name)
	m.cfg = &cfg
	m.layout = layout
	m.carousel = carousel
	m.render = m.render.WithTheme(theme)
	m.styles = newStyles(theme)
	m.err = nil
	m.log.Info("config reloaded")

	return m.startAnimation()
}

// keepPage finds current by title in pages, falling back to the page at the
// same position, clamped to the new deck.
func keepPage(pages []config.Page, current config.Page, index int) config.Page {
	for _, p := range pages {
		if p.Title == current.Title {
			return p
		}
	}
	return pages[min(index, len(pages)-1)]
}
