package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pagedots/internal/config"
	uicomponents "github.com/alexisbeaulieu97/pagedots/internal/ui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	frame := m.visibleFrame()
	dots := uicomponents.NewPageIndicator(frame)
	if m.zones != nil {
		dots = dots.WithMarker(m.zones, m.zonePrefix)
	}

	carousel := uicomponents.NewCarousel(m.carousel, pageCard).WithIndicator(dots)

	sections := []string{
		m.styles.title.Render("pagedots"),
		m.styles.status.Render(fmt.Sprintf("%s region · offset %+.2f · group %d of %d",
			frame.Region, m.offset,
			m.carousel.Selected()/m.carousel.Count()+1, m.carousel.DuplicateGroups())),
		"",
		carousel.ViewWithContext(m.render),
		"",
		m.position.View(m.carousel.SelectedRealIndex(), m.carousel.Count()),
	}

	if m.err != nil {
		sections = append(sections, m.styles.err.Render("reload failed: "+m.err.Error()))
	}

	sections = append(sections, m.styles.help.Render(m.help.View(m.keys)))

	view := m.styles.frame.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	if m.zones != nil {
		return m.zones.Scan(view)
	}
	return view
}

func pageCard(p config.Page) uicomponents.Card {
	return uicomponents.Card{Title: p.Title, Body: p.Body}
}
