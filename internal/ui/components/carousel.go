package components

import (
	"github.com/alexisbeaulieu97/pagedots/internal/inflate"
)

// Card is the text shown for one carousel element.
type Card struct {
	Title string
	Body  string
}

// Carousel renders the selected element of an inflator as a card flanked by
// its neighbours' titles, with the page indicator underneath.
type Carousel[E comparable] struct {
	BaseComponent
	inflator  *inflate.Inflator[E]
	card      func(E) Card
	indicator *PageIndicator
	cardWidth int
}

// NewCarousel creates a carousel over inf. card converts elements to text.
func NewCarousel[E comparable](inf *inflate.Inflator[E], card func(E) Card) *Carousel[E] {
	return &Carousel[E]{
		BaseComponent: NewBaseComponent(),
		inflator:      inf,
		card:          card,
		cardWidth:     32,
	}
}

// WithIndicator sets the indicator drawn below the card.
func (c *Carousel[E]) WithIndicator(p *PageIndicator) *Carousel[E] {
	c.indicator = p
	return c
}

// WithCardWidth sets the card width in cells.
func (c *Carousel[E]) WithCardWidth(width int) *Carousel[E] {
	c.cardWidth = width
	return c
}

// View renders the carousel.
func (c *Carousel[E]) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the carousel with the given context.
func (c *Carousel[E]) ViewWithContext(ctx RenderContext) string {
	if c.inflator == nil || c.card == nil {
		return ""
	}

	selected := c.inflator.Selected()
	current := c.card(c.inflator.SelectedElement())
	prev := c.card(c.inflator.Element(selected - 1))
	next := c.card(c.inflator.Element(selected + 1))

	body := VStack(TitleText(current.Title), BodyText(current.Body)).
		WithAppliers(
			RoundedBorder(RolePrimary),
			Padding(SymmetricSpacing(0, 1)),
			FixedWidth(c.cardWidth),
		)

	row := HStack(
		MutedText(ctx.Profile.Glyphs.Prev+" "+prev.Title),
		body,
		MutedText(next.Title+" "+ctx.Profile.Glyphs.Next),
	).WithGap(2).WithAlign(AlignCenter)

	view := VStack(row)
	if c.indicator != nil {
		view.Add(c.indicator)
	}
	view.WithAlign(AlignCenter)

	return c.ComputeStyle(ctx.Theme).Render(view.ViewWithContext(ctx.WithWidth(0)))
}
