// Package components provides the theme-aware terminal components pagedots
// renders with.
//
// # Overview
//
// Every component is a view struct configured through With* builders and
// rendered with View or ViewWithContext. Styling flows from a Theme value
// and a platform Profile carried by RenderContext; nothing is read from
// package globals.
//
//	ctx := components.DefaultContext().
//		WithTheme(components.DarkTheme()).
//		WithProfile(components.ASCIIProfile())
//	out := components.NewPageIndicator(frame).ViewWithContext(ctx)
//
// # Components
//
// Primitives:
//   - Text: styled text content
//   - Stack: vertical or horizontal arrangement with gaps and alignment
//
// Interactive:
//   - Button: label styled by its projected InteractionState
//   - PageIndicator: the sliding dot window of an indicator.Frame
//   - Carousel: the selected element of an inflate.Inflator with its
//     neighbours and indicator
//
// # Interaction states
//
// InteractionState is one closed set shared by all components. A component
// declares the Capabilities it supports and Capabilities.Project maps any
// requested state onto that subset, so callers can pass the same state to
// every component.
//
// # Style modifiers
//
// Components accept StyleFunc values through WithAppliers:
//
//	card := components.VStack(title, body).WithAppliers(
//		components.RoundedBorder(components.RolePrimary),
//		components.Padding(components.SymmetricSpacing(0, 1)),
//	)
//
// # Mouse zones
//
// PageIndicator.WithMarker wraps each dot in a zone named by DotZoneID. Any
// Marker works. The demo uses a bubblezone Manager and hit-tests the zone of
// each visible dot; ParseDotZoneID recovers the index from a zone id.
package components
