// Package inflate presents a small ordered data set as a much longer virtual
// sequence so a carousel can scroll in either direction for a long time
// before reaching an end. Every virtual (inflated) index maps back to a real
// element by modulo arithmetic; the data itself is never copied per group.
package inflate

import (
	"fmt"

	apperrors "github.com/alexisbeaulieu97/pagedots/pkg/errors"
)

const component = "inflator"

// Inflator maps an inflated index space of Count()*DuplicateGroups() slots
// onto data. The selected inflated index is plain mutable state owned by the
// caller's update loop and is never clamped.
type Inflator[E comparable] struct {
	data     []E
	groups   int
	selected int
}

// New builds an Inflator over data duplicated groups times, with the
// selection placed on initialSelection inside group initialGroup.
func New[E comparable](data []E, groups, initialGroup int, initialSelection E) (*Inflator[E], error) {
	if len(data) == 0 {
		return nil, apperrors.NewEmptyDataError(component)
	}
	if groups < 1 {
		return nil, apperrors.NewValidationError("duplicate_groups", fmt.Sprintf("must be at least 1, got %d", groups), nil)
	}
	if initialGroup < 0 || initialGroup >= groups {
		return nil, apperrors.NewIndexOutOfRangeError("initial group", initialGroup, groups)
	}

	local := indexOf(data, initialSelection)
	if local < 0 {
		return nil, apperrors.NewValidationError("initial_selection", fmt.Sprintf("%v is not in the data set", initialSelection), nil)
	}

	inf := &Inflator[E]{
		data:   append([]E(nil), data...),
		groups: groups,
	}
	inf.selected = inf.InitialInflatedIndex(initialGroup, local)
	return inf, nil
}

// NewCentered places the selection in the middle group, which leaves the
// most room to scroll both ways.
func NewCentered[E comparable](data []E, groups int, initialSelection E) (*Inflator[E], error) {
	return New(data, groups, groups/2, initialSelection)
}

// Count is the number of real elements.
func (in *Inflator[E]) Count() int { return len(in.data) }

// DuplicateGroups is the number of times the data is repeated.
func (in *Inflator[E]) DuplicateGroups() int { return in.groups }

// InflatedCount is the size of the virtual index space.
func (in *Inflator[E]) InflatedCount() int { return len(in.data) * in.groups }

// Data returns a copy of the real elements.
func (in *Inflator[E]) Data() []E { return append([]E(nil), in.data...) }

// RealIndex maps an inflated index to an index into the data. Indices outside
// [0, InflatedCount()) still resolve, including negative ones.
func (in *Inflator[E]) RealIndex(inflated int) int {
	return pmod(inflated, len(in.data))
}

// Element returns the real element behind an inflated index.
func (in *Inflator[E]) Element(inflated int) E {
	return in.data[in.RealIndex(inflated)]
}

// InitialInflatedIndex is the inflated index of local inside group.
func (in *Inflator[E]) InitialInflatedIndex(group, local int) int {
	return group*len(in.data) + local
}

// Selected returns the selected inflated index.
func (in *Inflator[E]) Selected() int { return in.selected }

// SetSelected replaces the selected inflated index without clamping; keeping
// it inside [0, InflatedCount()) is the caller's job.
func (in *Inflator[E]) SetSelected(inflated int) { in.selected = inflated }

// Advance moves the selection by delta inflated slots.
func (in *Inflator[E]) Advance(delta int) { in.selected += delta }

// SelectedRealIndex is RealIndex(Selected()).
func (in *Inflator[E]) SelectedRealIndex() int { return in.RealIndex(in.selected) }

// SelectedElement is Element(Selected()).
func (in *Inflator[E]) SelectedElement() E { return in.Element(in.selected) }

// Recentered returns the inflated index in the middle group that shows the
// same real element as the current selection.
func (in *Inflator[E]) Recentered() int {
	return in.InitialInflatedIndex(in.groups/2, in.SelectedRealIndex())
}

// InRange reports whether inflated lies inside the virtual index space.
func (in *Inflator[E]) InRange(inflated int) bool {
	return inflated >= 0 && inflated < in.InflatedCount()
}

func indexOf[E comparable](data []E, target E) int {
	for i, v := range data {
		if v == target {
			return i
		}
	}
	return -1
}

// pmod is the non-negative remainder of i / n.
func pmod(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}
