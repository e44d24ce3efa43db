package components

// InteractionState is the single closed set of states every interactive
// component draws from.
type InteractionState int

const (
	StateEnabled InteractionState = iota
	StatePressed
	StateFocused
	StateDisabled
	StateLoading
)

func (s InteractionState) String() string {
	switch s {
	case StateEnabled:
		return "enabled"
	case StatePressed:
		return "pressed"
	case StateFocused:
		return "focused"
	case StateDisabled:
		return "disabled"
	case StateLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// Capabilities is the subset of InteractionState a component supports.
// Enabled is always supported.
type Capabilities uint8

const (
	CanPress Capabilities = 1 << iota
	CanFocus
	CanDisable
	CanLoad

	AllCapabilities = CanPress | CanFocus | CanDisable | CanLoad
)

// Supports reports whether state is in the capability set.
func (c Capabilities) Supports(state InteractionState) bool {
	switch state {
	case StateEnabled:
		return true
	case StatePressed:
		return c&CanPress != 0
	case StateFocused:
		return c&CanFocus != 0
	case StateDisabled:
		return c&CanDisable != 0
	case StateLoading:
		return c&CanLoad != 0
	default:
		return false
	}
}

// Project maps state onto the nearest supported state. Loading degrades to
// Disabled when possible since both block input; everything else degrades
// to Enabled.
func (c Capabilities) Project(state InteractionState) InteractionState {
	if c.Supports(state) {
		return state
	}
	if state == StateLoading && c.Supports(StateDisabled) {
		return StateDisabled
	}
	return StateEnabled
}
