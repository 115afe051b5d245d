package theme

import "sync"

// DarkModeState is the tri-state dark-mode override.
type DarkModeState int

const (
	// SystemFollowing defers to the host system's color scheme preference.
	SystemFollowing DarkModeState = iota
	// ExplicitOn forces dark mode on.
	ExplicitOn
	// ExplicitOff forces dark mode off.
	ExplicitOff
)

// String implements fmt.Stringer.
func (s DarkModeState) String() string {
	switch s {
	case ExplicitOn:
		return "on"
	case ExplicitOff:
		return "off"
	default:
		return "system"
	}
}

// Controller holds the only mutable state in the engine: the dark-mode
// override. It starts following the system preference; Toggle and
// SetExplicit move to an explicit state, and there is no transition back to
// system-following. When the tenant disallows dark mode every mutation is a
// no-op and the effective value is always light.
type Controller struct {
	mu         sync.Mutex
	state      DarkModeState
	available  bool
	systemPref func() bool
}

// NewController constructs a Controller. systemPref reports the host
// system's current dark preference; nil means "no preference" (light).
func NewController(available bool, systemPref func() bool) *Controller {
	if systemPref == nil {
		systemPref = func() bool { return false }
	}
	return &Controller{state: SystemFollowing, available: available, systemPref: systemPref}
}

// State returns the current override state.
func (c *Controller) State() DarkModeState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Effective reports whether dark mode is active right now: capability gate
// first, then the explicit override, then the system preference.
func (c *Controller) Effective() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.effectiveLocked()
}

func (c *Controller) effectiveLocked() bool {
	if !c.available {
		return false
	}
	switch c.state {
	case ExplicitOn:
		return true
	case ExplicitOff:
		return false
	default:
		return c.systemPref()
	}
}

// Toggle flips the effective value into an explicit state. From
// system-following it moves to the opposite of the current effective value.
// No-op when the tenant disallows dark mode.
func (c *Controller) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.available {
		return
	}
	if c.effectiveLocked() {
		c.state = ExplicitOff
	} else {
		c.state = ExplicitOn
	}
}

// SetExplicit moves directly to ExplicitOn or ExplicitOff. No-op when the
// tenant disallows dark mode.
func (c *Controller) SetExplicit(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.available {
		return
	}
	if on {
		c.state = ExplicitOn
	} else {
		c.state = ExplicitOff
	}
}

// SetAvailable updates the capability gate after a re-resolution. The
// override state is kept so a tenant switch does not forget the user's
// choice.
func (c *Controller) SetAvailable(available bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.available = available
}
