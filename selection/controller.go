package selection

import "github.com/lixenwraith/worldmap/catalog"

// Observer is notified after every dispatched action, including rejected ones
// where next is prev
type Observer func(a Action, prev, next State)

// Controller owns the state for one mounted map. It is driven by a single
// event loop and is not safe for concurrent use.
type Controller struct {
	cat       Lookup
	state     State
	observers []Observer
}

// NewController creates a controller with empty state
func NewController(cat Lookup) *Controller {
	return &Controller{cat: cat}
}

// State returns the current state
func (c *Controller) State() State {
	return c.state
}

// Observe registers fn to run after each dispatch
func (c *Controller) Observe(fn Observer) {
	if fn != nil {
		c.observers = append(c.observers, fn)
	}
}

// Dispatch applies a and notifies observers.
// On error the state is left as it was.
func (c *Controller) Dispatch(a Action) error {
	if a.Kind == KindNone {
		return nil
	}

	prev := c.state
	next, err := Apply(prev, c.cat, a)
	if err != nil {
		next = prev
	}
	c.state = next

	for _, fn := range c.observers {
		fn(a, prev, next)
	}
	return err
}

// Convenience wrappers named after the user operations

func (c *Controller) ToggleRegion(id catalog.RegionID) error { return c.Dispatch(ToggleRegion(id)) }
func (c *Controller) ClearAll()                               { _ = c.Dispatch(Clear()) }

func (c *Controller) SetActiveRegion(id catalog.RegionID) error {
	if id.IsNone() {
		return c.Dispatch(Dismiss())
	}
	return c.Dispatch(Activate(id))
}
