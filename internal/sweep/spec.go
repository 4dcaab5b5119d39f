package sweep

// Spec is an ordered sequence of parameter units. Iterating it enumerates
// the cartesian product across units (never within a group) and flattens
// each product point into one Instance.
type Spec struct {
	units []Unit
}

// NewSpec builds a specification over the given units, in order. Key
// uniqueness across units is not enforced.
func NewSpec(units ...Unit) *Spec {
	return &Spec{units: append([]Unit(nil), units...)}
}

// Units returns the specification's units in order.
func (s *Spec) Units() []Unit {
	return append([]Unit(nil), s.units...)
}

// Open begins a fresh enumeration of the product. The enumeration is lazy:
// no unit's value set is materialized, and stopping early costs nothing.
// Because every unit is restartable, Open may be called any number of times
// and always yields the same sequence.
func (s *Spec) Open() *InstanceCursor {
	return &InstanceCursor{units: s.units}
}

// InstanceCursor walks one enumeration of a Spec's product. Selections of
// the last unit vary fastest (standard lexicographic product order).
type InstanceCursor struct {
	units    []Unit
	cursors  []UnitCursor
	selected [][]Binding
	instance *Instance
	err      error
	started  bool
	done     bool
}

// Next advances to the next instance. It returns false when the product is
// exhausted or a unit failed; check Err afterwards.
func (c *InstanceCursor) Next() bool {
	if c.done || c.err != nil {
		return false
	}
	if !c.started {
		return c.start()
	}
	return c.advance()
}

// start opens every unit and positions each cursor on its first selection.
func (c *InstanceCursor) start() bool {
	c.started = true
	// The product of zero units is a single empty instance.
	if len(c.units) == 0 {
		c.instance = newInstance(nil)
		c.done = true
		return true
	}
	c.cursors = make([]UnitCursor, len(c.units))
	c.selected = make([][]Binding, len(c.units))
	for i, u := range c.units {
		cur := u.Open()
		if !cur.Next() {
			// An empty unit empties the whole product.
			c.err = cur.Err()
			c.done = true
			return false
		}
		c.cursors[i] = cur
		c.selected[i] = cur.Bindings()
	}
	c.instance = c.flatten()
	return true
}

// advance steps the odometer: the last unit first, carrying into earlier
// units and restarting every later one on carry. Restarting is sound
// because unit traversals are restartable.
func (c *InstanceCursor) advance() bool {
	for i := len(c.cursors) - 1; i >= 0; i-- {
		if c.cursors[i].Next() {
			c.selected[i] = c.cursors[i].Bindings()
			for j := i + 1; j < len(c.cursors); j++ {
				cur := c.units[j].Open()
				if !cur.Next() {
					c.err = cur.Err()
					c.done = true
					return false
				}
				c.cursors[j] = cur
				c.selected[j] = cur.Bindings()
			}
			c.instance = c.flatten()
			return true
		}
		if err := c.cursors[i].Err(); err != nil {
			c.err = err
			c.done = true
			return false
		}
	}
	c.done = true
	return false
}

// flatten concatenates the current per-unit selections, unit order first,
// within-unit order second.
func (c *InstanceCursor) flatten() *Instance {
	n := 0
	for _, bs := range c.selected {
		n += len(bs)
	}
	flat := make([]Binding, 0, n)
	for _, bs := range c.selected {
		flat = append(flat, bs...)
	}
	return newInstance(flat)
}

// Instance returns the instance produced by the last successful Next.
func (c *InstanceCursor) Instance() *Instance {
	return c.instance
}

// Err returns the first failure encountered during enumeration.
func (c *InstanceCursor) Err() error {
	return c.err
}
