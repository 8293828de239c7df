package stage

import "sort"

// Cycles maps stage names to the cycle at which the event was observed for a
// single instruction instance. A later Set for the same name overwrites the
// cycle but keeps the name in its first-seen position.
type Cycles struct {
	order  []Name
	cycles map[Name]int64
}

func NewCycles() *Cycles {
	return &Cycles{
		order:  make([]Name, 0),
		cycles: make(map[Name]int64),
	}
}

// FromMap builds a Cycles in stage-table order. Names outside the table sort
// last, alphabetically.
func FromMap(values map[Name]int64) *Cycles {
	names := make([]Name, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := names[i].ID(), names[j].ID()
		if a < 0 && b < 0 {
			return names[i] < names[j]
		}
		if a < 0 || b < 0 {
			return b < 0
		}
		return a < b
	})

	cycles := NewCycles()
	for _, name := range names {
		cycles.Set(name, values[name])
	}
	return cycles
}

func (c *Cycles) Set(name Name, cycle int64) {
	if c.cycles == nil {
		c.cycles = make(map[Name]int64)
	}
	if _, found := c.cycles[name]; !found {
		c.order = append(c.order, name)
	}
	c.cycles[name] = cycle
}

func (c *Cycles) Get(name Name) (int64, bool) {
	if c == nil {
		return 0, false
	}
	cycle, found := c.cycles[name]
	return cycle, found
}

func (c *Cycles) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// Names returns the recorded stage names in first-seen order.
func (c *Cycles) Names() []Name {
	if c == nil {
		return nil
	}
	names := make([]Name, len(c.order))
	copy(names, c.order)
	return names
}

// Each visits every recorded stage in first-seen order.
func (c *Cycles) Each(visit func(name Name, cycle int64)) {
	if c == nil {
		return
	}
	for _, name := range c.order {
		visit(name, c.cycles[name])
	}
}
