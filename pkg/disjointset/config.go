package disjointset

const (
	// DefaultCapacity is the number of element slots preallocated when
	// Config.Capacity is unset.
	DefaultCapacity = 16
)

// Config holds construction options for a DisjointSet
type Config struct {
	// Capacity is a hint for how many elements will be registered. If <= 0, uses DefaultCapacity.
	Capacity int
}

// applyDefaults fills in default values for unset config fields
func (c *Config) applyDefaults() {
	if c.Capacity <= 0 {
		c.Capacity = DefaultCapacity
	}
}
