// Package workload holds the teaching-load rules: how many hours an atom costs
// for a given audience, which assignments are allowed, and how a teacher's
// total is classified. Everything here is pure and safe for concurrent use.
package workload

import "fmt"

// Default institutional thresholds.
const (
	DefaultMaxHours             = 192.0
	DefaultUnderloadHours       = 96.0
	DefaultTPGroupCeilingFactor = 4
)

// Policy carries the institution-specific parameters of the rules
type Policy struct {
	// MaxHours is the service ceiling above which a teacher is overloaded.
	MaxHours float64 `yaml:"max_hours" env:"WORKLOAD_MAX_HOURS"`
	// UnderloadHours is the minimum service below which a teacher is underloaded.
	UnderloadHours float64 `yaml:"underload_hours" env:"WORKLOAD_UNDERLOAD_HOURS"`
	// TPGroupCeilingFactor bounds a lab section to groupSize × factor students.
	TPGroupCeilingFactor int `yaml:"tp_group_ceiling_factor" env:"WORKLOAD_TP_GROUP_CEILING_FACTOR"`
}

// DefaultPolicy returns the policy used when nothing is configured
func DefaultPolicy() Policy {
	return Policy{
		MaxHours:             DefaultMaxHours,
		UnderloadHours:       DefaultUnderloadHours,
		TPGroupCeilingFactor: DefaultTPGroupCeilingFactor,
	}
}

// Validate checks that the thresholds are coherent
func (p Policy) Validate() error {
	if p.MaxHours <= 0 {
		return fmt.Errorf("workload max hours must be positive, got %v", p.MaxHours)
	}
	if p.UnderloadHours < 0 {
		return fmt.Errorf("workload underload hours cannot be negative, got %v", p.UnderloadHours)
	}
	if p.UnderloadHours > p.MaxHours {
		return fmt.Errorf("workload underload hours (%v) cannot exceed max hours (%v)", p.UnderloadHours, p.MaxHours)
	}
	if p.TPGroupCeilingFactor < 1 {
		return fmt.Errorf("lab group ceiling factor must be at least 1, got %d", p.TPGroupCeilingFactor)
	}
	return nil
}
