package scenario

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownScenario = errors.New("unknown scenario")

// Registry holds scenarios in registration order.
type Registry struct {
	scenarios []Scenario
}

// Builtin returns a registry with smoke, load, stress and spike. It panics
// if a built-in scenario does not validate.
func Builtin() *Registry {
	r := &Registry{}
	for _, s := range []Scenario{Smoke(), Load(), Stress(), Spike()} {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
	return r
}

// Register validates s and adds it, replacing a scenario of the same name.
func (r *Registry) Register(s Scenario) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid scenario %s: %w", s.Name, err)
	}

	for i := range r.scenarios {
		if r.scenarios[i].Name == s.Name {
			r.scenarios[i] = s
			return nil
		}
	}
	r.scenarios = append(r.scenarios, s)
	return nil
}

func (r *Registry) Get(name string) (Scenario, error) {
	for _, s := range r.scenarios {
		if s.Name == name {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("%w: %s. Available: %s", ErrUnknownScenario, name, strings.Join(r.Names(), ", "))
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.scenarios))
	for _, s := range r.scenarios {
		names = append(names, s.Name)
	}
	return names
}
