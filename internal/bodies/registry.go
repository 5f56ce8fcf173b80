package bodies

import "fmt"

// UnknownBodyError reports a body name absent from the registry.
type UnknownBodyError struct {
	Name string
}

func (e *UnknownBodyError) Error() string {
	return fmt.Sprintf("unknown body %q", e.Name)
}

// Body pairs a name with its ephemeris.
type Body struct {
	Name      string
	Ephemeris Ephemeris
}

// Registry maps body names to bodies. Read-only after construction; safe to
// share across concurrent callers.
type Registry struct {
	byName map[string]*Body
}

// NewRegistry builds a registry from bodies. Later duplicates replace
// earlier entries.
func NewRegistry(list ...*Body) *Registry {
	byName := make(map[string]*Body, len(list))
	for _, b := range list {
		byName[b.Name] = b
	}
	return &Registry{byName: byName}
}

// Get looks up a body by name. Fails with *UnknownBodyError when absent.
func (r *Registry) Get(name string) (*Body, error) {
	b, ok := r.byName[name]
	if !ok {
		return nil, &UnknownBodyError{Name: name}
	}
	return b, nil
}

// Names returns the registered body names, unordered.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.byName))
	for name := range r.byName {
		out = append(out, name)
	}
	return out
}

// InitialStatesOf concatenates each propagated body's Cartesian state
// relative to its central body at the given epoch, in declaration order.
// Both slices pair by index and must have equal length. Any missing body or
// failed ephemeris query fails the whole lookup.
func InitialStatesOf(bodiesToPropagate, centralBodies []string, reg *Registry, epoch float64) ([]float64, error) {
	if len(centralBodies) != len(bodiesToPropagate) {
		return nil, fmt.Errorf("%d central bodies for %d propagated bodies",
			len(centralBodies), len(bodiesToPropagate))
	}

	out := make([]float64, 0, StateSize*len(bodiesToPropagate))
	for i, name := range bodiesToPropagate {
		state, err := RelativeState(name, centralBodies[i], reg, epoch)
		if err != nil {
			return nil, err
		}
		out = append(out, state...)
	}
	return out, nil
}

// RelativeState returns the state of body relative to centralBody at epoch.
func RelativeState(body, centralBody string, reg *Registry, epoch float64) ([]float64, error) {
	b, err := reg.Get(body)
	if err != nil {
		return nil, err
	}
	bodyState, err := b.Ephemeris.CartesianState(epoch)
	if err != nil {
		return nil, fmt.Errorf("ephemeris of %q: %w", body, err)
	}

	central, err := reg.Get(centralBody)
	if err != nil {
		return nil, err
	}
	centralState, err := central.Ephemeris.CartesianState(epoch)
	if err != nil {
		return nil, fmt.Errorf("ephemeris of %q: %w", centralBody, err)
	}

	out := make([]float64, StateSize)
	for k := 0; k < StateSize; k++ {
		out[k] = bodyState[k] - centralState[k]
	}
	return out, nil
}
