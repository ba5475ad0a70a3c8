package interp

// Env is the variable environment of one run. Names are kept in the
// order they were first bound.
type Env struct {
	vars  map[string]Value
	order []string
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{vars: make(map[string]Value)}
}

// Lookup returns the value bound to name.
func (e *Env) Lookup(name string) (Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Set binds name to v. Absent values are never stored.
func (e *Env) Set(name string, v Value) {
	if v == nil {
		return
	}
	if _, ok := e.vars[name]; !ok {
		e.order = append(e.order, name)
	}
	e.vars[name] = v
}

// Names returns the bound names in first-binding order.
func (e *Env) Names() []string {
	names := make([]string, len(e.order))
	copy(names, e.order)
	return names
}

// Vars returns a copy of the bindings.
func (e *Env) Vars() map[string]Value {
	m := make(map[string]Value, len(e.vars))
	for k, v := range e.vars {
		m[k] = v
	}
	return m
}

// Len returns the number of bound names.
func (e *Env) Len() int { return len(e.order) }
