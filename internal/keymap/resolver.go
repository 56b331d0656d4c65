package keymap

// Resolver maps key strings to actions for one screen.
type Resolver struct {
	bindings map[string]Action
}

// NewResolver builds a resolver from the bindings of the given contexts.
// Later contexts override earlier ones for the same key.
func NewResolver(contexts ...Context) *Resolver {
	r := &Resolver{bindings: make(map[string]Action)}
	for _, ctx := range contexts {
		for _, b := range ByContext(ctx) {
			if b.Action == "" {
				continue
			}
			for _, key := range b.Keys {
				r.bindings[key] = b.Action
			}
		}
	}
	return r
}

// Resolve returns the action for a key, or "" if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}
