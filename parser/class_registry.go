package parser

import (
	"fmt"

	"mython/types"
)

// classRegistry tracks classes by name as they are declared, for two
// purposes only the parser needs: rejecting a duplicate class name, and
// resolving a base-class or constructor-call name to the *types.Class it
// refers to. It holds no relation to anything at runtime beyond that; once
// parsing finishes, evaluation reaches classes through the AST and the
// enclosing scope, never through this registry.
type classRegistry struct {
	classes map[string]*types.Class
}

func newClassRegistry() *classRegistry {
	return &classRegistry{classes: make(map[string]*types.Class)}
}

func (r *classRegistry) lookup(name string) (*types.Class, bool) {
	c, ok := r.classes[name]
	return c, ok
}

func (r *classRegistry) declare(name string, class *types.Class) error {
	if _, exists := r.classes[name]; exists {
		return fmt.Errorf("class %s already exists", name)
	}
	r.classes[name] = class
	return nil
}
