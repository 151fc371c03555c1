package model

import (
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// Registration pairs a model prototype with its validated definition.
type Registration struct {
	Definition Definition
	Prototype  interface{}
}

// Registry tracks the model definitions an application composes.
type Registry struct {
	mu      sync.RWMutex
	byTable map[string]Registration
	order   []string
}

// NewRegistry creates an empty model registry.
func NewRegistry() *Registry {
	return &Registry{
		byTable: make(map[string]Registration),
	}
}

// Register validates the definition, checks the prototype embeds what it
// declares and adds the pair to the registry. Registering the same table
// twice is an error.
func (r *Registry) Register(def Definition, prototype interface{}) error {
	if err := def.Validate(); err != nil {
		return err
	}
	if err := def.Check(prototype); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byTable[def.Table]; ok {
		return fmt.Errorf("table %q is already registered", def.Table)
	}
	r.byTable[def.Table] = Registration{Definition: def, Prototype: prototype}
	r.order = append(r.order, def.Table)
	return nil
}

// MustRegister is Register, panicking on error. Intended for package
// init functions.
func (r *Registry) MustRegister(def Definition, prototype interface{}) {
	if err := r.Register(def, prototype); err != nil {
		panic(err)
	}
}

// Registered returns all registrations in registration order.
func (r *Registry) Registered() []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	regs := make([]Registration, 0, len(r.order))
	for _, table := range r.order {
		regs = append(regs, r.byTable[table])
	}
	return regs
}

// Tables returns the registered table names in registration order.
func (r *Registry) Tables() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Lookup returns the registration for a table name.
func (r *Registry) Lookup(table string) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.byTable[table]
	return reg, ok
}

// AutoMigrate migrates every registered model in registration order.
func (r *Registry) AutoMigrate(db *gorm.DB) error {
	for _, reg := range r.Registered() {
		if err := db.AutoMigrate(reg.Prototype); err != nil {
			return fmt.Errorf("migrating table %q: %w", reg.Definition.Table, err)
		}
	}
	return nil
}

// DefaultRegistry is the global model registry.
var DefaultRegistry = NewRegistry()

// Register adds a definition to DefaultRegistry.
func Register(def Definition, prototype interface{}) error {
	return DefaultRegistry.Register(def, prototype)
}

// MustRegister adds a definition to DefaultRegistry, panicking on error.
func MustRegister(def Definition, prototype interface{}) {
	DefaultRegistry.MustRegister(def, prototype)
}

// Registered returns DefaultRegistry's registrations.
func Registered() []Registration {
	return DefaultRegistry.Registered()
}

// AutoMigrate migrates every model registered with DefaultRegistry.
func AutoMigrate(db *gorm.DB) error {
	return DefaultRegistry.AutoMigrate(db)
}
