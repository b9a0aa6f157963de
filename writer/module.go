package writer

import (
	"fmt"
	"sort"
	"sync"
)

// ModuleExt is the file extension of script modules.
const ModuleExt = ".js"

// BuiltinScheme prefixes the location of modules compiled into the binary.
const BuiltinScheme = "builtin://"

// Module is a loaded writer module. A module handle is owned by whoever
// loaded it and must be closed once, after every backend it created has
// been destroyed.
type Module interface {
	// Name returns the canonical name the module was loaded for.
	Name() string
	// Location returns where the module was loaded from.
	Location() string
	// Lookup returns the value exported as symbol.
	Lookup(symbol string) (interface{}, bool)
	// Symbols returns the sorted names of the exported symbols.
	Symbols() []string
	// Close releases the module.
	Close() error
}

// Exports maps entry point names to the values a module exports.
type Exports map[string]interface{}

// ExportsOf builds the exports of a module from its typed entry points,
// nil factories are not exported.
func ExportsOf(float Factory[float32], double Factory[float64]) Exports {
	exports := make(Exports)
	if float != nil {
		exports[Float.Symbol()] = float
	}
	if double != nil {
		exports[Double.Symbol()] = double
	}
	return exports
}

// check makes sure every exported entry point has the factory type
// matching its element type.
func (e Exports) check() error {
	for sym, v := range e {
		if v == nil {
			return fmt.Errorf("symbol %s is nil", sym)
		}
		switch sym {
		case Float.Symbol():
			if _, ok := v.(Factory[float32]); !ok {
				return fmt.Errorf("symbol %s has type %T, expected %T", sym, v, Factory[float32](nil))
			}
		case Double.Symbol():
			if _, ok := v.(Factory[float64]); !ok {
				return fmt.Errorf("symbol %s has type %T, expected %T", sym, v, Factory[float64](nil))
			}
		}
	}
	return nil
}

func (e Exports) names() []string {
	names := make([]string, 0, len(e))
	for sym := range e {
		names = append(names, sym)
	}
	sort.Strings(names)
	return names
}

// builtinModule is the handle of a module registered with Register.
type builtinModule struct {
	sync.Mutex
	name    string
	exports Exports
	closed  bool
	release func()
}

func (m *builtinModule) Name() string {
	return m.name
}

func (m *builtinModule) Location() string {
	return BuiltinScheme + m.name
}

func (m *builtinModule) Lookup(symbol string) (interface{}, bool) {
	m.Lock()
	defer m.Unlock()
	if m.closed {
		return nil, false
	}
	v, found := m.exports[symbol]
	return v, found
}

func (m *builtinModule) Symbols() []string {
	return m.exports.names()
}

func (m *builtinModule) Close() error {
	m.Lock()
	defer m.Unlock()
	if !m.closed {
		m.closed = true
		if m.release != nil {
			m.release()
		}
	}
	return nil
}
