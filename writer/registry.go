package writer

import (
	"sort"
	"strings"
	"sync"
)

type registered struct {
	name    string
	exports Exports
}

var (
	registryMu sync.RWMutex
	// lower case name -> module
	builtins = make(map[string]registered)
)

// Register makes a compiled in module available by name. It is meant to
// be called from the init function of the package implementing the
// writer:
//
//	func init() {
//	    writer.Register("BinaryReader", writer.ExportsOf(newFloat, newDouble))
//	}
//
// Register panics if the name is empty or already registered, if exports
// is empty or if an entry point does not have the factory type of its
// element type.
func Register(name string, exports Exports) {
	registryMu.Lock()
	defer registryMu.Unlock()

	key := strings.ToLower(name)
	if key == "" {
		panic("writer: Register called with an empty name")
	} else if len(exports) == 0 {
		panic("writer: Register called with no exports for " + name)
	} else if err := exports.check(); err != nil {
		panic("writer: Register " + name + ": " + err.Error())
	} else if _, dup := builtins[key]; dup {
		panic("writer: Register called twice for " + name)
	}

	copied := make(Exports, len(exports))
	for sym, v := range exports {
		copied[sym] = v
	}
	builtins[key] = registered{name: name, exports: copied}
}

// Unregister removes a module from the registry, it is a no-op if the
// module is not registered. Handles already loaded stay valid.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(builtins, strings.ToLower(name))
}

// IsRegistered returns true if a compiled in module with this name exists.
func IsRegistered(name string) bool {
	_, found := lookupBuiltin(name)
	return found
}

// Modules returns the sorted names of the compiled in modules.
func Modules() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(builtins))
	for _, reg := range builtins {
		names = append(names, reg.name)
	}
	sort.Strings(names)
	return names
}

func lookupBuiltin(name string) (registered, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	reg, found := builtins[strings.ToLower(name)]
	return reg, found
}
