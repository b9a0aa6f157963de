package writer

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/evilsocket/islazy/log"
)

// PathEnv is the environment variable used to initialize the path of
// the DefaultLoader.
const PathEnv = "DATAWRITER_MODULES"

// DefaultLoader is used by New when no loader is specified.
var DefaultLoader = NewLoader(os.Getenv(PathEnv))

// Loader loads writer modules by canonical name, compiled in modules first
// and then script modules found in Path. Every call to Load returns a new,
// independent handle. A Loader is safe for concurrent use.
type Loader struct {
	sync.Mutex
	// Path is the folder script modules are loaded from.
	Path string
	// lower case name -> number of handles not closed yet
	live map[string]int
}

// NewLoader creates a loader for the script modules in path, an empty
// path means the current working directory.
func NewLoader(path string) *Loader {
	return &Loader{
		Path: path,
		live: make(map[string]int),
	}
}

// Location returns where the script module for name would be loaded from.
func (l *Loader) Location(name Canonical) string {
	return filepath.Join(l.Path, string(name)+ModuleExt)
}

// Load loads the module for the given canonical name. It returns a
// *ModuleNotFoundError carrying the module location if the module
// can't be loaded.
func (l *Loader) Load(name Canonical) (Module, error) {
	if reg, found := lookupBuiltin(string(name)); found {
		log.Debug("loading compiled in writer %s ...", reg.name)
		return &builtinModule{
			name:    reg.name,
			exports: reg.exports,
			release: l.acquire(reg.name),
		}, nil
	}

	location := l.Location(name)
	log.Debug("loading writer %s from %s ...", name, location)

	mod, err := openScript(string(name), location)
	if err != nil {
		return nil, &ModuleNotFoundError{
			Name:     string(name),
			Location: location,
			Err:      err,
		}
	}
	mod.release = l.acquire(string(name))

	return mod, nil
}

// acquire accounts for a new live handle of name, the returned function
// must be called exactly once when the handle is closed.
func (l *Loader) acquire(name string) func() {
	key := strings.ToLower(name)

	l.Lock()
	l.live[key]++
	l.Unlock()

	return func() {
		l.Lock()
		defer l.Unlock()
		if l.live[key]--; l.live[key] <= 0 {
			delete(l.live, key)
		}
	}
}

// Live returns the number of handles of the named module that have been
// loaded and not closed yet.
func (l *Loader) Live(name Canonical) int {
	l.Lock()
	defer l.Unlock()
	return l.live[strings.ToLower(string(name))]
}

// LiveTotal returns the number of module handles not closed yet.
func (l *Loader) LiveTotal() int {
	l.Lock()
	defer l.Unlock()
	total := 0
	for _, n := range l.live {
		total += n
	}
	return total
}

// Scripts returns the sorted names of the script modules available in
// the loader path.
func (l *Loader) Scripts() ([]string, error) {
	path := l.Path
	if path == "" {
		path = "."
	}

	matches, err := filepath.Glob(filepath.Join(path, "*"+ModuleExt))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(match), ModuleExt))
	}
	sort.Strings(names)
	return names, nil
}
