package writer

import (
	"errors"
	"io/ioutil"
	"sort"
	"sync"

	"github.com/evilsocket/datawriter/wrapper"

	"github.com/robertkrimen/otto"
	"github.com/robertkrimen/otto/ast"
	"github.com/robertkrimen/otto/parser"
)

var errModuleClosed = errors.New("module has been closed")

// scriptModule is a module loaded from a <Name>.js file, every handle
// has its own VM so handles are fully independent.
type scriptModule struct {
	sync.Mutex
	name     string
	location string
	vm       *otto.Otto
	ctx      *wrapper.Context
	files    *wrapper.Files
	symbols  map[string]bool
	closed   bool
	release  func()
}

// declaredFunctions returns the names of the top level functions of a
// program, declared either as function statements or as variables
// initialized with a function literal.
func declaredFunctions(program *ast.Program) map[string]bool {
	names := make(map[string]bool)
	for _, decl := range program.DeclarationList {
		switch d := decl.(type) {
		case *ast.FunctionDeclaration:
			if d.Function != nil && d.Function.Name != nil {
				names[d.Function.Name.Name] = true
			}
		case *ast.VariableDeclaration:
			for _, v := range d.List {
				if _, isFunc := v.Initializer.(*ast.FunctionLiteral); isFunc {
					names[v.Name] = true
				}
			}
		}
	}
	return names
}

func openScript(name, location string) (*scriptModule, error) {
	src, err := ioutil.ReadFile(location)
	if err != nil {
		return nil, err
	}

	program, err := parser.ParseFile(nil, location, src, 0)
	if err != nil {
		return nil, err
	}

	m := &scriptModule{
		name:     name,
		location: location,
		vm:       otto.New(),
		ctx:      wrapper.NewContext(name),
		symbols:  declaredFunctions(program),
	}
	m.files = wrapper.NewFiles(m.ctx)

	if err := m.vm.Set("ctx", m.ctx); err != nil {
		return nil, err
	} else if err := m.vm.Set("files", m.files); err != nil {
		return nil, err
	} else if _, err := m.vm.Run(string(src)); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *scriptModule) Name() string {
	return m.name
}

func (m *scriptModule) Location() string {
	return m.location
}

func (m *scriptModule) Lookup(symbol string) (interface{}, bool) {
	m.Lock()
	defer m.Unlock()

	if m.closed || !m.symbols[symbol] {
		return nil, false
	}

	switch symbol {
	case Float.Symbol():
		return Factory[float32](func() (Backend[float32], error) {
			return newScriptBackend[float32](m, symbol)
		}), true
	case Double.Symbol():
		return Factory[float64](func() (Backend[float64], error) {
			return newScriptBackend[float64](m, symbol)
		}), true
	}

	v, err := m.vm.Get(symbol)
	return v, err == nil
}

func (m *scriptModule) Symbols() []string {
	names := make([]string, 0, len(m.symbols))
	for name := range m.symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *scriptModule) Close() error {
	m.Lock()
	defer m.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	m.vm = nil

	err := m.files.Close()
	if m.release != nil {
		m.release()
	}
	return err
}

// call invokes fn on this, reporting both exceptions and ctx.Error
// calls as errors.
func (m *scriptModule) call(this otto.Value, fn otto.Value, args ...interface{}) (otto.Value, error) {
	m.Lock()
	defer m.Unlock()

	if m.closed {
		return otto.UndefinedValue(), errModuleClosed
	}

	m.ctx.Reset()
	ret, err := fn.Call(this, args...)
	if err != nil {
		return ret, err
	}
	return ret, m.ctx.Err()
}
