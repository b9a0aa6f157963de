package writer

import (
	"fmt"
)

// ResolveFactory returns the entry point of the module for the element
// type E. It never falls back to the entry point of another element type.
func ResolveFactory[E Element](m Module) (Factory[E], error) {
	symbol := ElementTypeOf[E]().Symbol()

	v, found := m.Lookup(symbol)
	if !found {
		return nil, &SymbolNotFoundError{
			Module:   m.Name(),
			Location: m.Location(),
			Symbol:   symbol,
		}
	}

	factory, ok := v.(Factory[E])
	if !ok || factory == nil {
		return nil, &SymbolNotFoundError{
			Module:   m.Name(),
			Location: m.Location(),
			Symbol:   symbol,
			Reason:   fmt.Sprintf("unexpected type %T", v),
		}
	}

	return factory, nil
}
