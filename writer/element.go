package writer

import (
	"fmt"
	"strings"
)

// Element is the constraint satisfied by the numeric types a writer
// can be instantiated for.
type Element interface {
	float32 | float64
}

// ElementType is the runtime tag of an Element type, it selects which
// entry point of a module is resolved.
type ElementType int

// Supported element types.
const (
	Float ElementType = iota
	Double

	numElementTypes
)

// one entry point per element type, the array length makes the
// mapping total over the supported tags.
var symbols = [numElementTypes]string{
	Float:  "GetWriterF",
	Double: "GetWriterD",
}

func init() {
	for t, sym := range symbols {
		if sym == "" {
			panic(fmt.Sprintf("writer: no entry point defined for element type %d", t))
		}
	}
}

// ElementTypes returns all the supported element types.
func ElementTypes() []ElementType {
	types := make([]ElementType, numElementTypes)
	for i := range types {
		types[i] = ElementType(i)
	}
	return types
}

// ElementTypeOf returns the tag of the type parameter E.
func ElementTypeOf[E Element]() ElementType {
	var zero E
	switch any(zero).(type) {
	case float32:
		return Float
	case float64:
		return Double
	default:
		panic("writer: unsupported element type")
	}
}

// Symbol returns the name of the module entry point for this element type.
func (t ElementType) Symbol() string {
	if t < 0 || t >= numElementTypes {
		return ""
	}
	return symbols[t]
}

// Size returns the size in bytes of a single element.
func (t ElementType) Size() int {
	if t == Double {
		return 8
	}
	return 4
}

func (t ElementType) String() string {
	switch t {
	case Float:
		return "float"
	case Double:
		return "double"
	}
	return fmt.Sprintf("ElementType(%d)", int(t))
}

// ParseElementType parses the name of an element type, accepting both
// the C style and Go style spelling.
func ParseElementType(s string) (ElementType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "float", "float32", "single":
		return Float, nil
	case "double", "float64":
		return Double, nil
	}
	return Float, fmt.Errorf("unknown element type '%s'", s)
}
