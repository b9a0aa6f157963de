package writer

import (
	"fmt"
	"strconv"

	"github.com/evilsocket/datawriter/config"

	"github.com/robertkrimen/otto"
)

// scriptBackend adapts the object returned by a script entry point
// to the Backend interface.
type scriptBackend[E Element] struct {
	m    *scriptModule
	this otto.Value
}

func newScriptBackend[E Element](m *scriptModule, symbol string) (Backend[E], error) {
	m.Lock()
	if m.closed {
		m.Unlock()
		return nil, errModuleClosed
	}
	fn, err := m.vm.Get(symbol)
	m.Unlock()

	if err != nil {
		return nil, err
	} else if !fn.IsFunction() {
		return nil, fmt.Errorf("%s: %s is not a function", m.location, symbol)
	}

	ret, err := m.call(otto.NullValue(), fn)
	if err != nil {
		return nil, err
	} else if !ret.IsObject() {
		return nil, fmt.Errorf("%s: %s did not return an object", m.location, symbol)
	}

	return &scriptBackend[E]{m: m, this: ret}, nil
}

func (b *scriptBackend[E]) invoke(method string, required bool, args ...interface{}) (otto.Value, error) {
	fn, err := b.this.Object().Get(method)
	if err != nil {
		return otto.UndefinedValue(), err
	} else if !fn.IsFunction() {
		if required {
			return otto.UndefinedValue(), fmt.Errorf("%s: writer does not implement %s", b.m.location, method)
		}
		return otto.UndefinedValue(), nil
	}
	return b.m.call(b.this, fn, args...)
}

// object creates an empty JS object with the given properties.
func (b *scriptBackend[E]) object(props map[string]interface{}) (otto.Value, error) {
	b.m.Lock()
	defer b.m.Unlock()

	if b.m.closed {
		return otto.UndefinedValue(), errModuleClosed
	}

	obj, err := b.m.vm.Object(`({})`)
	if err != nil {
		return otto.UndefinedValue(), err
	}
	for name, value := range props {
		if err := obj.Set(name, value); err != nil {
			return otto.UndefinedValue(), err
		}
	}
	return obj.Value(), nil
}

func (b *scriptBackend[E]) Init(cfg config.Parameters) error {
	_, err := b.invoke("Init", false, cfg.Map())
	return err
}

func (b *scriptBackend[E]) GetSections(sections Sections) error {
	ret, err := b.invoke("GetSections", true)
	if err != nil {
		return err
	} else if ret.IsUndefined() || ret.IsNull() {
		return nil
	}

	exported, err := ret.Export()
	if err != nil {
		return err
	}

	layout, ok := exported.(map[string]interface{})
	if !ok {
		return fmt.Errorf("%s: GetSections returned %T instead of an object", b.m.location, exported)
	}

	for name, v := range layout {
		sec, err := sectionFromScript(v)
		if err != nil {
			return fmt.Errorf("%s: section %s: %v", b.m.location, name, err)
		}
		sections[name] = sec
	}
	return nil
}

func (b *scriptBackend[E]) SaveData(recordStart int, buffers Buffers[E], numRecords, datasetSize, variableSized int) (bool, error) {
	props := make(map[string]interface{}, len(buffers))
	for name, data := range buffers {
		props[name] = data
	}

	obj, err := b.object(props)
	if err != nil {
		return false, err
	}

	ret, err := b.invoke("SaveData", true, recordStart, obj, numRecords, datasetSize, variableSized)
	if err != nil {
		return false, err
	}
	return ret.ToBoolean()
}

func (b *scriptBackend[E]) SaveMapping(targetID string, mapping LabelMapping) error {
	props := make(map[string]interface{}, len(mapping))
	for id, label := range mapping {
		props[strconv.FormatUint(uint64(id), 10)] = label
	}

	obj, err := b.object(props)
	if err != nil {
		return err
	}

	_, err = b.invoke("SaveMapping", true, targetID, obj)
	return err
}

func (b *scriptBackend[E]) Destroy() error {
	_, err := b.invoke("Destroy", false)
	return err
}

// sectionFromScript parses either a section type name or an object
// like { type: "data", dim: 3 }.
func sectionFromScript(v interface{}) (Section, error) {
	switch d := v.(type) {
	case string:
		t, err := ParseSectionType(d)
		return Section{Type: t}, err
	case map[string]interface{}:
		sec := Section{Type: SectionData}
		for _, key := range []string{"type", "sectionType"} {
			if name, found := d[key]; found {
				t, err := ParseSectionType(fmt.Sprintf("%v", name))
				if err != nil {
					return sec, err
				}
				sec.Type = t
			}
		}
		if dim, found := d["dim"]; found {
			n, err := toInt(dim)
			if err != nil {
				return sec, err
			}
			sec.Dim = n
		}
		return sec, nil
	}
	return Section{}, fmt.Errorf("unexpected section value %v (%T)", v, v)
}

func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float32:
		return int(n), nil
	case float64:
		return int(n), nil
	case string:
		return strconv.Atoi(n)
	}
	return 0, fmt.Errorf("%v (%T) is not a number", v, v)
}
