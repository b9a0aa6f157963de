package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"sort"
	"strconv"
	"strings"
)

// Parameters is a read only, case insensitive view over a set of
// configuration values. Nested JSON objects are exposed as sub
// parameters via Sub and Subsections.
type Parameters struct {
	values map[string]interface{}
	// lower case key -> original key
	keys map[string]string
}

// New creates a Parameters object from a generic map, the map is copied
// so further changes to it won't be visible.
func New(values map[string]interface{}) Parameters {
	p := Parameters{
		values: make(map[string]interface{}, len(values)),
		keys:   make(map[string]string, len(values)),
	}
	for k, v := range values {
		if sub, ok := v.(map[string]interface{}); ok {
			v = New(sub)
		}
		p.values[k] = v
		p.keys[strings.ToLower(k)] = k
	}
	return p
}

// FromJSON parses raw JSON data into a Parameters object.
func FromJSON(data []byte) (Parameters, error) {
	values := make(map[string]interface{})
	if err := json.Unmarshal(data, &values); err != nil {
		return Parameters{}, err
	}
	return New(values), nil
}

// LoadConfig reads and parses a JSON configuration file.
func LoadConfig(configFile string) (Parameters, error) {
	if data, err := ioutil.ReadFile(configFile); err != nil {
		return Parameters{}, err
	} else if params, err := FromJSON(data); err != nil {
		return Parameters{}, fmt.Errorf("error while parsing %s: %v", configFile, err)
	} else {
		return params, nil
	}
}

func (p Parameters) get(key string) (interface{}, bool) {
	if orig, found := p.keys[strings.ToLower(key)]; found {
		return p.values[orig], true
	}
	return nil, false
}

// Has returns true if the key is defined.
func (p Parameters) Has(key string) bool {
	_, found := p.get(key)
	return found
}

// Len returns the number of top level keys.
func (p Parameters) Len() int {
	return len(p.values)
}

// Keys returns the sorted list of top level keys, as they were
// originally spelled.
func (p Parameters) Keys() []string {
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns the value of key as a string, or def if not found.
func (p Parameters) String(key, def string) string {
	v, found := p.get(key)
	if !found || v == nil {
		return def
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	}
	return fmt.Sprintf("%v", v)
}

// Int returns the value of key as an integer, or def if not found
// or not convertible.
func (p Parameters) Int(key string, def int) int {
	return int(p.Float(key, float64(def)))
}

// Float returns the value of key as a float64, or def if not found
// or not convertible.
func (p Parameters) Float(key string, def float64) float64 {
	v, found := p.get(key)
	if !found {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return def
}

// Bool returns the value of key as a boolean, or def if not found
// or not convertible.
func (p Parameters) Bool(key string, def bool) bool {
	v, found := p.get(key)
	if !found {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(b)); err == nil {
			return parsed
		}
	}
	return def
}

// Strings returns the value of key as a list of strings, a single
// string value is split by commas.
func (p Parameters) Strings(key string) []string {
	v, found := p.get(key)
	if !found || v == nil {
		return nil
	}
	switch l := v.(type) {
	case []interface{}:
		out := make([]string, 0, len(l))
		for _, e := range l {
			out = append(out, fmt.Sprintf("%v", e))
		}
		return out
	case string:
		out := make([]string, 0)
		for _, part := range strings.Split(l, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	return []string{fmt.Sprintf("%v", v)}
}

// Sub returns the nested parameters stored at key, the second return
// value is false if key does not exist or it's not an object.
func (p Parameters) Sub(key string) (Parameters, bool) {
	v, found := p.get(key)
	if !found {
		return Parameters{}, false
	}
	sub, ok := v.(Parameters)
	return sub, ok
}

// Subsections returns the sorted names of the keys holding nested objects.
func (p Parameters) Subsections() []string {
	names := make([]string, 0)
	for k, v := range p.values {
		if _, ok := v.(Parameters); ok {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

// With returns a copy of the parameters with key set to value.
func (p Parameters) With(key string, value interface{}) Parameters {
	m := p.Map()
	if orig, found := p.keys[strings.ToLower(key)]; found {
		delete(m, orig)
	}
	m[key] = value
	return New(m)
}

// Map returns a deep copy of the parameters as a generic map.
func (p Parameters) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(p.values))
	for k, v := range p.values {
		if sub, ok := v.(Parameters); ok {
			m[k] = sub.Map()
		} else {
			m[k] = v
		}
	}
	return m
}

// JSON encodes the parameters back to JSON.
func (p Parameters) JSON() ([]byte, error) {
	return json.Marshal(p.Map())
}
