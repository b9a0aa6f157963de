package writer

import (
	"fmt"
	"sort"
	"strings"
)

// SectionType describes what kind of data a section holds.
type SectionType int

// Section types, in the same order as the writer file format they come from.
const (
	SectionNull SectionType = iota
	SectionFile
	SectionData
	SectionLabel
	SectionLabelMapping
	SectionStats
	SectionCategoryLabel
)

var sectionNames = map[SectionType]string{
	SectionNull:          "null",
	SectionFile:          "file",
	SectionData:          "data",
	SectionLabel:         "labels",
	SectionLabelMapping:  "labelMapping",
	SectionStats:         "stats",
	SectionCategoryLabel: "categoryLabels",
}

func (t SectionType) String() string {
	if name, found := sectionNames[t]; found {
		return name
	}
	return fmt.Sprintf("SectionType(%d)", int(t))
}

// ParseSectionType parses a section type name, case insensitive. The
// singular forms "label" and "categoryLabel" are accepted too.
func ParseSectionType(s string) (SectionType, error) {
	s = strings.TrimSpace(s)
	for t, name := range sectionNames {
		if strings.EqualFold(name, s) || strings.EqualFold(name, s+"s") {
			return t, nil
		}
	}
	return SectionNull, fmt.Errorf("unknown section type '%s'", s)
}

// Section is the layout metadata of a named unit of output.
type Section struct {
	Type SectionType
	// number of elements per record, 0 if variable or not applicable
	Dim int
}

// Sections maps section names to their layout.
type Sections map[string]Section

// Find looks up a section by name, case insensitive. It returns the
// name as stored in the map.
func (s Sections) Find(name string) (string, Section, bool) {
	if sec, found := s[name]; found {
		return name, sec, true
	}
	for stored, sec := range s {
		if strings.EqualFold(stored, name) {
			return stored, sec, true
		}
	}
	return "", Section{}, false
}

// Names returns the sorted section names.
func (s Sections) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LabelID is the numeric identifier of a label.
type LabelID uint32

// LabelMapping associates label identifiers with label values.
type LabelMapping map[LabelID]string

// IDs returns the sorted label identifiers.
func (m LabelMapping) IDs() []LabelID {
	ids := make([]LabelID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Inverse returns the value -> identifier direction of the mapping.
func (m LabelMapping) Inverse() map[string]LabelID {
	inv := make(map[string]LabelID, len(m))
	for id, label := range m {
		inv[label] = id
	}
	return inv
}

// Label returns the label for id, or its decimal representation if
// the mapping does not define it.
func (m LabelMapping) Label(id LabelID) string {
	if label, found := m[id]; found {
		return label
	}
	return fmt.Sprintf("%d", id)
}

// Buffers maps section names to the raw data of a single save operation.
// Fixed size data is stored column major, one column of Dim elements per
// record.
type Buffers[E Element] map[string][]E

// Find looks up a buffer by section name, case insensitive.
func (b Buffers[E]) Find(name string) ([]E, bool) {
	if data, found := b[name]; found {
		return data, true
	}
	for stored, data := range b {
		if strings.EqualFold(stored, name) {
			return data, true
		}
	}
	return nil, false
}
