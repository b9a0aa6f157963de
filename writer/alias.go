package writer

import (
	"sort"
	"strings"
)

// Canonical is a writer type name after alias resolution.
type Canonical string

const (
	// TypeKey is the configuration key selecting the writer type.
	TypeKey = "writerType"
	// DefaultType is used when the configuration does not specify
	// a writer type.
	DefaultType Canonical = "BinaryReader"
)

// Canonical names of the writers shipped as part of their reader modules.
const (
	BinaryReader     Canonical = "BinaryReader"
	HTKMLFReader     Canonical = "HTKMLFReader"
	LUSequenceReader Canonical = "LUSequenceReader"
)

// writers used to live in their own modules before being merged with
// the readers, old names keep resolving to the merged module.
var aliases = map[string]Canonical{
	"htkmlfwriter":     HTKMLFReader,
	"htkmlfreader":     HTKMLFReader,
	"binarywriter":     BinaryReader,
	"binaryreader":     BinaryReader,
	"lusequencewriter": LUSequenceReader,
	"lusequencereader": LUSequenceReader,
}

// Resolve normalizes a writer type name to its canonical form. The lookup
// is case insensitive, unknown names are returned as they are (trimmed) so
// new modules can be used without touching the alias table. An empty name
// resolves to DefaultType.
func Resolve(raw string) Canonical {
	name := strings.TrimSpace(raw)
	if name == "" {
		return DefaultType
	} else if canonical, found := aliases[strings.ToLower(name)]; found {
		return canonical
	}
	return Canonical(name)
}

// Aliases returns every recognized alias with its canonical name, sorted
// by alias.
func Aliases() [][2]string {
	names := make([]string, 0, len(aliases))
	for alias := range aliases {
		names = append(names, alias)
	}
	sort.Strings(names)

	list := make([][2]string, 0, len(names))
	for _, alias := range names {
		list = append(list, [2]string{alias, string(aliases[alias])})
	}
	return list
}

// Equal compares two canonical names, case insensitive.
func (c Canonical) Equal(other Canonical) bool {
	return strings.EqualFold(string(c), string(other))
}
