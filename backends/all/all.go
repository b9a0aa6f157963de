// Package all registers every bundled writer.
package all

import (
	// BinaryReader
	_ "github.com/evilsocket/datawriter/backends/binary"
	// HTKMLFReader
	_ "github.com/evilsocket/datawriter/backends/htk"
	// LUSequenceReader
	_ "github.com/evilsocket/datawriter/backends/lusequence"
	// RemoteWriter
	_ "github.com/evilsocket/datawriter/backends/remote"
)
