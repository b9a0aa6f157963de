package writer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	require.True(t, IsRegistered("MemoryWriter"))
	require.True(t, IsRegistered("memorywriter"))
	require.False(t, IsRegistered("DoesNotExist"))
	require.Contains(t, Modules(), "MemoryWriter")

	Register("TemporaryWriter", ExportsOf(
		func() (Backend[float32], error) { return newFake[float32](), nil },
		nil,
	))
	require.True(t, IsRegistered("TemporaryWriter"))

	Unregister("temporarywriter")
	require.False(t, IsRegistered("TemporaryWriter"))
	// no-op
	Unregister("TemporaryWriter")
}

func TestRegisterPanics(t *testing.T) {
	valid := ExportsOf(func() (Backend[float32], error) { return newFake[float32](), nil }, nil)

	require.Panics(t, func() { Register("", valid) })
	require.Panics(t, func() { Register("EmptyWriter", Exports{}) })
	require.Panics(t, func() { Register("MemoryWriter", valid) })
	require.Panics(t, func() { Register("MEMORYWRITER", valid) })
	require.Panics(t, func() { Register("NilWriter", Exports{"GetWriterF": nil}) })
	// entry points must match their element type
	require.Panics(t, func() {
		Register("SwappedWriter", Exports{
			"GetWriterF": Factory[float64](func() (Backend[float64], error) { return newFake[float64](), nil }),
		})
	})
	require.Panics(t, func() {
		Register("UntypedWriter", Exports{
			"GetWriterD": func() (Backend[float64], error) { return newFake[float64](), nil },
		})
	})

	for _, name := range []string{"EmptyWriter", "NilWriter", "SwappedWriter", "UntypedWriter"} {
		require.False(t, IsRegistered(name), name)
	}
}

func TestExportsOf(t *testing.T) {
	exports := ExportsOf(nil, nil)
	require.Empty(t, exports)

	exports = ExportsOf(
		func() (Backend[float32], error) { return nil, nil },
		func() (Backend[float64], error) { return nil, nil },
	)
	require.Equal(t, []string{"GetWriterD", "GetWriterF"}, exports.names())
	require.NoError(t, exports.check())
}
