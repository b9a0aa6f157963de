package writer

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func newMemoryWriter(t *testing.T, l *Loader) *Proxy[float32] {
	p, err := New[float32](params(TypeKey, "MemoryWriter"), WithLoader(l))
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func TestNewReachesActive(t *testing.T) {
	l := NewLoader("")
	p := newMemoryWriter(t, l)

	require.Equal(t, Active, p.State())
	require.Equal(t, Canonical("MemoryWriter"), p.Canonical())
	require.Equal(t, "builtin://MemoryWriter", p.Location())
	require.Equal(t, Float, p.ElementType())
	require.Equal(t, 1, l.Live("MemoryWriter"))

	fake := p.instance.(*fakeBackend[float32])
	require.Equal(t, 1, fake.inits)
	require.Equal(t, "MemoryWriter", fake.cfg.String(TypeKey, ""))

	require.NoError(t, p.Teardown())
	require.Equal(t, TornDown, p.State())
	require.Equal(t, 1, fake.destroys)
	require.Equal(t, 0, l.LiveTotal())
}

func TestBinaryReaderScenario(t *testing.T) {
	l := NewLoader("")
	p, err := New[float32](params(TypeKey, "BinaryReader"), WithLoader(l))
	require.NoError(t, err)
	defer p.Teardown()

	require.Equal(t, BinaryReader, p.Canonical())
	require.Equal(t, Active, p.State())
	require.Equal(t, 1, l.Live(BinaryReader))
}

func TestDefaultWriterType(t *testing.T) {
	p, err := New[float64](params(), WithLoader(NewLoader("")))
	require.NoError(t, err)
	defer p.Teardown()

	require.Equal(t, DefaultType, p.Canonical())
	require.Equal(t, Double, p.ElementType())
}

func TestHTKMLFWriterAliasScenario(t *testing.T) {
	p, err := New[float32](params(TypeKey, "HTKMLFWriter"), WithLoader(NewLoader("")))
	require.NoError(t, err)
	defer p.Teardown()

	require.Equal(t, HTKMLFReader, p.Canonical())
	require.Equal(t, "builtin://HTKMLFReader", p.Location())
}

func TestAliasIsResolvedBeforeLoading(t *testing.T) {
	folder := setupModulesFolder(t)
	defer os.RemoveAll(folder)

	// the loader only sees the canonical name
	Unregister(string(HTKMLFReader))
	defer Register(string(HTKMLFReader), ExportsOf(
		func() (Backend[float32], error) { return newFake[float32](), nil },
		func() (Backend[float64], error) { return newFake[float64](), nil },
	))

	_, err := New[float32](params(TypeKey, "HTKMLFWriter"), WithLoader(NewLoader(folder)))
	var notFound *ModuleNotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, "HTKMLFReader", notFound.Name)
	require.Equal(t, filepath.Join(folder, "HTKMLFReader.js"), notFound.Location)
}

func TestDoesNotExistScenario(t *testing.T) {
	folder := setupModulesFolder(t)
	defer os.RemoveAll(folder)

	l := NewLoader(folder)
	p, err := New[float32](params(TypeKey, "DoesNotExist"), WithLoader(l))
	require.Nil(t, p)
	require.True(t, errors.Is(err, ErrModuleNotFound))

	var notFound *ModuleNotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, filepath.Join(folder, "DoesNotExist.js"), notFound.Location)
	require.Contains(t, err.Error(), "DoesNotExist")
	require.Equal(t, 0, l.LiveTotal())
}

func TestSymbolNotFound(t *testing.T) {
	l := NewLoader("")
	before := atomic.LoadInt64(&floatOnlyCalls)

	p, err := New[float64](params(TypeKey, "FloatOnlyWriter"), WithLoader(l))
	require.Nil(t, p)
	require.True(t, errors.Is(err, ErrSymbolNotFound))

	var notFound *SymbolNotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, "GetWriterD", notFound.Symbol)
	require.Equal(t, "FloatOnlyWriter", notFound.Module)
	require.Equal(t, "builtin://FloatOnlyWriter", notFound.Location)

	// no fallback on the float entry point
	require.Equal(t, before, atomic.LoadInt64(&floatOnlyCalls))
	require.Equal(t, 0, l.LiveTotal())
}

func TestResolveFactoryWrongType(t *testing.T) {
	m := &builtinModule{
		name:    "WeirdWriter",
		exports: Exports{"GetWriterF": "not a function"},
	}
	f, err := ResolveFactory[float32](m)
	require.Nil(t, f)

	var notFound *SymbolNotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Contains(t, notFound.Reason, "string")
}

func TestBackendErrorsAreNotWrapped(t *testing.T) {
	l := NewLoader("")
	before := atomic.LoadInt64(&destroyed)

	p, err := New[float32](params(TypeKey, "FailingInitWriter"), WithLoader(l))
	require.Nil(t, p)
	require.Equal(t, errInit, err)
	// the instance whose Init failed is destroyed before the module is released
	require.Equal(t, before+1, atomic.LoadInt64(&destroyed))
	require.Equal(t, 0, l.LiveTotal())

	p, err = New[float32](params(TypeKey, "FailingFactoryWriter"), WithLoader(l))
	require.Nil(t, p)
	require.Equal(t, errFactory, err)
	require.Equal(t, 0, l.LiveTotal())

	p2, err := New[float64](params(TypeKey, "FailingFactoryWriter"), WithLoader(l))
	require.Nil(t, p2)
	require.True(t, errors.Is(err, ErrNilInstance))
	require.Equal(t, 0, l.LiveTotal())
}

func TestTeardownIsIdempotent(t *testing.T) {
	l := NewLoader("")

	// uninitialized
	var zero Proxy[float32]
	require.NoError(t, zero.Teardown())
	require.NoError(t, zero.Teardown())
	require.Equal(t, TornDown, zero.State())

	var nilProxy *Proxy[float32]
	require.NoError(t, nilProxy.Teardown())
	require.Equal(t, Uninitialized, nilProxy.State())

	// module loaded, no instance
	m, err := l.Load("MemoryWriter")
	require.NoError(t, err)
	loaded := &Proxy[float32]{state: ModuleLoaded, module: m}
	require.NoError(t, loaded.Teardown())
	require.NoError(t, loaded.Teardown())
	require.Equal(t, 0, l.LiveTotal())

	// instance constructed but not initialized
	m, err = l.Load("MemoryWriter")
	require.NoError(t, err)
	fake := newFake[float32]()
	constructedProxy := &Proxy[float32]{state: InstanceConstructed, module: m, instance: fake}
	require.NoError(t, constructedProxy.Teardown())
	require.NoError(t, constructedProxy.Close())
	require.Equal(t, 1, fake.destroys)
	require.Equal(t, 0, l.LiveTotal())

	// active
	p := newMemoryWriter(t, l)
	fake = p.instance.(*fakeBackend[float32])
	require.NoError(t, p.Teardown())
	require.NoError(t, p.Teardown())
	require.Equal(t, 1, fake.destroys)
	require.Equal(t, TornDown, p.State())
	require.Equal(t, 0, l.LiveTotal())
}

func TestCyclesDoNotLeak(t *testing.T) {
	l := NewLoader("")
	baseConstructed := atomic.LoadInt64(&constructed)
	baseDestroyed := atomic.LoadInt64(&destroyed)

	for i := 0; i < 100; i++ {
		p := newMemoryWriter(t, l)
		require.Equal(t, 1, l.LiveTotal())
		require.NoError(t, p.Teardown())
		require.Equal(t, 0, l.LiveTotal())

		built := atomic.LoadInt64(&constructed) - baseConstructed
		gone := atomic.LoadInt64(&destroyed) - baseDestroyed
		require.Equal(t, built, gone)
	}
}

func TestConcurrentCyclesDoNotLeak(t *testing.T) {
	folder := setupModulesFolder(t)
	defer os.RemoveAll(folder)
	writeScript(t, folder, "FloatScript", floatOnlyScript)

	l := NewLoader(folder)
	names := []string{"MemoryWriter", "FloatScript"}

	var wg sync.WaitGroup
	errs := make(chan error, 16*10)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				p, err := New[float32](params(TypeKey, names[(g+i)%len(names)]), WithLoader(l))
				if err != nil {
					errs <- err
					continue
				}
				if err := p.Teardown(); err != nil {
					errs <- err
				}
				if err := p.Teardown(); err != nil {
					errs <- err
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, 0, l.LiveTotal())

	// a missing symbol does not leave the module loaded
	p, err := New[float64](params(TypeKey, "FloatScript"), WithLoader(l))
	require.Nil(t, p)
	require.True(t, errors.Is(err, ErrSymbolNotFound))
	require.Equal(t, 0, l.LiveTotal())
}

func TestForwardingMatchesDirectCalls(t *testing.T) {
	p := newMemoryWriter(t, NewLoader(""))
	defer p.Teardown()

	direct := newFake[float32]()
	require.NoError(t, direct.Init(params(TypeKey, "MemoryWriter")))

	buffers := Buffers[float32]{
		"features": {1, 2, 3, 4, 5, 6},
		"labels":   {0, 1},
	}
	mapping := LabelMapping{0: "a", 1: "b"}

	for _, numRecords := range []int{2, 1, 0} {
		viaProxy, err := p.SaveData(10, buffers, numRecords, 100, 0)
		require.NoError(t, err)
		viaDirect, err := direct.SaveData(10, buffers, numRecords, 100, 0)
		require.NoError(t, err)
		require.Equal(t, viaDirect, viaProxy)
	}

	require.NoError(t, p.SaveMapping("labels", mapping))
	require.NoError(t, direct.SaveMapping("labels", mapping))

	proxySections, directSections := make(Sections), make(Sections)
	require.NoError(t, p.GetSections(proxySections))
	require.NoError(t, direct.GetSections(directSections))
	require.Equal(t, directSections, proxySections)

	fake := p.instance.(*fakeBackend[float32])
	require.Equal(t, direct.saves, fake.saves)
	require.Equal(t, direct.mappings, fake.mappings)
}

func TestInitMisuse(t *testing.T) {
	p := newMemoryWriter(t, NewLoader(""))
	defer p.Teardown()

	fake := p.instance.(*fakeBackend[float32])
	cfg := fake.cfg

	err := p.Init(params(TypeKey, "MemoryWriter", "other", true))
	require.True(t, errors.Is(err, ErrMisuse))

	var misuse *MisuseError
	require.True(t, errors.As(err, &misuse))
	require.Equal(t, "Init", misuse.Op)
	require.Equal(t, Active, misuse.State)

	// backend untouched
	require.Equal(t, 1, fake.inits)
	require.Equal(t, cfg, fake.cfg)
	require.Equal(t, Active, p.State())
}

func TestForwardingAfterTeardown(t *testing.T) {
	p := newMemoryWriter(t, NewLoader(""))
	require.NoError(t, p.Teardown())

	_, err := p.SaveData(0, Buffers[float32]{}, 0, 0, 0)
	require.True(t, errors.Is(err, ErrMisuse))
	require.True(t, errors.Is(p.SaveMapping("labels", LabelMapping{}), ErrMisuse))
	require.True(t, errors.Is(p.GetSections(Sections{}), ErrMisuse))

	var never Proxy[float64]
	require.True(t, errors.Is(never.GetSections(Sections{}), ErrMisuse))
}

func TestStateString(t *testing.T) {
	require.Equal(t, "active", Active.String())
	require.Equal(t, "torn down", TornDown.String())
	require.Equal(t, "State(99)", State(99).String())
}
