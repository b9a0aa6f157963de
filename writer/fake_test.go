package writer

import (
	"errors"
	"sync/atomic"

	"github.com/evilsocket/datawriter/config"
)

var (
	errInit    = errors.New("init failed")
	errFactory = errors.New("factory failed")

	constructed int64
	destroyed   int64
)

type saveCall struct {
	recordStart   int
	numRecords    int
	datasetSize   int
	variableSized int
	sections      int
}

type fakeBackend[E Element] struct {
	initErr  error
	inits    int
	destroys int
	cfg      config.Parameters
	saves    []saveCall
	mappings map[string]LabelMapping
	sections Sections
}

func newFake[E Element]() *fakeBackend[E] {
	atomic.AddInt64(&constructed, 1)
	return &fakeBackend[E]{
		mappings: make(map[string]LabelMapping),
		sections: Sections{
			"features": {Type: SectionData, Dim: 3},
			"labels":   {Type: SectionLabel, Dim: 1},
		},
	}
}

func (b *fakeBackend[E]) Init(cfg config.Parameters) error {
	b.inits++
	b.cfg = cfg
	return b.initErr
}

func (b *fakeBackend[E]) GetSections(sections Sections) error {
	for name, sec := range b.sections {
		sections[name] = sec
	}
	return nil
}

func (b *fakeBackend[E]) SaveData(recordStart int, buffers Buffers[E], numRecords, datasetSize, variableSized int) (bool, error) {
	b.saves = append(b.saves, saveCall{recordStart, numRecords, datasetSize, variableSized, len(buffers)})
	return numRecords%2 == 0, nil
}

func (b *fakeBackend[E]) SaveMapping(targetID string, mapping LabelMapping) error {
	b.mappings[targetID] = mapping
	return nil
}

func (b *fakeBackend[E]) Destroy() error {
	b.destroys++
	atomic.AddInt64(&destroyed, 1)
	return nil
}

var floatOnlyCalls int64

func init() {
	Register("MemoryWriter", ExportsOf(
		func() (Backend[float32], error) { return newFake[float32](), nil },
		func() (Backend[float64], error) { return newFake[float64](), nil },
	))

	Register("FloatOnlyWriter", ExportsOf(
		func() (Backend[float32], error) {
			atomic.AddInt64(&floatOnlyCalls, 1)
			return newFake[float32](), nil
		},
		nil,
	))

	Register("FailingInitWriter", ExportsOf(
		func() (Backend[float32], error) {
			b := newFake[float32]()
			b.initErr = errInit
			return b, nil
		},
		nil,
	))

	Register("FailingFactoryWriter", ExportsOf(
		func() (Backend[float32], error) { return nil, errFactory },
		func() (Backend[float64], error) { return nil, nil },
	))

	// stand ins for the real modules, which live in packages importing
	// this one
	Register(string(BinaryReader), ExportsOf(
		func() (Backend[float32], error) { return newFake[float32](), nil },
		func() (Backend[float64], error) { return newFake[float64](), nil },
	))
	Register(string(HTKMLFReader), ExportsOf(
		func() (Backend[float32], error) { return newFake[float32](), nil },
		func() (Backend[float64], error) { return newFake[float64](), nil },
	))
}

func params(kv ...interface{}) config.Parameters {
	m := make(map[string]interface{})
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i].(string)] = kv[i+1]
	}
	return config.New(m)
}
