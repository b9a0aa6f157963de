package service

import (
	"fmt"
	"sync"

	"github.com/evilsocket/datawriter/config"
	pb "github.com/evilsocket/datawriter/proto"
	"github.com/evilsocket/datawriter/wrapper"
	"github.com/evilsocket/datawriter/writer"
)

// session is a writer opened by a client, independent of its element type.
type session interface {
	Canonical() writer.Canonical
	Location() string
	ElementType() writer.ElementType
	GetSections(sections writer.Sections) error
	saveData(req *pb.SaveDataRequest) (bool, error)
	saveMapping(section string, labels map[uint32]string) error
	Teardown() error
}

// typedSession serializes the calls to its proxy, which is not safe for
// concurrent use.
type typedSession[E writer.Element] struct {
	sync.Mutex
	*writer.Proxy[E]
}

func openSession(elemType writer.ElementType, cfg config.Parameters, loader *writer.Loader) (session, error) {
	switch elemType {
	case writer.Float:
		return newTypedSession[float32](cfg, loader)
	case writer.Double:
		return newTypedSession[float64](cfg, loader)
	}
	return nil, fmt.Errorf("unsupported element type %s", elemType)
}

func newTypedSession[E writer.Element](cfg config.Parameters, loader *writer.Loader) (session, error) {
	p, err := writer.New[E](cfg, writer.WithLoader(loader))
	if err != nil {
		return nil, err
	}
	return &typedSession[E]{Proxy: p}, nil
}

func (s *typedSession[E]) GetSections(sections writer.Sections) error {
	s.Lock()
	defer s.Unlock()
	return s.Proxy.GetSections(sections)
}

func (s *typedSession[E]) Teardown() error {
	s.Lock()
	defer s.Unlock()
	return s.Proxy.Teardown()
}

func (s *typedSession[E]) saveData(req *pb.SaveDataRequest) (bool, error) {
	buffers := make(writer.Buffers[E], len(req.Buffers))
	for _, buf := range req.Buffers {
		buffers[buf.Section] = wrapper.FromFloat64s[E](buf.Data)
	}
	s.Lock()
	defer s.Unlock()
	return s.SaveData(int(req.RecordStart), buffers, int(req.NumRecords), int(req.DatasetSize), int(req.VariableSized))
}

func (s *typedSession[E]) saveMapping(section string, labels map[uint32]string) error {
	mapping := make(writer.LabelMapping, len(labels))
	for id, label := range labels {
		mapping[writer.LabelID(id)] = label
	}
	s.Lock()
	defer s.Unlock()
	return s.SaveMapping(section, mapping)
}
