package storage

import (
	"github.com/golang/protobuf/proto"

	pb "github.com/evilsocket/datawriter/proto"
)

// MappingDriver is the storage.Driver of pb.Mapping objects.
type MappingDriver struct {
}

func (d MappingDriver) Make() proto.Message {
	return new(pb.Mapping)
}

func (d MappingDriver) GetID(m proto.Message) uint64 {
	return m.(*pb.Mapping).Id
}

func (d MappingDriver) SetID(m proto.Message, id uint64) {
	m.(*pb.Mapping).Id = id
}

// Copy replaces the labels of the destination mapping, if
// the source has any.
func (d MappingDriver) Copy(mdst proto.Message, msrc proto.Message) error {
	dst := mdst.(*pb.Mapping)
	src := msrc.(*pb.Mapping)
	if src.Labels != nil {
		dst.Labels = src.Labels
	}
	return nil
}
