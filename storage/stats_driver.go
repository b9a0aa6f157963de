package storage

import (
	"github.com/golang/protobuf/proto"

	pb "github.com/evilsocket/datawriter/proto"
)

// StatsDriver is the storage.Driver of pb.Stats objects.
type StatsDriver struct {
}

func (d StatsDriver) Make() proto.Message {
	return new(pb.Stats)
}

func (d StatsDriver) GetID(m proto.Message) uint64 {
	return m.(*pb.Stats).Id
}

func (d StatsDriver) SetID(m proto.Message, id uint64) {
	m.(*pb.Stats).Id = id
}

// Copy overwrites every statistic but the identifier and the section.
func (d StatsDriver) Copy(mdst proto.Message, msrc proto.Message) error {
	dst := mdst.(*pb.Stats)
	src := msrc.(*pb.Stats)
	id, section := dst.Id, dst.Section
	*dst = *src
	dst.Id, dst.Section = id, section
	return nil
}
