package storage

import (
	"github.com/golang/protobuf/proto"

	pb "github.com/evilsocket/datawriter/proto"
)

// BlockDriver is the specialized implementation of a
// storage.Driver interface, used to access the internal
// fields of pb.Block objects in the index.
type BlockDriver struct {
}

// Make returns a new pb.Block object.
func (d BlockDriver) Make() proto.Message {
	return new(pb.Block)
}

// GetID returns the unique identifier of the pb.Block object.
func (d BlockDriver) GetID(m proto.Message) uint64 {
	return m.(*pb.Block).Id
}

// SetID sets the unique identifier of the pb.Block object.
func (d BlockDriver) SetID(m proto.Message, id uint64) {
	m.(*pb.Block).Id = id
}

// Copy replaces the records of the destination block with
// the ones of the source block.
func (d BlockDriver) Copy(mdst proto.Message, msrc proto.Message) error {
	dst := mdst.(*pb.Block)
	src := msrc.(*pb.Block)
	dst.RecordStart = src.RecordStart
	dst.NumRecords = src.NumRecords
	dst.Dim = src.Dim
	if src.ElementType != "" {
		dst.ElementType = src.ElementType
	}
	if src.Data != nil {
		dst.Data = src.Data
	}
	return nil
}
