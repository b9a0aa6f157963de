// Package proto holds the messages persisted by the bundled writers and
// the ones exchanged with the DataWriter gRPC service, see datawriter.proto.
package proto

import (
	proto "github.com/golang/protobuf/proto"
)

// This is a compile-time assertion to ensure that this file is
// compatible with the proto package it is being compiled against.
const _ = proto.ProtoPackageIsVersion3

type Block struct {
	Id          uint64    `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Section     string    `protobuf:"bytes,2,opt,name=section,proto3" json:"section,omitempty"`
	RecordStart uint64    `protobuf:"varint,3,opt,name=record_start,json=recordStart,proto3" json:"record_start,omitempty"`
	NumRecords  uint64    `protobuf:"varint,4,opt,name=num_records,json=numRecords,proto3" json:"num_records,omitempty"`
	Dim         uint32    `protobuf:"varint,5,opt,name=dim,proto3" json:"dim,omitempty"`
	ElementType string    `protobuf:"bytes,6,opt,name=element_type,json=elementType,proto3" json:"element_type,omitempty"`
	Data        []float64 `protobuf:"fixed64,7,rep,packed,name=data,proto3" json:"data,omitempty"`
}

func (m *Block) Reset()         { *m = Block{} }
func (m *Block) String() string { return proto.CompactTextString(m) }
func (*Block) ProtoMessage()    {}

func (m *Block) GetId() uint64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *Block) GetSection() string {
	if m != nil {
		return m.Section
	}
	return ""
}

func (m *Block) GetData() []float64 {
	if m != nil {
		return m.Data
	}
	return nil
}

type Mapping struct {
	Id      uint64            `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Section string            `protobuf:"bytes,2,opt,name=section,proto3" json:"section,omitempty"`
	Labels  map[uint32]string `protobuf:"bytes,3,rep,name=labels,proto3" json:"labels,omitempty" protobuf_key:"varint,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (m *Mapping) Reset()         { *m = Mapping{} }
func (m *Mapping) String() string { return proto.CompactTextString(m) }
func (*Mapping) ProtoMessage()    {}

func (m *Mapping) GetId() uint64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *Mapping) GetSection() string {
	if m != nil {
		return m.Section
	}
	return ""
}

func (m *Mapping) GetLabels() map[uint32]string {
	if m != nil {
		return m.Labels
	}
	return nil
}

type Stats struct {
	Id       uint64  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Section  string  `protobuf:"bytes,2,opt,name=section,proto3" json:"section,omitempty"`
	Source   string  `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`
	Count    uint64  `protobuf:"varint,4,opt,name=count,proto3" json:"count,omitempty"`
	Records  uint64  `protobuf:"varint,5,opt,name=records,proto3" json:"records,omitempty"`
	Min      float64 `protobuf:"fixed64,6,opt,name=min,proto3" json:"min,omitempty"`
	Max      float64 `protobuf:"fixed64,7,opt,name=max,proto3" json:"max,omitempty"`
	Mean     float64 `protobuf:"fixed64,8,opt,name=mean,proto3" json:"mean,omitempty"`
	Stddev   float64 `protobuf:"fixed64,9,opt,name=stddev,proto3" json:"stddev,omitempty"`
	MeanNorm float64 `protobuf:"fixed64,10,opt,name=mean_norm,json=meanNorm,proto3" json:"mean_norm,omitempty"`
}

func (m *Stats) Reset()         { *m = Stats{} }
func (m *Stats) String() string { return proto.CompactTextString(m) }
func (*Stats) ProtoMessage()    {}

func (m *Stats) GetId() uint64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *Stats) GetSection() string {
	if m != nil {
		return m.Section
	}
	return ""
}

type Empty struct {
}

func (m *Empty) Reset()         { *m = Empty{} }
func (m *Empty) String() string { return proto.CompactTextString(m) }
func (*Empty) ProtoMessage()    {}

type Response struct {
	Success bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Msg     string `protobuf:"bytes,2,opt,name=msg,proto3" json:"msg,omitempty"`
}

func (m *Response) Reset()         { *m = Response{} }
func (m *Response) String() string { return proto.CompactTextString(m) }
func (*Response) ProtoMessage()    {}

type OpenRequest struct {
	// JSON encoded writer configuration
	Config      string `protobuf:"bytes,1,opt,name=config,proto3" json:"config,omitempty"`
	ElementType string `protobuf:"bytes,2,opt,name=element_type,json=elementType,proto3" json:"element_type,omitempty"`
}

func (m *OpenRequest) Reset()         { *m = OpenRequest{} }
func (m *OpenRequest) String() string { return proto.CompactTextString(m) }
func (*OpenRequest) ProtoMessage()    {}

type OpenResponse struct {
	Success  bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Msg      string `protobuf:"bytes,2,opt,name=msg,proto3" json:"msg,omitempty"`
	Session  uint64 `protobuf:"varint,3,opt,name=session,proto3" json:"session,omitempty"`
	Writer   string `protobuf:"bytes,4,opt,name=writer,proto3" json:"writer,omitempty"`
	Location string `protobuf:"bytes,5,opt,name=location,proto3" json:"location,omitempty"`
}

func (m *OpenResponse) Reset()         { *m = OpenResponse{} }
func (m *OpenResponse) String() string { return proto.CompactTextString(m) }
func (*OpenResponse) ProtoMessage()    {}

type BySession struct {
	Session uint64 `protobuf:"varint,1,opt,name=session,proto3" json:"session,omitempty"`
}

func (m *BySession) Reset()         { *m = BySession{} }
func (m *BySession) String() string { return proto.CompactTextString(m) }
func (*BySession) ProtoMessage()    {}

type SectionInfo struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Type string `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
	Dim  uint32 `protobuf:"varint,3,opt,name=dim,proto3" json:"dim,omitempty"`
}

func (m *SectionInfo) Reset()         { *m = SectionInfo{} }
func (m *SectionInfo) String() string { return proto.CompactTextString(m) }
func (*SectionInfo) ProtoMessage()    {}

type SectionsResponse struct {
	Success  bool           `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Msg      string         `protobuf:"bytes,2,opt,name=msg,proto3" json:"msg,omitempty"`
	Sections []*SectionInfo `protobuf:"bytes,3,rep,name=sections,proto3" json:"sections,omitempty"`
}

func (m *SectionsResponse) Reset()         { *m = SectionsResponse{} }
func (m *SectionsResponse) String() string { return proto.CompactTextString(m) }
func (*SectionsResponse) ProtoMessage()    {}

type Buffer struct {
	Section string    `protobuf:"bytes,1,opt,name=section,proto3" json:"section,omitempty"`
	Data    []float64 `protobuf:"fixed64,2,rep,packed,name=data,proto3" json:"data,omitempty"`
}

func (m *Buffer) Reset()         { *m = Buffer{} }
func (m *Buffer) String() string { return proto.CompactTextString(m) }
func (*Buffer) ProtoMessage()    {}

type SaveDataRequest struct {
	Session       uint64    `protobuf:"varint,1,opt,name=session,proto3" json:"session,omitempty"`
	RecordStart   uint64    `protobuf:"varint,2,opt,name=record_start,json=recordStart,proto3" json:"record_start,omitempty"`
	NumRecords    uint64    `protobuf:"varint,3,opt,name=num_records,json=numRecords,proto3" json:"num_records,omitempty"`
	DatasetSize   uint64    `protobuf:"varint,4,opt,name=dataset_size,json=datasetSize,proto3" json:"dataset_size,omitempty"`
	VariableSized uint64    `protobuf:"varint,5,opt,name=variable_sized,json=variableSized,proto3" json:"variable_sized,omitempty"`
	Buffers       []*Buffer `protobuf:"bytes,6,rep,name=buffers,proto3" json:"buffers,omitempty"`
}

func (m *SaveDataRequest) Reset()         { *m = SaveDataRequest{} }
func (m *SaveDataRequest) String() string { return proto.CompactTextString(m) }
func (*SaveDataRequest) ProtoMessage()    {}

type SaveDataResponse struct {
	Success bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Msg     string `protobuf:"bytes,2,opt,name=msg,proto3" json:"msg,omitempty"`
	Result  bool   `protobuf:"varint,3,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *SaveDataResponse) Reset()         { *m = SaveDataResponse{} }
func (m *SaveDataResponse) String() string { return proto.CompactTextString(m) }
func (*SaveDataResponse) ProtoMessage()    {}

type SaveMappingRequest struct {
	Session uint64            `protobuf:"varint,1,opt,name=session,proto3" json:"session,omitempty"`
	Section string            `protobuf:"bytes,2,opt,name=section,proto3" json:"section,omitempty"`
	Labels  map[uint32]string `protobuf:"bytes,3,rep,name=labels,proto3" json:"labels,omitempty" protobuf_key:"varint,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (m *SaveMappingRequest) Reset()         { *m = SaveMappingRequest{} }
func (m *SaveMappingRequest) String() string { return proto.CompactTextString(m) }
func (*SaveMappingRequest) ProtoMessage()    {}

type ServerInfo struct {
	Version     string   `protobuf:"bytes,1,opt,name=version,proto3" json:"version,omitempty"`
	Uptime      uint64   `protobuf:"varint,2,opt,name=uptime,proto3" json:"uptime,omitempty"`
	Pid         uint64   `protobuf:"varint,3,opt,name=pid,proto3" json:"pid,omitempty"`
	Uid         uint64   `protobuf:"varint,4,opt,name=uid,proto3" json:"uid,omitempty"`
	Argv        []string `protobuf:"bytes,5,rep,name=argv,proto3" json:"argv,omitempty"`
	Sessions    uint64   `protobuf:"varint,6,opt,name=sessions,proto3" json:"sessions,omitempty"`
	Alloc       uint64   `protobuf:"varint,7,opt,name=alloc,proto3" json:"alloc,omitempty"`
	Sys         uint64   `protobuf:"varint,8,opt,name=sys,proto3" json:"sys,omitempty"`
	NumGc       uint64   `protobuf:"varint,9,opt,name=num_gc,json=numGc,proto3" json:"num_gc,omitempty"`
	TotalMemory uint64   `protobuf:"varint,10,opt,name=total_memory,json=totalMemory,proto3" json:"total_memory,omitempty"`
	ModulesPath string   `protobuf:"bytes,11,opt,name=modules_path,json=modulesPath,proto3" json:"modules_path,omitempty"`
}

func (m *ServerInfo) Reset()         { *m = ServerInfo{} }
func (m *ServerInfo) String() string { return proto.CompactTextString(m) }
func (*ServerInfo) ProtoMessage()    {}

type Alias struct {
	Name      string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Canonical string `protobuf:"bytes,2,opt,name=canonical,proto3" json:"canonical,omitempty"`
}

func (m *Alias) Reset()         { *m = Alias{} }
func (m *Alias) String() string { return proto.CompactTextString(m) }
func (*Alias) ProtoMessage()    {}

type ModulesResponse struct {
	Builtin []string `protobuf:"bytes,1,rep,name=builtin,proto3" json:"builtin,omitempty"`
	Scripts []string `protobuf:"bytes,2,rep,name=scripts,proto3" json:"scripts,omitempty"`
	Aliases []*Alias `protobuf:"bytes,3,rep,name=aliases,proto3" json:"aliases,omitempty"`
}

func (m *ModulesResponse) Reset()         { *m = ModulesResponse{} }
func (m *ModulesResponse) String() string { return proto.CompactTextString(m) }
func (*ModulesResponse) ProtoMessage()    {}

func init() {
	proto.RegisterType((*Block)(nil), "datawriter.Block")
	proto.RegisterType((*Mapping)(nil), "datawriter.Mapping")
	proto.RegisterMapType((map[uint32]string)(nil), "datawriter.Mapping.LabelsEntry")
	proto.RegisterType((*Stats)(nil), "datawriter.Stats")
	proto.RegisterType((*Empty)(nil), "datawriter.Empty")
	proto.RegisterType((*Response)(nil), "datawriter.Response")
	proto.RegisterType((*OpenRequest)(nil), "datawriter.OpenRequest")
	proto.RegisterType((*OpenResponse)(nil), "datawriter.OpenResponse")
	proto.RegisterType((*BySession)(nil), "datawriter.BySession")
	proto.RegisterType((*SectionInfo)(nil), "datawriter.SectionInfo")
	proto.RegisterType((*SectionsResponse)(nil), "datawriter.SectionsResponse")
	proto.RegisterType((*Buffer)(nil), "datawriter.Buffer")
	proto.RegisterType((*SaveDataRequest)(nil), "datawriter.SaveDataRequest")
	proto.RegisterType((*SaveDataResponse)(nil), "datawriter.SaveDataResponse")
	proto.RegisterType((*SaveMappingRequest)(nil), "datawriter.SaveMappingRequest")
	proto.RegisterMapType((map[uint32]string)(nil), "datawriter.SaveMappingRequest.LabelsEntry")
	proto.RegisterType((*ServerInfo)(nil), "datawriter.ServerInfo")
	proto.RegisterType((*Alias)(nil), "datawriter.Alias")
	proto.RegisterType((*ModulesResponse)(nil), "datawriter.ModulesResponse")
}
