package proto

import (
	"bytes"
	"compress/gzip"

	"github.com/golang/protobuf/proto"
	"github.com/golang/protobuf/protoc-gen-go/descriptor"
)

// FileName is the name datawriter.proto is registered with.
const FileName = "datawriter.proto"

type fieldSpec struct {
	name     string
	json     string
	number   int32
	kind     descriptor.FieldDescriptorProto_Type
	repeated bool
	typeName string
}

type messageSpec struct {
	name   string
	fields []fieldSpec
	// map fields, by name, with uint32 keys and string values
	maps []string
}

const (
	tUint64  = descriptor.FieldDescriptorProto_TYPE_UINT64
	tUint32  = descriptor.FieldDescriptorProto_TYPE_UINT32
	tString  = descriptor.FieldDescriptorProto_TYPE_STRING
	tDouble  = descriptor.FieldDescriptorProto_TYPE_DOUBLE
	tBool    = descriptor.FieldDescriptorProto_TYPE_BOOL
	tMessage = descriptor.FieldDescriptorProto_TYPE_MESSAGE
)

func scalar(name, json string, number int32, kind descriptor.FieldDescriptorProto_Type) fieldSpec {
	return fieldSpec{name: name, json: json, number: number, kind: kind}
}

func rep(spec fieldSpec) fieldSpec {
	spec.repeated = true
	return spec
}

func msg(name, json string, number int32, typeName string) fieldSpec {
	return fieldSpec{name: name, json: json, number: number, kind: tMessage, typeName: ".datawriter." + typeName}
}

// messages follows the declaration order of datawriter.proto, the
// Descriptor methods index into it.
var messages = []messageSpec{
	{name: "Block", fields: []fieldSpec{
		scalar("id", "id", 1, tUint64),
		scalar("section", "section", 2, tString),
		scalar("record_start", "recordStart", 3, tUint64),
		scalar("num_records", "numRecords", 4, tUint64),
		scalar("dim", "dim", 5, tUint32),
		scalar("element_type", "elementType", 6, tString),
		rep(scalar("data", "data", 7, tDouble)),
	}},
	{name: "Mapping", fields: []fieldSpec{
		scalar("id", "id", 1, tUint64),
		scalar("section", "section", 2, tString),
		rep(msg("labels", "labels", 3, "Mapping.LabelsEntry")),
	}, maps: []string{"LabelsEntry"}},
	{name: "Stats", fields: []fieldSpec{
		scalar("id", "id", 1, tUint64),
		scalar("section", "section", 2, tString),
		scalar("source", "source", 3, tString),
		scalar("count", "count", 4, tUint64),
		scalar("records", "records", 5, tUint64),
		scalar("min", "min", 6, tDouble),
		scalar("max", "max", 7, tDouble),
		scalar("mean", "mean", 8, tDouble),
		scalar("stddev", "stddev", 9, tDouble),
		scalar("mean_norm", "meanNorm", 10, tDouble),
	}},
	{name: "Empty"},
	{name: "Response", fields: []fieldSpec{
		scalar("success", "success", 1, tBool),
		scalar("msg", "msg", 2, tString),
	}},
	{name: "OpenRequest", fields: []fieldSpec{
		scalar("config", "config", 1, tString),
		scalar("element_type", "elementType", 2, tString),
	}},
	{name: "OpenResponse", fields: []fieldSpec{
		scalar("success", "success", 1, tBool),
		scalar("msg", "msg", 2, tString),
		scalar("session", "session", 3, tUint64),
		scalar("writer", "writer", 4, tString),
		scalar("location", "location", 5, tString),
	}},
	{name: "BySession", fields: []fieldSpec{
		scalar("session", "session", 1, tUint64),
	}},
	{name: "SectionInfo", fields: []fieldSpec{
		scalar("name", "name", 1, tString),
		scalar("type", "type", 2, tString),
		scalar("dim", "dim", 3, tUint32),
	}},
	{name: "SectionsResponse", fields: []fieldSpec{
		scalar("success", "success", 1, tBool),
		scalar("msg", "msg", 2, tString),
		rep(msg("sections", "sections", 3, "SectionInfo")),
	}},
	{name: "Buffer", fields: []fieldSpec{
		scalar("section", "section", 1, tString),
		rep(scalar("data", "data", 2, tDouble)),
	}},
	{name: "SaveDataRequest", fields: []fieldSpec{
		scalar("session", "session", 1, tUint64),
		scalar("record_start", "recordStart", 2, tUint64),
		scalar("num_records", "numRecords", 3, tUint64),
		scalar("dataset_size", "datasetSize", 4, tUint64),
		scalar("variable_sized", "variableSized", 5, tUint64),
		rep(msg("buffers", "buffers", 6, "Buffer")),
	}},
	{name: "SaveDataResponse", fields: []fieldSpec{
		scalar("success", "success", 1, tBool),
		scalar("msg", "msg", 2, tString),
		scalar("result", "result", 3, tBool),
	}},
	{name: "SaveMappingRequest", fields: []fieldSpec{
		scalar("session", "session", 1, tUint64),
		scalar("section", "section", 2, tString),
		rep(msg("labels", "labels", 3, "SaveMappingRequest.LabelsEntry")),
	}, maps: []string{"LabelsEntry"}},
	{name: "ServerInfo", fields: []fieldSpec{
		scalar("version", "version", 1, tString),
		scalar("uptime", "uptime", 2, tUint64),
		scalar("pid", "pid", 3, tUint64),
		scalar("uid", "uid", 4, tUint64),
		rep(scalar("argv", "argv", 5, tString)),
		scalar("sessions", "sessions", 6, tUint64),
		scalar("alloc", "alloc", 7, tUint64),
		scalar("sys", "sys", 8, tUint64),
		scalar("num_gc", "numGc", 9, tUint64),
		scalar("total_memory", "totalMemory", 10, tUint64),
		scalar("modules_path", "modulesPath", 11, tString),
	}},
	{name: "Alias", fields: []fieldSpec{
		scalar("name", "name", 1, tString),
		scalar("canonical", "canonical", 2, tString),
	}},
	{name: "ModulesResponse", fields: []fieldSpec{
		rep(scalar("builtin", "builtin", 1, tString)),
		rep(scalar("scripts", "scripts", 2, tString)),
		rep(msg("aliases", "aliases", 3, "Alias")),
	}},
}

var methods = [][3]string{
	{"Open", "OpenRequest", "OpenResponse"},
	{"Sections", "BySession", "SectionsResponse"},
	{"SaveData", "SaveDataRequest", "SaveDataResponse"},
	{"SaveMapping", "SaveMappingRequest", "Response"},
	{"Close", "BySession", "Response"},
	{"Info", "Empty", "ServerInfo"},
	{"Modules", "Empty", "ModulesResponse"},
}

func (spec fieldSpec) toProto() *descriptor.FieldDescriptorProto {
	label := descriptor.FieldDescriptorProto_LABEL_OPTIONAL
	if spec.repeated {
		label = descriptor.FieldDescriptorProto_LABEL_REPEATED
	}
	fd := &descriptor.FieldDescriptorProto{
		Name:     proto.String(spec.name),
		JsonName: proto.String(spec.json),
		Number:   proto.Int32(spec.number),
		Label:    label.Enum(),
		Type:     spec.kind.Enum(),
	}
	if spec.typeName != "" {
		fd.TypeName = proto.String(spec.typeName)
	}
	return fd
}

// FileDescriptorProto returns the descriptor of datawriter.proto.
func FileDescriptorProto() *descriptor.FileDescriptorProto {
	file := &descriptor.FileDescriptorProto{
		Name:    proto.String(FileName),
		Package: proto.String("datawriter"),
		Syntax:  proto.String("proto3"),
	}

	for _, m := range messages {
		dp := &descriptor.DescriptorProto{Name: proto.String(m.name)}
		for _, field := range m.fields {
			dp.Field = append(dp.Field, field.toProto())
		}
		for _, entry := range m.maps {
			dp.NestedType = append(dp.NestedType, &descriptor.DescriptorProto{
				Name: proto.String(entry),
				Field: []*descriptor.FieldDescriptorProto{
					scalar("key", "key", 1, tUint32).toProto(),
					scalar("value", "value", 2, tString).toProto(),
				},
				Options: &descriptor.MessageOptions{MapEntry: proto.Bool(true)},
			})
		}
		file.MessageType = append(file.MessageType, dp)
	}

	svc := &descriptor.ServiceDescriptorProto{Name: proto.String("DataWriter")}
	for _, m := range methods {
		svc.Method = append(svc.Method, &descriptor.MethodDescriptorProto{
			Name:       proto.String(m[0]),
			InputType:  proto.String(".datawriter." + m[1]),
			OutputType: proto.String(".datawriter." + m[2]),
		})
	}
	file.Service = append(file.Service, svc)

	return file
}

// compressed returns the gzipped wire encoding of a file descriptor, the
// form proto.RegisterFile expects.
func compressed(file *descriptor.FileDescriptorProto) []byte {
	raw, err := proto.Marshal(file)
	if err != nil {
		panic(err)
	}

	var buf bytes.Buffer
	w, _ := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	w.Write(raw)
	w.Close()
	return buf.Bytes()
}

var fileDescriptor = compressed(FileDescriptorProto())

func init() {
	proto.RegisterFile(FileName, fileDescriptor)
}

func (*Block) Descriptor() ([]byte, []int)              { return fileDescriptor, []int{0} }
func (*Mapping) Descriptor() ([]byte, []int)            { return fileDescriptor, []int{1} }
func (*Stats) Descriptor() ([]byte, []int)              { return fileDescriptor, []int{2} }
func (*Empty) Descriptor() ([]byte, []int)              { return fileDescriptor, []int{3} }
func (*Response) Descriptor() ([]byte, []int)           { return fileDescriptor, []int{4} }
func (*OpenRequest) Descriptor() ([]byte, []int)        { return fileDescriptor, []int{5} }
func (*OpenResponse) Descriptor() ([]byte, []int)       { return fileDescriptor, []int{6} }
func (*BySession) Descriptor() ([]byte, []int)          { return fileDescriptor, []int{7} }
func (*SectionInfo) Descriptor() ([]byte, []int)        { return fileDescriptor, []int{8} }
func (*SectionsResponse) Descriptor() ([]byte, []int)   { return fileDescriptor, []int{9} }
func (*Buffer) Descriptor() ([]byte, []int)             { return fileDescriptor, []int{10} }
func (*SaveDataRequest) Descriptor() ([]byte, []int)    { return fileDescriptor, []int{11} }
func (*SaveDataResponse) Descriptor() ([]byte, []int)   { return fileDescriptor, []int{12} }
func (*SaveMappingRequest) Descriptor() ([]byte, []int) { return fileDescriptor, []int{13} }
func (*ServerInfo) Descriptor() ([]byte, []int)         { return fileDescriptor, []int{14} }
func (*Alias) Descriptor() ([]byte, []int)              { return fileDescriptor, []int{15} }
func (*ModulesResponse) Descriptor() ([]byte, []int)    { return fileDescriptor, []int{16} }
