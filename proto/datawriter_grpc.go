package proto

import (
	"context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this file is
// compatible with the grpc package it is being compiled against.
const _ = grpc.SupportPackageIsVersion4

// DataWriterClient is the client API for DataWriter service.
type DataWriterClient interface {
	Open(ctx context.Context, in *OpenRequest, opts ...grpc.CallOption) (*OpenResponse, error)
	Sections(ctx context.Context, in *BySession, opts ...grpc.CallOption) (*SectionsResponse, error)
	SaveData(ctx context.Context, in *SaveDataRequest, opts ...grpc.CallOption) (*SaveDataResponse, error)
	SaveMapping(ctx context.Context, in *SaveMappingRequest, opts ...grpc.CallOption) (*Response, error)
	Close(ctx context.Context, in *BySession, opts ...grpc.CallOption) (*Response, error)
	Info(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ServerInfo, error)
	Modules(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ModulesResponse, error)
}

type dataWriterClient struct {
	cc *grpc.ClientConn
}

func NewDataWriterClient(cc *grpc.ClientConn) DataWriterClient {
	return &dataWriterClient{cc}
}

func (c *dataWriterClient) Open(ctx context.Context, in *OpenRequest, opts ...grpc.CallOption) (*OpenResponse, error) {
	out := new(OpenResponse)
	err := c.cc.Invoke(ctx, "/datawriter.DataWriter/Open", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dataWriterClient) Sections(ctx context.Context, in *BySession, opts ...grpc.CallOption) (*SectionsResponse, error) {
	out := new(SectionsResponse)
	err := c.cc.Invoke(ctx, "/datawriter.DataWriter/Sections", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dataWriterClient) SaveData(ctx context.Context, in *SaveDataRequest, opts ...grpc.CallOption) (*SaveDataResponse, error) {
	out := new(SaveDataResponse)
	err := c.cc.Invoke(ctx, "/datawriter.DataWriter/SaveData", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dataWriterClient) SaveMapping(ctx context.Context, in *SaveMappingRequest, opts ...grpc.CallOption) (*Response, error) {
	out := new(Response)
	err := c.cc.Invoke(ctx, "/datawriter.DataWriter/SaveMapping", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dataWriterClient) Close(ctx context.Context, in *BySession, opts ...grpc.CallOption) (*Response, error) {
	out := new(Response)
	err := c.cc.Invoke(ctx, "/datawriter.DataWriter/Close", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dataWriterClient) Info(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ServerInfo, error) {
	out := new(ServerInfo)
	err := c.cc.Invoke(ctx, "/datawriter.DataWriter/Info", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dataWriterClient) Modules(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ModulesResponse, error) {
	out := new(ModulesResponse)
	err := c.cc.Invoke(ctx, "/datawriter.DataWriter/Modules", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DataWriterServer is the server API for DataWriter service.
type DataWriterServer interface {
	Open(context.Context, *OpenRequest) (*OpenResponse, error)
	Sections(context.Context, *BySession) (*SectionsResponse, error)
	SaveData(context.Context, *SaveDataRequest) (*SaveDataResponse, error)
	SaveMapping(context.Context, *SaveMappingRequest) (*Response, error)
	Close(context.Context, *BySession) (*Response, error)
	Info(context.Context, *Empty) (*ServerInfo, error)
	Modules(context.Context, *Empty) (*ModulesResponse, error)
}

// UnimplementedDataWriterServer can be embedded to have forward compatible implementations.
type UnimplementedDataWriterServer struct {
}

func (*UnimplementedDataWriterServer) Open(ctx context.Context, req *OpenRequest) (*OpenResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Open not implemented")
}
func (*UnimplementedDataWriterServer) Sections(ctx context.Context, req *BySession) (*SectionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Sections not implemented")
}
func (*UnimplementedDataWriterServer) SaveData(ctx context.Context, req *SaveDataRequest) (*SaveDataResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SaveData not implemented")
}
func (*UnimplementedDataWriterServer) SaveMapping(ctx context.Context, req *SaveMappingRequest) (*Response, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SaveMapping not implemented")
}
func (*UnimplementedDataWriterServer) Close(ctx context.Context, req *BySession) (*Response, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Close not implemented")
}
func (*UnimplementedDataWriterServer) Info(ctx context.Context, req *Empty) (*ServerInfo, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Info not implemented")
}
func (*UnimplementedDataWriterServer) Modules(ctx context.Context, req *Empty) (*ModulesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Modules not implemented")
}

func RegisterDataWriterServer(s *grpc.Server, srv DataWriterServer) {
	s.RegisterService(&_DataWriter_serviceDesc, srv)
}

func _DataWriter_Open_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(OpenRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DataWriterServer).Open(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/datawriter.DataWriter/Open",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DataWriterServer).Open(ctx, req.(*OpenRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DataWriter_Sections_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BySession)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DataWriterServer).Sections(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/datawriter.DataWriter/Sections",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DataWriterServer).Sections(ctx, req.(*BySession))
	}
	return interceptor(ctx, in, info, handler)
}

func _DataWriter_SaveData_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SaveDataRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DataWriterServer).SaveData(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/datawriter.DataWriter/SaveData",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DataWriterServer).SaveData(ctx, req.(*SaveDataRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DataWriter_SaveMapping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SaveMappingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DataWriterServer).SaveMapping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/datawriter.DataWriter/SaveMapping",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DataWriterServer).SaveMapping(ctx, req.(*SaveMappingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DataWriter_Close_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BySession)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DataWriterServer).Close(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/datawriter.DataWriter/Close",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DataWriterServer).Close(ctx, req.(*BySession))
	}
	return interceptor(ctx, in, info, handler)
}

func _DataWriter_Info_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DataWriterServer).Info(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/datawriter.DataWriter/Info",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DataWriterServer).Info(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _DataWriter_Modules_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DataWriterServer).Modules(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/datawriter.DataWriter/Modules",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DataWriterServer).Modules(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var _DataWriter_serviceDesc = grpc.ServiceDesc{
	ServiceName: "datawriter.DataWriter",
	HandlerType: (*DataWriterServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Open",
			Handler:    _DataWriter_Open_Handler,
		},
		{
			MethodName: "Sections",
			Handler:    _DataWriter_Sections_Handler,
		},
		{
			MethodName: "SaveData",
			Handler:    _DataWriter_SaveData_Handler,
		},
		{
			MethodName: "SaveMapping",
			Handler:    _DataWriter_SaveMapping_Handler,
		},
		{
			MethodName: "Close",
			Handler:    _DataWriter_Close_Handler,
		},
		{
			MethodName: "Info",
			Handler:    _DataWriter_Info_Handler,
		},
		{
			MethodName: "Modules",
			Handler:    _DataWriter_Modules_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "datawriter.proto",
}
