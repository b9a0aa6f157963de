package service

import (
	"context"
	"net"
	"os"
	"sync"
	"testing"

	"github.com/evilsocket/datawriter/config"
	pb "github.com/evilsocket/datawriter/proto"
	"github.com/evilsocket/datawriter/writer"

	"github.com/golang/protobuf/proto"
	"github.com/golang/protobuf/protoc-gen-go/descriptor"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
	rpb "google.golang.org/grpc/reflection/grpc_reflection_v1alpha"
	"google.golang.org/grpc/test/bufconn"
)

// testBackend keeps everything it receives in memory.
type testBackend[E writer.Element] struct {
	sync.Mutex
	cfg      config.Parameters
	saved    []writer.Buffers[E]
	mappings map[string]writer.LabelMapping
}

var (
	backendsMu sync.Mutex
	backends   []interface{}
)

func newTestBackend[E writer.Element]() (writer.Backend[E], error) {
	b := &testBackend[E]{mappings: make(map[string]writer.LabelMapping)}
	backendsMu.Lock()
	backends = append(backends, b)
	backendsMu.Unlock()
	return b, nil
}

func lastBackend() interface{} {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	return backends[len(backends)-1]
}

func (b *testBackend[E]) Init(cfg config.Parameters) error {
	b.cfg = cfg
	return nil
}

func (b *testBackend[E]) GetSections(sections writer.Sections) error {
	sections["features"] = writer.Section{Type: writer.SectionData, Dim: 2}
	sections["labels"] = writer.Section{Type: writer.SectionLabel, Dim: 1}
	return nil
}

func (b *testBackend[E]) SaveData(recordStart int, buffers writer.Buffers[E], numRecords, datasetSize, variableSized int) (bool, error) {
	b.Lock()
	defer b.Unlock()
	b.saved = append(b.saved, buffers)
	return recordStart+numRecords < datasetSize, nil
}

func (b *testBackend[E]) SaveMapping(targetID string, mapping writer.LabelMapping) error {
	b.mappings[targetID] = mapping
	return nil
}

func (b *testBackend[E]) Destroy() error {
	return nil
}

func init() {
	writer.Register("ServiceWriter", writer.ExportsOf(newTestBackend[float32], newTestBackend[float64]))
}

const testConfig = `{"writerType": "ServiceWriter", "outputPath": "/tmp/nope"}`

func setupService(t *testing.T) (*Service, pb.DataWriterClient, func()) {
	svc := New(os.TempDir())

	listener := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	pb.RegisterDataWriterServer(server, svc)
	go server.Serve(listener)

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.Dial()
		}),
		grpc.WithInsecure())
	require.NoError(t, err)

	return svc, pb.NewDataWriterClient(conn), func() {
		conn.Close()
		server.Stop()
		svc.Shutdown()
	}
}

func TestServiceSession(t *testing.T) {
	svc, client, teardown := setupService(t)
	defer teardown()

	ctx := context.Background()
	opened, err := client.Open(ctx, &pb.OpenRequest{Config: testConfig, ElementType: "double"})
	require.NoError(t, err)
	require.True(t, opened.Success, opened.Msg)
	require.Equal(t, uint64(1), opened.Session)
	require.Equal(t, "ServiceWriter", opened.Writer)
	require.Equal(t, "builtin://ServiceWriter", opened.Location)
	require.Equal(t, 1, svc.NumSessions())

	backend := lastBackend().(*testBackend[float64])
	require.Equal(t, "/tmp/nope", backend.cfg.String("outputPath", ""))

	sections, err := client.Sections(ctx, &pb.BySession{Session: opened.Session})
	require.NoError(t, err)
	require.True(t, sections.Success)
	require.Equal(t, []*pb.SectionInfo{
		{Name: "features", Type: "data", Dim: 2},
		{Name: "labels", Type: "labels", Dim: 1},
	}, sections.Sections)

	saved, err := client.SaveData(ctx, &pb.SaveDataRequest{
		Session:     opened.Session,
		RecordStart: 0,
		NumRecords:  2,
		DatasetSize: 4,
		Buffers: []*pb.Buffer{
			{Section: "features", Data: []float64{1, 2, 3, 4}},
			{Section: "labels", Data: []float64{0, 1}},
		},
	})
	require.NoError(t, err)
	require.True(t, saved.Success, saved.Msg)
	require.True(t, saved.Result)
	require.Len(t, backend.saved, 1)
	require.Equal(t, []float64{1, 2, 3, 4}, backend.saved[0]["features"])

	mapped, err := client.SaveMapping(ctx, &pb.SaveMappingRequest{
		Session: opened.Session,
		Section: "labels",
		Labels:  map[uint32]string{0: "no", 1: "yes"},
	})
	require.NoError(t, err)
	require.True(t, mapped.Success)
	require.Equal(t, writer.LabelMapping{0: "no", 1: "yes"}, backend.mappings["labels"])

	closed, err := client.Close(ctx, &pb.BySession{Session: opened.Session})
	require.NoError(t, err)
	require.True(t, closed.Success)
	require.Equal(t, 0, svc.NumSessions())
	require.Equal(t, 0, svc.Loader().LiveTotal())

	closed, err = client.Close(ctx, &pb.BySession{Session: opened.Session})
	require.NoError(t, err)
	require.False(t, closed.Success)
}

func TestServiceFloatSession(t *testing.T) {
	svc, client, teardown := setupService(t)
	defer teardown()

	ctx := context.Background()
	opened, err := client.Open(ctx, &pb.OpenRequest{Config: testConfig})
	require.NoError(t, err)
	require.True(t, opened.Success, opened.Msg)

	backend := lastBackend().(*testBackend[float32])
	saved, err := client.SaveData(ctx, &pb.SaveDataRequest{
		Session:     opened.Session,
		RecordStart: 2,
		NumRecords:  2,
		DatasetSize: 4,
		Buffers:     []*pb.Buffer{{Section: "features", Data: []float64{0.5, 1.5, 2.5, 3.5}}},
	})
	require.NoError(t, err)
	require.True(t, saved.Success)
	require.False(t, saved.Result)
	require.Equal(t, []float32{0.5, 1.5, 2.5, 3.5}, backend.saved[0]["features"])

	// open sessions are torn down on shutdown
	svc.Shutdown()
	require.Equal(t, 0, svc.NumSessions())
	require.Equal(t, 0, svc.Loader().LiveTotal())
}

func TestServiceErrors(t *testing.T) {
	_, client, teardown := setupService(t)
	defer teardown()

	ctx := context.Background()

	opened, err := client.Open(ctx, &pb.OpenRequest{Config: "{nope"})
	require.NoError(t, err)
	require.False(t, opened.Success)

	opened, err = client.Open(ctx, &pb.OpenRequest{Config: testConfig, ElementType: "int"})
	require.NoError(t, err)
	require.False(t, opened.Success)

	opened, err = client.Open(ctx, &pb.OpenRequest{Config: `{"writerType": "DoesNotExist"}`})
	require.NoError(t, err)
	require.False(t, opened.Success)
	require.Contains(t, opened.Msg, "DoesNotExist")

	sections, err := client.Sections(ctx, &pb.BySession{Session: 666})
	require.NoError(t, err)
	require.False(t, sections.Success)

	saved, err := client.SaveData(ctx, &pb.SaveDataRequest{Session: 666})
	require.NoError(t, err)
	require.False(t, saved.Success)

	mapped, err := client.SaveMapping(ctx, &pb.SaveMappingRequest{Session: 666})
	require.NoError(t, err)
	require.False(t, mapped.Success)
}

func TestServiceInfoAndModules(t *testing.T) {
	svc, client, teardown := setupService(t)
	defer teardown()

	ctx := context.Background()
	info, err := client.Info(ctx, &pb.Empty{})
	require.NoError(t, err)
	require.Equal(t, Version, info.Version)
	require.Equal(t, uint64(os.Getpid()), info.Pid)
	require.Equal(t, svc.Loader().Path, info.ModulesPath)
	require.True(t, info.TotalMemory > 0)

	modules, err := client.Modules(ctx, &pb.Empty{})
	require.NoError(t, err)
	require.Contains(t, modules.Builtin, "ServiceWriter")
	require.NotEmpty(t, modules.Aliases)

	found := false
	for _, alias := range modules.Aliases {
		if alias.Canonical == string(writer.HTKMLFReader) {
			found = true
		}
	}
	require.True(t, found)
}

func TestServiceReflection(t *testing.T) {
	svc := New("")
	defer svc.Shutdown()

	listener := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	pb.RegisterDataWriterServer(server, svc)
	reflection.Register(server)
	go server.Serve(listener)
	defer server.Stop()

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.Dial()
		}),
		grpc.WithInsecure())
	require.NoError(t, err)
	defer conn.Close()

	stream, err := rpb.NewServerReflectionClient(conn).ServerReflectionInfo(context.Background())
	require.NoError(t, err)
	defer stream.CloseSend()

	require.NoError(t, stream.Send(&rpb.ServerReflectionRequest{
		MessageRequest: &rpb.ServerReflectionRequest_ListServices{},
	}))
	resp, err := stream.Recv()
	require.NoError(t, err)
	services := []string{}
	for _, s := range resp.GetListServicesResponse().GetService() {
		services = append(services, s.GetName())
	}
	require.Contains(t, services, "datawriter.DataWriter")

	require.NoError(t, stream.Send(&rpb.ServerReflectionRequest{
		MessageRequest: &rpb.ServerReflectionRequest_FileByFilename{FileByFilename: pb.FileName},
	}))
	resp, err = stream.Recv()
	require.NoError(t, err)
	require.Nil(t, resp.GetErrorResponse())

	files := resp.GetFileDescriptorResponse().GetFileDescriptorProto()
	require.Len(t, files, 1)
	file := &descriptor.FileDescriptorProto{}
	require.NoError(t, proto.Unmarshal(files[0], file))
	require.Equal(t, pb.FileName, file.GetName())
	require.Len(t, file.Service, 1)
	require.Equal(t, "DataWriter", file.Service[0].GetName())
}
