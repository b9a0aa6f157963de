// Package remote implements the RemoteWriter writer, which forwards every
// operation to a writer opened on a dwriterd daemon.
package remote

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/evilsocket/datawriter/config"
	pb "github.com/evilsocket/datawriter/proto"
	"github.com/evilsocket/datawriter/wrapper"
	"github.com/evilsocket/datawriter/writer"

	"github.com/evilsocket/islazy/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

const (
	// Name of the remote writer module.
	Name = "RemoteWriter"
	// TypeKey selects the writer to open on the daemon.
	TypeKey = "remoteWriterType"

	defaultTimeout = 10 * time.Second
	maxMsgSize     = 10 * 1024 * 1024
)

// DialOptions are added to the options used to connect to the daemon.
var DialOptions []grpc.DialOption

func init() {
	writer.Register(Name, writer.ExportsOf(
		func() (writer.Backend[float32], error) { return New[float32](), nil },
		func() (writer.Backend[float64], error) { return New[float64](), nil },
	))
}

// Writer is the RemoteWriter backend.
type Writer[E writer.Element] struct {
	conn    *grpc.ClientConn
	client  pb.DataWriterClient
	session uint64
	timeout time.Duration
}

// New creates an uninitialized RemoteWriter backend.
func New[E writer.Element]() *Writer[E] {
	return &Writer[E]{timeout: defaultTimeout}
}

// Dial connects to a dwriterd daemon, certFile enables TLS.
func Dial(address, certFile string, extra ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts := []grpc.DialOption{
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(maxMsgSize),
			grpc.MaxCallSendMsgSize(maxMsgSize),
		),
	}

	if certFile != "" {
		creds, err := credentials.NewClientTLSFromFile(certFile, "")
		if err != nil {
			return nil, fmt.Errorf("cannot load certificate file '%s': %v", certFile, err)
		}
		opts = append(opts, grpc.WithTransportCredentials(creds))
	} else {
		opts = append(opts, grpc.WithInsecure())
	}

	opts = append(opts, extra...)

	conn, err := grpc.Dial(address, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to dial service at '%s': %v", address, err)
	}
	return conn, nil
}

func (w *Writer[E]) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), w.timeout)
}

func (w *Writer[E]) Init(cfg config.Parameters) (err error) {
	address := cfg.String("address", "")
	if address == "" {
		return errors.New("remote writer: address not specified")
	}

	remoteType := cfg.String(TypeKey, "")
	if writer.Resolve(remoteType) == Name {
		return fmt.Errorf("remote writer: %s can't be %s", TypeKey, Name)
	}

	if secs := cfg.Float("timeout", 0); secs > 0 {
		w.timeout = time.Duration(secs * float64(time.Second))
	}

	if w.conn, err = Dial(address, cfg.String("cert", ""), DialOptions...); err != nil {
		return err
	}
	w.client = pb.NewDataWriterClient(w.conn)

	remoteCfg, err := cfg.With(writer.TypeKey, remoteType).JSON()
	if err != nil {
		return err
	}

	ctx, cancel := w.context()
	defer cancel()

	resp, err := w.client.Open(ctx, &pb.OpenRequest{
		Config:      string(remoteCfg),
		ElementType: writer.ElementTypeOf[E]().String(),
	})
	if err != nil {
		return err
	} else if !resp.Success {
		return fmt.Errorf("remote writer: %s", resp.Msg)
	}

	w.session = resp.Session
	log.Debug("remote writer: session %d on %s for %s (%s)", w.session, address, resp.Writer, resp.Location)

	return nil
}

func (w *Writer[E]) GetSections(sections writer.Sections) error {
	ctx, cancel := w.context()
	defer cancel()

	resp, err := w.client.Sections(ctx, &pb.BySession{Session: w.session})
	if err != nil {
		return err
	} else if !resp.Success {
		return fmt.Errorf("remote writer: %s", resp.Msg)
	}

	for _, info := range resp.Sections {
		secType, err := writer.ParseSectionType(info.Type)
		if err != nil {
			return err
		}
		sections[info.Name] = writer.Section{Type: secType, Dim: int(info.Dim)}
	}
	return nil
}

func (w *Writer[E]) SaveData(recordStart int, buffers writer.Buffers[E], numRecords, datasetSize, variableSized int) (bool, error) {
	names := make([]string, 0, len(buffers))
	for name := range buffers {
		names = append(names, name)
	}
	sort.Strings(names)

	req := &pb.SaveDataRequest{
		Session:       w.session,
		RecordStart:   uint64(recordStart),
		NumRecords:    uint64(numRecords),
		DatasetSize:   uint64(datasetSize),
		VariableSized: uint64(variableSized),
		Buffers:       make([]*pb.Buffer, 0, len(names)),
	}
	for _, name := range names {
		req.Buffers = append(req.Buffers, &pb.Buffer{
			Section: name,
			Data:    wrapper.Float64s(buffers[name]),
		})
	}

	ctx, cancel := w.context()
	defer cancel()

	resp, err := w.client.SaveData(ctx, req)
	if err != nil {
		return false, err
	} else if !resp.Success {
		return false, fmt.Errorf("remote writer: %s", resp.Msg)
	}
	return resp.Result, nil
}

func (w *Writer[E]) SaveMapping(targetID string, mapping writer.LabelMapping) error {
	labels := make(map[uint32]string, len(mapping))
	for id, label := range mapping {
		labels[uint32(id)] = label
	}

	ctx, cancel := w.context()
	defer cancel()

	resp, err := w.client.SaveMapping(ctx, &pb.SaveMappingRequest{
		Session: w.session,
		Section: targetID,
		Labels:  labels,
	})
	if err != nil {
		return err
	} else if !resp.Success {
		return fmt.Errorf("remote writer: %s", resp.Msg)
	}
	return nil
}

func (w *Writer[E]) Destroy() error {
	if w.conn == nil {
		return nil
	}
	defer func() {
		w.conn.Close()
		w.conn = nil
	}()

	if w.session == 0 {
		return nil
	}

	ctx, cancel := w.context()
	defer cancel()

	resp, err := w.client.Close(ctx, &pb.BySession{Session: w.session})
	w.session = 0
	if err != nil {
		return err
	} else if !resp.Success {
		return fmt.Errorf("remote writer: %s", resp.Msg)
	}
	return nil
}
