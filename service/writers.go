package service

import (
	"fmt"

	"github.com/evilsocket/datawriter/config"
	pb "github.com/evilsocket/datawriter/proto"
	"github.com/evilsocket/datawriter/writer"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func errOpenResponse(format string, args ...interface{}) *pb.OpenResponse {
	return &pb.OpenResponse{Success: false, Msg: fmt.Sprintf(format, args...)}
}

func errResponse(format string, args ...interface{}) *pb.Response {
	return &pb.Response{Success: false, Msg: fmt.Sprintf(format, args...)}
}

func (s *Service) find(id uint64) session {
	s.RLock()
	defer s.RUnlock()
	return s.sessions[id]
}

// Open creates a new writer from a JSON configuration.
func (s *Service) Open(ctx context.Context, req *pb.OpenRequest) (*pb.OpenResponse, error) {
	elemType := writer.Float
	if req.ElementType != "" {
		var err error
		if elemType, err = writer.ParseElementType(req.ElementType); err != nil {
			return errOpenResponse("%v", err), nil
		}
	}

	cfg, err := config.FromJSON([]byte(req.Config))
	if err != nil {
		return errOpenResponse("error while parsing configuration: %v", err), nil
	}

	sess, err := openSession(elemType, cfg, s.loader)
	if err != nil {
		s.log.WithField("writerType", cfg.String(writer.TypeKey, "")).Errorf("can't open writer: %v", err)
		return errOpenResponse("%v", err), nil
	}

	s.Lock()
	id := s.nextID
	s.nextID++
	s.sessions[id] = sess
	s.Unlock()

	s.log.WithFields(logrus.Fields{
		"session":  id,
		"writer":   sess.Canonical(),
		"type":     sess.ElementType(),
		"location": sess.Location(),
	}).Info("session opened")

	return &pb.OpenResponse{
		Success:  true,
		Session:  id,
		Writer:   string(sess.Canonical()),
		Location: sess.Location(),
	}, nil
}

func (s *Service) Sections(ctx context.Context, req *pb.BySession) (*pb.SectionsResponse, error) {
	sess := s.find(req.Session)
	if sess == nil {
		return &pb.SectionsResponse{Msg: fmt.Sprintf("session %d not found", req.Session)}, nil
	}

	sections := make(writer.Sections)
	if err := sess.GetSections(sections); err != nil {
		return &pb.SectionsResponse{Msg: err.Error()}, nil
	}

	resp := &pb.SectionsResponse{Success: true}
	for _, name := range sections.Names() {
		sec := sections[name]
		resp.Sections = append(resp.Sections, &pb.SectionInfo{
			Name: name,
			Type: sec.Type.String(),
			Dim:  uint32(sec.Dim),
		})
	}
	return resp, nil
}

func (s *Service) SaveData(ctx context.Context, req *pb.SaveDataRequest) (*pb.SaveDataResponse, error) {
	sess := s.find(req.Session)
	if sess == nil {
		return &pb.SaveDataResponse{Msg: fmt.Sprintf("session %d not found", req.Session)}, nil
	}

	result, err := sess.saveData(req)
	if err != nil {
		s.log.WithField("session", req.Session).Debugf("SaveData: %v", err)
		return &pb.SaveDataResponse{Msg: err.Error()}, nil
	}
	return &pb.SaveDataResponse{Success: true, Result: result}, nil
}

func (s *Service) SaveMapping(ctx context.Context, req *pb.SaveMappingRequest) (*pb.Response, error) {
	sess := s.find(req.Session)
	if sess == nil {
		return errResponse("session %d not found", req.Session), nil
	} else if err := sess.saveMapping(req.Section, req.Labels); err != nil {
		return errResponse("%v", err), nil
	}
	return &pb.Response{Success: true}, nil
}

// Close tears down the writer of a session.
func (s *Service) Close(ctx context.Context, req *pb.BySession) (*pb.Response, error) {
	s.Lock()
	sess, found := s.sessions[req.Session]
	delete(s.sessions, req.Session)
	s.Unlock()

	if !found {
		return errResponse("session %d not found", req.Session), nil
	}

	s.log.WithField("session", req.Session).Info("session closed")

	if err := sess.Teardown(); err != nil {
		return errResponse("%v", err), nil
	}
	return &pb.Response{Success: true}, nil
}
