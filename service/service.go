package service

import (
	"os"
	"runtime"
	"sync"
	"time"

	pb "github.com/evilsocket/datawriter/proto"
	"github.com/evilsocket/datawriter/writer"

	"github.com/pbnjay/memory"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Service hosts writer sessions for remote clients, every session owns
// a writer created with the service loader.
type Service struct {
	sync.RWMutex
	started  time.Time
	pid      uint64
	uid      uint64
	argv     []string
	loader   *writer.Loader
	sessions map[uint64]session
	nextID   uint64
	log      *logrus.Entry
}

// New creates a service loading script writers from modulesPath.
func New(modulesPath string) *Service {
	return &Service{
		started:  time.Now(),
		pid:      uint64(os.Getpid()),
		uid:      uint64(os.Getuid()),
		argv:     os.Args,
		loader:   writer.NewLoader(modulesPath),
		sessions: make(map[uint64]session),
		nextID:   1,
		log:      logrus.WithField("component", "service"),
	}
}

// Loader returns the loader used to create writers.
func (s *Service) Loader() *writer.Loader {
	return s.loader
}

// NumSessions returns the number of open writer sessions.
func (s *Service) NumSessions() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.sessions)
}

// Shutdown tears down every open session.
func (s *Service) Shutdown() {
	s.Lock()
	defer s.Unlock()

	for id, sess := range s.sessions {
		if err := sess.Teardown(); err != nil {
			s.log.WithField("session", id).Errorf("error while tearing down %s: %v", sess.Canonical(), err)
		}
		delete(s.sessions, id)
	}
}

func (s *Service) Info(ctx context.Context, dummy *pb.Empty) (*pb.ServerInfo, error) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &pb.ServerInfo{
		Version:     Version,
		Uptime:      uint64(time.Since(s.started).Seconds()),
		Pid:         s.pid,
		Uid:         s.uid,
		Argv:        s.argv,
		Sessions:    uint64(s.NumSessions()),
		Alloc:       m.Alloc,
		Sys:         m.Sys,
		NumGc:       uint64(m.NumGC),
		TotalMemory: memory.TotalMemory(),
		ModulesPath: s.loader.Path,
	}, nil
}

func (s *Service) Modules(ctx context.Context, dummy *pb.Empty) (*pb.ModulesResponse, error) {
	scripts, err := s.loader.Scripts()
	if err != nil {
		s.log.Warnf("can't list scripts in %s: %v", s.loader.Path, err)
		scripts = []string{}
	}

	resp := &pb.ModulesResponse{
		Builtin: writer.Modules(),
		Scripts: scripts,
	}
	for _, alias := range writer.Aliases() {
		resp.Aliases = append(resp.Aliases, &pb.Alias{Name: alias[0], Canonical: alias[1]})
	}
	return resp, nil
}
