package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	_ "github.com/evilsocket/datawriter/backends/all"
	. "github.com/evilsocket/datawriter/common"
	pb "github.com/evilsocket/datawriter/proto"
	"github.com/evilsocket/datawriter/service"
	"github.com/evilsocket/datawriter/writer"

	"github.com/dustin/go-humanize"
	"github.com/evilsocket/islazy/log"
	"google.golang.org/grpc/reflection"
)

var (
	listenString = flag.String("listen", "127.0.0.1:50052", "String to create the TCP listener.")
	credsPath    = flag.String("creds", "", "Path to the key.pem and cert.pem files to use for TLS based authentication, plain text if empty.")
	modulesPath  = flag.String("modules", os.Getenv(writer.PathEnv), "Folder of the script writer modules.")
	gcPeriod     = flag.Int("gc-period", 1800, "Period in seconds to report memory statistics and call the gc.")
	maxMsgSize   = flag.Int("max-msg-size", 10*1024*1024, "Maximum size in bytes of a GRPC message.")
	logFile      = flag.String("log-file", "", "If filled, dwriterd will log to this file.")
	logDebug     = flag.Bool("debug", false, "Enable debug logs.")

	cpuProfile = flag.String("cpu-profile", "", "Write CPU profile to this file.")
	memProfile = flag.String("mem-profile", "", "Write memory profile to this file.")

	svc = (*service.Service)(nil)
)

func statsReport() {
	var m runtime.MemStats

	ticker := time.NewTicker(time.Duration(*gcPeriod) * time.Second)
	for range ticker.C {
		runtime.GC()
		runtime.ReadMemStats(&m)

		log.Info("sessions:%d modules:%d mem:%s numgc:%d",
			svc.NumSessions(),
			svc.Loader().LiveTotal(),
			humanize.Bytes(m.Sys),
			m.NumGC)
	}
}

func main() {
	flag.Parse()

	StartProfiling(cpuProfile)

	SetupLogging(logFile, logDebug)
	defer TeardownLogging()

	log.Info("dwriterd v%s is starting ...", service.Version)

	svc = service.New(*modulesPath)

	SetupSignals(func(_ os.Signal) {
		svc.Shutdown()
		DoCleanup(cpuProfile, memProfile)
	})

	server, listener := SetupGrpcServer(credsPath, listenString, maxMsgSize)

	pb.RegisterDataWriterServer(server, svc)

	go statsReport()

	reflection.Register(server)

	log.Info("compiled in writers: %v", writer.Modules())
	if *modulesPath != "" {
		log.Info("loading script writers from %s", *modulesPath)
	}

	log.Info("now listening on %s ...", *listenString)
	if err := server.Serve(listener); err != nil {
		log.Fatal("failed to serve: %v", err)
	}
}
