package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/evilsocket/datawriter/backends/remote"
	"github.com/evilsocket/datawriter/cmd/dwritercli/handlers"
	pb "github.com/evilsocket/datawriter/proto"

	"github.com/chzyer/readline"
	"github.com/evilsocket/islazy/str"
	"google.golang.org/grpc"
)

const (
	prompt  = "\033[31m»\033[0m "
	history = "/tmp/dwritercli.tmp"
)

var (
	serverAddress = flag.String("address", "127.0.0.1:50052", "Server connection string.")
	certPath      = flag.String("cert", "", "Path to the cert.pem file to use for TLS based authentication, plain text if empty.")
	evalString    = flag.String("eval", "", "List of commands to run, divided by a semicolon.")
	maxMsgSize    = flag.Int("max-msg-size", 50*1024*1024, "Max size of a single GRPC message.")
)

func die(format string, args ...interface{}) {
	fmt.Printf(format, args...)
	os.Exit(1)
}

func main() {
	flag.Parse()

	conn, err := remote.Dial(*serverAddress, *certPath, grpc.WithDefaultCallOptions(
		grpc.MaxCallRecvMsgSize(*maxMsgSize),
		grpc.MaxCallSendMsgSize(*maxMsgSize),
	))
	if err != nil {
		die("%v\n", err)
	}
	defer conn.Close()

	client := pb.NewDataWriterClient(conn)
	reader, err := readline.NewEx(&readline.Config{
		Prompt:          fmt.Sprintf("dwriterd@%s %s", *serverAddress, prompt),
		HistoryFile:     history,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    handlers.Completers,
	})
	if err != nil {
		die("%v\n", err)
	}
	defer reader.Close()

	for _, cmd := range str.SplitBy(*evalString, ";") {
		if err := handlers.Dispatch(cmd, reader, client); err != nil {
			fmt.Printf("%s\n", err)
		}
	}

	for {
		if line, err := reader.Readline(); err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			break
		} else {
			for _, cmd := range str.SplitBy(line, ";") {
				if err := handlers.Dispatch(cmd, reader, client); err != nil {
					fmt.Printf("%s\n", err)
				}
			}
		}
	}
}
