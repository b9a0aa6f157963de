package handlers

import (
	"context"
	"fmt"
	"regexp"

	pb "github.com/evilsocket/datawriter/proto"

	"github.com/chzyer/readline"
)

var closeHandler = handler{
	Name:        "CLOSE",
	Mnemonic:    "CLOSE or C <SESSION>",
	Completer:   readline.PcItem("close"),
	Parser:      regexp.MustCompile(`^(?i)(CLOSE|C)\s+(\d+)$`),
	Description: "Tear down the writer of <SESSION> and flush its output.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.DataWriterClient) error {
		id, err := parseSession(args[0])
		if err != nil {
			return err
		}

		resp, err := client.Close(context.TODO(), &pb.BySession{Session: id})
		if err != nil {
			return err
		} else if !resp.Success {
			return fmt.Errorf("%s", resp.Msg)
		}

		fmt.Printf("session %d closed\n", id)
		return nil
	},
}
