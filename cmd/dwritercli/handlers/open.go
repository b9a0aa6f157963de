package handlers

import (
	"context"
	"fmt"
	"io/ioutil"
	"regexp"
	"strings"

	pb "github.com/evilsocket/datawriter/proto"

	"github.com/chzyer/readline"
)

var openHandler = handler{
	Name:        "OPEN",
	Mnemonic:    "OPEN <CONFIG FILE> [FLOAT|DOUBLE]",
	Completer:   readline.PcItem("open"),
	Parser:      regexp.MustCompile(`^(?i)(OPEN)\s+(\S+)\s*(float|double)?$`),
	Description: "Open a writer session configured by the JSON file <CONFIG FILE>.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.DataWriterClient) error {
		data, err := ioutil.ReadFile(args[0])
		if err != nil {
			return err
		}

		elementType := "float"
		if args[1] != "" {
			elementType = strings.ToLower(args[1])
		}

		resp, err := client.Open(context.TODO(), &pb.OpenRequest{
			Config:      string(data),
			ElementType: elementType,
		})
		if err != nil {
			return err
		} else if !resp.Success {
			return fmt.Errorf("%s", resp.Msg)
		}

		fmt.Printf("session %d opened (%s from %s)\n", resp.Session, resp.Writer, resp.Location)
		return nil
	},
}
