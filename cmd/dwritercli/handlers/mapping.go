package handlers

import (
	"context"
	"fmt"
	"regexp"

	pb "github.com/evilsocket/datawriter/proto"

	"github.com/chzyer/readline"
)

var mapHandler = handler{
	Name:        "MAP",
	Mnemonic:    "MAP <SESSION> <SECTION> <ID>=<LABEL>,...",
	Completer:   readline.PcItem("map"),
	Parser:      regexp.MustCompile(`^(?i)(MAP)\s+(\d+)\s+(\S+)\s+(.+)$`),
	Description: "Save the label mapping of <SECTION>.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.DataWriterClient) error {
		id, err := parseSession(args[0])
		if err != nil {
			return err
		}
		labels, err := parseLabels(args[2])
		if err != nil {
			return err
		}

		resp, err := client.SaveMapping(context.TODO(), &pb.SaveMappingRequest{
			Session: id,
			Section: args[1],
			Labels:  labels,
		})
		if err != nil {
			return err
		} else if !resp.Success {
			return fmt.Errorf("%s", resp.Msg)
		}

		fmt.Printf("saved %d labels for %s\n", len(labels), args[1])
		return nil
	},
}
