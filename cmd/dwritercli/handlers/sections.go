package handlers

import (
	"context"
	"fmt"
	"os"
	"regexp"

	pb "github.com/evilsocket/datawriter/proto"

	"github.com/chzyer/readline"
	"github.com/evilsocket/islazy/tui"
)

var sectionsHandler = handler{
	Name:        "SECTIONS",
	Mnemonic:    "SECTIONS or S <SESSION>",
	Completer:   readline.PcItem("sections"),
	Parser:      regexp.MustCompile(`^(?i)(SECTIONS|S)\s+(\d+)$`),
	Description: "Show the sections the writer of <SESSION> expects.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.DataWriterClient) error {
		id, err := parseSession(args[0])
		if err != nil {
			return err
		}

		resp, err := client.Sections(context.TODO(), &pb.BySession{Session: id})
		if err != nil {
			return err
		} else if !resp.Success {
			return fmt.Errorf("%s", resp.Msg)
		}

		rows := [][]string{}
		for _, s := range resp.Sections {
			rows = append(rows, []string{s.Name, s.Type, fmt.Sprintf("%d", s.Dim)})
		}

		tui.Table(os.Stdout, []string{"section", "type", "dim"}, rows)

		return nil
	},
}
