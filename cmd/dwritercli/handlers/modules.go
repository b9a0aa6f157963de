package handlers

import (
	"context"
	"os"
	"regexp"

	pb "github.com/evilsocket/datawriter/proto"

	"github.com/chzyer/readline"
	"github.com/evilsocket/islazy/tui"
)

var modulesHandler = handler{
	Name:        "MODULES",
	Mnemonic:    "MODULES or M",
	Completer:   readline.PcItem("modules"),
	Parser:      regexp.MustCompile(`^(?i)(MODULES|M)$`),
	Description: "List the writers available on the server and their aliases.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.DataWriterClient) error {
		resp, err := client.Modules(context.TODO(), &pb.Empty{})
		if err != nil {
			return err
		}

		rows := [][]string{}
		for _, name := range resp.Builtin {
			rows = append(rows, []string{name, "builtin"})
		}
		for _, name := range resp.Scripts {
			rows = append(rows, []string{name, "script"})
		}
		for _, alias := range resp.Aliases {
			rows = append(rows, []string{alias.Name, tui.Dim("alias of ") + alias.Canonical})
		}

		tui.Table(os.Stdout, []string{"writer", "kind"}, rows)

		return nil
	},
}
