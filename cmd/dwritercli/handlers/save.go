package handlers

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	pb "github.com/evilsocket/datawriter/proto"

	"github.com/chzyer/readline"
)

var saveHandler = handler{
	Name:        "SAVE",
	Mnemonic:    "SAVE <SESSION> <RECORD START> <NUM RECORDS> <SECTION>:<V,V,...> ...",
	Completer:   readline.PcItem("save"),
	Parser:      regexp.MustCompile(`^(?i)(SAVE)\s+(\d+)\s+(\d+)\s+(\d+)\s+(.+)$`),
	Description: "Save <NUM RECORDS> records starting at <RECORD START> with one buffer per section.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.DataWriterClient) error {
		id, err := parseSession(args[0])
		if err != nil {
			return err
		}
		recordStart, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return err
		}
		numRecords, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return err
		}
		buffers, err := parseBuffers(strings.Fields(args[3]))
		if err != nil {
			return err
		}

		resp, err := client.SaveData(context.TODO(), &pb.SaveDataRequest{
			Session:     id,
			RecordStart: recordStart,
			NumRecords:  numRecords,
			DatasetSize: recordStart + numRecords,
			Buffers:     buffers,
		})
		if err != nil {
			return err
		} else if !resp.Success {
			return fmt.Errorf("%s", resp.Msg)
		}

		fmt.Printf("saved %d records (result %v)\n", numRecords, resp.Result)
		return nil
	},
}
