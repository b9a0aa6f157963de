package handlers

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"strings"

	pb "github.com/evilsocket/datawriter/proto"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/evilsocket/islazy/str"
	"github.com/evilsocket/islazy/tui"
)

var bytesFields = map[string]bool{
	"alloc":        true,
	"sys":          true,
	"total_memory": true,
}

func tos(name string, value reflect.Value) string {
	switch value.Kind() {
	case reflect.String:
		return value.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprintf("%d", value.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if bytesFields[name] {
			return humanize.Bytes(value.Uint())
		}
		return fmt.Sprintf("%d", value.Uint())
	case reflect.Slice:
		res := []string{}
		for i := 0; i < value.Len(); i++ {
			res = append(res, tos(name, value.Index(i)))
		}
		return strings.Join(res, " ")
	}
	return fmt.Sprintf("%v", value.Interface())
}

var infoHandler = handler{
	Name:        "INFO",
	Mnemonic:    "INFO",
	Completer:   readline.PcItem("info"),
	Description: "Display server information.",
	Callback: func(cmd string, args []string, reader *readline.Instance, client pb.DataWriterClient) error {
		info, err := client.Info(context.TODO(), &pb.Empty{})
		if err != nil {
			return err
		}

		rows := [][]string{}
		fields := reflect.TypeOf(*info)
		values := reflect.ValueOf(*info)

		for i := 0; i < fields.NumField(); i++ {
			tag := str.Comma(fields.Field(i).Tag.Get("json"))
			if len(tag) > 0 && tag[0] != "-" {
				fieldName := tag[0]
				rows = append(rows, []string{
					fieldName,
					tos(fieldName, values.Field(i)),
				})
			}
		}

		tui.Table(os.Stdout, []string{"name", "value"}, rows)

		return nil
	},
}
