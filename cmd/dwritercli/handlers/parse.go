package handlers

import (
	"fmt"
	"strconv"
	"strings"

	pb "github.com/evilsocket/datawriter/proto"

	"github.com/evilsocket/islazy/str"
)

func parseSession(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid session id '%s'", s)
	}
	return id, nil
}

func parseValues(s string) ([]float64, error) {
	values := []float64{}
	for _, part := range str.Comma(s) {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value '%s'", part)
		}
		values = append(values, v)
	}
	return values, nil
}

// parseBuffers parses "section:v,v,..." tokens, one buffer per token.
func parseBuffers(tokens []string) ([]*pb.Buffer, error) {
	buffers := []*pb.Buffer{}
	for _, tok := range tokens {
		parts := strings.SplitN(tok, ":", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("buffer '%s' is not in the section:values form", tok)
		}
		values, err := parseValues(parts[1])
		if err != nil {
			return nil, err
		}
		buffers = append(buffers, &pb.Buffer{Section: parts[0], Data: values})
	}
	return buffers, nil
}

// parseLabels parses "id=label,id=label,..." into a mapping.
func parseLabels(s string) (map[uint32]string, error) {
	labels := make(map[uint32]string)
	for _, part := range str.Comma(s) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("label '%s' is not in the id=label form", part)
		}
		id, err := strconv.ParseUint(strings.TrimSpace(kv[0]), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid label id '%s'", kv[0])
		}
		labels[uint32(id)] = strings.TrimSpace(kv[1])
	}
	return labels, nil
}
