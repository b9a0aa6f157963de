package handlers

import (
	"testing"

	. "github.com/stretchr/testify/require"
)

func TestParseSession(t *testing.T) {
	id, err := parseSession("42")
	NoError(t, err)
	Equal(t, uint64(42), id)

	_, err = parseSession("nope")
	Error(t, err)
}

func TestParseBuffers(t *testing.T) {
	buffers, err := parseBuffers([]string{"features:1,2.5,-3", "labels:0,1"})
	NoError(t, err)
	Len(t, buffers, 2)
	Equal(t, "features", buffers[0].Section)
	Equal(t, []float64{1, 2.5, -3}, buffers[0].Data)
	Equal(t, "labels", buffers[1].Section)
	Equal(t, []float64{0, 1}, buffers[1].Data)

	_, err = parseBuffers([]string{"features"})
	Error(t, err)
	_, err = parseBuffers([]string{":1,2"})
	Error(t, err)
	_, err = parseBuffers([]string{"features:1,x"})
	Error(t, err)
}

func TestParseLabels(t *testing.T) {
	labels, err := parseLabels("0=sil, 1=a,2=b")
	NoError(t, err)
	Equal(t, map[uint32]string{0: "sil", 1: "a", 2: "b"}, labels)

	_, err = parseLabels("0:sil")
	Error(t, err)
	_, err = parseLabels("x=sil")
	Error(t, err)
}

func TestDispatchUnknownCommand(t *testing.T) {
	NoError(t, Dispatch("   ", nil, nil))
	Error(t, Dispatch("frobnicate", nil, nil))
}
