package htk

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// MLFHeader is the first line of every master label file.
const MLFHeader = "#!MLF!#"

// Segment is a run of consecutive frames with the same label, Start
// and End are in 100ns units.
type Segment struct {
	Start int64
	End   int64
	Label string
}

// Segments merges consecutive frames with the same label.
func Segments(labels []string, sampPeriod int) []Segment {
	segments := make([]Segment, 0)
	period := int64(sampPeriod)
	for i, label := range labels {
		if n := len(segments); n > 0 && segments[n-1].Label == label {
			segments[n-1].End += period
			continue
		}
		segments = append(segments, Segment{
			Start: int64(i) * period,
			End:   int64(i+1) * period,
			Label: label,
		})
	}
	return segments
}

// MLF writes a master label file.
type MLF struct {
	fp *os.File
	w  *bufio.Writer
}

// CreateMLF creates fileName and writes the MLF header.
func CreateMLF(fileName string) (*MLF, error) {
	fp, err := os.Create(fileName)
	if err != nil {
		return nil, err
	}

	m := &MLF{fp: fp, w: bufio.NewWriter(fp)}
	if _, err := m.w.WriteString(MLFHeader + "\n"); err != nil {
		fp.Close()
		return nil, err
	}
	return m, nil
}

// Write adds the transcription of an utterance.
func (m *MLF) Write(utterance string, segments []Segment) error {
	if _, err := fmt.Fprintf(m.w, "\"%s.lab\"\n", utterance); err != nil {
		return err
	}
	for _, s := range segments {
		if _, err := fmt.Fprintf(m.w, "%d %d %s\n", s.Start, s.End, s.Label); err != nil {
			return err
		}
	}
	_, err := m.w.WriteString(".\n")
	return err
}

// Close flushes and closes the file.
func (m *MLF) Close() error {
	if err := m.w.Flush(); err != nil {
		m.fp.Close()
		return err
	}
	return m.fp.Close()
}

// ReadMLF parses a master label file into utterance -> segments.
func ReadMLF(r io.Reader) (map[string][]Segment, error) {
	scanner := bufio.NewScanner(r)
	utterances := make(map[string][]Segment)

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != MLFHeader {
		return nil, fmt.Errorf("missing %s header", MLFHeader)
	}

	current := ""
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == ".":
			current = ""
		case current == "" && strings.HasPrefix(line, "\""):
			current = strings.TrimSuffix(strings.Trim(line, "\""), ".lab")
			utterances[current] = make([]Segment, 0)
		case current != "":
			var s Segment
			if _, err := fmt.Sscanf(line, "%d %d %s", &s.Start, &s.End, &s.Label); err != nil {
				return nil, fmt.Errorf("bad segment '%s': %v", line, err)
			}
			utterances[current] = append(utterances[current], s)
		default:
			return nil, fmt.Errorf("unexpected line '%s'", line)
		}
	}

	return utterances, scanner.Err()
}
