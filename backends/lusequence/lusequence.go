// Package lusequence implements the LUSequenceReader writer, which saves
// the n best labels of every record as text, one record per line.
package lusequence

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/evilsocket/datawriter/config"
	"github.com/evilsocket/datawriter/wrapper"
	"github.com/evilsocket/datawriter/writer"

	"github.com/evilsocket/islazy/log"
)

func init() {
	writer.Register(string(writer.LUSequenceReader), writer.ExportsOf(
		func() (writer.Backend[float32], error) { return New[float32](), nil },
		func() (writer.Backend[float64], error) { return New[float64](), nil },
	))
}

type output struct {
	name     string
	fileName string
	nbest    int
	mapping  writer.LabelMapping
}

// Writer is the LUSequenceReader backend.
type Writer[E writer.Element] struct {
	ctx      *wrapper.Context
	files    *wrapper.Files
	sections writer.Sections
	outputs  []*output
}

// New creates an uninitialized LUSequenceReader backend.
func New[E writer.Element]() *Writer[E] {
	ctx := wrapper.NewContext(string(writer.LUSequenceReader))
	return &Writer[E]{
		ctx:      ctx,
		files:    wrapper.NewFiles(ctx),
		sections: make(writer.Sections),
	}
}

func (w *Writer[E]) Init(cfg config.Parameters) error {
	outputPath := cfg.String("outputPath", "")

	for _, name := range cfg.Subsections() {
		sub, _ := cfg.Sub(name)
		secType, err := writer.ParseSectionType(sub.String("sectionType", "labels"))
		if err != nil {
			return fmt.Errorf("lusequence writer: section %s: %v", name, err)
		}
		w.sections[name] = writer.Section{Type: secType, Dim: sub.Int("dim", 0)}

		fileName := sub.String("outputFile", "")
		if fileName == "" {
			continue
		} else if !filepath.IsAbs(fileName) && outputPath != "" {
			fileName = filepath.Join(outputPath, fileName)
		}

		out := &output{
			name:     name,
			fileName: fileName,
			nbest:    sub.Int("nbest", 1),
		}
		if out.nbest < 1 {
			return fmt.Errorf("lusequence writer: section %s: nbest must be positive", name)
		}

		w.ctx.Reset()
		if !w.files.Create(fileName) {
			return w.ctx.Err()
		}
		w.outputs = append(w.outputs, out)
	}

	if len(w.outputs) == 0 {
		return fmt.Errorf("lusequence writer: no section has an outputFile")
	}

	log.Debug("lusequence writer: %d outputs", len(w.outputs))

	return nil
}

func (w *Writer[E]) GetSections(sections writer.Sections) error {
	for name, sec := range w.sections {
		sections[name] = sec
	}
	return nil
}

// Lines converts the scores of numRecords records to lines of the nbest
// labels. A buffer of numRecords values holds label ids.
func Lines[E writer.Element](data []E, numRecords, nbest int, mapping writer.LabelMapping) ([]string, error) {
	if numRecords == 0 {
		return []string{}, nil
	} else if len(data) < numRecords || len(data)%numRecords != 0 {
		return nil, fmt.Errorf("%d values can't be split in %d records", len(data), numRecords)
	}

	dim := len(data) / numRecords
	lines := make([]string, numRecords)
	for i := 0; i < numRecords; i++ {
		column := wrapper.Column(data, dim, i)
		if dim == 1 {
			lines[i] = mapping.Label(writer.LabelID(column[0]))
			continue
		}

		best := wrapper.NBest(column, nbest)
		labels := make([]string, len(best))
		for j, id := range best {
			labels[j] = mapping.Label(writer.LabelID(id))
		}
		lines[i] = strings.Join(labels, " ")
	}
	return lines, nil
}

func (w *Writer[E]) SaveData(recordStart int, buffers writer.Buffers[E], numRecords, datasetSize, variableSized int) (bool, error) {
	w.ctx.Reset()

	for _, out := range w.outputs {
		data, found := buffers.Find(out.name)
		if !found {
			continue
		}

		lines, err := Lines(data, numRecords, out.nbest, out.mapping)
		if err != nil {
			return false, fmt.Errorf("lusequence writer: section %s: %v", out.name, err)
		}

		text := ""
		for _, line := range lines {
			text += line + "\n"
		}
		if !w.files.Append(out.fileName, text+"\n") {
			return false, w.ctx.Err()
		}
	}

	return true, nil
}

func (w *Writer[E]) SaveMapping(targetID string, mapping writer.LabelMapping) error {
	for _, out := range w.outputs {
		if strings.EqualFold(out.name, targetID) {
			out.mapping = mapping
			return nil
		}
	}
	return fmt.Errorf("lusequence writer: no output for section %s", targetID)
}

func (w *Writer[E]) Destroy() error {
	return w.files.Close()
}
