// Package binary implements the BinaryReader writer, which persists every
// block of records, label mapping and section statistics as protobuf
// messages under the configured output path.
package binary

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/evilsocket/datawriter/config"
	pb "github.com/evilsocket/datawriter/proto"
	"github.com/evilsocket/datawriter/storage"
	"github.com/evilsocket/datawriter/wrapper"
	"github.com/evilsocket/datawriter/writer"

	"github.com/evilsocket/islazy/log"
	"github.com/golang/protobuf/proto"
)

const (
	// MappingsFolder is where label mappings are saved, relative to outputPath.
	MappingsFolder = "mappings"
	// StatsFolder is where section statistics are saved, relative to outputPath.
	StatsFolder = "stats"
)

func init() {
	writer.Register(string(writer.BinaryReader), writer.ExportsOf(
		func() (writer.Backend[float32], error) { return New[float32](), nil },
		func() (writer.Backend[float64], error) { return New[float64](), nil },
	))
}

type statsSection struct {
	source  string
	summary wrapper.Summary
}

// Writer is the BinaryReader backend.
type Writer[E writer.Element] struct {
	path     string
	sections writer.Sections
	blocks   map[string]*storage.Index
	stats    map[string]*statsSection
	mappings *storage.Index
	summary  *storage.Index
}

// New creates an uninitialized BinaryReader backend.
func New[E writer.Element]() *Writer[E] {
	return &Writer[E]{
		sections: make(writer.Sections),
		blocks:   make(map[string]*storage.Index),
		stats:    make(map[string]*statsSection),
	}
}

// SectionPath returns the folder the blocks of a section are saved in.
func SectionPath(outputPath, section string) string {
	return filepath.Join(outputPath, section)
}

func openIndex(path string, driver storage.Driver) (*storage.Index, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, err
	}
	idx := storage.WithDriver(path, driver)
	return idx, idx.Load()
}

func (w *Writer[E]) Init(cfg config.Parameters) (err error) {
	if w.path = cfg.String("outputPath", ""); w.path == "" {
		return fmt.Errorf("binary writer: outputPath not specified")
	}

	for _, name := range cfg.Subsections() {
		sub, _ := cfg.Sub(name)
		secType, err := writer.ParseSectionType(sub.String("sectionType", "data"))
		if err != nil {
			return fmt.Errorf("binary writer: section %s: %v", name, err)
		}

		w.sections[name] = writer.Section{Type: secType, Dim: sub.Int("dim", 0)}

		switch secType {
		case writer.SectionData, writer.SectionLabel, writer.SectionCategoryLabel:
			if w.blocks[name], err = openIndex(SectionPath(w.path, name), storage.BlockDriver{}); err != nil {
				return err
			}
		case writer.SectionStats:
			source := sub.String("source", "")
			if source == "" {
				return fmt.Errorf("binary writer: stats section %s has no source", name)
			}
			w.stats[name] = &statsSection{source: source}
		}
	}

	for name, s := range w.stats {
		stored, sec, found := w.sections.Find(s.source)
		if !found || sec.Type != writer.SectionData {
			return fmt.Errorf("binary writer: stats section %s: %s is not a data section", name, s.source)
		}
		s.source = stored
	}

	if w.mappings, err = openIndex(filepath.Join(w.path, MappingsFolder), storage.MappingDriver{}); err != nil {
		return err
	} else if w.summary, err = openIndex(filepath.Join(w.path, StatsFolder), storage.StatsDriver{}); err != nil {
		return err
	}

	log.Debug("binary writer: %d sections in %s", len(w.sections), w.path)

	return nil
}

func (w *Writer[E]) GetSections(sections writer.Sections) error {
	for name, sec := range w.sections {
		sections[name] = sec
	}
	return nil
}

func (w *Writer[E]) SaveData(recordStart int, buffers writer.Buffers[E], numRecords, datasetSize, variableSized int) (bool, error) {
	for _, name := range w.sections.Names() {
		idx, found := w.blocks[name]
		if !found {
			continue
		}

		data, found := buffers.Find(name)
		if !found {
			continue
		}

		dim := w.sections[name].Dim
		if variableSized == 0 && dim > 0 && len(data) != dim*numRecords {
			return false, fmt.Errorf("binary writer: section %s has %d values, expected %d records of %d", name, len(data), numRecords, dim)
		}

		values := make([]float64, len(data))
		copy(values, wrapper.Float64s(data))

		block := &pb.Block{
			Section:     name,
			RecordStart: uint64(recordStart),
			NumRecords:  uint64(numRecords),
			Dim:         uint32(dim),
			ElementType: writer.ElementTypeOf[E]().String(),
			Data:        values,
		}
		if err := idx.Create(block); err != nil {
			return false, err
		}

		for _, s := range w.stats {
			if s.source == name {
				s.summary.Add(values, dim)
			}
		}
	}

	return true, nil
}

func (w *Writer[E]) SaveMapping(targetID string, mapping writer.LabelMapping) error {
	if stored, _, found := w.sections.Find(targetID); found {
		targetID = stored
	}

	labels := make(map[uint32]string, len(mapping))
	for id, label := range mapping {
		labels[uint32(id)] = label
	}

	existing := w.mappings.FindBy(func(m proto.Message) bool {
		return m.(*pb.Mapping).Section == targetID
	})
	if existing != nil {
		return w.mappings.Update(&pb.Mapping{Id: existing.(*pb.Mapping).Id, Labels: labels})
	}
	return w.mappings.Create(&pb.Mapping{Section: targetID, Labels: labels})
}

func (w *Writer[E]) flushStats() error {
	for name, s := range w.stats {
		stats := &pb.Stats{
			Section:  name,
			Source:   s.source,
			Count:    s.summary.Count,
			Records:  s.summary.Records,
			Min:      s.summary.Min,
			Max:      s.summary.Max,
			Mean:     s.summary.Mean(),
			Stddev:   s.summary.StdDev(),
			MeanNorm: s.summary.MeanNorm(),
		}

		existing := w.summary.FindBy(func(m proto.Message) bool {
			return m.(*pb.Stats).Section == name
		})
		if existing != nil {
			stats.Id = existing.(*pb.Stats).Id
			if err := w.summary.Update(stats); err != nil {
				return err
			}
		} else if err := w.summary.Create(stats); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer[E]) Destroy() error {
	if w.summary == nil {
		return nil
	}
	return w.flushStats()
}
