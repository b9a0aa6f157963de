// Package htk implements the HTKMLFReader writer: data sections are saved
// as HTK feature files and label sections as HTK master label files.
package htk

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/evilsocket/datawriter/config"
	"github.com/evilsocket/datawriter/wrapper"
	"github.com/evilsocket/datawriter/writer"

	"github.com/evilsocket/islazy/fs"
	"github.com/evilsocket/islazy/log"
	"github.com/evilsocket/islazy/str"
)

// DefaultExt is the extension of feature files not listed in a scp file.
const DefaultExt = "htk"

func init() {
	writer.Register(string(writer.HTKMLFReader), writer.ExportsOf(
		func() (writer.Backend[float32], error) { return New[float32](), nil },
		func() (writer.Backend[float64], error) { return New[float64](), nil },
	))
}

type dataSection struct {
	name       string
	dim        int
	ext        string
	sampPeriod int
	parmKind   int
	scp        []string
	next       int
}

type labelSection struct {
	name        string
	dim         int
	sampPeriod  int
	mlf         *MLF
	mappingFile string
	mapping     writer.LabelMapping
}

// Writer is the HTKMLFReader backend.
type Writer[E writer.Element] struct {
	path     string
	sections writer.Sections
	data     []*dataSection
	labels   []*labelSection
}

// New creates an uninitialized HTKMLFReader backend.
func New[E writer.Element]() *Writer[E] {
	return &Writer[E]{
		sections: make(writer.Sections),
	}
}

// readScp reads a list of file names, one per line. Lines in the
// name=path form only keep the path.
func readScp(fileName string) ([]string, error) {
	fp, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	files := make([]string, 0)
	scanner := bufio.NewScanner(fp)
	for scanner.Scan() {
		line := str.Trim(scanner.Text())
		if line == "" {
			continue
		}
		if idx := strings.Index(line, "="); idx >= 0 {
			line = line[idx+1:]
		}
		files = append(files, line)
	}
	return files, scanner.Err()
}

func (w *Writer[E]) resolve(fileName string) string {
	if fileName == "" || filepath.IsAbs(fileName) {
		return fileName
	}
	return filepath.Join(w.path, fileName)
}

func (w *Writer[E]) Init(cfg config.Parameters) error {
	w.path = cfg.String("outputPath", ".")
	if !fs.Exists(w.path) {
		if err := os.MkdirAll(w.path, 0755); err != nil {
			return err
		}
	}

	for _, name := range cfg.Subsections() {
		sub, _ := cfg.Sub(name)
		secType, err := writer.ParseSectionType(sub.String("sectionType", "data"))
		if err != nil {
			return fmt.Errorf("htk writer: section %s: %v", name, err)
		}

		sec := writer.Section{Type: secType, Dim: sub.Int("dim", 0)}
		sampPeriod := sub.Int("sampPeriod", DefaultSampPeriod)

		switch secType {
		case writer.SectionData:
			if sec.Dim <= 0 {
				return fmt.Errorf("htk writer: data section %s needs a dim", name)
			}
			ds := &dataSection{
				name:       name,
				dim:        sec.Dim,
				ext:        strings.TrimPrefix(sub.String("ext", DefaultExt), "."),
				sampPeriod: sampPeriod,
				parmKind:   sub.Int("parmKind", ParmKindUser),
			}
			if scpFile := w.resolve(sub.String("scpFile", "")); scpFile != "" {
				if ds.scp, err = readScp(scpFile); err != nil {
					return fmt.Errorf("htk writer: section %s: %v", name, err)
				}
			}
			w.data = append(w.data, ds)

		case writer.SectionLabel, writer.SectionCategoryLabel:
			ls := &labelSection{
				name:        name,
				dim:         sec.Dim,
				sampPeriod:  sampPeriod,
				mappingFile: w.resolve(sub.String("labelMappingFile", "")),
			}
			mlfFile := w.resolve(sub.String("mlfFile", name+".mlf"))
			if ls.mlf, err = CreateMLF(mlfFile); err != nil {
				return fmt.Errorf("htk writer: section %s: %v", name, err)
			}
			w.labels = append(w.labels, ls)
		}

		w.sections[name] = sec
	}

	sort.Slice(w.data, func(i, j int) bool { return w.data[i].name < w.data[j].name })
	sort.Slice(w.labels, func(i, j int) bool { return w.labels[i].name < w.labels[j].name })

	log.Debug("htk writer: %d data and %d label sections in %s", len(w.data), len(w.labels), w.path)

	return nil
}

func (w *Writer[E]) GetSections(sections writer.Sections) error {
	for name, sec := range w.sections {
		sections[name] = sec
	}
	return nil
}

func (ds *dataSection) nextFile(outputPath string, recordStart int) (string, error) {
	if ds.scp == nil {
		return filepath.Join(outputPath, fmt.Sprintf("%s_%d.%s", ds.name, recordStart, ds.ext)), nil
	} else if ds.next >= len(ds.scp) {
		return "", fmt.Errorf("htk writer: section %s: no more files in the scp list (%d)", ds.name, len(ds.scp))
	}
	fileName := ds.scp[ds.next]
	ds.next++
	if !filepath.IsAbs(fileName) {
		fileName = filepath.Join(outputPath, fileName)
	}
	return fileName, nil
}

// utterance returns the name of a feature file without folder and extension.
func utterance(fileName string) string {
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (w *Writer[E]) SaveData(recordStart int, buffers writer.Buffers[E], numRecords, datasetSize, variableSized int) (bool, error) {
	name := ""

	for _, ds := range w.data {
		data, found := buffers.Find(ds.name)
		if !found {
			continue
		}

		fileName, err := ds.nextFile(w.path, recordStart)
		if err != nil {
			return false, err
		} else if err := os.MkdirAll(filepath.Dir(fileName), 0755); err != nil {
			return false, err
		} else if err := WriteFeatures(fileName, wrapper.FromFloat64s[float32](wrapper.Float64s(data)), ds.dim, ds.sampPeriod, ds.parmKind); err != nil {
			return false, fmt.Errorf("htk writer: section %s: %v", ds.name, err)
		}

		if name == "" {
			name = utterance(fileName)
		}
	}

	for _, ls := range w.labels {
		data, found := buffers.Find(ls.name)
		if !found {
			continue
		}

		labels, err := ls.labelsOf(wrapper.Float64s(data), numRecords)
		if err != nil {
			return false, err
		}

		key := name
		if key == "" {
			key = fmt.Sprintf("%s_%d", ls.name, recordStart)
		}
		if err := ls.mlf.Write(key, Segments(labels, ls.sampPeriod)); err != nil {
			return false, err
		}
	}

	return true, nil
}

// labelsOf converts a label buffer to label strings, one per record. A
// buffer of numRecords values holds label ids, otherwise every record is
// a column of scores and the best one is picked.
func (ls *labelSection) labelsOf(data []float64, numRecords int) ([]string, error) {
	dim := 1
	if numRecords > 0 && len(data) != numRecords {
		if len(data) < numRecords || len(data)%numRecords != 0 {
			return nil, fmt.Errorf("htk writer: section %s has %d values for %d records", ls.name, len(data), numRecords)
		}
		dim = len(data) / numRecords
	}

	labels := make([]string, 0, numRecords)
	for i := 0; i < numRecords; i++ {
		id := data[i]
		if dim > 1 {
			id = float64(wrapper.ArgMax(wrapper.Column(data, dim, i)))
		}
		labels = append(labels, ls.mapping.Label(writer.LabelID(id)))
	}
	return labels, nil
}

func (w *Writer[E]) SaveMapping(targetID string, mapping writer.LabelMapping) error {
	for _, ls := range w.labels {
		if !strings.EqualFold(ls.name, targetID) {
			continue
		}

		ls.mapping = mapping
		if ls.mappingFile == "" {
			return nil
		}

		lines := make([]string, 0, len(mapping))
		for _, id := range mapping.IDs() {
			lines = append(lines, mapping[id])
		}
		return writeLines(ls.mappingFile, lines)
	}
	return fmt.Errorf("htk writer: %s is not a label section", targetID)
}

func writeLines(fileName string, lines []string) error {
	fp, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer fp.Close()

	w := bufio.NewWriter(fp)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return fp.Close()
}

func (w *Writer[E]) Destroy() error {
	var firstErr error
	for _, ls := range w.labels {
		if ls.mlf == nil {
			continue
		}
		if err := ls.mlf.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		ls.mlf = nil
	}
	return firstErr
}
