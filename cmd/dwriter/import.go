package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/evilsocket/datawriter/writer"

	"github.com/evilsocket/islazy/log"
)

// dataset is a csv file loaded in memory, one record per row.
type dataset struct {
	dim     int
	records [][]float64
	labels  []writer.LabelID
	mapping writer.LabelMapping
}

// readDataset parses csv rows of numeric columns, if labelColumn is not
// negative that column holds the label of the record.
func readDataset(r io.Reader, labelColumn int) (*dataset, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	ds := &dataset{
		records: make([][]float64, 0),
		labels:  make([]writer.LabelID, 0),
		mapping: make(writer.LabelMapping),
	}
	ids := make(map[string]writer.LabelID)

	for line := 1; ; line++ {
		parts, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		record := make([]float64, 0, len(parts))
		for col, v := range parts {
			if col == labelColumn {
				label := strings.TrimSpace(v)
				id, found := ids[label]
				if !found {
					id = writer.LabelID(len(ids))
					ids[label] = id
					ds.mapping[id] = label
				}
				ds.labels = append(ds.labels, id)
				continue
			}

			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %v", line, col, err)
			}
			record = append(record, f)
		}

		if labelColumn >= len(parts) {
			return nil, fmt.Errorf("line %d: no label column %d", line, labelColumn)
		} else if ds.dim == 0 {
			ds.dim = len(record)
		} else if len(record) != ds.dim {
			return nil, fmt.Errorf("line %d: expected %d values, got %d", line, ds.dim, len(record))
		}

		ds.records = append(ds.records, record)
	}

	return ds, nil
}

// batchSaver is the part of a writer used by the importer.
type batchSaver[E writer.Element] interface {
	SaveData(recordStart int, buffers writer.Buffers[E], numRecords, datasetSize, variableSized int) (bool, error)
	SaveMapping(targetID string, mapping writer.LabelMapping) error
}

type importOptions struct {
	section      string
	labelSection string
	batchSize    int
}

// doImport saves the label mapping, if any, and then the records in
// batches of batchSize, it returns the number of saved records.
func doImport[E writer.Element](w batchSaver[E], ds *dataset, opts importOptions) (int, error) {
	hasLabels := len(ds.labels) > 0
	if hasLabels {
		if err := w.SaveMapping(opts.labelSection, ds.mapping); err != nil {
			return 0, err
		}
	}

	total := len(ds.records)
	saved := 0
	for start := 0; start < total; start += opts.batchSize {
		end := start + opts.batchSize
		if end > total {
			end = total
		}
		num := end - start

		data := make([]E, 0, num*ds.dim)
		for _, record := range ds.records[start:end] {
			for _, v := range record {
				data = append(data, E(v))
			}
		}

		buffers := writer.Buffers[E]{opts.section: data}
		if hasLabels {
			labels := make([]E, num)
			for i, id := range ds.labels[start:end] {
				labels[i] = E(id)
			}
			buffers[opts.labelSection] = labels
		}

		if ok, err := w.SaveData(start, buffers, num, total, 0); err != nil {
			return saved, err
		} else if !ok {
			log.Warning("writer reported a failure saving records %d-%d", start, end)
		}

		saved += num
		log.Debug("saved %d/%d records ...", saved, total)
	}

	return saved, nil
}
