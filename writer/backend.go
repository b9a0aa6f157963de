package writer

import (
	"github.com/evilsocket/datawriter/config"
)

// Backend is the interface every writer implementation exposes to the
// proxy. Instances are created by the module entry point, initialized
// once and destroyed once.
type Backend[E Element] interface {
	// Init configures the backend, it receives the whole writer
	// configuration.
	Init(cfg config.Parameters) error
	// GetSections fills sections with the layout of the backend output.
	GetSections(sections Sections) error
	// SaveData saves numRecords records starting at recordStart, datasetSize
	// is the total size of the dataset and variableSized the size in bytes
	// of the current block for variable sized data, 0 otherwise.
	SaveData(recordStart int, buffers Buffers[E], numRecords, datasetSize, variableSized int) (bool, error)
	// SaveMapping persists a label mapping under the targetID section.
	SaveMapping(targetID string, mapping LabelMapping) error
	// Destroy releases every resource held by the backend.
	Destroy() error
}

// Factory is a module entry point, it creates a new uninitialized backend.
type Factory[E Element] func() (Backend[E], error)
