package storage

import (
	"errors"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/evilsocket/islazy/log"
	"github.com/golang/protobuf/proto"
)

var (
	ErrInvalidID      = errors.New("identifier is not unique")
	ErrRecordNotFound = errors.New("record not found")

	pathSep = string(os.PathSeparator)
)

// Index is a generic thread safe data structure used to
// map objects to unique integer identifiers, every object
// is persisted as <dataPath>/<id>.dat
type Index struct {
	sync.RWMutex
	dataPath string
	index    map[uint64]proto.Message
	nextID   uint64
	driver   Driver
}

// WithDriver creates a new index for the objects handled by
// driver and persisted in dataPath.
func WithDriver(dataPath string, driver Driver) *Index {
	if !strings.HasSuffix(dataPath, pathSep) {
		dataPath += pathSep
	}
	return &Index{
		dataPath: dataPath,
		index:    make(map[uint64]proto.Message),
		nextID:   1,
		driver:   driver,
	}
}

// Path returns the folder of the index.
func (i *Index) Path() string {
	i.RLock()
	defer i.RUnlock()
	return i.dataPath
}

// Load reads every object stored in the index folder.
func (i *Index) Load() error {
	i.Lock()
	defer i.Unlock()

	absPath, files, err := ListPath(i.dataPath)
	if err != nil {
		return err
	}

	i.dataPath = absPath + pathSep
	i.nextID = 1
	if nfiles := len(files); nfiles > 0 {
		log.Debug("loading %d data files from %s ...", nfiles, i.dataPath)
		for _, fileName := range files {
			record := i.driver.Make()
			if err := Load(fileName, record); err != nil {
				return err
			}
			recID := i.driver.GetID(record)
			i.index[recID] = record
			if recID >= i.nextID {
				i.nextID = recID + 1
			}
		}
	}

	return nil
}

func (i *Index) pathForID(id uint64) string {
	return i.dataPath + strconv.FormatUint(id, 10) + DatFileExt
}

func (i *Index) pathFor(record proto.Message) string {
	return i.pathForID(i.driver.GetID(record))
}

// ForEach calls cb for every object, in no particular order.
func (i *Index) ForEach(cb func(record proto.Message)) {
	i.RLock()
	defer i.RUnlock()
	for _, record := range i.index {
		cb(record)
	}
}

// Objects returns every object sorted by identifier.
func (i *Index) Objects() []proto.Message {
	i.RLock()
	defer i.RUnlock()

	ids := make([]uint64, 0, len(i.index))
	for id := range i.index {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })

	objects := make([]proto.Message, len(ids))
	for n, id := range ids {
		objects[n] = i.index[id]
	}
	return objects
}

func (i *Index) Size() uint64 {
	i.RLock()
	defer i.RUnlock()
	return uint64(len(i.index))
}

func (i *Index) NextID(next uint64) {
	i.Lock()
	defer i.Unlock()
	i.nextID = next
}

// Create assigns a new identifier to record and persists it.
func (i *Index) Create(record proto.Message) error {
	i.Lock()
	defer i.Unlock()

	// make sure the id is unique and that we
	// are able to create the data file
	recID := i.nextID
	i.driver.SetID(record, recID)
	if _, found := i.index[recID]; found {
		return ErrInvalidID
	} else if err := Flush(record, i.pathForID(recID)); err != nil {
		return err
	}

	i.nextID++
	i.index[recID] = record

	return nil
}

// Update copies record into the stored object with the same
// identifier and persists it.
func (i *Index) Update(record proto.Message) error {
	i.Lock()
	defer i.Unlock()

	recID := i.driver.GetID(record)
	stored, found := i.index[recID]
	if !found {
		return ErrRecordNotFound
	} else if err := i.driver.Copy(stored, record); err != nil {
		return err
	}
	return Flush(stored, i.pathForID(recID))
}

func (i *Index) Find(id uint64) proto.Message {
	i.RLock()
	defer i.RUnlock()

	if record, found := i.index[id]; found {
		return record
	}
	return nil
}

// FindBy returns the first object, by identifier, matching the predicate.
func (i *Index) FindBy(match func(record proto.Message) bool) proto.Message {
	for _, record := range i.Objects() {
		if match(record) {
			return record
		}
	}
	return nil
}

func (i *Index) Delete(id uint64) proto.Message {
	i.Lock()
	defer i.Unlock()

	record, found := i.index[id]
	if !found {
		return nil
	}

	delete(i.index, id)

	os.Remove(i.pathForID(id))

	return record
}
