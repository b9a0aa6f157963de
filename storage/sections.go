package storage

import (
	"sort"

	pb "github.com/evilsocket/datawriter/proto"
)

// LoadBlocks reads the blocks saved in the folder of a data
// section, sorted by first record.
func LoadBlocks(dataPath string) ([]*pb.Block, error) {
	idx := WithDriver(dataPath, BlockDriver{})
	if err := idx.Load(); err != nil {
		return nil, err
	}

	objects := idx.Objects()
	blocks := make([]*pb.Block, len(objects))
	for i, m := range objects {
		blocks[i] = m.(*pb.Block)
	}
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].RecordStart < blocks[j].RecordStart
	})
	return blocks, nil
}

// LoadMappings reads the label mappings saved in dataPath
// indexed by section name.
func LoadMappings(dataPath string) (map[string]*pb.Mapping, error) {
	idx := WithDriver(dataPath, MappingDriver{})
	if err := idx.Load(); err != nil {
		return nil, err
	}

	mappings := make(map[string]*pb.Mapping)
	for _, m := range idx.Objects() {
		mapping := m.(*pb.Mapping)
		mappings[mapping.Section] = mapping
	}
	return mappings, nil
}

// LoadStats reads the statistics saved in dataPath indexed by
// section name.
func LoadStats(dataPath string) (map[string]*pb.Stats, error) {
	idx := WithDriver(dataPath, StatsDriver{})
	if err := idx.Load(); err != nil {
		return nil, err
	}

	stats := make(map[string]*pb.Stats)
	for _, m := range idx.Objects() {
		s := m.(*pb.Stats)
		stats[s.Section] = s
	}
	return stats, nil
}
