package htk

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/evilsocket/datawriter/config"
	"github.com/evilsocket/datawriter/writer"

	"github.com/stretchr/testify/require"
)

func setupFolder(t *testing.T) string {
	folder, err := ioutil.TempDir("", "dwhtk")
	require.NoError(t, err)
	return folder
}

func testConfig(folder string, extra map[string]interface{}) config.Parameters {
	features := map[string]interface{}{"sectionType": "data", "dim": 2.0, "ext": ".fea"}
	for k, v := range extra {
		features[k] = v
	}
	return config.New(map[string]interface{}{
		"writerType": "HTKMLFWriter",
		"outputPath": folder,
		"features":   features,
		"labels": map[string]interface{}{
			"sectionType":      "labels",
			"mlfFile":          "out.mlf",
			"labelMappingFile": "labels.txt",
		},
	})
}

func TestFeaturesRoundTrip(t *testing.T) {
	folder := setupFolder(t)
	defer os.RemoveAll(folder)

	fileName := filepath.Join(folder, "test.htk")
	frames := []float32{1, 2, 3, 4, 5, 6}
	require.NoError(t, WriteFeatures(fileName, frames, 3, DefaultSampPeriod, ParmKindUser))

	info, err := os.Stat(fileName)
	require.NoError(t, err)
	require.Equal(t, int64(HeaderSize+len(frames)*4), info.Size())

	raw, err := ioutil.ReadFile(fileName)
	require.NoError(t, err)
	// big endian number of samples
	require.Equal(t, []byte{0, 0, 0, 2}, raw[:4])
	// big endian sample size
	require.Equal(t, []byte{0, 12}, raw[8:10])

	hdr, read, err := ReadFeatures(fileName)
	require.NoError(t, err)
	require.Equal(t, Header{NumSamples: 2, SampPeriod: DefaultSampPeriod, SampSize: 12, ParmKind: ParmKindUser}, hdr)
	require.Equal(t, 3, hdr.Dim())
	require.Equal(t, frames, read)

	require.Error(t, WriteFeatures(fileName, frames, 4, DefaultSampPeriod, ParmKindUser))

	require.NoError(t, ioutil.WriteFile(fileName, append(raw, 0), 0644))
	_, _, err = ReadFeatures(fileName)
	require.Error(t, err)
}

func TestSegments(t *testing.T) {
	require.Equal(t, []Segment{
		{0, 200, "sil"},
		{200, 300, "a"},
		{300, 400, "sil"},
	}, Segments([]string{"sil", "sil", "a", "sil"}, 100))
	require.Empty(t, Segments(nil, 100))
}

func TestMLFRoundTrip(t *testing.T) {
	folder := setupFolder(t)
	defer os.RemoveAll(folder)

	fileName := filepath.Join(folder, "test.mlf")
	m, err := CreateMLF(fileName)
	require.NoError(t, err)
	require.NoError(t, m.Write("utt1", []Segment{{0, 100, "a"}, {100, 300, "b"}}))
	require.NoError(t, m.Write("utt2", []Segment{{0, 100, "c"}}))
	require.NoError(t, m.Close())

	data, err := ioutil.ReadFile(fileName)
	require.NoError(t, err)
	require.Equal(t, "#!MLF!#\n\"utt1.lab\"\n0 100 a\n100 300 b\n.\n\"utt2.lab\"\n0 100 c\n.\n", string(data))

	utterances, err := ReadMLF(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, map[string][]Segment{
		"utt1": {{0, 100, "a"}, {100, 300, "b"}},
		"utt2": {{0, 100, "c"}},
	}, utterances)

	_, err = ReadMLF(bytes.NewReader([]byte("nope\n")))
	require.Error(t, err)
}

func TestHTKMLFWriter(t *testing.T) {
	folder := setupFolder(t)
	defer os.RemoveAll(folder)

	p, err := writer.New[float32](testConfig(folder, nil))
	require.NoError(t, err)
	require.Equal(t, writer.HTKMLFReader, p.Canonical())

	sections := make(writer.Sections)
	require.NoError(t, p.GetSections(sections))
	require.Equal(t, writer.Sections{
		"features": {Type: writer.SectionData, Dim: 2},
		"labels":   {Type: writer.SectionLabel},
	}, sections)

	require.NoError(t, p.SaveMapping("Labels", writer.LabelMapping{1: "a", 0: "sil"}))

	ok, err := p.SaveData(0, writer.Buffers[float32]{
		"features": {1, 2, 3, 4, 5, 6},
		"labels":   {0, 0, 1},
	}, 3, 5, 0)
	require.NoError(t, err)
	require.True(t, ok)

	// one hot labels
	ok, err = p.SaveData(3, writer.Buffers[float32]{
		"features": {7, 8, 9, 10},
		"labels":   {0.1, 0.9, 0.8, 0.2},
	}, 2, 5, 0)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, p.Teardown())

	hdr, frames, err := ReadFeatures(filepath.Join(folder, "features_0.fea"))
	require.NoError(t, err)
	require.Equal(t, int32(3), hdr.NumSamples)
	require.Equal(t, []float32{1, 2, 3, 4, 5, 6}, frames)

	_, frames, err = ReadFeatures(filepath.Join(folder, "features_3.fea"))
	require.NoError(t, err)
	require.Equal(t, []float32{7, 8, 9, 10}, frames)

	fp, err := os.Open(filepath.Join(folder, "out.mlf"))
	require.NoError(t, err)
	defer fp.Close()

	utterances, err := ReadMLF(fp)
	require.NoError(t, err)
	require.Equal(t, map[string][]Segment{
		"features_0": {{0, 200000, "sil"}, {200000, 300000, "a"}},
		"features_3": {{0, 100000, "a"}, {100000, 200000, "sil"}},
	}, utterances)

	mapping, err := ioutil.ReadFile(filepath.Join(folder, "labels.txt"))
	require.NoError(t, err)
	require.Equal(t, "sil\na\n", string(mapping))
}

func TestHTKMLFWriterScpFile(t *testing.T) {
	folder := setupFolder(t)
	defer os.RemoveAll(folder)

	scp := "utt_a=feats/a.htk\n\nfeats/b.htk\n"
	require.NoError(t, ioutil.WriteFile(filepath.Join(folder, "list.scp"), []byte(scp), 0644))

	w := New[float64]()
	require.NoError(t, w.Init(testConfig(folder, map[string]interface{}{"scpFile": "list.scp"})))
	defer w.Destroy()

	for i := 0; i < 2; i++ {
		ok, err := w.SaveData(i, writer.Buffers[float64]{"features": {0.5, 1.5}}, 1, 2, 0)
		require.NoError(t, err)
		require.True(t, ok)
	}

	for _, name := range []string{"a", "b"} {
		_, frames, err := ReadFeatures(filepath.Join(folder, "feats", name+".htk"))
		require.NoError(t, err)
		require.Equal(t, []float32{0.5, 1.5}, frames)
	}

	// list exhausted
	_, err := w.SaveData(2, writer.Buffers[float64]{"features": {0.5, 1.5}}, 1, 2, 0)
	require.Error(t, err)
}

func TestHTKMLFWriterErrors(t *testing.T) {
	folder := setupFolder(t)
	defer os.RemoveAll(folder)

	w := New[float32]()
	require.NoError(t, w.Init(testConfig(folder, nil)))
	defer w.Destroy()

	require.Error(t, w.SaveMapping("features", writer.LabelMapping{}))

	_, err := w.SaveData(0, writer.Buffers[float32]{"labels": {1, 2, 3}}, 2, 2, 0)
	require.Error(t, err)

	_, err = w.SaveData(0, writer.Buffers[float32]{"features": {1, 2, 3}}, 2, 2, 0)
	require.Error(t, err)

	bad := config.New(map[string]interface{}{
		"outputPath": folder,
		"features":   map[string]interface{}{"sectionType": "data"},
	})
	require.Error(t, New[float32]().Init(bad))

	missingScp := testConfig(folder, map[string]interface{}{"scpFile": "nope.scp"})
	other := New[float32]()
	require.Error(t, other.Init(missingScp))
	require.NoError(t, other.Destroy())
}
