package htk

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	// HeaderSize is the size in bytes of the header of a feature file.
	HeaderSize = 12
	// ParmKindUser is the HTK parameter kind for user defined features.
	ParmKindUser = 9
	// DefaultSampPeriod is 10ms in 100ns units.
	DefaultSampPeriod = 100000
)

// Header is the header of an HTK feature file, stored big endian.
type Header struct {
	NumSamples int32
	SampPeriod int32
	SampSize   int16
	ParmKind   int16
}

// Dim returns the number of float32 values per sample.
func (h Header) Dim() int {
	return int(h.SampSize) / 4
}

// WriteFeatures writes dim sized float32 frames to fileName.
func WriteFeatures(fileName string, frames []float32, dim, sampPeriod, parmKind int) error {
	if dim <= 0 || len(frames)%dim != 0 {
		return fmt.Errorf("%d values can't be split in frames of %d", len(frames), dim)
	}

	fp, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer fp.Close()

	w := bufio.NewWriter(fp)
	hdr := Header{
		NumSamples: int32(len(frames) / dim),
		SampPeriod: int32(sampPeriod),
		SampSize:   int16(dim * 4),
		ParmKind:   int16(parmKind),
	}

	if err := binary.Write(w, binary.BigEndian, hdr); err != nil {
		return err
	} else if err := binary.Write(w, binary.BigEndian, frames); err != nil {
		return err
	} else if err := w.Flush(); err != nil {
		return err
	}
	return fp.Close()
}

// ReadFeatures reads an HTK feature file.
func ReadFeatures(fileName string) (Header, []float32, error) {
	var hdr Header

	fp, err := os.Open(fileName)
	if err != nil {
		return hdr, nil, err
	}
	defer fp.Close()

	r := bufio.NewReader(fp)
	if err := binary.Read(r, binary.BigEndian, &hdr); err != nil {
		return hdr, nil, fmt.Errorf("error while reading header of %s: %v", fileName, err)
	} else if hdr.SampSize <= 0 || hdr.SampSize%4 != 0 || hdr.NumSamples < 0 {
		return hdr, nil, fmt.Errorf("%s: unexpected header %+v", fileName, hdr)
	}

	frames := make([]float32, int(hdr.NumSamples)*hdr.Dim())
	if err := binary.Read(r, binary.BigEndian, frames); err != nil {
		return hdr, nil, fmt.Errorf("error while reading frames of %s: %v", fileName, err)
	} else if _, err := r.ReadByte(); err != io.EOF {
		return hdr, nil, fmt.Errorf("%s: trailing data after %d frames", fileName, hdr.NumSamples)
	}

	return hdr, frames, nil
}
