package storage

import (
	"reflect"
	"testing"

	pb "github.com/evilsocket/datawriter/proto"
)

func TestBlockDriver(t *testing.T) {
	d := BlockDriver{}
	m := d.Make()
	if _, ok := m.(*pb.Block); !ok {
		t.Fatalf("unexpected type %T", m)
	}

	d.SetID(m, 666)
	if id := d.GetID(m); id != 666 {
		t.Fatalf("expected id 666, got %d", id)
	}

	dst := pb.Block{Id: 1, Section: "features", ElementType: "double"}
	src := pb.Block{Id: 2, Section: "other", RecordStart: 4, NumRecords: 2, Dim: 1, Data: []float64{1, 2}}
	if err := d.Copy(&dst, &src); err != nil {
		t.Fatal(err)
	} else if dst.Id != 1 || dst.Section != "features" {
		t.Fatalf("identity fields should not be copied: %v", dst)
	} else if dst.ElementType != "double" {
		t.Fatal("empty element type should not be copied")
	} else if dst.RecordStart != 4 || dst.NumRecords != 2 || !reflect.DeepEqual(dst.Data, src.Data) {
		t.Fatalf("unexpected block %v", dst)
	}
}

func TestMappingDriver(t *testing.T) {
	d := MappingDriver{}
	m := d.Make()
	d.SetID(m, 3)
	if d.GetID(m) != 3 {
		t.Fatal("unexpected id")
	}

	dst := pb.Mapping{Labels: map[uint32]string{0: "a"}}
	if err := d.Copy(&dst, &pb.Mapping{}); err != nil {
		t.Fatal(err)
	} else if dst.Labels[0] != "a" {
		t.Fatal("nil labels should not be copied")
	} else if err := d.Copy(&dst, &pb.Mapping{Labels: map[uint32]string{1: "b"}}); err != nil {
		t.Fatal(err)
	} else if !reflect.DeepEqual(dst.Labels, map[uint32]string{1: "b"}) {
		t.Fatalf("unexpected labels %v", dst.Labels)
	}
}

func TestStatsDriver(t *testing.T) {
	d := StatsDriver{}
	m := d.Make()
	d.SetID(m, 9)
	if d.GetID(m) != 9 {
		t.Fatal("unexpected id")
	}

	dst := pb.Stats{Id: 1, Section: "stats"}
	src := pb.Stats{Id: 2, Section: "other", Source: "features", Count: 6, Min: -1, Max: 3, Mean: 1}
	if err := d.Copy(&dst, &src); err != nil {
		t.Fatal(err)
	} else if dst.Id != 1 || dst.Section != "stats" {
		t.Fatalf("identity fields should not be copied: %v", dst)
	} else if dst.Source != "features" || dst.Count != 6 || dst.Min != -1 || dst.Max != 3 || dst.Mean != 1 {
		t.Fatalf("unexpected stats %v", dst)
	}
}
