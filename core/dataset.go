package core

import (
	"fmt"
	"math"
	"sort"

	"github.com/huangsam/shotdash/schema"
)

// Dataset is an ordered, immutable collection of shot records.
// It is built once at startup and shared by reference with every reader.
type Dataset struct {
	records []schema.ShotRecord
	groups  []string
	byGroup map[string][]int
}

// NewDataset validates the records and builds a Dataset from a private copy of them.
// Every record must carry a group and a player, and its minute bounds must be ordered.
func NewDataset(records []schema.ShotRecord) (*Dataset, error) {
	ds := &Dataset{
		records: make([]schema.ShotRecord, len(records)),
		byGroup: make(map[string][]int),
	}
	copy(ds.records, records)

	for i, r := range ds.records {
		if err := validateRecord(r); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, ok := ds.byGroup[r.Group]; !ok {
			ds.groups = append(ds.groups, r.Group)
		}
		ds.byGroup[r.Group] = append(ds.byGroup[r.Group], i)
	}
	sort.Strings(ds.groups)
	return ds, nil
}

func validateRecord(r schema.ShotRecord) error {
	switch {
	case r.Group == "":
		return fmt.Errorf("%w: empty group", ErrInvalidRecord)
	case r.Player == "":
		return fmt.Errorf("%w: empty player", ErrInvalidRecord)
	}
	for _, col := range schema.MeasureColumns {
		if v, _ := r.Value(col); math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidRecord, col)
		}
	}
	if r.MinStart > r.MinMid || r.MinMid > r.MinEnd {
		return fmt.Errorf("%w: minute bounds %v <= %v <= %v do not hold",
			ErrInvalidRecord, r.MinStart, r.MinMid, r.MinEnd)
	}
	return nil
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of every record in load order.
func (d *Dataset) Records() []schema.ShotRecord {
	out := make([]schema.ShotRecord, len(d.records))
	copy(out, d.records)
	return out
}

// Groups returns the sorted distinct group values.
func (d *Dataset) Groups() []string {
	out := make([]string, len(d.groups))
	copy(out, d.groups)
	return out
}

// Filter returns a fresh slice with the records of one group, in load order.
// An unknown group yields an empty slice.
func (d *Dataset) Filter(group string) []schema.ShotRecord {
	idx := d.byGroup[group]
	out := make([]schema.ShotRecord, 0, len(idx))
	for _, i := range idx {
		out = append(out, d.records[i])
	}
	return out
}
