package switchlist

// LayoutRecord is the last measurement reported for one option.
type LayoutRecord struct {
	Index int
	Width float64
	// Label is the option label at measurement time. A record whose label
	// no longer matches the live option is stale.
	Label string

	epoch uint64
}

// LayoutStore is a sparse index -> measurement mapping populated one report
// at a time by the rendering layer.
//
// The store is never cleared. When the option count changes, Resize bumps the
// epoch, so records from the previous option set stop counting towards
// completeness until their index reports again.
type LayoutStore struct {
	records map[int]LayoutRecord
	count   int
	epoch   uint64
}

// NewLayoutStore returns an empty store expecting count options.
func NewLayoutStore(count int) *LayoutStore {
	return &LayoutStore{
		records: make(map[int]LayoutRecord, count),
		count:   count,
	}
}

// Report merges a measurement. Repeated reports for the same index overwrite
// each other, so duplicates are harmless. Reports outside [0, count) are
// ignored.
func (s *LayoutStore) Report(index int, width float64, label string) bool {
	if index < 0 || index >= s.count {
		return false
	}
	s.records[index] = LayoutRecord{Index: index, Width: width, Label: label, epoch: s.epoch}
	return true
}

// Resize adapts the store to a new option count. Records past the new end are
// pruned.
func (s *LayoutStore) Resize(count int) {
	if count == s.count {
		return
	}
	s.count = count
	s.epoch++
	for i := range s.records {
		if i >= count {
			delete(s.records, i)
		}
	}
}

// Count returns the option count the store expects.
func (s *LayoutStore) Count() int {
	return s.count
}

// Get returns the current-epoch record for index.
func (s *LayoutStore) Get(index int) (LayoutRecord, bool) {
	rec, ok := s.records[index]
	if !ok || rec.epoch != s.epoch {
		return LayoutRecord{}, false
	}
	return rec, true
}

// Covered reports whether every index in [0, count) has a current-epoch record.
func (s *LayoutStore) Covered() bool {
	for i := 0; i < s.count; i++ {
		if _, ok := s.Get(i); !ok {
			return false
		}
	}
	return true
}

// Fresh reports whether every record carries the label at the same index of
// labels. Only meaningful once Covered holds.
func (s *LayoutStore) Fresh(labels []string) bool {
	if len(labels) != s.count {
		return false
	}
	for i, label := range labels {
		rec, ok := s.Get(i)
		if !ok || rec.Label != label {
			return false
		}
	}
	return true
}

// Complete reports whether the store holds a fresh record for every option.
func (s *LayoutStore) Complete(labels []string) bool {
	return s.Covered() && s.Fresh(labels)
}

// Widths returns the measured widths in index order. Missing entries are zero.
func (s *LayoutStore) Widths() []float64 {
	widths := make([]float64, s.count)
	for i := range widths {
		if rec, ok := s.Get(i); ok {
			widths[i] = rec.Width
		}
	}
	return widths
}
