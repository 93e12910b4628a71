package app

import "testing"

func TestMetrics(t *testing.T) {
	m := NewMetrics()
	m.RecordKey(true)
	m.RecordKey(false)
	m.RecordCells(2)
	m.RecordCells(0)
	m.RecordIndicator()
	m.RecordDeletion()
	m.RecordCopy()

	s := m.Snapshot()
	if s.Keys != 2 || s.Ignored != 1 {
		t.Errorf("keys = %d, ignored = %d", s.Keys, s.Ignored)
	}
	if s.Cells != 2 || s.Indicators != 1 || s.Deletions != 1 || s.Copies != 1 {
		t.Errorf("Snapshot() = %+v", s)
	}
	if s.Uptime < 0 {
		t.Errorf("Uptime = %v", s.Uptime)
	}
}
