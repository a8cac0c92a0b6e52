package proctor

import (
	"testing"

	"github.com/ashureev/examwatch/internal/domain"
)

func TestAggregateRecordIncrementsByOne(t *testing.T) {
	agg := NewAggregate("E1", "alice", "a@x.com")

	agg.Record(domain.CellPhone)
	agg.Record(domain.CellPhone)
	agg.Record(domain.NoFace)

	if got := agg.Count(domain.CellPhone); got != 2 {
		t.Errorf("Expected cellPhone count 2, got %d", got)
	}
	if got := agg.Count(domain.NoFace); got != 1 {
		t.Errorf("Expected noFace count 1, got %d", got)
	}
	if got := agg.Count(domain.MultipleFace); got != 0 {
		t.Errorf("Expected multipleFace count 0, got %d", got)
	}
}

func TestAggregateSnapshotCarriesIdentity(t *testing.T) {
	agg := NewAggregate("E1", "alice", "a@x.com")
	agg.Record(domain.ProhibitedObject)

	snap := agg.Snapshot()

	if snap.ExamID != "E1" || snap.Username != "alice" || snap.Email != "a@x.com" {
		t.Errorf("Snapshot identity mismatch: %+v", snap)
	}
	if snap.ProhibitedObjectCount != 1 {
		t.Errorf("Expected prohibitedObjectCount 1, got %d", snap.ProhibitedObjectCount)
	}
}

func TestAggregateSnapshotIsDetached(t *testing.T) {
	agg := NewAggregate("E1", "alice", "a@x.com")
	agg.Record(domain.NoFace)

	snap := agg.Snapshot()
	agg.Record(domain.NoFace)

	if snap.NoFaceCount != 1 {
		t.Errorf("Expected snapshot to stay at 1 after further records, got %d", snap.NoFaceCount)
	}
	if agg.Count(domain.NoFace) != 2 {
		t.Errorf("Expected live aggregate at 2, got %d", agg.Count(domain.NoFace))
	}
}
