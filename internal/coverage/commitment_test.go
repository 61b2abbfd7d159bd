package coverage

import (
	"reflect"
	"testing"
)

func TestCommitmentIndex(t *testing.T) {
	ix := NewCommitmentIndex([]AssignmentRow{
		{UserID: 10, GroupID: 1, Date: "2026-09-05"},
		{UserID: 10, GroupID: 2, Date: "2026-09-06"},
		{UserID: 20, GroupID: 2, Date: "2026-09-05"},
	})

	if !ix.CommittedInGroup(10, "2026-09-05", 1) {
		t.Error("expected internal commitment on 09-05")
	}
	if ix.CommittedElsewhere(10, "2026-09-05", 1) {
		t.Error("09-05 commitment is internal, not external")
	}
	if !ix.CommittedElsewhere(10, "2026-09-06", 1) {
		t.Error("expected external commitment on 09-06")
	}
	if ix.CommittedInGroup(10, "2026-09-06", 1) {
		t.Error("09-06 commitment belongs to group 2")
	}
	if !ix.Committed(20, "2026-09-05", 1) {
		t.Error("Committed should cover internal or external")
	}
	if ix.Committed(20, "2026-09-06", 1) {
		t.Error("no commitment recorded for user 20 on 09-06")
	}
}

func TestCommitmentIndexExternalDates(t *testing.T) {
	ix := NewCommitmentIndex([]AssignmentRow{
		{UserID: 10, GroupID: 1, Date: "2026-09-05"}, // 本队，不算外部
		{UserID: 10, GroupID: 2, Date: "2026-09-06"},
		{UserID: 20, GroupID: 3, Date: "2026-09-06"}, // 同日去重
		{UserID: 99, GroupID: 4, Date: "2026-09-07"}, // 非本队成员，忽略
	})

	got := ix.externalDates(map[uint64]bool{10: true, 20: true}, 1)
	if !reflect.DeepEqual(got, []string{"2026-09-06"}) {
		t.Fatalf("external dates = %v", got)
	}
}
