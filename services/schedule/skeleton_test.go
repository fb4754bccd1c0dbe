package schedule

import (
	"fmt"
	"testing"
	"time"
)

func TestBuildSkeletonShape(t *testing.T) {
	day := NewDay(2024, time.June, 1)
	slots := BuildSkeleton(day)

	if len(slots) != HoursPerDay {
		t.Fatalf("expected %d slots, got %d", HoursPerDay, len(slots))
	}
	for hour, s := range slots {
		wantStart := fmt.Sprintf("%02d:00", hour)
		wantEnd := fmt.Sprintf("%02d:00", (hour+1)%24)
		if s.StartTime != wantStart {
			t.Fatalf("hour %d: expected start %s, got %s", hour, wantStart, s.StartTime)
		}
		if s.EndTime != wantEnd {
			t.Fatalf("hour %d: expected end %s, got %s", hour, wantEnd, s.EndTime)
		}
		if s.Date != "2024-06-01" {
			t.Fatalf("hour %d: expected date 2024-06-01, got %s", hour, s.Date)
		}
		if s.IsBlocked || s.IsBooked || s.BlockReason != "" {
			t.Fatalf("hour %d: skeleton slot must be empty, got %+v", hour, s)
		}
		if s.ID != "empty-2024-06-01-"+wantStart {
			t.Fatalf("hour %d: unexpected synthetic id %s", hour, s.ID)
		}
	}
}

func TestBuildSkeletonWrapsMidnight(t *testing.T) {
	slots := BuildSkeleton(NewDay(2024, time.June, 1))
	last := slots[23]
	if last.StartTime != "23:00" || last.EndTime != "00:00" {
		t.Fatalf("expected 23:00 -> 00:00, got %s -> %s", last.StartTime, last.EndTime)
	}
}

func TestBuildSkeletonPure(t *testing.T) {
	day := NewDay(2024, time.July, 4)
	a := BuildSkeleton(day)
	b := BuildSkeleton(day)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("slot %d differs between identical builds", i)
		}
	}
}
