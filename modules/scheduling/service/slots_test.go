package service

import (
	"testing"
	"time"

	meetingentity "smart-scheduler/modules/meeting/entity"
	rulesentity "smart-scheduler/modules/rules/entity"
)

func TestGenerateAvailableSlotsGrid(t *testing.T) {
	engine := NewSchedulingRuleEngine(nil, nil)

	tuesday := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	slots := engine.GenerateAvailableSlots(tuesday, tuesday, 30, 15)

	// 09:00 through 16:30 in 15 minute steps.
	if len(slots) != 31 {
		t.Fatalf("slot count = %d, want 31", len(slots))
	}

	first := slots[0]
	if first.Start.Hour() != 9 || first.Start.Minute() != 0 {
		t.Errorf("first slot starts %v, want 09:00", first.Start)
	}

	windowEnd := time.Date(2024, 1, 16, 17, 0, 0, 0, time.UTC)
	for _, slot := range slots {
		if slot.End.After(windowEnd) {
			t.Errorf("slot %v-%v spills past 17:00", slot.Start, slot.End)
		}
		if !slot.Available {
			t.Errorf("slot %v unavailable with no rules: %s", slot.Start, slot.ConflictReason)
		}
	}
}

func TestGenerateAvailableSlotsDefaults(t *testing.T) {
	engine := NewSchedulingRuleEngine(nil, nil)

	tuesday := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	slots := engine.GenerateAvailableSlots(tuesday, tuesday, 0, 0)
	if len(slots) != 31 {
		t.Errorf("slot count = %d, want 31 under default 30/15", len(slots))
	}
}

func TestGenerateAvailableSlotsLongDuration(t *testing.T) {
	engine := NewSchedulingRuleEngine(nil, nil)

	tuesday := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	slots := engine.GenerateAvailableSlots(tuesday, tuesday, 8*60, 15)
	if len(slots) != 1 {
		t.Fatalf("slot count = %d, an eight hour meeting fits exactly once", len(slots))
	}
	if slots[0].Start.Hour() != 9 || slots[0].End.Hour() != 17 {
		t.Errorf("slot = %v-%v, want 09:00-17:00", slots[0].Start, slots[0].End)
	}

	tooLong := engine.GenerateAvailableSlots(tuesday, tuesday, 9*60, 15)
	if len(tooLong) != 0 {
		t.Errorf("slot count = %d, want none when nothing fits", len(tooLong))
	}
}

func TestGenerateAvailableSlotsMultiDay(t *testing.T) {
	engine := NewSchedulingRuleEngine(nil, nil)

	monday := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	slots := engine.GenerateAvailableSlots(monday, tuesday, 30, 15)
	if len(slots) != 62 {
		t.Errorf("slot count = %d, want 62 across two days", len(slots))
	}
}

func TestGenerateAvailableSlotsMarksConflicts(t *testing.T) {
	engine := NewSchedulingRuleEngine([]rulesentity.SchedulingRule{weekdaysRule()}, nil)

	saturday := time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)
	slots := engine.GenerateAvailableSlots(saturday, saturday, 30, 15)
	if len(slots) == 0 {
		t.Fatal("the grid is produced even when every slot conflicts")
	}
	for _, slot := range slots {
		if slot.Available {
			t.Errorf("slot %v available on a blocked saturday", slot.Start)
		}
		if slot.ConflictReason == "" {
			t.Errorf("slot %v has no conflict reason", slot.Start)
		}
	}
}

func TestGenerateAvailableSlotsBufferConflicts(t *testing.T) {
	meetings := []meetingentity.Meeting{
		testMeeting(time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC), 30, meetingentity.MeetingStatusConfirmed),
	}
	engine := NewSchedulingRuleEngine([]rulesentity.SchedulingRule{bufferRule(15)}, meetings)

	tuesday := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	slots := engine.GenerateAvailableSlots(tuesday, tuesday, 30, 15)

	blocked := 0
	for _, slot := range slots {
		if !slot.Available {
			blocked++
		}
	}
	if blocked == 0 {
		t.Error("slots adjacent to the existing meeting must be blocked")
	}
	if blocked == len(slots) {
		t.Error("slots far from the existing meeting must stay open")
	}
}
