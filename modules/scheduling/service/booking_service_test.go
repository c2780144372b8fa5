package service

import (
	"testing"
	"time"

	"smart-scheduler/core/errors"
	meetingdto "smart-scheduler/modules/meeting/dto"
	meetingservice "smart-scheduler/modules/meeting/service"
	rulesservice "smart-scheduler/modules/rules/service"
	"smart-scheduler/modules/scheduling/dto"
)

func newTestBookingService(t *testing.T, seed bool) (BookingServiceInterface, rulesservice.RuleRegistryInterface, *meetingservice.MeetingStore) {
	t.Helper()
	registry := rulesservice.NewRuleRegistry(rulesservice.NewRuleParser(), seed)
	store := meetingservice.NewMeetingStore()
	return NewBookingService(registry, store), registry, store
}

func TestBookingServiceRejectsMalformedInput(t *testing.T) {
	service, _, _ := newTestBookingService(t, false)

	tests := []struct {
		name string
		req  dto.ValidateBookingRequest
	}{
		{"missing start", dto.ValidateBookingRequest{DurationMinutes: 30}},
		{"zero duration", dto.ValidateBookingRequest{Start: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)}},
		{"negative duration", dto.ValidateBookingRequest{Start: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), DurationMinutes: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := service.ValidateBooking(&tt.req)
			if appErr == nil {
				t.Fatal("expected rejection")
			}
			if appErr.Code != errors.ErrInvalidInput {
				t.Errorf("code = %s, want %s", appErr.Code, errors.ErrInvalidInput)
			}
		})
	}
}

func TestBookingServiceEndToEnd(t *testing.T) {
	service, registry, store := newTestBookingService(t, true)

	replaced, appErr := meetingservice.NewMeetingService(store).ReplaceMeetings(&meetingdto.ReplaceMeetingsRequest{
		Meetings: []meetingdto.MeetingInput{
			{Title: "Standup", Start: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC), DurationMinutes: 30},
		},
	})
	if appErr != nil {
		t.Fatalf("replace meetings: %v", appErr)
	}
	if replaced.Total != 1 {
		t.Fatalf("stored %d meetings, want 1", replaced.Total)
	}

	t.Run("weekday morning passes", func(t *testing.T) {
		result, appErr := service.ValidateBooking(&dto.ValidateBookingRequest{
			Start:           time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			DurationMinutes: 30,
		})
		if appErr != nil {
			t.Fatalf("unexpected error: %v", appErr)
		}
		if !result.Valid {
			t.Errorf("expected valid, got %v", violationTypes(result))
		}
	})

	t.Run("saturday fails against seeded rules", func(t *testing.T) {
		result, appErr := service.ValidateBooking(&dto.ValidateBookingRequest{
			Start:           time.Date(2024, 1, 13, 10, 0, 0, 0, time.UTC),
			DurationMinutes: 30,
		})
		if appErr != nil {
			t.Fatalf("unexpected error: %v", appErr)
		}
		if result.Valid {
			t.Error("seeded weekday rule should reject saturdays")
		}
	})

	t.Run("disabling the rule lifts the rejection", func(t *testing.T) {
		var weekdaysID string
		for _, r := range registry.List() {
			if r.Type == "weekdays" {
				weekdaysID = r.ID
			}
		}
		if weekdaysID == "" {
			t.Fatal("seeded weekdays rule not found")
		}
		if _, appErr := registry.SetEnabled(weekdaysID, false); appErr != nil {
			t.Fatalf("disable failed: %v", appErr)
		}

		result, appErr := service.ValidateBooking(&dto.ValidateBookingRequest{
			Start:           time.Date(2024, 1, 13, 10, 0, 0, 0, time.UTC),
			DurationMinutes: 30,
		})
		if appErr != nil {
			t.Fatalf("unexpected error: %v", appErr)
		}
		if !result.Valid {
			t.Errorf("rule disabled yet still rejected: %v", violationTypes(result))
		}
	})
}

func TestBookingServiceAvailabilityValidation(t *testing.T) {
	service, _, _ := newTestBookingService(t, false)
	from := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		query dto.AvailabilityQuery
	}{
		{"missing dates", dto.AvailabilityQuery{}},
		{"reversed range", dto.AvailabilityQuery{From: from, To: from.AddDate(0, 0, -1)}},
		{"oversized range", dto.AvailabilityQuery{From: from, To: from.AddDate(0, 0, 120)}},
		{"negative duration", dto.AvailabilityQuery{From: from, To: from, DurationMinutes: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := service.Availability(&tt.query)
			if appErr == nil {
				t.Fatal("expected rejection")
			}
			if appErr.Code != errors.ErrInvalidInput {
				t.Errorf("code = %s, want %s", appErr.Code, errors.ErrInvalidInput)
			}
		})
	}
}

func TestBookingServiceAvailabilityCounts(t *testing.T) {
	service, _, _ := newTestBookingService(t, true)

	saturday := time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)
	resp, appErr := service.Availability(&dto.AvailabilityQuery{From: saturday, To: saturday})
	if appErr != nil {
		t.Fatalf("availability failed: %v", appErr)
	}
	if resp.Total != len(resp.Slots) {
		t.Errorf("total = %d, slots = %d", resp.Total, len(resp.Slots))
	}
	if resp.Available != 0 {
		t.Errorf("available = %d on a blocked saturday, want 0", resp.Available)
	}

	monday := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	resp, appErr = service.Availability(&dto.AvailabilityQuery{From: monday, To: monday})
	if appErr != nil {
		t.Fatalf("availability failed: %v", appErr)
	}
	if resp.Available != resp.Total {
		t.Errorf("available = %d of %d, a clear monday should be fully open", resp.Available, resp.Total)
	}
}

func TestBookingServiceActiveRulesDescription(t *testing.T) {
	service, registry, _ := newTestBookingService(t, false)

	desc := service.ActiveRulesDescription()
	if desc.ActiveRules != 0 {
		t.Errorf("active = %d, want 0", desc.ActiveRules)
	}
	if desc.Description != NoActiveRulesDescription {
		t.Errorf("description = %q", desc.Description)
	}

	parsed := rulesservice.NewRuleParser().ParseNaturalLanguageRule("Only book meetings on weekdays")
	if !parsed.Success {
		t.Fatalf("parse failed: %v", parsed.Errors)
	}
	if _, appErr := registry.Admit(*parsed.Rule); appErr != nil {
		t.Fatalf("admit failed: %v", appErr)
	}

	desc = service.ActiveRulesDescription()
	if desc.ActiveRules != 1 {
		t.Errorf("active = %d, want 1", desc.ActiveRules)
	}
	if desc.Description != "Only book meetings on weekdays" {
		t.Errorf("description = %q", desc.Description)
	}
}
