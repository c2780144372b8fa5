package service

import (
	"sync"
	"time"

	"smart-scheduler/core/errors"
	"smart-scheduler/core/logger"
	meetingservice "smart-scheduler/modules/meeting/service"
	rulesdto "smart-scheduler/modules/rules/dto"
	rulesservice "smart-scheduler/modules/rules/service"
	"smart-scheduler/modules/scheduling/dto"
	"smart-scheduler/modules/scheduling/entity"
)

// maxAvailabilityRangeDays bounds grid generation so a single request stays
// a finite, quick computation.
const maxAvailabilityRangeDays = 90

// BookingServiceInterface is the orchestrator surface consumed by the
// controller.
type BookingServiceInterface interface {
	ValidateBooking(req *dto.ValidateBookingRequest) (*entity.BookingValidationResult, *errors.AppError)
	Availability(query *dto.AvailabilityQuery) (*dto.AvailabilityResponse, *errors.AppError)
	ActiveRulesDescription() *rulesdto.ActiveRulesDescriptionResponse
}

// BookingService feeds the current rule and meeting sets into one engine
// instance and interprets its verdicts. The engine itself does no locking;
// this service serializes all access to it.
type BookingService struct {
	mu       sync.Mutex
	engine   *SchedulingRuleEngine
	registry rulesservice.RuleRegistryInterface
	store    *meetingservice.MeetingStore
}

func NewBookingService(registry rulesservice.RuleRegistryInterface, store *meetingservice.MeetingStore) BookingServiceInterface {
	return &BookingService{
		engine:   NewSchedulingRuleEngine(nil, nil),
		registry: registry,
		store:    store,
	}
}

// refresh pushes the latest rules and non-cancelled meetings into the
// engine. Callers must hold the mutex.
func (s *BookingService) refresh() {
	s.engine.UpdateRules(s.registry.List())
	s.engine.UpdateMeetings(s.store.Active())
}

// ValidateBooking rejects malformed proposals outright, then delegates to
// the engine. Booking rejection by rules is an expected outcome, not an
// error; only malformed input surfaces as an AppError.
func (s *BookingService) ValidateBooking(req *dto.ValidateBookingRequest) (*entity.BookingValidationResult, *errors.AppError) {
	if req.Start.IsZero() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "start time is required", nil)
	}
	if req.DurationMinutes <= 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "duration must be a positive number of minutes", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh()

	result := s.engine.ValidateBooking(req.Start, req.DurationMinutes)
	logger.Info("BookingService:ValidateBooking",
		"start", req.Start.Format(time.RFC3339),
		"duration", req.DurationMinutes,
		"valid", result.Valid,
		"violations", len(result.Violations),
		"score", result.Score,
	)
	return result, nil
}

// Availability generates the slot grid for a bounded date range.
func (s *BookingService) Availability(query *dto.AvailabilityQuery) (*dto.AvailabilityResponse, *errors.AppError) {
	if query.From.IsZero() || query.To.IsZero() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "from and to dates are required", nil)
	}
	if query.To.Before(query.From) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "to must not be before from", nil)
	}
	if query.To.Sub(query.From) > maxAvailabilityRangeDays*24*time.Hour {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "date range is too large", nil)
	}
	if query.DurationMinutes < 0 || query.IntervalMinutes < 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "duration and interval must not be negative", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh()

	slots := s.engine.GenerateAvailableSlots(query.From, query.To, query.DurationMinutes, query.IntervalMinutes)

	available := 0
	for _, slot := range slots {
		if slot.Available {
			available++
		}
	}
	return &dto.AvailabilityResponse{Slots: slots, Total: len(slots), Available: available}, nil
}

// ActiveRulesDescription reports the enabled rules in natural language.
func (s *BookingService) ActiveRulesDescription() *rulesdto.ActiveRulesDescriptionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh()

	active := 0
	for _, r := range s.registry.List() {
		if r.Enabled {
			active++
		}
	}
	return &rulesdto.ActiveRulesDescriptionResponse{
		Description: s.engine.GetActiveRulesDescription(),
		ActiveRules: active,
	}
}
