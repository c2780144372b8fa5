package service

import (
	"fmt"
	"sync"
	"time"

	"smart-scheduler/core/errors"
	"smart-scheduler/core/logger"
	"smart-scheduler/modules/meeting/dto"
	"smart-scheduler/modules/meeting/entity"

	"github.com/google/uuid"
)

// MeetingStore is the in-memory holder of the existing-meeting set. The
// set is only ever replaced wholesale; there are no per-meeting updates.
type MeetingStore struct {
	mu       sync.RWMutex
	meetings []entity.Meeting
}

func NewMeetingStore() *MeetingStore {
	return &MeetingStore{}
}

// Replace swaps the full meeting list.
func (s *MeetingStore) Replace(meetings []entity.Meeting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meetings = append([]entity.Meeting(nil), meetings...)
}

// List returns a copy of all held meetings.
func (s *MeetingStore) List() []entity.Meeting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Meeting(nil), s.meetings...)
}

// Active returns the non-cancelled meetings, the only ones conflict
// checks may see.
func (s *MeetingStore) Active() []entity.Meeting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]entity.Meeting, 0, len(s.meetings))
	for _, m := range s.meetings {
		if !m.Cancelled() {
			active = append(active, m)
		}
	}
	return active
}

// MeetingServiceInterface defines the meeting service contract.
type MeetingServiceInterface interface {
	ReplaceMeetings(req *dto.ReplaceMeetingsRequest) (*dto.MeetingListResponse, *errors.AppError)
	ListMeetings() *dto.MeetingListResponse
}

// MeetingService validates caller-supplied meetings before they reach the
// store.
type MeetingService struct {
	store *MeetingStore
}

func NewMeetingService(store *MeetingStore) MeetingServiceInterface {
	return &MeetingService{store: store}
}

// ReplaceMeetings validates and normalizes the incoming list, then swaps
// the store wholesale.
func (s *MeetingService) ReplaceMeetings(req *dto.ReplaceMeetingsRequest) (*dto.MeetingListResponse, *errors.AppError) {
	logger.Info("MeetingService:ReplaceMeetings:Start", "count", len(req.Meetings))

	meetings := make([]entity.Meeting, 0, len(req.Meetings))
	for i, in := range req.Meetings {
		meeting, appErr := normalizeMeeting(i, in)
		if appErr != nil {
			logger.Warn("MeetingService:ReplaceMeetings:Invalid", "index", i, "error", appErr)
			return nil, appErr
		}
		meetings = append(meetings, meeting)
	}

	s.store.Replace(meetings)
	return &dto.MeetingListResponse{Meetings: meetings, Total: len(meetings)}, nil
}

// ListMeetings returns the full held set, cancelled meetings included.
func (s *MeetingService) ListMeetings() *dto.MeetingListResponse {
	meetings := s.store.List()
	return &dto.MeetingListResponse{Meetings: meetings, Total: len(meetings)}
}

func normalizeMeeting(index int, in dto.MeetingInput) (entity.Meeting, *errors.AppError) {
	if in.Start.IsZero() {
		return entity.Meeting{}, errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("meeting %d has no start time", index), nil)
	}

	meeting := entity.Meeting{
		ID:              in.ID,
		Title:           in.Title,
		Start:           in.Start,
		End:             in.End,
		DurationMinutes: in.DurationMinutes,
		AttendeeEmail:   in.AttendeeEmail,
		Type:            entity.MeetingType(in.Type),
		Status:          entity.MeetingStatus(in.Status),
	}

	if meeting.ID == "" {
		meeting.ID = uuid.NewString()
	}
	if meeting.End.IsZero() && meeting.DurationMinutes > 0 {
		meeting.End = meeting.Start.Add(time.Duration(meeting.DurationMinutes) * time.Minute)
	}
	if meeting.DurationMinutes == 0 && !meeting.End.IsZero() {
		meeting.DurationMinutes = int(meeting.End.Sub(meeting.Start).Minutes())
	}
	if meeting.End.IsZero() {
		return entity.Meeting{}, errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("meeting %d needs an end time or a duration", index), nil)
	}
	if !meeting.End.After(meeting.Start) {
		return entity.Meeting{}, errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("meeting %d ends before it starts", index), nil)
	}

	switch meeting.Type {
	case entity.MeetingTypeVideo, entity.MeetingTypePhone, entity.MeetingTypeInPerson:
	case "":
		meeting.Type = entity.MeetingTypeVideo
	default:
		return entity.Meeting{}, errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("meeting %d has unknown type %q", index, meeting.Type), nil)
	}

	switch meeting.Status {
	case entity.MeetingStatusConfirmed, entity.MeetingStatusPending, entity.MeetingStatusCancelled:
	case "":
		meeting.Status = entity.MeetingStatusConfirmed
	default:
		return entity.Meeting{}, errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("meeting %d has unknown status %q", index, meeting.Status), nil)
	}

	return meeting, nil
}
