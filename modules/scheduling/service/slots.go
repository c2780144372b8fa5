package service

import (
	"time"

	"smart-scheduler/core/constants"
	"smart-scheduler/core/timeutil"
	"smart-scheduler/modules/scheduling/entity"
)

// GenerateAvailableSlots renders the availability grid for every calendar
// day in [startDate, endDate] inclusive. Each day gets the fixed 09:00 to
// 17:00 window, slid in intervalMinutes steps; a slot is emitted whenever
// its end still fits inside the window. Availability comes from the
// suggestion-free validator; ConflictReason is the first violation's
// description.
func (e *SchedulingRuleEngine) GenerateAvailableSlots(startDate, endDate time.Time, durationMinutes, intervalMinutes int) []entity.TimeSlot {
	if durationMinutes <= 0 {
		durationMinutes = constants.DefaultSlotDurationMinutes
	}
	if intervalMinutes <= 0 {
		intervalMinutes = constants.DefaultSlotIntervalMinutes
	}

	duration := time.Duration(durationMinutes) * time.Minute
	slots := []entity.TimeSlot{}

	day := timeutil.StartOfDay(startDate)
	lastDay := timeutil.StartOfDay(endDate)
	for !day.After(lastDay) {
		windowStart := timeutil.AtTime(day, constants.BusinessHoursStart, 0)
		windowEnd := timeutil.AtTime(day, constants.BusinessHoursEnd, 0)

		for slotStart := windowStart; !slotStart.Add(duration).After(windowEnd); slotStart = slotStart.Add(time.Duration(intervalMinutes) * time.Minute) {
			result := e.validate(slotStart, durationMinutes, false)

			slot := entity.TimeSlot{
				Start:     slotStart,
				End:       slotStart.Add(duration),
				Available: result.Valid,
			}
			if len(result.Violations) > 0 {
				slot.ConflictReason = result.Violations[0].Description
			}
			slots = append(slots, slot)
		}

		day = day.AddDate(0, 0, 1)
	}

	return slots
}
