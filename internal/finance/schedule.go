package finance

import (
	"time"

	"leton/internal/models"
)

// StatusLabel is the display status of a row in the hierarchical view.
type StatusLabel string

const (
	LabelPlanned    StatusLabel = "Planned"
	LabelUpcoming   StatusLabel = "Upcoming"
	LabelInProgress StatusLabel = "In Progress"
	LabelAlreadyDue StatusLabel = "Already Due"
	LabelFinished   StatusLabel = "Finished"
)

// ScheduleLabel classifies a row from its start/due dates against today.
// Rows without dates are Planned.
func ScheduleLabel(start, due *time.Time, today time.Time) StatusLabel {
	day := today.Truncate(24 * time.Hour)
	if due != nil && due.Truncate(24*time.Hour).Before(day) {
		return LabelAlreadyDue
	}
	if start != nil {
		if start.Truncate(24 * time.Hour).After(day) {
			return LabelUpcoming
		}
		return LabelInProgress
	}
	if due != nil {
		return LabelUpcoming
	}
	return LabelPlanned
}

// DisplayStatus derives the label shown in the hierarchical table. Explicit
// work states win over the date classification.
func DisplayStatus(l *models.ItemLine, today time.Time) StatusLabel {
	switch {
	case l.Completed():
		return LabelFinished
	case l.Status == models.ItemLineStatusInProgress:
		return LabelInProgress
	case l.Status == models.ItemLineStatusOnHold:
		return LabelAlreadyDue
	}
	return ScheduleLabel(l.StartDate, l.DueDate, today)
}
