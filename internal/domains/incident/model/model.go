package model

import (
	"errors"
	"fmt"
	"time"

	"frontdesk/shared/constant"
	"frontdesk/shared/model"
)

const (
	TableName  = "overstay_incidents"
	EntityName = "incident"

	FieldID                    = "id"
	FieldPropertyID            = "property_id"
	FieldReservationID         = "reservation_id"
	FieldRoomID                = "room_id"
	FieldExpectedDepartureDate = "expected_departure_date"
	FieldDeadlineAt            = "deadline_at"
	FieldDetectedAt            = "detected_at"
	FieldStatus                = "status"
	FieldSeverity              = "severity"
	FieldAckedBy               = "acked_by"
	FieldAckNote               = "ack_note"
	FieldAckedAt               = "acked_at"
	FieldDismissedBy           = "dismissed_by"
	FieldDismissReason         = "dismiss_reason"
	FieldDismissedAt           = "dismissed_at"
	FieldResolvedBy            = "resolved_by"
	FieldResolutionNote        = "resolution_note"
	FieldResolvedAt            = "resolved_at"
	FieldContext               = "context"
)

const (
	StatusOpen      = "OPEN"
	StatusAcked     = "ACKED"
	StatusDismissed = "DISMISSED"
	StatusResolved  = "RESOLVED"
)

const (
	ActionExtend  = "extend"
	ActionDismiss = "dismiss"
)

// ActiveStatuses are the statuses of which a reservation may hold at most one incident.
var ActiveStatuses = []string{StatusOpen, StatusAcked}

var ErrInvalidTransition = errors.New("invalid incident transition")

// Snapshot keeps what staff need to read the incident without joining back to rooms.
type Snapshot struct {
	RoomNumber string `json:"room_number"`
	GuestName  string `json:"guest_name"`
	Category   string `json:"category"`
}

type Incident struct {
	ID                    string               `db:"id"`
	PropertyID            string               `db:"property_id"`
	ReservationID         string               `db:"reservation_id"`
	RoomID                *string              `db:"room_id"`
	ExpectedDepartureDate model.Date           `db:"expected_departure_date"`
	DeadlineAt            time.Time            `db:"deadline_at"`
	DetectedAt            time.Time            `db:"detected_at"`
	Status                string               `db:"status"`
	Severity              string               `db:"severity"`
	AckedBy               *string              `db:"acked_by"`
	AckNote               *string              `db:"ack_note"`
	AckedAt               *time.Time           `db:"acked_at"`
	DismissedBy           *string              `db:"dismissed_by"`
	DismissReason         *string              `db:"dismiss_reason"`
	DismissedAt           *time.Time           `db:"dismissed_at"`
	ResolvedBy            *string              `db:"resolved_by"`
	ResolutionNote        *string              `db:"resolution_note"`
	ResolvedAt            *time.Time           `db:"resolved_at"`
	Context               model.JSON[Snapshot] `db:"context"`
	model.Metadata
}

func (i Incident) IsActive() bool {
	return i.Status == StatusOpen || i.Status == StatusAcked
}

// AllowedActions lists what staff may do next.
func (i Incident) AllowedActions() []string {
	if i.IsActive() {
		return []string{ActionExtend, ActionDismiss}
	}

	return []string{}
}

// Acknowledge moves an active incident to ACKED. Acknowledging twice overwrites the previous
// actor, note and time.
func (i *Incident) Acknowledge(actor, note string, now time.Time) error {
	if !i.IsActive() {
		return fmt.Errorf("%w: acknowledge from %s", ErrInvalidTransition, i.Status)
	}

	i.Status = StatusAcked
	i.AckedBy = &actor
	i.AckNote = nullable(note)
	i.AckedAt = &now
	i.Touch(actor, now)

	return nil
}

func (i *Incident) Dismiss(actor, reason string, now time.Time) error {
	if !i.IsActive() {
		return fmt.Errorf("%w: dismiss from %s", ErrInvalidTransition, i.Status)
	}

	i.Status = StatusDismissed
	i.DismissedBy = &actor
	i.DismissReason = nullable(reason)
	i.DismissedAt = &now
	i.Touch(actor, now)

	return nil
}

func (i *Incident) Resolve(actor, note string, now time.Time) error {
	if !i.IsActive() {
		return fmt.Errorf("%w: resolve from %s", ErrInvalidTransition, i.Status)
	}

	i.Status = StatusResolved
	i.ResolvedBy = &actor
	i.ResolutionNote = nullable(note)
	i.ResolvedAt = &now
	i.Touch(actor, now)

	return nil
}

// TransitionFields returns the columns a transition may change, for UpdateTx.
func (i Incident) TransitionFields() map[string]any {
	return map[string]any{
		FieldStatus:              i.Status,
		FieldAckedBy:             i.AckedBy,
		FieldAckNote:             i.AckNote,
		FieldAckedAt:             i.AckedAt,
		FieldDismissedBy:         i.DismissedBy,
		FieldDismissReason:       i.DismissReason,
		FieldDismissedAt:         i.DismissedAt,
		FieldResolvedBy:          i.ResolvedBy,
		FieldResolutionNote:      i.ResolutionNote,
		FieldResolvedAt:          i.ResolvedAt,
		constant.FieldModifiedAt: i.ModifiedAt,
		constant.FieldModifiedBy: i.ModifiedBy,
	}
}

func nullable(s string) *string {
	if s == constant.Empty {
		return nil
	}

	return &s
}
