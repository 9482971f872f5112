package dto

import (
	"time"

	"frontdesk/internal/domains/extension/model"
	reservationModel "frontdesk/internal/domains/reservation/model"
	roomDto "frontdesk/internal/domains/room/model/dto"
	"frontdesk/shared/constant"
	gModel "frontdesk/shared/model"
)

const (
	OutcomeOK       = "OK"
	OutcomeConflict = "CONFLICT"
	OutcomeInvalid  = "INVALID"
)

type ExtendRequest struct {
	PropertyID       string
	ReservationID    string
	Actor            string
	NewDepartureDate *gModel.Date
	AddNights        *int
	IdempotencyKey   string
	Now              time.Time
}

// ExtendBody is the staff request body. Exactly one of NewDepartureDate and AddNights is expected.
type ExtendBody struct {
	NewDepartureDate *string `json:"new_departure_date" validate:"omitempty,date"`
	AddNights        *int    `json:"add_nights"`
	IdempotencyKey   string  `json:"idempotency_key"    validate:"omitempty,max=255"`
}

// ToRequest prefers the body key over the Idempotency-Key header. The body must be validated first.
func (b *ExtendBody) ToRequest(propertyID, reservationID, actor, headerKey string, now time.Time) ExtendRequest {
	req := ExtendRequest{
		PropertyID:     propertyID,
		ReservationID:  reservationID,
		Actor:          actor,
		AddNights:      b.AddNights,
		IdempotencyKey: b.IdempotencyKey,
		Now:            now,
	}

	if req.IdempotencyKey == constant.Empty {
		req.IdempotencyKey = headerKey
	}

	if b.NewDepartureDate != nil {
		if date, err := gModel.ParseDate(*b.NewDepartureDate); err == nil {
			req.NewDepartureDate = &date
		}
	}

	return req
}

// ExtendOutcome carries exactly one of Result, Conflict or Reason depending on Kind.
type ExtendOutcome struct {
	Kind     string
	Result   *ExtendResult
	Conflict *ConflictDetail
	Reason   string
	Replayed bool
}

func Invalid(reason string) ExtendOutcome {
	return ExtendOutcome{Kind: OutcomeInvalid, Reason: reason}
}

type ExtendResult struct {
	ExtensionID      string        `json:"extension_id"`
	ReservationID    string        `json:"reservation_id"`
	OldDepartureDate gModel.Date   `json:"old_departure_date"`
	NewDepartureDate gModel.Date   `json:"new_departure_date"`
	NightsAdded      int           `json:"nights_added"`
	Pricing          model.Pricing `json:"pricing"`
	PaymentReference string        `json:"payment_reference"`
	PaymentRequired  bool          `json:"payment_required"`
	PaymentStatus    string        `json:"payment_status"`
	IncidentID       *string       `json:"incident_id"`
	IncidentStatus   *string       `json:"incident_status"`
}

func (e *ExtendResult) FromModel(m model.Extension) {
	e.ExtensionID = m.ID
	e.ReservationID = m.ReservationID
	e.OldDepartureDate = m.OldDepartureDate
	e.NewDepartureDate = m.NewDepartureDate
	e.NightsAdded = m.NightsAdded
	e.Pricing = m.Pricing.V
	e.PaymentReference = m.PaymentReference
	e.PaymentRequired = m.Status != model.StatusNoPaymentRequired
	e.PaymentStatus = m.Status
}

type Conflict struct {
	RoomID        string      `json:"room_id"`
	ReservationID string      `json:"reservation_id"`
	ArrivalDate   gModel.Date `json:"arrival_date"`
	DepartureDate gModel.Date `json:"departure_date"`
}

func (c *Conflict) FromModel(m reservationModel.Reservation) {
	c.RoomID = m.Room()
	c.ReservationID = m.ID
	c.ArrivalDate = m.ArrivalDate
	c.DepartureDate = m.DepartureDate
}

type ConflictDetail struct {
	Conflicts   []Conflict               `json:"conflicts"`
	Suggestions []roomDto.RoomSuggestion `json:"suggestions"`
}

type ReservationUpdatedEvent struct {
	ReservationID    string      `json:"reservation_id"`
	OldDepartureDate gModel.Date `json:"old_departure_date"`
	NewDepartureDate gModel.Date `json:"new_departure_date"`
	ExtensionID      string      `json:"extension_id"`
	Actor            string      `json:"actor"`
}
