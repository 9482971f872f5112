package model

import (
	"time"

	"github.com/shopspring/decimal"

	"frontdesk/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID            = "id"
	FieldPropertyID    = "property_id"
	FieldRoomID        = "room_id"
	FieldGuestName     = "guest_name"
	FieldArrivalDate   = "arrival_date"
	FieldDepartureDate = "departure_date"
	FieldStatus        = "status"
	FieldArrivalAt     = "arrival_at"
	FieldDepartureAt   = "departure_at"
	FieldTotalAmount   = "total_amount"
	FieldCurrency      = "currency"
)

const (
	StatusConfirmed = "CONFIRMED"
	StatusInHouse   = "IN_HOUSE"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// BlockingStatuses hold a room for their whole [arrival, departure) interval.
var BlockingStatuses = []string{StatusConfirmed, StatusInHouse}

type Reservation struct {
	ID            string              `db:"id"             json:"id"`
	PropertyID    string              `db:"property_id"    json:"property_id"`
	RoomID        *string             `db:"room_id"        json:"room_id"`
	GuestName     string              `db:"guest_name"     json:"guest_name"`
	ArrivalDate   model.Date          `db:"arrival_date"   json:"arrival_date"`
	DepartureDate model.Date          `db:"departure_date" json:"departure_date"`
	Status        string              `db:"status"         json:"status"`
	ArrivalAt     *time.Time          `db:"arrival_at"     json:"arrival_at"`
	DepartureAt   *time.Time          `db:"departure_at"   json:"departure_at"`
	TotalAmount   decimal.NullDecimal `db:"total_amount"   json:"total_amount"`
	Currency      string              `db:"currency"       json:"currency"`
	model.Metadata
}

// IsOccupying reports whether the guest has checked in and not yet checked out.
func (r Reservation) IsOccupying() bool {
	return r.ArrivalAt != nil && r.DepartureAt == nil
}

// IsActive reports whether the stay can still be changed.
func (r Reservation) IsActive() bool {
	return r.Status == StatusConfirmed || r.Status == StatusInHouse
}

func (r Reservation) Nights() int {
	return r.ArrivalDate.DaysUntil(r.DepartureDate)
}

func (r Reservation) Room() string {
	if r.RoomID == nil {
		return ""
	}

	return *r.RoomID
}
