package model

import (
	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"

	"frontdesk/shared/model"
)

const (
	TableName  = "reservation_extensions"
	EntityName = "extension"

	FieldID               = "id"
	FieldPropertyID       = "property_id"
	FieldReservationID    = "reservation_id"
	FieldIdempotencyKey   = "idempotency_key"
	FieldPaymentReference = "payment_reference"
	FieldStatus           = "status"
)

const (
	StatusPendingPayment    = "PENDING_PAYMENT"
	StatusPaymentDegraded   = "PAYMENT_DEGRADED"
	StatusNoPaymentRequired = "NO_PAYMENT_REQUIRED"
)

// Extension is an applied departure change. Result holds the exact response body so a replay
// with the same idempotency key returns it unchanged.
type Extension struct {
	ID               string              `db:"id"`
	PropertyID       string              `db:"property_id"`
	ReservationID    string              `db:"reservation_id"`
	Actor            string              `db:"actor"`
	OldDepartureDate model.Date          `db:"old_departure_date"`
	NewDepartureDate model.Date          `db:"new_departure_date"`
	NightsAdded      int                 `db:"nights_added"`
	Pricing          model.JSON[Pricing] `db:"pricing"`
	Amount           decimal.Decimal     `db:"amount"`
	Currency         string              `db:"currency"`
	PaymentReference string              `db:"payment_reference"`
	Status           string              `db:"status"`
	IdempotencyKey   *string             `db:"idempotency_key"`
	Result           types.JSONText      `db:"result"`
	model.Metadata
}
