package model

import (
	"frontdesk/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldPropertyID   = "property_id"
	FieldNumber       = "number"
	FieldCategory     = "category"
	FieldActive       = "active"
	FieldOutOfService = "out_of_service"
)

type Room struct {
	ID           string `db:"id"`
	PropertyID   string `db:"property_id"`
	Number       string `db:"number"`
	Category     string `db:"category"`
	Active       bool   `db:"active"`
	OutOfService bool   `db:"out_of_service"`
	model.Metadata
}

// AvailabilityQuery selects sellable rooms with no blocking reservation inside [Start, End).
type AvailabilityQuery struct {
	PropertyID    string
	Start         model.Date
	End           model.Date
	Category      string
	ExcludeRoomID string
	Limit         int
}
