package model

import "frontdesk/shared/model"

const (
	TableName  = "properties"
	EntityName = "property"

	FieldID           = "id"
	FieldName         = "name"
	FieldTimezone     = "timezone"
	FieldCheckoutTime = "checkout_time"
	FieldActive       = "active"
)

type Property struct {
	ID           string  `db:"id"            json:"id"`
	Name         string  `db:"name"          json:"name"`
	Timezone     string  `db:"timezone"      json:"timezone"`
	CheckoutTime *string `db:"checkout_time" json:"checkout_time"`
	Active       bool    `db:"active"        json:"active"`
	model.Metadata
}

// Checkout returns the configured local checkout time, or fallback when none is set.
func (p Property) Checkout(fallback string) string {
	if p.CheckoutTime == nil || *p.CheckoutTime == "" {
		return fallback
	}

	return *p.CheckoutTime
}
