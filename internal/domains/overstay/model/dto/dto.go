package dto

import (
	"time"

	"frontdesk/shared/constant"
)

// DetectRequest is the optional body of a manual sweep. An empty Now means the current time.
type DetectRequest struct {
	Now string `json:"now" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

func (d *DetectRequest) Instant() time.Time {
	if d.Now == constant.Empty {
		return time.Now().UTC()
	}

	t, _ := time.Parse(constant.DateFormat, d.Now)

	return t.UTC()
}

type DetectResponse struct {
	PropertyID string    `json:"property_id"`
	Created    int       `json:"created"`
	Now        time.Time `json:"now"`
}
