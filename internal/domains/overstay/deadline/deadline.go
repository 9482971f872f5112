// Package deadline turns a departure date and a property's local checkout time into the
// absolute instant after which the guest is overstaying.
package deadline

import (
	"errors"
	"fmt"
	"time"

	propertyModel "frontdesk/internal/domains/property/model"
	reservationModel "frontdesk/internal/domains/reservation/model"
	"frontdesk/shared/constant"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

var (
	ErrInvalidTimezone     = errors.New("invalid property timezone")
	ErrInvalidCheckoutTime = errors.New("invalid property checkout time")
	ErrMissingDeparture    = errors.New("reservation has no departure date")
)

const (
	SeverityLow      = "LOW"
	SeverityMedium   = "MEDIUM"
	SeverityHigh     = "HIGH"
	SeverityCritical = "CRITICAL"

	mediumWindow = 2 * time.Hour
	offsetProbe  = 24 * time.Hour
)

// At returns the checkout instant in UTC. An empty clock falls back to fallback.
//
// A wall time repeated by a backward DST shift resolves to its first occurrence. A wall time
// skipped by a forward shift is read with the offset in force before the shift, so it lands
// just after the transition.
func At(departure gModel.Date, clock, tz, fallback string) (time.Time, error) {
	if departure.IsZero() {
		return time.Time{}, ErrMissingDeparture
	}

	loc, err := timezone.Load(tz)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}

	if clock == constant.Empty {
		clock = fallback
	}

	hm, err := time.Parse(constant.ClockFormat, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidCheckoutTime, clock)
	}

	wall := time.Date(departure.Year(), departure.Month(), departure.Day(), hm.Hour(), hm.Minute(), 0, 0, time.UTC)

	return localize(wall, loc), nil
}

// For is At applied to a reservation's departure date and its property's settings.
func For(prop propertyModel.Property, res reservationModel.Reservation, fallback string) (time.Time, error) {
	return At(res.DepartureDate, prop.Checkout(fallback), prop.Timezone, fallback)
}

// Today returns the calendar date of now in the given zone.
func Today(now time.Time, tz string) (gModel.Date, error) {
	loc, err := timezone.Load(tz)
	if err != nil {
		return gModel.Date{}, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}

	return gModel.DateOf(now.In(loc)), nil
}

// Severity grades an overstay. The grace window only affects this grading, never the deadline.
func Severity(now, deadline time.Time, grace time.Duration, hasIncomingArrival bool) string {
	if hasIncomingArrival {
		return SeverityCritical
	}

	late := now.Sub(deadline)

	switch {
	case late <= grace:
		return SeverityLow
	case late <= grace+mediumWindow:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

// localize reads wall (a naive local time carried in UTC) as a wall clock in loc.
func localize(wall time.Time, loc *time.Location) time.Time {
	before := offsetAt(wall.Add(-offsetProbe), loc)
	after := offsetAt(wall.Add(offsetProbe), loc)

	early := wall.Add(-time.Duration(max(before, after)) * time.Second)
	late := wall.Add(-time.Duration(min(before, after)) * time.Second)

	switch {
	case sameWall(early, wall, loc):
		return early.UTC()
	case sameWall(late, wall, loc):
		return late.UTC()
	default:
		return wall.Add(-time.Duration(before) * time.Second).UTC()
	}
}

func offsetAt(t time.Time, loc *time.Location) int {
	_, offset := t.In(loc).Zone()

	return offset
}

func sameWall(instant, wall time.Time, loc *time.Location) bool {
	local := instant.In(loc)

	return local.Year() == wall.Year() && local.YearDay() == wall.YearDay() &&
		local.Hour() == wall.Hour() && local.Minute() == wall.Minute()
}
