package model

import (
	"github.com/shopspring/decimal"

	reservationModel "frontdesk/internal/domains/reservation/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/model"
)

const (
	RateSourceReservation = "reservation"
	RateSourceDefault     = "default"

	DefaultCurrency = "USD"

	pricePlaces = 2
)

type NightCharge struct {
	Date   model.Date      `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

type Pricing struct {
	Currency    string          `json:"currency"`
	NightlyRate decimal.Decimal `json:"nightly_rate"`
	RateSource  string          `json:"rate_source"`
	Nights      []NightCharge   `json:"nights"`
	Delta       decimal.Decimal `json:"delta"`
}

// Price prorates the reservation's total over its current nights and charges that rate for
// every night in [from, to). Without a total or current nights the default rate applies; a zero
// total prices the added nights at zero.
func Price(res reservationModel.Reservation, from, to model.Date, defaultRate decimal.Decimal) Pricing {
	pricing := Pricing{
		Currency:    res.Currency,
		NightlyRate: defaultRate.Round(pricePlaces),
		RateSource:  RateSourceDefault,
		Nights:      []NightCharge{},
		Delta:       decimal.Zero,
	}

	if pricing.Currency == constant.Empty {
		pricing.Currency = DefaultCurrency
	}

	if nights := res.Nights(); nights > 0 && res.TotalAmount.Valid && !res.TotalAmount.Decimal.IsNegative() {
		pricing.NightlyRate = res.TotalAmount.Decimal.Div(decimal.NewFromInt(int64(nights))).Round(pricePlaces)
		pricing.RateSource = RateSourceReservation
	}

	for night := from; night.Before(to); night = night.AddDays(1) {
		pricing.Nights = append(pricing.Nights, NightCharge{Date: night, Amount: pricing.NightlyRate})
		pricing.Delta = pricing.Delta.Add(pricing.NightlyRate)
	}

	return pricing
}
