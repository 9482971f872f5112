package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"frontdesk/internal/domains/reservation/model"
	gModel "frontdesk/shared/model"
)

func TestReservation_IsOccupying(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		res  model.Reservation
		want bool
	}{
		{name: "not arrived", res: model.Reservation{}, want: false},
		{name: "in house", res: model.Reservation{ArrivalAt: &now}, want: true},
		{name: "checked out", res: model.Reservation{ArrivalAt: &now, DepartureAt: &now}, want: false},
		{name: "departure without arrival", res: model.Reservation{DepartureAt: &now}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.res.IsOccupying())
		})
	}
}

func TestReservation_IsActive(t *testing.T) {
	assert.True(t, model.Reservation{Status: model.StatusConfirmed}.IsActive())
	assert.True(t, model.Reservation{Status: model.StatusInHouse}.IsActive())
	assert.False(t, model.Reservation{Status: model.StatusCompleted}.IsActive())
	assert.False(t, model.Reservation{Status: model.StatusCancelled}.IsActive())
}

func TestReservation_Nights(t *testing.T) {
	res := model.Reservation{
		ArrivalDate:   gModel.NewDate(2025, time.March, 29),
		DepartureDate: gModel.NewDate(2025, time.April, 2),
	}

	assert.Equal(t, 4, res.Nights())
	assert.Equal(t, 0, model.Reservation{}.Nights())
}

func TestReservation_Room(t *testing.T) {
	room := "r-101"

	assert.Equal(t, "", model.Reservation{}.Room())
	assert.Equal(t, "r-101", model.Reservation{RoomID: &room}.Room())
}
