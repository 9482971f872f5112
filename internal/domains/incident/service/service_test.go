package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	incidentMocks "frontdesk/internal/domains/incident/mocks"
	"frontdesk/internal/domains/incident/model"
	"frontdesk/internal/domains/incident/model/dto"
	"frontdesk/internal/domains/incident/service"
	propertyModel "frontdesk/internal/domains/property/model"
	propertyMocks "frontdesk/internal/domains/property/service/mocks"
	reservationMocks "frontdesk/internal/domains/reservation/mocks"
	reservationModel "frontdesk/internal/domains/reservation/model"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/realtime"
	realtimeMocks "frontdesk/shared/realtime/mocks"
	repoMocks "frontdesk/shared/repository/mocks"
)

type fixture struct {
	repo        *incidentMocks.MockIncident
	reservation *reservationMocks.MockReservation
	room        *roomMocks.MockRoom
	property    *propertyMocks.MockProperty
	transactor  *repoMocks.MockTransactor
	publisher   *realtimeMocks.MockPublisher
	svc         service.Incident
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:        incidentMocks.NewMockIncident(ctrl),
		reservation: reservationMocks.NewMockReservation(ctrl),
		room:        roomMocks.NewMockRoom(ctrl),
		property:    propertyMocks.NewMockProperty(ctrl),
		transactor:  repoMocks.NewMockTransactor(ctrl),
		publisher:   realtimeMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Overstay.DefaultCheckoutTime = "11:00"
	cfg.Overstay.GraceMinutes = 30

	f.svc = service.New(f.repo, f.reservation, f.room, f.property, f.transactor, f.publisher, cfg, mocks.NewOtel())

	return f
}

func (f *fixture) runTx() {
	f.transactor.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, *sqlx.Tx) error) error {
			return fn(ctx, nil)
		})
}

var (
	dublin = propertyModel.Property{ID: "p-1", Timezone: "Europe/Dublin", Active: true}

	// deadline 2025-07-15T10:00:00Z
	now = time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)
)

func occupying() reservationModel.Reservation {
	arrived := time.Date(2025, time.July, 12, 15, 0, 0, 0, time.UTC)
	room := "r-101"

	return reservationModel.Reservation{
		ID:            "res-1",
		PropertyID:    "p-1",
		RoomID:        &room,
		GuestName:     "Ada Lovelace",
		ArrivalDate:   gModel.NewDate(2025, time.July, 12),
		DepartureDate: gModel.NewDate(2025, time.July, 15),
		Status:        reservationModel.StatusInHouse,
		ArrivalAt:     &arrived,
	}
}

func TestIncidentService_Acknowledge(t *testing.T) {
	t.Run("creates the incident directly in ACKED when none is active", func(t *testing.T) {
		f := newFixture(t)
		f.runTx()

		f.property.EXPECT().Get(gomock.Any(), "p-1").Return(dublin, nil)
		f.reservation.EXPECT().LockTx(gomock.Any(), gomock.Any(), "p-1", "res-1", false).Return(occupying(), nil)
		f.repo.EXPECT().GetActiveTx(gomock.Any(), gomock.Any(), "res-1").Return(model.Incident{}, nil)
		f.room.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: "r-101", Number: "101", Category: "DELUXE"}, nil)
		f.reservation.EXPECT().HasArrivalTx(gomock.Any(), gomock.Any(), "r-101", gModel.NewDate(2025, time.July, 15), "res-1").Return(false, nil)
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, inc model.Incident) error {
				assert.Equal(t, model.StatusAcked, inc.Status)
				assert.Equal(t, "u-1", *inc.AckedBy)
				assert.Equal(t, "101", inc.Context.V.RoomNumber)
				assert.Equal(t, "Ada Lovelace", inc.Context.V.GuestName)
				assert.True(t, time.Date(2025, time.July, 15, 10, 0, 0, 0, time.UTC).Equal(inc.DeadlineAt))

				return nil
			})
		f.publisher.EXPECT().
			Publish(gomock.Any(), "p-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, events ...realtime.Event) error {
				require.Len(t, events, 1)
				assert.Equal(t, realtime.EventOverstayAcknowledged, events[0].Type)

				return nil
			})

		got, err := f.svc.Acknowledge(context.Background(), dto.AcknowledgeRequest{
			PropertyID:    "p-1",
			ReservationID: "res-1",
			Actor:         "u-1",
			Note:          "calling guest",
			Now:           now,
		})

		require.NoError(t, err)
		assert.Equal(t, model.StatusAcked, got.Status)
		assert.Equal(t, "MEDIUM", got.Severity)
		assert.Equal(t, []string{model.ActionExtend, model.ActionDismiss}, got.AllowedActions)
	})

	t.Run("dismisses the existing incident", func(t *testing.T) {
		f := newFixture(t)
		f.runTx()

		existing := model.Incident{ID: "inc-1", PropertyID: "p-1", ReservationID: "res-1", Status: model.StatusAcked}

		f.property.EXPECT().Get(gomock.Any(), "p-1").Return(dublin, nil)
		f.reservation.EXPECT().LockTx(gomock.Any(), gomock.Any(), "p-1", "res-1", false).Return(occupying(), nil)
		f.repo.EXPECT().GetActiveTx(gomock.Any(), gomock.Any(), "res-1").Return(existing, nil)
		f.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusDismissed, fields[model.FieldStatus])

				return nil
			})
		f.publisher.EXPECT().
			Publish(gomock.Any(), "p-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, events ...realtime.Event) error {
				assert.Equal(t, realtime.EventOverstayDismissed, events[0].Type)

				return errors.New("broker down")
			})

		got, err := f.svc.Acknowledge(context.Background(), dto.AcknowledgeRequest{
			PropertyID:    "p-1",
			ReservationID: "res-1",
			Actor:         "u-1",
			Note:          "guest left",
			Dismiss:       true,
			Now:           now,
		})

		require.NoError(t, err)
		assert.Equal(t, model.StatusDismissed, got.Status)
		assert.Empty(t, got.AllowedActions)
	})

	t.Run("reservation not found", func(t *testing.T) {
		f := newFixture(t)
		f.runTx()

		f.property.EXPECT().Get(gomock.Any(), "p-1").Return(dublin, nil)
		f.reservation.EXPECT().LockTx(gomock.Any(), gomock.Any(), "p-1", "res-9", false).Return(reservationModel.Reservation{}, nil)

		_, err := f.svc.Acknowledge(context.Background(), dto.AcknowledgeRequest{PropertyID: "p-1", ReservationID: "res-9", Now: now})

		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("property not found", func(t *testing.T) {
		f := newFixture(t)

		f.property.EXPECT().Get(gomock.Any(), "p-9").Return(propertyModel.Property{}, failure.NotFound("property not found"))

		_, err := f.svc.Acknowledge(context.Background(), dto.AcknowledgeRequest{PropertyID: "p-9", ReservationID: "res-1"})

		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("misconfigured timezone surfaces as unprocessable", func(t *testing.T) {
		f := newFixture(t)
		f.runTx()

		f.property.EXPECT().Get(gomock.Any(), "p-1").Return(propertyModel.Property{ID: "p-1"}, nil)
		f.reservation.EXPECT().LockTx(gomock.Any(), gomock.Any(), "p-1", "res-1", false).Return(occupying(), nil)
		f.repo.EXPECT().GetActiveTx(gomock.Any(), gomock.Any(), "res-1").Return(model.Incident{}, nil)

		_, err := f.svc.Acknowledge(context.Background(), dto.AcknowledgeRequest{PropertyID: "p-1", ReservationID: "res-1", Now: now})

		assert.Equal(t, 422, failure.GetCode(err))
	})

	t.Run("concurrent insert maps to conflict", func(t *testing.T) {
		f := newFixture(t)
		f.runTx()

		res := occupying()
		res.RoomID = nil

		f.property.EXPECT().Get(gomock.Any(), "p-1").Return(dublin, nil)
		f.reservation.EXPECT().LockTx(gomock.Any(), gomock.Any(), "p-1", "res-1", false).Return(res, nil)
		f.repo.EXPECT().GetActiveTx(gomock.Any(), gomock.Any(), "res-1").Return(model.Incident{}, nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23505"})

		_, err := f.svc.Acknowledge(context.Background(), dto.AcknowledgeRequest{PropertyID: "p-1", ReservationID: "res-1", Now: now})

		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestIncidentService_OpenTx(t *testing.T) {
	f := newFixture(t)

	f.room.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: "r-101", Number: "101"}, nil)
	f.reservation.EXPECT().HasArrivalTx(gomock.Any(), gomock.Any(), "r-101", gomock.Any(), "res-1").Return(true, nil)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	inc, err := f.svc.OpenTx(context.Background(), nil, dublin, occupying(), "", now)

	require.NoError(t, err)
	assert.NotEmpty(t, inc.ID)
	assert.Equal(t, model.StatusOpen, inc.Status)
	assert.Equal(t, "CRITICAL", inc.Severity)
	assert.Equal(t, "system", inc.CreatedBy)
	assert.Equal(t, "2025-07-15", inc.ExpectedDepartureDate.String())
}

func TestIncidentService_ResolveCheckedOut(t *testing.T) {
	left := time.Date(2025, time.July, 15, 12, 30, 0, 0, time.UTC)

	t.Run("resolves after check-out", func(t *testing.T) {
		f := newFixture(t)
		f.runTx()

		res := occupying()
		res.DepartureAt = &left

		f.reservation.EXPECT().LockTx(gomock.Any(), gomock.Any(), "p-1", "res-1", false).Return(res, nil)
		f.repo.EXPECT().GetActiveTx(gomock.Any(), gomock.Any(), "res-1").Return(model.Incident{ID: "inc-1", Status: model.StatusOpen}, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.publisher.EXPECT().
			Publish(gomock.Any(), "p-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, events ...realtime.Event) error {
				assert.Equal(t, realtime.EventOverstayResolved, events[0].Type)

				return nil
			})

		resolved, err := f.svc.ResolveCheckedOut(context.Background(), dto.ResolveCheckedOutRequest{PropertyID: "p-1", ReservationID: "res-1", Now: left})

		require.NoError(t, err)
		assert.True(t, resolved)
	})

	t.Run("guest still in the room", func(t *testing.T) {
		f := newFixture(t)
		f.runTx()

		f.reservation.EXPECT().LockTx(gomock.Any(), gomock.Any(), "p-1", "res-1", false).Return(occupying(), nil)

		resolved, err := f.svc.ResolveCheckedOut(context.Background(), dto.ResolveCheckedOutRequest{PropertyID: "p-1", ReservationID: "res-1"})

		require.NoError(t, err)
		assert.False(t, resolved)
	})

	t.Run("no active incident", func(t *testing.T) {
		f := newFixture(t)
		f.runTx()

		res := occupying()
		res.DepartureAt = &left

		f.reservation.EXPECT().LockTx(gomock.Any(), gomock.Any(), "p-1", "res-1", false).Return(res, nil)
		f.repo.EXPECT().GetActiveTx(gomock.Any(), gomock.Any(), "res-1").Return(model.Incident{}, nil)

		resolved, err := f.svc.ResolveCheckedOut(context.Background(), dto.ResolveCheckedOutRequest{PropertyID: "p-1", ReservationID: "res-1"})

		require.NoError(t, err)
		assert.False(t, resolved)
	})
}

func TestIncidentService_List(t *testing.T) {
	f := newFixture(t)

	req := dto.ListIncidentsRequest{
		PropertyID: "p-1",
		Status:     model.StatusOpen,
		Params:     gDto.QueryParams{Page: 1, Limit: 10, SortBy: "guest_name; DROP TABLE rooms"},
	}

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Incident, error) {
			assert.Equal(t, "overstay_incidents.detected_at", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Incident{{ID: "inc-1", Status: model.StatusOpen}}, nil
		})
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)

	got, err := f.svc.List(context.Background(), req)

	require.NoError(t, err)
	assert.Len(t, got.Incidents, 1)
	assert.Equal(t, 11, got.TotalCount)
	assert.Equal(t, 2, got.TotalPage)
}
