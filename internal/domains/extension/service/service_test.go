package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	"frontdesk/infras/payment"
	paymentMocks "frontdesk/infras/payment/mocks"
	extensionMocks "frontdesk/internal/domains/extension/mocks"
	"frontdesk/internal/domains/extension/model"
	"frontdesk/internal/domains/extension/model/dto"
	"frontdesk/internal/domains/extension/service"
	incidentModel "frontdesk/internal/domains/incident/model"
	incidentMocks "frontdesk/internal/domains/incident/service/mocks"
	propertyModel "frontdesk/internal/domains/property/model"
	propertyMocks "frontdesk/internal/domains/property/service/mocks"
	reservationMocks "frontdesk/internal/domains/reservation/mocks"
	reservationModel "frontdesk/internal/domains/reservation/model"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	roomDto "frontdesk/internal/domains/room/model/dto"
	roomServiceMocks "frontdesk/internal/domains/room/service/mocks"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/realtime"
	realtimeMocks "frontdesk/shared/realtime/mocks"
	repoMocks "frontdesk/shared/repository/mocks"
)

type fixture struct {
	repo        *extensionMocks.MockExtension
	reservation *reservationMocks.MockReservation
	roomRepo    *roomMocks.MockRoom
	room        *roomServiceMocks.MockRoom
	incident    *incidentMocks.MockIncident
	property    *propertyMocks.MockProperty
	transactor  *repoMocks.MockTransactor
	authorizer  *paymentMocks.MockAuthorizer
	publisher   *realtimeMocks.MockPublisher
	cfg         *config.Config
	svc         service.Extension
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:        extensionMocks.NewMockExtension(ctrl),
		reservation: reservationMocks.NewMockReservation(ctrl),
		roomRepo:    roomMocks.NewMockRoom(ctrl),
		room:        roomServiceMocks.NewMockRoom(ctrl),
		incident:    incidentMocks.NewMockIncident(ctrl),
		property:    propertyMocks.NewMockProperty(ctrl),
		transactor:  repoMocks.NewMockTransactor(ctrl),
		authorizer:  paymentMocks.NewMockAuthorizer(ctrl),
		publisher:   realtimeMocks.NewMockPublisher(ctrl),
		cfg:         &config.Config{},
	}

	f.cfg.Overstay.DefaultCheckoutTime = "11:00"
	f.cfg.Overstay.DefaultNightlyRate = "100.00"

	f.svc = service.New(
		f.repo, f.reservation, f.roomRepo, f.room, f.incident, f.property,
		f.transactor, f.authorizer, f.publisher, f.cfg, mocks.NewOtel(),
	)

	return f
}

func (f *fixture) runTx() {
	f.transactor.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, *sqlx.Tx) error) error {
			return fn(ctx, nil)
		})
}

func (f *fixture) locked(res reservationModel.Reservation) {
	f.property.EXPECT().Get(gomock.Any(), "p-1").Return(dublin, nil)
	f.reservation.EXPECT().LockTx(gomock.Any(), gomock.Any(), "p-1", "res-1", false).Return(res, nil)
}

var (
	dublin = propertyModel.Property{ID: "p-1", Timezone: "Europe/Dublin", Active: true}

	// 13:00 in Dublin, after the 11:00 checkout of 2025-07-15
	now = time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)
)

func inHouse() reservationModel.Reservation {
	arrived := time.Date(2025, time.July, 12, 15, 0, 0, 0, time.UTC)

	return reservationModel.Reservation{
		ID:            "res-1",
		PropertyID:    "p-1",
		RoomID:        shared.Ptr("r-101"),
		ArrivalDate:   gModel.NewDate(2025, time.July, 12),
		DepartureDate: gModel.NewDate(2025, time.July, 15),
		Status:        reservationModel.StatusInHouse,
		ArrivalAt:     &arrived,
		TotalAmount:   decimal.NewNullDecimal(decimal.RequireFromString("450.00")),
		Currency:      "EUR",
	}
}

func openIncident() incidentModel.Incident {
	return incidentModel.Incident{ID: "inc-1", PropertyID: "p-1", ReservationID: "res-1", Status: incidentModel.StatusOpen}
}

func TestExtensionService_Extend_Invalid(t *testing.T) {
	t.Run("rejects both inputs before touching storage", func(t *testing.T) {
		f := newFixture(t)

		out, err := f.svc.Extend(context.Background(), dto.ExtendRequest{
			PropertyID:       "p-1",
			ReservationID:    "res-1",
			NewDepartureDate: shared.Ptr(gModel.NewDate(2025, time.July, 17)),
			AddNights:        shared.Ptr(2),
		})

		require.NoError(t, err)
		assert.Equal(t, dto.OutcomeInvalid, out.Kind)
		assert.NotEmpty(t, out.Reason)
	})

	t.Run("rejects neither input", func(t *testing.T) {
		f := newFixture(t)

		out, err := f.svc.Extend(context.Background(), dto.ExtendRequest{PropertyID: "p-1", ReservationID: "res-1"})

		require.NoError(t, err)
		assert.Equal(t, dto.OutcomeInvalid, out.Kind)
	})

	t.Run("rejects a non positive night count", func(t *testing.T) {
		for _, nights := range []int{0, -1} {
			f := newFixture(t)
			f.runTx()
			f.locked(inHouse())

			out, err := f.svc.Extend(context.Background(), dto.ExtendRequest{
				PropertyID:    "p-1",
				ReservationID: "res-1",
				AddNights:     shared.Ptr(nights),
				Now:           now,
			})

			require.NoError(t, err)
			assert.Equal(t, dto.OutcomeInvalid, out.Kind)
		}
	})

	t.Run("rejects a date that does not move departure forward", func(t *testing.T) {
		f := newFixture(t)
		f.runTx()
		f.locked(inHouse())

		out, err := f.svc.Extend(context.Background(), dto.ExtendRequest{
			PropertyID:       "p-1",
			ReservationID:    "res-1",
			NewDepartureDate: shared.Ptr(gModel.NewDate(2025, time.July, 15)),
			Now:              now,
		})

		require.NoError(t, err)
		assert.Equal(t, dto.OutcomeInvalid, out.Kind)
	})

	t.Run("rejects a completed stay", func(t *testing.T) {
		f := newFixture(t)
		f.runTx()

		res := inHouse()
		res.Status = reservationModel.StatusCompleted
		f.locked(res)

		out, err := f.svc.Extend(context.Background(), dto.ExtendRequest{
			PropertyID:    "p-1",
			ReservationID: "res-1",
			AddNights:     shared.Ptr(1),
			Now:           now,
		})

		require.NoError(t, err)
		assert.Equal(t, dto.OutcomeInvalid, out.Kind)
	})
}

func TestExtensionService_Extend_TooLong(t *testing.T) {
	tests := []struct {
		name string
		req  dto.ExtendRequest
	}{
		{
			name: "far future departure",
			req:  dto.ExtendRequest{NewDepartureDate: shared.Ptr(gModel.NewDate(9999, time.December, 31))},
		},
		{
			name: "one night past the limit",
			req:  dto.ExtendRequest{NewDepartureDate: shared.Ptr(gModel.NewDate(2025, time.July, 15).AddDays(31))},
		},
		{
			name: "add nights past the limit",
			req:  dto.ExtendRequest{AddNights: shared.Ptr(1_000_000_000)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.cfg.Overstay.MaxExtensionNights = 30
			f.runTx()
			f.locked(inHouse())

			tt.req.PropertyID = "p-1"
			tt.req.ReservationID = "res-1"
			tt.req.Now = now

			out, err := f.svc.Extend(context.Background(), tt.req)

			require.NoError(t, err)
			assert.Equal(t, dto.OutcomeInvalid, out.Kind)
			assert.Equal(t, "extension exceeds the maximum number of nights", out.Reason)
		})
	}
}

func TestExtensionService_Extend_NotFound(t *testing.T) {
	f := newFixture(t)
	f.runTx()
	f.locked(reservationModel.Reservation{})

	_, err := f.svc.Extend(context.Background(), dto.ExtendRequest{
		PropertyID:    "p-1",
		ReservationID: "res-1",
		AddNights:     shared.Ptr(1),
	})

	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestExtensionService_Extend_ResolvesIncident(t *testing.T) {
	f := newFixture(t)
	f.runTx()
	f.locked(inHouse())

	var stored model.Extension

	f.repo.EXPECT().GetByKeyTx(gomock.Any(), gomock.Any(), "res-1", "k-1").Return(model.Extension{}, nil)
	f.reservation.EXPECT().
		ListOverlappingTx(gomock.Any(), gomock.Any(), "r-101", gModel.NewDate(2025, time.July, 15), gModel.NewDate(2025, time.July, 17), "res-1").
		Return(nil, nil)
	f.authorizer.EXPECT().
		Authorize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req payment.AuthorizeRequest) (payment.Authorization, error) {
			assert.Equal(t, "300", req.Amount.String())
			assert.Equal(t, "EUR", req.Currency)
			assert.Equal(t, "k-1", req.IdempotencyKey)

			return payment.Authorization{Reference: "pi_123", Status: "requires_capture"}, nil
		})
	f.incident.EXPECT().ActiveTx(gomock.Any(), gomock.Any(), "res-1").Return(openIncident(), nil)
	f.repo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, ext model.Extension) error {
			stored = ext

			return nil
		})
	f.reservation.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, gModel.NewDate(2025, time.July, 17), req[reservationModel.FieldDepartureDate])

			return nil
		})
	f.incident.EXPECT().
		ResolveTx(gomock.Any(), gomock.Any(), gomock.Any(), "u-1", "departure extended to 2025-07-17", now).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, inc *incidentModel.Incident, _, _ string, _ time.Time) error {
			inc.Status = incidentModel.StatusResolved

			return nil
		})
	f.publisher.EXPECT().
		Publish(gomock.Any(), "p-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, events ...realtime.Event) error {
			require.Len(t, events, 2)
			assert.Equal(t, realtime.EventOverstayResolved, events[0].Type)
			assert.Equal(t, realtime.EventReservationUpdated, events[1].Type)

			return nil
		})

	out, err := f.svc.Extend(context.Background(), dto.ExtendRequest{
		PropertyID:     "p-1",
		ReservationID:  "res-1",
		Actor:          "u-1",
		AddNights:      shared.Ptr(2),
		IdempotencyKey: "k-1",
		Now:            now,
	})

	require.NoError(t, err)
	require.Equal(t, dto.OutcomeOK, out.Kind)
	assert.False(t, out.Replayed)

	result := out.Result
	assert.Equal(t, "2025-07-15", result.OldDepartureDate.String())
	assert.Equal(t, "2025-07-17", result.NewDepartureDate.String())
	assert.Equal(t, 2, result.NightsAdded)
	assert.Equal(t, "150", result.Pricing.NightlyRate.String())
	assert.Equal(t, "300", result.Pricing.Delta.String())
	assert.Equal(t, "pi_123", result.PaymentReference)
	assert.True(t, result.PaymentRequired)
	assert.Equal(t, model.StatusPendingPayment, result.PaymentStatus)
	assert.Equal(t, incidentModel.StatusResolved, *result.IncidentStatus)

	assert.Equal(t, "k-1", *stored.IdempotencyKey)
	assert.Equal(t, model.StatusPendingPayment, stored.Status)

	encoded, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, string(encoded), string(stored.Result))
}

func TestExtensionService_Extend_Replay(t *testing.T) {
	f := newFixture(t)

	first := dto.ExtendResult{
		ExtensionID:      "ext-1",
		ReservationID:    "res-1",
		OldDepartureDate: gModel.NewDate(2025, time.July, 15),
		NewDepartureDate: gModel.NewDate(2025, time.July, 17),
		NightsAdded:      2,
		Pricing: model.Price(inHouse(), gModel.NewDate(2025, time.July, 15), gModel.NewDate(2025, time.July, 17),
			decimal.NewFromInt(100)),
		PaymentReference: "pi_123",
		PaymentRequired:  true,
		PaymentStatus:    model.StatusPendingPayment,
		IncidentID:       shared.Ptr("inc-1"),
		IncidentStatus:   shared.Ptr(incidentModel.StatusResolved),
	}

	stored, err := json.Marshal(first)
	require.NoError(t, err)

	// The departure already moved, so only the stored key can make this call succeed.
	res := inHouse()
	res.DepartureDate = gModel.NewDate(2025, time.July, 17)

	f.runTx()
	f.locked(res)
	f.repo.EXPECT().
		GetByKeyTx(gomock.Any(), gomock.Any(), "res-1", "k-1").
		Return(model.Extension{ID: "ext-1", ReservationID: "res-1", Result: stored}, nil)

	out, err := f.svc.Extend(context.Background(), dto.ExtendRequest{
		PropertyID:     "p-1",
		ReservationID:  "res-1",
		AddNights:      shared.Ptr(2),
		IdempotencyKey: "k-1",
		Now:            now.Add(time.Hour),
	})

	require.NoError(t, err)
	require.Equal(t, dto.OutcomeOK, out.Kind)
	assert.True(t, out.Replayed)

	replayed, err := json.Marshal(out.Result)
	require.NoError(t, err)
	assert.Equal(t, string(stored), string(replayed))
}

func TestExtensionService_Extend_Conflict(t *testing.T) {
	f := newFixture(t)
	f.runTx()
	f.locked(inHouse())

	other := reservationModel.Reservation{
		ID:            "res-2",
		RoomID:        shared.Ptr("r-101"),
		ArrivalDate:   gModel.NewDate(2025, time.July, 16),
		DepartureDate: gModel.NewDate(2025, time.July, 19),
		Status:        reservationModel.StatusConfirmed,
	}

	f.reservation.EXPECT().
		ListOverlappingTx(gomock.Any(), gomock.Any(), "r-101", gModel.NewDate(2025, time.July, 15), gModel.NewDate(2025, time.July, 17), "res-1").
		Return([]reservationModel.Reservation{other}, nil)
	f.roomRepo.EXPECT().
		GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(roomModel.Room{ID: "r-101", Number: "101", Category: "DELUXE"}, nil)
	f.room.EXPECT().
		Suggest(gomock.Any(), roomDto.SuggestRoomsRequest{
			PropertyID:    "p-1",
			Start:         gModel.NewDate(2025, time.July, 15),
			End:           gModel.NewDate(2025, time.July, 17),
			Category:      "DELUXE",
			ExcludeRoomID: "r-101",
		}).
		Return([]roomDto.RoomSuggestion{{RoomID: "r-102", Number: "102", Category: "DELUXE", Preferred: true}}, nil)

	out, err := f.svc.Extend(context.Background(), dto.ExtendRequest{
		PropertyID:    "p-1",
		ReservationID: "res-1",
		AddNights:     shared.Ptr(2),
		Now:           now,
	})

	require.NoError(t, err)
	require.Equal(t, dto.OutcomeConflict, out.Kind)
	assert.Nil(t, out.Result)
	require.Len(t, out.Conflict.Conflicts, 1)
	assert.Equal(t, "res-2", out.Conflict.Conflicts[0].ReservationID)
	assert.Equal(t, "r-101", out.Conflict.Conflicts[0].RoomID)
	require.Len(t, out.Conflict.Suggestions, 1)
	assert.Equal(t, "r-102", out.Conflict.Suggestions[0].RoomID)
}

func TestExtensionService_Extend_SuggestionFailureKeepsConflict(t *testing.T) {
	f := newFixture(t)
	f.runTx()
	f.locked(inHouse())

	f.reservation.EXPECT().
		ListOverlappingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]reservationModel.Reservation{{ID: "res-2", RoomID: shared.Ptr("r-101")}}, nil)
	f.roomRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: "r-101"}, nil)
	f.room.EXPECT().Suggest(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

	out, err := f.svc.Extend(context.Background(), dto.ExtendRequest{
		PropertyID:    "p-1",
		ReservationID: "res-1",
		AddNights:     shared.Ptr(1),
		Now:           now,
	})

	require.NoError(t, err)
	assert.Equal(t, dto.OutcomeConflict, out.Kind)
	assert.NotNil(t, out.Conflict.Suggestions)
	assert.Empty(t, out.Conflict.Suggestions)
}

func TestExtensionService_Extend_PaymentDegraded(t *testing.T) {
	f := newFixture(t)
	f.runTx()

	res := inHouse()
	res.RoomID = nil
	f.locked(res)

	f.authorizer.EXPECT().
		Authorize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req payment.AuthorizeRequest) (payment.Authorization, error) {
			assert.Equal(t, "2025-07-15:2025-07-16", req.IdempotencyKey)

			return payment.Authorization{}, errors.New("card_declined")
		})
	f.incident.EXPECT().ActiveTx(gomock.Any(), gomock.Any(), "res-1").Return(incidentModel.Incident{}, nil)
	f.repo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, ext model.Extension) error {
			assert.Equal(t, model.StatusPaymentDegraded, ext.Status)
			assert.Nil(t, ext.IdempotencyKey)

			return nil
		})
	f.reservation.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.publisher.EXPECT().
		Publish(gomock.Any(), "p-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, events ...realtime.Event) error {
			require.Len(t, events, 1)
			assert.Equal(t, realtime.EventReservationUpdated, events[0].Type)

			return errors.New("broker unavailable")
		})

	out, err := f.svc.Extend(context.Background(), dto.ExtendRequest{
		PropertyID:    "p-1",
		ReservationID: "res-1",
		AddNights:     shared.Ptr(1),
		Now:           now,
	})

	require.NoError(t, err)
	require.Equal(t, dto.OutcomeOK, out.Kind)
	assert.True(t, strings.HasPrefix(out.Result.PaymentReference, "pending-"))
	assert.True(t, out.Result.PaymentRequired)
	assert.Equal(t, model.StatusPaymentDegraded, out.Result.PaymentStatus)
	assert.Nil(t, out.Result.IncidentID)
}

func TestExtensionService_Extend_NoPaymentRequired(t *testing.T) {
	f := newFixture(t)
	f.cfg.Overstay.DefaultNightlyRate = "0"
	f.runTx()

	res := inHouse()
	res.RoomID = nil
	res.TotalAmount = decimal.NullDecimal{}
	f.locked(res)

	f.incident.EXPECT().ActiveTx(gomock.Any(), gomock.Any(), "res-1").Return(incidentModel.Incident{}, nil)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.reservation.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), "p-1", gomock.Any()).Return(nil)

	out, err := f.svc.Extend(context.Background(), dto.ExtendRequest{
		PropertyID:    "p-1",
		ReservationID: "res-1",
		AddNights:     shared.Ptr(1),
		Now:           now,
	})

	require.NoError(t, err)
	assert.False(t, out.Result.PaymentRequired)
	assert.Equal(t, model.StatusNoPaymentRequired, out.Result.PaymentStatus)
	assert.Empty(t, out.Result.PaymentReference)
}

func TestExtensionService_Extend_IncidentResolution(t *testing.T) {
	// A stay that should have ended on the 14th is extended to the 15th.
	overstayed := func() reservationModel.Reservation {
		res := inHouse()
		res.RoomID = nil
		res.DepartureDate = gModel.NewDate(2025, time.July, 14)

		return res
	}

	tests := []struct {
		name        string
		now         time.Time
		wantResolve bool
	}{
		{
			name:        "before today's checkout resolves",
			now:         time.Date(2025, time.July, 15, 9, 59, 0, 0, time.UTC),
			wantResolve: true,
		},
		{
			name:        "after today's checkout stays open",
			now:         time.Date(2025, time.July, 15, 10, 0, 0, 0, time.UTC),
			wantResolve: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.runTx()
			f.locked(overstayed())

			f.authorizer.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(payment.Authorization{Reference: "pi_1"}, nil)
			f.incident.EXPECT().ActiveTx(gomock.Any(), gomock.Any(), "res-1").Return(openIncident(), nil)
			f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			f.reservation.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

			if tt.wantResolve {
				f.incident.EXPECT().
					ResolveTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "departure extended to 2025-07-15", tt.now).
					Return(nil)
			}

			f.publisher.EXPECT().Publish(gomock.Any(), "p-1", gomock.Any()).Return(nil)

			out, err := f.svc.Extend(context.Background(), dto.ExtendRequest{
				PropertyID:       "p-1",
				ReservationID:    "res-1",
				NewDepartureDate: shared.Ptr(gModel.NewDate(2025, time.July, 15)),
				Now:              tt.now,
			})

			require.NoError(t, err)
			require.Equal(t, dto.OutcomeOK, out.Kind)

			want := incidentModel.StatusOpen
			if tt.wantResolve {
				want = incidentModel.StatusResolved
			}

			assert.Equal(t, want, *out.Result.IncidentStatus)
		})
	}
}

func TestExtensionService_Extend_InvalidTimezone(t *testing.T) {
	f := newFixture(t)
	f.runTx()

	res := inHouse()
	res.RoomID = nil

	f.property.EXPECT().Get(gomock.Any(), "p-1").Return(propertyModel.Property{ID: "p-1"}, nil)
	f.reservation.EXPECT().LockTx(gomock.Any(), gomock.Any(), "p-1", "res-1", false).Return(res, nil)
	f.authorizer.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(payment.Authorization{Reference: "pi_1"}, nil)
	f.incident.EXPECT().ActiveTx(gomock.Any(), gomock.Any(), "res-1").Return(openIncident(), nil)

	_, err := f.svc.Extend(context.Background(), dto.ExtendRequest{
		PropertyID:    "p-1",
		ReservationID: "res-1",
		AddNights:     shared.Ptr(1),
		Now:           now,
	})

	require.Error(t, err)
	assert.Equal(t, 422, failure.GetCode(err))
}
