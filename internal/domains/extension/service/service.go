package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/infras/payment"
	"frontdesk/internal/domains/extension/model"
	"frontdesk/internal/domains/extension/model/dto"
	"frontdesk/internal/domains/extension/repository"
	incidentModel "frontdesk/internal/domains/incident/model"
	incidentDto "frontdesk/internal/domains/incident/model/dto"
	incidentService "frontdesk/internal/domains/incident/service"
	"frontdesk/internal/domains/overstay/deadline"
	propertyModel "frontdesk/internal/domains/property/model"
	propertyService "frontdesk/internal/domains/property/service"
	reservationModel "frontdesk/internal/domains/reservation/model"
	reservationRepo "frontdesk/internal/domains/reservation/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomDto "frontdesk/internal/domains/room/model/dto"
	roomRepo "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/realtime"
	gRepo "frontdesk/shared/repository"
)

const (
	placeholderReferencePrefix = "pending-"
	duplicateKeyMsg            = "extension with this idempotency key is being recorded"

	reasonExactlyOne       = "exactly one of new_departure_date or add_nights is required"
	reasonNotPositive      = "extension must add at least one night"
	reasonInactive         = "reservation can no longer be extended"
	reasonTooLong          = "extension exceeds the maximum number of nights"
	defaultMaxNights       = 365
	defaultNightlyRateText = "100.00"
)

type Extension interface {
	Extend(ctx context.Context, req dto.ExtendRequest) (dto.ExtendOutcome, error)
}

type serviceImpl struct {
	repo        repository.Extension
	reservation reservationRepo.Reservation
	roomRepo    roomRepo.Room
	room        roomService.Room
	incident    incidentService.Incident
	property    propertyService.Property
	transactor  gRepo.Transactor
	authorizer  payment.Authorizer
	publisher   realtime.Publisher
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Extension,
	reservation reservationRepo.Reservation,
	roomRepo roomRepo.Room,
	room roomService.Room,
	incident incidentService.Incident,
	property propertyService.Property,
	transactor gRepo.Transactor,
	authorizer payment.Authorizer,
	publisher realtime.Publisher,
	cfg *config.Config,
	otel otel.Otel,
) Extension {
	return &serviceImpl{
		repo:        repo,
		reservation: reservation,
		roomRepo:    roomRepo,
		room:        room,
		incident:    incident,
		property:    property,
		transactor:  transactor,
		authorizer:  authorizer,
		publisher:   publisher,
		cfg:         cfg,
		otel:        otel,
	}
}

// Extend moves a reservation's departure date under its row lock. Conflicts and invalid input come
// back as outcomes; the error return is kept for infrastructure and configuration failures.
func (s *serviceImpl) Extend(ctx context.Context, req dto.ExtendRequest) (res dto.ExtendOutcome, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".extension.Extend")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if (req.NewDepartureDate == nil) == (req.AddNights == nil) {
		return dto.Invalid(reasonExactlyOne), nil
	}

	actor := req.Actor
	if actor == constant.Empty {
		actor = constant.ActorSystem
	}

	now := req.Now.UTC()
	if req.Now.IsZero() {
		now = time.Now().UTC()
	}

	prop, err := s.property.Get(ctx, req.PropertyID)
	if err != nil {
		return res, fmt.Errorf("failed to get property: %w", err)
	}

	var (
		resolved    *incidentModel.Incident
		reservation reservationModel.Reservation
	)

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		reservation, err = s.reservation.LockTx(ctx, tx, prop.ID, req.ReservationID, false)
		if err != nil {
			return fmt.Errorf("failed to lock reservation: %w", err)
		}

		if reservation.ID == constant.Empty {
			return failure.NotFound("reservation not found") // nolint:wrapcheck
		}

		if req.IdempotencyKey != constant.Empty {
			replayed, found, err := s.replayTx(ctx, tx, reservation.ID, req.IdempotencyKey)
			if err != nil || found {
				res = replayed

				return err
			}
		}

		res, resolved, err = s.applyTx(ctx, tx, prop, reservation, req, actor, now)

		return err
	})
	if err != nil {
		return dto.ExtendOutcome{}, err //nolint:wrapcheck
	}

	if res.Kind != dto.OutcomeOK || res.Replayed {
		return res, nil
	}

	events := make([]realtime.Event, 0, 2)
	if resolved != nil {
		events = append(events, incidentDto.NewIncidentEvent(realtime.EventOverstayResolved, *resolved, actor, now))
	}

	events = append(events, realtime.NewEvent(realtime.EventReservationUpdated, dto.ReservationUpdatedEvent{
		ReservationID:    reservation.ID,
		OldDepartureDate: res.Result.OldDepartureDate,
		NewDepartureDate: res.Result.NewDepartureDate,
		ExtensionID:      res.Result.ExtensionID,
		Actor:            actor,
	}, now))

	if err := s.publisher.Publish(ctx, prop.ID, events...); err != nil {
		log.Warn().Err(err).Str("property_id", prop.ID).Str("reservation_id", reservation.ID).Msg("failed to notify staff")
	}

	return res, nil
}

func (s *serviceImpl) replayTx(ctx context.Context, tx *sqlx.Tx, reservationID, key string) (dto.ExtendOutcome, bool, error) {
	ext, err := s.repo.GetByKeyTx(ctx, tx, reservationID, key)
	if err != nil {
		log.Error().Err(err).Str("reservation_id", reservationID).Msg("failed to get extension by idempotency key")

		return dto.ExtendOutcome{}, false, fmt.Errorf("failed to get extension: %w", err)
	}

	if ext.ID == constant.Empty {
		return dto.ExtendOutcome{}, false, nil
	}

	var result dto.ExtendResult
	if err := json.Unmarshal(ext.Result, &result); err != nil {
		log.Error().Err(err).Str("extension_id", ext.ID).Msg("stored extension result is unreadable")

		return dto.ExtendOutcome{}, false, fmt.Errorf("failed to decode stored extension result: %w", err)
	}

	return dto.ExtendOutcome{Kind: dto.OutcomeOK, Result: &result, Replayed: true}, true, nil
}

func (s *serviceImpl) applyTx(
	ctx context.Context,
	tx *sqlx.Tx,
	prop propertyModel.Property,
	reservation reservationModel.Reservation,
	req dto.ExtendRequest,
	actor string,
	now time.Time,
) (dto.ExtendOutcome, *incidentModel.Incident, error) {
	if !reservation.IsActive() {
		return dto.Invalid(reasonInactive), nil, nil
	}

	oldDeparture := reservation.DepartureDate

	var newDeparture gModel.Date
	if req.NewDepartureDate != nil {
		newDeparture = *req.NewDepartureDate
	} else {
		if *req.AddNights > s.maxNights() {
			return dto.Invalid(reasonTooLong), nil, nil
		}

		newDeparture = oldDeparture.AddDays(*req.AddNights)
	}

	nights := oldDeparture.DaysUntil(newDeparture)
	if nights <= 0 {
		return dto.Invalid(reasonNotPositive), nil, nil
	}

	if nights > s.maxNights() {
		return dto.Invalid(reasonTooLong), nil, nil
	}

	if roomID := reservation.Room(); roomID != constant.Empty {
		conflict, err := s.conflictTx(ctx, tx, reservation, roomID, oldDeparture, newDeparture)
		if err != nil {
			return dto.ExtendOutcome{}, nil, err
		}

		if conflict != nil {
			return dto.ExtendOutcome{Kind: dto.OutcomeConflict, Conflict: conflict}, nil, nil
		}
	}

	ext := model.Extension{
		ID:               uuid.NewString(),
		PropertyID:       prop.ID,
		ReservationID:    reservation.ID,
		Actor:            actor,
		OldDepartureDate: oldDeparture,
		NewDepartureDate: newDeparture,
		NightsAdded:      nights,
	}
	ext.Stamp(actor, now)

	if req.IdempotencyKey != constant.Empty {
		ext.IdempotencyKey = shared.Ptr(req.IdempotencyKey)
	}

	pricing := model.Price(reservation, oldDeparture, newDeparture, s.defaultRate())
	ext.Pricing = gModel.NewJSON(pricing)
	ext.Amount = pricing.Delta
	ext.Currency = pricing.Currency

	s.authorize(ctx, &ext, req.IdempotencyKey)

	inc, err := s.incident.ActiveTx(ctx, tx, reservation.ID)
	if err != nil {
		return dto.ExtendOutcome{}, nil, err //nolint:wrapcheck
	}

	resolves := false
	if inc.ID != constant.Empty {
		resolves, err = s.movesPastNow(prop, newDeparture, now)
		if err != nil {
			return dto.ExtendOutcome{}, nil, err
		}
	}

	var result dto.ExtendResult
	result.FromModel(ext)

	if inc.ID != constant.Empty {
		status := inc.Status
		if resolves {
			status = incidentModel.StatusResolved
		}

		result.IncidentID = shared.Ptr(inc.ID)
		result.IncidentStatus = shared.Ptr(status)
	}

	ext.Result, err = json.Marshal(result)
	if err != nil {
		return dto.ExtendOutcome{}, nil, fmt.Errorf("failed to encode extension result: %w", err)
	}

	if err = s.insertTx(ctx, tx, ext); err != nil {
		return dto.ExtendOutcome{}, nil, err
	}

	update := map[string]any{
		reservationModel.FieldDepartureDate: newDeparture,
		constant.FieldModifiedAt:            now,
		constant.FieldModifiedBy:            actor,
	}

	err = s.reservation.UpdateTx(ctx, tx, update, shared.FilterByID(reservation.ID, reservationModel.FieldID, reservationModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("reservation_id", reservation.ID).Msg("failed to update departure date")

		return dto.ExtendOutcome{}, nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	if !resolves {
		return dto.ExtendOutcome{Kind: dto.OutcomeOK, Result: &result}, nil, nil
	}

	note := "departure extended to " + newDeparture.String()
	if err = s.incident.ResolveTx(ctx, tx, &inc, actor, note, now); err != nil {
		return dto.ExtendOutcome{}, nil, err //nolint:wrapcheck
	}

	return dto.ExtendOutcome{Kind: dto.OutcomeOK, Result: &result}, &inc, nil
}

// conflictTx returns nil when no other blocking reservation holds the room in [from, to).
func (s *serviceImpl) conflictTx(
	ctx context.Context,
	tx *sqlx.Tx,
	reservation reservationModel.Reservation,
	roomID string,
	from, to gModel.Date,
) (*dto.ConflictDetail, error) {
	overlapping, err := s.reservation.ListOverlappingTx(ctx, tx, roomID, from, to, reservation.ID)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to check overlapping reservations")

		return nil, fmt.Errorf("failed to check overlapping reservations: %w", err)
	}

	if len(overlapping) == 0 {
		return nil, nil
	}

	detail := &dto.ConflictDetail{
		Conflicts:   make([]dto.Conflict, len(overlapping)),
		Suggestions: []roomDto.RoomSuggestion{},
	}

	for i, other := range overlapping {
		detail.Conflicts[i].FromModel(other)
	}

	room, err := s.roomRepo.GetTx(ctx, tx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to get room")

		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	suggestions, err := s.room.Suggest(ctx, roomDto.SuggestRoomsRequest{
		PropertyID:    reservation.PropertyID,
		Start:         from,
		End:           to,
		Category:      room.Category,
		ExcludeRoomID: roomID,
	})
	if err != nil {
		log.Warn().Err(err).Str("reservation_id", reservation.ID).Msg("failed to suggest alternative rooms")

		return detail, nil
	}

	if len(suggestions) > 0 {
		detail.Suggestions = suggestions
	}

	return detail, nil
}

// authorize never fails the extension. A provider error leaves a placeholder reference for the
// asynchronous payment flow to settle.
func (s *serviceImpl) authorize(ctx context.Context, ext *model.Extension, key string) {
	if !ext.Amount.IsPositive() {
		ext.Status = model.StatusNoPaymentRequired

		return
	}

	// A retry of a failed attempt without a caller key must land on the same hold.
	if key == constant.Empty {
		key = ext.OldDepartureDate.String() + ":" + ext.NewDepartureDate.String()
	}

	auth, err := s.authorizer.Authorize(ctx, payment.AuthorizeRequest{
		ReservationID:  ext.ReservationID,
		PropertyID:     ext.PropertyID,
		Amount:         ext.Amount,
		Currency:       ext.Currency,
		IdempotencyKey: key,
	})
	if err != nil {
		log.Warn().Err(err).
			Str("property_id", ext.PropertyID).
			Str("reservation_id", ext.ReservationID).
			Str("amount", ext.Amount.String()).
			Msg("payment authorization failed, extension recorded as degraded")

		ext.Status = model.StatusPaymentDegraded
		ext.PaymentReference = placeholderReferencePrefix + uuid.NewString()

		return
	}

	ext.Status = model.StatusPendingPayment
	ext.PaymentReference = auth.Reference
}

// movesPastNow reports whether the new departure leaves the guest within their stay at now.
func (s *serviceImpl) movesPastNow(prop propertyModel.Property, departure gModel.Date, now time.Time) (bool, error) {
	today, err := deadline.Today(now, prop.Timezone)
	if err != nil {
		log.Error().Err(err).Str("property_id", prop.ID).Msg("property timezone is invalid")

		return false, failure.Unprocessable(err) // nolint:wrapcheck
	}

	if departure.After(today) {
		return true, nil
	}

	if !departure.Equal(today) {
		return false, nil
	}

	fallback := s.cfg.Overstay.DefaultCheckoutTime

	deadlineAt, err := deadline.At(departure, prop.Checkout(fallback), prop.Timezone, fallback)
	if err != nil {
		log.Error().Err(err).Str("property_id", prop.ID).Msg("property checkout configuration is invalid")

		return false, failure.Unprocessable(err) // nolint:wrapcheck
	}

	return now.Before(deadlineAt), nil
}

func (s *serviceImpl) insertTx(ctx context.Context, tx *sqlx.Tx, ext model.Extension) error {
	err := s.repo.InsertTx(ctx, tx, ext)
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
		return failure.Conflict(duplicateKeyMsg) // nolint:wrapcheck
	}

	log.Error().Err(err).Str("reservation_id", ext.ReservationID).Msg("failed to insert extension")

	return fmt.Errorf("failed to insert extension: %w", err)
}

func (s *serviceImpl) maxNights() int {
	if s.cfg.Overstay.MaxExtensionNights > 0 {
		return s.cfg.Overstay.MaxExtensionNights
	}

	return defaultMaxNights
}

func (s *serviceImpl) defaultRate() decimal.Decimal {
	rate, err := decimal.NewFromString(s.cfg.Overstay.DefaultNightlyRate)
	if err != nil {
		return decimal.RequireFromString(defaultNightlyRateText)
	}

	return rate
}
