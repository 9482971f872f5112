package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/incident/model"
	"frontdesk/internal/domains/incident/model/dto"
	"frontdesk/internal/domains/incident/repository"
	"frontdesk/internal/domains/overstay/deadline"
	propertyModel "frontdesk/internal/domains/property/model"
	propertyService "frontdesk/internal/domains/property/service"
	reservationModel "frontdesk/internal/domains/reservation/model"
	reservationRepo "frontdesk/internal/domains/reservation/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/realtime"
	gRepo "frontdesk/shared/repository"
)

const (
	defaultSortBy     = model.FieldDetectedAt
	checkedOutNote    = "guest checked out"
	activeIncidentMsg = "reservation already has an active overstay incident"
)

var sortableFields = []string{
	model.FieldDetectedAt,
	model.FieldDeadlineAt,
	model.FieldSeverity,
	model.FieldStatus,
	constant.FieldCreatedAt,
}

type Incident interface {
	Acknowledge(ctx context.Context, req dto.AcknowledgeRequest) (dto.IncidentResponse, error)
	ActiveTx(ctx context.Context, tx *sqlx.Tx, reservationID string) (model.Incident, error)
	OpenTx(ctx context.Context, tx *sqlx.Tx, prop propertyModel.Property, res reservationModel.Reservation, actor string, now time.Time) (model.Incident, error)
	ResolveTx(ctx context.Context, tx *sqlx.Tx, inc *model.Incident, actor, note string, now time.Time) error
	ResolveCheckedOut(ctx context.Context, req dto.ResolveCheckedOutRequest) (bool, error)
	List(ctx context.Context, req dto.ListIncidentsRequest) (dto.GetIncidentsResponse, error)
}

type serviceImpl struct {
	repo        repository.Incident
	reservation reservationRepo.Reservation
	room        roomRepo.Room
	property    propertyService.Property
	transactor  gRepo.Transactor
	publisher   realtime.Publisher
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Incident,
	reservation reservationRepo.Reservation,
	room roomRepo.Room,
	property propertyService.Property,
	transactor gRepo.Transactor,
	publisher realtime.Publisher,
	cfg *config.Config,
	otel otel.Otel,
) Incident {
	return &serviceImpl{
		repo:        repo,
		reservation: reservation,
		room:        room,
		property:    property,
		transactor:  transactor,
		publisher:   publisher,
		cfg:         cfg,
		otel:        otel,
	}
}

// Acknowledge acknowledges or dismisses the reservation's active incident under the reservation
// lock. When there is none yet, one is built and stored directly in its post-transition status.
func (s *serviceImpl) Acknowledge(ctx context.Context, req dto.AcknowledgeRequest) (res dto.IncidentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".incident.Acknowledge")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := actorOrSystem(req.Actor)
	now := nowOr(req.Now)

	prop, err := s.property.Get(ctx, req.PropertyID)
	if err != nil {
		return res, fmt.Errorf("failed to get property: %w", err)
	}

	var inc model.Incident

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		reservation, err := s.reservation.LockTx(ctx, tx, prop.ID, req.ReservationID, false)
		if err != nil {
			return fmt.Errorf("failed to lock reservation: %w", err)
		}

		if reservation.ID == constant.Empty {
			return failure.NotFound("reservation not found") // nolint:wrapcheck
		}

		inc, err = s.ActiveTx(ctx, tx, reservation.ID)
		if err != nil {
			return err
		}

		created := inc.ID == constant.Empty
		if created {
			inc, err = s.build(ctx, tx, prop, reservation, actor, now)
			if err != nil {
				return err
			}
		}

		if req.Dismiss {
			err = inc.Dismiss(actor, req.Note, now)
		} else {
			err = inc.Acknowledge(actor, req.Note, now)
		}

		if err != nil {
			return failure.Conflict(err.Error()) // nolint:wrapcheck
		}

		if created {
			return s.insertTx(ctx, tx, inc)
		}

		err = s.repo.UpdateTx(ctx, tx, inc.TransitionFields(), shared.FilterByID(inc.ID, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Str("incident_id", inc.ID).Msg("failed to update incident")

			return fmt.Errorf("failed to update incident: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	eventType := realtime.EventOverstayAcknowledged
	if req.Dismiss {
		eventType = realtime.EventOverstayDismissed
	}

	s.notify(ctx, prop.ID, dto.NewIncidentEvent(eventType, inc, actor, now))

	res.FromModel(inc)

	return res, nil
}

func (s *serviceImpl) ActiveTx(ctx context.Context, tx *sqlx.Tx, reservationID string) (res model.Incident, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".incident.ActiveTx")
	defer scope.End()
	defer scope.TraceIfError(&err)

	res, err = s.repo.GetActiveTx(ctx, tx, reservationID)
	if err != nil {
		log.Error().Err(err).Str("reservation_id", reservationID).Msg("failed to get active incident")

		return res, fmt.Errorf("failed to get active incident: %w", err)
	}

	return res, nil
}

// OpenTx stores a new OPEN incident for a reservation the caller already holds locked.
func (s *serviceImpl) OpenTx(ctx context.Context, tx *sqlx.Tx, prop propertyModel.Property, res reservationModel.Reservation, actor string, now time.Time) (inc model.Incident, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".incident.OpenTx")
	defer scope.End()
	defer scope.TraceIfError(&err)

	inc, err = s.build(ctx, tx, prop, res, actorOrSystem(actor), now)
	if err != nil {
		return inc, err
	}

	err = s.insertTx(ctx, tx, inc)
	if err != nil {
		return model.Incident{}, err
	}

	return inc, nil
}

func (s *serviceImpl) ResolveTx(ctx context.Context, tx *sqlx.Tx, inc *model.Incident, actor, note string, now time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".incident.ResolveTx")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = inc.Resolve(actorOrSystem(actor), note, now); err != nil {
		return failure.Conflict(err.Error()) // nolint:wrapcheck
	}

	err = s.repo.UpdateTx(ctx, tx, inc.TransitionFields(), shared.FilterByID(inc.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("incident_id", inc.ID).Msg("failed to resolve incident")

		return fmt.Errorf("failed to resolve incident: %w", err)
	}

	return nil
}

// ResolveCheckedOut closes the active incident of a reservation whose guest has left the room.
// It reports false when there was nothing to resolve.
func (s *serviceImpl) ResolveCheckedOut(ctx context.Context, req dto.ResolveCheckedOutRequest) (resolved bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".incident.ResolveCheckedOut")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := actorOrSystem(req.Actor)
	now := nowOr(req.Now)

	var inc model.Incident

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		reservation, err := s.reservation.LockTx(ctx, tx, req.PropertyID, req.ReservationID, false)
		if err != nil {
			return fmt.Errorf("failed to lock reservation: %w", err)
		}

		if reservation.ID == constant.Empty || reservation.IsOccupying() {
			return nil
		}

		inc, err = s.ActiveTx(ctx, tx, reservation.ID)
		if err != nil {
			return err
		}

		if inc.ID == constant.Empty {
			return nil
		}

		if err = s.ResolveTx(ctx, tx, &inc, actor, checkedOutNote, now); err != nil {
			return err
		}

		resolved = true

		return nil
	})
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	if resolved {
		s.notify(ctx, req.PropertyID, dto.NewIncidentEvent(realtime.EventOverstayResolved, inc, actor, now))
	}

	return resolved, nil
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListIncidentsRequest) (res dto.GetIncidentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".incident.List")
	defer scope.End()
	defer scope.TraceIfError(&err)

	params := req.Params.Sorted(model.TableName, defaultSortBy, sortableFields...)
	filter := req.Filter()

	incidents, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("property_id", req.PropertyID).Msg("failed to list incidents")

		return res, fmt.Errorf("failed to list incidents: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("property_id", req.PropertyID).Msg("failed to count incidents")

		return res, fmt.Errorf("failed to count incidents: %w", err)
	}

	res.FromModels(incidents, total, req.Params)

	return res, nil
}

func (s *serviceImpl) build(ctx context.Context, tx *sqlx.Tx, prop propertyModel.Property, res reservationModel.Reservation, actor string, now time.Time) (model.Incident, error) {
	deadlineAt, err := deadline.For(prop, res, s.cfg.Overstay.DefaultCheckoutTime)
	if err != nil {
		log.Error().Err(err).Str("property_id", prop.ID).Msg("property checkout configuration is invalid")

		return model.Incident{}, failure.Unprocessable(err) // nolint:wrapcheck
	}

	today, err := deadline.Today(now, prop.Timezone)
	if err != nil {
		return model.Incident{}, failure.Unprocessable(err) // nolint:wrapcheck
	}

	snapshot := model.Snapshot{GuestName: res.GuestName}
	incoming := false

	if roomID := res.Room(); roomID != constant.Empty {
		room, err := s.room.GetTx(ctx, tx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			log.Error().Err(err).Str("room_id", roomID).Msg("failed to get room")

			return model.Incident{}, fmt.Errorf("failed to get room: %w", err)
		}

		snapshot.RoomNumber = room.Number
		snapshot.Category = room.Category

		incoming, err = s.reservation.HasArrivalTx(ctx, tx, roomID, today, res.ID)
		if err != nil {
			log.Error().Err(err).Str("room_id", roomID).Msg("failed to check incoming arrival")

			return model.Incident{}, fmt.Errorf("failed to check incoming arrival: %w", err)
		}
	}

	grace := time.Duration(s.cfg.Overstay.GraceMinutes) * time.Minute

	inc := model.Incident{
		ID:                    uuid.NewString(),
		PropertyID:            prop.ID,
		ReservationID:         res.ID,
		RoomID:                res.RoomID,
		ExpectedDepartureDate: res.DepartureDate,
		DeadlineAt:            deadlineAt,
		DetectedAt:            now,
		Status:                model.StatusOpen,
		Severity:              deadline.Severity(now, deadlineAt, grace, incoming),
		Context:               gModel.NewJSON(snapshot),
	}
	inc.Stamp(actor, now)

	return inc, nil
}

func (s *serviceImpl) insertTx(ctx context.Context, tx *sqlx.Tx, inc model.Incident) error {
	err := s.repo.InsertTx(ctx, tx, inc)
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
		return failure.Conflict(activeIncidentMsg) // nolint:wrapcheck
	}

	log.Error().Err(err).Str("reservation_id", inc.ReservationID).Msg("failed to insert incident")

	return fmt.Errorf("failed to insert incident: %w", err)
}

// notify publishes after commit. A failed publish is logged and never undoes the change.
func (s *serviceImpl) notify(ctx context.Context, propertyID string, events ...realtime.Event) {
	if err := s.publisher.Publish(ctx, propertyID, events...); err != nil {
		log.Warn().Err(err).Str("property_id", propertyID).Msg("failed to notify staff")
	}
}

func actorOrSystem(actor string) string {
	if actor == constant.Empty {
		return constant.ActorSystem
	}

	return actor
}

func nowOr(now time.Time) time.Time {
	if now.IsZero() {
		return time.Now().UTC()
	}

	return now.UTC()
}
