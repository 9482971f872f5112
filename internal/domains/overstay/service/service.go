package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/otel"
	incidentModel "frontdesk/internal/domains/incident/model"
	incidentDto "frontdesk/internal/domains/incident/model/dto"
	incidentService "frontdesk/internal/domains/incident/service"
	"frontdesk/internal/domains/overstay/deadline"
	propertyModel "frontdesk/internal/domains/property/model"
	propertyService "frontdesk/internal/domains/property/service"
	reservationModel "frontdesk/internal/domains/reservation/model"
	reservationRepo "frontdesk/internal/domains/reservation/repository"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/realtime"
	gRepo "frontdesk/shared/repository"
)

var errNothingToFlag = errors.New("nothing to flag")

type Detector interface {
	Detect(ctx context.Context, propertyID string, now time.Time) (int, error)
}

type detectorImpl struct {
	property    propertyService.Property
	reservation reservationRepo.Reservation
	incident    incidentService.Incident
	transactor  gRepo.Transactor
	publisher   realtime.Publisher
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	property propertyService.Property,
	reservation reservationRepo.Reservation,
	incident incidentService.Incident,
	transactor gRepo.Transactor,
	publisher realtime.Publisher,
	cfg *config.Config,
	otel otel.Otel,
) Detector {
	return &detectorImpl{
		property:    property,
		reservation: reservation,
		incident:    incident,
		transactor:  transactor,
		publisher:   publisher,
		cfg:         cfg,
		otel:        otel,
	}
}

// Detect sweeps one property and returns how many incidents it opened. Each candidate gets its
// own transaction and a skip-locked row lock, so overlapping sweeps never block on or double
// flag a reservation. A failing candidate is logged and skipped.
func (d *detectorImpl) Detect(ctx context.Context, propertyID string, now time.Time) (created int, err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".overstay.Detect")
	defer scope.End()
	defer scope.TraceIfError(&err)

	now = now.UTC()

	prop, err := d.property.Get(ctx, propertyID)
	if err != nil {
		return 0, fmt.Errorf("failed to get property: %w", err)
	}

	today, err := deadline.Today(now, prop.Timezone)
	if err != nil {
		log.Error().Err(err).Str("property_id", prop.ID).Msg("property timezone is not configured")

		return 0, failure.Unprocessable(err) // nolint:wrapcheck
	}

	candidates, err := d.reservation.ListOccupyingDue(ctx, prop.ID, today)
	if err != nil {
		log.Error().Err(err).Str("property_id", prop.ID).Msg("failed to list overstay candidates")

		return 0, fmt.Errorf("failed to list overstay candidates: %w", err)
	}

	for _, candidate := range candidates {
		if ctx.Err() != nil {
			return created, fmt.Errorf("sweep interrupted: %w", ctx.Err())
		}

		inc, err := d.flag(ctx, prop, candidate.ID, now)
		if errors.Is(err, errNothingToFlag) {
			continue
		}

		if err != nil {
			log.Error().Err(err).
				Str("property_id", prop.ID).
				Str("reservation_id", candidate.ID).
				Msg("failed to check reservation for overstay")

			continue
		}

		created++

		event := incidentDto.NewIncidentEvent(realtime.EventOverstayFlagged, inc, constant.ActorSystem, now)
		if err := d.publisher.Publish(ctx, prop.ID, event); err != nil {
			log.Warn().Err(err).Str("reservation_id", candidate.ID).Msg("failed to notify staff of overstay")
		}
	}

	log.Info().
		Str("property_id", prop.ID).
		Int("candidates", len(candidates)).
		Int("created", created).
		Msg("overstay sweep finished")

	return created, nil
}

// flag opens an incident for one reservation, or returns errNothingToFlag.
func (d *detectorImpl) flag(ctx context.Context, prop propertyModel.Property, reservationID string, now time.Time) (incidentModel.Incident, error) {
	var inc incidentModel.Incident

	err := d.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		res, err := d.reservation.LockTx(ctx, tx, prop.ID, reservationID, true)
		if err != nil {
			return err //nolint:wrapcheck
		}

		// An empty row is missing or held by a concurrent sweep or extension.
		if res.ID == constant.Empty || !res.IsOccupying() {
			return errNothingToFlag
		}

		due, err := d.due(prop, res, now)
		if err != nil {
			return err
		}

		if !due {
			return errNothingToFlag
		}

		active, err := d.incident.ActiveTx(ctx, tx, res.ID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if active.ID != constant.Empty {
			return errNothingToFlag
		}

		inc, err = d.incident.OpenTx(ctx, tx, prop, res, constant.ActorSystem, now)

		return err //nolint:wrapcheck
	})

	return inc, err //nolint:wrapcheck
}

func (d *detectorImpl) due(prop propertyModel.Property, res reservationModel.Reservation, now time.Time) (bool, error) {
	cutoff, err := deadline.For(prop, res, d.cfg.Overstay.DefaultCheckoutTime)
	if err != nil {
		return false, fmt.Errorf("failed to compute deadline: %w", err)
	}

	return !now.Before(cutoff), nil
}
