package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/incident/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
)

type Incident interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Incident) error
	// GetActiveTx returns the zero Incident when the reservation has no OPEN or ACKED incident.
	GetActiveTx(ctx context.Context, tx *sqlx.Tx, reservationID string) (model.Incident, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Incident, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Incident]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Incident {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Incident](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) GetActiveTx(ctx context.Context, tx *sqlx.Tx, reservationID string) (model.Incident, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".incident.GetActiveTx")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldReservationID, Value: reservationID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.ActiveStatuses, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		},
	}

	res, err := r.GetTx(ctx, tx, filter)
	if err != nil {
		scope.TraceError(err)

		return res, fmt.Errorf("failed to get active incident: %w", err)
	}

	return res, nil
}
