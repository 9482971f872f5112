package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/extension/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
)

type Extension interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Extension) error
	// GetByKeyTx returns the zero Extension when nothing was recorded under the key.
	GetByKeyTx(ctx context.Context, tx *sqlx.Tx, reservationID, key string) (model.Extension, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Extension]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Extension {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Extension](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) GetByKeyTx(ctx context.Context, tx *sqlx.Tx, reservationID, key string) (model.Extension, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".extension.GetByKeyTx")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldReservationID, Value: reservationID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldIdempotencyKey, Value: key, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	res, err := r.GetTx(ctx, tx, filter)
	if err != nil {
		scope.TraceError(err)

		return res, fmt.Errorf("failed to get extension by idempotency key: %w", err)
	}

	return res, nil
}
