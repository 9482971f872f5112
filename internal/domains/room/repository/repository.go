package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	reservationModel "frontdesk/internal/domains/reservation/model"
	"frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
)

type Room interface {
	GetTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	ListAvailable(ctx context.Context, query model.AvailabilityQuery) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) ListAvailable(ctx context.Context, query model.AvailabilityQuery) ([]model.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ListAvailable")
	defer scope.End()

	where, args := r.BuildWhereClause(ctx, availabilityFilter(query))

	args["window_start"] = query.Start
	args["window_end"] = query.End
	args["limit"] = query.Limit

	for idx, status := range reservationModel.BlockingStatuses {
		args[fmt.Sprintf("blocking_%d", idx)] = status
	}

	stmt := fmt.Sprintf("SELECT %s FROM %s %s ORDER BY %s.%s ASC, %s.%s ASC LIMIT :limit",
		r.Columns(ctx), model.TableName, where,
		model.TableName, model.FieldNumber, model.TableName, model.FieldID)

	res, err := r.Select(ctx, stmt, args)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}

	return res, nil
}

func availabilityFilter(query model.AvailabilityQuery) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{Field: model.FieldPropertyID, Value: query.PropertyID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldOutOfService, Value: false, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Value: blockingSubquery(), Operator: gDto.FilterPlainQuery},
	}

	if query.Category != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldCategory, Value: query.Category, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if query.ExcludeRoomID != constant.Empty {
		filters = append(filters, gDto.Filter{ArgName: "exclude_room_id", Field: model.FieldID, Value: query.ExcludeRoomID, Operator: gDto.FilterOperatorNotEq, Table: model.TableName})
	}

	return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
}

func blockingSubquery() string {
	named := make([]string, len(reservationModel.BlockingStatuses))
	for idx := range reservationModel.BlockingStatuses {
		named[idx] = fmt.Sprintf(":blocking_%d", idx)
	}

	res := reservationModel.TableName

	return fmt.Sprintf("NOT EXISTS (SELECT 1 FROM %s WHERE %s.%s = %s.%s AND %s.%s IN (%s) AND %s.%s < :window_end AND %s.%s > :window_start)",
		res,
		res, reservationModel.FieldRoomID, model.TableName, model.FieldID,
		res, reservationModel.FieldStatus, strings.Join(named, ", "),
		res, reservationModel.FieldArrivalDate,
		res, reservationModel.FieldDepartureDate)
}
