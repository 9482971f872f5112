package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/reservation/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	gRepo "frontdesk/shared/repository"
)

type Reservation interface {
	// LockTx returns the zero Reservation when the row is missing, or, with skipLocked, held elsewhere.
	LockTx(ctx context.Context, tx *sqlx.Tx, propertyID, id string, skipLocked bool) (model.Reservation, error)
	ListOccupyingDue(ctx context.Context, propertyID string, onOrBefore gModel.Date) ([]model.Reservation, error)
	ListOverlappingTx(ctx context.Context, tx *sqlx.Tx, roomID string, start, end gModel.Date, excludeID string) ([]model.Reservation, error)
	HasArrivalTx(ctx context.Context, tx *sqlx.Tx, roomID string, onOrBefore gModel.Date, excludeID string) (bool, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) LockTx(ctx context.Context, tx *sqlx.Tx, propertyID, id string, skipLocked bool) (model.Reservation, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.LockTx")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldPropertyID, Value: propertyID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	res, err := r.GetForUpdateTx(ctx, tx, filter, skipLocked)
	if err != nil {
		scope.TraceError(err)

		return res, fmt.Errorf("failed to lock reservation: %w", err)
	}

	return res, nil
}

// ListOccupyingDue is the sweep pre-filter: checked in, not checked out, departing on or before the given date.
func (r *repositoryImpl) ListOccupyingDue(ctx context.Context, propertyID string, onOrBefore gModel.Date) ([]model.Reservation, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.ListOccupyingDue")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldPropertyID, Value: propertyID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldArrivalAt, Operator: gDto.FilterIsNotNull, Table: model.TableName},
			gDto.Filter{Field: model.FieldDepartureAt, Operator: gDto.FilterIsNull, Table: model.TableName},
			gDto.Filter{Field: model.FieldDepartureDate, Value: onOrBefore, Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
		},
	}

	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldDepartureDate, SortDir: gDto.SortDirAsc}

	res, err := r.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list occupying reservations: %w", err)
	}

	return res, nil
}

// ListOverlappingTx returns room-holding reservations whose [arrival, departure) intersects [start, end).
func (r *repositoryImpl) ListOverlappingTx(ctx context.Context, tx *sqlx.Tx, roomID string, start, end gModel.Date, excludeID string) ([]model.Reservation, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.ListOverlappingTx")
	defer scope.End()

	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldArrivalDate, SortDir: gDto.SortDirAsc}

	res, err := r.GetAllTx(ctx, tx, params, overlapFilter(roomID, start, end, excludeID))
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list overlapping reservations: %w", err)
	}

	return res, nil
}

// overlapFilter is half-open on both sides, so a stay arriving on end or leaving on start does not overlap.
func overlapFilter(roomID string, start, end gModel.Date, excludeID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRoomID, Value: roomID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.BlockingStatuses, Operator: gDto.FilterOperatorIn, Table: model.TableName},
			gDto.Filter{ArgName: "window_end", Field: model.FieldArrivalDate, Value: end, Operator: gDto.FilterOperatorLess, Table: model.TableName},
			gDto.Filter{ArgName: "window_start", Field: model.FieldDepartureDate, Value: start, Operator: gDto.FilterOperatorGreater, Table: model.TableName},
			gDto.Filter{Field: model.FieldID, Value: excludeID, Operator: gDto.FilterOperatorNotEq, Table: model.TableName},
		},
	}
}

// HasArrivalTx reports whether another confirmed guest is due into the room on or before the given date
// and has not yet left it.
func (r *repositoryImpl) HasArrivalTx(ctx context.Context, tx *sqlx.Tx, roomID string, onOrBefore gModel.Date, excludeID string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.HasArrivalTx")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRoomID, Value: roomID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusConfirmed, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: "arrival_until", Field: model.FieldArrivalDate, Value: onOrBefore, Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
			gDto.Filter{ArgName: "departure_after", Field: model.FieldDepartureDate, Value: onOrBefore, Operator: gDto.FilterOperatorGreater, Table: model.TableName},
			gDto.Filter{Field: model.FieldID, Value: excludeID, Operator: gDto.FilterOperatorNotEq, Table: model.TableName},
		},
	}

	exist, err := r.ExistTx(ctx, tx, filter)
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check incoming arrival: %w", err)
	}

	return exist, nil
}
