package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/repository"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
)

const (
	defaultPreferredLimit = 3
	defaultTotalLimit     = 5
)

type Room interface {
	Suggest(ctx context.Context, req dto.SuggestRoomsRequest) ([]dto.RoomSuggestion, error)
}

type serviceImpl struct {
	repo repository.Room
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Room, cfg *config.Config, otel otel.Otel) Room {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// Suggest lists free rooms for [Start, End), preferred category first. The second, category-blind
// pass only runs when the first one leaves the preferred cap unfilled.
func (s *serviceImpl) Suggest(ctx context.Context, req dto.SuggestRoomsRequest) (res []dto.RoomSuggestion, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Suggest")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.Start.IsZero() || req.End.IsZero() || !req.Start.Before(req.End) {
		return nil, failure.BadRequestFromString("start_date must be before end_date") // nolint:wrapcheck
	}

	preferredLimit, totalLimit := s.limits()

	query := model.AvailabilityQuery{
		PropertyID:    req.PropertyID,
		Start:         req.Start,
		End:           req.End,
		ExcludeRoomID: req.ExcludeRoomID,
	}

	res = []dto.RoomSuggestion{}
	seen := map[string]struct{}{}

	if req.Category != constant.Empty {
		query.Category = req.Category
		query.Limit = preferredLimit

		rooms, err := s.repo.ListAvailable(ctx, query)
		if err != nil {
			log.Error().Err(err).Str("property_id", req.PropertyID).Msg("failed to list preferred rooms")

			return nil, fmt.Errorf("failed to list preferred rooms: %w", err)
		}

		res = appendSuggestions(res, seen, rooms, req.Category, preferredLimit)
		if len(res) >= preferredLimit {
			return res, nil
		}
	}

	query.Category = constant.Empty
	query.Limit = totalLimit + len(res)

	rooms, err := s.repo.ListAvailable(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("property_id", req.PropertyID).Msg("failed to list available rooms")

		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}

	return appendSuggestions(res, seen, rooms, req.Category, totalLimit), nil
}

func (s *serviceImpl) limits() (preferred, total int) {
	preferred, total = defaultPreferredLimit, defaultTotalLimit

	if s.cfg != nil {
		if s.cfg.Overstay.Suggestion.PreferredLimit > 0 {
			preferred = s.cfg.Overstay.Suggestion.PreferredLimit
		}

		if s.cfg.Overstay.Suggestion.TotalLimit > 0 {
			total = s.cfg.Overstay.Suggestion.TotalLimit
		}
	}

	if total < preferred {
		total = preferred
	}

	return preferred, total
}

func appendSuggestions(res []dto.RoomSuggestion, seen map[string]struct{}, rooms []model.Room, category string, limit int) []dto.RoomSuggestion {
	for _, room := range rooms {
		if len(res) >= limit {
			break
		}

		if _, ok := seen[room.ID]; ok {
			continue
		}

		seen[room.ID] = struct{}{}

		var suggestion dto.RoomSuggestion
		suggestion.FromModel(room, category)

		res = append(res, suggestion)
	}

	return res
}
