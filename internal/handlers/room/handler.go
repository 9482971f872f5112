package room

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/properties/{property_id}/rooms/suggestions", handler.GetSuggestions)
}

// GetSuggestions lists rooms free for the whole interval.
// @Summary Suggest rooms
// @Description Rooms of the requested category come first.
// @Tags Room
// @Produce json
// @Param property_id path string true "Property ID"
// @Param start_date query string true "First night (YYYY-MM-DD)"
// @Param end_date query string true "Departure date (YYYY-MM-DD)"
// @Param category query string false "Preferred room category"
// @Success 200 {object} response.Data[[]dto.RoomSuggestion]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{property_id}/rooms/suggestions [get]
// @Security BearerAuth
func (handler *Handler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSuggestions")
	defer scope.End()

	var query dto.SuggestRoomsQuery
	query.FromRequest(r)

	if err := validator.ValidateStruct(&query); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	suggestions, err := handler.service.Suggest(ctx, query.ToRequest(chi.URLParam(r, constant.RequestParamPropertyID)))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to suggest rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms suggested")

	response.WithJSON(w, http.StatusOK, suggestions)
}
