package extension

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/extension/model/dto"
	"frontdesk/internal/domains/extension/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
)

const (
	conflictMessage = "room is booked by another reservation for the requested dates"
)

type Handler struct {
	service service.Extension
	otel    otel.Otel
}

func New(service service.Extension, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/properties/{property_id}/reservations/{reservation_id}/extend", handler.Extend)
}

// Extend pushes a reservation's departure date forward.
// @Summary Extend a stay
// @Description Prices and records the extension. Replaying the same idempotency key returns the first result.
// @Tags Extension
// @Accept json
// @Produce json
// @Param property_id path string true "Property ID"
// @Param reservation_id path string true "Reservation ID"
// @Param Idempotency-Key header string false "Idempotency key, the body field takes precedence"
// @Param request body dto.ExtendBody true "New departure date or nights to add"
// @Success 200 {object} response.Data[dto.ExtendResult]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.ErrorData[dto.ConflictDetail]
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{property_id}/reservations/{reservation_id}/extend [post]
// @Security BearerAuth
func (handler *Handler) Extend(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Extend")
	defer scope.End()

	var body dto.ExtendBody
	if err := validator.Validate(r.Body, &body); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	req := body.ToRequest(
		chi.URLParam(r, constant.RequestParamPropertyID),
		chi.URLParam(r, constant.RequestParamReservationID),
		user,
		r.Header.Get(constant.RequestHeaderIdempotencyKey),
		time.Time{},
	)

	outcome, err := handler.service.Extend(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("reservation_id", req.ReservationID).Msg("failed to extend reservation")

		response.WithError(w, err)

		return
	}

	switch outcome.Kind {
	case dto.OutcomeInvalid:
		scope.AddEvent("Extension rejected: " + outcome.Reason)

		response.WithError(w, failure.BadRequestFromString(outcome.Reason))
	case dto.OutcomeConflict:
		scope.AddEvent("Extension conflicts with another reservation")

		response.WithErrorData(w, http.StatusConflict, conflictMessage, outcome.Conflict)
	default:
		if outcome.Replayed {
			scope.AddEvent("Extension replayed for key " + req.IdempotencyKey)
		} else {
			scope.AddEvent("Extension recorded by user " + user)
		}

		response.WithJSON(w, http.StatusOK, outcome.Result)
	}
}
