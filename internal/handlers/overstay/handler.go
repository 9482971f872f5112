package overstay

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	incidentDto "frontdesk/internal/domains/incident/model/dto"
	incidentService "frontdesk/internal/domains/incident/service"
	"frontdesk/internal/domains/overstay/model/dto"
	"frontdesk/internal/domains/overstay/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
)

type Handler struct {
	detector service.Detector
	incident incidentService.Incident
	otel     otel.Otel
}

func New(detector service.Detector, incident incidentService.Incident, otel otel.Otel) Handler {
	return Handler{
		detector: detector,
		incident: incident,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/properties/{property_id}/overstays", handler.GetIncidents)
	router.Post("/properties/{property_id}/overstays/detect", handler.Detect)
	router.Post("/properties/{property_id}/reservations/{reservation_id}/overstay/acknowledge", handler.Acknowledge)
}

// Detect runs one overstay sweep for a property.
// @Summary Run an overstay sweep
// @Description Flag every occupied room past its checkout deadline. Safe to call repeatedly.
// @Tags Overstay
// @Produce json
// @Param property_id path string true "Property ID"
// @Param now query string false "Evaluation instant (RFC3339), defaults to the current time"
// @Success 200 {object} response.Data[dto.DetectResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{property_id}/overstays/detect [post]
// @Security ApiKeyAuth
func (handler *Handler) Detect(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Detect")
	defer scope.End()

	propertyID := chi.URLParam(r, constant.RequestParamPropertyID)
	req := dto.DetectRequest{Now: r.URL.Query().Get(constant.RequestParamNow)}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	now := req.Instant()

	created, err := handler.detector.Detect(ctx, propertyID, now)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("property_id", propertyID).Msg("failed to detect overstays")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Overstay sweep completed")

	response.WithJSON(w, http.StatusOK, dto.DetectResponse{PropertyID: propertyID, Created: created, Now: now})
}

// GetIncidents lists a property's overstay incidents.
// @Summary List overstay incidents
// @Tags Overstay
// @Produce json
// @Param property_id path string true "Property ID"
// @Param status query string false "OPEN, ACKED, DISMISSED or RESOLVED"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[incidentDto.GetIncidentsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{property_id}/overstays [get]
// @Security BearerAuth
func (handler *Handler) GetIncidents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetIncidents")
	defer scope.End()

	var req incidentDto.ListIncidentsRequest
	req.FromRequest(r, chi.URLParam(r, constant.RequestParamPropertyID))

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	incidents, err := handler.incident.List(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list incidents")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, incidents)
}

// Acknowledge acknowledges or dismisses the reservation's overstay.
// @Summary Acknowledge or dismiss an overstay
// @Description Creates the incident when the sweep has not flagged it yet.
// @Tags Overstay
// @Accept json
// @Produce json
// @Param property_id path string true "Property ID"
// @Param reservation_id path string true "Reservation ID"
// @Param request body incidentDto.AcknowledgeBody true "Acknowledgement"
// @Success 200 {object} response.Data[incidentDto.IncidentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{property_id}/reservations/{reservation_id}/overstay/acknowledge [post]
// @Security BearerAuth
func (handler *Handler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Acknowledge")
	defer scope.End()

	var body incidentDto.AcknowledgeBody
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
		time.Time{},
	)

	incident, err := handler.incident.Acknowledge(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("reservation_id", req.ReservationID).Msg("failed to acknowledge overstay")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Overstay " + incident.Status + " by user " + user)

	response.WithJSON(w, http.StatusOK, incident)
}
