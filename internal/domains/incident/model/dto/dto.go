package dto

import (
	"net/http"
	"time"

	"frontdesk/internal/domains/incident/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/realtime"
)

type AcknowledgeRequest struct {
	PropertyID    string
	ReservationID string
	Actor         string
	Note          string
	Dismiss       bool
	Now           time.Time
}

// AcknowledgeBody is the staff request body for acknowledge and dismiss.
type AcknowledgeBody struct {
	Note    string `json:"note"    validate:"omitempty,max=1000"`
	Dismiss bool   `json:"dismiss"`
}

func (b *AcknowledgeBody) ToRequest(propertyID, reservationID, actor string, now time.Time) AcknowledgeRequest {
	return AcknowledgeRequest{
		PropertyID:    propertyID,
		ReservationID: reservationID,
		Actor:         actor,
		Note:          b.Note,
		Dismiss:       b.Dismiss,
		Now:           now,
	}
}

type ResolveCheckedOutRequest struct {
	PropertyID    string    `json:"property_id"    validate:"required"`
	ReservationID string    `json:"reservation_id" validate:"required"`
	Actor         string    `json:"actor"`
	Now           time.Time `json:"-"`
}

type ListIncidentsRequest struct {
	PropertyID string
	Status     string `validate:"omitempty,oneof=OPEN ACKED DISMISSED RESOLVED"`
	Params     gDto.QueryParams
}

func (l *ListIncidentsRequest) FromRequest(r *http.Request, propertyID string) {
	l.PropertyID = propertyID
	l.Status = r.URL.Query().Get(constant.RequestParamStatus)
	l.Params.FromRequest(r, true)
}

func (l *ListIncidentsRequest) Filter() gDto.FilterGroup {
	filters := []any{
		gDto.Filter{Field: model.FieldPropertyID, Value: l.PropertyID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	}

	if l.Status != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldStatus, Value: l.Status, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
}

type IncidentResponse struct {
	ID                    string         `json:"id"`
	PropertyID            string         `json:"property_id"`
	ReservationID         string         `json:"reservation_id"`
	RoomID                *string        `json:"room_id"`
	ExpectedDepartureDate gModel.Date    `json:"expected_departure_date"`
	DeadlineAt            time.Time      `json:"deadline_at"`
	DetectedAt            time.Time      `json:"detected_at"`
	Status                string         `json:"status"`
	Severity              string         `json:"severity"`
	AckedBy               *string        `json:"acked_by"`
	AckNote               *string        `json:"ack_note"`
	AckedAt               *time.Time     `json:"acked_at"`
	DismissedBy           *string        `json:"dismissed_by"`
	DismissReason         *string        `json:"dismiss_reason"`
	DismissedAt           *time.Time     `json:"dismissed_at"`
	ResolvedBy            *string        `json:"resolved_by"`
	ResolutionNote        *string        `json:"resolution_note"`
	ResolvedAt            *time.Time     `json:"resolved_at"`
	Context               model.Snapshot `json:"context"`
	AllowedActions        []string       `json:"allowed_actions"`
	gDto.Metadata
}

func (i *IncidentResponse) FromModel(m model.Incident) {
	i.ID = m.ID
	i.PropertyID = m.PropertyID
	i.ReservationID = m.ReservationID
	i.RoomID = m.RoomID
	i.ExpectedDepartureDate = m.ExpectedDepartureDate
	i.DeadlineAt = m.DeadlineAt.UTC()
	i.DetectedAt = m.DetectedAt.UTC()
	i.Status = m.Status
	i.Severity = m.Severity
	i.AckedBy = m.AckedBy
	i.AckNote = m.AckNote
	i.AckedAt = m.AckedAt
	i.DismissedBy = m.DismissedBy
	i.DismissReason = m.DismissReason
	i.DismissedAt = m.DismissedAt
	i.ResolvedBy = m.ResolvedBy
	i.ResolutionNote = m.ResolutionNote
	i.ResolvedAt = m.ResolvedAt
	i.Context = m.Context.V
	i.AllowedActions = m.AllowedActions()
	i.Metadata.FromModel(m.Metadata)
}

type GetIncidentsResponse struct {
	Incidents  []IncidentResponse `json:"incidents"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPage  int                `json:"total_page"`
	TotalCount int                `json:"total_count"`
}

func (g *GetIncidentsResponse) FromModels(models []model.Incident, total int, params gDto.QueryParams) {
	g.Incidents = make([]IncidentResponse, 0, len(models))

	for _, m := range models {
		var res IncidentResponse
		res.FromModel(m)

		g.Incidents = append(g.Incidents, res)
	}

	g.Page = params.Page
	g.Limit = params.Limit
	g.TotalCount = total
	g.TotalPage = shared.CalculateTotalPage(total, params.Limit)
}

type IncidentEvent struct {
	Incident IncidentResponse `json:"incident"`
	Status   string           `json:"status"`
	Actor    string           `json:"actor"`
}

func NewIncidentEvent(eventType string, m model.Incident, actor string, now time.Time) realtime.Event {
	var res IncidentResponse
	res.FromModel(m)

	return realtime.NewEvent(eventType, IncidentEvent{Incident: res, Status: m.Status, Actor: actor}, now)
}
