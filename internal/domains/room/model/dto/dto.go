package dto

import (
	"net/http"

	"frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
	gModel "frontdesk/shared/model"
)

type SuggestRoomsRequest struct {
	PropertyID    string
	Start         gModel.Date
	End           gModel.Date
	Category      string
	ExcludeRoomID string
}

// SuggestRoomsQuery is the query string form of SuggestRoomsRequest.
type SuggestRoomsQuery struct {
	StartDate string `json:"start_date" validate:"required,date"`
	EndDate   string `json:"end_date"   validate:"required,date"`
	Category  string `json:"category"   validate:"omitempty,max=50"`
}

func (q *SuggestRoomsQuery) FromRequest(r *http.Request) {
	values := r.URL.Query()

	q.StartDate = values.Get(constant.RequestParamStartDate)
	q.EndDate = values.Get(constant.RequestParamEndDate)
	q.Category = values.Get(constant.RequestParamCategory)
}

// ToRequest assumes the query has already been validated.
func (q *SuggestRoomsQuery) ToRequest(propertyID string) SuggestRoomsRequest {
	start, _ := gModel.ParseDate(q.StartDate)
	end, _ := gModel.ParseDate(q.EndDate)

	return SuggestRoomsRequest{
		PropertyID: propertyID,
		Start:      start,
		End:        end,
		Category:   q.Category,
	}
}

type RoomSuggestion struct {
	RoomID    string `json:"room_id"`
	Number    string `json:"number"`
	Category  string `json:"category"`
	Preferred bool   `json:"preferred"`
}

func (s *RoomSuggestion) FromModel(m model.Room, preferredCategory string) {
	s.RoomID = m.ID
	s.Number = m.Number
	s.Category = m.Category
	s.Preferred = preferredCategory != "" && m.Category == preferredCategory
}
