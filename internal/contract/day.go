package contract

import (
	"time"

	"github.com/pbarbosa/vida/internal/domain"
)

// DayRequest asks for the fully laid-out agenda of a single calendar day.
type DayRequest struct {
	Date       time.Time
	OriginHour int
	IncludeAI  bool
	RefreshAI  bool
}

func NewDayRequest(date time.Time) DayRequest {
	return DayRequest{
		Date:       date,
		OriginHour: 7,
		IncludeAI:  true,
	}
}

type DayResponse struct {
	GeneratedAt time.Time
	Date        time.Time
	Items       []domain.TimeBoxedItem
	Layout      []domain.LayoutItem
	Highlights  []Highlight
	Suggestion  string
	AIWarning   string
}

type DayErrorCode string

const (
	DayErrInvalidOrigin DayErrorCode = "INVALID_ORIGIN_HOUR"
	DayErrStorage       DayErrorCode = "STORAGE"
	DayErrInternal      DayErrorCode = "INTERNAL_ERROR"
)

type DayError struct {
	Code    DayErrorCode
	Message string
}

func (e *DayError) Error() string {
	return string(e.Code) + ": " + e.Message
}
