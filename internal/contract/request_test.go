package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDayRequest_SetsDefaults(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	req := NewDayRequest(date)

	assert.Equal(t, date, req.Date)
	assert.Equal(t, 7, req.OriginHour)
	assert.True(t, req.IncludeAI)
	assert.False(t, req.RefreshAI)
}

func TestDayError_ErrorString(t *testing.T) {
	err := &DayError{
		Code:    DayErrInvalidOrigin,
		Message: "origin hour must be between 0 and 23",
	}
	assert.Equal(t, "INVALID_ORIGIN_HOUR: origin hour must be between 0 and 23", err.Error())
}
