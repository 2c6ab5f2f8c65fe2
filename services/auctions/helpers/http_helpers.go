package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"closed-auction-metrics/internal/auctionerrors"
	"closed-auction-metrics/utils"
)

// WindowQuery carries the parsed start/end/limit query parameters of a
// closed-auctions listing request.
type WindowQuery struct {
	Start *time.Time
	End   *time.Time
	Limit *int
}

// ParseWindowQuery reads the optional start, end and limit query parameters.
// Omitted bounds fall back to the wide-open defaults; a malformed value is a
// 400-class error naming the expected format.
func ParseWindowQuery(c *gin.Context) (WindowQuery, error) {
	q := WindowQuery{
		Start: &utils.MinQueryTime,
		End:   &utils.MaxQueryTime,
	}

	if raw := c.Query("start"); raw != "" {
		start, err := utils.ParseTimestamp(raw)
		if err != nil {
			return WindowQuery{}, fmt.Errorf("%w: start: %v", auctionerrors.ErrBadTimeFormat, err)
		}
		q.Start = &start
	}
	if raw := c.Query("end"); raw != "" {
		end, err := utils.ParseTimestamp(raw)
		if err != nil {
			return WindowQuery{}, fmt.Errorf("%w: end: %v", auctionerrors.ErrBadTimeFormat, err)
		}
		q.End = &end
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return WindowQuery{}, fmt.Errorf("%w: limit must be a non-negative integer", auctionerrors.ErrInvalidPayload)
		}
		q.Limit = &limit
	}
	return q, nil
}

// MapErrorToHTTP maps domain/service errors to an HTTP status and message.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrBadTimeFormat):
		return http.StatusBadRequest, fmt.Sprintf("incorrect time format, should be %s", utils.TimestampLayout)
	case errors.Is(err, auctionerrors.ErrInvalidPayload):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, auctionerrors.ErrVisualization):
		return http.StatusBadRequest, "failed to generate bid history graphic"
	case errors.Is(err, auctionerrors.ErrBackend):
		return http.StatusInternalServerError, "auction store unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess standardizes logging of successful handler operations.
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
