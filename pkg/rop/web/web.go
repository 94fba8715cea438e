package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logging "github.com/ipfs/go-log/v2"

	"github.com/ib-77/outcome/pkg/rop"
)

var log = logging.Logger("rop/web")

// Problem is the JSON body written for a failed outcome.
type Problem struct {
	Code      string `json:"code"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// StatusMapper turns a failure into an HTTP status and the body to send.
type StatusMapper[E any] func(err E) (status int, problem Problem)

// ByCode builds a StatusMapper from an error code lookup table. Codes
// missing from statuses get fallback.
func ByCode[E any, C comparable](code func(err E) C, statuses map[C]int, fallback int,
	describe func(err E) Problem) StatusMapper[E] {

	return func(err E) (int, Problem) {
		status, ok := statuses[code(err)]
		if !ok {
			status = fallback
		}
		return status, describe(err)
	}
}

// Respond writes 200 with the payload as JSON, or the mapped failure.
func Respond[T, E any](c *gin.Context, r rop.Carrier[T, E], mapFailure StatusMapper[E]) {
	if data, ok := r.TryGetData(); ok {
		c.JSON(http.StatusOK, data)
		return
	}
	err, _ := r.TryGetError()
	abort(c, err, mapFailure)
}

// RespondStatus writes 204 on success, or the mapped failure.
func RespondStatus[E any](c *gin.Context, s rop.Failable[E], mapFailure StatusMapper[E]) {
	if err, failed := s.TryGetError(); failed {
		abort(c, err, mapFailure)
		return
	}
	c.Status(http.StatusNoContent)
}

func abort[E any](c *gin.Context, err E, mapFailure StatusMapper[E]) {
	status, problem := mapFailure(err)
	problem.RequestID = RequestIDFrom(c)

	if status >= http.StatusInternalServerError {
		log.Errorw("request failed", "status", status, "code", problem.Code,
			"request_id", problem.RequestID, "path", c.Request.URL.Path)
	} else {
		log.Debugw("request rejected", "status", status, "code", problem.Code,
			"request_id", problem.RequestID)
	}

	c.AbortWithStatusJSON(status, problem)
}
