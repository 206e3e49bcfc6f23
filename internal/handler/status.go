package handler

import (
	"errors"
	"net/http"

	"contracting-cms/internal/service"
	"contracting-cms/pkg/response"

	"github.com/gin-gonic/gin"
)

func statusFor(err error, success int) int {
	switch {
	case err == nil:
		return success
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// writeResult answers a mutation with its action result.
func writeResult(c *gin.Context, res service.ActionResult, success int) {
	if err := res.Err(); err != nil {
		_ = c.Error(err)
	}
	c.JSON(statusFor(res.Err(), success), res)
}

func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, service.ActionResult{Message: "Invalid request payload: " + err.Error()})
}

func writeQueryError(c *gin.Context, err error) {
	code := statusFor(err, http.StatusInternalServerError)
	msg := "Not found"
	switch code {
	case http.StatusBadRequest:
		msg = err.Error()
	case http.StatusInternalServerError:
		_ = c.Error(err)
		msg = "Failed to load data"
	}
	c.JSON(code, response.Error(code, msg))
}
