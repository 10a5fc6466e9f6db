package httperr

import (
	"errors"
	"net/http"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Kind    string `json:"kind,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type ConflictDetail struct {
	Conflicts []booking.Conflict `json:"conflicts"`
}

type FieldsDetail struct {
	Fields []string `json:"fields"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Kind = errs.Kind(err)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps err to a status by its kind. Errors of no known kind are
// reported as 500 with fallback as the message.
func Abort(c *gin.Context, err error, fallback string) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		AbortWithError(c, status, err, fallback, nil)
		return
	}
	AbortWithError(c, status, err, messageOf(err), detailOf(err))
}

func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrState):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func detailOf(err error) any {
	var conflict *booking.ConflictError
	if errors.As(err, &conflict) {
		return ConflictDetail{Conflicts: conflict.Conflicts}
	}
	if fields := errs.ValidationFields(err); len(fields) > 0 {
		return FieldsDetail{Fields: fields}
	}
	return nil
}

func messageOf(err error) string {
	var conflict *booking.ConflictError
	if errors.As(err, &conflict) {
		return "One or more requested slots are already booked"
	}
	var v *errs.ValidationError
	if errors.As(err, &v) {
		return v.Message
	}
	return err.Error()
}
