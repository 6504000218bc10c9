package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rifaapp/rifa-api/internal/domain"
)

type Err struct {
	HTTPStatusCode int         `json:"-"`
	StatusText     string      `json:"status_text"`
	ErrorMsg       string      `json:"error_msg"`
	Detail         interface{} `json:"detail,omitempty"`
	Err            error       `json:"-"`
}

type ConflictDetail struct {
	Message string `json:"message"`
	Numbers []int  `json:"numbers"`
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("internal error", zap.String("path", ctx.FullPath()), zap.Error(e.Err))
	}
	if e.Err != nil {
		_ = ctx.Error(e.Err)
	}

	ctx.JSON(e.HTTPStatusCode, e)
}

func newErr(status int, err error, msg string) *Err {
	return &Err{
		HTTPStatusCode: status,
		StatusText:     http.StatusText(status),
		ErrorMsg:       msg,
		Err:            err,
	}
}

func ErrBadRequest(err error) *Err {
	return newErr(http.StatusBadRequest, err, err.Error())
}

func ErrUnauthorized(err error) *Err {
	return newErr(http.StatusUnauthorized, err, err.Error())
}

func ErrWrongCredentials(err error) *Err {
	return newErr(http.StatusUnauthorized, err, "wrong email or password")
}

func ErrPermissionDenied(err error) *Err {
	return newErr(http.StatusForbidden, err, err.Error())
}

func ErrNotFound(resource, field string, value interface{}) *Err {
	err := fmt.Errorf("%s with %s=%v not found", resource, field, value)
	return newErr(http.StatusNotFound, err, err.Error())
}

func ErrConflict(err error) *Err {
	return newErr(http.StatusConflict, err, err.Error())
}

func ErrInternalServerError(err error) *Err {
	return newErr(http.StatusInternalServerError, err, "internal server error")
}

// FromDomain maps an error of the raffle engine onto its HTTP status.
func FromDomain(err error) *Err {
	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		e := newErr(http.StatusConflict, err, "some numbers are no longer available")
		e.Detail = ConflictDetail{
			Message: "Some numbers are no longer available",
			Numbers: conflict.Numbers,
		}
		return e
	}

	msg := err.Error()
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		msg = domainErr.Message
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return newErr(http.StatusNotFound, err, msg)
	case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, domain.ErrInvalidState):
		return newErr(http.StatusBadRequest, err, msg)
	case errors.Is(err, domain.ErrForbidden):
		return newErr(http.StatusForbidden, err, msg)
	case errors.Is(err, domain.ErrConflict):
		return newErr(http.StatusConflict, err, msg)
	}

	return ErrInternalServerError(err)
}
