package response

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	statusCode int
	cause      error

	Msg string `json:"error"`
}

func (e *Err) Error() string {
	return e.Msg
}

func ErrBadRequest(err error) *Err {
	return &Err{statusCode: http.StatusBadRequest, cause: err, Msg: err.Error()}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{statusCode: http.StatusUnauthorized, cause: err, Msg: err.Error()}
}

func ErrUnauthorized(err error) *Err {
	return &Err{statusCode: http.StatusUnauthorized, cause: err, Msg: err.Error()}
}

func ErrForbidden(err error) *Err {
	return &Err{statusCode: http.StatusForbidden, cause: err, Msg: err.Error()}
}

func ErrConflict(err error) *Err {
	return &Err{statusCode: http.StatusConflict, cause: err, Msg: err.Error()}
}

func ErrNotFound(err error) *Err {
	return &Err{statusCode: http.StatusNotFound, cause: err, Msg: err.Error()}
}

// ErrInternalServerError hides the cause from the response body; RenderErr
// logs it instead.
func ErrInternalServerError(err error) *Err {
	return &Err{statusCode: http.StatusInternalServerError, cause: err, Msg: "internal server error"}
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.statusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("path", ctx.FullPath()),
			zap.Error(err.cause),
		)
	}

	ctx.JSON(err.statusCode, err)
}
