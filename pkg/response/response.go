package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with the given payload.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// NewErrResp returns the failure envelope for the given error.
func NewErrResp(err error) ErrResp {
	msg := DefaultErrorMessage
	if err != nil {
		msg = err.Error()
	}
	return ErrResp{
		Success: false,
		Error:   msg,
	}
}

// ServerError sends 500 with the failure envelope.
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, NewErrResp(err))
}

// BadRequest sends 400 with the failure envelope.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, NewErrResp(err))
}

// NotFound sends 404 response.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrResp{
		Success: false,
		Error:   "Not Found",
	})
}
