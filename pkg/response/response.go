package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "github.com/Farhanb1/simple-vanilla-todo/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. HTTPErrors keep their status code;
// anything else is a 400.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	status := http.StatusBadRequest
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.StatusCode
	}

	c.JSON(status, Resp{
		ErrorCode: errorCode(status),
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests aborts with pkgErrors.ErrTooManyRequests.
func TooManyRequests(c *gin.Context) {
	err := pkgErrors.ErrTooManyRequests
	c.AbortWithStatusJSON(err.StatusCode, Resp{
		ErrorCode: errorCode(err.StatusCode),
		Message:   err.Message,
	})
}

func errorCode(status int) int {
	if status == http.StatusBadRequest {
		return 1
	}
	return status
}
