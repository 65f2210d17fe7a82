package dengluserver

import (
	"errors"
	"net/http"

	"github.com/cmstar/go-denglu"
	"github.com/cmstar/go-errx"
	"github.com/labstack/echo/v4"
)

// ErrorResponse 是灯鹭 API 的错误回执。
type ErrorResponse struct {
	ErrorCode        int    `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

// errorCodeOf 返回错误对应的错误码和描述。
// 回执是返回给请求者的，不应该暴露内部细节，只有 BizError 可以给出具体信息；对于其他错误，只给一个笼统的信息。
func errorCodeOf(err error) (int, string) {
	var bizErr errx.BizError
	if errors.As(err, &bizErr) {
		return bizErr.Code(), bizErr.Message()
	}
	return denglu.ErrCodeUnknown, denglu.ErrorCodeDescription(denglu.ErrCodeUnknown)
}

func writeResponse(c echo.Context, res any, err error) error {
	if err != nil {
		code, desc := errorCodeOf(err)
		return c.JSON(http.StatusOK, ErrorResponse{
			ErrorCode:        code,
			ErrorDescription: desc,
		})
	}

	if res == nil {
		return c.NoContent(http.StatusOK)
	}
	return c.JSON(http.StatusOK, res)
}
