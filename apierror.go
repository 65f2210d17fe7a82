package denglu

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/cmstar/go-errx"
	"github.com/cmstar/go-logx"
)

/*
当前文件提供调用灯鹭 API 的相关错误类型及处理错误的方法。
*/

// ApiError 表示灯鹭 API 返回的错误，即 JSON 结果中带有非零的 errorCode 。
// 服务器无法连接（返回空内容）时，也使用此类型表示，错误码为 [ErrCodeUnknown] 。
type ApiError struct {
	errx.ErrorCause

	ErrorCode        int            // ErrorCode 是 JSON 中的 errorCode 。
	ErrorDescription string         // ErrorDescription 是 JSON 中的 errorDescription 。
	Result           map[string]any // Result 是解析得到的完整 JSON 对象。
}

var _ error = (*ApiError)(nil)

// Error 实现 error 接口。格式为：
//
//	denglu: (errorCode) errorDescription
func (e *ApiError) Error() string {
	return fmt.Sprintf("denglu: (%d) %s", e.ErrorCode, e.ErrorDescription)
}

// NewApiError 创建一个 ApiError 。 description 为空时，使用 [ErrorCodeDescription] 的值。
func NewApiError(code int, description string) *ApiError {
	if description == "" {
		description = ErrorCodeDescription(code)
	}

	return &ApiError{
		ErrorCode:        code,
		ErrorDescription: description,
		Result: map[string]any{
			"errorCode":        code,
			"errorDescription": description,
		},
	}
}

// apiErrorFromResult 从 JSON 对象创建 ApiError 。其中的 errorCode 可以是数字或数字的字符串。
func apiErrorFromResult(result map[string]any) *ApiError {
	e := &ApiError{Result: result}

	code, err := Conv.ConvertType(result["errorCode"], reflect.TypeOf(0))
	if err == nil {
		e.ErrorCode = code.(int)
	} else {
		e.ErrorCode = ErrCodeUnknown
		e.ErrorCause = errx.ErrorCause{Err: err}
	}

	if desc, ok := result["errorDescription"].(string); ok {
		e.ErrorDescription = desc
	} else {
		e.ErrorDescription = ErrorCodeDescription(e.ErrorCode)
	}

	return e
}

// IsCode 判断 err 是否为具有指定错误码的 [*ApiError] 。
func IsCode(err error, code int) bool {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode == code
	}
	return false
}

// TimeoutError 表示请求超时，且已达到 [RetryPolicy.MaxAttempts] 规定的最大尝试次数。
type TimeoutError struct {
	errx.ErrorCause

	URL      string // URL 是请求的地址。
	Attempts int    // Attempts 是已尝试的次数。
}

var _ error = (*TimeoutError)(nil)

// Error 实现 error 接口。
func (e *TimeoutError) Error() string {
	msg := fmt.Sprintf("denglu: request %q timeout after %d attempts", e.URL, e.Attempts)
	if e.Err != nil {
		msg += ":: " + e.Err.Error()
	}
	return msg
}

// DescribeError 根据给定的错误，返回错误的日志级别、名称和错误描述。 如果 err 为 nil ，返回 logx.LevelInfo 和空字符串。
//
// 描述信息使用 errx.Describe() 获取。
func DescribeError(err error) (logLevel logx.Level, errTypeName, errDescription string) {
	if err == nil {
		return logx.LevelInfo, "", ""
	}

	errTypeName = getErrTypeName(err)
	errDescription = errx.Describe(err)

	logLevel = logx.LevelError

	// 接口返回的业务错误，请求本身是正常完成的。
	var apiErr *ApiError
	var bizErr errx.BizError
	if errors.As(err, &apiErr) || errors.As(err, &bizErr) {
		logLevel = logx.LevelWarn
	}

	return
}

func getErrTypeName(err error) string {
	// 取 error 内在的实际类型的名称。
	typ := reflect.TypeOf(err)
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	name := typ.Name()

	// 如果是个公开类型（首字母大写），直接用其名称。
	if len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z' {
		return name
	}

	// 非公开的错误，如果是几个预定义且常见的，返回其接口名称。
	if _, ok := err.(errx.BizError); ok {
		return "BizError"
	}
	if _, ok := err.(errx.StackfulError); ok {
		return "StackfulError"
	}
	return name
}
