package dengluserver

import (
	"net/http"
	"strconv"

	"github.com/cmstar/go-denglu"
	"github.com/cmstar/go-errx"
)

// Request 是一个已通过签名校验的灯鹭 API 请求。
type Request struct {
	// Method 是 API 方法名称，如 getMedia 。
	Method string

	// AppID 是请求的 appid 参数。
	AppID string

	// Params 是请求的全部参数（已转为 UTF-8 ），包括 timestamp 、 appid 、 sign_type 、 sign 。
	Params map[string]string

	// Raw 是原始的 HTTP 请求， body 已被读取。
	Raw *http.Request
}

// Get 获取参数值。参数不存在时返回空字符串。
func (r *Request) Get(name string) string {
	return r.Params[name]
}

// Require 获取参数值。参数不存在时返回 [denglu.ErrCodeBadParams] 的 [errx.BizError] 。
func (r *Request) Require(name string) (string, error) {
	v, ok := r.Params[name]
	if !ok {
		return "", badParams(name)
	}
	return v, nil
}

// RequireInt 获取参数值并转为整数。参数不存在或格式不正确时返回 [denglu.ErrCodeBadParams] 的 [errx.BizError] 。
func (r *Request) RequireInt(name string) (int64, error) {
	v, err := r.Require(name)
	if err != nil {
		return 0, err
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, errx.NewBizError(denglu.ErrCodeBadParams, "invalid param: "+name, err)
	}
	return n, nil
}

// IntOr 获取整数参数。参数不存在或格式不正确时返回 def 。
func (r *Request) IntOr(name string, def int64) int64 {
	v, ok := r.Params[name]
	if !ok {
		return def
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func badParams(name string) error {
	return errx.NewBizError(denglu.ErrCodeBadParams, "missing param: "+name, nil)
}
