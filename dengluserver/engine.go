// Package dengluserver 提供一个模拟的灯鹭 API 服务器，用于测试和本地开发。
//
// 服务器校验请求的公共参数（ appid 、 sign_type 、 timestamp 、 sign ），校验通过后将请求交给注册的 [HandlerFunc] 。
// 业务逻辑由使用者提供，可参考 denglutest 包的 Backend 。
package dengluserver

import (
	"io"
	"net/http"
	"time"

	"github.com/cmstar/go-denglu"
	"github.com/cmstar/go-errx"
	"github.com/cmstar/go-logx"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HandlerFunc 处理一个已通过校验的请求。返回的值被序列化为 JSON 作为回执。
//   - 返回 [errx.BizError] 时，回执为 {"errorCode": Code(), "errorDescription": Message()} 。
//   - 返回其他错误时，回执的 errorCode 为 [denglu.ErrCodeUnknown] 。
//   - 返回 nil, nil 时，回执的 body 为空。
type HandlerFunc func(req *Request) (any, error)

// Options 用于初始化 [Engine] 。
type Options struct {
	// Apps 是 appid 到 apiKey 的映射，不在其中的 appid 返回 [denglu.ErrCodeSiteNotFound] 。
	Apps map[string]string

	// Charset 是请求参数使用的字符集，为空时使用 [denglu.CharsetUTF8] 。
	Charset denglu.Charset

	// Endpoints 是 API 方法名称到 URL 路径的映射，为 nil 时使用 [denglu.DefaultEndpoints] 。
	Endpoints *denglu.Catalog

	// TimeChecker 校验 timestamp 参数，为 nil 时使用 [DefaultTimeChecker] 。
	TimeChecker TimeCheckerFunc

	// Logger 用于记录每个请求的日志。为 nil 时不记录日志。
	Logger logx.Logger
}

// Engine 是模拟的灯鹭 API 服务器，实现了 [http.Handler] 。
type Engine struct {
	echo  *echo.Echo
	opts  Options
	codec denglu.Codec
}

var _ http.Handler = (*Engine)(nil)

// NewEngine 创建一个 [Engine] 。若 [Options.Charset] 不被支持，则 panic 。
func NewEngine(opts Options) *Engine {
	if opts.Endpoints == nil {
		opts.Endpoints = denglu.DefaultEndpoints()
	}

	if opts.TimeChecker == nil {
		opts.TimeChecker = DefaultTimeChecker
	}

	codec, err := denglu.NewCodec(opts.Charset)
	if err != nil {
		panic(err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	return &Engine{
		echo:  e,
		opts:  opts,
		codec: codec,
	}
}

// Echo 返回内部使用的 echo 实例。
func (e *Engine) Echo() *echo.Echo {
	return e.echo
}

// ServeHTTP 实现 [http.Handler] 。
func (e *Engine) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e.echo.ServeHTTP(w, r)
}

// Start 在指定的地址开启 HTTP 服务。在完成各个 API 注册后，最后调用此方法开启服务。
//
// addr 地址格式为 IP:PORT ，如“:12345”监听任何来源对于 12345 端口的请求，“127.0.0.1:12345”则仅监听本机。
func (e *Engine) Start(addr string) error {
	return e.echo.Start(addr)
}

// Handle 注册 API 方法 method 的处理过程，同时响应 GET 和 POST 请求。
// method 必须在 [Options.Endpoints] 中，否则 panic 。
func (e *Engine) Handle(method string, h HandlerFunc) {
	path, ok := e.opts.Endpoints.Lookup(method)
	if !ok {
		panic("dengluserver: unknown method " + method)
	}

	handlerFunc := e.createHandlerFunc(method, h)
	e.echo.GET(path, handlerFunc)
	e.echo.POST(path, handlerFunc)
}

func (e *Engine) createHandlerFunc(method string, h HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		req, res, err := e.serve(c.Request(), method, h)
		e.log(method, req, err, time.Since(start))
		return writeResponse(c, res, err)
	}
}

// serve 读取并校验参数，之后执行 h 。
func (e *Engine) serve(r *http.Request, method string, h HandlerFunc) (req *Request, res any, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = errx.PreserveRecover("dengluserver: handler panic", recovered)
		}
	}()

	raw, err := e.readParams(r)
	if err != nil {
		return nil, nil, err
	}

	// 签名基于 URL 解码后的原始字节，校验通过后再转换字符集。
	if err := e.verify(raw); err != nil {
		return nil, nil, err
	}

	params, err := e.decodeParams(raw)
	if err != nil {
		return nil, nil, err
	}

	req = &Request{
		Method: method,
		AppID:  params[denglu.ParamAppID],
		Params: params,
		Raw:    r,
	}
	res, err = h(req)
	return
}

// readParams 读取参数： POST 请求读取 body ， GET 请求读取 query string 。
// 返回的参数值只做了 URL 解码，未转换字符集。
func (e *Engine) readParams(r *http.Request) (map[string]string, error) {
	raw := r.URL.RawQuery
	if r.Method == http.MethodPost {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, errx.Wrap("dengluserver: read body", err)
		}
		raw = string(body)
	}

	params, err := denglu.ParseForm(raw, nil)
	if err != nil {
		return nil, errx.NewBizError(denglu.ErrCodeBadParams, denglu.ErrorCodeDescription(denglu.ErrCodeBadParams), err)
	}
	return params, nil
}

// decodeParams 将参数值按 [Options.Charset] 转为 UTF-8 。
func (e *Engine) decodeParams(raw map[string]string) (map[string]string, error) {
	params := make(map[string]string, len(raw))
	for k, v := range raw {
		decoded, err := e.codec.Decode(v)
		if err != nil {
			return nil, errx.NewBizError(denglu.ErrCodeBadParams, denglu.ErrorCodeDescription(denglu.ErrCodeBadParams), err)
		}
		params[k] = decoded
	}
	return params, nil
}

func (e *Engine) log(method string, req *Request, err error, duration time.Duration) {
	logger := e.opts.Logger
	if logger == nil {
		return
	}

	kv := []any{"Method", method}
	if req != nil {
		kv = append(kv, "AppID", req.AppID)
	}
	kv = append(kv, "Duration", duration.Milliseconds())

	lv := logx.LevelInfo
	if err != nil {
		code, _ := errorCodeOf(err)
		kv = append(kv, "ErrorCode", code, "Error", errx.Describe(err))

		lv = logx.LevelError
		if code != denglu.ErrCodeUnknown {
			lv = logx.LevelWarn
		}
	}

	logger.Log(lv, "", kv...)
}
