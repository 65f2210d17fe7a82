package denglu

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/cmstar/go-errx"
)

/*
当前文件包含 Client 的定义和 API 调用的执行流程。
*/

// Client 是灯鹭 API 的客户端。通过 [NewClient] 创建，创建后配置不可修改，可以被多个 goroutine 并发使用。
type Client struct {
	cfg       Config
	signer    Signer
	codec     Codec
	transport *transport
}

// NewClient 根据给定的配置创建 [Client] 。若配置不合法，返回错误。
func NewClient(cfg Config) (*Client, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}

	signer, err := NewSigner(cfg.SignatureMethod)
	if err != nil {
		return nil, err
	}

	codec, err := NewCodec(cfg.Charset)
	if err != nil {
		return nil, err
	}

	c := &Client{
		cfg:       cfg,
		signer:    signer,
		codec:     codec,
		transport: newTransport(cfg),
	}
	return c, nil
}

// MustNewClient 是 [NewClient] 的 panic 版本。
func MustNewClient(cfg Config) *Client {
	c, err := NewClient(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// AppID 返回灯鹭后台分配的 appID 。
func (c *Client) AppID() string {
	return c.cfg.AppID
}

// ApiKey 返回灯鹭后台分配的 apiKey 。
func (c *Client) ApiKey() string {
	return c.cfg.ApiKey
}

// Domain 返回灯鹭 API 的域名，已按 [Config.EnableTLS] 处理过协议部分。
func (c *Client) Domain() string {
	return c.cfg.Domain
}

// Charset 返回网站使用的字符集。
func (c *Client) Charset() Charset {
	return c.codec.Charset()
}

// Call 调用灯鹭 API 的 method 方法，并返回 JSON 解析后的结果。
//
// method 是接口目录中的名称（见 [DefaultEndpoints] ）。不在目录中的名称不会在本地报错，
// 请求会被发送到域名的根路径，由服务器返回错误。
//
// params 是请求参数，其中的 timestamp 、 appid 、 sign_type 、 sign 总是被覆盖。
// 若返回的 JSON 是带有非零 errorCode 的对象，返回 [*ApiError] ；请求超时并用完重试次数时，返回 [*TimeoutError] 。
func (c *Client) Call(ctx context.Context, method string, params Params) (any, error) {
	start := time.Now()
	state := newCallState(method, c.cfg.Logger, start)

	c.handleCall(ctx, state, params)
	state.Duration = time.Since(start)

	c.cfg.LogSetups.Log(state)
	return state.Result, state.Error
}

func (c *Client) handleCall(ctx context.Context, state *CallState, params Params) {
	state.URL = c.apiURL(state.Method)

	body, err := c.createPostBody(params)
	if err != nil {
		state.Error = err
		return
	}
	state.Params = body

	state.Body, err = EncodeForm(body, nil)
	if err != nil {
		state.Error = err
		return
	}

	err = c.transport.dispatch(ctx, state)
	if err != nil {
		state.Error = err
		return
	}

	state.Result, state.Error = c.decodeResponse(state.ResponseBody)
}

// apiURL 从接口目录里获得相应 method 的实际调用地址。找不到时，返回域名本身。
func (c *Client) apiURL(method string) string {
	path, _ := c.cfg.Endpoints.Lookup(method)
	return c.cfg.Domain + path
}

// createPostBody 返回最终发送的参数表：追加 timestamp 、 appid 、 sign_type ，
// 将参数值按 [Codec] 转为目标字符集，最后基于转换后的值计算并追加 sign 。
// 给定的 params 不会被修改。
func (c *Client) createPostBody(params Params) (map[string]string, error) {
	body, err := stringifyParams(params)
	if err != nil {
		return nil, err
	}

	delete(body, ParamSign)
	body[ParamTimestamp] = formatTimestamp(c.cfg.Clock())
	body[ParamAppID] = c.cfg.AppID
	body[ParamSignType] = string(c.signer.Method())

	for k, v := range body {
		encoded, err := c.codec.Encode(v)
		if err != nil {
			return nil, errx.Wrap("denglu: encode param "+k, err)
		}
		body[k] = encoded
	}

	body[ParamSign] = c.signer.Sign(body, c.cfg.ApiKey)
	return body, nil
}

// formatTimestamp 返回 timestamp 参数的值：秒级的 UNIX 时间戳，末尾补三个 0 。
func formatTimestamp(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10) + "000"
}

// decodeResponse 解析 HTTP 回执的 body 。
//   - body 为空时，视为无法连接服务器，返回 [ErrCodeUnknown] 的 [*ApiError] 。
//   - 得到的值经 [Codec.ConvertResult] 转换。
//   - 若值是对象且 errorCode 为真值，返回 [*ApiError] 。
func (c *Client) decodeResponse(body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, NewApiError(ErrCodeUnknown, emptyResponseDescription)
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, errx.Wrap("denglu: decode response", err)
	}

	v, err := c.codec.ConvertResult(v)
	if err != nil {
		return nil, errx.Wrap("denglu: convert response charset", err)
	}

	if m, ok := v.(map[string]any); ok && isTruthy(m["errorCode"]) {
		return nil, apiErrorFromResult(m)
	}
	return v, nil
}

// isTruthy 判断 JSON 值是否为“真”： null 、 false 、 0 、空字符串、空数组、空对象为假，其余为真。
func isTruthy(v any) bool {
	switch vv := v.(type) {
	case nil:
		return false
	case bool:
		return vv
	case float64:
		return vv != 0
	case string:
		return vv != ""
	case []any:
		return len(vv) > 0
	case map[string]any:
		return len(vv) > 0
	default:
		return true
	}
}
