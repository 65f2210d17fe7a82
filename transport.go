package denglu

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/cmstar/go-errx"
	"github.com/go-resty/resty/v2"
)

// transport 负责发送 HTTP 请求。每个 [Client] 持有一个 transport ，创建后不再修改，可并发使用。
type transport struct {
	client *resty.Client
}

func newTransport(cfg Config) *transport {
	var client *resty.Client
	if cfg.HTTPClient != nil {
		// 复制一份，避免 SetTimeout 修改调用方的实例。
		hc := *cfg.HTTPClient
		client = resty.NewWithClient(&hc)
	} else {
		client = resty.New()
	}

	client.
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retry.MaxAttempts-1).
		SetRetryWaitTime(cfg.Retry.WaitTime).
		SetRetryMaxWaitTime(cfg.Retry.MaxWaitTime).
		AddRetryCondition(func(_ *resty.Response, err error) bool {
			// 只有超时的请求才重试，其他错误直接返回。
			return isTimeout(err)
		}).
		SetHeader(HttpHeaderAccept, "*/*").
		SetHeader(HttpHeaderAcceptLanguage, "zh-cn").
		SetHeader(HttpHeaderConnection, "Close")

	return &transport{client: client}
}

// dispatch 发送 [CallState.URL] 对应的请求，填写 [CallState.HttpMethod] 、 [CallState.Attempts] 、
// [CallState.StatusCode] 和 [CallState.ResponseBody] 。
//
// [CallState.Body] 不为空时使用 POST 发送 application/x-www-form-urlencoded 请求，否则使用 GET 。
// 不论 HTTP 状态码是多少，都读取回执的 body 。
func (t *transport) dispatch(ctx context.Context, state *CallState) error {
	req := t.client.R().SetContext(ctx)

	if state.Body != "" {
		state.HttpMethod = http.MethodPost
		req.SetHeader(HttpHeaderContentType, ContentTypeForm).SetBody(state.Body)
	} else {
		state.HttpMethod = http.MethodGet
	}

	resp, err := req.Execute(state.HttpMethod, state.URL)
	state.Attempts = req.Attempt

	if err != nil {
		if ctx.Err() == nil && isTimeout(err) {
			return &TimeoutError{
				ErrorCause: errx.ErrorCause{Err: err},
				URL:        state.URL,
				Attempts:   state.Attempts,
			}
		}
		return errx.Wrap("denglu: "+state.HttpMethod+" "+state.URL, err)
	}

	state.StatusCode = resp.StatusCode()
	state.ResponseBody = resp.Body()
	return nil
}

// isTimeout 判断错误是否由网络超时引起。
func isTimeout(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
