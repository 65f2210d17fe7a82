// Package logsetup 提供一组预定义的 [denglu.LogSetup] ，以便快速定制 [denglu.Config.LogSetups] 。
package logsetup

import (
	"github.com/cmstar/go-denglu"
)

// Method 输出调用的 API 方法名称及 HTTP 方法。
//
// 输出字段为： Method/HttpMethod 。
//
// 这是一个单例。
var Method = method{}

type method struct{}

var _ denglu.LogSetup = (*method)(nil)

func (method) Setup(state *denglu.CallState) {
	state.LogMessage = append(state.LogMessage,
		"Method", state.Method,
		"HttpMethod", state.HttpMethod,
	)
}

// URL 输出请求的完整 URL 。
//
// 输出字段为： URL 。
//
// 这是一个单例。
var URL = url{}

type url struct{}

var _ denglu.LogSetup = (*url)(nil)

func (url) Setup(state *denglu.CallState) {
	state.LogMessage = append(state.LogMessage, "URL", state.URL)
}

// Params 输出发送的参数表，参数按名称升序排列，格式为 k1=v1&k2=v2 。
// sign 参数只保留前 4 个字符，其余替换为“****”，见 [denglu.FormatParams] 。
//
// 输出字段为： Params 。
//
// 这是一个单例。
var Params = params{}

type params struct{}

var _ denglu.LogSetup = (*params)(nil)

func (params) Setup(state *denglu.CallState) {
	if len(state.Params) == 0 {
		return
	}
	state.LogMessage = append(state.LogMessage, "Params", denglu.FormatParams(state.Params))
}

// Attempts 输出发出 HTTP 请求的次数，以及最后一次收到的 HTTP 状态码。
//
// 输出字段为： Attempts/StatusCode 。
//
// 这是一个单例。
var Attempts = attempts{}

type attempts struct{}

var _ denglu.LogSetup = (*attempts)(nil)

func (attempts) Setup(state *denglu.CallState) {
	state.LogMessage = append(state.LogMessage,
		"Attempts", state.Attempts,
		"StatusCode", state.StatusCode,
	)
}

// Duration 输出调用总耗时，单位为毫秒。
//
// 输出字段为： Duration 。
//
// 这是一个单例。
var Duration = duration{}

type duration struct{}

var _ denglu.LogSetup = (*duration)(nil)

func (duration) Setup(state *denglu.CallState) {
	state.LogMessage = append(state.LogMessage, "Duration", state.Duration.Milliseconds())
}

// ResponseBody 输出 HTTP 回执的 body 原文，超过 maxLen 字节的部分被截断并以“...”结尾。
// maxLen 不大于 0 时不截断。
//
// 输出字段为： Response 。
func ResponseBody(maxLen int) denglu.LogSetup {
	return denglu.ToLogSetup(func(state *denglu.CallState) {
		if len(state.ResponseBody) == 0 {
			return
		}

		body := string(state.ResponseBody)
		if maxLen > 0 && len(body) > maxLen {
			body = body[:maxLen] + "..."
		}
		state.LogMessage = append(state.LogMessage, "Response", body)
	})
}

// Error 根据当前的错误信息，判断错误的级别，并输出错误的描述信息。
//
// 输出字段为： ErrorType/Error 。
//
// 这是一个单例。
var Error = err{}

type err struct{}

var _ denglu.LogSetup = (*err)(nil)

func (err) Setup(state *denglu.CallState) {
	if state.Error == nil {
		return
	}

	logLevel, errTypeName, errDescription := denglu.DescribeError(state.Error)

	state.LogLevel = logLevel
	state.LogMessage = append(state.LogMessage,
		"ErrorType", errTypeName,
		"Error", errDescription,
	)
}

// Default 返回一个常用的 [denglu.LogSetupPipeline] ，依次为 Method/URL/Params/Attempts/Duration/Error 。
func Default() denglu.LogSetupPipeline {
	return denglu.NewLogSetupPipeline(Method, URL, Params, Attempts, Duration, Error)
}
