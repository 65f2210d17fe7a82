package denglu

import (
	"time"

	"github.com/cmstar/go-logx"
)

// CallState 用于记录一次 API 调用的处理流程中的数据。每次调用使用一个新的 CallState 。
// 处理过程采用管道模式，每个步骤从 CallState 获取所需数据，并将处理结果写回 CallState 。
type CallState struct {
	// Method 是调用的 API 方法名称，如 bind 、 getMedia 。
	Method string

	// URL 是根据 Method 从接口目录得到的完整地址。
	URL string

	// HttpMethod 是实际使用的 HTTP 方法， GET 或 POST 。
	HttpMethod string

	// Params 是最终发送的参数表，包含 timestamp 、 appid 、 sign_type 和 sign 。
	// 值已按 [Config.Charset] 转换，即 URL 编码前的原始字节。
	Params map[string]string

	// Body 是编码后的请求 body 。
	Body string

	// StartTime 记录调用开始的时间。
	StartTime time.Time

	// Duration 记录调用的总耗时，包含重试的时间。
	Duration time.Duration

	// Attempts 记录发出 HTTP 请求的次数。
	Attempts int

	// StatusCode 记录 HTTP 状态码。没有收到回执时为 0 。
	StatusCode int

	// ResponseBody 记录 HTTP 回执的 body 原文。
	ResponseBody []byte

	// Result 记录解析得到的返回值。
	Result any

	// Error 记录调用过程中的错误。没有错误时为 nil 。
	Error error

	// Logger 用于接收当前调用需记录的日志。可以为 nil ，表示不记录日志。
	Logger logx.Logger

	// 输出日志时的日志级别。若为 0 ，则使用默认级别（由 [LogSetupPipeline] 决定）。
	LogLevel logx.Level

	// LogMessage 用于记录各个处理流程中的日志信息，这只是一个缓冲（ buffer ）。
	// key-value 对，与 [logx.Logger.Log] 的 keyValues 参数定义一致。
	LogMessage []any
}

// newCallState 创建一个新的 CallState 。
func newCallState(method string, logger logx.Logger, now time.Time) *CallState {
	return &CallState{
		Method:    method,
		Logger:    logger,
		StartTime: now,
	}
}
