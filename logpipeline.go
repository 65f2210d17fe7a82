package denglu

import (
	"sort"
	"strings"

	"github.com/cmstar/go-logx"
)

// LogSetup 定义一个过程，此过程用于向 [CallState] 填充日志信息。
type LogSetup interface {
	// Setup 可将日志信息写入 [CallState.LogLevel] 和 [CallState.LogMessage] 。
	Setup(state *CallState)
}

// LogSetupFunc 是 [LogSetup.Setup] 的函数签名。
type LogSetupFunc func(state *CallState)

type logSetupWrap struct {
	f LogSetupFunc
}

// ToLogSetup 将 [LogSetupFunc] 包装成 [LogSetup] 。
func ToLogSetup(f LogSetupFunc) LogSetup {
	return logSetupWrap{f}
}

func (x logSetupWrap) Setup(state *CallState) {
	x.f(state)
}

// LogSetupPipeline 是 [LogSetup] 组成的管道。
//
// 在 Log 时，依次执行每个 [LogSetup.Setup] ，并将得到的 [CallState.LogLevel] 和 [CallState.LogMessage] 输出到日志。
// 若 LogLevel 未被设置，默认使用 [logx.LevelInfo] 级别。
type LogSetupPipeline []LogSetup

// NewLogSetupPipeline 返回一个 [LogSetupPipeline] 。
func NewLogSetupPipeline(s ...LogSetup) LogSetupPipeline {
	return LogSetupPipeline(s)
}

// Log 根据 [CallState] 的内容生成日志，日志由 [CallState.Logger] 接收。
// 若 [CallState.Logger] 为 nil ，则不生成日志。
func (p LogSetupPipeline) Log(state *CallState) {
	logger := state.Logger
	if logger == nil || len(p) == 0 {
		return
	}

	for _, v := range p {
		v.Setup(state)
	}

	lv := state.LogLevel
	if state.LogLevel == 0 {
		lv = logx.LevelInfo
	}

	logger.Log(lv, "", state.LogMessage...)
}

// DefaultLogSetups 返回 [Config.LogSetups] 未指定时使用的 [LogSetupPipeline] ，其输出与 logsetup.Default() 相同：
// Method/HttpMethod/URL/Params/Attempts/StatusCode/Duration ，有错误时追加 ErrorType/Error 。
// 更细粒度的定制可使用 logsetup 包。
func DefaultLogSetups() LogSetupPipeline {
	return NewLogSetupPipeline(ToLogSetup(logCallSummary))
}

func logCallSummary(state *CallState) {
	state.LogMessage = append(state.LogMessage,
		"Method", state.Method,
		"HttpMethod", state.HttpMethod,
		"URL", state.URL,
	)

	if len(state.Params) > 0 {
		state.LogMessage = append(state.LogMessage, "Params", FormatParams(state.Params))
	}

	state.LogMessage = append(state.LogMessage,
		"Attempts", state.Attempts,
		"StatusCode", state.StatusCode,
		"Duration", state.Duration.Milliseconds(),
	)

	if state.Error == nil {
		return
	}

	logLevel, errTypeName, errDescription := DescribeError(state.Error)
	state.LogLevel = logLevel
	state.LogMessage = append(state.LogMessage,
		"ErrorType", errTypeName,
		"Error", errDescription,
	)
}

// FormatParams 将参数表格式化为 k1=v1&k2=v2 ，用于输出日志。参数按名称升序排列，值不做 URL 编码，
// sign 参数经 [MaskSign] 处理。
func FormatParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b := new(strings.Builder)
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}

		v := params[k]
		if k == ParamSign {
			v = MaskSign(v)
		}

		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(v)
	}
	return b.String()
}

// MaskSign 隐藏签名的大部分内容，只保留前 4 个字符。
func MaskSign(sign string) string {
	if len(sign) <= 4 {
		return "****"
	}
	return sign[:4] + "****"
}
