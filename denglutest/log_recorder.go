package denglutest

import (
	"fmt"
	"strings"
	"sync"

	"github.com/cmstar/go-logx"
)

// NewLogRecorder 创建一个 LogRecorder 的新实例。
func NewLogRecorder() *LogRecorder {
	return &LogRecorder{}
}

// LogRecorder 实现 logx.Logger ，将全部日志追加记录在一个字符串上，每个日志末尾追加一个换行。
// 可以被多个 goroutine 并发使用，如同时作为 [denglu.Config.Logger] 和 [dengluserver.Options.Logger] 。
//
// 每个日志的字符串拼接格式为，格式化使用 fmt.Sprintf() ：
//
//	level={LEVEL} message={MESSAGE} KEY1=VALUE1 KEY2=VALUE2 ...
type LogRecorder struct {
	mu  sync.Mutex
	buf strings.Builder
	m   []map[string]string
}

var _ logx.Logger = (*LogRecorder)(nil)

// Log 实现 Logger.Log() 。
func (l *LogRecorder) Log(level logx.Level, message string, keyValues ...any) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	m := make(map[string]string)
	l.m = append(l.m, m)

	lv := logx.LevelToString(level)
	l.buf.WriteString("level=")
	l.buf.WriteString(lv)
	m["level"] = lv

	l.buf.WriteString(" message=")
	l.buf.WriteString(message)
	m["message"] = message

	length := len(keyValues)
	for i := 0; i < length-1; i += 2 {
		k := fmt.Sprintf("%v", keyValues[i])
		v := fmt.Sprintf("%v", keyValues[i+1])

		l.buf.WriteByte(' ')
		l.buf.WriteString(k)
		l.buf.WriteByte('=')
		l.buf.WriteString(v)

		m[k] = v
	}

	if length%2 != 0 {
		v := fmt.Sprintf("%v", keyValues[length-1])
		l.buf.WriteString(" UNKNOWN=")
		l.buf.WriteString(v)
		m["UNKNOWN"] = v
	}

	l.buf.WriteByte('\n')
	return nil
}

// LogFn 实现 Logger.LogFn() 。
func (l *LogRecorder) LogFn(level logx.Level, messageFactory func() (string, []any)) error {
	m, kv := messageFactory()
	return l.Log(level, m, kv...)
}

// String 返回当前记录的完整日志。
func (l *LogRecorder) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.String()
}

// Map 返回结构化日志。每条日志使用一个 map 记录。
func (l *LogRecorder) Map() []map[string]string {
	l.mu.Lock()
	defer l.mu.Unlock()

	res := make([]map[string]string, len(l.m))
	copy(res, l.m)
	return res
}

// Last 返回最后一条日志的结构化形式。没有日志时返回 nil 。
func (l *LogRecorder) Last() map[string]string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.m) == 0 {
		return nil
	}
	return l.m[len(l.m)-1]
}

// ByMethod 返回 Method 字段等于 method 的日志，按记录的先后排列。
// [denglu.Client] 和 [dengluserver.Engine] 的日志都带有 Method 字段，同一个 LogRecorder 同时用于两者时，
// 可以按 API 方法取出一次调用两端的日志。
func (l *LogRecorder) ByMethod(method string) []map[string]string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var res []map[string]string
	for _, m := range l.m {
		if m["Method"] == method {
			res = append(res, m)
		}
	}
	return res
}

// Reset 清空已记录的日志。
func (l *LogRecorder) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.buf.Reset()
	l.m = nil
}
