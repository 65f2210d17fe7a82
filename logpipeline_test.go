package denglu

import (
	"errors"
	"testing"

	"github.com/cmstar/go-logx"
	"github.com/stretchr/testify/assert"
)

func TestLogSetupPipeline_Log(t *testing.T) {
	t.Run("noLogger", func(t *testing.T) {
		called := false
		p := NewLogSetupPipeline(ToLogSetup(func(state *CallState) { called = true }))
		p.Log(&CallState{})
		assert.False(t, called)
	})

	t.Run("empty", func(t *testing.T) {
		logger := &memLogger{}
		NewLogSetupPipeline().Log(&CallState{Logger: logger})
		assert.Len(t, logger.logs, 0)
	})

	t.Run("order", func(t *testing.T) {
		logger := &memLogger{}
		p := NewLogSetupPipeline(
			ToLogSetup(func(state *CallState) { state.LogMessage = append(state.LogMessage, "a", 1) }),
			ToLogSetup(func(state *CallState) { state.LogMessage = append(state.LogMessage, "b", 2) }),
		)
		p.Log(&CallState{Logger: logger})

		assert.Equal(t, logx.LevelInfo, logger.last().level)
		assert.Equal(t, []any{"a", 1, "b", 2}, logger.last().kv)
	})
}

func TestDefaultLogSetups(t *testing.T) {
	logger := &memLogger{}
	state := &CallState{
		Method:     MethodUnbind,
		URL:        "u",
		HttpMethod: "POST",
		Params:     map[string]string{"muid": "1", "sign": "8661d353f83ce6c1906df285a92e4e72"},
		Attempts:   2,
		StatusCode: 200,
		Error:      errors.New("e"),
		Logger:     logger,
	}
	DefaultLogSetups().Log(state)

	last := logger.last()
	assert.Equal(t, logx.LevelError, last.level)
	assert.Equal(t, []any{
		"Method", "unbind",
		"HttpMethod", "POST",
		"URL", "u",
		"Params", "muid=1&sign=8661****",
		"Attempts", 2,
		"StatusCode", 200,
		"Duration", int64(0),
		"ErrorType", "errorString",
		"Error",
	}, last.kv[:17])
	assert.Contains(t, last.kv[17], "e")
}

func TestDefaultLogSetups_noParams(t *testing.T) {
	logger := &memLogger{}
	DefaultLogSetups().Log(&CallState{Method: MethodGetMedia, Logger: logger})

	assert.Equal(t, []any{
		"Method", "getMedia",
		"HttpMethod", "",
		"URL", "",
		"Attempts", 0,
		"StatusCode", 0,
		"Duration", int64(0),
	}, logger.last().kv)
}

func TestFormatParams(t *testing.T) {
	assert.Equal(t, "", FormatParams(nil))
	assert.Equal(t, "a=1&b=中 文&sign=abcd****", FormatParams(map[string]string{"b": "中 文", "sign": "abcdef", "a": "1"}))
}

func TestMaskSign(t *testing.T) {
	assert.Equal(t, "****", MaskSign(""))
	assert.Equal(t, "****", MaskSign("abcd"))
	assert.Equal(t, "abcd****", MaskSign("abcde"))
}
