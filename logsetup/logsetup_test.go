package logsetup

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cmstar/go-denglu"
	"github.com/cmstar/go-denglu/denglutest"
	"github.com/cmstar/go-logx"
	"github.com/stretchr/testify/assert"
)

func TestMethod(t *testing.T) {
	state := &denglu.CallState{
		Method:     "getMedia",
		HttpMethod: "POST",
	}
	Method.Setup(state)

	assert.Equal(t, logx.Level(0), state.LogLevel)
	assert.Equal(t, []any{"Method", "getMedia", "HttpMethod", "POST"}, state.LogMessage)
}

func TestURL(t *testing.T) {
	state := &denglu.CallState{
		URL: "value",
	}
	URL.Setup(state)

	assert.Equal(t, logx.Level(0), state.LogLevel)
	assert.Len(t, state.LogMessage, 2)
	assert.Equal(t, "URL", state.LogMessage[0])
	assert.Equal(t, "value", state.LogMessage[1])
}

func TestParams(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		state := &denglu.CallState{}
		Params.Setup(state)
		assert.Len(t, state.LogMessage, 0)
	})

	t.Run("masked", func(t *testing.T) {
		state := &denglu.CallState{
			Params: map[string]string{
				"timestamp": "1000",
				"appid":     "A",
				"sign":      "709ea613909194e1f7dbeb9c04d1ae77",
			},
		}
		Params.Setup(state)
		assert.Equal(t, []any{"Params", "appid=A&sign=709e****&timestamp=1000"}, state.LogMessage)
	})
}

func TestAttempts(t *testing.T) {
	state := &denglu.CallState{
		Attempts:   3,
		StatusCode: 200,
	}
	Attempts.Setup(state)
	assert.Equal(t, []any{"Attempts", 3, "StatusCode", 200}, state.LogMessage)
}

func TestDuration(t *testing.T) {
	state := &denglu.CallState{
		Duration: 1500 * time.Millisecond,
	}
	Duration.Setup(state)
	assert.Equal(t, []any{"Duration", int64(1500)}, state.LogMessage)
}

func TestResponseBody(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		state := &denglu.CallState{}
		ResponseBody(0).Setup(state)
		assert.Len(t, state.LogMessage, 0)
	})

	t.Run("full", func(t *testing.T) {
		state := &denglu.CallState{ResponseBody: []byte(`{"result":"1"}`)}
		ResponseBody(0).Setup(state)
		assert.Equal(t, []any{"Response", `{"result":"1"}`}, state.LogMessage)
	})

	t.Run("truncated", func(t *testing.T) {
		state := &denglu.CallState{ResponseBody: []byte(`{"result":"1"}`)}
		ResponseBody(5).Setup(state)
		assert.Equal(t, []any{"Response", `{"res...`}, state.LogMessage)
	})
}

func TestError(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		state := &denglu.CallState{}
		Error.Setup(state)

		assert.Equal(t, logx.Level(0), state.LogLevel)
		assert.Len(t, state.LogMessage, 0)
	})

	t.Run("ApiError", func(t *testing.T) {
		state := &denglu.CallState{
			Error: denglu.NewApiError(denglu.ErrCodeBadSign, ""),
		}
		Error.Setup(state)

		assert.Equal(t, logx.LevelWarn, state.LogLevel)
		assert.Len(t, state.LogMessage, 4)
		assert.Equal(t, "ErrorType", state.LogMessage[0])
		assert.Equal(t, "ApiError", state.LogMessage[1])
		assert.Equal(t, "Error", state.LogMessage[2])
		assert.True(t, strings.Contains(state.LogMessage[3].(string), "签名不正确"))
	})

	t.Run("other", func(t *testing.T) {
		state := &denglu.CallState{
			Error: errors.New("msg"),
		}
		Error.Setup(state)

		assert.Equal(t, logx.LevelError, state.LogLevel)
		assert.Equal(t, "Error", state.LogMessage[2])
		assert.True(t, strings.Contains(state.LogMessage[3].(string), "msg"))
	})
}

func TestDefault(t *testing.T) {
	logger := denglutest.NewLogRecorder()
	state := &denglu.CallState{
		Method:     "getMedia",
		URL:        "http://open.denglu.cc/api/v3/get_media",
		HttpMethod: "POST",
		Params:     map[string]string{"appid": "A"},
		Attempts:   1,
		StatusCode: 200,
		Duration:   2 * time.Millisecond,
		Logger:     logger,
	}
	Default().Log(state)

	want := "level=INFO message= Method=getMedia HttpMethod=POST URL=http://open.denglu.cc/api/v3/get_media" +
		" Params=appid=A Attempts=1 StatusCode=200 Duration=2\n"
	assert.Equal(t, want, logger.String())
}

func TestDefault_sameAsDefaultLogSetups(t *testing.T) {
	apiErr := denglu.NewApiError(denglu.ErrCodeMediaUserNotFound, "")
	newState := func(logger logx.Logger) *denglu.CallState {
		return &denglu.CallState{
			Method:     "unbind",
			URL:        "http://open.denglu.cc/api/v3/unbind",
			HttpMethod: "POST",
			Params:     map[string]string{"muid": "1", "sign": "709ea613909194e1f7dbeb9c04d1ae77"},
			Attempts:   2,
			StatusCode: 200,
			Duration:   3 * time.Millisecond,
			Error:      apiErr,
			Logger:     logger,
		}
	}

	byDefault := denglutest.NewLogRecorder()
	Default().Log(newState(byDefault))

	byCore := denglutest.NewLogRecorder()
	denglu.DefaultLogSetups().Log(newState(byCore))

	assert.Equal(t, byDefault.String(), byCore.String())
	assert.Equal(t, "muid=1&sign=709e****", byCore.Last()["Params"])
	assert.Equal(t, "WARN", byCore.Last()["level"])
}
