package denglutest

import (
	"sync"
	"testing"

	"github.com/cmstar/go-logx"
	"github.com/stretchr/testify/assert"
)

func TestLogRecorder(t *testing.T) {
	r := NewLogRecorder()
	assert := assert.New(t)
	assert.Empty(r.String())
	assert.Nil(r.Last())

	r.Log(logx.LevelDebug, "")
	r.Log(logx.LevelError, "msg")
	r.Log(logx.LevelInfo, "", "Method", "getMedia", "Attempts", 2, 3)
	r.LogFn(logx.LevelWarn, func() (string, []any) {
		return "msg", []any{"ErrorType", "ApiError"}
	})

	res := r.String()
	want := `level=DEBUG message=
level=ERROR message=msg
level=INFO message= Method=getMedia Attempts=2 UNKNOWN=3
level=WARN message=msg ErrorType=ApiError
`
	assert.Equal(want, res)

	checkMap := func(idx int, key, wantValue string) {
		m := r.Map()[idx]
		v := m[key]
		assert.Equal(wantValue, v)
	}

	checkMap(0, "level", "DEBUG")
	checkMap(0, "message", "")

	checkMap(1, "level", "ERROR")
	checkMap(1, "message", "msg")

	checkMap(2, "level", "INFO")
	checkMap(2, "Method", "getMedia")
	checkMap(2, "Attempts", "2")
	checkMap(2, "UNKNOWN", "3")

	assert.Equal("ApiError", r.Last()["ErrorType"])

	r.Reset()
	assert.Empty(r.String())
	assert.Len(r.Map(), 0)
}

func TestLogRecorder_ByMethod(t *testing.T) {
	r := NewLogRecorder()
	r.Log(logx.LevelInfo, "", "Method", "getMedia", "AppID", "A")
	r.Log(logx.LevelInfo, "", "Method", "unbind")
	r.Log(logx.LevelWarn, "", "Method", "getMedia", "Attempts", 1)
	r.Log(logx.LevelInfo, "started")

	res := r.ByMethod("getMedia")
	assert.Len(t, res, 2)
	assert.Equal(t, "A", res[0]["AppID"])
	assert.Equal(t, "WARN", res[1]["level"])

	assert.Len(t, r.ByMethod("unbind"), 1)
	assert.Nil(t, r.ByMethod("bind"))
}

func TestLogRecorder_concurrent(t *testing.T) {
	r := NewLogRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Log(logx.LevelInfo, "m")
		}()
	}
	wg.Wait()

	assert.Len(t, r.Map(), 20)
}
