// Package denglutest 提供用于测试灯鹭 API 调用的辅助工具：
// 基于内存的 [Backend] ，启动模拟服务器的 [NewServer] ，以及记录日志的 [LogRecorder] 。
package denglutest

import (
	"net/http/httptest"
	"testing"

	"github.com/cmstar/go-denglu"
	"github.com/cmstar/go-denglu/dengluserver"
)

const (
	// AppID 是 [NewServer] 使用的 appID 。
	AppID = "test_appid"

	// ApiKey 是 [NewServer] 使用的 apiKey 。
	ApiKey = "test_apikey"
)

// NewServer 基于 backend 启动一个 httptest 服务器，并返回连接到此服务器的 [denglu.Client] 。
// 服务器在测试结束时自动关闭。
//
// configure 可用于修改客户端的配置，其中的 AppID 、 ApiKey 、 Charset 和 Logger 也会被服务器使用；
// Domain 总是被替换为服务器的地址。默认不重试。
func NewServer(t testing.TB, backend *Backend, configure ...func(cfg *denglu.Config)) (*httptest.Server, *denglu.Client) {
	t.Helper()

	cfg := denglu.Config{
		AppID:  AppID,
		ApiKey: ApiKey,
		Retry:  denglu.RetryPolicy{MaxAttempts: 1},
	}
	for _, f := range configure {
		f(&cfg)
	}

	engine := dengluserver.NewEngine(dengluserver.Options{
		Apps:      map[string]string{cfg.AppID: cfg.ApiKey},
		Charset:   cfg.Charset,
		Endpoints: cfg.Endpoints,
		Logger:    cfg.Logger,
	})
	backend.Register(engine)

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	cfg.Domain = server.URL
	cfg.EnableTLS = false
	client, err := denglu.NewClient(cfg)
	if err != nil {
		t.Fatalf("denglutest: create client: %v", err)
	}

	return server, client
}
