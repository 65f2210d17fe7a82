// denglu-mock 启动一个模拟的灯鹭 API 服务器，数据保存在内存中，用于本地开发和联调。
//
// 用法：
//
//	denglu-mock -addr :8080 -appid my_appid -apikey my_apikey -skew 5m
package main

import (
	"flag"
	"os"
	"time"

	"github.com/cmstar/go-denglu"
	"github.com/cmstar/go-denglu/dengluserver"
	"github.com/cmstar/go-denglu/denglutest"
	"github.com/cmstar/go-logx"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address, IP:PORT")
	appID := flag.String("appid", "my_appid", "the accepted appid")
	apiKey := flag.String("apikey", "my_apikey", "the apiKey of the appid")
	skew := flag.Duration("skew", 5*time.Minute, "max deviation of timestamp, negative to disable the check")
	charset := flag.String("charset", string(denglu.CharsetUTF8), "charset of request params, utf-8 or gbk")
	flag.Parse()

	logger := logx.NewStdLogger(nil)

	engine := dengluserver.NewEngine(dengluserver.Options{
		Apps:        map[string]string{*appID: *apiKey},
		Charset:     denglu.Charset(*charset),
		TimeChecker: dengluserver.MaxDeviationTimeChecker(*skew, time.Now),
		Logger:      logger,
	})

	backend := denglutest.NewBackend()
	seed(backend)
	backend.Register(engine)

	logger.Log(logx.LevelInfo, "denglu-mock started", "Addr", *addr, "AppID", *appID)
	if err := engine.Start(*addr); err != nil {
		logger.Log(logx.LevelFatal, "denglu-mock stopped", "Error", err.Error())
		os.Exit(1)
	}
}

// seed 写入一组演示数据。
func seed(b *denglutest.Backend) {
	b.AddMedia(
		denglu.Media{MediaID: 3, MediaName: "新浪微博", MediaNameEn: "sina"},
		denglu.Media{MediaID: 7, MediaName: "人人网", MediaNameEn: "renren"},
		denglu.Media{MediaID: 13, MediaName: "QQ空间", MediaNameEn: "qzone", ShareFlag: 1},
	)

	b.AddUser("demo_token", denglu.UserInfo{
		MediaID:     3,
		MediaUserID: 1001,
		ScreenName:  "demo",
		Name:        "Demo User",
	})
	b.AddUser("", denglu.UserInfo{MediaID: 7, MediaUserID: 1002, ScreenName: "friend"})
	b.AddFriend(1001, 1002)

	b.AddComment(denglu.Comment{
		CommentID:   1,
		PostID:      "1",
		Content:     "hello",
		MediaID:     3,
		MediaUserID: 1001,
		UserName:    "demo",
	})
}
