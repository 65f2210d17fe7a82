package denglu

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cmstar/go-logx"
)

const (
	// 默认的 HTTP 连接超时时间。
	DefaultTimeout = 30 * time.Second

	// 默认的最大尝试次数（含第一次请求）。
	DefaultMaxAttempts = 3

	// 默认的重试等待时间，每次重试后以指数方式增长，直到 DefaultMaxWaitTime 。
	DefaultWaitTime    = 500 * time.Millisecond
	DefaultMaxWaitTime = 5 * time.Second
)

// RetryPolicy 指定请求超时后的重试策略。仅超时的请求会被重试。
type RetryPolicy struct {
	// MaxAttempts 是最大尝试次数，包含第一次请求。为 0 时使用 [DefaultMaxAttempts] ；为 1 表示不重试。
	MaxAttempts int

	// WaitTime 是第一次重试前的等待时间，之后以指数方式增长。为 0 时使用 [DefaultWaitTime] 。
	WaitTime time.Duration

	// MaxWaitTime 是两次重试之间最长的等待时间。为 0 时使用 [DefaultMaxWaitTime] 。
	MaxWaitTime time.Duration
}

// Config 用于初始化 [Client] 。 [Client] 创建后，配置不可修改。
type Config struct {
	AppID  string // 灯鹭后台分配的 appID ，必填。
	ApiKey string // 灯鹭后台分配的 apiKey ，必填。

	// Domain 是灯鹭 API 的域名，为空时使用 [DefaultDomain] 。
	Domain string

	// Charset 是网站使用的字符集，为空时使用 [CharsetUTF8] 。
	Charset Charset

	// SignatureMethod 是签名算法，为空时使用 [SignatureMD5] ，暂时只支持 MD5 。
	SignatureMethod SignatureMethod

	// Timeout 是 HTTP 请求的超时时间，为 0 时使用 [DefaultTimeout] 。
	Timeout time.Duration

	// EnableTLS 为 true 时，总是使用 https 访问 Domain ；否则使用 Domain 本身给出的协议。
	EnableTLS bool

	// Retry 是请求超时后的重试策略。
	Retry RetryPolicy

	// Endpoints 是 API 方法名称到 URL 路径的映射，为 nil 时使用 [DefaultEndpoints] 。
	Endpoints *Catalog

	// Providers 是 Provider 到 URL 后缀的映射，为 nil 时使用 [DefaultProviders] 。
	Providers *Catalog

	// Logger 用于记录每次调用的日志。为 nil 时不记录日志。
	Logger logx.Logger

	// LogSetups 用于生成日志内容，为 nil 时使用 [DefaultLogSetups] 。
	LogSetups LogSetupPipeline

	// Clock 用于获取当前时间，生成 timestamp 参数。为 nil 时使用 [time.Now] 。
	Clock func() time.Time

	// HTTPClient 若给定，则使用其 Transport 发送请求。其 Timeout 字段被忽略，超时时间以 Timeout 字段为准。
	HTTPClient *http.Client
}

// normalize 校验配置，并为未赋值的字段填写默认值。返回一个新的 Config 。
func (cfg Config) normalize() (Config, error) {
	if cfg.AppID == "" {
		return cfg, fmt.Errorf("appID must be provided")
	}

	if cfg.ApiKey == "" {
		return cfg, fmt.Errorf("apiKey must be provided")
	}

	if cfg.Domain == "" {
		cfg.Domain = DefaultDomain
	}
	domain, err := resolveDomain(cfg.Domain, cfg.EnableTLS)
	if err != nil {
		return cfg, err
	}
	cfg.Domain = domain

	if cfg.Charset == "" {
		cfg.Charset = CharsetUTF8
	}

	if cfg.SignatureMethod == "" {
		cfg.SignatureMethod = SignatureMD5
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Retry.WaitTime <= 0 {
		cfg.Retry.WaitTime = DefaultWaitTime
	}
	if cfg.Retry.MaxWaitTime <= 0 {
		cfg.Retry.MaxWaitTime = DefaultMaxWaitTime
	}
	if cfg.Retry.MaxWaitTime < cfg.Retry.WaitTime {
		cfg.Retry.MaxWaitTime = cfg.Retry.WaitTime
	}

	if cfg.Endpoints == nil {
		cfg.Endpoints = DefaultEndpoints()
	}

	if cfg.Providers == nil {
		cfg.Providers = DefaultProviders()
	}

	if cfg.LogSetups == nil {
		cfg.LogSetups = DefaultLogSetups()
	}

	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	return cfg, nil
}

// resolveDomain 校验域名格式并移除末尾的“/”。 enableTLS 为 true 时，协议被替换为 https 。
func resolveDomain(domain string, enableTLS bool) (string, error) {
	u, err := url.Parse(strings.TrimRight(domain, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid domain %q: %w", domain, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid domain %q: the scheme must be http or https", domain)
	}

	if u.Host == "" {
		return "", fmt.Errorf("invalid domain %q: missing host", domain)
	}

	if enableTLS {
		u.Scheme = "https"
	}
	return u.String(), nil
}
