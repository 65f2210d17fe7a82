package denglu

import (
	"net/url"
	"strconv"
	"strings"
)

type authOptions struct {
	bind bool
	uid  int64
}

// AuthOption 用于定制 [Client.AuthURL] 生成的地址。
type AuthOption func(o *authOptions)

// WithBind 指定生成的地址用于绑定（而不是登录）， uid 是用户网站的用户ID。
// uid 不大于 0 时，生成的地址不带 uid 参数。
func WithBind(uid int64) AuthOption {
	return func(o *authOptions) {
		o.bind = true
		o.uid = uid
	}
}

// AuthURL 获取登录或绑定的跳转地址。此方法不发送请求，生成的地址也不带签名。
//
// provider 可通过 [GuessProvider] 从媒体列表的 mediaNameEn 得到。
// provider 不在 [Config.Providers] 中时，返回 [ErrCodeBadParams] 的 [*ApiError] 。
func (c *Client) AuthURL(provider string, opts ...AuthOption) (string, error) {
	suffix, ok := c.cfg.Providers.Lookup(provider)
	if !ok {
		return "", NewApiError(ErrCodeBadParams, unknownProviderDescription)
	}

	var o authOptions
	for _, opt := range opts {
		opt(&o)
	}

	var b strings.Builder
	b.WriteString(c.cfg.Domain)
	b.WriteString(suffix)
	b.WriteString("?appid=")
	b.WriteString(url.QueryEscape(c.cfg.AppID))
	b.WriteString("&appkey=")
	b.WriteString(url.QueryEscape(c.cfg.ApiKey))

	if o.bind && o.uid > 0 {
		b.WriteString("&uid=")
		b.WriteString(strconv.FormatInt(o.uid, 10))
	}

	return b.String(), nil
}

// GuessProvider 根据媒体列表（ [Client.GetMedia] ）中的 mediaNameEn 获取对应的 Provider 。
// 在 [DefaultProviders] 中找不到时，第二个返回值为 false 。
func GuessProvider(mediaNameEn string) (string, bool) {
	p := strings.ToLower(strings.TrimSpace(mediaNameEn))
	if _, ok := _defaultProviders.Lookup(p); ok {
		return p, true
	}
	return "", false
}
