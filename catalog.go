package denglu

import "sort"

// Catalog 是一个只读的名称到值的映射，用于记录接口目录和 Provider 目录。
// 创建后不可修改，可以在多个 [Client] 间共享。
type Catalog struct {
	m map[string]string
}

// NewCatalog 基于给定的 map 创建 [Catalog] 。 map 会被复制，后续对 m 的修改不影响 [Catalog] 。
func NewCatalog(m map[string]string) *Catalog {
	c := &Catalog{m: make(map[string]string, len(m))}
	for k, v := range m {
		c.m[k] = v
	}
	return c
}

// Lookup 获取名称对应的值。返回一个 bool 表示名称是否存在。
func (c *Catalog) Lookup(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.m[name]
	return v, ok
}

// Names 返回全部名称，按升序排列。
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}

	names := make([]string, 0, len(c.m))
	for k := range c.m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Len 返回 [Catalog] 中的元素个数。
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.m)
}

// 灯鹭 API 的方法名称，对应 [DefaultEndpoints] 中的 key 。
const (
	MethodBind            = "bind"
	MethodUnbind          = "unbind"
	MethodLogin           = "login"
	MethodGetUserInfo     = "getUserInfo"
	MethodShare           = "share"
	MethodGetMedia        = "getMedia"
	MethodUnbindAll       = "unbindAll"
	MethodGetBind         = "getBind"
	MethodGetInvite       = "getInvite"
	MethodGetRecommend    = "getRecommend"
	MethodSendInvite      = "sendInvite"
	MethodLatestComment   = "latestComment"   // 最新评论。
	MethodGetComments     = "getComments"     // 评论列表，用于数据本地化。
	MethodGetCommentState = "getCommentState" // 评论状态列表。
)

var _defaultEndpoints = NewCatalog(map[string]string{
	MethodBind:            "/api/v3/bind",
	MethodUnbind:          "/api/v3/unbind",
	MethodLogin:           "/api/v3/send_login_feed",
	MethodGetUserInfo:     "/api/v4/user_info",
	MethodShare:           "/api/v4/share",
	MethodGetMedia:        "/api/v3/get_media",
	MethodUnbindAll:       "/api/v3/all_unbind",
	MethodGetBind:         "/api/v3/bind_info",
	MethodGetInvite:       "/api/v3/friends",
	MethodGetRecommend:    "/api/v3/recommend_user",
	MethodSendInvite:      "/api/v3/invite",
	MethodLatestComment:   "/api/v4/latest_comment",
	MethodGetComments:     "/api/v4/get_comment_list",
	MethodGetCommentState: "/api/v4/get_change_comment_ids",
})

var _defaultProviders = func() *Catalog {
	names := []string{
		"google", "windowslive", "sina", "tencent", "sohu", "netease", "renren",
		"kaixin001", "douban", "yahoo", "qzone", "alipay", "taobao", "tianya",
		"alipayquick", "guard360", "tianyi", "facebook", "twitter",
	}

	m := make(map[string]string, len(names))
	for _, name := range names {
		m[name] = "/transfer/" + name
	}
	return NewCatalog(m)
}()

// DefaultEndpoints 返回灯鹭 RESTful API 的方法名称到 URL 路径的映射。
func DefaultEndpoints() *Catalog {
	return _defaultEndpoints
}

// DefaultProviders 返回 Provider 到 /transfer/{name} 地址后缀的映射，用于 [Client.AuthURL] 。
func DefaultProviders() *Catalog {
	return _defaultProviders
}
