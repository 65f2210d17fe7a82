package denglu

const (
	// DefaultDomain 是灯鹭 API 的默认域名。
	// 可通过 [Config.Domain] 修改，以满足二级域名重定向等需求。
	DefaultDomain = "http://open.denglu.cc"

	// Version 是当前 SDK 的版本。
	Version = "1.0"
)

const (
	// ContentTypeForm 对应 Content-Type: application/x-www-form-urlencoded 的值。
	ContentTypeForm = "application/x-www-form-urlencoded"

	// ContentTypeJson 对应 Content-Type: application/json 的值。
	ContentTypeJson = "application/json"
)

const (
	HttpHeaderContentType    = "Content-Type"
	HttpHeaderAccept         = "Accept"
	HttpHeaderAcceptLanguage = "Accept-Language"
	HttpHeaderConnection     = "Connection"
)

// 由 [Client] 自动追加到每个请求上的参数名称。
const (
	ParamTimestamp = "timestamp"
	ParamAppID     = "appid"
	ParamSignType  = "sign_type"
	ParamSign      = "sign"
)

// 灯鹭 API 的错误码。 1-9 由服务器返回， 10 在本地无法连接服务器时生成。
const (
	ErrCodeBadParams          = 1  // 参数错误，请参考API文档。
	ErrCodeSiteNotFound       = 2  // 站点不存在。
	ErrCodeBadTimestamp       = 3  // 时间戳有误。
	ErrCodeUnsupportedSign    = 4  // 只支持md5签名。
	ErrCodeBadSign            = 5  // 签名不正确。
	ErrCodeTokenExpired       = 6  // token已过期。
	ErrCodeMediaUserNotFound  = 7  // 媒体用户不存在。
	ErrCodeMediaUserBound     = 8  // 媒体用户已绑定其他用户。
	ErrCodeMediaUserUnbound   = 9  // 媒体用户已解绑。
	ErrCodeUnknown            = 10 // 未知错误。
	errCodeDescriptionUnknown = "未知错误"
)

var _errCodeDescriptions = map[int]string{
	ErrCodeBadParams:         "参数错误，请参考API文档",
	ErrCodeSiteNotFound:      "站点不存在",
	ErrCodeBadTimestamp:      "时间戳有误",
	ErrCodeUnsupportedSign:   "只支持md5签名",
	ErrCodeBadSign:           "签名不正确",
	ErrCodeTokenExpired:      "token已过期",
	ErrCodeMediaUserNotFound: "媒体用户不存在",
	ErrCodeMediaUserBound:    "媒体用户已绑定其他用户",
	ErrCodeMediaUserUnbound:  "媒体用户已解绑",
	ErrCodeUnknown:           errCodeDescriptionUnknown,
}

// ErrorCodeDescription 返回错误码对应的描述。未定义的错误码返回“未知错误”。
func ErrorCodeDescription(code int) string {
	if v, ok := _errCodeDescriptions[code]; ok {
		return v
	}
	return errCodeDescriptionUnknown
}

const (
	// 服务器返回空内容时，本地生成的错误描述。
	emptyResponseDescription = "Your website can't connect to denglu server!"

	// AuthURL 遇到不认识的 Provider 时的错误描述。
	unknownProviderDescription = "Please update your denglu-go to the latest version!"

	// UserKey 的 muid 和 uid 都为空时的错误描述。
	emptyUserKeyDescription = "muid or uid must be provided"
)
