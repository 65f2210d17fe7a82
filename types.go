package denglu

// Media 是当前应用绑定的社会化媒体及其属性，见 [Client.GetMedia] 。
type Media struct {
	MediaID             int    // ID 。
	MediaName           string // 社会化媒体的名称，如“人人网”。
	MediaNameEn         string // 社会化媒体的名称的拼音，如 renren ，可通过 [GuessProvider] 得到 Provider 。
	MediaIconImage      string // 社会化媒体亮色Icon（ png ）。
	MediaIconImageGif   string // 社会化媒体亮色Icon（ gif ）。
	MediaIconNoImage    string // 社会化媒体灰色Icon（ png ）。
	MediaIconNoImageGif string // 社会化媒体灰色Icon（ gif ）。
	MediaImage          string // 社会化媒体大图标。
	ShareFlag           int    // 是否有分享功能， 0 是 1 否。
	ApiKey              string // 社会化媒体的应用 apikey 。
}

// CanShare 返回该媒体是否支持分享。
func (m Media) CanShare() bool {
	return m.ShareFlag == 0
}

// UserInfo 是通过 token 获取的媒体用户信息，见 [Client.GetUserInfoByToken] 。
type UserInfo struct {
	MediaID         int    // 媒体ID。
	MediaUserID     int64  // 用户ID。
	PersonID        int64  // 个人ID。
	ScreenName      string // 显示姓名。
	Name            string // 友好显示名称。
	ProfileImageUrl string // 个人头像。
	Url             string // 用户博客/主页地址。
	Domain          string // 用户个性化URL。
	Description     string // 个人描述。
	Gender          int    // 性别 1--男，0--女,2--未知。
	Location        string // 地址。
	Province        string // 省份。
	City            string // 城市。
	Verified        int    // 认证标志。
	FriendsCount    int    // 好友数。
	FollowersCount  int    // 粉丝数。
	FavouritesCount int    // 收藏数。
	StatusesCount   int    // 微博/日记数。
	CreateTime      string // 创建时间。
	CreatedAt       string // 在媒体上的创建时间。
}

// MediaUser 是社会化媒体上的一个用户，见 [Client.GetBind] 等。
type MediaUser struct {
	MediaUserID int64
	MediaID     int
	ScreenName  string
}

// CommentState 是评论的状态。
type CommentState int

const (
	CommentStateNormal   CommentState = 0 // 正常评论。
	CommentStatePending  CommentState = 1 // 待审。
	CommentStateSpam     CommentState = 2 // 垃圾评论。
	CommentStateRecycled CommentState = 3 // 回收站。
	CommentStateDeleted  CommentState = 4 // 删除。
)

func (s CommentState) String() string {
	switch s {
	case CommentStateNormal:
		return "normal"
	case CommentStatePending:
		return "pending"
	case CommentStateSpam:
		return "spam"
	case CommentStateRecycled:
		return "recycled"
	case CommentStateDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Comment 是一条评论，见 [Client.GetComments] 。
type Comment struct {
	CommentID   int64
	PostID      string // 文章ID，对应分享时的 param1 。
	Content     string
	MediaID     int
	MediaUserID int64
	UserName    string
	UserEmail   string
	UserImage   string
	Homepage    string
	IP          string
	State       CommentState
	CreateTime  string
	Parent      *Comment // 父级评论，没有时为 nil 。
}

// commentData 是评论在 JSON 中的结构。 [Conv] 不能把整数直接写入 CommentState 这样的命名类型，
// 先转换为 commentData ，再通过 toComment 得到 [Comment] 。
type commentData struct {
	CommentID   int64
	PostID      string
	Content     string
	MediaID     int
	MediaUserID int64
	UserName    string
	UserEmail   string
	UserImage   string
	Homepage    string
	IP          string
	State       int
	CreateTime  string
	Parent      *commentData
}

func (x *commentData) toComment() *Comment {
	if x == nil {
		return nil
	}

	return &Comment{
		CommentID:   x.CommentID,
		PostID:      x.PostID,
		Content:     x.Content,
		MediaID:     x.MediaID,
		MediaUserID: x.MediaUserID,
		UserName:    x.UserName,
		UserEmail:   x.UserEmail,
		UserImage:   x.UserImage,
		Homepage:    x.Homepage,
		IP:          x.IP,
		State:       CommentState(x.State),
		CreateTime:  x.CreateTime,
		Parent:      x.Parent.toComment(),
	}
}

// OpResult 是绑定、分享等操作的返回结果，格式为 {"result": "1"} 。
type OpResult struct {
	Result string
}

// OK 返回操作是否成功。
func (r *OpResult) OK() bool {
	return r != nil && r.Result == "1"
}

// UserKey 用于指定一个用户，用在使用 muid 或 uid 之一作为参数的接口上。
// MediaUserID 不为空时使用 muid ，否则使用 uid 。两者都为空时，接口在本地返回 [ErrCodeBadParams] ，不发送请求。
type UserKey struct {
	MediaUserID string // 社会化媒体的用户ID（ muid ）。
	UID         string // 用户网站的用户ID（ uid ）。
}

func (k UserKey) params() (Params, error) {
	switch {
	case k.MediaUserID != "":
		return Params{"muid": k.MediaUserID}, nil
	case k.UID != "":
		return Params{"uid": k.UID}, nil
	default:
		return nil, NewApiError(ErrCodeBadParams, emptyUserKeyDescription)
	}
}

// BindRequest 是 [Client.Bind] 的参数。
type BindRequest struct {
	MediaUserID string // 社会化媒体的用户ID。
	UID         string // 用户网站那边的用户ID。
	UserName    string // 用户网站的昵称。
	UserEmail   string // 用户网站的邮箱。
}

// ShareRequest 是 [Client.Share] 的参数。
type ShareRequest struct {
	MediaUserID string // 从灯鹭获取的 mediaUserID 。
	UID         string // 网站用户的唯一性标识ID。
	Content     string // 分享显示的信息。
	URL         string // 查看信息的链接。
	ImageURL    string // 图片URL，可选。
	VideoURL    string // 视频URL，可选。
	Param1      string // 文章ID，可选，用于同步微博的评论抓取回来。
}
