package denglu

import (
	"context"
	"strings"
)

/*
当前文件提供各个业务接口，每个接口都是对 Client.Call 的简单封装。
*/

// DefaultCommentCount 是 [Client.GetComments] 默认返回的记录条数。
const DefaultCommentCount = 50

// callTyped 调用 API 并将结果转换为 T 类型。
func callTyped[T any](ctx context.Context, c *Client, method string, params Params) (T, error) {
	v, err := c.Call(ctx, method, params)
	if err != nil {
		var zero T
		return zero, err
	}
	return convertResult[T](v)
}

// callComments 调用返回评论列表的接口。
func callComments(ctx context.Context, c *Client, method string, params Params) ([]Comment, error) {
	list, err := callTyped[[]commentData](ctx, c, method, params)
	if err != nil || list == nil {
		return nil, err
	}

	res := make([]Comment, len(list))
	for i := range list {
		res[i] = *list[i].toComment()
	}
	return res, nil
}

// LatestComment 获取最新评论。 count 为评论条数。
func (c *Client) LatestComment(ctx context.Context, count int) ([]Comment, error) {
	return callComments(ctx, c, MethodLatestComment, Params{"count": count})
}

// GetComments 返回自己应用的评论列表，用于本地化保存评论数据。
//   - commentID 若大于 0 ，则返回 ID 比 commentID 大的评论（即比 commentID 时间晚的评论）。
//   - count 返回的记录条数，小于等于 0 时使用 [DefaultCommentCount] 。
func (c *Client) GetComments(ctx context.Context, commentID int64, count int) ([]Comment, error) {
	if count <= 0 {
		count = DefaultCommentCount
	}
	return callComments(ctx, c, MethodGetComments, Params{"commentid": commentID, "count": count})
}

// GetCommentState 返回自己应用的评论更新状态，比如评论被删除、审核，可以同步评论状态到本地。
// hours 是时间范围，单位为 1 小时。返回评论ID到状态的映射。
func (c *Client) GetCommentState(ctx context.Context, hours int) (map[string]CommentState, error) {
	states, err := callTyped[map[string]int](ctx, c, MethodGetCommentState, Params{"time": hours})
	if err != nil || states == nil {
		return nil, err
	}

	res := make(map[string]CommentState, len(states))
	for id, state := range states {
		res[id] = CommentState(state)
	}
	return res, nil
}

// GetUserInfoByToken 根据 token 获取用户信息。
func (c *Client) GetUserInfoByToken(ctx context.Context, token string) (*UserInfo, error) {
	info, err := callTyped[UserInfo](ctx, c, MethodGetUserInfo, Params{"token": token})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// GetMedia 获取当前应用ID绑定的所有社会化媒体及其属性。
func (c *Client) GetMedia(ctx context.Context) ([]Media, error) {
	return callTyped[[]Media](ctx, c, MethodGetMedia, Params{})
}

// GetBind 获得同一用户的多个社会化媒体用户信息。
func (c *Client) GetBind(ctx context.Context, user UserKey) ([]MediaUser, error) {
	return callMediaUsers(ctx, c, MethodGetBind, user)
}

// GetInvite 获取可以邀请的媒体用户列表。
func (c *Client) GetInvite(ctx context.Context, user UserKey) ([]MediaUser, error) {
	return callMediaUsers(ctx, c, MethodGetInvite, user)
}

// GetRecommend 获取可以推荐的媒体用户列表。
func (c *Client) GetRecommend(ctx context.Context, user UserKey) ([]MediaUser, error) {
	return callMediaUsers(ctx, c, MethodGetRecommend, user)
}

func callMediaUsers(ctx context.Context, c *Client, method string, user UserKey) ([]MediaUser, error) {
	params, err := user.params()
	if err != nil {
		return nil, err
	}
	return callTyped[[]MediaUser](ctx, c, method, params)
}

// SendInvite 向 inviteMuids 给出的媒体用户发送邀请，多个ID以逗号拼接后作为 invitemuids 参数。
func (c *Client) SendInvite(ctx context.Context, user UserKey, inviteMuids ...string) (*OpResult, error) {
	params, err := user.params()
	if err != nil {
		return nil, err
	}

	params["invitemuids"] = strings.Join(inviteMuids, ",")
	return callOp(ctx, c, MethodSendInvite, params)
}

// Bind 将社会化媒体账号绑定到网站的已有账号上。
func (c *Client) Bind(ctx context.Context, req BindRequest) (*OpResult, error) {
	return callOp(ctx, c, MethodBind, Params{
		"muid":   req.MediaUserID,
		"uid":    req.UID,
		"uname":  req.UserName,
		"uemail": req.UserEmail,
	})
}

// Unbind 解除社会化媒体账号的绑定。
func (c *Client) Unbind(ctx context.Context, mediaUserID string) (*OpResult, error) {
	return callOp(ctx, c, MethodUnbind, Params{"muid": mediaUserID})
}

// SendLoginFeed 发送登录的新鲜事。 mediaUserID 是从灯鹭获取的 mediaUserID 。
func (c *Client) SendLoginFeed(ctx context.Context, mediaUserID string) (*OpResult, error) {
	return callOp(ctx, c, MethodLogin, Params{"muid": mediaUserID})
}

// Share 在用户发布帖子、日志等信息时，把此信息分享到第三方。可选字段为空时也会作为空字符串发送。
func (c *Client) Share(ctx context.Context, req ShareRequest) (*OpResult, error) {
	return callOp(ctx, c, MethodShare, Params{
		"muid":     req.MediaUserID,
		"uid":      req.UID,
		"content":  req.Content,
		"url":      req.URL,
		"imageurl": req.ImageURL,
		"videourl": req.VideoURL,
		"param1":   req.Param1,
	})
}

// UnbindAll 解除用户绑定的所有社会化媒体账号。 uid 是网站用户的唯一性标识ID。
func (c *Client) UnbindAll(ctx context.Context, uid string) (*OpResult, error) {
	return callOp(ctx, c, MethodUnbindAll, Params{"uid": uid})
}

func callOp(ctx context.Context, c *Client, method string, params Params) (*OpResult, error) {
	res, err := callTyped[OpResult](ctx, c, method, params)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
