package denglutest

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/cmstar/go-denglu"
	"github.com/cmstar/go-denglu/dengluserver"
	"github.com/cmstar/go-errx"
)

// ShareRecord 记录一次 share 调用。
type ShareRecord struct {
	MediaUserID string
	UID         string
	Content     string
	URL         string
	ImageURL    string
	VideoURL    string
	Param1      string
}

// InviteRecord 记录一次 sendInvite 调用。
type InviteRecord struct {
	MediaUserID string
	UID         string
	InviteMuids []string
}

// Backend 是一个基于内存的灯鹭 API 实现，配合 [dengluserver.Engine] 使用。
// 可以并发使用。
//
// 媒体用户以 mediaUserID 为标识，通过 [Backend.AddUser] 添加，并可通过 token 获取其信息。
// 媒体用户与网站用户（ uid ）的绑定关系通过 bind/unbind 接口维护。
type Backend struct {
	mu sync.Mutex

	media         []denglu.Media
	users         map[string]denglu.UserInfo // muid -> user
	tokens        map[string]string          // token -> muid
	expired       map[string]bool            // token -> expired
	bindings      map[string]string          // muid -> uid
	friends       map[string][]string        // muid -> muids
	comments      []denglu.Comment
	commentStates map[string]denglu.CommentState
	shares        []ShareRecord
	invites       []InviteRecord
	loginFeeds    []string
}

// NewBackend 创建一个空的 [Backend] 。
func NewBackend() *Backend {
	return &Backend{
		users:         make(map[string]denglu.UserInfo),
		tokens:        make(map[string]string),
		expired:       make(map[string]bool),
		bindings:      make(map[string]string),
		friends:       make(map[string][]string),
		commentStates: make(map[string]denglu.CommentState),
	}
}

// AddMedia 添加应用绑定的社会化媒体。
func (b *Backend) AddMedia(media ...denglu.Media) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.media = append(b.media, media...)
}

// AddUser 添加一个媒体用户， token 用于 getUserInfo 接口。
func (b *Backend) AddUser(token string, user denglu.UserInfo) {
	b.mu.Lock()
	defer b.mu.Unlock()

	muid := formatID(user.MediaUserID)
	b.users[muid] = user
	if token != "" {
		b.tokens[token] = muid
	}
}

// ExpireToken 使 token 过期，之后用其获取用户信息时返回 [denglu.ErrCodeTokenExpired] 。
func (b *Backend) ExpireToken(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.expired[token] = true
}

// AddFriend 将 friend 添加为 muid 的好友，用于 getInvite 和 getRecommend 接口。
func (b *Backend) AddFriend(muid int64, friend int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	k := formatID(muid)
	b.friends[k] = append(b.friends[k], formatID(friend))
}

// AddComment 添加一条评论，评论的状态同时被记录。
func (b *Backend) AddComment(comments ...denglu.Comment) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, c := range comments {
		b.comments = append(b.comments, c)
		b.commentStates[formatID(c.CommentID)] = c.State
	}
	sort.Slice(b.comments, func(i, j int) bool {
		return b.comments[i].CommentID < b.comments[j].CommentID
	})
}

// SetCommentState 修改评论的状态。
func (b *Backend) SetCommentState(commentID int64, state denglu.CommentState) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.commentStates[formatID(commentID)] = state
	for i := range b.comments {
		if b.comments[i].CommentID == commentID {
			b.comments[i].State = state
		}
	}
}

// Bindings 返回当前的绑定关系： muid -> uid 。
func (b *Backend) Bindings() map[string]string {
	b.mu.Lock()
	defer b.mu.Unlock()

	res := make(map[string]string, len(b.bindings))
	for k, v := range b.bindings {
		res[k] = v
	}
	return res
}

// Shares 返回 share 接口收到的全部记录。
func (b *Backend) Shares() []ShareRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]ShareRecord(nil), b.shares...)
}

// Invites 返回 sendInvite 接口收到的全部记录。
func (b *Backend) Invites() []InviteRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]InviteRecord(nil), b.invites...)
}

// LoginFeeds 返回 login 接口收到的 muid 。
func (b *Backend) LoginFeeds() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.loginFeeds...)
}

// Register 将 [denglu.DefaultEndpoints] 中的全部接口注册到 engine 上。
func (b *Backend) Register(e *dengluserver.Engine) {
	handlers := map[string]func(req *dengluserver.Request) (any, error){
		denglu.MethodBind:            b.bind,
		denglu.MethodUnbind:          b.unbind,
		denglu.MethodLogin:           b.login,
		denglu.MethodGetUserInfo:     b.getUserInfo,
		denglu.MethodShare:           b.share,
		denglu.MethodGetMedia:        b.getMedia,
		denglu.MethodUnbindAll:       b.unbindAll,
		denglu.MethodGetBind:         b.getBind,
		denglu.MethodGetInvite:       b.getInvite,
		denglu.MethodGetRecommend:    b.getRecommend,
		denglu.MethodSendInvite:      b.sendInvite,
		denglu.MethodLatestComment:   b.latestComment,
		denglu.MethodGetComments:     b.getComments,
		denglu.MethodGetCommentState: b.getCommentState,
	}

	for method, h := range handlers {
		h := h
		e.Handle(method, func(req *dengluserver.Request) (any, error) {
			b.mu.Lock()
			defer b.mu.Unlock()
			return h(req)
		})
	}
}

// 以下方法均在持有锁的情况下执行。

func (b *Backend) getUserInfo(req *dengluserver.Request) (any, error) {
	token, err := req.Require("token")
	if err != nil {
		return nil, err
	}

	muid, ok := b.tokens[token]
	if !ok || b.expired[token] {
		return nil, bizError(denglu.ErrCodeTokenExpired)
	}
	return userJSON(b.users[muid]), nil
}

func (b *Backend) getMedia(req *dengluserver.Request) (any, error) {
	res := make([]any, 0, len(b.media))
	for _, m := range b.media {
		res = append(res, mediaJSON(m))
	}
	return res, nil
}

func (b *Backend) bind(req *dengluserver.Request) (any, error) {
	muid, err := b.requireUser(req)
	if err != nil {
		return nil, err
	}

	uid, err := req.Require("uid")
	if err != nil {
		return nil, err
	}

	if bound, ok := b.bindings[muid]; ok && bound != uid {
		return nil, bizError(denglu.ErrCodeMediaUserBound)
	}

	b.bindings[muid] = uid
	return opResult, nil
}

func (b *Backend) unbind(req *dengluserver.Request) (any, error) {
	muid, err := b.requireUser(req)
	if err != nil {
		return nil, err
	}

	if _, ok := b.bindings[muid]; !ok {
		return nil, bizError(denglu.ErrCodeMediaUserUnbound)
	}

	delete(b.bindings, muid)
	return opResult, nil
}

func (b *Backend) unbindAll(req *dengluserver.Request) (any, error) {
	uid, err := req.Require("uid")
	if err != nil {
		return nil, err
	}

	found := false
	for muid, bound := range b.bindings {
		if bound == uid {
			delete(b.bindings, muid)
			found = true
		}
	}

	if !found {
		return nil, bizError(denglu.ErrCodeMediaUserUnbound)
	}
	return opResult, nil
}

func (b *Backend) login(req *dengluserver.Request) (any, error) {
	muid, err := b.requireUser(req)
	if err != nil {
		return nil, err
	}

	b.loginFeeds = append(b.loginFeeds, muid)
	return opResult, nil
}

func (b *Backend) share(req *dengluserver.Request) (any, error) {
	muid, err := b.requireUser(req)
	if err != nil {
		return nil, err
	}

	content, err := req.Require("content")
	if err != nil {
		return nil, err
	}

	b.shares = append(b.shares, ShareRecord{
		MediaUserID: muid,
		UID:         req.Get("uid"),
		Content:     content,
		URL:         req.Get("url"),
		ImageURL:    req.Get("imageurl"),
		VideoURL:    req.Get("videourl"),
		Param1:      req.Get("param1"),
	})
	return opResult, nil
}

func (b *Backend) getBind(req *dengluserver.Request) (any, error) {
	muids, err := b.resolveUser(req)
	if err != nil {
		return nil, err
	}
	return b.mediaUsersJSON(muids), nil
}

func (b *Backend) getInvite(req *dengluserver.Request) (any, error) {
	muids, err := b.resolveUser(req)
	if err != nil {
		return nil, err
	}
	return b.mediaUsersJSON(b.friendsOf(muids, false)), nil
}

func (b *Backend) getRecommend(req *dengluserver.Request) (any, error) {
	muids, err := b.resolveUser(req)
	if err != nil {
		return nil, err
	}
	return b.mediaUsersJSON(b.friendsOf(muids, true)), nil
}

func (b *Backend) sendInvite(req *dengluserver.Request) (any, error) {
	if _, err := b.resolveUser(req); err != nil {
		return nil, err
	}

	raw, err := req.Require("invitemuids")
	if err != nil {
		return nil, err
	}

	var invites []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			invites = append(invites, v)
		}
	}

	b.invites = append(b.invites, InviteRecord{
		MediaUserID: req.Get("muid"),
		UID:         req.Get("uid"),
		InviteMuids: invites,
	})
	return opResult, nil
}

func (b *Backend) latestComment(req *dengluserver.Request) (any, error) {
	count, err := req.RequireInt("count")
	if err != nil {
		return nil, err
	}

	res := make([]any, 0)
	for i := len(b.comments) - 1; i >= 0 && int64(len(res)) < count; i-- {
		res = append(res, commentJSON(b.comments[i]))
	}
	return res, nil
}

func (b *Backend) getComments(req *dengluserver.Request) (any, error) {
	since := req.IntOr("commentid", 0)
	count := req.IntOr("count", denglu.DefaultCommentCount)

	res := make([]any, 0)
	for _, c := range b.comments {
		if int64(len(res)) >= count {
			break
		}
		if c.CommentID > since {
			res = append(res, commentJSON(c))
		}
	}
	return res, nil
}

func (b *Backend) getCommentState(req *dengluserver.Request) (any, error) {
	if _, err := req.RequireInt("time"); err != nil {
		return nil, err
	}

	res := make(map[string]any, len(b.commentStates))
	for id, state := range b.commentStates {
		res[id] = int(state)
	}
	return res, nil
}

// requireUser 获取 muid 参数，并校验此媒体用户存在。
func (b *Backend) requireUser(req *dengluserver.Request) (string, error) {
	muid, err := req.Require("muid")
	if err != nil {
		return "", err
	}

	if _, ok := b.users[muid]; !ok {
		return "", bizError(denglu.ErrCodeMediaUserNotFound)
	}
	return muid, nil
}

// resolveUser 根据 muid 或 uid 参数找到同一网站用户绑定的全部 muid ，按升序排列。
// 只给出 muid 且其未绑定时，仅返回其自身。
func (b *Backend) resolveUser(req *dengluserver.Request) ([]string, error) {
	uid := req.Get("uid")

	if muid := req.Get("muid"); muid != "" {
		if _, ok := b.users[muid]; !ok {
			return nil, bizError(denglu.ErrCodeMediaUserNotFound)
		}

		bound, ok := b.bindings[muid]
		if !ok {
			return []string{muid}, nil
		}
		uid = bound
	}

	if uid == "" {
		return nil, errx.NewBizError(denglu.ErrCodeBadParams, "missing param: muid or uid", nil)
	}

	var muids []string
	for muid, bound := range b.bindings {
		if bound == uid {
			muids = append(muids, muid)
		}
	}

	if len(muids) == 0 {
		return nil, bizError(denglu.ErrCodeMediaUserUnbound)
	}

	sort.Strings(muids)
	return muids, nil
}

// friendsOf 返回给定媒体用户的好友，去重并按升序排列。 bound 为 true 时只返回已绑定网站账号的好友。
func (b *Backend) friendsOf(muids []string, bound bool) []string {
	seen := make(map[string]bool)
	var res []string
	for _, muid := range muids {
		for _, f := range b.friends[muid] {
			if seen[f] {
				continue
			}
			if _, ok := b.bindings[f]; bound && !ok {
				continue
			}
			seen[f] = true
			res = append(res, f)
		}
	}
	sort.Strings(res)
	return res
}

func (b *Backend) mediaUsersJSON(muids []string) []any {
	res := make([]any, 0, len(muids))
	for _, muid := range muids {
		u, ok := b.users[muid]
		if !ok {
			continue
		}
		res = append(res, map[string]any{
			"mediaUserID": u.MediaUserID,
			"mediaID":     u.MediaID,
			"screenName":  u.ScreenName,
		})
	}
	return res
}

var opResult = map[string]any{"result": "1"}

func bizError(code int) error {
	return errx.NewBizError(code, denglu.ErrorCodeDescription(code), nil)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
