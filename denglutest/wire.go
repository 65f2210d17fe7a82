package denglutest

import "github.com/cmstar/go-denglu"

// 以下方法将结构体转为灯鹭 API 回执中的 JSON 对象，字段名称与灯鹭 API 一致。

func mediaJSON(m denglu.Media) map[string]any {
	return map[string]any{
		"mediaID":             m.MediaID,
		"mediaName":           m.MediaName,
		"mediaNameEn":         m.MediaNameEn,
		"mediaIconImage":      m.MediaIconImage,
		"mediaIconImageGif":   m.MediaIconImageGif,
		"mediaIconNoImage":    m.MediaIconNoImage,
		"mediaIconNoImageGif": m.MediaIconNoImageGif,
		"mediaImage":          m.MediaImage,
		"shareFlag":           m.ShareFlag,
		"apiKey":              m.ApiKey,
	}
}

func userJSON(u denglu.UserInfo) map[string]any {
	return map[string]any{
		"mediaID":         u.MediaID,
		"mediaUserID":     u.MediaUserID,
		"personID":        u.PersonID,
		"screenName":      u.ScreenName,
		"name":            u.Name,
		"profileImageUrl": u.ProfileImageUrl,
		"url":             u.Url,
		"domain":          u.Domain,
		"description":     u.Description,
		"gender":          u.Gender,
		"location":        u.Location,
		"province":        u.Province,
		"city":            u.City,
		"verified":        u.Verified,
		"friendsCount":    u.FriendsCount,
		"followersCount":  u.FollowersCount,
		"favouritesCount": u.FavouritesCount,
		"statusesCount":   u.StatusesCount,
		"createTime":      u.CreateTime,
		"createdAt":       u.CreatedAt,
	}
}

// commentJSON 转换评论。没有父级评论时， parent 为 null 。
func commentJSON(c denglu.Comment) map[string]any {
	m := map[string]any{
		"commentID":   c.CommentID,
		"postID":      c.PostID,
		"content":     c.Content,
		"mediaID":     c.MediaID,
		"mediaUserID": c.MediaUserID,
		"userName":    c.UserName,
		"userEmail":   c.UserEmail,
		"userImage":   c.UserImage,
		"homepage":    c.Homepage,
		"ip":          c.IP,
		"state":       int(c.State),
		"createTime":  c.CreateTime,
		"parent":      nil,
	}

	if c.Parent != nil {
		m["parent"] = commentJSON(*c.Parent)
	}
	return m
}
