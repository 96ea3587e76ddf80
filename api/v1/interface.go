package v1

type Token struct {
  AccessToken  string `json:"access_token"`
  RefreshToken string `json:"refresh_token"`
}

type UserInfo struct {
  ID       string `json:"id"`
  Username string `json:"username"`
  Name     string `json:"name"`
  Avatar   string `json:"avatar"`
}

type RegisterInfo struct {
  User  *UserInfo `json:"user"`
  Token *Token    `json:"token"`
}

type PostInfo struct {
  ID              string     `json:"id"`
  Creator         *UserInfo  `json:"creator"`
  Text            string     `json:"text"`
  Image           *ImageInfo `json:"image,omitempty"`
  Video           *VideoInfo `json:"video,omitempty"`
  CircleIDs       []string   `json:"circle_ids"`
  PublicComments  bool       `json:"public_comments"`
  PublicReactions bool       `json:"public_reactions"`
  CommentsCount   int64      `json:"comments_count"`
  ReactionsCount  int64      `json:"reactions_count"`
  CreatedAt       int64      `json:"created_at"`
}

type ImageInfo struct {
  Url    string `json:"url"`
  Width  int    `json:"width"`
  Height int    `json:"height"`
}

type VideoInfo struct {
  Url     string        `json:"url"`
  Status  int           `json:"status"`
  Formats []*FormatInfo `json:"formats"`
}

type FormatInfo struct {
  Format   string `json:"format"`
  Url      string `json:"url"`
  Progress int    `json:"progress"`
}

type CircleInfo struct {
  ID        string `json:"id"`
  Name      string `json:"name"`
  Color     string `json:"color"`
  CreatorID string `json:"creator_id"`
}

type ListInfo struct {
  ID      string `json:"id"`
  Name    string `json:"name"`
  EmojiID string `json:"emoji_id"`
}

type FollowInfo struct {
  ID           string    `json:"id"`
  FollowedUser *UserInfo `json:"followed_user"`
  ListID       string    `json:"list_id"`
}

type ConnectionInfo struct {
  ID         string    `json:"id"`
  TargetUser *UserInfo `json:"target_user"`
  CircleID   string    `json:"circle_id"`
}

type EmojiInfo struct {
  ID      string `json:"id"`
  Keyword string `json:"keyword"`
  Image   string `json:"image"`
  Color   string `json:"color"`
}

type EmojiGroupInfo struct {
  ID      string       `json:"id"`
  Keyword string       `json:"keyword"`
  Color   string       `json:"color"`
  Emojis  []*EmojiInfo `json:"emojis"`
}
