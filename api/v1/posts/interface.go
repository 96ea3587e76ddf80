package posts

type UserInfo struct {
  ID       string `json:"id"`
  Username string `json:"username"`
  Name     string `json:"name"`
  Avatar   string `json:"avatar"`
}

type CommentInfo struct {
  ID        string    `json:"id"`
  Commenter *UserInfo `json:"commenter"`
  Text      string    `json:"text"`
  CreatedAt int64     `json:"created_at"`
}

type ReactionInfo struct {
  ID        string     `json:"id"`
  Reactor   *UserInfo  `json:"reactor"`
  Emoji     *EmojiInfo `json:"emoji"`
  CreatedAt int64      `json:"created_at"`
}

type EmojiInfo struct {
  ID      string `json:"id"`
  Keyword string `json:"keyword"`
  Image   string `json:"image"`
  Color   string `json:"color"`
}

type EmojiCountInfo struct {
  Emoji *EmojiInfo `json:"emoji"`
  Count int64      `json:"count"`
}
