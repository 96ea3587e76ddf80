package tasks

type UsersCreatePayload struct {
  ID string `json:"id"`
}

type PostsCreatePayload struct {
  ID string `json:"id"`
}

type ReactionsCreatePayload struct {
  ID     string `json:"id"`
  PostID string `json:"post_id"`
}
