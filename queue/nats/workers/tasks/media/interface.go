package media

type VideosCreatePayload struct {
  ID string `json:"id"`
}
