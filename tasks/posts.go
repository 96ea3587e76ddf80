package tasks

import (
  "encoding/json"
  "fmt"
  "log"
  "time"

  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/config"
  "openbook.local/openbook-api/repositories"
)

type PostsTask struct {
  AnsqContext *common.AnsqClientContext
  Repository  *repositories.PostsRepository
}

func NewPostsTask(ansqContext *common.AnsqClientContext) *PostsTask {
  return &PostsTask{
    AnsqContext: ansqContext,
    Repository: &repositories.PostsRepository{
      Db: ansqContext.Db,
    },
  }
}

func (t *PostsTask) Trending() (err error) {
  log.Println("tasks posts trending")
  posts := t.Repository.Trending(20)
  ids := make([]string, len(posts))
  for i, post := range posts {
    ids[i] = post.ID
  }
  data, _ := json.Marshal(ids)
  t.AnsqContext.Rdb.SetEX(
    t.AnsqContext.Ctx,
    config.REDIS_KEY_POSTS_TRENDING,
    string(data),
    5*time.Minute,
  )
  return
}

func (t *PostsTask) CleanEmojiCounts() (err error) {
  log.Println("tasks posts clean emoji counts")
  var cursor uint64
  for {
    var keys []string
    keys, cursor, err = t.AnsqContext.Rdb.Scan(
      t.AnsqContext.Ctx,
      cursor,
      fmt.Sprintf(config.REDIS_KEY_POSTS_EMOJI_COUNT, "*"),
      100,
    ).Result()
    if err != nil {
      return
    }
    for _, key := range keys {
      postID := key[len(fmt.Sprintf(config.REDIS_KEY_POSTS_EMOJI_COUNT, "")):]
      if !t.Repository.IsExists(postID) {
        t.AnsqContext.Rdb.Del(t.AnsqContext.Ctx, key)
      }
    }
    if cursor == 0 {
      break
    }
  }
  return
}
