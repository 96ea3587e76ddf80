package v1_test

import (
  "fmt"
  "net/http"
  "testing"

  "github.com/alicebob/miniredis/v2"
  "github.com/go-redis/redis/v8"
  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  v1 "openbook.local/openbook-api/api/v1"
  "openbook.local/openbook-api/config"
  "openbook.local/openbook-api/repositories"
)

func TestReactionsDeleteInvalidatesEmojiCountCache(t *testing.T) {
  apiContext := testApiContext(t)
  mr := miniredis.RunT(t)
  apiContext.Rdb = redis.NewClient(&redis.Options{Addr: mr.Addr()})
  router := v1.NewPostsRouter(apiContext)

  alice := createUser(t, apiContext.Db, "alice")
  postID := createPost(t, apiContext.Db, alice, "hello", nil)

  emojis := &repositories.EmojisRepository{Db: apiContext.Db}
  groupID, err := emojis.ApplyGroup("reactions", "#fcba03", 1)
  require.NoError(t, err)
  emojiID, err := emojis.Apply(groupID, "like", "/static/emojis/like.png", "#fcba03", 1)
  require.NoError(t, err)

  reactions := &repositories.ReactionsRepository{Db: apiContext.Db}
  reactionID, err := reactions.React(postID, alice.ID, emojiID)
  require.NoError(t, err)

  key := fmt.Sprintf(config.REDIS_KEY_POSTS_EMOJI_COUNT, postID)
  require.NoError(t, mr.Set(key, "[]"))

  w := request(
    router,
    http.MethodDelete,
    "/"+postID+"/reactions/"+reactionID,
    nil,
    accessToken(t, alice.ID),
  )
  require.Equal(t, http.StatusOK, w.Code)
  assert.False(t, mr.Exists(key))
}
