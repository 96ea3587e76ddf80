package repositories_test

import (
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  "openbook.local/openbook-api/config"
  "openbook.local/openbook-api/repositories"
)

func TestPostsCreateDefaultsToWorldCircle(t *testing.T) {
  db := testDB(t)
  r := &repositories.PostsRepository{Db: db}
  alice := createUser(t, db, "alice")

  id, err := r.Create(alice.ID, "hello world", nil)
  require.NoError(t, err)

  assert.Equal(t, []string{config.WORLD_CIRCLE_ID}, r.CircleIDs(id))
  assert.True(t, r.IsPublic(id))
}

func TestPostsEncircledVisibility(t *testing.T) {
  db := testDB(t)
  r := &repositories.PostsRepository{Db: db}
  circles := &repositories.CirclesRepository{Db: db}
  connections := &repositories.ConnectionsRepository{Db: db}

  bob := createUser(t, db, "bob")
  carol := createUser(t, db, "carol")
  dave := createUser(t, db, "dave")

  circleID, err := circles.Create(bob.ID, "Friends", "#aabbcc")
  require.NoError(t, err)
  _, err = connections.Create(bob.ID, carol.ID, circleID)
  require.NoError(t, err)

  postID, err := r.Create(bob.ID, "for friends only", []string{circleID})
  require.NoError(t, err)
  post, err := r.Find(postID)
  require.NoError(t, err)

  assert.False(t, r.IsPublic(postID))
  assert.True(t, r.IsVisible(post, bob.ID))
  assert.True(t, r.IsVisible(post, carol.ID))
  assert.False(t, r.IsVisible(post, dave.ID))
}

func TestPostsTimeline(t *testing.T) {
  db := testDB(t)
  r := &repositories.PostsRepository{Db: db}
  circles := &repositories.CirclesRepository{Db: db}
  connections := &repositories.ConnectionsRepository{Db: db}
  follows := &repositories.FollowsRepository{Db: db}

  alice := createUser(t, db, "alice")
  bob := createUser(t, db, "bob")
  carol := createUser(t, db, "carol")
  dave := createUser(t, db, "dave")

  worldPostID, err := r.Create(alice.ID, "hello from alice", nil)
  require.NoError(t, err)

  circleID, err := circles.Create(bob.ID, "Friends", "#aabbcc")
  require.NoError(t, err)
  _, err = connections.Create(bob.ID, carol.ID, circleID)
  require.NoError(t, err)
  encircledPostID, err := r.Create(bob.ID, "for friends only", []string{circleID})
  require.NoError(t, err)

  _, err = follows.Create(carol.ID, alice.ID, "")
  require.NoError(t, err)
  _, err = follows.Create(carol.ID, bob.ID, "")
  require.NoError(t, err)
  _, err = follows.Create(dave.ID, alice.ID, "")
  require.NoError(t, err)
  _, err = follows.Create(dave.ID, bob.ID, "")
  require.NoError(t, err)

  posts := r.Timeline(map[string]interface{}{"viewer_id": carol.ID}, 10)
  ids := make([]string, len(posts))
  for i, post := range posts {
    ids[i] = post.ID
  }
  assert.Contains(t, ids, worldPostID)
  assert.Contains(t, ids, encircledPostID)

  posts = r.Timeline(map[string]interface{}{"viewer_id": dave.ID}, 10)
  ids = ids[:0]
  for _, post := range posts {
    ids = append(ids, post.ID)
  }
  assert.Contains(t, ids, worldPostID)
  assert.NotContains(t, ids, encircledPostID)
}

func TestPostsTimelineUnauthenticated(t *testing.T) {
  db := testDB(t)
  r := &repositories.PostsRepository{Db: db}
  circles := &repositories.CirclesRepository{Db: db}

  alice := createUser(t, db, "alice")

  worldPostID, err := r.Create(alice.ID, "public post", nil)
  require.NoError(t, err)
  circleID, err := circles.Create(alice.ID, "Friends", "#aabbcc")
  require.NoError(t, err)
  _, err = r.Create(alice.ID, "private post", []string{circleID})
  require.NoError(t, err)

  posts := r.Timeline(map[string]interface{}{
    "viewer_id": "",
    "username":  "alice",
  }, 10)
  require.Len(t, posts, 1)
  assert.Equal(t, worldPostID, posts[0].ID)
}

func TestPostsTimelineMaxID(t *testing.T) {
  db := testDB(t)
  r := &repositories.PostsRepository{Db: db}
  alice := createUser(t, db, "alice")

  first, err := r.Create(alice.ID, "first", nil)
  require.NoError(t, err)
  second, err := r.Create(alice.ID, "second", nil)
  require.NoError(t, err)
  third, err := r.Create(alice.ID, "third", nil)
  require.NoError(t, err)

  conditions := map[string]interface{}{"viewer_id": alice.ID}
  posts := r.Timeline(conditions, 2)
  require.Len(t, posts, 2)
  assert.Equal(t, third, posts[0].ID)
  assert.Equal(t, second, posts[1].ID)

  conditions["max_id"] = posts[1].ID
  posts = r.Timeline(conditions, 2)
  require.Len(t, posts, 1)
  assert.Equal(t, first, posts[0].ID)
}

func TestPostsDeleteCascades(t *testing.T) {
  db := testDB(t)
  r := &repositories.PostsRepository{Db: db}
  comments := &repositories.CommentsRepository{Db: db}
  reactions := &repositories.ReactionsRepository{Db: db}

  alice := createUser(t, db, "alice")
  bob := createUser(t, db, "bob")
  emojiID := createEmoji(t, db, "thumbsup")

  postID, err := r.Create(alice.ID, "soon to be gone", nil)
  require.NoError(t, err)
  _, err = comments.Create(postID, bob.ID, "nice one")
  require.NoError(t, err)
  _, err = reactions.React(postID, bob.ID, emojiID)
  require.NoError(t, err)

  require.NoError(t, r.Delete(postID))

  _, err = r.Find(postID)
  assert.Error(t, err)
  assert.Equal(t, int64(0), comments.Count(postID))
  assert.Equal(t, int64(0), reactions.Count(postID))
  assert.Empty(t, r.CircleIDs(postID))
}
