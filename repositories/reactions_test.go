package repositories_test

import (
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  "openbook.local/openbook-api/repositories"
)

func TestReactionsReactIsUniquePerReactor(t *testing.T) {
  db := testDB(t)
  posts := &repositories.PostsRepository{Db: db}
  r := &repositories.ReactionsRepository{Db: db}

  alice := createUser(t, db, "alice")
  bob := createUser(t, db, "bob")
  thumbsup := createEmoji(t, db, "thumbsup")
  heart := createEmoji(t, db, "heart")

  postID, err := posts.Create(alice.ID, "react to me", nil)
  require.NoError(t, err)

  first, err := r.React(postID, bob.ID, thumbsup)
  require.NoError(t, err)
  assert.Equal(t, int64(1), r.Count(postID))

  second, err := r.React(postID, bob.ID, heart)
  require.NoError(t, err)
  assert.Equal(t, first, second)
  assert.Equal(t, int64(1), r.Count(postID))

  reaction, err := r.Get(postID, bob.ID)
  require.NoError(t, err)
  assert.Equal(t, heart, reaction.EmojiID)
}

func TestReactionsEmojiCounts(t *testing.T) {
  db := testDB(t)
  posts := &repositories.PostsRepository{Db: db}
  r := &repositories.ReactionsRepository{Db: db}

  alice := createUser(t, db, "alice")
  bob := createUser(t, db, "bob")
  carol := createUser(t, db, "carol")
  thumbsup := createEmoji(t, db, "thumbsup")
  heart := createEmoji(t, db, "heart")

  postID, err := posts.Create(alice.ID, "react to me", nil)
  require.NoError(t, err)

  _, err = r.React(postID, alice.ID, thumbsup)
  require.NoError(t, err)
  _, err = r.React(postID, bob.ID, thumbsup)
  require.NoError(t, err)
  _, err = r.React(postID, carol.ID, heart)
  require.NoError(t, err)

  counts := r.EmojiCounts(postID)
  require.Len(t, counts, 2)
  assert.Equal(t, thumbsup, counts[0].EmojiID)
  assert.Equal(t, int64(2), counts[0].Count)
  assert.Equal(t, heart, counts[1].EmojiID)
  assert.Equal(t, int64(1), counts[1].Count)
}
