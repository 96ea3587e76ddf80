package repositories_test

import (
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  "openbook.local/openbook-api/repositories"
)

func TestFollowsCreate(t *testing.T) {
  db := testDB(t)
  r := &repositories.FollowsRepository{Db: db}
  lists := &repositories.ListsRepository{Db: db}

  alice := createUser(t, db, "alice")
  bob := createUser(t, db, "bob")
  emojiID := createEmoji(t, db, "star")
  listID, err := lists.Create(alice.ID, "Favorites", emojiID)
  require.NoError(t, err)

  _, err = r.Create(alice.ID, bob.ID, listID)
  require.NoError(t, err)
  assert.True(t, r.IsExists(alice.ID, bob.ID))
  assert.Equal(t, int64(1), r.Count(alice.ID))

  follow, err := r.Get(alice.ID, bob.ID)
  require.NoError(t, err)
  assert.Equal(t, listID, follow.ListID)
}

func TestFollowsSelfForbidden(t *testing.T) {
  db := testDB(t)
  r := &repositories.FollowsRepository{Db: db}
  alice := createUser(t, db, "alice")

  _, err := r.Create(alice.ID, alice.ID, "")
  assert.Error(t, err)
}

func TestFollowsDelete(t *testing.T) {
  db := testDB(t)
  r := &repositories.FollowsRepository{Db: db}
  alice := createUser(t, db, "alice")
  bob := createUser(t, db, "bob")

  _, err := r.Create(alice.ID, bob.ID, "")
  require.NoError(t, err)
  require.NoError(t, r.Delete(alice.ID, bob.ID))
  assert.False(t, r.IsExists(alice.ID, bob.ID))
}
