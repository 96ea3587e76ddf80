package repositories_test

import (
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  "openbook.local/openbook-api/config"
  "openbook.local/openbook-api/repositories"
)

func TestCirclesEnsureWorld(t *testing.T) {
  db := testDB(t)
  r := &repositories.CirclesRepository{Db: db}

  world, err := r.Find(config.WORLD_CIRCLE_ID)
  require.NoError(t, err)
  assert.Empty(t, world.CreatorID)

  require.NoError(t, r.EnsureWorld())
  var total int64
  db.Table("openbook_circles").Count(&total)
  assert.Equal(t, int64(1), total)
}

func TestCirclesCreate(t *testing.T) {
  db := testDB(t)
  r := &repositories.CirclesRepository{Db: db}
  user := createUser(t, db, "alice")

  id, err := r.Create(user.ID, "Friends", "#aabbcc")
  require.NoError(t, err)
  assert.True(t, r.IsOwned(id, user.ID))
  assert.True(t, r.IsExists(user.ID, "Friends"))

  _, err = r.Create(user.ID, "Friends", "#aabbcc")
  assert.Error(t, err)

  other := createUser(t, db, "bob")
  assert.False(t, r.IsOwned(id, other.ID))
  _, err = r.Create(other.ID, "Friends", "#aabbcc")
  assert.NoError(t, err)
}
