package repositories_test

import (
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  "openbook.local/openbook-api/repositories"
)

func TestConnectionsCreate(t *testing.T) {
  db := testDB(t)
  r := &repositories.ConnectionsRepository{Db: db}
  circles := &repositories.CirclesRepository{Db: db}

  alice := createUser(t, db, "alice")
  bob := createUser(t, db, "bob")
  circleID, err := circles.Create(alice.ID, "Friends", "#aabbcc")
  require.NoError(t, err)

  _, err = r.Create(alice.ID, bob.ID, circleID)
  require.NoError(t, err)
  assert.True(t, r.IsExists(alice.ID, bob.ID))
  assert.Equal(t, int64(1), r.Count(alice.ID))

  connection, err := r.Get(alice.ID, bob.ID)
  require.NoError(t, err)
  assert.Equal(t, circleID, connection.CircleID)

  require.NoError(t, r.Delete(alice.ID, bob.ID))
  assert.False(t, r.IsExists(alice.ID, bob.ID))
}
