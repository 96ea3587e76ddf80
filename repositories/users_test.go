package repositories_test

import (
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/repositories"
)

func TestUsersCreate(t *testing.T) {
  db := testDB(t)
  r := &repositories.UsersRepository{Db: db}

  id, err := r.Create("alice", "alice@example.com", "secret123", "Alice", "1990-01-01", "")
  require.NoError(t, err)
  require.NotEmpty(t, id)

  user, err := r.Find(id)
  require.NoError(t, err)
  assert.Equal(t, "alice", user.Username)
  assert.Equal(t, "alice@example.com", user.Email)
  assert.NotEqual(t, "secret123", user.Password)
  assert.True(t, common.VerifyPassword("secret123", user.Salt, user.Password))
  assert.False(t, common.VerifyPassword("wrong", user.Salt, user.Password))
}

func TestUsersCreateDuplicates(t *testing.T) {
  db := testDB(t)
  r := &repositories.UsersRepository{Db: db}

  _, err := r.Create("alice", "alice@example.com", "secret123", "Alice", "", "")
  require.NoError(t, err)

  _, err = r.Create("alice", "other@example.com", "secret123", "Alice", "", "")
  assert.Error(t, err)

  _, err = r.Create("bob", "alice@example.com", "secret123", "Bob", "", "")
  assert.Error(t, err)
}

func TestUsersGet(t *testing.T) {
  db := testDB(t)
  r := &repositories.UsersRepository{Db: db}

  user := createUser(t, db, "alice")

  found, err := r.Get("alice")
  require.NoError(t, err)
  assert.Equal(t, user.ID, found.ID)

  assert.True(t, r.IsEmailExists("alice@example.com"))
  assert.False(t, r.IsEmailExists("nobody@example.com"))

  assert.True(t, r.IsUsernameExists("alice"))
  assert.False(t, r.IsUsernameExists("nobody"))
}
