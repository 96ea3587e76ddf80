package jwt_test

import (
  "os"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  "openbook.local/openbook-api/repositories/jwt"
)

func TestMain(m *testing.M) {
  os.Setenv("JWT_SECRET", "test-secret")
  os.Exit(m.Run())
}

func TestAccessTokenRoundtrip(t *testing.T) {
  r := &jwt.TokenRepository{}

  token, err := r.AccessToken("user-1")
  require.NoError(t, err)

  uid, err := r.Uid(token)
  require.NoError(t, err)
  assert.Equal(t, "user-1", uid)
}

func TestRefreshTokenIsNotAccessToken(t *testing.T) {
  r := &jwt.TokenRepository{}

  token, err := r.RefreshToken("user-1")
  require.NoError(t, err)

  _, err = r.Uid(token)
  assert.Error(t, err)

  accessToken, err := r.Refresh(token)
  require.NoError(t, err)
  uid, err := r.Uid(accessToken)
  require.NoError(t, err)
  assert.Equal(t, "user-1", uid)
}

func TestUidRejectsGarbage(t *testing.T) {
  r := &jwt.TokenRepository{}

  _, err := r.Uid("not-a-token")
  assert.Error(t, err)
}
