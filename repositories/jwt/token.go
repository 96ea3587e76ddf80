package jwt

import (
  "encoding/json"
  "errors"
  "time"

  "github.com/lestrrat/go-jwx/jwa"
  "github.com/lestrrat/go-jwx/jws"

  "openbook.local/openbook-api/common"
)

type TokenRepository struct{}

type Claims struct {
  UID       string `json:"uid"`
  Type      string `json:"type"`
  ExpiredAt int64  `json:"expired_at"`
}

func (r *TokenRepository) AccessToken(uid string) (token string, err error) {
  return r.generate(uid, "access", time.Now().Add(2*time.Hour))
}

func (r *TokenRepository) RefreshToken(uid string) (token string, err error) {
  return r.generate(uid, "refresh", time.Now().Add(720*time.Hour))
}

func (r *TokenRepository) Uid(token string) (uid string, err error) {
  payload, err := jws.Verify([]byte(token), jwa.HS256, []byte(common.GetEnvString("JWT_SECRET")))
  if err != nil {
    return
  }
  var claims Claims
  if err = json.Unmarshal(payload, &claims); err != nil {
    return
  }
  if claims.Type != "access" {
    err = errors.New("token type is invalid")
    return
  }
  if claims.ExpiredAt < time.Now().Unix() {
    err = errors.New("token has expired")
    return
  }
  uid = claims.UID
  return
}

func (r *TokenRepository) Refresh(token string) (accessToken string, err error) {
  payload, err := jws.Verify([]byte(token), jwa.HS256, []byte(common.GetEnvString("JWT_SECRET")))
  if err != nil {
    return
  }
  var claims Claims
  if err = json.Unmarshal(payload, &claims); err != nil {
    return
  }
  if claims.Type != "refresh" {
    err = errors.New("token type is invalid")
    return
  }
  if claims.ExpiredAt < time.Now().Unix() {
    err = errors.New("token has expired")
    return
  }
  return r.AccessToken(claims.UID)
}

func (r *TokenRepository) generate(uid string, kind string, expiredAt time.Time) (token string, err error) {
  payload, _ := json.Marshal(&Claims{
    UID:       uid,
    Type:      kind,
    ExpiredAt: expiredAt.Unix(),
  })
  buf, err := jws.Sign(payload, jwa.HS256, []byte(common.GetEnvString("JWT_SECRET")))
  if err != nil {
    return
  }
  token = string(buf)
  return
}
