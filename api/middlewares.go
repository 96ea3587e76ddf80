package api

import (
  "context"
  "errors"
  "net/http"
  "strings"

  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/models"
  "openbook.local/openbook-api/repositories"
  jwtRepositories "openbook.local/openbook-api/repositories/jwt"
)

type contextKey string

const CurrentUserKey contextKey = "current_user"

func Authenticator(apiContext *common.ApiContext) func(http.Handler) http.Handler {
  return func(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
      user, err := authenticate(apiContext, r)
      if err != nil {
        response := &ResponseHandler{
          Writer: w,
        }
        response.Error(http.StatusUnauthorized, 1000, "authorization required")
        return
      }
      ctx := context.WithValue(r.Context(), CurrentUserKey, user)
      next.ServeHTTP(w, r.WithContext(ctx))
    })
  }
}

func MaybeAuthenticator(apiContext *common.ApiContext) func(http.Handler) http.Handler {
  return func(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
      if user, err := authenticate(apiContext, r); err == nil {
        r = r.WithContext(context.WithValue(r.Context(), CurrentUserKey, user))
      }
      next.ServeHTTP(w, r)
    })
  }
}

func CurrentUser(r *http.Request) *models.User {
  user, _ := r.Context().Value(CurrentUserKey).(*models.User)
  return user
}

func authenticate(apiContext *common.ApiContext, r *http.Request) (user *models.User, err error) {
  header := r.Header.Get("Authorization")
  if !strings.HasPrefix(header, "Bearer ") {
    err = errors.New("authorization header is empty")
    return
  }
  tokenRepository := &jwtRepositories.TokenRepository{}
  uid, err := tokenRepository.Uid(strings.TrimPrefix(header, "Bearer "))
  if err != nil {
    return
  }
  usersRepository := &repositories.UsersRepository{
    Db: apiContext.Db,
  }
  return usersRepository.Find(uid)
}
