package common

import (
  "crypto/rand"
  "crypto/sha256"
  "crypto/subtle"
  "encoding/hex"

  "golang.org/x/crypto/pbkdf2"
)

const PASSWORD_HASH_ITERATIONS = 150000

func GenerateSalt(size int) string {
  buf := make([]byte, size)
  rand.Read(buf)
  return hex.EncodeToString(buf)
}

func GeneratePassword(password string, salt string) string {
  hash := pbkdf2.Key(
    []byte(password),
    []byte(salt),
    PASSWORD_HASH_ITERATIONS,
    sha256.Size,
    sha256.New,
  )
  return hex.EncodeToString(hash)
}

func VerifyPassword(password string, salt string, hashedPassword string) bool {
  hash := GeneratePassword(password, salt)
  return subtle.ConstantTimeCompare([]byte(hash), []byte(hashedPassword)) == 1
}
