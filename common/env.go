package common

import (
  "os"
  "strconv"
  "strings"
)

func GetEnvString(key string) string {
  return os.Getenv(key)
}

func GetEnvInt(key string) int {
  value, err := strconv.Atoi(os.Getenv(key))
  if err != nil {
    return 0
  }
  return value
}

func GetEnvInt64(key string) int64 {
  value, err := strconv.ParseInt(os.Getenv(key), 10, 64)
  if err != nil {
    return 0
  }
  return value
}

func GetEnvArray(key string) []string {
  return strings.Fields(os.Getenv(key))
}
