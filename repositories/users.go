package repositories

import (
  "encoding/json"
  "errors"

  "github.com/nats-io/nats.go"
  "github.com/rs/xid"
  "gorm.io/gorm"

  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/config"
  "openbook.local/openbook-api/models"
)

type UsersRepository struct {
  Db   *gorm.DB
  Nats *nats.Conn
}

func (r *UsersRepository) Find(id string) (entity *models.User, err error) {
  err = r.Db.First(&entity, "id=?", id).Error
  return
}

func (r *UsersRepository) Get(username string) (entity *models.User, err error) {
  err = r.Db.Where("username", username).Take(&entity).Error
  return
}

func (r *UsersRepository) IsUsernameExists(username string) bool {
  var entity *models.User
  result := r.Db.Where("username", username).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    return false
  }
  return true
}

func (r *UsersRepository) IsEmailExists(email string) bool {
  var entity *models.User
  result := r.Db.Where("email", email).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    return false
  }
  return true
}

func (r *UsersRepository) Create(
  username string,
  email string,
  password string,
  name string,
  birthdate string,
  avatar string,
) (id string, err error) {
  if r.IsUsernameExists(username) {
    err = errors.New("username already exists")
    return
  }
  if r.IsEmailExists(email) {
    err = errors.New("email already exists")
    return
  }
  salt := common.GenerateSalt(16)
  hashedPassword := common.GeneratePassword(password, salt)
  id = xid.New().String()
  entity := &models.User{
    ID:        id,
    Username:  username,
    Email:     email,
    Password:  hashedPassword,
    Salt:      salt,
    Name:      name,
    Birthdate: birthdate,
    Avatar:    avatar,
    Status:    1,
  }
  err = r.Db.Create(&entity).Error
  if err == nil && r.Nats != nil {
    data, _ := json.Marshal(map[string]interface{}{
      "id": id,
    })
    r.Nats.Publish(config.NATS_USERS_CREATE, data)
    r.Nats.Flush()
  }
  return
}

func (r *UsersRepository) Update(user *models.User, column string, value interface{}) (err error) {
  r.Db.Model(&user).Update(column, value)
  return nil
}

func (r *UsersRepository) Updates(user *models.User, values map[string]interface{}) (err error) {
  r.Db.Model(&user).Updates(values)
  return nil
}
