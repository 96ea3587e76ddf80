package media

import (
  "context"
  "crypto/sha1"
  "encoding/hex"
  "errors"
  "fmt"
  "hash/crc32"
  "image"
  "io"
  "math/rand"
  "os"
  "time"

  _ "image/gif"
  _ "image/jpeg"
  _ "image/png"

  "github.com/h2non/filetype"
  "github.com/h2non/filetype/types"
  "github.com/rs/xid"
  "gorm.io/gorm"

  "openbook.local/openbook-api/common"
  models "openbook.local/openbook-api/models/media"
)

type ImagesRepository struct {
  Db  *gorm.DB
  Ctx context.Context
}

func (r *ImagesRepository) Find(id string) (entity *models.Image, err error) {
  err = r.Db.First(&entity, "id=?", id).Error
  return
}

func (r *ImagesRepository) GetByPost(postID string) (entity *models.Image, err error) {
  err = r.Db.Where("post_id=?", postID).Take(&entity).Error
  return
}

func (r *ImagesRepository) Ranking(
  fields []string,
  conditions map[string]interface{},
  sortField string,
  sortType int,
  limit int,
) []*models.Image {
  var images []*models.Image
  query := r.Db.Select(fields)
  if _, ok := conditions["ids"]; ok {
    query.Where("id IN ?", conditions["ids"].([]string))
  }
  if _, ok := conditions["node"]; ok {
    query.Where("node", conditions["node"].(int))
  }
  if _, ok := conditions["is_synced"]; ok {
    query.Where("is_synced", conditions["is_synced"].(bool))
  }
  if _, ok := conditions["status"]; ok {
    query.Where("status", conditions["status"].(int))
  } else {
    query.Where("status=1")
  }
  if sortType == 1 {
    query.Order(fmt.Sprintf("%v ASC", sortField))
  } else if sortType == -1 {
    query.Order(fmt.Sprintf("%v DESC", sortField))
  }
  query.Limit(limit).Find(&images)
  return images
}

func (r *ImagesRepository) Save(postID string, src io.Reader) (entity *models.Image, err error) {
  filehash, kind, info, err := r.store(src)
  if err != nil {
    return
  }

  entity = &models.Image{
    ID:        xid.New().String(),
    PostID:    postID,
    Mime:      kind.MIME.Value,
    Width:     info.Width,
    Height:    info.Height,
    Size:      info.Size,
    Node:      common.GetEnvInt("OPENBOOK_STORAGE_NODE"),
    Filehash:  filehash,
    Extension: kind.Extension,
    Timestamp: time.Now().UnixMilli(),
    Status:    1,
  }
  var syncedImage *models.Image
  if err := r.Db.Where("filehash=? AND is_synced=?", filehash, true).Take(&syncedImage).Error; err == nil {
    entity.CloudUrl = syncedImage.CloudUrl
    entity.IsSynced = true
  }
  err = r.Db.Create(&entity).Error
  return
}

func (r *ImagesRepository) Persist(src io.Reader) (url string, err error) {
  filehash, kind, _, err := r.store(src)
  if err != nil {
    return
  }
  url = r.storageUrl(filehash, kind.Extension, common.GetEnvInt("OPENBOOK_STORAGE_NODE"))
  return
}

func (r *ImagesRepository) Url(entity *models.Image) string {
  if entity.IsSynced {
    return entity.CloudUrl
  }
  return r.storageUrl(entity.Filehash, entity.Extension, entity.Node)
}

func (r *ImagesRepository) Path(entity *models.Image) string {
  crc32q := crc32.MakeTable(0xD5828281)
  i := crc32.Checksum([]byte(entity.Filehash), crc32q)
  return fmt.Sprintf(
    "%s/images/%d/%d/%s.%s",
    common.GetEnvString("OPENBOOK_STORAGE_PATH"),
    i/233%50,
    i/89%50,
    entity.Filehash,
    entity.Extension,
  )
}

func (r *ImagesRepository) Update(entity *models.Image, column string, value interface{}) (err error) {
  r.Db.Model(&entity).Update(column, value)
  return nil
}

func (r *ImagesRepository) Updates(entity *models.Image, values map[string]interface{}) (err error) {
  r.Db.Model(&entity).Updates(values)
  return nil
}

func (r *ImagesRepository) Delete(id string) (err error) {
  err = r.Db.Delete(&models.Image{ID: id}).Error
  return
}

type imageMeta struct {
  Width  int
  Height int
  Size   int64
}

func (r *ImagesRepository) store(src io.Reader) (filehash string, kind types.Type, meta *imageMeta, err error) {
  tmppath := fmt.Sprintf(
    "%s/.cache/%d/%d",
    common.GetEnvString("OPENBOOK_STORAGE_PATH"),
    rand.Intn(50),
    rand.Intn(50),
  )
  err = os.MkdirAll(
    tmppath,
    os.ModePerm,
  )
  if err != nil {
    return
  }

  tmpfile := fmt.Sprintf(
    "%s/%s.upload",
    tmppath,
    xid.New().String(),
  )
  dst, err := os.Create(tmpfile)
  if err != nil {
    return
  }
  defer os.Remove(tmpfile)
  defer dst.Close()

  hash := sha1.New()
  t := io.TeeReader(src, hash)
  _, err = io.Copy(dst, t)
  if err != nil {
    return
  }

  head := make([]byte, 261)
  if _, err = dst.ReadAt(head, 0); err != nil {
    return
  }

  kind, _ = filetype.Image(head)
  if kind == filetype.Unknown {
    err = errors.New("unknown filetype")
    return
  }

  info, err := dst.Stat()
  if err != nil {
    return
  }

  if _, err = dst.Seek(0, 0); err != nil {
    return
  }

  config, _, err := image.DecodeConfig(dst)
  if err != nil {
    return
  }
  meta = &imageMeta{
    Width:  config.Width,
    Height: config.Height,
    Size:   info.Size(),
  }

  filehash = hex.EncodeToString(hash.Sum(nil))
  crc32q := crc32.MakeTable(0xD5828281)
  i := crc32.Checksum([]byte(filehash), crc32q)
  localpath := fmt.Sprintf(
    "%s/images/%d/%d",
    common.GetEnvString("OPENBOOK_STORAGE_PATH"),
    i/233%50,
    i/89%50,
  )
  err = os.MkdirAll(localpath, os.ModePerm)
  if err != nil {
    return
  }
  localfile := fmt.Sprintf(
    "%s/%s.%s",
    localpath,
    filehash,
    kind.Extension,
  )
  err = os.Rename(tmpfile, localfile)
  return
}

func (r *ImagesRepository) storageUrl(filehash string, extension string, node int) string {
  crc32q := crc32.MakeTable(0xD5828281)
  i := crc32.Checksum([]byte(filehash), crc32q)
  return fmt.Sprintf(
    "%s/images/%d/%d/%s.%s",
    common.GetEnvString(fmt.Sprintf("OPENBOOK_STORAGE_URL_%v", node)),
    i/233%50,
    i/89%50,
    filehash,
    extension,
  )
}
