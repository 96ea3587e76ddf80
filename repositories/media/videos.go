package media

import (
  "bufio"
  "context"
  "crypto/sha1"
  "encoding/hex"
  "encoding/json"
  "errors"
  "fmt"
  "hash/crc32"
  "io"
  "log"
  "math/rand"
  "os"
  "os/exec"
  "strconv"
  "strings"
  "time"

  "github.com/h2non/filetype"
  "github.com/nats-io/nats.go"
  "github.com/rs/xid"
  "gorm.io/gorm"

  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/config"
  models "openbook.local/openbook-api/models/media"
)

type VideosRepository struct {
  Db   *gorm.DB
  Ctx  context.Context
  Nats *nats.Conn
}

func (r *VideosRepository) Find(id string) (entity *models.Video, err error) {
  err = r.Db.First(&entity, "id=?", id).Error
  return
}

func (r *VideosRepository) GetByPost(postID string) (entity *models.Video, err error) {
  err = r.Db.Where("post_id=?", postID).Take(&entity).Error
  return
}

func (r *VideosRepository) Formats(videoID string) []*models.Format {
  var formats []*models.Format
  r.Db.Where("video_id=?", videoID).Order("format asc").Find(&formats)
  return formats
}

func (r *VideosRepository) Ranking(
  fields []string,
  conditions map[string]interface{},
  sortField string,
  sortType int,
  limit int,
) []*models.Video {
  var videos []*models.Video
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
    query.Where("status=?", config.MEDIA_VIDEO_STATUS_CONVERTED)
  }
  if sortType == 1 {
    query.Order(fmt.Sprintf("%v ASC", sortField))
  } else if sortType == -1 {
    query.Order(fmt.Sprintf("%v DESC", sortField))
  }
  query.Limit(limit).Find(&videos)
  return videos
}

func (r *VideosRepository) Save(postID string, src io.Reader) (entity *models.Video, err error) {
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

  kind, _ := filetype.Video(head)
  if kind == filetype.Unknown {
    err = errors.New("unknown filetype")
    return
  }

  info, err := dst.Stat()
  if err != nil {
    return
  }

  filehash := hex.EncodeToString(hash.Sum(nil))
  crc32q := crc32.MakeTable(0xD5828281)
  i := crc32.Checksum([]byte(filehash), crc32q)
  localpath := fmt.Sprintf(
    "%s/videos/%d/%d",
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
  if err = os.Rename(tmpfile, localfile); err != nil {
    return
  }

  entity = &models.Video{
    ID:        xid.New().String(),
    PostID:    postID,
    Mime:      kind.MIME.Value,
    Size:      info.Size(),
    Node:      common.GetEnvInt("OPENBOOK_STORAGE_NODE"),
    Filehash:  filehash,
    Extension: kind.Extension,
    Timestamp: time.Now().UnixMilli(),
    Status:    config.MEDIA_VIDEO_STATUS_PENDING,
  }
  err = r.Db.Create(&entity).Error
  if err != nil {
    return
  }

  if r.Nats != nil {
    data, _ := json.Marshal(map[string]interface{}{
      "id": entity.ID,
    })
    r.Nats.Publish(config.NATS_MEDIA_VIDEOS_CREATE, data)
    r.Nats.Flush()
  }
  return
}

func (r *VideosRepository) Url(entity *models.Video) string {
  if entity.IsSynced {
    return entity.CloudUrl
  }
  crc32q := crc32.MakeTable(0xD5828281)
  i := crc32.Checksum([]byte(entity.Filehash), crc32q)
  return fmt.Sprintf(
    "%s/videos/%d/%d/%s.%s",
    common.GetEnvString(fmt.Sprintf("OPENBOOK_STORAGE_URL_%v", entity.Node)),
    i/233%50,
    i/89%50,
    entity.Filehash,
    entity.Extension,
  )
}

func (r *VideosRepository) FormatUrl(entity *models.Format, node int) string {
  crc32q := crc32.MakeTable(0xD5828281)
  i := crc32.Checksum([]byte(entity.Filehash), crc32q)
  return fmt.Sprintf(
    "%s/videos/%d/%d/%s.%s",
    common.GetEnvString(fmt.Sprintf("OPENBOOK_STORAGE_URL_%v", node)),
    i/233%50,
    i/89%50,
    entity.Filehash,
    entity.Extension,
  )
}

func (r *VideosRepository) Path(entity *models.Video) string {
  crc32q := crc32.MakeTable(0xD5828281)
  i := crc32.Checksum([]byte(entity.Filehash), crc32q)
  return fmt.Sprintf(
    "%s/videos/%d/%d/%s.%s",
    common.GetEnvString("OPENBOOK_STORAGE_PATH"),
    i/233%50,
    i/89%50,
    entity.Filehash,
    entity.Extension,
  )
}

func (r *VideosRepository) Probe(entity *models.Video) (duration float64, err error) {
  var args []string
  args = append(args, "-v")
  args = append(args, "error")
  args = append(args, "-show_entries")
  args = append(args, "format=duration")
  args = append(args, "-of")
  args = append(args, "default=noprint_wrappers=1:nokey=1")
  args = append(args, r.Path(entity))
  out, err := exec.Command("/usr/bin/ffprobe", args...).Output()
  if err != nil {
    return
  }
  duration, err = strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
  return
}

func (r *VideosRepository) Convert(
  ctx context.Context,
  entity *models.Video,
  format *config.VideoFormat,
) (item *models.Format, err error) {
  result := r.Db.Where(
    "video_id=? AND format=?",
    entity.ID,
    format.Name,
  ).Take(&item)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    item = &models.Format{
      ID:        xid.New().String(),
      VideoID:   entity.ID,
      Format:    format.Name,
      Width:     format.Width,
      Height:    format.Height,
      Extension: "mp4",
      Timestamp: time.Now().UnixMilli(),
      Status:    1,
    }
    if err = r.Db.Create(&item).Error; err != nil {
      return
    }
  }

  tmppath := fmt.Sprintf(
    "%s/.cache/%d/%d",
    common.GetEnvString("OPENBOOK_STORAGE_PATH"),
    rand.Intn(50),
    rand.Intn(50),
  )
  if err = os.MkdirAll(tmppath, os.ModePerm); err != nil {
    return
  }
  tmpfile := fmt.Sprintf(
    "%s/%s.mp4",
    tmppath,
    xid.New().String(),
  )
  defer os.Remove(tmpfile)

  var args []string
  args = append(args, "-y")
  args = append(args, "-i")
  args = append(args, r.Path(entity))
  args = append(args, "-vf")
  args = append(args, fmt.Sprintf("scale=%d:%d:force_original_aspect_ratio=decrease", format.Width, format.Height))
  args = append(args, "-c:v")
  args = append(args, "libx264")
  args = append(args, "-c:a")
  args = append(args, "aac")
  args = append(args, tmpfile)
  cmd := exec.CommandContext(ctx, "/usr/bin/ffmpeg", args...)
  stdout, err := cmd.StdoutPipe()
  cmd.Stderr = cmd.Stdout
  if err != nil {
    return
  }
  if err = cmd.Start(); err != nil {
    return
  }
  scanner := bufio.NewScanner(stdout)
  for scanner.Scan() {
    content := scanner.Text()
    if strings.Contains(content, "Invalid NAL unit size") {
      log.Println("video is corrupted", entity.ID)
    }
  }
  if err = cmd.Wait(); err != nil {
    r.Db.Model(&item).Updates(map[string]interface{}{
      "progress": 0,
      "status":   4,
    })
    return
  }

  out, err := os.Open(tmpfile)
  if err != nil {
    return
  }
  defer out.Close()

  hash := sha1.New()
  if _, err = io.Copy(hash, out); err != nil {
    return
  }
  filehash := hex.EncodeToString(hash.Sum(nil))

  info, err := out.Stat()
  if err != nil {
    return
  }

  crc32q := crc32.MakeTable(0xD5828281)
  i := crc32.Checksum([]byte(filehash), crc32q)
  localpath := fmt.Sprintf(
    "%s/videos/%d/%d",
    common.GetEnvString("OPENBOOK_STORAGE_PATH"),
    i/233%50,
    i/89%50,
  )
  if err = os.MkdirAll(localpath, os.ModePerm); err != nil {
    return
  }
  localfile := fmt.Sprintf(
    "%s/%s.mp4",
    localpath,
    filehash,
  )
  if err = os.Rename(tmpfile, localfile); err != nil {
    return
  }

  err = r.Db.Model(&item).Updates(map[string]interface{}{
    "size":     info.Size(),
    "progress": 100,
    "filehash": filehash,
    "status":   3,
  }).Error
  return
}

func (r *VideosRepository) Update(entity *models.Video, column string, value interface{}) (err error) {
  r.Db.Model(&entity).Update(column, value)
  return nil
}

func (r *VideosRepository) Updates(entity *models.Video, values map[string]interface{}) (err error) {
  r.Db.Model(&entity).Updates(values)
  return nil
}

func (r *VideosRepository) Delete(id string) (err error) {
  r.Db.Where("video_id=?", id).Delete(&models.Format{})
  err = r.Db.Delete(&models.Video{ID: id}).Error
  return
}
