package repositories_test

import (
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  "openbook.local/openbook-api/config"
  "openbook.local/openbook-api/repositories"
)

func TestTasksApplyIsIdempotent(t *testing.T) {
  db := testDB(t)
  r := &repositories.TasksRepository{Db: db}

  params := map[string]interface{}{
    "id":   "video-1",
    "node": 3,
  }
  require.NoError(t, r.Apply("video-1@media.videos.convert", config.TASK_ACTION_MEDIA_VIDEOS_CONVERT, params))
  require.NoError(t, r.Apply("video-1@media.videos.convert", config.TASK_ACTION_MEDIA_VIDEOS_CONVERT, params))

  var total int64
  db.Table("openbook_tasks").Count(&total)
  assert.Equal(t, int64(1), total)

  task, err := r.Get("video-1@media.videos.convert")
  require.NoError(t, err)
  assert.Equal(t, 1, task.Status)
  assert.Equal(t, "video-1", task.Params["id"])
  assert.Equal(t, float64(3), task.Params["node"])
}

func TestTasksApplyReopensFinished(t *testing.T) {
  db := testDB(t)
  r := &repositories.TasksRepository{Db: db}

  params := map[string]interface{}{
    "id": "video-1",
  }
  require.NoError(t, r.Apply("video-1@media.videos.convert", config.TASK_ACTION_MEDIA_VIDEOS_CONVERT, params))

  task, err := r.Get("video-1@media.videos.convert")
  require.NoError(t, err)
  require.NoError(t, r.Update(task, "status", 3))

  require.NoError(t, r.Apply("video-1@media.videos.convert", config.TASK_ACTION_MEDIA_VIDEOS_CONVERT, params))
  task, err = r.Get("video-1@media.videos.convert")
  require.NoError(t, err)
  assert.Equal(t, 1, task.Status)
}

func TestTasksRanking(t *testing.T) {
  db := testDB(t)
  r := &repositories.TasksRepository{Db: db}

  require.NoError(t, r.Apply("a@media.videos.convert", config.TASK_ACTION_MEDIA_VIDEOS_CONVERT, nil))
  require.NoError(t, r.Apply("b@clouds.images.sync", config.TASK_ACTION_CLOUDS_MEDIA_IMAGES_SYNC, nil))

  tasks := r.Ranking(
    []string{"id", "params", "timestamp"},
    map[string]interface{}{
      "action": config.TASK_ACTION_MEDIA_VIDEOS_CONVERT,
      "status": 1,
    },
    "timestamp",
    1,
    10,
  )
  require.Len(t, tasks, 1)
}
