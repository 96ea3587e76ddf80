package config

const (
  WORLD_CIRCLE_ID = "00000000000000000000"

  NATS_USERS_CREATE        = "openbook.users.create"
  NATS_POSTS_CREATE        = "openbook.posts.create"
  NATS_REACTIONS_CREATE    = "openbook.posts.reactions.create"
  NATS_MEDIA_VIDEOS_CREATE = "openbook.media.videos.create"

  ASYNQ_QUEUE_MEDIA_VIDEOS = "media.videos"
  ASYNQ_QUEUE_CLOUDS_MEDIA = "clouds.media"

  ASYNQ_JOBS_MEDIA_VIDEOS_PROCESS        = "media:videos:process"
  ASYNQ_JOBS_CLOUDS_MEDIA_IMAGES_PROCESS = "clouds:media:images:process"
  ASYNQ_JOBS_CLOUDS_MEDIA_VIDEOS_PROCESS = "clouds:media:videos:process"

  REDIS_KEY_POSTS_TRENDING              = "openbook:posts:trending"
  REDIS_KEY_POSTS_EMOJI_COUNT           = "openbook:posts:emoji:count:%s"
  REDIS_KEY_CLOUDS_SYNCING_MEDIA_IMAGES = "openbook:clouds:syncing:media:images"
  REDIS_KEY_CLOUDS_SYNCING_MEDIA_VIDEOS = "openbook:clouds:syncing:media:videos"

  LOCKS_USERS_CIRCLES_APPLY               = "locks:users:circles:apply:%s"
  LOCKS_TASKS_MEDIA_VIDEOS_APPLY          = "locks:tasks:media:videos:apply:%s"
  LOCKS_TASKS_CLOUDS_MEDIA_IMAGES_APPLY   = "locks:tasks:clouds:media:images:apply:%s"
  LOCKS_TASKS_MEDIA_VIDEOS_FLUSH          = "locks:tasks:media:videos:flush"
  LOCKS_TASKS_MEDIA_VIDEOS_PROCESS        = "locks:tasks:media:videos:process:%s"
  LOCKS_TASKS_CLOUDS_MEDIA_IMAGES_FLUSH   = "locks:tasks:clouds:media:images:flush"
  LOCKS_TASKS_CLOUDS_MEDIA_IMAGES_PROCESS = "locks:tasks:clouds:media:images:process:%s"
  LOCKS_TASKS_CLOUDS_MEDIA_VIDEOS_FLUSH   = "locks:tasks:clouds:media:videos:flush"
  LOCKS_TASKS_CLOUDS_MEDIA_VIDEOS_PROCESS = "locks:tasks:clouds:media:videos:process:%s"
  LOCKS_TASKS_CLOUDS_MEDIA_IMAGES_NOTIFY  = "locks:tasks:clouds:media:images:notify:%s"
  LOCKS_TASKS_CLOUDS_MEDIA_VIDEOS_NOTIFY  = "locks:tasks:clouds:media:videos:notify:%s"

  POST_MAX_LENGTH         = 560
  POST_COMMENT_MAX_LENGTH = 1500
)

const (
  TASK_ACTION_MEDIA_VIDEOS_CONVERT     = 1
  TASK_ACTION_CLOUDS_MEDIA_IMAGES_SYNC = 2
  TASK_ACTION_CLOUDS_MEDIA_VIDEOS_SYNC = 3
)

const (
  MEDIA_VIDEO_STATUS_PENDING    = 1
  MEDIA_VIDEO_STATUS_CONVERTING = 2
  MEDIA_VIDEO_STATUS_CONVERTED  = 3
  MEDIA_VIDEO_STATUS_FAILED     = 4
)

type VideoFormat struct {
  Name   string
  Width  int
  Height int
}

var VIDEO_FORMATS = []*VideoFormat{
  {"mp4_sd", 854, 480},
  {"mp4_hd", 1280, 720},
}
