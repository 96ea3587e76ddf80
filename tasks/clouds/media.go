package clouds

import (
  "openbook.local/openbook-api/common"
  tasks "openbook.local/openbook-api/tasks/clouds/media"
)

type MediaTask struct {
  AnsqContext *common.AnsqClientContext
  ImagesTask  *tasks.ImagesTask
  VideosTask  *tasks.VideosTask
}

func NewMediaTask(ansqContext *common.AnsqClientContext) *MediaTask {
  return &MediaTask{
    AnsqContext: ansqContext,
  }
}

func (t *MediaTask) Images() *tasks.ImagesTask {
  if t.ImagesTask == nil {
    t.ImagesTask = tasks.NewImagesTask(t.AnsqContext)
  }
  return t.ImagesTask
}

func (t *MediaTask) Videos() *tasks.VideosTask {
  if t.VideosTask == nil {
    t.VideosTask = tasks.NewVideosTask(t.AnsqContext)
  }
  return t.VideosTask
}
