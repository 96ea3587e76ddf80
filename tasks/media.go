package tasks

import (
  "openbook.local/openbook-api/common"
  tasks "openbook.local/openbook-api/tasks/media"
)

type MediaTask struct {
  AnsqContext *common.AnsqClientContext
  VideosTask  *tasks.VideosTask
}

func NewMediaTask(ansqContext *common.AnsqClientContext) *MediaTask {
  return &MediaTask{
    AnsqContext: ansqContext,
  }
}

func (t *MediaTask) Videos() *tasks.VideosTask {
  if t.VideosTask == nil {
    t.VideosTask = tasks.NewVideosTask(t.AnsqContext)
  }
  return t.VideosTask
}
