package tasks

import (
  "openbook.local/openbook-api/common"
  tasks "openbook.local/openbook-api/tasks/clouds"
)

type CloudsTask struct {
  AnsqContext *common.AnsqClientContext
  MediaTask   *tasks.MediaTask
}

func NewCloudsTask(ansqContext *common.AnsqClientContext) *CloudsTask {
  return &CloudsTask{
    AnsqContext: ansqContext,
  }
}

func (t *CloudsTask) Media() *tasks.MediaTask {
  if t.MediaTask == nil {
    t.MediaTask = tasks.NewMediaTask(t.AnsqContext)
  }
  return t.MediaTask
}
