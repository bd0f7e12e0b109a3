package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.temporal.io/sdk/client"

	"backoffice.app/billing/workflow"
)

// attachmentJanitor hands orphaned attachments to the PurgeAttachments
// workflow.
type attachmentJanitor struct {
	temporal  client.Client
	taskQueue string
}

// ScheduleCleanup starts a purge workflow in the background. The caller's
// context is not used; the request it belongs to is about to finish.
func (j *attachmentJanitor) ScheduleCleanup(_ context.Context, paths []string) {
	if len(paths) == 0 {
		return
	}
	paths = append([]string(nil), paths...)

	runAsync("schedule_attachment_cleanup", func(ctx context.Context) error {
		options := client.StartWorkflowOptions{
			ID:        fmt.Sprintf("purge-attachments-%s", uuid.NewString()),
			TaskQueue: j.taskQueue,
		}
		_, err := j.temporal.ExecuteWorkflow(ctx, options, workflow.PurgeAttachments, workflow.PurgeAttachmentsParams{Paths: paths})
		if err != nil {
			return fmt.Errorf("execute workflow %s: %w", options.ID, err)
		}
		return nil
	})
}
