package workflow

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// PurgeAttachmentsParams lists the stored files no bill references anymore.
type PurgeAttachmentsParams struct {
	Paths []string `json:"paths"`
}

// PurgeAttachments removes orphaned attachments that could not be removed
// while serving the request that orphaned them.
func PurgeAttachments(ctx workflow.Context, params PurgeAttachmentsParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting purge attachments workflow", "count", len(params.Paths))

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    5 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Minute,
			MaximumAttempts:    10,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	futures := make([]workflow.Future, len(params.Paths))
	for i, path := range params.Paths {
		futures[i] = workflow.ExecuteActivity(activityCtx, PurgeAttachmentActivity, path)
	}

	failed := 0
	for i, f := range futures {
		if err := f.Get(ctx, nil); err != nil {
			failed++
			logger.Error("Failed to purge attachment", "path", params.Paths[i], "error", err)
		}
	}

	if failed > 0 {
		return temporal.NewApplicationError(
			fmt.Sprintf("%d of %d attachments could not be purged", failed, len(params.Paths)),
			"ATTACHMENT_PURGE_INCOMPLETE",
		)
	}

	logger.Info("Purge attachments workflow completed", "count", len(params.Paths))
	return nil
}
