package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"backoffice.app/billing/model"
)

// Remover deletes stored attachments.
type Remover interface {
	Remove(path string) error
}

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	Attachments Remover
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(attachments Remover) {
	activityDeps = &ActivityDependencies{
		Attachments: attachments,
	}
}

// PurgeAttachmentActivity deletes one stored attachment. A file that is
// already gone counts as purged.
func PurgeAttachmentActivity(ctx context.Context, path string) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing purge attachment activity", "path", path)

	if activityDeps == nil || activityDeps.Attachments == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	err := activityDeps.Attachments.Remove(path)
	if err != nil {
		logger.Error("Failed to purge attachment", "path", path, "error", err)
		if model.ReasonOf(err) == model.ReasonStorageUnavailable {
			return err
		}
		return temporal.NewNonRetryableApplicationError("failed to purge attachment", "ATTACHMENT_PURGE_FAILED", err)
	}

	logger.Info("Successfully purged attachment", "path", path)
	return nil
}
