// Package idempotency lets multipart endpoints replay the outcome of a
// request that was already completed under the same X-Idempotency-Key.
package idempotency

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"backoffice.app/billing/model"
)

var (
	IDEMPOTENCY_HEADER = "X-Idempotency-Key"
)

const (
	statusProcessing = "processing"
	statusCompleted  = "completed"
)

// processingLease is how long a claim may stay in processing before a retry
// is allowed to take it over.
const processingLease = 2 * time.Minute

// Replay is a response recorded for an earlier request.
type Replay struct {
	StatusCode int
	Body       []byte
}

// Ticket is held by the request that claimed an idempotency key. Exactly
// one of Complete or Abandon should follow.
type Ticket struct {
	cacheKey model.IdempotencyKey
	bodyHash string
}

// Begin claims the request's idempotency key for resource. Requests without
// a key get a nil ticket and are processed normally. A non-nil Replay means
// an identical request already completed and its response should be sent
// again as is.
func Begin(ctx context.Context, resource string, header http.Header, fingerprint []byte) (*Ticket, *Replay, error) {
	idempotencyKey, err := extractIdempotencyKey(header)
	if err != nil {
		return nil, nil, err
	}
	if idempotencyKey == "" {
		return nil, nil, nil
	}

	t := &Ticket{
		cacheKey: model.IdempotencyKey{Resource: resource, Key: idempotencyKey},
		bodyHash: hashing(fingerprint),
	}

	claimErr := entries.SetIfNotExists(ctx, t.cacheKey, model.IdempotencyCacheEntry{
		Status:          statusProcessing,
		RequestBodyHash: t.bodyHash,
		CreatedAt:       time.Now(),
	})
	if claimErr == nil {
		return t, nil, nil
	}
	if !errors.Is(claimErr, cache.KeyExists) {
		rlog.Error("Failed to mark request as processing", "error", claimErr)
		return nil, nil, &errs.Error{Code: errs.Internal, Message: "Failed to check idempotency"}
	}

	entry, getErr := entries.Get(ctx, t.cacheKey)
	if getErr != nil {
		if errors.Is(getErr, cache.Miss) {
			// The holder abandoned the key between our two calls.
			return nil, nil, handleProcessingEntry(idempotencyKey)
		}
		rlog.Error("Failed to read idempotency entry", "error", getErr)
		return nil, nil, &errs.Error{Code: errs.Internal, Message: "Failed to check idempotency"}
	}

	if entry.Status == statusProcessing && time.Since(entry.CreatedAt) > processingLease {
		rlog.Warn("Taking over stale idempotency claim", "key", idempotencyKey)
		if err := entries.Set(ctx, t.cacheKey, model.IdempotencyCacheEntry{
			Status:          statusProcessing,
			RequestBodyHash: t.bodyHash,
			CreatedAt:       time.Now(),
		}); err != nil {
			rlog.Error("Failed to mark request as processing", "error", err)
			return nil, nil, &errs.Error{Code: errs.Internal, Message: "Failed to check idempotency"}
		}
		return t, nil, nil
	}

	return handleExistingEntry(entry, t.bodyHash, idempotencyKey)
}

// Complete records the response so retries of the request replay it.
func (t *Ticket) Complete(ctx context.Context, statusCode int, body []byte) {
	if t == nil {
		return
	}
	completedEntry := model.IdempotencyCacheEntry{
		Status:          statusCompleted,
		RequestBodyHash: t.bodyHash,
		StatusCode:      statusCode,
		Response:        body,
		UpdatedAt:       time.Now(),
	}
	if setErr := entries.Set(ctx, t.cacheKey, completedEntry); setErr != nil {
		rlog.Error("Failed to cache successful response", "error", setErr)
		return
	}
	rlog.Debug("Request completed and response cached", "key", t.cacheKey.Key)
}

// Abandon releases the key so the request can be retried.
func (t *Ticket) Abandon(ctx context.Context) {
	if t == nil {
		return
	}
	if _, deleteErr := entries.Delete(ctx, t.cacheKey); deleteErr != nil {
		rlog.Error("Failed to clear failed request from cache", "error", deleteErr)
	}
}

// extractIdempotencyKey reads the optional idempotency key header. A header
// that is present but blank is rejected.
func extractIdempotencyKey(header http.Header) (string, *errs.Error) {
	values, ok := header[http.CanonicalHeaderKey(IDEMPOTENCY_HEADER)]
	if !ok || len(values) == 0 {
		return "", nil
	}

	idempotencyKey := strings.TrimSpace(values[0])
	if idempotencyKey == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header must not be blank"}
	}

	return idempotencyKey, nil
}

// handleExistingEntry handles cases where a cache entry already exists
func handleExistingEntry(entry model.IdempotencyCacheEntry, bodyHash, idempotencyKey string) (*Ticket, *Replay, error) {
	if err := validateBodyHash(entry, bodyHash); err != nil {
		return nil, nil, err
	}

	switch entry.Status {
	case statusProcessing:
		return nil, nil, handleProcessingEntry(idempotencyKey)
	case statusCompleted:
		if entry.StatusCode != 0 && len(entry.Response) > 0 {
			rlog.Info("Returning cached response", "key", idempotencyKey)
			return nil, &Replay{StatusCode: entry.StatusCode, Body: entry.Response}, nil
		}
	}

	rlog.Warn("Unusable cache entry, rejecting retry", "key", idempotencyKey, "status", entry.Status)
	return nil, nil, &errs.Error{Code: errs.Internal, Message: "Failed to check idempotency"}
}

// validateBodyHash checks for conflicts in request body hash
func validateBodyHash(entry model.IdempotencyCacheEntry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

// handleProcessingEntry handles concurrent request detection
func handleProcessingEntry(idempotencyKey string) *errs.Error {
	rlog.Info("Concurrent request detected", "key", idempotencyKey)
	return &errs.Error{Code: errs.Aborted, Message: "Request is already being processed."}
}

// hashing creates a stable hash of the request fingerprint
func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	hash := md5.New()
	hash.Write(body)
	return hex.EncodeToString(hash.Sum(nil))
}
