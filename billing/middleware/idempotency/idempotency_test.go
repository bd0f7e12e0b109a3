package idempotency

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.dev/beta/errs"
	"encore.dev/storage/cache"

	"backoffice.app/billing/model"
)

// memoryEntries is an in-process stand-in for IdempotencyCache.
type memoryEntries struct {
	mu   sync.Mutex
	data map[model.IdempotencyKey]model.IdempotencyCacheEntry
}

func (m *memoryEntries) Get(_ context.Context, key model.IdempotencyKey) (model.IdempotencyCacheEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.data[key]
	if !ok {
		return model.IdempotencyCacheEntry{}, cache.Miss
	}
	return entry, nil
}

func (m *memoryEntries) Set(_ context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = val
	return nil
}

func (m *memoryEntries) SetIfNotExists(_ context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; ok {
		return cache.KeyExists
	}
	m.data[key] = val
	return nil
}

func (m *memoryEntries) Delete(_ context.Context, keys ...model.IdempotencyKey) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}
	return n, nil
}

func useMemoryEntries(t *testing.T) *memoryEntries {
	m := &memoryEntries{data: map[model.IdempotencyKey]model.IdempotencyCacheEntry{}}
	prev := entries
	entries = m
	t.Cleanup(func() { entries = prev })
	return m
}

func keyHeader(key string) http.Header {
	return http.Header{IDEMPOTENCY_HEADER: []string{key}}
}

// TestExtractIdempotencyKey tests the idempotency key extraction function
func TestExtractIdempotencyKey(t *testing.T) {
	testCases := []struct {
		name          string
		headers       http.Header
		expectedKey   string
		expectedError string
	}{
		{
			name:        "valid_key",
			headers:     http.Header{IDEMPOTENCY_HEADER: []string{"test-key-123"}},
			expectedKey: "test-key-123",
		},
		{
			name:        "valid_key_with_special_chars",
			headers:     http.Header{IDEMPOTENCY_HEADER: []string{"test-key_123-abc.def"}},
			expectedKey: "test-key_123-abc.def",
		},
		{
			name:        "missing_header_is_optional",
			headers:     http.Header{},
			expectedKey: "",
		},
		{
			name:          "empty_header_value",
			headers:       http.Header{IDEMPOTENCY_HEADER: []string{""}},
			expectedError: "X-Idempotency-Key header must not be blank",
		},
		{
			name:          "whitespace_only_header",
			headers:       http.Header{IDEMPOTENCY_HEADER: []string{"   "}},
			expectedError: "X-Idempotency-Key header must not be blank",
		},
		{
			name:        "multiple_header_values_takes_first",
			headers:     http.Header{IDEMPOTENCY_HEADER: []string{"first-key", "second-key"}},
			expectedKey: "first-key",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := extractIdempotencyKey(tc.headers)

			if tc.expectedError != "" {
				assert.NotNil(t, err, "Expected an error")
				if err != nil {
					assert.Contains(t, err.Error(), tc.expectedError)
				}
				assert.Empty(t, key)
			} else {
				assert.Nil(t, err, "Expected no error")
				assert.Equal(t, tc.expectedKey, key)
			}
		})
	}
}

// TestHashingFunction tests the underlying hashing function
func TestHashingFunction(t *testing.T) {
	testCases := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "empty_input",
			input:    []byte{},
			expected: "",
		},
		{
			name:     "simple_text",
			input:    []byte("test"),
			expected: "098f6bcd4621d373cade4e832627b4f6",
		},
		{
			name:  "form_fingerprint",
			input: []byte("amount=500.00\nbillNumber=B-100\nbillImage=bill.png:1024\n"),
		},
		{
			name:  "unicode_text",
			input: []byte("Unicode: 你好世界"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := hashing(tc.input)

			if len(tc.input) == 0 {
				assert.Equal(t, tc.expected, result)
				return
			}

			assert.Regexp(t, "^[a-f0-9]{32}$", result)
			if tc.expected != "" {
				assert.Equal(t, tc.expected, result)
			}
			assert.Equal(t, result, hashing(tc.input), "Hash should be deterministic")
			assert.NotEqual(t, result, hashing(append(tc.input, 'x')), "Different inputs should produce different hashes")
		})
	}
}

// TestValidateBodyHash tests the body hash validation function
func TestValidateBodyHash(t *testing.T) {
	testCases := []struct {
		name          string
		entry         model.IdempotencyCacheEntry
		bodyHash      string
		expectedError string
	}{
		{
			name:     "matching_hashes",
			entry:    model.IdempotencyCacheEntry{RequestBodyHash: "abc123"},
			bodyHash: "abc123",
		},
		{
			name:     "empty_cached_hash_allows_any",
			entry:    model.IdempotencyCacheEntry{RequestBodyHash: ""},
			bodyHash: "abc123",
		},
		{
			name:     "empty_new_hash_allows_any",
			entry:    model.IdempotencyCacheEntry{RequestBodyHash: "abc123"},
			bodyHash: "",
		},
		{
			name:          "conflicting_hashes",
			entry:         model.IdempotencyCacheEntry{RequestBodyHash: "abc123"},
			bodyHash:      "xyz789",
			expectedError: "idempotency key conflict: request body does not match previous request",
		},
		{
			name:          "case_sensitive_hash_comparison",
			entry:         model.IdempotencyCacheEntry{RequestBodyHash: "ABC123"},
			bodyHash:      "abc123",
			expectedError: "idempotency key conflict",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateBodyHash(tc.entry, tc.bodyHash)

			if tc.expectedError != "" {
				assert.NotNil(t, err, "Expected an error")
				if err != nil {
					assert.Contains(t, err.Error(), tc.expectedError)
				}
			} else {
				assert.Nil(t, err, "Expected no error")
			}
		})
	}
}

// TestHandleProcessingEntry tests the concurrent request handling
func TestHandleProcessingEntry(t *testing.T) {
	err := handleProcessingEntry("test-key-123")

	assert.Equal(t, errs.Aborted, err.Code)
	assert.Contains(t, err.Error(), "Request is already being processed")
}

func TestBegin_WithoutKey(t *testing.T) {
	store := useMemoryEntries(t)

	ticket, replay, err := Begin(context.Background(), "/v1/bills", http.Header{}, []byte("form"))

	assert.NoError(t, err)
	assert.Nil(t, ticket)
	assert.Nil(t, replay)
	assert.Empty(t, store.data)

	// A nil ticket is safe to finish.
	ticket.Complete(context.Background(), http.StatusCreated, []byte(`{}`))
	ticket.Abandon(context.Background())
}

func TestBegin_ReplaysCompletedRequest(t *testing.T) {
	useMemoryEntries(t)
	ctx := context.Background()

	ticket, replay, err := Begin(ctx, "/v1/bills", keyHeader("k-1"), []byte("form"))
	require.NoError(t, err)
	require.NotNil(t, ticket)
	assert.Nil(t, replay)

	ticket.Complete(ctx, http.StatusCreated, []byte(`{"message":"Bill created successfully"}`))

	again, replay, err := Begin(ctx, "/v1/bills", keyHeader("k-1"), []byte("form"))
	require.NoError(t, err)
	assert.Nil(t, again)
	require.NotNil(t, replay)
	assert.Equal(t, http.StatusCreated, replay.StatusCode)
	assert.JSONEq(t, `{"message":"Bill created successfully"}`, string(replay.Body))
}

func TestBegin_ConflictingBody(t *testing.T) {
	useMemoryEntries(t)
	ctx := context.Background()

	ticket, _, err := Begin(ctx, "/v1/bills", keyHeader("k-1"), []byte("form-a"))
	require.NoError(t, err)
	ticket.Complete(ctx, http.StatusCreated, []byte(`{}`))

	_, _, err = Begin(ctx, "/v1/bills", keyHeader("k-1"), []byte("form-b"))

	require.Error(t, err)
	assert.Equal(t, errs.InvalidArgument, errs.Code(err))
}

func TestBegin_ConcurrentRequest(t *testing.T) {
	useMemoryEntries(t)
	ctx := context.Background()

	_, _, err := Begin(ctx, "/v1/bills", keyHeader("k-1"), []byte("form"))
	require.NoError(t, err)

	_, _, err = Begin(ctx, "/v1/bills", keyHeader("k-1"), []byte("form"))

	require.Error(t, err)
	assert.Equal(t, errs.Aborted, errs.Code(err))
}

func TestBegin_AbandonAllowsRetry(t *testing.T) {
	useMemoryEntries(t)
	ctx := context.Background()

	ticket, _, err := Begin(ctx, "/v1/bills", keyHeader("k-1"), []byte("form"))
	require.NoError(t, err)
	ticket.Abandon(ctx)

	retry, replay, err := Begin(ctx, "/v1/bills", keyHeader("k-1"), []byte("form"))
	require.NoError(t, err)
	assert.NotNil(t, retry)
	assert.Nil(t, replay)
}

func TestBegin_StaleClaimIsTakenOver(t *testing.T) {
	store := useMemoryEntries(t)
	key := model.IdempotencyKey{Resource: "/v1/bills", Key: "k-1"}
	store.data[key] = model.IdempotencyCacheEntry{
		Status:    statusProcessing,
		CreatedAt: time.Now().Add(-processingLease - time.Second),
	}

	ticket, replay, err := Begin(context.Background(), "/v1/bills", keyHeader("k-1"), []byte("form"))

	require.NoError(t, err)
	assert.NotNil(t, ticket)
	assert.Nil(t, replay)
	assert.WithinDuration(t, time.Now(), store.data[key].CreatedAt, time.Minute)
}

func TestBegin_KeysAreScopedByResource(t *testing.T) {
	useMemoryEntries(t)
	ctx := context.Background()

	_, _, err := Begin(ctx, "/v1/bills", keyHeader("k-1"), []byte("form"))
	require.NoError(t, err)

	other, _, err := Begin(ctx, "/v1/bills/7", keyHeader("k-1"), []byte("form"))
	require.NoError(t, err)
	assert.NotNil(t, other)
}
