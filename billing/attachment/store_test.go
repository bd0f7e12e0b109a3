package attachment

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice.app/billing/attachment/attachmenttest"
	"backoffice.app/billing/model"
)

func testPolicy(dir string) Policy {
	p := DefaultPolicy()
	p.Dir = dir
	return p
}

func TestStore_Validate(t *testing.T) {
	store := NewStore(testPolicy(t.TempDir()))

	testCases := []struct {
		name           string
		filename       string
		contentType    string
		body           []byte
		expectedReason model.Reason
	}{
		{
			name:        "png",
			filename:    "bill.png",
			contentType: "image/png",
			body:        attachmenttest.PNG,
		},
		{
			name:        "pdf",
			filename:    "bill.pdf",
			contentType: "application/pdf",
			body:        attachmenttest.PDF,
		},
		{
			name:        "uppercase_extension",
			filename:    "SCAN.JPG",
			contentType: "image/jpeg",
			body:        []byte("jpeg bytes"),
		},
		{
			name:     "sniffed_when_undeclared",
			filename: "bill.png",
			body:     attachmenttest.PNG,
		},
		{
			name:        "sniffed_when_octet_stream",
			filename:    "bill.pdf",
			contentType: "application/octet-stream",
			body:        attachmenttest.PDF,
		},
		{
			name:           "disallowed_extension",
			filename:       "bill.gif",
			contentType:    "image/png",
			body:           attachmenttest.PNG,
			expectedReason: model.ReasonInvalidAttachment,
		},
		{
			name:           "disallowed_content_type",
			filename:       "bill.png",
			contentType:    "text/plain",
			body:           []byte("not an image"),
			expectedReason: model.ReasonInvalidAttachment,
		},
		{
			name:           "sniffed_text_rejected",
			filename:       "bill.pdf",
			body:           []byte("just some text"),
			expectedReason: model.ReasonInvalidAttachment,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fh := attachmenttest.FileHeader(t, tc.filename, tc.contentType, tc.body)

			err := store.Validate(fh)

			if tc.expectedReason == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tc.expectedReason, model.ReasonOf(err))
				assert.Equal(t, FormField, model.FieldOf(err))
			}
		})
	}
}

func TestStore_Validate_Oversize(t *testing.T) {
	policy := testPolicy(t.TempDir())
	policy.MaxBytes = 16
	store := NewStore(policy)

	fh := attachmenttest.FileHeader(t, "bill.png", "image/png", bytes.Repeat([]byte{1}, 17))

	err := store.Validate(fh)
	require.Error(t, err)
	assert.Equal(t, model.ReasonInvalidAttachment, model.ReasonOf(err))
	assert.Contains(t, err.Error(), "16 bytes")
}

func TestStore_Validate_Missing(t *testing.T) {
	store := NewStore(testPolicy(t.TempDir()))

	err := store.Validate(nil)
	assert.Equal(t, model.ReasonMissingAttachment, model.ReasonOf(err))
}

func TestStore_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads", "dealerbills")
	store := NewStore(testPolicy(dir))

	fh := attachmenttest.FileHeader(t, "Invoice.PNG", "image/png", attachmenttest.PNG)

	path, err := store.Save(fh)
	require.NoError(t, err)

	assert.NotContains(t, path, `\`)
	assert.Equal(t, filepath.ToSlash(dir), filepath.ToSlash(filepath.Dir(filepath.FromSlash(path))))
	base := filepath.Base(path)
	assert.True(t, strings.HasPrefix(base, "bill_"), base)
	assert.True(t, strings.HasSuffix(base, ".png"), base)

	stored, err := os.ReadFile(filepath.FromSlash(path))
	require.NoError(t, err)
	assert.Equal(t, attachmenttest.PNG, stored)
}

func TestStore_Save_GeneratesDistinctNames(t *testing.T) {
	store := NewStore(testPolicy(t.TempDir()))

	first, err := store.Save(attachmenttest.FileHeader(t, "a.pdf", "application/pdf", attachmenttest.PDF))
	require.NoError(t, err)
	second, err := store.Save(attachmenttest.FileHeader(t, "a.pdf", "application/pdf", attachmenttest.PDF))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestStore_Save_RejectsBeforeWriting(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "bills")
	store := NewStore(testPolicy(dir))

	_, err := store.Save(attachmenttest.FileHeader(t, "bill.exe", "application/x-msdownload", []byte("MZ")))
	require.Error(t, err)
	assert.Equal(t, model.ReasonInvalidAttachment, model.ReasonOf(err))

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "content directory must not be created for a rejected upload")
}

func TestStore_Save_UnreachableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	store := NewStore(testPolicy(filepath.Join(blocker, "bills")))

	_, err := store.Save(attachmenttest.FileHeader(t, "bill.png", "image/png", attachmenttest.PNG))
	require.Error(t, err)
	assert.Equal(t, model.ReasonStorageUnavailable, model.ReasonOf(err))
}

func TestStore_Remove(t *testing.T) {
	t.Run("removes_stored_file", func(t *testing.T) {
		store := NewStore(testPolicy(t.TempDir()))
		path, err := store.Save(attachmenttest.FileHeader(t, "bill.png", "image/png", attachmenttest.PNG))
		require.NoError(t, err)

		require.NoError(t, store.Remove(path))

		_, statErr := os.Stat(filepath.FromSlash(path))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("absent_file_is_not_an_error", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(testPolicy(dir))

		assert.NoError(t, store.Remove(filepath.ToSlash(filepath.Join(dir, "bill_gone.png"))))
	})

	t.Run("empty_path_is_a_no_op", func(t *testing.T) {
		store := NewStore(testPolicy(t.TempDir()))

		assert.NoError(t, store.Remove(""))
	})

	t.Run("missing_directory_is_unavailable", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "vanished")
		store := NewStore(testPolicy(dir))

		err := store.Remove(filepath.ToSlash(filepath.Join(dir, "bill_x.png")))
		require.Error(t, err)
		assert.Equal(t, model.ReasonStorageUnavailable, model.ReasonOf(err))
	})

	t.Run("refuses_paths_outside_directory", func(t *testing.T) {
		root := t.TempDir()
		outside := filepath.Join(root, "keep.txt")
		require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))
		store := NewStore(testPolicy(filepath.Join(root, "bills")))

		err := store.Remove(filepath.ToSlash(outside))
		require.Error(t, err)
		assert.Equal(t, model.ReasonStorageError, model.ReasonOf(err))
		assert.FileExists(t, outside)
	})
}

func TestDetached(t *testing.T) {
	t.Run("restore_puts_file_back", func(t *testing.T) {
		store := NewStore(testPolicy(t.TempDir()))
		path, err := store.Save(attachmenttest.FileHeader(t, "bill.png", "image/png", attachmenttest.PNG))
		require.NoError(t, err)

		d, err := store.Detach(path)
		require.NoError(t, err)
		require.True(t, d.Staged())
		assert.NoFileExists(t, filepath.FromSlash(path))
		assert.FileExists(t, filepath.FromSlash(d.StagedPath()))
		assert.Equal(t, path, d.OriginalPath())

		require.NoError(t, d.Restore())
		assert.FileExists(t, filepath.FromSlash(path))
		assert.False(t, d.Staged())
	})

	t.Run("purge_deletes_file", func(t *testing.T) {
		store := NewStore(testPolicy(t.TempDir()))
		path, err := store.Save(attachmenttest.FileHeader(t, "bill.pdf", "application/pdf", attachmenttest.PDF))
		require.NoError(t, err)

		d, err := store.Detach(path)
		require.NoError(t, err)
		staged := d.StagedPath()

		require.NoError(t, d.Purge())
		assert.NoFileExists(t, filepath.FromSlash(path))
		assert.NoFileExists(t, filepath.FromSlash(staged))
	})

	t.Run("absent_file_stages_nothing", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(testPolicy(dir))

		d, err := store.Detach(filepath.ToSlash(filepath.Join(dir, "bill_gone.png")))
		require.NoError(t, err)
		assert.False(t, d.Staged())
		assert.Empty(t, d.OriginalPath())
		assert.NoError(t, d.Restore())
		assert.NoError(t, d.Purge())
	})

	t.Run("missing_directory_is_unavailable", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "vanished")
		store := NewStore(testPolicy(dir))

		_, err := store.Detach(filepath.ToSlash(filepath.Join(dir, "bill_x.png")))
		require.Error(t, err)
		assert.Equal(t, model.ReasonStorageUnavailable, model.ReasonOf(err))
	})
}
