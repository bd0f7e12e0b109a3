package attachment

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"backoffice.app/billing/model"
)

// FormField is the multipart field that carries the attachment.
const FormField = "billImage"

// sniffLen is how much of an upload is read when the client did not
// declare a usable content type.
const sniffLen = 3072

// Store keeps bill attachments in a local content directory.
type Store struct {
	policy  Policy
	newName func(ext string) string
}

func NewStore(policy Policy) *Store {
	return &Store{
		policy: policy,
		newName: func(ext string) string {
			return "bill_" + uuid.NewString() + ext
		},
	}
}

func (s *Store) Policy() Policy {
	return s.policy
}

// Validate checks an upload against the policy without touching the disk.
func (s *Store) Validate(fh *multipart.FileHeader) error {
	if fh == nil {
		return model.NewError(model.ReasonMissingAttachment, FormField, "bill image is required")
	}

	ext := filepath.Ext(fh.Filename)
	if !s.policy.allowsExtension(ext) {
		return invalidType()
	}

	ct, err := contentType(fh)
	if err != nil || !s.policy.allowsContentType(ct) {
		return invalidType()
	}

	if fh.Size > s.policy.MaxBytes {
		return s.policy.ErrTooLarge()
	}
	return nil
}

// Save validates the upload and writes it under the content directory.
// It returns the stored path with forward slashes.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if err := s.Validate(fh); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.policy.Dir, 0o755); err != nil {
		return "", unavailable(err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", storageError("failed to read bill image", err)
	}
	defer src.Close()

	full := filepath.Join(s.policy.Dir, s.newName(strings.ToLower(filepath.Ext(fh.Filename))))
	dst, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", unavailable(err)
		}
		return "", storageError("failed to store bill image", err)
	}

	// The header size is client supplied; enforce the limit on the bytes too.
	n, copyErr := io.Copy(dst, io.LimitReader(src, s.policy.MaxBytes+1))
	closeErr := dst.Close()
	if copyErr == nil && n > s.policy.MaxBytes {
		_ = os.Remove(full)
		return "", s.policy.ErrTooLarge()
	}
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(full)
		return "", storageError("failed to store bill image", err)
	}

	return filepath.ToSlash(full), nil
}

// Remove deletes a stored attachment. A file that is already gone is not an
// error; a content directory that cannot be reached is.
func (s *Store) Remove(path string) error {
	if path == "" {
		return nil
	}
	p, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := s.reachable(); err != nil {
		return err
	}

	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return storageError("failed to remove bill image", err)
	}
	return nil
}

// resolve maps a stored path to a filesystem path, refusing anything that
// does not live directly under the content directory.
func (s *Store) resolve(path string) (string, error) {
	p := filepath.Clean(filepath.FromSlash(path))
	if filepath.Dir(p) != filepath.Clean(s.policy.Dir) {
		return "", model.NewError(model.ReasonStorageError, FormField,
			fmt.Sprintf("attachment %q is outside the content directory", path))
	}
	return p, nil
}

func (s *Store) reachable() error {
	info, err := os.Stat(s.policy.Dir)
	if err != nil {
		return unavailable(err)
	}
	if !info.IsDir() {
		return unavailable(fmt.Errorf("%s is not a directory", s.policy.Dir))
	}
	return nil
}

func contentType(fh *multipart.FileHeader) (string, error) {
	declared := fh.Header.Get("Content-Type")
	if declared != "" {
		mt, _, err := mime.ParseMediaType(declared)
		if err != nil {
			return "", err
		}
		if mt != "application/octet-stream" {
			return mt, nil
		}
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	mt, _, err := mime.ParseMediaType(mimetype.Detect(head[:n]).String())
	return mt, err
}

func invalidType() error {
	return model.NewError(model.ReasonInvalidAttachment, FormField,
		"only images (jpeg, jpg, png) and PDF files are allowed")
}

func unavailable(err error) error {
	return model.WrapError(model.ReasonStorageUnavailable, FormField, "upload directory not accessible", err)
}

func storageError(msg string, err error) error {
	return model.WrapError(model.ReasonStorageError, FormField, msg, err)
}
