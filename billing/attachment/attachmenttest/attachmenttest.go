// Package attachmenttest builds multipart uploads for tests.
package attachmenttest

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"
)

// Minimal bodies that content sniffing recognises.
var (
	PNG = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 32)...)
	PDF = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n")
)

// File describes one uploaded file.
type File struct {
	Field       string
	Filename    string
	ContentType string
	Body        []byte
}

// Body writes fields and files as a multipart body and returns it together
// with the request content type.
func Body(t testing.TB, fields map[string]string, files ...File) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Field, f.Filename))
		if f.ContentType != "" {
			h.Set("Content-Type", f.ContentType)
		}
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.Body)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

// FileHeader round-trips a single file through a multipart reader so the
// returned header behaves exactly like one decoded from a request.
func FileHeader(t testing.TB, filename, contentType string, body []byte) *multipart.FileHeader {
	t.Helper()

	buf, ct := Body(t, nil, File{Field: "billImage", Filename: filename, ContentType: contentType, Body: body})
	boundary := ct[len("multipart/form-data; boundary="):]
	form, err := multipart.NewReader(buf, boundary).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["billImage"]
	require.Len(t, files, 1)
	return files[0]
}
