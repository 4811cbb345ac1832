package storage

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocal(t *testing.T) *Local {
	t.Helper()
	l, err := NewLocal(t.TempDir(), "http://localhost:3000/documents", "test-secret")
	require.NoError(t, err)
	return l
}

func TestLocalUpload(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLocal(dir, "http://localhost:3000/documents", "test-secret")
	require.NoError(t, err)

	ctx := context.Background()
	err = l.Upload(ctx, "42/id_document_1.pdf", []byte("content"), UploadOptions{ContentType: "application/pdf", Upsert: true})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "42", "id_document_1.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestLocalUploadConflictWithoutUpsert(t *testing.T) {
	l := newTestLocal(t)
	ctx := context.Background()

	require.NoError(t, l.Upload(ctx, "a.pdf", []byte("one"), UploadOptions{}))

	err := l.Upload(ctx, "a.pdf", []byte("two"), UploadOptions{})
	assert.Error(t, err)

	// Upsert replaces.
	require.NoError(t, l.Upload(ctx, "a.pdf", []byte("two"), UploadOptions{Upsert: true}))
}

func TestLocalRead(t *testing.T) {
	l := newTestLocal(t)
	ctx := context.Background()
	require.NoError(t, l.Upload(ctx, "42/doc.pdf", []byte("content"), UploadOptions{Upsert: true}))

	data, err := l.Read("42/doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	_, err = l.Read("42/missing.pdf")
	assert.True(t, os.IsNotExist(err))

	// Paths escaping the storage root are refused.
	for _, path := range []string{"../secret", "../../etc/passwd", "/etc/passwd", ".."} {
		_, err := l.Read(path)
		assert.Error(t, err, "path %q", path)
	}
}

func TestLocalSignedURL(t *testing.T) {
	l := newTestLocal(t)
	ctx := context.Background()
	require.NoError(t, l.Upload(ctx, "42/doc.pdf", []byte("x"), UploadOptions{Upsert: true}))

	signed, err := l.CreateSignedURL(ctx, "42/doc.pdf", time.Hour)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(signed, "http://localhost:3000/documents/42/doc.pdf?"), "got %q", signed)

	u, err := url.Parse(signed)
	require.NoError(t, err)
	q := u.Query()
	assert.True(t, l.VerifySignature("42/doc.pdf", q.Get("expires"), q.Get("signature")))

	// Tampered path or signature fails.
	assert.False(t, l.VerifySignature("42/other.pdf", q.Get("expires"), q.Get("signature")))
	assert.False(t, l.VerifySignature("42/doc.pdf", q.Get("expires"), "deadbeef"))
}

func TestLocalSignedURLExpiry(t *testing.T) {
	l := newTestLocal(t)
	ctx := context.Background()
	require.NoError(t, l.Upload(ctx, "doc.pdf", []byte("x"), UploadOptions{Upsert: true}))

	signed, err := l.CreateSignedURL(ctx, "doc.pdf", -time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(signed)
	require.NoError(t, err)
	q := u.Query()
	assert.False(t, l.VerifySignature("doc.pdf", q.Get("expires"), q.Get("signature")))
}

func TestLocalSignedURLMissingObject(t *testing.T) {
	l := newTestLocal(t)
	_, err := l.CreateSignedURL(context.Background(), "nope.pdf", time.Hour)
	assert.Error(t, err)
}

func TestLocalPublicURL(t *testing.T) {
	l := newTestLocal(t)
	assert.Empty(t, l.GetPublicURL("doc.pdf"))

	l.Public = true
	assert.Equal(t, "http://localhost:3000/documents/doc.pdf", l.GetPublicURL("doc.pdf"))
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Upload(ctx, "a.pdf", []byte("one"), UploadOptions{ContentType: "application/pdf"}))
	assert.Error(t, m.Upload(ctx, "a.pdf", []byte("two"), UploadOptions{}))
	require.NoError(t, m.Upload(ctx, "a.pdf", []byte("two"), UploadOptions{Upsert: true}))

	data, contentType, ok := m.Object("a.pdf")
	require.True(t, ok)
	assert.Equal(t, "two", string(data))
	assert.Equal(t, "", contentType)

	signed, err := m.CreateSignedURL(ctx, "a.pdf", time.Hour)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(signed, "memory://a.pdf?expires="))

	_, err = m.CreateSignedURL(ctx, "missing.pdf", time.Hour)
	assert.Error(t, err)

	assert.Empty(t, m.GetPublicURL("a.pdf"))
	m.PublicBaseURL = "https://cdn"
	assert.Equal(t, "https://cdn/a.pdf", m.GetPublicURL("a.pdf"))
}
