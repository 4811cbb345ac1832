package storage

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Local stores objects on the local filesystem and signs download URLs
// with an HMAC token. It backs single-node deployments and development.
type Local struct {
	dir     string
	baseURL string
	secret  []byte

	// Public disables URL signing requirements for GetPublicURL.
	Public bool
}

// NewLocal creates a filesystem-backed store rooted at dir. baseURL is the
// externally visible prefix served by the document route.
func NewLocal(dir, baseURL, secret string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Local{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		secret:  []byte(secret),
	}, nil
}

func (l *Local) Upload(ctx context.Context, path string, data []byte, opts UploadOptions) error {
	full := filepath.Join(l.dir, filepath.FromSlash(path))
	if !opts.Upsert {
		if _, err := os.Stat(full); err == nil {
			return fmt.Errorf("object already exists at %s", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}

func (l *Local) CreateSignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	full := filepath.Join(l.dir, filepath.FromSlash(path))
	if _, err := os.Stat(full); err != nil {
		return "", fmt.Errorf("no object at %s: %w", path, err)
	}
	exp := time.Now().Add(ttl).Unix()
	return fmt.Sprintf("%s/%s?expires=%d&signature=%s", l.baseURL, path, exp, l.sign(path, exp)), nil
}

func (l *Local) GetPublicURL(path string) string {
	if !l.Public {
		return ""
	}
	return l.baseURL + "/" + path
}

// Read returns the stored object's bytes. Paths escaping the storage root
// are refused.
func (l *Local) Read(path string) ([]byte, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("invalid object path %s", path)
	}
	return os.ReadFile(filepath.Join(l.dir, clean))
}

// VerifySignature checks a signed URL's token against its expiry.
func (l *Local) VerifySignature(path, expires, signature string) bool {
	exp, err := strconv.ParseInt(expires, 10, 64)
	if err != nil || time.Now().Unix() > exp {
		return false
	}
	return hmac.Equal([]byte(signature), []byte(l.sign(path, exp)))
}

func (l *Local) sign(path string, exp int64) string {
	mac := hmac.New(sha256.New, l.secret)
	fmt.Fprintf(mac, "%s:%d", path, exp)
	return hex.EncodeToString(mac.Sum(nil))
}
