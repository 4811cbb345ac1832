package handlers

import (
	"mime"
	"os"
	"path/filepath"

	"sokoni/internal/storage"
	"sokoni/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// DocumentHandler serves uploaded KYC documents from local storage. Every
// link issued by the upload pipeline carries an HMAC signature and an
// expiry; unsigned, tampered or expired links are refused before any file
// read.
type DocumentHandler struct {
	store *storage.Local
}

func NewDocumentHandler(store *storage.Local) *DocumentHandler {
	return &DocumentHandler{store: store}
}

// Serve streams one stored document after validating its signed URL.
func (h *DocumentHandler) Serve(c *fiber.Ctx) error {
	path := c.Params("*")
	if path == "" {
		return response.BadRequest(c, "document path is required")
	}
	if !h.store.VerifySignature(path, c.Query("expires"), c.Query("signature")) {
		return response.Error(c, fiber.StatusForbidden, "invalid or expired document link")
	}

	data, err := h.store.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return response.Error(c, fiber.StatusNotFound, "document not found")
		}
		return response.ServerError(c, "failed to read document")
	}

	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		c.Set(fiber.HeaderContentType, ct)
	}
	return c.Send(data)
}
