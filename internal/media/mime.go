// Copyright (c) 2026 Chaldea. All rights reserved.

package media

import (
	"path/filepath"
	"strings"

	"github.com/velkorra/chaldea/internal/platform/apperr"
)

// ContentType derives the HTTP content type from a stored file's extension.
//
// Only JPEG and PNG are served; any other extension is rejected with an
// UNSUPPORTED_MEDIA error rather than sniffed or passed through.
func ContentType(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg", nil
	case ".png":
		return "image/png", nil
	default:
		return "", apperr.UnsupportedMedia("Unsupported file type")
	}
}
