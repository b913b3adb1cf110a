// Copyright (c) 2026 Chaldea. All rights reserved.

package requestutil_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkorra/chaldea/internal/platform/apperr"
	requestutil "github.com/velkorra/chaldea/internal/platform/request"
)

/*
TestParseAnyForm accepts both body encodings the form endpoints receive:
multipart from browser uploads and url-encoded from plain curl.
*/
func TestParseAnyForm(t *testing.T) {
	t.Run("url-encoded", func(t *testing.T) {
		request := httptest.NewRequest("PUT", "/masters/1", strings.NewReader("nickname=Rin&level=5"))
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		require.NoError(t, requestutil.ParseAnyForm(request))
		assert.Equal(t, "Rin", requestutil.FormValue(request, "nickname"))

		level, err := requestutil.FormInt(request, "level")
		require.NoError(t, err)
		assert.Equal(t, 5, level)
	})

	t.Run("multipart", func(t *testing.T) {
		body := &bytes.Buffer{}
		form := multipart.NewWriter(body)
		require.NoError(t, form.WriteField("nickname", "Rin"))
		require.NoError(t, form.Close())

		request := httptest.NewRequest("PUT", "/masters/1", body)
		request.Header.Set("Content-Type", form.FormDataContentType())

		require.NoError(t, requestutil.ParseAnyForm(request))
		assert.Equal(t, "Rin", requestutil.FormValue(request, "nickname"))
	})

	t.Run("malformed body", func(t *testing.T) {
		request := httptest.NewRequest("PUT", "/masters/1", strings.NewReader("%zz"))
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		err := requestutil.ParseAnyForm(request)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}
