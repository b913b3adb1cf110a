// Copyright (c) 2026 Chaldea. All rights reserved.

package media_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkorra/chaldea/internal/media"
	"github.com/velkorra/chaldea/internal/platform/apperr"
)

/*
TestStore_SaveServantPicture checks the <root>/servants/<id>/asc<grade><ext>
path layout and that the bytes land on disk.
*/
func TestStore_SaveServantPicture(t *testing.T) {
	root := t.TempDir()
	store := media.NewStore(root)

	path, err := store.SaveServantPicture(7, 1, "artoria.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "servants", "7", "asc1.png"), path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(written))
}

/*
TestStore_OverwriteSlot verifies that re-uploading to an occupied grade slot
replaces the file content in place.
*/
func TestStore_OverwriteSlot(t *testing.T) {
	store := media.NewStore(t.TempDir())

	first, err := store.SaveServantPicture(3, 2, "old.jpg", strings.NewReader("v1"))
	require.NoError(t, err)

	second, err := store.SaveServantPicture(3, 2, "new.jpg", strings.NewReader("v2"))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	written, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(written))
}

/*
TestStore_SaveSkillIcon checks the skill_<id>_icon<ext> naming.
*/
func TestStore_SaveSkillIcon(t *testing.T) {
	root := t.TempDir()
	store := media.NewStore(root)

	path, err := store.SaveSkillIcon(12, "icon.jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "skills", "skill_12_icon.jpeg"), path)
}

/*
TestContentType covers the extension allow-list, including the rejection of
anything outside jpg/jpeg/png.
*/
func TestContentType(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		want     string
		rejected bool
	}{
		{"jpg", "media/servants/1/asc1.jpg", "image/jpeg", false},
		{"jpeg", "media/servants/1/asc1.jpeg", "image/jpeg", false},
		{"png", "media/skills/skill_4_icon.png", "image/png", false},
		{"uppercase", "media/servants/1/ASC1.PNG", "image/png", false},
		{"gif", "media/servants/1/asc1.gif", "", true},
		{"no_ext", "media/servants/1/asc1", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := media.ContentType(tt.path)

			if tt.rejected {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "UNSUPPORTED_MEDIA", ae.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
