package gitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("https://github.com/owner/notes.git"))
	assert.True(t, IsRemote("git@github.com:owner/notes.git"))
	assert.True(t, IsRemote("file:///srv/notes"))
	assert.False(t, IsRemote("docs/"))
	assert.False(t, IsRemote("/home/me/notes"))
}

func TestCacheDirName(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "Valid HTTPS URL",
			url:  "https://github.com/sevigo/notes.git",
			want: "github.com_sevigo_notes",
		},
		{
			name: "URL with trailing slash",
			url:  "https://github.com/sevigo/notes/",
			want: "github.com_sevigo_notes",
		},
		{
			name: "SCP-like SSH URL",
			url:  "git@gitlab.com:group/sub/notes.git",
			want: "gitlab.com_group_sub_notes",
		},
		{
			name:    "Missing path",
			url:     "https://github.com",
			wantErr: true,
		},
		{
			name:    "Local file URL without host",
			url:     "file:///srv/notes",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CacheDirName(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
