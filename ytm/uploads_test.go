package ytm_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xeptore/ytmusic/ytm"
)

func TestUploadSongRequiresBrowserAuth(t *testing.T) {
	t.Parallel()

	srv := guardServer(t)

	for name, blob := range map[string]string{
		"anonymous":    "",
		"oauth opaque": `{"authorization": "Bearer ya29.token"}`,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, srv.URL, blob)
			_, err := client.UploadSong(context.Background(), zerolog.Nop(), "song.mp3")
			require.Error(t, err)
			assert.True(t, ytm.IsUserError(err))
			assert.Contains(t, err.Error(), "browser-cookie authentication")
		})
	}
}

func TestUploadSongRejectsBadFiles(t *testing.T) {
	t.Parallel()

	srv := guardServer(t)
	client := newTestClient(t, srv.URL, browserBlob)

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := client.UploadSong(context.Background(), zerolog.Nop(),
			filepath.Join(t.TempDir(), "missing.mp3"))
		require.Error(t, err)
		assert.True(t, ytm.IsUserError(err))
		assert.Contains(t, err.Error(), "cannot access upload file")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "song.wav")
		require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0o600))

		_, err := client.UploadSong(context.Background(), zerolog.Nop(), path)
		require.Error(t, err)
		assert.True(t, ytm.IsUserError(err))
		assert.Contains(t, err.Error(), `unsupported file type ".wav"`)
	})
}
