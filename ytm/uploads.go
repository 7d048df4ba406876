package ytm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/httputil"
	"github.com/xeptore/ytmusic/nav"
	"github.com/xeptore/ytmusic/unit"
	"github.com/xeptore/ytmusic/ytm/parse"
	"github.com/xeptore/ytmusic/ytm/types"
)

const (
	uploadURL     = "https://upload.youtube.com/upload/usermusic/http?authuser=0"
	uploadMaxSize = 300 * unit.Megabyte
)

// ErrDuplicateUpload reports that the service already holds an identical
// file. The existing upload is untouched.
var ErrDuplicateUpload = errors.New("this file was already uploaded")

var uploadExtensions = map[string]struct{}{
	".mp3":  {},
	".m4a":  {},
	".wma":  {},
	".flac": {},
	".ogg":  {},
}

// UploadSongs lists the account's uploaded songs.
func (c *Client) UploadSongs(ctx context.Context, logger zerolog.Logger, limit int) ([]types.UploadTrack, error) {
	if err := c.checkAuth(); nil != err {
		return nil, err
	}

	body := map[string]any{"browseId": "FEmusic_library_privately_owned_tracks"}
	response, err := c.sendRequest(ctx, logger, "browse", body, "")
	if nil != err {
		return nil, err
	}

	shelf := parse.LibraryContents(response, parse.PlaylistShelf)
	if !shelf.Exists() {
		shelf = parse.LibraryContents(response, parse.Shelf)
	}
	if !shelf.Exists() {
		return nil, &nav.PathError{Path: []any{"contents", parse.PlaylistShelf}, At: 1}
	}

	tracks := parse.UploadTracks(nav.OptionalList(shelf, "contents"))
	if limit > 0 && len(tracks) >= limit {
		return tracks, nil
	}

	more, err := getContinuations(ctx, shelf, musicShelfContinuation, limit-len(tracks),
		func(ctx context.Context, additionalParams string) (gjson.Result, error) {
			return c.sendRequest(ctx, logger, "browse", body, additionalParams)
		}, parse.UploadTracks, "")
	if nil != err {
		return nil, err
	}

	return append(tracks, more...), nil
}

// UploadAlbums lists the account's uploaded albums.
func (c *Client) UploadAlbums(ctx context.Context, logger zerolog.Logger, limit int) ([]types.UploadAlbum, error) {
	if err := c.checkAuth(); nil != err {
		return nil, err
	}

	body := map[string]any{"browseId": "FEmusic_library_privately_owned_releases"}
	response, err := c.sendRequest(ctx, logger, "browse", body, "")
	if nil != err {
		return nil, err
	}

	grid := parse.LibraryContents(response, parse.Grid)
	if !grid.Exists() {
		return nil, &nav.PathError{Path: []any{"contents", parse.Grid}, At: 1}
	}

	albums := parse.UploadAlbums(nav.OptionalList(grid, "items"))
	if limit > 0 && len(albums) >= limit {
		return albums, nil
	}

	more, err := getContinuations(ctx, grid, gridContinuation, limit-len(albums),
		func(ctx context.Context, additionalParams string) (gjson.Result, error) {
			return c.sendRequest(ctx, logger, "browse", body, additionalParams)
		}, parse.UploadAlbums, "")
	if nil != err {
		return nil, err
	}

	return append(albums, more...), nil
}

// UploadArtists lists the artists of the account's uploads.
func (c *Client) UploadArtists(ctx context.Context, logger zerolog.Logger, limit int) ([]types.UploadArtist, error) {
	if err := c.checkAuth(); nil != err {
		return nil, err
	}

	body := map[string]any{"browseId": "FEmusic_library_privately_owned_artists"}
	response, err := c.sendRequest(ctx, logger, "browse", body, "")
	if nil != err {
		return nil, err
	}

	shelf := parse.LibraryContents(response, parse.Shelf)
	if !shelf.Exists() {
		return nil, &nav.PathError{Path: []any{"contents", parse.Shelf}, At: 1}
	}

	artists := parse.UploadArtists(nav.OptionalList(shelf, "contents"))
	if limit > 0 && len(artists) >= limit {
		return artists, nil
	}

	more, err := getContinuations(ctx, shelf, musicShelfContinuation, limit-len(artists),
		func(ctx context.Context, additionalParams string) (gjson.Result, error) {
			return c.sendRequest(ctx, logger, "browse", body, additionalParams)
		}, parse.UploadArtists, "")
	if nil != err {
		return nil, err
	}

	return append(artists, more...), nil
}

// UploadAlbum returns one uploaded album with its tracks. browseID comes
// from UploadAlbums.
func (c *Client) UploadAlbum(ctx context.Context, logger zerolog.Logger, browseID string) (*types.UploadAlbum, []types.UploadTrack, error) {
	if err := c.checkAuth(); nil != err {
		return nil, nil, err
	}

	response, err := c.sendRequest(ctx, logger, "browse", map[string]any{"browseId": browseID}, "")
	if nil != err {
		return nil, nil, err
	}

	album, tracks, err := parse.UploadAlbumPage(response)
	if nil != err {
		return nil, nil, err
	}
	if album.BrowseID == "" {
		album.BrowseID = browseID
	}

	return album, tracks, nil
}

// UploadSong uploads an audio file to the account's private locker via the
// two-phase resumable handshake. Only browser-cookie credentials carry the
// scope the upload origin accepts.
func (c *Client) UploadSong(ctx context.Context, logger zerolog.Logger, path string) (status string, err error) {
	if err := c.checkBrowserAuth(); nil != err {
		return "", err
	}

	info, err := os.Stat(path)
	if nil != err {
		return "", userErrorf("cannot access upload file: %v", err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := uploadExtensions[ext]; !ok {
		return "", userErrorf("unsupported file type %q; supported types: mp3, m4a, wma, flac, ogg", ext)
	}
	if info.Size() >= uploadMaxSize {
		return "", userErrorf("file is too large (%d bytes); the upload limit is 300MB", info.Size())
	}

	content, err := os.ReadFile(path)
	if nil != err {
		return "", fmt.Errorf("read upload file: %v", err)
	}

	logger.Debug().
		Str("file", filepath.Base(path)).
		Str("mime", mimetype.Detect(content).String()).
		Int64("size", info.Size()).
		Msg("Starting upload")

	headers, err := c.creds.Headers(ctx, logger)
	if nil != err {
		return "", fmt.Errorf("compute request headers: %w", err)
	}

	sessionURL, err := c.startUploadSession(ctx, headers, filepath.Base(path), info.Size())
	if nil != err {
		return "", err
	}

	return c.finishUpload(ctx, headers, sessionURL, content)
}

// startUploadSession performs phase one of the handshake and returns the
// session URL the file bytes go to.
func (c *Client) startUploadSession(ctx context.Context, headers http.Header, filename string, size int64) (string, error) {
	form := url.Values{"filename": {filename}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, strings.NewReader(form))
	if nil != err {
		return "", fmt.Errorf("create upload session request: %v", err)
	}
	req.Header = headers.Clone()
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")
	req.Header.Set("X-Goog-Upload-Command", "start")
	req.Header.Set("X-Goog-Upload-Header-Content-Length", strconv.FormatInt(size, 10))
	req.Header.Set("X-Goog-Upload-Protocol", "resumable")

	resp, err := c.http.Do(req)
	if nil != err {
		return "", fmt.Errorf("send upload session request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := httputil.ReadResponseBody(resp)
		if _, message, ok := httputil.ErrorMessage(body); ok {
			return "", &ServerError{Status: resp.StatusCode, Message: message}
		}

		return "", &ServerError{Status: resp.StatusCode, Message: ""}
	}

	sessionURL := resp.Header.Get("X-Goog-Upload-URL")
	if sessionURL == "" {
		return "", errors.New("upload session response carries no upload URL")
	}

	return sessionURL, nil
}

func (c *Client) finishUpload(ctx context.Context, headers http.Header, sessionURL string, content []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sessionURL, bytes.NewReader(content))
	if nil != err {
		return "", fmt.Errorf("create upload request: %v", err)
	}
	req.Header = headers.Clone()
	req.Header.Del("Content-Type")
	req.Header.Set("X-Goog-Upload-Command", "upload, finalize")
	req.Header.Set("X-Goog-Upload-Offset", "0")

	resp, err := c.http.Do(req)
	if nil != err {
		return "", fmt.Errorf("send upload request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
		return "STATUS_SUCCEEDED", nil
	case http.StatusConflict:
		return "", ErrDuplicateUpload
	default:
		body, _ := httputil.ReadResponseBody(resp)

		return "", &ServerError{Status: resp.StatusCode, Message: string(body)}
	}
}

// DeleteUploadEntity removes an uploaded song or album by the entity id
// carried on its rows.
func (c *Client) DeleteUploadEntity(ctx context.Context, logger zerolog.Logger, entityID string) (string, error) {
	if err := c.checkAuth(); nil != err {
		return "", err
	}
	if entityID == "" {
		return "", &UserError{Msg: "entity id must not be empty"}
	}

	response, err := c.sendRequest(ctx, logger, "music/delete_privately_owned_entity",
		map[string]any{"entityId": strings.TrimPrefix(entityID, "FEmusic_library_privately_owned_release_detail")}, "")
	if nil != err {
		return "", err
	}

	return responseStatus(response), nil
}
