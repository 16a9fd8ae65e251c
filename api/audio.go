package api

import (
	"context"
	"net/url"
	"strings"
)

// AudioDownload is a downloaded call recording ready to save.
type AudioDownload struct {
	// Name is the suggested download filename: the transcription filename
	// with its ".txt" extension rewritten for the returned MIME type.
	Name string

	// MIMEType is the Content-Type the backend served.
	MIMEType string

	// Data is the audio content.
	Data []byte
}

// DownloadAudio streams the call recording behind a transcription filename.
// The download name rewrites ".txt" to ".mp3" when the backend serves
// audio/mpeg, and to ".wav" for anything else.
func (c *Client) DownloadAudio(ctx context.Context, filename string) (AudioDownload, error) {
	path := "/stream-audio?audio_name=" + url.QueryEscape(filename)

	data, mime, err := c.http.GetBinary(ctx, path)
	if err != nil {
		return AudioDownload{}, err
	}

	ext := ".wav"
	if mime == "audio/mpeg" {
		ext = ".mp3"
	}

	return AudioDownload{
		Name:     strings.Replace(filename, ".txt", ext, 1),
		MIMEType: mime,
		Data:     data,
	}, nil
}
