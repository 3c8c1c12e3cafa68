package player

import (
	"net/url"
	"path"
	"strings"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
)

// mimeTypes lists every container the backend may serve.
var mimeTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
	".mp4":  "audio/mp4",
	".aac":  "audio/aac",
	".flac": "audio/flac",
	".ogg":  "audio/ogg",
	".oga":  "audio/ogg",
	".wav":  "audio/wav",
	".webm": "audio/webm",
	".opus": "audio/opus",
}

// Extension returns the lower-cased file extension of a source, ignoring
// any query string or fragment.
func Extension(src string) string {
	p := src
	if u, err := url.Parse(src); err == nil && u.Path != "" {
		p = u.Path
	}
	return strings.ToLower(path.Ext(p))
}

// MIMEType returns the MIME type for a source, or "" when unknown.
func MIMEType(src string) string {
	return mimeTypes[Extension(src)]
}

// CanPlay reports whether the player has a decoder for the source.
func CanPlay(src string) bool {
	switch Extension(src) {
	case extMP3, extFLAC, extWAV:
		return true
	default:
		return false
	}
}
