package transcriber

import (
	"path/filepath"
	"strings"
)

var audioContentTypes = map[string]string{
	".mp3": "audio/mpeg",
	".m4a": "audio/mp4",
	".mp4": "audio/mp4",
	".wav": "audio/wav",
}

// ContentType maps an audio file name to the MIME type sent with the upload.
// Unknown extensions are sent as application/octet-stream.
func ContentType(name string) string {
	if ct, ok := audioContentTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}
