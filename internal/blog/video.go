package blog

import (
	"net/url"
	"strings"
)

// NormalizeVideoURL rewrites YouTube watch and short URLs into embed form so
// stored posts always carry an embeddable URL:
//
//	https://www.youtube.com/watch?v=ID -> https://www.youtube.com/embed/ID
//	https://youtu.be/ID                -> https://www.youtube.com/embed/ID
//
// Embed URLs and anything unrecognized pass through unchanged.
func NormalizeVideoURL(raw string) string {
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	switch {
	case isYouTubeHost(u.Host) && u.Path == "/watch":
		if id := u.Query().Get("v"); id != "" {
			return "https://www.youtube.com/embed/" + id
		}
	case u.Host == "youtu.be":
		if id := strings.Trim(u.Path, "/"); id != "" && !strings.Contains(id, "/") {
			return "https://www.youtube.com/embed/" + id
		}
	}
	return raw
}

func isYouTubeHost(host string) bool {
	return host == "youtube.com" || host == "www.youtube.com" || host == "m.youtube.com"
}
