// Package video validates YouTube links attached to exercises and turns
// them into embeddable player URLs.
package video

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/mkoskela/gymlog/internal/errors"
)

// ErrInvalidURL is returned for links that are not recognizable YouTube
// video URLs.
var ErrInvalidURL = errors.NewSentinel("invalid youtube url")

// idLength is the fixed length of a YouTube video identifier.
const idLength = 11

// ExtractID pulls the video identifier out of a YouTube URL. It accepts the
// three link shapes YouTube hands out: watch?v=, youtu.be/ and shorts/.
func ExtractID(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", errors.Wrap(ErrInvalidURL, "unsupported scheme")
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	var id string
	switch host {
	case "youtube.com", "m.youtube.com":
		switch {
		case u.Path == "/watch":
			id = u.Query().Get("v")
		case strings.HasPrefix(u.Path, "/shorts/"):
			id = strings.TrimPrefix(u.Path, "/shorts/")
		default:
			return "", errors.Wrap(ErrInvalidURL, "unrecognized youtube path")
		}
	case "youtu.be":
		id = strings.TrimPrefix(u.Path, "/")
	default:
		return "", errors.Wrap(ErrInvalidURL, "not a youtube host")
	}

	id = strings.TrimSuffix(id, "/")
	if !validID(id) {
		return "", errors.Wrap(ErrInvalidURL, "malformed video id")
	}
	return id, nil
}

// Validate reports whether a URL may be stored on an exercise. The empty
// string is valid and means no video.
func Validate(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return nil
	}
	_, err := ExtractID(rawURL)
	return err
}

// EmbedURL converts any accepted YouTube link into the player embed form.
func EmbedURL(rawURL string) (string, error) {
	id, err := ExtractID(rawURL)
	if err != nil {
		return "", err
	}
	return "https://www.youtube.com/embed/" + id, nil
}

func validID(id string) bool {
	if len(id) != idLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
