package video_test

import (
	"testing"

	"github.com/mkoskela/gymlog/internal/errors"
	"github.com/mkoskela/gymlog/internal/video"
)

func TestExtractID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "watch link", url: "https://www.youtube.com/watch?v=IODxDxX7oi4", want: "IODxDxX7oi4"},
		{name: "watch link with extra params", url: "https://www.youtube.com/watch?v=IODxDxX7oi4&t=42s", want: "IODxDxX7oi4"},
		{name: "short link", url: "https://youtu.be/IODxDxX7oi4", want: "IODxDxX7oi4"},
		{name: "shorts link", url: "https://www.youtube.com/shorts/IODxDxX7oi4", want: "IODxDxX7oi4"},
		{name: "mobile host", url: "https://m.youtube.com/watch?v=IODxDxX7oi4", want: "IODxDxX7oi4"},
		{name: "bare host", url: "https://youtube.com/watch?v=IODxDxX7oi4", want: "IODxDxX7oi4"},
		{name: "surrounding whitespace", url: "  https://youtu.be/IODxDxX7oi4  ", want: "IODxDxX7oi4"},
		{name: "wrong host", url: "https://vimeo.com/123456789", wantErr: true},
		{name: "missing scheme", url: "youtube.com/watch?v=IODxDxX7oi4", wantErr: true},
		{name: "short id", url: "https://youtu.be/short", wantErr: true},
		{name: "long id", url: "https://youtu.be/IODxDxX7oi4toolong", wantErr: true},
		{name: "invalid id characters", url: "https://www.youtube.com/watch?v=IODxDxX7oi!", wantErr: true},
		{name: "channel path", url: "https://www.youtube.com/@somechannel", wantErr: true},
		{name: "empty", url: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := video.ExtractID(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ExtractID(%q) = %q, want error", tt.url, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractID(%q): %v", tt.url, err)
			}
			if got != tt.want {
				t.Errorf("ExtractID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestValidate_emptyMeansNoVideo(t *testing.T) {
	if err := video.Validate(""); err != nil {
		t.Errorf("Validate(\"\") = %v, want nil", err)
	}
	if err := video.Validate("   "); err != nil {
		t.Errorf("Validate on whitespace = %v, want nil", err)
	}
	if err := video.Validate("https://example.com/clip"); !errors.Is(err, video.ErrInvalidURL) {
		t.Errorf("Validate on a non-youtube link = %v, want ErrInvalidURL", err)
	}
}

func TestEmbedURL(t *testing.T) {
	got, err := video.EmbedURL("https://youtu.be/IODxDxX7oi4")
	if err != nil {
		t.Fatal(err)
	}
	if want := "https://www.youtube.com/embed/IODxDxX7oi4"; got != want {
		t.Errorf("EmbedURL = %q, want %q", got, want)
	}

	if _, err := video.EmbedURL("https://youtu.be/nope"); err == nil {
		t.Error("expected error for a malformed id")
	}
}
