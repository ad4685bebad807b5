package helper

import "testing"

func TestIsYouTubeURL(t *testing.T) {
	valid := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/shorts/dQw4w9WgXcQ",
	}
	for _, u := range valid {
		if !IsYouTubeURL(u) {
			t.Errorf("IsYouTubeURL(%q) = false, quiero true", u)
		}
	}

	invalid := []string{
		"https://vimeo.com/123456",
		"https://youtube.com/",
		"no-es-url",
		"",
	}
	for _, u := range invalid {
		if IsYouTubeURL(u) {
			t.Errorf("IsYouTubeURL(%q) = true, quiero false", u)
		}
	}
}
