package helper

import "regexp"

// Acepta youtube.com/watch?v=, youtu.be/, shorts y embed.
var youtubeRe = regexp.MustCompile(`^https?://(www\.)?(youtube\.com/(watch\?v=|embed/|shorts/)[A-Za-z0-9_-]{6,}|youtu\.be/[A-Za-z0-9_-]{6,})`)

func IsYouTubeURL(u string) bool {
	return youtubeRe.MatchString(u)
}
