// Package format turns probed stream variants into the fixed set of
// selectable download choices.
package format

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"ytfetch-bot/internal/ytdlp"
)

// Choice is one selectable download option. Key travels as the callback
// payload; Selector is the yt-dlp format expression derived from it and
// never leaves the process.
type Choice struct {
	Key      string
	Label    string
	Selector string
}

// AudioKey is the callback payload of the single audio choice.
const AudioKey = "audio"

// AudioSelector picks the best available audio-only stream.
const AudioSelector = "bestaudio/best"

// fallbackHeights are always offered even when the probe does not report
// them. Picking one that does not exist fails at download time, which keeps
// the button set predictable for sparse metadata.
var fallbackHeights = []int{1080, 720, 480, 360}

// audioExts are the containers treated as compressed audio.
var audioExts = map[string]struct{}{
	"m4a":  {},
	"mp3":  {},
	"webm": {},
	"opus": {},
}

// Choices enumerates the selectable options for the given variants:
// at most one audio choice (first audio variant wins), one choice per
// distinct video height (first occurrence wins), then the synthetic fallback
// heights not already discovered.
func Choices(variants []ytdlp.Variant) []Choice {
	var out []Choice
	seen := make(map[int]bool)
	haveAudio := false

	for _, v := range variants {
		if !haveAudio && !v.HasVideo() && v.HasAudio() {
			if _, ok := audioExts[strings.ToLower(v.Ext)]; ok {
				out = append(out, Choice{Key: AudioKey, Label: "Audio", Selector: AudioSelector})
				haveAudio = true
			}
			continue
		}
		if v.HasVideo() && v.Height > 0 && !seen[v.Height] {
			seen[v.Height] = true
			out = append(out, videoChoice(v.Height))
		}
	}

	for _, h := range fallbackHeights {
		if !seen[h] {
			seen[h] = true
			out = append(out, videoChoice(h))
		}
	}

	return out
}

func videoChoice(height int) Choice {
	return Choice{
		Key:      strconv.Itoa(height),
		Label:    fmt.Sprintf("%dp", height),
		Selector: fmt.Sprintf("bestvideo[height=%d]+bestaudio/best[height=%d]", height, height),
	}
}

// IsAudioFile classifies a downloaded artifact by extension. Everything
// outside the audio set is treated as video.
func IsAudioFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3", ".m4a":
		return true
	}
	return false
}
