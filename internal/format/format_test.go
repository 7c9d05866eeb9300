package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ytfetch-bot/internal/ytdlp"
)

func video(height int) ytdlp.Variant {
	return ytdlp.Variant{Ext: "mp4", VCodec: "avc1", ACodec: "none", Height: height}
}

func audio(ext string) ytdlp.Variant {
	return ytdlp.Variant{Ext: ext, VCodec: "none", ACodec: "mp4a.40.2"}
}

func keys(cs []Choice) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Key)
	}
	return out
}

func TestChoicesSynthesizesFallbacks(t *testing.T) {
	cs := Choices([]ytdlp.Variant{video(720), video(480)})

	// discovered order first, then missing fallbacks
	require.Equal(t, []string{"720", "480", "1080", "360"}, keys(cs))
	require.Equal(t, "720p", cs[0].Label)
	require.Equal(t, "bestvideo[height=720]+bestaudio/best[height=720]", cs[0].Selector)
}

func TestChoicesDeduplicatesHeights(t *testing.T) {
	cs := Choices([]ytdlp.Variant{video(720), video(720), video(1080), video(720)})

	require.Equal(t, []string{"720", "1080", "480", "360"}, keys(cs))
}

func TestChoicesSingleAudio(t *testing.T) {
	cs := Choices([]ytdlp.Variant{audio("m4a"), audio("webm"), video(360)})

	audioCount := 0
	for _, c := range cs {
		if c.Key == AudioKey {
			audioCount++
			require.Equal(t, "Audio", c.Label)
			require.Equal(t, AudioSelector, c.Selector)
		}
	}
	require.Equal(t, 1, audioCount)
}

func TestChoicesAudioRequiresCompressedContainer(t *testing.T) {
	// wav is not a compressed container; the later m4a variant should win
	cs := Choices([]ytdlp.Variant{audio("wav"), audio("m4a")})

	require.Equal(t, AudioKey, cs[0].Key)
	require.Len(t, cs, 5) // audio + four fallbacks
}

func TestChoicesEmptyProbe(t *testing.T) {
	cs := Choices(nil)

	require.Equal(t, []string{"1080", "720", "480", "360"}, keys(cs))
}

func TestChoicesIgnoresHeightlessVideo(t *testing.T) {
	v := ytdlp.Variant{Ext: "mp4", VCodec: "avc1", ACodec: "mp4a", Height: 0}
	cs := Choices([]ytdlp.Variant{v})

	require.Equal(t, []string{"1080", "720", "480", "360"}, keys(cs))
}

func TestIsAudioFile(t *testing.T) {
	require.True(t, IsAudioFile("/tmp/x/abc123.mp3"))
	require.True(t, IsAudioFile("/tmp/x/abc123.M4A"))
	require.False(t, IsAudioFile("/tmp/x/abc123.mp4"))
	require.False(t, IsAudioFile("/tmp/x/abc123.webm"))
	require.False(t, IsAudioFile("/tmp/x/abc123"))
}
