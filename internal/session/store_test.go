package session

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"ytfetch-bot/internal/format"
)

func sessionWith(link string) Session {
	return Session{
		Link:  link,
		Title: "T",
		Offered: []format.Choice{
			{Key: "720", Label: "720p", Selector: "bestvideo[height=720]+bestaudio/best[height=720]"},
			{Key: format.AudioKey, Label: "Audio", Selector: format.AudioSelector},
		},
	}
}

func TestPutGetRemove(t *testing.T) {
	s := NewStore()

	_, ok := s.Get(1)
	require.False(t, ok)

	s.Put(1, sessionWith("https://youtu.be/abc123"))
	got, ok := s.Get(1)
	require.True(t, ok)
	require.Equal(t, "https://youtu.be/abc123", got.Link)
	require.Equal(t, "T", got.Title)

	s.Remove(1)
	_, ok = s.Get(1)
	require.False(t, ok)

	// idempotent
	s.Remove(1)
}

func TestPutOverwrites(t *testing.T) {
	s := NewStore()

	s.Put(1, sessionWith("https://youtu.be/first"))
	s.Put(1, sessionWith("https://youtu.be/second"))

	got, ok := s.Get(1)
	require.True(t, ok)
	require.Equal(t, "https://youtu.be/second", got.Link)
}

func TestSelector(t *testing.T) {
	sess := sessionWith("https://youtu.be/abc123")

	sel, ok := sess.Selector("720")
	require.True(t, ok)
	require.Equal(t, "bestvideo[height=720]+bestaudio/best[height=720]", sel)

	sel, ok = sess.Selector(format.AudioKey)
	require.True(t, ok)
	require.Equal(t, format.AudioSelector, sel)

	_, ok = sess.Selector("4320")
	require.False(t, ok)
	_, ok = sess.Selector("bestvideo[height=9999]")
	require.False(t, ok)
}

func TestStoreConcurrency(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			s.Put(id, sessionWith("https://youtu.be/"+strconv.FormatInt(id, 10)))
			s.Get(id)
			s.Remove(id)
		}(int64(i))
	}
	wg.Wait()

	for i := int64(0); i < 50; i++ {
		_, ok := s.Get(i)
		require.False(t, ok)
	}
}
