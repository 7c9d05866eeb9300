// Package ytdlp wraps the external yt-dlp binary: a metadata-only probe and
// an actual media fetch. The binary is invoked once per call, no retries.
package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"ytfetch-bot/internal/fault"
)

// Variant is one encoded stream reported by the probe. yt-dlp reports a
// literal "none" codec for absent streams.
type Variant struct {
	FormatID string `json:"format_id"`
	Ext      string `json:"ext"`
	VCodec   string `json:"vcodec"`
	ACodec   string `json:"acodec"`
	Height   int    `json:"height"`
}

// HasVideo reports whether the variant carries a video stream.
func (v Variant) HasVideo() bool {
	return v.VCodec != "" && v.VCodec != "none"
}

// HasAudio reports whether the variant carries an audio stream.
func (v Variant) HasAudio() bool {
	return v.ACodec != "" && v.ACodec != "none"
}

// Info is the metadata of a single video.
type Info struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Variants []Variant `json:"formats"`
}

// Runner executes the external binary. Split out so tests can substitute a
// fake for the real process.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// ExecRunner runs the configured binary via os/exec.
type ExecRunner struct {
	Bin string
}

func (r ExecRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.Bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.Errorf("%s timed out", r.Bin)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, errors.New(msg)
	}
	return stdout.Bytes(), nil
}

// Client exposes the two operations the bot needs.
type Client struct {
	runner  Runner
	cookies string
}

// NewClient builds a client around the binary at bin. cookiesFile, when
// non-empty, is passed to every invocation for sources that need an
// authenticated session.
func NewClient(bin, cookiesFile string) *Client {
	return &Client{runner: ExecRunner{Bin: bin}, cookies: cookiesFile}
}

// NewClientWithRunner builds a client with a custom runner, for tests.
func NewClientWithRunner(r Runner) *Client {
	return &Client{runner: r}
}

// Probe fetches title and stream variants without downloading any media
// bytes.
func (c *Client) Probe(ctx context.Context, url string) (*Info, error) {
	args := c.withCookies(
		"-J",
		"--no-warnings",
		"--skip-download",
		"--no-playlist",
		url,
	)
	out, err := c.runner.Run(ctx, args...)
	if err != nil {
		return nil, fault.Wrap(fault.Extraction, err, "probe")
	}

	var info Info
	if err := json.Unmarshal(out, &info); err != nil {
		return nil, fault.Wrap(fault.Extraction, err, "parse probe output")
	}
	return &info, nil
}

// Fetch downloads the media selected by the format expression into dir and
// returns the path of the produced file. The output template is
// deterministic (media id + final extension); the concrete path is resolved
// from the directory afterwards because merging can change the extension.
func (c *Client) Fetch(ctx context.Context, url, selector, dir string) (string, error) {
	args := c.withCookies(
		"--quiet",
		"--no-warnings",
		"--no-playlist",
		"-f", selector,
		"-o", filepath.Join(dir, "%(id)s.%(ext)s"),
		url,
	)
	if _, err := c.runner.Run(ctx, args...); err != nil {
		return "", fault.Wrap(fault.Download, err, "download")
	}

	return resolveOutput(dir)
}

// withCookies prepends the cookies flag when a cookies file is configured.
func (c *Client) withCookies(args ...string) []string {
	if c.cookies == "" {
		return args
	}
	return append([]string{"--cookies", c.cookies}, args...)
}

// resolveOutput finds the single finished file in dir, skipping partial
// download droppings.
func resolveOutput(dir string) (string, error) {
	entries, err := filepath.Glob(filepath.Join(dir, "*"))
	if err != nil {
		return "", fault.Wrap(fault.Download, err, "scan output dir")
	}

	for _, path := range entries {
		switch filepath.Ext(path) {
		case ".part", ".ytdl", ".tmp":
			continue
		}
		return path, nil
	}
	return "", fault.New(fault.Download, errors.New("no output file produced"))
}
