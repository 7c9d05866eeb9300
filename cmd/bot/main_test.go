package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeExecutable(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))
}

func TestCheckDependencies(t *testing.T) {
	dir := t.TempDir()
	writeExecutable(t, dir, "yt-dlp")
	writeExecutable(t, dir, "ffmpeg")
	t.Setenv("PATH", dir)

	require.NoError(t, checkDependencies("yt-dlp"))
}

func TestCheckDependenciesMissingDownloader(t *testing.T) {
	dir := t.TempDir()
	writeExecutable(t, dir, "ffmpeg")
	t.Setenv("PATH", dir)

	err := checkDependencies("yt-dlp")
	require.Error(t, err)
	require.Contains(t, err.Error(), "yt-dlp not found")
}

func TestCheckDependenciesMissingFFmpeg(t *testing.T) {
	// video choices merge separate video and audio streams, so a missing
	// ffmpeg must abort startup instead of failing every download later
	dir := t.TempDir()
	writeExecutable(t, dir, "yt-dlp")
	t.Setenv("PATH", dir)

	err := checkDependencies("yt-dlp")
	require.Error(t, err)
	require.Contains(t, err.Error(), "ffmpeg not found")
}
