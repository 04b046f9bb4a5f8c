package platform

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestLookupTool(t *testing.T) {
	present := writeScript(t, "fake-ffmpeg", "exit 0\n")

	path, err := LookupTool(present)
	require.NoError(t, err)
	assert.Equal(t, present, path)

	_, err = LookupTool("clearly-not-present-binary")
	assert.True(t, errors.Is(err, ErrToolNotFound))

	_, err = LookupTool("  ")
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestCheckTool_Available(t *testing.T) {
	tool := writeScript(t, "fake-ffmpeg", "echo 'ffmpeg version 7.1 Copyright (c)'\necho 'built with gcc'\n")

	status := CheckTool(context.Background(), "FFmpeg", tool)

	assert.True(t, status.Available)
	assert.Equal(t, tool, status.Path)
	assert.Equal(t, "ffmpeg version 7.1 Copyright (c)", status.Version)
	assert.Empty(t, status.Detail)
}

func TestCheckTool_VersionFails(t *testing.T) {
	tool := writeScript(t, "broken-ffmpeg", "exit 3\n")

	status := CheckTool(context.Background(), "FFmpeg", tool)

	assert.True(t, status.Available)
	assert.Empty(t, status.Version)
	assert.Contains(t, status.Detail, "-version failed")
}

func TestCheckTool_Missing(t *testing.T) {
	status := CheckTool(context.Background(), "FFmpeg", "clearly-not-present-binary")

	assert.False(t, status.Available)
	assert.Empty(t, status.Path)
	assert.Contains(t, status.Detail, "not found")
}
