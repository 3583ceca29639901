package utils

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilenameFromURL(t *testing.T) {
	tests := []struct {
		link     string
		fallback string
		want     string
	}{
		{"https://example.com/archive.tar.gz", "", "archive.tar.gz"},
		{"https://example.com/a/b/c/report.pdf", "", "report.pdf"},
		{"https://example.com/dir/", "", DefaultFilename},
		{"https://example.com", "", DefaultFilename},
		{"https://example.com/", "custom.out", "custom.out"},
		{"https://example.com/file.bin?token=abc#frag", "", "file.bin"},
		{"https://example.com/a/..", "", DefaultFilename},
		{"https://example.com/a/.", "", DefaultFilename},
		{"https://example.com/a/%2E%2E", "", DefaultFilename},
		{"https://example.com/a/..%2F..%2Fetc%2Fpasswd", "", "passwd"},
		{"https://example.com/a/evil%5C..%5Cx", "", DefaultFilename},
		{"https://example.com/space%20name.txt", "", "space name.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			assert.Equal(t, tt.want, FilenameFromURL(tt.link, tt.fallback))
		})
	}
}

func TestChunkSize(t *testing.T) {
	assert.Equal(t, FallbackChunkSize, ChunkSize(-1))
	assert.Equal(t, 1, ChunkSize(0))
	assert.Equal(t, 1, ChunkSize(98))
	assert.Equal(t, 100, ChunkSize(9900))
	for _, l := range []int64{99, 100, 197, 198, 1 << 20, 99 * MaxChunkSize} {
		got := ChunkSize(l)
		assert.Equal(t, int(l/99), got, "length %d", l)
		assert.GreaterOrEqual(t, got, 1)
	}
	for _, l := range []int64{99*MaxChunkSize + 99, 50 << 30, 9000000000000000000, math.MaxInt64} {
		assert.Equal(t, MaxChunkSize, ChunkSize(l), "length %d", l)
	}
}

func TestExitCode(t *testing.T) {
	base := errors.New("boom")
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{base, ExitUsage},
		{&URLParseError{URL: "x", Err: base}, ExitURLParse},
		{&TransportError{Op: "get", Err: base}, ExitTransport},
		{&HTTPStatusError{StatusCode: 404, Status: "404 Not Found"}, ExitHTTPStatus},
		{&FileIOError{Path: "out", Err: base}, ExitFileIO},
		{fmt.Errorf("wrapped: %w", &FileIOError{Path: "out", Err: base}), ExitFileIO},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExitCode(tt.err), "%v", tt.err)
	}
}

func TestErrorsUnwrap(t *testing.T) {
	assert.ErrorIs(t, &TransportError{Op: "read", Err: io.ErrUnexpectedEOF}, io.ErrUnexpectedEOF)
	assert.ErrorIs(t, &FileIOError{Path: "x", Err: os.ErrPermission}, os.ErrPermission)
	assert.Equal(t, "server returned 404 Not Found", (&HTTPStatusError{StatusCode: 404, Status: "404 Not Found"}).Error())
	assert.Equal(t, "server returned status 500", (&HTTPStatusError{StatusCode: 500}).Error())
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig("")
	require.NoError(t, err)
	assert.Equal(t, FileConfig{}, cfg)

	path := filepath.Join(t.TempDir(), "getr.yaml")
	content := "timeout: 30s\nkeep_alive_timeout: 1m\nuser_agent: test-agent\ndefault_filename: fallback.bin\ndebug: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	cfg, err = ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, time.Minute, cfg.KATimeout)
	assert.Equal(t, "test-agent", cfg.UserAgent)
	assert.Equal(t, "fallback.bin", cfg.DefaultFilename)
	assert.True(t, cfg.Debug)

	_, err = ReadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("timeout: [not, a, duration]\n"), 0644))
	_, err = ReadConfig(bad)
	assert.Error(t, err)
}

func TestJobStream(t *testing.T) {
	var lines []string
	job := &GetrJob{StreamFunc: func(line string) { lines = append(lines, line) }}
	job.Stream("one")
	job.Verbosity = Quiet
	job.Stream("two")
	assert.Equal(t, []string{"one"}, lines)
	assert.Equal(t, "quiet", Quiet.String())
	assert.Equal(t, "verbose", Verbose.String())
}
