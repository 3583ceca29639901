package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanq16/getr/internal/utils"
)

func newTestManager(v utils.Verbosity) (*Manager, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	m := NewManager(v)
	m.Stdout = &stdout
	m.Stderr = &stderr
	return m, &stdout, &stderr
}

func TestManagerVerbose(t *testing.T) {
	m, stdout, stderr := newTestManager(utils.Verbose)
	m.StreamLine("HTTP request sent... 200 OK")
	m.StreamLine("content-type missing")
	m.Complete("file saved successfully")

	assert.Contains(t, stdout.String(), "HTTP request sent... 200 OK")
	assert.Contains(t, stdout.String(), "content-type missing")
	assert.Contains(t, stdout.String(), "file saved successfully")
	assert.Empty(t, stderr.String())

	m.ReportError("download failed", errors.New("connection reset"))
	assert.Contains(t, stderr.String(), "download failed: connection reset")
	assert.NotContains(t, stdout.String(), "connection reset")
}

func TestManagerQuiet(t *testing.T) {
	m, stdout, stderr := newTestManager(utils.Quiet)
	m.StreamLine("HTTP request sent... 200 OK")
	m.Complete("file saved successfully")
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())

	m.ReportError("failed to write to file", errors.New("disk full"))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "failed to write to file: disk full")
}

func TestProgressKnownTotal(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, utils.Verbose, "archive.tar", 9900)
	for downloaded := int64(100); downloaded <= 9900; downloaded += 100 {
		p.Update(downloaded, 9900)
	}
	p.Finish()
	assert.Equal(t, int64(9900), p.Current())
	assert.Equal(t, int64(9900), p.Total())
	assert.True(t, p.Finished())
	assert.Contains(t, buf.String(), "archive.tar")
}

func TestProgressSpinner(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, utils.Verbose, "stream", -1)
	p.Update(1024, -1)
	p.Update(2048, -1)
	p.Update(1500, -1) // stale updates are ignored
	p.Finish()
	p.Finish()
	assert.Equal(t, int64(2048), p.Current())
	assert.True(t, p.Finished())
	assert.Equal(t, int64(-1), p.bar.GetMax64())
}

func TestProgressEmptyBody(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, utils.Verbose, "empty.txt", 0)
	assert.Equal(t, int64(1), p.bar.GetMax64(), "zero length still renders a bar")
	p.Finish()
	assert.Equal(t, int64(0), p.Current())
	assert.Equal(t, int64(0), p.Total())
	assert.True(t, p.Finished())
	assert.Contains(t, buf.String(), "empty.txt")
}

func TestProgressQuietAndAbandon(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, utils.Quiet, "hidden", 10)
	p.Update(5, 10)
	p.Abandon()
	p.Finish()
	assert.Empty(t, buf.String())
	assert.Equal(t, int64(5), p.Current())
	assert.False(t, p.Finished())
}

func TestProgressWidth(t *testing.T) {
	assert.Equal(t, 40, progressWidth(&bytes.Buffer{}))
}
