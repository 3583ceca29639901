package utils

import (
	"net/url"
	"path/filepath"
	"strings"
)

// FilenameFromURL returns the last path segment of link, or fallback when that
// segment is empty or would escape the working directory.
func FilenameFromURL(link, fallback string) string {
	if fallback == "" {
		fallback = DefaultFilename
	}
	segment := ""
	if parsedURL, err := url.Parse(link); err == nil {
		pathParts := strings.Split(parsedURL.Path, "/")
		segment = pathParts[len(pathParts)-1]
	} else {
		pathParts := strings.Split(link, "/")
		segment = pathParts[len(pathParts)-1]
	}
	if !isPlainFilename(segment) {
		return fallback
	}
	return segment
}

func isPlainFilename(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return false
	}
	return filepath.Base(filepath.Clean(name)) == name
}

// ChunkSize aims for roughly 99 reads when the length is known, capped at
// MaxChunkSize since the length comes from the server.
func ChunkSize(contentLength int64) int {
	if contentLength < 0 {
		return FallbackChunkSize
	}
	return int(min(max(contentLength/ChunkDivisor, 1), MaxChunkSize))
}
