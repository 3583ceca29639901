package getrhttp

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tanq16/getr/internal/utils"
)

const maxConsecutiveEmptyReads = 100

// PerformSimpleDownload copies body into outputPath chunk by chunk. Chunks go
// to a part file next to the destination which is renamed over it only once
// the body has been fully read, so a failed download never leaves a truncated
// output behind. A symlinked destination is written through to its target.
func PerformSimpleDownload(body io.Reader, outputPath string, chunkSize int, progress func(n int64)) (int64, error) {
	chunkSize = min(max(chunkSize, 1), utils.MaxChunkSize)
	target, mode, existing, err := resolveDestination(outputPath)
	if err != nil {
		return 0, &utils.FileIOError{Path: outputPath, Err: err}
	}
	partPath := filepath.Join(filepath.Dir(target), "."+filepath.Base(target)+"."+uuid.NewString()+utils.PartSuffix)
	partFile, err := os.OpenFile(partPath, os.O_RDWR|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return 0, &utils.FileIOError{Path: outputPath, Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			partFile.Close()
			os.Remove(partPath)
		}
	}()

	written, err := copyChunks(partFile, body, chunkSize, progress, outputPath)
	if err != nil {
		return written, err
	}
	if err := partFile.Sync(); err != nil {
		return written, &utils.FileIOError{Path: outputPath, Err: err}
	}
	if existing {
		if err := partFile.Chmod(mode); err != nil {
			return written, &utils.FileIOError{Path: outputPath, Err: err}
		}
	}
	if err := partFile.Close(); err != nil {
		return written, &utils.FileIOError{Path: outputPath, Err: err}
	}
	if err := os.Rename(partPath, target); err != nil {
		return written, &utils.FileIOError{Path: outputPath, Err: fmt.Errorf("error finalizing output file: %w", err)}
	}
	committed = true
	log.Debug().Str("op", "http/simple-downloader").Int64("bytes", written).Msgf("saved %s", target)
	return written, nil
}

// resolveDestination follows symlinks and makes sure an existing destination
// could be opened for writing, since the final rename only needs write access
// to the directory. It returns the mode the part file should carry.
func resolveDestination(outputPath string) (string, os.FileMode, bool, error) {
	target := outputPath
	if info, err := os.Lstat(outputPath); err == nil && info.Mode()&os.ModeSymlink != 0 {
		resolved, err := filepath.EvalSymlinks(outputPath)
		if err != nil {
			return "", 0, false, err
		}
		target = resolved
	}
	info, err := os.Stat(target)
	if errors.Is(err, os.ErrNotExist) {
		return target, 0644, false, nil
	}
	if err != nil {
		return "", 0, false, err
	}
	if !info.Mode().IsRegular() {
		return "", 0, false, fmt.Errorf("destination is not a regular file")
	}
	f, err := os.OpenFile(target, os.O_WRONLY, 0)
	if err != nil {
		return "", 0, false, err
	}
	f.Close()
	return target, info.Mode().Perm(), true, nil
}

func copyChunks(dst io.Writer, src io.Reader, chunkSize int, progress func(n int64), outputPath string) (int64, error) {
	buffer := make([]byte, chunkSize)
	var total int64
	empty := 0
	for {
		bytesRead, readErr := src.Read(buffer)
		if bytesRead > 0 {
			empty = 0
			if _, writeErr := dst.Write(buffer[:bytesRead]); writeErr != nil {
				return total, &utils.FileIOError{Path: outputPath, Err: writeErr}
			}
			total += int64(bytesRead)
			if progress != nil {
				progress(int64(bytesRead))
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return total, nil
			}
			return total, &utils.TransportError{Op: "error reading response body", Err: readErr}
		}
		if bytesRead == 0 {
			empty++
			if empty >= maxConsecutiveEmptyReads {
				return total, &utils.TransportError{Op: "error reading response body", Err: io.ErrNoProgress}
			}
		}
	}
}
