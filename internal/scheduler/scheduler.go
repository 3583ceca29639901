package scheduler

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	getrhttp "github.com/tanq16/getr/internal/downloaders/http"
	"github.com/tanq16/getr/internal/output"
	"github.com/tanq16/getr/internal/utils"
)

type Options struct {
	DefaultFilename string
	Stdout          io.Writer
	Stderr          io.Writer
}

func newRegistry(opts Options) map[string]utils.Downloader {
	return map[string]utils.Downloader{
		"http": &getrhttp.HTTPDownloader{DefaultFilename: opts.DefaultFilename},
	}
}

// Run takes one job through validation, the request and the download, and
// reports every step through the output manager. The returned error carries
// the kind that decides the exit code.
func Run(job utils.GetrJob, opts Options) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.JobType == "" {
		job.JobType = "http"
	}
	outputMgr := output.NewManager(job.Verbosity)
	outputMgr.Stdout = opts.Stdout
	outputMgr.Stderr = opts.Stderr
	job.StreamFunc = outputMgr.StreamLine
	logger := utils.JobLogger("scheduler", &job)

	downloader, exists := newRegistry(opts)[job.JobType]
	if !exists {
		err := fmt.Errorf("unknown job type: %s", job.JobType)
		outputMgr.ReportError("invalid job", err)
		return err
	}

	logger.Debug().Str("url", job.URL).Str("verbosity", job.Verbosity.String()).Msg("validating job")
	if err := downloader.ValidateJob(&job); err != nil {
		outputMgr.ReportError("invalid url or parsing error", err)
		return err
	}

	logger.Debug().Msg("building job")
	if err := downloader.BuildJob(&job); err != nil {
		outputMgr.ReportError("request failed", err)
		return err
	}

	progress := output.NewProgress(opts.Stderr, job.Verbosity, job.OutputPath, job.Response.ContentLength)
	job.ProgressFunc = progress.Update
	logger.Debug().Str("output", job.OutputPath).Msg("downloading")
	if err := downloader.Download(&job); err != nil {
		progress.Abandon()
		var fileErr *utils.FileIOError
		if errors.As(err, &fileErr) {
			outputMgr.ReportError("failed to write to file", err)
		} else {
			outputMgr.ReportError("download failed", err)
		}
		return err
	}
	progress.Finish()
	outputMgr.Complete("file saved successfully")
	logger.Debug().Int64("bytes", progress.Current()).Int64("expected", progress.Total()).Bool("finished", progress.Finished()).Msg("job complete")
	return nil
}
