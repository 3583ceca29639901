package getrhttp

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/dustin/go-humanize"
	"github.com/tanq16/getr/internal/utils"
)

type HTTPDownloader struct {
	// DefaultFilename replaces an empty final URL segment.
	DefaultFilename string
}

func (d *HTTPDownloader) ValidateJob(job *utils.GetrJob) error {
	parsedURL, err := url.Parse(job.URL)
	if err != nil {
		return &utils.URLParseError{URL: job.URL, Err: err}
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &utils.URLParseError{URL: job.URL, Err: fmt.Errorf("unsupported scheme %q", parsedURL.Scheme)}
	}
	if parsedURL.Host == "" {
		return &utils.URLParseError{URL: job.URL, Err: fmt.Errorf("missing host")}
	}
	return nil
}

// BuildJob sends the GET request and fills in everything Download needs. The
// response body stays open on the job; it is closed here only on failure.
func (d *HTTPDownloader) BuildJob(job *utils.GetrJob) error {
	logger := utils.JobLogger("http/initial", job)
	client := utils.NewGetrHTTPClient(job.HTTPClientConfig)

	req, err := http.NewRequest(http.MethodGet, job.URL, nil)
	if err != nil {
		return &utils.URLParseError{URL: job.URL, Err: err}
	}
	resp, err := client.Do(req)
	if err != nil {
		return &utils.TransportError{Op: "error executing GET request", Err: err}
	}
	job.Stream(fmt.Sprintf("HTTP request sent... %s", resp.Status))
	logger.Debug().Int("status", resp.StatusCode).Msg("response received")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return &utils.HTTPStatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	job.Response = responseMeta(resp)
	job.Body = resp.Body
	if job.Response.LengthKnown() {
		job.Stream(fmt.Sprintf("content-length: %d (%s)", job.Response.ContentLength, humanize.IBytes(uint64(job.Response.ContentLength))))
	} else {
		job.Stream("content-length missing")
	}
	if job.Response.ContentType != "" {
		job.Stream(fmt.Sprintf("content-type: %s", job.Response.ContentType))
	} else {
		job.Stream("content-type missing")
	}

	if job.OutputPath == "" {
		job.OutputPath = utils.FilenameFromURL(job.URL, d.DefaultFilename)
	}
	job.ChunkSize = utils.ChunkSize(job.Response.ContentLength)
	job.Stream(fmt.Sprintf("saving to: %s", job.OutputPath))
	logger.Debug().Str("output", job.OutputPath).Int("chunk", job.ChunkSize).Msg("job built")
	return nil
}

func (d *HTTPDownloader) Download(job *utils.GetrJob) error {
	if job.Body == nil {
		return fmt.Errorf("job has no response body, build it first")
	}
	defer job.Body.Close()
	logger := utils.JobLogger("http/initial", job)

	total := job.Response.ContentLength
	progress := func(n int64) {}
	var downloaded int64
	if job.ProgressFunc != nil {
		progress = func(n int64) {
			downloaded += n
			job.ProgressFunc(downloaded, total)
		}
	}
	written, err := PerformSimpleDownload(job.Body, job.OutputPath, job.ChunkSize, progress)
	if err != nil {
		return err
	}
	if job.Response.LengthKnown() && written != total {
		logger.Debug().Int64("expected", total).Int64("received", written).Msg("body length differs from content-length")
	}
	return nil
}

// responseMeta relies on the transport's parsing of Content-Length, which
// already yields -1 for a missing header or a transparently decoded body.
func responseMeta(resp *http.Response) utils.ResponseMeta {
	meta := utils.ResponseMeta{
		StatusCode:    resp.StatusCode,
		Status:        resp.Status,
		ContentLength: -1,
		ContentType:   resp.Header.Get("Content-Type"),
	}
	if resp.ContentLength >= 0 {
		meta.ContentLength = resp.ContentLength
	}
	return meta
}
