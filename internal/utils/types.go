package utils

import "io"

type Downloader interface {
	ValidateJob(job *GetrJob) error
	BuildJob(job *GetrJob) error
	Download(job *GetrJob) error
}

type Verbosity int

const (
	Verbose Verbosity = iota
	Quiet
)

func (v Verbosity) String() string {
	if v == Quiet {
		return "quiet"
	}
	return "verbose"
}

// ResponseMeta holds what the dispatcher learned from the response headers.
// ContentLength is -1 when the header is missing or unparseable.
type ResponseMeta struct {
	StatusCode    int
	Status        string
	ContentLength int64
	ContentType   string
}

func (m ResponseMeta) LengthKnown() bool {
	return m.ContentLength >= 0
}

type GetrJob struct {
	ID               string
	JobType          string
	URL              string
	OutputPath       string
	Verbosity        Verbosity
	ChunkSize        int
	Response         ResponseMeta
	Body             io.ReadCloser
	ProgressFunc     func(downloaded, total int64)
	StreamFunc       func(line string)
	HTTPClientConfig HTTPClientConfig
}

func (j *GetrJob) Quiet() bool {
	return j.Verbosity == Quiet
}

// Stream forwards an informational line unless the job is quiet.
func (j *GetrJob) Stream(line string) {
	if j.Quiet() || j.StreamFunc == nil {
		return
	}
	j.StreamFunc(line)
}
