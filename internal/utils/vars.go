package utils

const (
	DefaultFilename   = "index.html"
	FallbackChunkSize = 1024
	ChunkDivisor      = 99
	MaxChunkSize      = 64 << 10
	PartSuffix        = ".part"
)

var ToolUserAgent = "getr/dev"
