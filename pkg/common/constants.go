package common

const (
	// Source names accepted by the CLI and the config file.
	SourceSample = "sample"
	SourceFile   = "file"
	SourceFeed   = "feed"

	DefaultAPIBasePath = "/api/v1"

	// Status values reported for each article in a batch.
	StatusSuccess   = "SUCCESS"
	StatusFailed    = "FAILED"
	StatusCancelled = "CANCELLED"
)
