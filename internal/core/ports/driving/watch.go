package driving

import "context"

// WatchService reprocesses documents as they appear in a directory.
type WatchService interface {
	// Watch blocks until ctx is cancelled, writing an outline to outputDir
	// for every supported file created or modified in inputDir.
	Watch(ctx context.Context, inputDir, outputDir string) error
}
