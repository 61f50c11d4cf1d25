package async

import "context"

// Worker is a long running background loop. Run blocks until ctx is done and
// calls the given func on exit.
type Worker interface {
	Run(context.Context, func())
	Shutdown()
}
