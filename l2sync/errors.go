package l2sync

import "errors"

// Sentinel errors per spec.md §7's error taxonomy. Transient errors (fetch
// errors clients/feeder.Client itself didn't already retry away, class
// resolution/download errors, and SCE verification errors) are handled by
// retrying the whole BSFC iteration after a flat sleep; sink-send,
// consensus-seal and missing-parent errors are fatal to the sync loop and
// propagate to the caller.
var (
	// ErrClassDownloadAborted wraps the first error returned by a
	// Class Downloader worker when the fail-fast download group is
	// cancelled, per spec.md §4.3.
	ErrClassDownloadAborted = errors.New("l2sync: class download aborted")

	// ErrSinkClosed wraps any error returned by the class sink's send, so
	// Run can tell that fatal failure apart from a retryable class
	// resolution/download failure.
	ErrSinkClosed = errors.New("l2sync: sink send cancelled")

	// ErrConsensusSeal is returned when the consensus "seal new block"
	// round-trip fails; spec.md §4.4 treats this as fatal to the loop.
	ErrConsensusSeal = errors.New("l2sync: consensus seal failed")

	// ErrMissingParent is returned by Coordinator.Run when asked to start
	// above height 1 with no verified tip recorded in the observation
	// store.
	ErrMissingParent = errors.New("l2sync: no verified parent and not at genesis")
)
