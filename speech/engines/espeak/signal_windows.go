//go:build windows

package espeak

import (
	"os"

	"github.com/pathshala/vaani/speech"
)

// Windows has no stop/continue signals; the keep-alive workaround is
// simply unavailable there.

func pauseProcess(*os.Process) error {
	return speech.ErrNotSupported
}

func resumeProcess(*os.Process) error {
	return speech.ErrNotSupported
}
