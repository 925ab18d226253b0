//go:build !windows && !plan9

package typewriter

import (
	"os"
	"os/signal"
	"syscall"
)

// notifyResize delivers terminal resize signals to sigChan.
func notifyResize(sigChan chan os.Signal) {
	signal.Notify(sigChan, syscall.SIGWINCH)
}
