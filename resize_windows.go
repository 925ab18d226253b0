//go:build windows || plan9

package typewriter

import (
	"os"
)

// notifyResize is a no-op where the terminal sends no resize signal.
func notifyResize(sigChan chan os.Signal) {
}
