// Package clipboard copies text to the system clipboard, falling back to an
// OSC52 escape sequence when no native clipboard tool is available (for
// example over SSH).
package clipboard

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/andareed/siftly-slideshow/logging"
	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Method names how text reached the clipboard.
type Method string

const (
	MethodNative Method = "native"
	MethodOSC52  Method = "osc52"
)

var (
	writeNative = clipboard.WriteAll
	nativeOK    = func() bool { return !clipboard.Unsupported }
	osc52Out    = io.Writer(os.Stderr)
	osc52OK     = osc52Supported
)

// Copy places text on the clipboard.
func Copy(text string) (Method, error) {
	if nativeOK() {
		err := writeNative(text)
		if err == nil {
			logging.Infof("Clipboard: copied via native clipboard")
			return MethodNative, nil
		}
		logging.Warnf("Clipboard: native copy failed: %v", err)
	}
	if err := copyOSC52(text); err != nil {
		return "", err
	}
	return MethodOSC52, nil
}

func copyOSC52(text string) error {
	if !osc52OK() {
		logging.Warnf("Clipboard: OSC52 unavailable (stderr not TTY or TERM=dumb)")
		return errors.New("clipboard unavailable (no clipboard tool and OSC52 unsupported by terminal)")
	}

	seq := osc52.New(text)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(osc52Out); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

func osc52Supported() bool {
	if term := os.Getenv("TERM"); term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	return isTTY(os.Stderr)
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
