//go:build linux

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// resetTerminalMode re-enables cooked mode on the controlling tty
// Best-effort for crash recovery; errors ignored
func resetTerminalMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return
	}
	termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Iflag |= unix.ICRNL
	unix.IoctlSetTermios(fd, unix.TCSETS, termios)
}
