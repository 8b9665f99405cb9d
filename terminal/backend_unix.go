//go:build unix

package terminal

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Init when stdin is not a tty
var ErrNotTerminal = errors.New("stdin is not a terminal")

// readPollMs bounds each blocking read so the stop channel is observed
const readPollMs = 100

type unixBackend struct {
	in      *os.File
	out     *os.File
	inFd    int
	outFd   int
	oldTerm *term.State

	resizeStopCh chan struct{}
	resizeDoneCh chan struct{}
}

func newBackend() Backend {
	return &unixBackend{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
}

func (b *unixBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return ErrNotTerminal
	}

	old, err := term.MakeRaw(b.inFd)
	if err != nil {
		return err
	}
	b.oldTerm = old
	return nil
}

func (b *unixBackend) Fini() {
	if b.resizeStopCh != nil {
		close(b.resizeStopCh)
		<-b.resizeDoneCh
		b.resizeStopCh = nil
	}
	if b.oldTerm != nil {
		term.Restore(b.inFd, b.oldTerm)
		b.oldTerm = nil
	}
}

func (b *unixBackend) Size() (int, int) {
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24 // Fallback
	}
	return int(ws.Col), int(ws.Row)
}

func (b *unixBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}

func (b *unixBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	select {
	case <-stopCh:
		return nil, nil
	default:
	}

	fds := []unix.PollFd{{Fd: int32(b.inFd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, readPollMs)
	if err != nil {
		if err == unix.EINTR {
			return nil, nil
		}
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	buf := make([]byte, 256)
	rn, err := unix.Read(b.inFd, buf)
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return nil, nil
		}
		return nil, err
	}
	if rn == 0 {
		return nil, errors.New("stdin closed")
	}
	return buf[:rn], nil
}

func (b *unixBackend) SetResizeHandler(handler func(width, height int)) {
	b.resizeStopCh = make(chan struct{})
	b.resizeDoneCh = make(chan struct{})

	go func() {
		defer close(b.resizeDoneCh)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGWINCH)
		defer signal.Stop(sigCh)

		for {
			select {
			case <-b.resizeStopCh:
				return
			case <-sigCh:
				handler(b.Size())
			}
		}
	}()
}
