package terminal

// Backend abstracts platform terminal I/O beneath the Terminal
type Backend interface {
	// Init enters raw mode
	Init() error
	// Fini restores the mode saved by Init
	Fini()

	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read blocks until input is available or the stop channel is closed
	// A nil slice with nil error means no input arrived within the poll interval
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback for terminal resize events
	SetResizeHandler(handler func(width, height int))
}
