package terminal

import (
	"bytes"
	"sync"
	"time"
)

// fakeBackend records output and serves scripted input
type fakeBackend struct {
	mu       sync.Mutex
	out      bytes.Buffer
	width    int
	height   int
	writeErr error
	reads    chan []byte
	inited   bool
	finied   bool
}

func newFakeBackend(w, h int) *fakeBackend {
	return &fakeBackend{width: w, height: h, reads: make(chan []byte, 16)}
}

func (b *fakeBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.inited = true
	return nil
}

func (b *fakeBackend) Fini() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.finied = true
}

func (b *fakeBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *fakeBackend) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.writeErr != nil {
		return 0, b.writeErr
	}
	return b.out.Write(p)
}

func (b *fakeBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	select {
	case <-stopCh:
		return nil, nil
	case data := <-b.reads:
		return data, nil
	case <-time.After(5 * time.Millisecond):
		return nil, nil
	}
}

func (b *fakeBackend) SetResizeHandler(func(width, height int)) {}

func (b *fakeBackend) output() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.out.String()
}

func (b *fakeBackend) reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.out.Reset()
}

func (b *fakeBackend) failWrites(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writeErr = err
}
