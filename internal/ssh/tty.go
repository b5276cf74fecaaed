package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty adapts one SSH channel to tcell.Tty so each connected client drives
// its own tcell.Screen.
type Tty struct {
	conn  io.ReadWriteCloser
	winCh <-chan gossh.Window

	mu     sync.Mutex
	window gossh.Window
	resize func()
	watch  sync.Once
}

// NewTty wraps conn. win is the size requested with the PTY; winCh delivers
// later window-change requests.
func NewTty(conn io.ReadWriteCloser, win gossh.Window, winCh <-chan gossh.Window) *Tty {
	return &Tty{conn: conn, window: win, winCh: winCh}
}

func (t *Tty) Read(b []byte) (int, error)  { return t.conn.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.conn.Write(b) }
func (t *Tty) Close() error                { return t.conn.Close() }

// The channel is opened and flushed by the SSH server, not by tcell.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize returns the last size the client reported.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize sets the callback run after every window change. The
// window-change channel is drained by a single goroutine that lives until
// the client disconnects.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.resize = cb
	t.mu.Unlock()

	t.watch.Do(func() {
		go func() {
			for win := range t.winCh {
				t.mu.Lock()
				t.window = win
				cb := t.resize
				t.mu.Unlock()
				if cb != nil {
					cb()
				}
			}
		}()
	})
}
