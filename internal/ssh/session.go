package ssh

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPTY is returned for sessions opened without a pseudo-terminal.
var ErrNoPTY = errors.New("session has no pty")

// DefaultTerm is used when the client sends no TERM or one we do not trust.
const DefaultTerm = "xterm-256color"

// maxNameBytes bounds player names taken from the SSH user.
const maxNameBytes = 16

// allowedTerms are the terminal types looked up in the local terminfo
// database. Anything else falls back to DefaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// termMu serializes TERM changes around terminfo lookup, which reads the
// process environment.
var termMu sync.Mutex

// TermFrom picks the terminal type from a session environment.
func TermFrom(environ []string) string {
	for _, env := range environ {
		if term, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[term] {
			return term
		}
	}
	return DefaultTerm
}

// SanitizeName strips control characters and truncates to maxNameBytes
// without splitting a rune.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		if b.Len()+len(string(r)) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NewScreen builds an initialized tcell screen that draws into s.
func NewScreen(s gossh.Session) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	tty := NewTty(s, pty.Window, winCh)

	screen, err := withTerm(TermFrom(s.Environ()), func() (tcell.Screen, error) {
		return tcell.NewTerminfoScreenFromTty(tty)
	})
	if err != nil {
		return nil, fmt.Errorf("terminal setup: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return screen, nil
}

// withTerm runs open with TERM set to term. open is not called when TERM
// cannot be set.
func withTerm(term string, open func() (tcell.Screen, error)) (tcell.Screen, error) {
	termMu.Lock()
	defer termMu.Unlock()
	if err := os.Setenv("TERM", term); err != nil {
		return nil, fmt.Errorf("set TERM: %w", err)
	}
	return open()
}
