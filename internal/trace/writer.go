package trace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// FileWriter appends events as zstd-compressed JSON lines. Record never
// fails loudly: the first write error is kept and returned by Close.
type FileWriter struct {
	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
	err error
}

// Create opens (truncating) a trace file at path.
func Create(path string) (*FileWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("trace dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("trace file: %w", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("trace encoder: %w", err)
	}
	return &FileWriter{f: f, enc: enc, w: bufio.NewWriter(enc)}, nil
}

func (fw *FileWriter) Record(e Event) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.err != nil || fw.w == nil {
		return
	}
	b, err := json.Marshal(e)
	if err != nil {
		fw.err = err
		return
	}
	if _, err := fw.w.Write(b); err != nil {
		fw.err = err
		return
	}
	if err := fw.w.WriteByte('\n'); err != nil {
		fw.err = err
	}
}

// Close flushes the trace and releases the file.
func (fw *FileWriter) Close() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.w == nil {
		return fw.err
	}
	if err := fw.w.Flush(); err != nil && fw.err == nil {
		fw.err = err
	}
	if err := fw.enc.Close(); err != nil && fw.err == nil {
		fw.err = err
	}
	if err := fw.f.Close(); err != nil && fw.err == nil {
		fw.err = err
	}
	fw.w, fw.enc, fw.f = nil, nil, nil
	return fw.err
}

// Read decodes every event from a trace stream produced by FileWriter.
func Read(r io.Reader) ([]Event, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("trace decoder: %w", err)
	}
	defer dec.Close()

	var events []Event
	sc := bufio.NewScanner(dec)
	for sc.Scan() {
		var e Event
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			return events, fmt.Errorf("trace line %d: %w", len(events)+1, err)
		}
		events = append(events, e)
	}
	return events, sc.Err()
}
