// Package utils contains small helpers shared by the CLI entrypoint.
package utils

import (
	"io"
	"sync"
)

// DeferredWriter buffers writes until Flush is called. It is used to hold log
// output while the TUI owns the terminal.
type DeferredWriter struct {
	mu     sync.Mutex
	chunks [][]byte
}

// Write stores a copy of p.
func (w *DeferredWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	chunk := make([]byte, len(p))
	copy(chunk, p)
	w.chunks = append(w.chunks, chunk)
	return len(p), nil
}

// Flush writes buffered chunks to dst in order, one Write per chunk, and
// clears the buffer. Chunks are written individually so writers that expect
// one record per call, such as zerolog.ConsoleWriter, reformat each entry.
func (w *DeferredWriter) Flush(dst io.Writer) error {
	w.mu.Lock()
	chunks := w.chunks
	w.chunks = nil
	w.mu.Unlock()

	for _, chunk := range chunks {
		if _, err := dst.Write(chunk); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of buffered chunks.
func (w *DeferredWriter) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.chunks)
}
