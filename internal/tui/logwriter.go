package tui

import (
	"bytes"

	tea "github.com/charmbracelet/bubbletea"
)

// LogWriter adapts a byte stream to LogMsg events, one per line. The
// pipeline's external tool stderr is pointed here during a monitored run so
// tool output lands in the monitor's log tail instead of writing over the
// rendered frame.
type LogWriter struct {
	send func(tea.Msg)
	buf  []byte
}

// NewLogWriter returns a writer that delivers complete lines through send,
// typically a tea.Program's Send method.
func NewLogWriter(send func(tea.Msg)) *LogWriter {
	return &LogWriter{send: send}
}

func (w *LogWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		idx := bytes.IndexByte(w.buf, '\n')
		if idx < 0 {
			break
		}
		line := bytes.TrimRight(w.buf[:idx], "\r")
		w.send(LogMsg(line))
		w.buf = w.buf[idx+1:]
	}
	return len(p), nil
}

// Flush emits any buffered partial line. Callers flush once the pipeline
// returns, before the final DoneMsg.
func (w *LogWriter) Flush() {
	if len(w.buf) > 0 {
		w.send(LogMsg(w.buf))
		w.buf = nil
	}
}
