package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMonitorStageProgress(t *testing.T) {
	var model tea.Model = NewMonitor()
	model, _ = model.Update(StageMsg{Step: 2, Total: 5, Name: "install into staging root"})

	view := model.View()
	if !strings.Contains(view, "2/5 install into staging root") {
		t.Fatalf("expected stage progress in view:\n%s", view)
	}
	if !strings.Contains(view, "wheelstage") {
		t.Fatalf("expected title in view:\n%s", view)
	}
}

func TestMonitorLogTailAndTruncation(t *testing.T) {
	var model tea.Model = NewMonitor()
	model, _ = model.Update(tea.WindowSizeMsg{Width: 40, Height: 24})
	for i := 0; i < 12; i++ {
		model, _ = model.Update(LogMsg(fmt.Sprintf("line %d", i)))
	}
	model, _ = model.Update(LogMsg(strings.Repeat("x", 200)))

	view := model.View()
	if strings.Contains(view, "line 0") {
		t.Fatalf("old log lines must scroll out of view:\n%s", view)
	}
	if !strings.Contains(view, "line 11") {
		t.Fatalf("recent log lines must be visible:\n%s", view)
	}
	if !strings.Contains(view, "...") {
		t.Fatalf("long lines must be truncated to the window width:\n%s", view)
	}
}

func TestMonitorLogRingLimit(t *testing.T) {
	var model tea.Model = NewMonitor()
	for i := 0; i < maxLogLines+10; i++ {
		model, _ = model.Update(LogMsg("x"))
	}
	if got := len(model.(Monitor).logs); got != maxLogLines {
		t.Fatalf("expected %d retained log lines, got %d", maxLogLines, got)
	}
}

func TestMonitorDoneQuitsAndBlanksView(t *testing.T) {
	wantErr := errors.New("stage failed")
	var model tea.Model = NewMonitor()
	model, cmd := model.Update(DoneMsg{Err: wantErr})
	if cmd == nil {
		t.Fatal("expected quit command on DoneMsg")
	}
	if model.View() != "" {
		t.Fatalf("done monitor must render nothing, got %q", model.View())
	}
	if !errors.Is(model.(Monitor).err, wantErr) {
		t.Fatalf("expected stored error, got %v", model.(Monitor).err)
	}
}

func TestLogWriterDeliversCompleteLines(t *testing.T) {
	var got []string
	w := NewLogWriter(func(msg tea.Msg) {
		got = append(got, string(msg.(LogMsg)))
	})

	if _, err := w.Write([]byte("first line\nsecond ")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := w.Write([]byte("half\r\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if len(got) != 2 || got[0] != "first line" || got[1] != "second half" {
		t.Fatalf("unexpected lines: %v", got)
	}

	// A trailing fragment only surfaces on Flush.
	if _, err := w.Write([]byte("tail")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("partial line must stay buffered, got %v", got)
	}
	w.Flush()
	if len(got) != 3 || got[2] != "tail" {
		t.Fatalf("expected flushed tail, got %v", got)
	}
	w.Flush()
	if len(got) != 3 {
		t.Fatalf("empty flush must emit nothing, got %v", got)
	}
}

func TestMonitorCtrlCQuits(t *testing.T) {
	var model tea.Model = NewMonitor()
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command on ctrl+c")
	}
}
