package scanner

import (
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/azizk/campulse/internal/router"
	"github.com/azizk/campulse/internal/screens/form"
	"github.com/azizk/campulse/internal/survey"
)

type fakeSource struct {
	paths  []string
	err    error
	closed bool
}

func (f *fakeSource) Next() (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if len(f.paths) == 0 {
		return "", nil
	}
	p := f.paths[0]
	f.paths = f.paths[1:]
	return p, nil
}

func (f *fakeSource) Close() error {
	f.closed = true
	return nil
}

type fakeDecoder struct {
	payloads map[string]string
}

func (f *fakeDecoder) DecodeFile(path string) (string, error) {
	if p, ok := f.payloads[path]; ok {
		return p, nil
	}
	return "", errors.New("unreadable")
}

func newTestScanner(src *fakeSource, payloads map[string]string) *ScannerScreen {
	s := New(src, []string{"Réseaux", "Algorithmique"}, form.Deps{})
	s.decoder = &fakeDecoder{payloads: payloads}
	return s
}

func tick() tea.Msg { return pollMsg(time.Now()) }

func TestScanner_MatchOpensForm(t *testing.T) {
	src := &fakeSource{paths: []string{"/cap/a.png"}}
	s := newTestScanner(src, map[string]string{"/cap/a.png": "CAMPULSE:Réseaux"})

	_, cmd := s.Update(tick())
	if cmd == nil {
		t.Fatal("matching capture should produce a command")
	}
	nav, ok := cmd().(router.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", cmd())
	}
	if nav.Event != survey.EventSubjectChosen {
		t.Errorf("expected EventSubjectChosen, got %v", nav.Event)
	}
	if nav.Screen.Title() != "Réseaux" {
		t.Errorf("form title = %q", nav.Screen.Title())
	}
}

func TestScanner_UnreadableCaptureKeepsPolling(t *testing.T) {
	src := &fakeSource{paths: []string{"/cap/bad.png"}}
	s := newTestScanner(src, nil)

	_, cmd := s.Update(tick())
	if cmd == nil {
		t.Fatal("scanner should keep polling after a bad capture")
	}
	if s.lastErr == "" {
		t.Error("unreadable capture should surface an inline error")
	}
}

func TestScanner_UnknownSubjectKeepsPolling(t *testing.T) {
	src := &fakeSource{paths: []string{"/cap/x.png"}}
	s := newTestScanner(src, map[string]string{"/cap/x.png": "Chimie"})

	_, cmd := s.Update(tick())
	if cmd == nil {
		t.Fatal("scanner should keep polling after an unknown badge")
	}
	if s.lastErr == "" {
		t.Error("unknown badge should surface an inline error")
	}
}

func TestScanner_EmptyDirKeepsPolling(t *testing.T) {
	src := &fakeSource{}
	s := newTestScanner(src, nil)

	_, cmd := s.Update(tick())
	if cmd == nil {
		t.Fatal("scanner should keep polling an empty capture dir")
	}
	if s.lastErr != "" {
		t.Errorf("no error expected, got %q", s.lastErr)
	}
}

func TestScanner_CloseReleasesSource(t *testing.T) {
	src := &fakeSource{}
	s := newTestScanner(src, nil)

	s.Close()
	if !src.closed {
		t.Fatal("Close should release the capture source")
	}

	_, cmd := s.Update(tick())
	if cmd != nil {
		t.Error("closed scanner must stop polling")
	}
}
