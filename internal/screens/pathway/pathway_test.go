package pathway

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/triage/internal/checklist"
	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/screens/summary"
)

func press(s *PathwayScreen, code rune) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: code})
	return cmd
}

func typeText(s *PathwayScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func newFixed(p *checklist.Pathway) *PathwayScreen {
	s := New(p)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 15, 0, time.UTC) }
	return s
}

func finish(t *testing.T, cmd tea.Cmd) *summary.SummaryScreen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command when the last question is answered")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	res, ok := msg.Screen.(*summary.SummaryScreen)
	if !ok {
		t.Fatalf("expected summary screen, got %T", msg.Screen)
	}
	return res
}

func TestAcute_AllYesCriteriaMet(t *testing.T) {
	s := newFixed(checklist.Acute())

	// Node A: three yes answers.
	for i := 0; i < 3; i++ {
		press(s, 'y')
		press(s, tea.KeyEnter)
	}
	if s.question().ID != "redflags" {
		t.Fatalf("current question = %q, want redflags", s.question().ID)
	}

	// Red flags: none. Other sleep disorders: first option.
	press(s, tea.KeyEnter)
	press(s, tea.KeySpace)
	press(s, tea.KeyEnter)

	// Hygiene: none; this finishes the pathway.
	res := finish(t, press(s, tea.KeyEnter))

	a := s.Answers()
	for _, id := range []string{"duration-under-3m", "frequency-3-nights", "daytime-impairment", "other-apnea"} {
		if !a.Observed.Has(id) {
			t.Errorf("answers missing %q", id)
		}
	}
	view := res.View(100, 200)
	if !strings.Contains(view, "criteria met") {
		t.Errorf("result should report criteria met:\n%s", view)
	}
	if !strings.Contains(view, "2024-05-01T09:30:15") {
		t.Error("result should carry the evaluation timestamp")
	}
}

func TestYesNoDefaultsToNo(t *testing.T) {
	s := newFixed(checklist.Acute())
	press(s, tea.KeyEnter)
	if s.Answers().Observed.Has("duration-under-3m") {
		t.Error("an untouched yes/no question should be answered no")
	}
}

func TestBackRestoresPreviousAnswer(t *testing.T) {
	s := newFixed(checklist.Acute())
	if s.HandlesBack() {
		t.Error("first question should not handle back")
	}

	press(s, 'y')
	press(s, tea.KeyEnter)
	if !s.HandlesBack() {
		t.Fatal("second question should handle back")
	}

	press(s, tea.KeyEscape)
	if s.question().ID != "duration-under-3m" {
		t.Fatalf("current question = %q, want duration-under-3m", s.question().ID)
	}
	if !s.yesno.Value {
		t.Error("going back should restore the yes answer")
	}

	press(s, 'n')
	press(s, tea.KeyEnter)
	if s.Answers().Observed.Has("duration-under-3m") {
		t.Error("changed answer should replace the earlier one")
	}
}

func TestChronic_SkipsISIWhenUnavailable(t *testing.T) {
	s := newFixed(checklist.Chronic())

	for i := 0; i < 3; i++ {
		press(s, tea.KeyEnter)
	}
	if s.question().ID != "isi-available" {
		t.Fatalf("current question = %q, want isi-available", s.question().ID)
	}
	press(s, tea.KeyEnter)
	if s.question().ID == "isi" {
		t.Fatal("ISI score should be skipped when not available")
	}
}

func TestChronic_ISIValidation(t *testing.T) {
	s := newFixed(checklist.Chronic())
	for i := 0; i < 3; i++ {
		press(s, tea.KeyEnter)
	}
	press(s, 'y')
	press(s, tea.KeyEnter)
	if s.question().ID != "isi" {
		t.Fatalf("current question = %q, want isi", s.question().ID)
	}

	// Empty input is rejected.
	press(s, tea.KeyEnter)
	if s.question().ID != "isi" {
		t.Fatal("empty ISI should not advance")
	}

	typeText(s, "29")
	press(s, tea.KeyEnter)
	if s.question().ID != "isi" {
		t.Fatal("out-of-range ISI should not advance")
	}

	s.number.SetValue(17)
	press(s, tea.KeyEnter)
	if v, ok := s.Answers().Value("isi"); !ok || v != 17 {
		t.Errorf("isi = %d, %v; want 17, true", v, ok)
	}
}

func TestChronic_FullRunEchoesISI(t *testing.T) {
	s := newFixed(checklist.Chronic())

	var cmd tea.Cmd
	for i := 0; i < 40 && !s.done; i++ {
		switch s.question().Kind {
		case checklist.KindYesNo:
			press(s, 'y')
		case checklist.KindNumber:
			typeText(s, "12")
		}
		cmd = press(s, tea.KeyEnter)
	}

	res := finish(t, cmd)
	view := res.View(120, 400)
	if !strings.Contains(view, "ISI documented (score: 12)") {
		t.Errorf("result should echo the ISI score:\n%s", view)
	}
}

func TestDoneIgnoresInput(t *testing.T) {
	s := newFixed(checklist.Acute())
	var cmd tea.Cmd
	for i := 0; i < 20 && !s.done; i++ {
		cmd = press(s, tea.KeyEnter)
	}
	if !s.done || cmd == nil {
		t.Fatal("pathway should finish")
	}
	if press(s, tea.KeyEnter) != nil {
		t.Error("input after finishing should be ignored")
	}
}

func TestViewShowsNodeAndHelp(t *testing.T) {
	s := newFixed(checklist.Acute())
	view := s.View(100, 30)
	for _, want := range []string{"Question 1 of", "Node A", "Sleep complaints for less than 3 months"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestKeyHints(t *testing.T) {
	s := newFixed(checklist.Acute())
	hints := s.KeyHints()
	if hints[len(hints)-1].Description != "Cancel" {
		t.Errorf("first question Esc should cancel, got %q", hints[len(hints)-1].Description)
	}
	press(s, tea.KeyEnter)
	hints = s.KeyHints()
	if hints[len(hints)-1].Description != "Previous" {
		t.Errorf("later questions Esc should go back, got %q", hints[len(hints)-1].Description)
	}
}
