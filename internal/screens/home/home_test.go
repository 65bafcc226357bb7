package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/screens/pathway"
	"github.com/abhisek/triage/internal/screens/symptoms"
)

func selectItem(t *testing.T, h *HomeScreen, downs int) tea.Msg {
	t.Helper()
	for i := 0; i < downs; i++ {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	return cmd()
}

func TestHome_OpensAcutePathway(t *testing.T) {
	h := New(catalog.Builtin())
	msg := selectItem(t, h, 0)

	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if _, ok := push.Screen.(*pathway.PathwayScreen); !ok {
		t.Fatalf("expected pathway screen, got %T", push.Screen)
	}
	if push.Screen.Title() != "Fig. 1 – Acute insomnia" {
		t.Errorf("title = %q", push.Screen.Title())
	}
}

func TestHome_OpensChronicPathway(t *testing.T) {
	h := New(catalog.Builtin())
	msg := selectItem(t, h, 1)

	push := msg.(router.PushScreenMsg)
	if push.Screen.Title() != "Fig. 2 – Chronic insomnia" {
		t.Errorf("title = %q", push.Screen.Title())
	}
}

func TestHome_OpensSymptomChecker(t *testing.T) {
	h := New(catalog.Builtin())
	msg := selectItem(t, h, 2)

	push := msg.(router.PushScreenMsg)
	if _, ok := push.Screen.(*symptoms.SymptomsScreen); !ok {
		t.Fatalf("expected symptoms screen, got %T", push.Screen)
	}
}

func TestHome_SymptomCheckerDisabledWithoutCatalog(t *testing.T) {
	h := New(nil)
	// The disabled entry is skipped, so two downs land on Exit.
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if h.menu.Selected != 3 {
		t.Errorf("selected = %d, want 3", h.menu.Selected)
	}
}

func TestHome_View(t *testing.T) {
	h := New(catalog.Builtin())
	view := h.View(80, 24)
	for _, want := range []string{"Acute insomnia", "Chronic insomnia", "Symptom checker", "Exit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
