package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wordfa/automaton"
	"github.com/npillmayer/wordfa/description"
)

func newTestIntp(t *testing.T, demo string) (*Intp, *bytes.Buffer) {
	a, err := loadAutomaton("", demo)
	if err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	intp := &Intp{
		out:      out,
		reversed: make(map[string]*automaton.ReverseAutomaton),
	}
	intp.use(a)
	return intp, out
}

func TestEvalMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordfa.cli")
	defer teardown()
	//
	intp, out := newTestIntp(t, "dates")
	for _, line := range []string{"  15.06.2006  ", "31.02.2006", ""} {
		if quit, err := intp.Eval(line); quit || err != nil {
			t.Fatalf("unexpected result for %q: quit=%v, err=%v", line, quit, err)
		}
	}
	if out.String() != "success: true\nsuccess: false\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestEvalCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordfa.cli")
	defer teardown()
	//
	intp, out := newTestIntp(t, "pingpong")
	if _, err := intp.Eval(":lang"); !errors.Is(err, automaton.ErrInfiniteLanguage) {
		t.Errorf("expected ErrInfiniteLanguage for unbounded language, have %v", err)
	}
	out.Reset()
	if _, err := intp.Eval(":lang 5"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "0\n010\n01010\n" {
		t.Errorf("unexpected language output %q", out.String())
	}
	if len(intp.reversed) != 1 {
		t.Errorf("expected reversed automaton to be cached once, have %d entries", len(intp.reversed))
	}
	out.Reset()
	if _, err := intp.Eval(":hash"); err != nil || strings.TrimSpace(out.String()) != intp.hash {
		t.Errorf("expected fingerprint to be printed, have %q", out.String())
	}
	if _, err := intp.Eval(":nonsense"); err == nil {
		t.Errorf("expected error for unknown command")
	}
	if _, err := intp.Eval(":demo dates"); err != nil || intp.a.Size() != 6 {
		t.Errorf("expected :demo to switch to dates automaton, error is %v", err)
	}
	if quit, _ := intp.Eval(":quit"); !quit {
		t.Errorf("expected :quit to quit")
	}
}

func TestLoadAutomaton(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordfa.cli")
	defer teardown()
	//
	a, err := loadAutomaton("testdata/ab.txt", "")
	if err != nil {
		t.Fatal(err)
	}
	if a.Name() != "ab" || !a.Run("aaba") {
		t.Errorf("expected automaton 'ab' to accept 'aaba'")
	}
	_, err = loadAutomaton("testdata/broken.txt", "")
	var synerr *description.SyntaxError
	if !errors.As(err, &synerr) || synerr.Line != 3 {
		t.Errorf("expected syntax error in line 3, have %v", err)
	}
	if _, err = loadAutomaton("../../description/hcldesc/testdata/dates.hcl", ""); err != nil {
		t.Errorf("expected HCL description to load, have %v", err)
	}
	if _, err = loadAutomaton("", "nonsense"); err == nil {
		t.Errorf("expected error for unknown sample")
	}
}
