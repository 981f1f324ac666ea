package fsm

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// recorder builds machines that log the order of callback invocations.
type recorder struct {
	calls []string
}

func (r *recorder) log(s string) {
	r.calls = append(r.calls, s)
}

func TestMachineStartsIntoInitialState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.fsm")
	defer teardown()
	//
	rec := &recorder{}
	m := New("tool", "main")
	m.Define("main", Callbacks{
		Enter: func() { rec.log("enter main") },
		Main:  func() string { rec.log("main"); return "" },
	})
	if m.State() != "" {
		t.Errorf("expected no active state before the first tick, have %q", m.State())
	}
	if err := m.Update(); err != nil {
		t.Fatal(err)
	}
	if m.State() != "main" {
		t.Errorf("expected state main after the first tick, have %q", m.State())
	}
	if len(rec.calls) != 2 || rec.calls[0] != "enter main" || rec.calls[1] != "main" {
		t.Errorf("expected [enter main, main], got %v", rec.calls)
	}
}

func TestMachineTransitionOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.fsm")
	defer teardown()
	//
	rec := &recorder{}
	m := New("tool", "idle")
	m.Define("idle", Callbacks{
		Main: func() string { rec.log("idle main"); return "work" },
		Exit: func() { rec.log("idle exit") },
	})
	m.Define("work", Callbacks{
		CanEnter: func() bool { rec.log("work can-enter"); return true },
		Enter:    func() { rec.log("work enter") },
		Main:     func() string { rec.log("work main"); return "" },
	})
	if err := m.Update(); err != nil { // -> idle
		t.Fatal(err)
	}
	rec.calls = nil
	if err := m.Update(); err != nil { // idle requested work last tick
		t.Fatal(err)
	}
	want := []string{"work can-enter", "idle exit", "work enter", "work main"}
	if len(rec.calls) != len(want) {
		t.Fatalf("expected %v, got %v", want, rec.calls)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, rec.calls)
		}
	}
}

func TestMachineCanExitVeto(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.fsm")
	defer teardown()
	//
	rec := &recorder{}
	allowExit := false
	m := New("tool", "locked")
	m.Define("locked", Callbacks{
		Main:    func() string { return "free" },
		CanExit: func() bool { return allowExit },
		Exit:    func() { rec.log("exit") },
	})
	m.Define("free", Callbacks{
		Enter: func() { rec.log("enter") },
		Main:  func() string { return "" },
	})
	m.Update() // -> locked; requests free
	m.Update() // veto: can-exit is false
	if m.State() != "locked" {
		t.Errorf("expected the veto to keep state locked, have %q", m.State())
	}
	if len(rec.calls) != 0 {
		t.Errorf("expected exit/enter to stay uninvoked on veto, got %v", rec.calls)
	}
	allowExit = true
	m.Update() // main re-requested free on the veto tick; now admitted
	if m.State() != "free" {
		t.Errorf("expected transition after the guard opens, state is %q", m.State())
	}
}

func TestMachineCanEnterVeto(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.fsm")
	defer teardown()
	//
	m := New("tool", "a")
	m.Define("a", Callbacks{Main: func() string { return "b" }})
	m.Define("b", Callbacks{
		CanEnter: func() bool { return false },
		Main:     func() string { return "" },
	})
	m.Update()
	m.Update()
	if m.State() != "a" {
		t.Errorf("expected can-enter veto to keep state a, have %q", m.State())
	}
}

func TestMachineCallbackFaultIsContained(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.fsm")
	defer teardown()
	//
	ticks := 0
	m := New("tool", "boom")
	m.Define("boom", Callbacks{
		Main: func() string {
			ticks++
			panic("tool bug")
		},
	})
	if err := m.Update(); err != nil {
		t.Fatalf("a panicking main must not surface: %v", err)
	}
	if err := m.Update(); err != nil {
		t.Fatalf("machine must stay usable after a fault: %v", err)
	}
	if ticks != 2 {
		t.Errorf("expected main to keep running every tick, ran %d times", ticks)
	}
	if m.State() != "boom" {
		t.Errorf("expected a faulted main to request no transition, state is %q", m.State())
	}
}

func TestMachineGuardFaultDoesNotVeto(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.fsm")
	defer teardown()
	//
	m := New("tool", "a")
	m.Define("a", Callbacks{
		Main:    func() string { return "b" },
		CanExit: func() bool { panic("guard bug") },
	})
	m.Define("b", Callbacks{Main: func() string { return "" }})
	m.Update()
	m.Update()
	if m.State() != "b" {
		t.Errorf("expected a faulted guard to degrade to allow, state is %q", m.State())
	}
}

func TestMachineForceSetState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.fsm")
	defer teardown()
	//
	rec := &recorder{}
	m := New("tool", "a")
	m.Define("a", Callbacks{
		Main:    func() string { return "" },
		CanExit: func() bool { return false }, // would veto a regular transition
		Exit:    func() { rec.log("a exit") },
	})
	m.Define("b", Callbacks{
		Enter: func() { rec.log("b enter") },
		Main:  func() string { return "" },
	})
	m.Update()
	m.ForceSetState("b", false, true)
	if m.State() != "b" {
		t.Errorf("expected forced state b, have %q", m.State())
	}
	if len(rec.calls) != 1 || rec.calls[0] != "b enter" {
		t.Errorf("expected only [b enter], got %v", rec.calls)
	}
}

func TestMachineUndefinedStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.fsm")
	defer teardown()
	//
	m := New("tool", "ghost")
	if err := m.Update(); err == nil {
		t.Error("expected an error for a transition to an undefined state")
	}
	m2 := New("tool", "a")
	if err := m2.Define("a", Callbacks{}); err != nil {
		t.Fatal(err)
	}
	if err := m2.Define("a", Callbacks{}); err == nil {
		t.Error("expected duplicate state registration to fail")
	}
}
