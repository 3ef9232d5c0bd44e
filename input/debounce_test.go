package input

import "testing"

func TestCounterOneShot(t *testing.T) {
	c := NewCounter(0, 0)
	if c.CanHandle() {
		t.Fatal("new counter should not be able to handle")
	}
	c.Update(true)
	if !c.CanHandle() {
		t.Fatal("expected can handle after first active update")
	}
	c.Update(true) // ignored: trigger still pending
	if !c.CanHandle() {
		t.Fatal("expected can handle to remain set while unconsumed")
	}
	if !c.Handle() {
		t.Fatal("expected handle to succeed")
	}
	if c.CanHandle() {
		t.Fatal("expected can handle to clear after handle")
	}
	c.Update(true)
	if c.CanHandle() {
		t.Fatal("one-shot counter should not retrigger while still held")
	}
	c.Update(false)
	if c.CanHandle() {
		t.Fatal("expected can handle false after release")
	}
	c.Update(true)
	if !c.CanHandle() {
		t.Fatal("expected can handle true after re-press")
	}
}

func TestCounterRepeatable(t *testing.T) {
	c := NewCounter(1, 0)
	if c.CanHandle() {
		t.Fatal("new counter should not be able to handle")
	}
	c.Update(true)
	if !c.CanHandle() {
		t.Fatal("expected can handle after first active update")
	}
	c.Update(true)
	if !c.CanHandle() {
		t.Fatal("expected can handle to remain set while unconsumed")
	}
	if !c.Handle() {
		t.Fatal("expected handle to succeed")
	}
	if c.CanHandle() {
		t.Fatal("expected can handle to clear after handle")
	}
	c.Update(true)
	if !c.CanHandle() {
		t.Fatal("expected can handle true on next tick (repeat=1)")
	}
	c.Update(true) // ignored: trigger still pending
	if !c.CanHandle() {
		t.Fatal("expected can handle to remain set while unconsumed")
	}
	if !c.Handle() {
		t.Fatal("expected handle to succeed")
	}
	if c.CanHandle() {
		t.Fatal("expected can handle to clear after handle")
	}
}

func TestCounterRepeatableWithDelay(t *testing.T) {
	c := NewCounter(2, 3)
	if c.Handle() {
		t.Fatal("expected handle false before any update")
	}
	c.Update(true)
	if !c.Handle() {
		t.Fatal("expected handle true on the Inactive->Delay transition tick")
	}
	c.Update(true)
	if c.Handle() {
		t.Fatal("expected handle false")
	}
	c.Update(true)
	if c.Handle() {
		t.Fatal("expected handle false")
	}
	c.Update(true)
	if !c.Handle() {
		t.Fatal("expected handle true (first_delay reached)")
	}
	c.Update(true)
	if c.Handle() {
		t.Fatal("expected handle false")
	}
	c.Update(true)
	if !c.Handle() {
		t.Fatal("expected handle true (repeat=2 reached)")
	}
}

func TestManagerRegisterAndHandle(t *testing.T) {
	m := NewManager()
	m.Register(KeyHold, NewCounter(0, 0))

	held := map[Key]bool{KeyHold: true}
	src := sourceFunc(func(k Key) bool { return held[k] })

	m.Update(src)
	if !m.CanHandle(KeyHold) {
		t.Fatal("expected hold to be handleable after first active frame")
	}
	if !m.Handle(KeyHold) {
		t.Fatal("expected handle to succeed")
	}
	if m.CanHandle(KeyMoveLeft) {
		t.Fatal("unregistered key should never be handleable")
	}
}

type sourceFunc func(k Key) bool

func (f sourceFunc) Has(k Key) bool { return f(k) }

func TestHumanPresetMovementRepeats(t *testing.T) {
	m := HumanPreset(3, 1)
	held := map[Key]bool{KeyMoveLeft: true}
	src := sourceFunc(func(k Key) bool { return held[k] })

	triggers := 0
	for i := 0; i < 6; i++ {
		m.Update(src)
		if m.Handle(KeyMoveLeft) {
			triggers++
		}
	}
	// press on frame1, first_delay=3 then repeat=1: frames 1,4,5,6 -> 4 triggers across 6 frames
	if triggers != 4 {
		t.Errorf("triggers = %d, want 4", triggers)
	}
}

func TestAutomationPresetFiresEveryFrame(t *testing.T) {
	m := AutomationPreset()
	held := map[Key]bool{KeyHold: true}
	src := sourceFunc(func(k Key) bool { return held[k] })

	for i := 0; i < 3; i++ {
		m.Update(src)
		if !m.Handle(KeyHold) {
			t.Errorf("frame %d: expected automation preset to fire every held frame", i)
		}
	}
}
