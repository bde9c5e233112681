package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Errorf("frame actions = %v, want only Left", f.Actions)
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestFrameOf(t *testing.T) {
	f := FrameOf(ActionRestart, ActionConfirm)
	if !f.Has(ActionRestart) || !f.Has(ActionConfirm) || f.Has(ActionQuit) {
		t.Errorf("FrameOf actions = %v", f.Actions)
	}
}

func TestActionAndEventString(t *testing.T) {
	if ActionRight.String() != "Right" || Action(99).String() != "Unknown" {
		t.Error("unexpected Action.String() output")
	}
	if EventWon.String() != "won" || Event(99).String() != "unknown" {
		t.Error("unexpected Event.String() output")
	}
}
