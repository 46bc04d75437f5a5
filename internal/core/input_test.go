package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionSwing) {
		t.Error("empty frame should have no actions")
	}
	f.Set(ActionSwing)
	f.Set(ActionAimLeft)
	if !f.Has(ActionSwing) || !f.Has(ActionAimLeft) {
		t.Error("set actions should be reported")
	}
	if f.Has(ActionConfirm) {
		t.Error("unset action reported as triggered")
	}
}

func TestInputFrameAny(t *testing.T) {
	f := NewInputFrame()
	if f.Any(ActionUp, ActionDown) {
		t.Error("empty frame should match nothing")
	}
	f.Set(ActionDown)
	if !f.Any(ActionUp, ActionDown) {
		t.Error("Any should match a set action")
	}
	if f.Any(ActionQuit, ActionPause) {
		t.Error("Any matched actions that were never set")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Clear()
	if f.Has(ActionPause) {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionConfirm)
	c := f.Clone()
	f.Clear()
	if !c.Has(ActionConfirm) {
		t.Error("clone should be independent of the original")
	}
}

func TestZeroValueFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionSwing) || f.Any(ActionSwing) {
		t.Error("zero-value frame should report nothing")
	}
	f.Set(ActionSwing)
	if !f.Has(ActionSwing) {
		t.Error("Set should work on a zero-value frame")
	}
}
