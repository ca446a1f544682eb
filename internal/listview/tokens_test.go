package listview

import "testing"

func TestInFlight_StartRefusesDuplicate(t *testing.T) {
	f := NewInFlight()

	if !f.Start("7", ActionApprove) {
		t.Fatal("first Start should succeed")
	}
	if f.Start("7", ActionApprove) {
		t.Error("duplicate Start for the same (item, action) should fail")
	}
}

func TestInFlight_IndependentRowsAndActions(t *testing.T) {
	f := NewInFlight()

	if !f.Start("7", ActionApprove) {
		t.Fatal("Start failed")
	}
	if !f.Start("9", ActionApprove) {
		t.Error("a different row should start independently")
	}
	if !f.Start("7", ActionDelete) {
		t.Error("a different action on the same row should start independently")
	}
	if got := f.Count(); got != 3 {
		t.Errorf("expected 3 in flight, got %d", got)
	}
}

func TestInFlight_FinishReleasesExactToken(t *testing.T) {
	f := NewInFlight()
	f.Start("7", ActionApprove)
	f.Start("7", ActionDelete)

	f.Finish("7", ActionApprove)

	if f.Active("7", ActionApprove) {
		t.Error("finished token should not be active")
	}
	if !f.Active("7", ActionDelete) {
		t.Error("other action on the same row should still be active")
	}
	if !f.Busy("7") {
		t.Error("row should stay busy while any action is in flight")
	}
}

func TestInFlight_FinishUnknownIsNoop(t *testing.T) {
	f := NewInFlight()
	f.Finish("99", ActionVerify)

	if f.Any() {
		t.Error("finishing an unknown token should leave the set empty")
	}
}

func TestInFlight_BusyAndAny(t *testing.T) {
	f := NewInFlight()

	if f.Any() || f.Busy("7") {
		t.Fatal("fresh set should be idle")
	}

	f.Start("7", ActionToggle)
	if !f.Any() {
		t.Error("Any should report true with one token")
	}
	if f.Busy("8") {
		t.Error("an unrelated row should not be busy")
	}

	f.Finish("7", ActionToggle)
	if f.Any() {
		t.Error("set should be idle after the last Finish")
	}
}
