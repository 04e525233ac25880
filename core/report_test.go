package core

import (
	"strings"
	"testing"
)

func TestRenderStatusFormat(t *testing.T) {
	h := newTestHarness()
	ctrl, cal, _ := newTestController(h)

	if !ctrl.SwitchToExternalPLL(9, 2) {
		t.Fatal("switch failed")
	}
	line := RenderStatus(ctrl, cal)
	for _, want := range []string{"clk=pll", "freq=50.000MHz", "good=1", "reload=3124"} {
		if !strings.Contains(line, want) {
			t.Errorf("status %q missing %q", line, want)
		}
	}

	ctrl.SwitchToInternal()
	line = RenderStatus(ctrl, cal)
	for _, want := range []string{"clk=internal", "freq=48.000MHz", "good=0", "reload=2999"} {
		if !strings.Contains(line, want) {
			t.Errorf("status %q missing %q", line, want)
		}
	}
}

func TestRenderStatusStopDetect(t *testing.T) {
	h := newTestHarness()
	ctrl, cal, _ := newTestController(h)

	if line := RenderStatus(ctrl, cal); strings.Contains(line, "osc-stop-detect") {
		t.Errorf("status %q reports stop detection on a clean clock", line)
	}

	h.Bus.StopDetect = true
	if !ctrl.SwitchToExternalPLL(9, 2) {
		t.Fatal("switch failed")
	}
	if line := RenderStatus(ctrl, cal); !strings.Contains(line, "osc-stop-detect=1") {
		t.Errorf("status %q missing osc-stop-detect=1", line)
	}
}

func TestRenderSwitchResult(t *testing.T) {
	h := newTestHarness()
	ctrl, cal, _ := newTestController(h)

	ok := ctrl.SwitchToExternalPLL(9, 2)
	line := RenderSwitchResult(ctrl, cal, ok)
	for _, want := range []string{"switched to pll", "mul=9", "div=2", "freq=50.000MHz"} {
		if !strings.Contains(line, want) {
			t.Errorf("result %q missing %q", line, want)
		}
	}

	h.Bus.FailMainOsc = true
	ok = ctrl.SwitchToExternalPLL(9, 2)
	line = RenderSwitchResult(ctrl, cal, ok)
	if !strings.Contains(line, "failed") {
		t.Errorf("result %q does not report the failure", line)
	}
}

func TestMhzStringFractional(t *testing.T) {
	cases := []struct {
		kHz  uint32
		want string
	}{
		{50000, "50.000"},
		{48000, "48.000"},
		{2500, "2.500"},
		{80125, "80.125"},
		{999, "0.999"},
	}
	for _, c := range cases {
		if got := mhzString(c.kHz); got != c.want {
			t.Errorf("mhzString(%d) = %q, want %q", c.kHz, got, c.want)
		}
	}
}
