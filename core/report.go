// Status rendering for the diagnostic console
// Human-readable one-liners; the heavy lifting stays in strutil so the
// device path never pulls in fmt.
package core

// sourceName renders the active clock source
func sourceName(s Source) string {
	if s == SourceExternalPLL {
		return "pll"
	}
	return "internal"
}

// RenderStatus renders the periodic status line: active source,
// effective frequency, clock-good flag, timer reload and uptime.
func RenderStatus(ctrl *Controller, cal *Calibrator) string {
	cfg := ctrl.Config()
	st := ctrl.Status()

	line := "clk=" + sourceName(cfg.Source) +
		" freq=" + mhzString(cfg.EffectiveKHz) + "MHz" +
		" good=" + boolDigit(st.ClockGood) +
		" reload=" + utoa(cal.Reload()) +
		" up=" + utoa(cal.Seconds()) + "s"
	if st.StopDetected {
		line += " osc-stop-detect=1"
	}
	return line
}

// RenderSwitchResult renders the line emitted after every switch attempt.
func RenderSwitchResult(ctrl *Controller, cal *Calibrator, ok bool) string {
	if !ok {
		return "switch failed: external oscillator did not start; staying on internal clock"
	}
	cfg := ctrl.Config()
	line := "switched to " + sourceName(cfg.Source)
	if cfg.Source == SourceExternalPLL {
		line += " mul=" + utoa(uint32(cfg.Multiplier)) +
			" div=" + utoa(uint32(cfg.Divider))
	}
	line += " freq=" + mhzString(cfg.EffectiveKHz) + "MHz" +
		" reload=" + utoa(cal.Reload())
	return line
}
