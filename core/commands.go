// Console command bindings
// Maps the single-byte console commands onto the clock controller. The
// command reader itself lives outside the core; it only delivers bytes.
package core

// Default PLL settings used by the start command.
const (
	DefaultMultiplier = 9
	DefaultDivider    = 2
)

// InitClockCommands registers the clock-control commands with the
// command registry.
func InitClockCommands(ctrl *Controller, cal *Calibrator) {
	report := func(ok bool) error {
		Report(RenderSwitchResult(ctrl, cal, ok))
		return nil
	}

	RegisterCommand('s', "start", "switch to the external PLL with default settings", func() error {
		return report(ctrl.SwitchToExternalPLL(DefaultMultiplier, DefaultDivider))
	})

	RegisterCommand('i', "internal", "revert to the internal oscillator", func() error {
		ctrl.SwitchToInternal()
		return report(true)
	})

	RegisterCommand('+', "mul-up", "raise the PLL multiplier (clamps at 31)", func() error {
		return report(ctrl.AdjustMultiplier(+1))
	})

	RegisterCommand('-', "mul-down", "lower the PLL multiplier (clamps at 1)", func() error {
		return report(ctrl.AdjustMultiplier(-1))
	})

	RegisterCommand('2', "div-2", "select reference divide-by-2", func() error {
		return report(ctrl.SelectDivider(2))
	})

	RegisterCommand('4', "div-4", "select reference divide-by-4", func() error {
		return report(ctrl.SelectDivider(4))
	})

	RegisterCommand('?', "help", "list available commands", func() error {
		Report("commands:\n" + GetGlobalRegistry().HelpText())
		return nil
	})
}
