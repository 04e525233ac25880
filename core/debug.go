package core

// ReportWriter is a function type for writing diagnostic report lines
type ReportWriter func(string)

var (
	// reportPrintln is the global report output function (set by platform code)
	reportPrintln ReportWriter = func(s string) {} // No-op by default

	// reportEnabled controls whether report output is active
	reportEnabled = true
)

// SetReportWriter sets the platform-specific report output function.
// This allows platforms to redirect diagnostics to UART, USB or a test
// capture buffer.
func SetReportWriter(writer ReportWriter) {
	reportPrintln = writer
}

// SetReportEnabled enables or disables report output
func SetReportEnabled(enabled bool) {
	reportEnabled = enabled
}

// Report writes a diagnostic line using the platform-specific writer
func Report(msg string) {
	if reportEnabled && reportPrintln != nil {
		reportPrintln(msg)
	}
}
