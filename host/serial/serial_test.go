package serial

import "testing"

func TestOpenRejectsMissingDevice(t *testing.T) {
	if _, err := Open(nil); err == nil {
		t.Error("Open(nil) did not fail")
	}
	if _, err := Open(&Config{Baud: 115200}); err == nil {
		t.Error("Open with an empty device path did not fail")
	}
}
