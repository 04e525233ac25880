package core

// itoa converts an integer to a string without using fmt package
// This is a lightweight alternative for embedded systems
func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	negative := n < 0
	if negative {
		n = -n
	}

	// Count digits
	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	// Add space for negative sign
	if negative {
		digits++
	}

	// Build string from right to left
	buf := make([]byte, digits)
	pos := digits - 1

	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}

	if negative {
		buf[0] = '-'
	}

	return string(buf)
}

// utoa converts an unsigned integer to a string
func utoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	buf := make([]byte, digits)
	pos := digits - 1

	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}

	return string(buf)
}

// mhzString renders a frequency in kHz as "NN.NNN" MHz without
// floating-point arithmetic.
func mhzString(kHz uint32) string {
	whole := kHz / 1000
	frac := kHz % 1000

	// Zero-pad the fractional kHz to three places
	f := utoa(frac)
	for len(f) < 3 {
		f = "0" + f
	}
	return utoa(whole) + "." + f
}

// boolDigit renders a boolean as "1" or "0"
func boolDigit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
