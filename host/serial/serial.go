// Device console transport for the host tools.
// The firmware protocol is single command bytes out, newline-terminated
// report lines in; the Port interface is kept small so a test double can
// stand in for the tarm/serial implementation.
package serial

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// Port is the console connection used by the host tools.
type Port interface {
	io.ReadWriteCloser

	// SendKey writes one firmware command byte
	SendKey(key byte) error
}

// Config describes the device console connection.
type Config struct {
	Device      string // e.g. "/dev/ttyACM0", "COM3"
	Baud        int
	ReadTimeout int // milliseconds, 0 blocks
}

type consolePort struct {
	port *serial.Port
}

// Open connects to the device console.
func Open(cfg *Config) (Port, error) {
	if cfg == nil || cfg.Device == "" {
		return nil, errors.New("serial: no device configured")
	}

	p, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("serial: open %s: %w", cfg.Device, err)
	}
	return &consolePort{port: p}, nil
}

func (p *consolePort) Read(b []byte) (int, error)  { return p.port.Read(b) }
func (p *consolePort) Write(b []byte) (int, error) { return p.port.Write(b) }
func (p *consolePort) Close() error                { return p.port.Close() }

func (p *consolePort) SendKey(key byte) error {
	_, err := p.port.Write([]byte{key})
	return err
}
