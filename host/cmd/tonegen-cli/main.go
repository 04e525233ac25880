package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"tonegen/host/config"
	"tonegen/host/serial"
)

var (
	configPath = flag.String("config", "", "YAML configuration file")
	device     = flag.String("device", "", "Serial device path (overrides config)")
	baud       = flag.Int("baud", 0, "Baud rate (overrides config)")
)

// Console command bytes understood by the firmware
var commandKeys = map[string]byte{
	"start":    's',
	"internal": 'i',
	"mul-up":   '+',
	"mul-down": '-',
	"div-2":    '2',
	"div-4":    '4',
	"status":   '?',
}

func main() {
	flag.Parse()

	cfg := config.DefaultHostConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *device != "" {
		cfg.Device = *device
	}
	if *baud != 0 {
		cfg.Baud = *baud
	}

	fmt.Println("Tonegen Host - Clock Switch Console")
	fmt.Println("====================================")

	fmt.Printf("Connecting to device on %s...\n", cfg.Device)
	port, err := serial.Open(&serial.Config{
		Device:      cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Println("Connected successfully!")

	// Stream device report lines in the background
	go func() {
		r := bufio.NewReader(port)
		for {
			line, err := r.ReadString('\n')
			if line != "" {
				fmt.Print("< " + line)
			}
			if err != nil && err != io.EOF {
				return
			}
		}
	}()

	if cfg.StartOnConnect {
		fmt.Println("Sending start command...")
		if err := port.SendKey('s'); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	// Interactive command loop
	fmt.Println("Enter commands (type 'help' for available commands, 'quit' to exit):")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return

		case "help":
			printHelp()

		default:
			key, ok := commandKeys[line]
			if !ok {
				fmt.Printf("Unknown command: %s (type 'help' for available commands)\n", line)
				continue
			}
			if err := port.SendKey(key); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("\nAvailable commands:")
	fmt.Println("  start          - Switch to the external PLL with default settings")
	fmt.Println("  internal       - Revert to the internal oscillator")
	fmt.Println("  mul-up         - Raise the PLL multiplier (clamps at 31)")
	fmt.Println("  mul-down       - Lower the PLL multiplier (clamps at 1)")
	fmt.Println("  div-2          - Select reference divide-by-2")
	fmt.Println("  div-4          - Select reference divide-by-4")
	fmt.Println("  status         - Ask the firmware for its command list")
	fmt.Println("  quit/exit/q    - Exit the program")
	fmt.Println()
}
