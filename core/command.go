package core

import (
	"errors"
	"sync"
)

// CommandHandler handles one discrete console command. Commands carry no
// arguments; out-of-range adjustments clamp inside the handler's target
// rather than erroring.
type CommandHandler func() error

// Command represents one console command
type Command struct {
	Key     byte   // ASCII trigger byte
	Name    string // Short name for the help listing
	Help    string // One-line description
	Handler CommandHandler
}

// CommandRegistry holds all registered commands
type CommandRegistry struct {
	mu       sync.RWMutex
	commands map[byte]*Command
	order    []byte // Registration order for the help listing
	help     string // Cached help text
}

var globalRegistry = NewCommandRegistry()

// NewCommandRegistry creates a new command registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		commands: make(map[byte]*Command),
	}
}

// RegisterCommand registers a command handler on the global registry
func RegisterCommand(key byte, name string, help string, handler CommandHandler) {
	globalRegistry.Register(key, name, help, handler)
}

// Register adds a command to the registry. Re-registering a key replaces
// the previous handler.
func (r *CommandRegistry) Register(key byte, name string, help string, handler CommandHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commands[key]; !exists {
		r.order = append(r.order, key)
	}
	r.commands[key] = &Command{
		Key:     key,
		Name:    name,
		Help:    help,
		Handler: handler,
	}
	r.rebuildHelp()
}

// GetCommand retrieves a command by key
func (r *CommandRegistry) GetCommand(key byte) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[key]
	return cmd, ok
}

// Count returns the number of registered commands
func (r *CommandRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// Dispatch calls the appropriate command handler. Whitespace and line
// terminators are ignored so the console can be driven line-by-line.
func (r *CommandRegistry) Dispatch(key byte) error {
	if key == '\r' || key == '\n' || key == ' ' || key == '\t' {
		return nil
	}
	cmd, ok := r.GetCommand(key)
	if !ok {
		if key < 0x20 || key > 0x7E {
			return errors.New("unknown command byte " + itoa(int(key)))
		}
		return errors.New("unknown command: " + string(key))
	}
	return cmd.Handler()
}

// HelpText returns the help listing for all registered commands
func (r *CommandRegistry) HelpText() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.help
}

// rebuildHelp rebuilds the help text
// Must be called with lock held
func (r *CommandRegistry) rebuildHelp() {
	help := ""
	for _, key := range r.order {
		cmd := r.commands[key]
		help += "  " + string(cmd.Key) + "  " + cmd.Name + " - " + cmd.Help + "\n"
	}
	r.help = help
}

// DispatchCommand is a convenience function using the global registry
func DispatchCommand(key byte) error {
	return globalRegistry.Dispatch(key)
}

// GetGlobalRegistry returns the global command registry
func GetGlobalRegistry() *CommandRegistry {
	return globalRegistry
}

// GetCommandCount returns the number of registered commands
func GetCommandCount() int {
	return globalRegistry.Count()
}
