//go:build cgo

package rtmidi

import (
	"fmt"
	"log/slog"

	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// Context holds the driver and the currently open output.
type Context struct {
	driver  *rtmididrv.Driver
	current drivers.Out
}

// NewContext opens the driver. If that fails the context is still usable
// but has no outputs.
func NewContext() *Context {
	var c Context
	var err error
	if c.driver, err = rtmididrv.New(); err != nil {
		slog.Warn("opening the RtMidi driver failed", "error", err)
		c.driver = nil
	}
	return &c
}

// Outputs lists the names of the output ports.
func (c *Context) Outputs() ([]string, error) {
	if c.driver == nil {
		return nil, ErrNoDriver
	}
	outs, err := c.driver.Outs()
	if err != nil {
		return nil, fmt.Errorf("listing MIDI outputs failed: %w", err)
	}
	return portNames(outs), nil
}

// Open opens the output selected by SelectPort, closing the one open before.
func (c *Context) Open(prefix string) (drivers.Out, error) {
	if c.driver == nil {
		return nil, ErrNoDriver
	}
	outs, err := c.driver.Outs()
	if err != nil {
		return nil, fmt.Errorf("listing MIDI outputs failed: %w", err)
	}
	i, err := SelectPort(portNames(outs), prefix)
	if err != nil {
		return nil, err
	}
	if c.current == outs[i] && c.current.IsOpen() {
		return c.current, nil
	}
	if c.current != nil && c.current.IsOpen() {
		c.current.Close()
	}
	c.current = outs[i]
	if err := c.current.Open(); err != nil {
		c.current = nil
		return nil, fmt.Errorf("opening MIDI output %v failed: %w", outs[i], err)
	}
	slog.Info("opened MIDI output", "port", outs[i].String())
	return c.current, nil
}

func (c *Context) Close() {
	if c.driver == nil {
		return
	}
	if c.current != nil && c.current.IsOpen() {
		c.current.Close()
	}
	c.driver.Close()
}
