//go:build !cgo

package rtmidi

import "gitlab.com/gomidi/midi/v2/drivers"

// Context stands in for the driver when built without cgo.
type Context struct{}

func NewContext() *Context { return &Context{} }

func (c *Context) Outputs() ([]string, error) { return nil, ErrNoDriver }

func (c *Context) Open(prefix string) (drivers.Out, error) { return nil, ErrNoDriver }

func (c *Context) Close() {}
