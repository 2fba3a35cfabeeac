// Package console writes the tool's human-facing progress lines.
package console

import (
	"fmt"
	"io"
)

// Line prefixes.
const (
	prefixInfo = "[INFO]"
	prefixWarn = "[WARN]"
	prefixStep = "[+]"
)

// Console prefixes each message with its level tag and writes it as one line.
type Console struct {
	out io.Writer
}

// New returns a Console writing to w.
func New(w io.Writer) *Console {
	return &Console{out: w}
}

// Infof writes an "[INFO] ..." line.
func (c *Console) Infof(format string, args ...any) {
	c.line(prefixInfo, format, args...)
}

// Warnf writes a "[WARN] ..." line.
func (c *Console) Warnf(format string, args ...any) {
	c.line(prefixWarn, format, args...)
}

// Stepf writes a "[+] ..." line announcing a new phase.
func (c *Console) Stepf(format string, args ...any) {
	c.line(prefixStep, format, args...)
}

// Printf writes an untagged message.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) line(prefix, format string, args ...any) {
	fmt.Fprintf(c.out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
