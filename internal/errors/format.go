package errors

import (
	"strconv"
	"strings"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// colorEnabled controls whether ANSI colors are used.
var colorEnabled = true

// DisableColors disables ANSI color output.
func DisableColors() {
	colorEnabled = false
}

// EnableColors enables ANSI color output.
func EnableColors() {
	colorEnabled = true
}

func color(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + colorReset
}

// Format renders the error for terminal display.
func (e *Error) Format() string {
	var b strings.Builder

	header := "ERROR"
	if e.Code != "" {
		header += " " + e.Code
	}
	b.WriteString(color(colorRed, color(colorBold, header+": ")))
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Method != "" {
		b.WriteString(color(colorGray, "  request: "))
		b.WriteString(e.Method + " " + e.URL)
		if e.Status != 0 {
			b.WriteString(" -> ")
			b.WriteString(strconv.Itoa(e.Status))
		}
		b.WriteString("\n")
	}
	if e.Detail != "" {
		b.WriteString(color(colorGray, "  "+e.Detail))
		b.WriteString("\n")
	}
	if e.Wrapped != nil {
		b.WriteString(color(colorGray, "  cause: "))
		b.WriteString(e.Wrapped.Error())
		b.WriteString("\n")
	}
	return b.String()
}
