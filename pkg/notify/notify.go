// Package notify writes user-facing status lines (success, error, warning,
// info, activity) to a caller-supplied writer.
//
// Each line is prefixed with a symbol and coloured when the destination is a
// terminal; colour is disabled automatically otherwise.
package notify

import (
	"fmt"
	"io"
	"os"
	"strings"

	fcolor "github.com/fatih/color"
)

// MessageType selects the symbol and colour of a message.
type MessageType int

const (
	// ErrorType is rendered red with ✗.
	ErrorType MessageType = iota
	// WarningType is rendered yellow with ⚠.
	WarningType
	// ActivityType is rendered uncoloured with ►.
	ActivityType
	// SuccessType is rendered green with ✔.
	SuccessType
	// InfoType is rendered blue with ℹ.
	InfoType
)

type style struct {
	symbol string
	color  *fcolor.Color
}

func styleFor(t MessageType) style {
	switch t {
	case ErrorType:
		return style{symbol: "✗ ", color: fcolor.New(fcolor.FgRed, fcolor.Bold)}
	case WarningType:
		return style{symbol: "⚠ ", color: fcolor.New(fcolor.FgYellow, fcolor.Bold)}
	case ActivityType:
		return style{symbol: "► ", color: fcolor.New(fcolor.Reset)}
	case SuccessType:
		return style{symbol: "✔ ", color: fcolor.New(fcolor.FgGreen, fcolor.Bold)}
	case InfoType:
		return style{symbol: "ℹ ", color: fcolor.New(fcolor.FgBlue, fcolor.Bold)}
	default:
		return style{color: fcolor.New(fcolor.Reset)}
	}
}

// Write formats and writes one message. A nil writer discards the message.
// Without args the format is written verbatim.
func Write(w io.Writer, t MessageType, format string, args ...any) {
	content := format
	if len(args) > 0 {
		content = fmt.Sprintf(format, args...)
	}

	writeLine(w, t, content)
}

func writeLine(w io.Writer, t MessageType, content string) {
	if w == nil {
		return
	}

	s := styleFor(t)
	content = indent(content, len([]rune(s.symbol)))

	if _, err := s.color.Fprintf(w, "%s%s\n", s.symbol, content); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "notify: failed to print message: %v\n", err)
	}
}

// Errorf writes an error message.
func Errorf(w io.Writer, format string, args ...any) { Write(w, ErrorType, format, args...) }

// Warningf writes a warning message.
func Warningf(w io.Writer, format string, args ...any) { Write(w, WarningType, format, args...) }

// Activityf writes an activity message.
func Activityf(w io.Writer, format string, args ...any) { Write(w, ActivityType, format, args...) }

// Successf writes a success message.
func Successf(w io.Writer, format string, args ...any) { Write(w, SuccessType, format, args...) }

// Infof writes an informational message.
func Infof(w io.Writer, format string, args ...any) { Write(w, InfoType, format, args...) }

// indent aligns continuation lines of multi-line content under the first line's text.
func indent(content string, width int) string {
	if width == 0 || !strings.Contains(content, "\n") {
		return content
	}

	pad := strings.Repeat(" ", width)
	lines := strings.Split(content, "\n")

	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = pad + lines[i]
		}
	}

	return strings.Join(lines, "\n")
}
