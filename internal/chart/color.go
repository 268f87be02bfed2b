// Package chart renders fretboards and key tables as plain text.
package chart

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Color modes accepted by ResolveColor.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const (
	colorReset          = "\x1b[0m"
	terminalWidthBackup = 80
)

type ansiColor struct {
	name string
	code string
}

var (
	rootColor      = ansiColor{name: "red", code: "\x1b[1;31m"}
	chordToneColor = ansiColor{name: "yellow", code: "\x1b[33m"}
	scaleRootColor = ansiColor{name: "cyan", code: "\x1b[1;36m"}
	dimColor       = ansiColor{name: "gray", code: "\x1b[90m"}
)

// ResolveColor decides whether output to w should carry ANSI colors.
func ResolveColor(mode string, w io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ColorAuto:
		return shouldUseColor(w, false), nil
	case ColorAlways:
		return shouldUseColor(w, true), nil
	case ColorNever:
		return false, nil
	default:
		return false, fmt.Errorf("invalid color mode %q (use auto, always or never)", mode)
	}
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func paint(s string, c ansiColor, useColor bool) string {
	if !useColor || s == "" {
		return s
	}
	return c.code + s + colorReset
}
