package idioma

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Kind is the category of a message. It decides the label, colour and stream.
type Kind int

const (
	KindDebug Kind = iota
	KindInfo
	KindSuccess
	KindWarning
	KindError
	KindFatal
)

// Stream identifies one of the two process output streams
type Stream int

const (
	Stdout Stream = iota
	Stderr
)

func (s Stream) String() string {
	switch s {
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return "unknown"
	}
}

type kindInfo struct {
	label  string
	color  lipgloss.Color
	stream Stream
}

var kindTable = [...]kindInfo{
	KindDebug:   {"debug", lipgloss.Color("12"), Stderr},
	KindInfo:    {"info", lipgloss.Color("13"), Stdout},
	KindSuccess: {"success", lipgloss.Color("10"), Stdout},
	KindWarning: {"warning", lipgloss.Color("11"), Stderr},
	KindError:   {"error", lipgloss.Color("9"), Stderr},
	KindFatal:   {"fatal", lipgloss.Color("9"), Stderr},
}

// Kinds returns every defined kind, least severe first
func Kinds() []Kind {
	return []Kind{KindDebug, KindInfo, KindSuccess, KindWarning, KindError, KindFatal}
}

func (k Kind) valid() bool {
	return k >= 0 && int(k) < len(kindTable)
}

// String returns the label printed in front of messages of this kind
func (k Kind) String() string {
	if !k.valid() {
		return "unknown"
	}
	return kindTable[k].label
}

// Stream returns the stream messages of this kind are written to.
// Unknown kinds go to stderr.
func (k Kind) Stream() Stream {
	if !k.valid() {
		return Stderr
	}
	return kindTable[k].stream
}

// Terminal reports whether reporting this kind ends the process
func (k Kind) Terminal() bool {
	return k == KindFatal
}

func (k Kind) color() lipgloss.Color {
	if !k.valid() {
		return lipgloss.Color("9")
	}
	return kindTable[k].color
}

// ParseKind parses a kind label (case-insensitive)
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return KindDebug, nil
	case "info":
		return KindInfo, nil
	case "success":
		return KindSuccess, nil
	case "warning", "warn":
		return KindWarning, nil
	case "error", "err":
		return KindError, nil
	case "fatal":
		return KindFatal, nil
	default:
		labels := make([]string, 0, len(kindTable))
		for _, k := range Kinds() {
			labels = append(labels, k.String())
		}
		return 0, fmt.Errorf("invalid kind: %q (must be one of %s)", s, strings.Join(labels, ", "))
	}
}
