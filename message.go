package idioma

import "fmt"

// Message is a kind plus already formatted text. It is built at the call
// site and consumed right away.
type Message struct {
	Kind Kind
	Text string
}

// NewMessage formats text with fmt.Sprintf rules. Without args the format is
// taken verbatim, so a literal "%" survives.
func NewMessage(kind Kind, format string, args ...any) Message {
	return Message{Kind: kind, Text: sprintf(format, args...)}
}

// String returns the unstyled line without its trailing newline
func (m Message) String() string {
	return Format(m.Kind, m.Text)
}

// Format renders "<label>: <text>". An empty text leaves the label alone.
func Format(kind Kind, text string) string {
	return formatLabel(kind.String(), text)
}

func formatLabel(label, text string) string {
	if text == "" {
		return label + ":"
	}
	return label + ": " + text
}

func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
