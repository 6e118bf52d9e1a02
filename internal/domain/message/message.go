package message

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/validator"
)

// Severity tells the UI how to present a Message.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Message is plain text the core hands to the UI.
type Message struct {
	Severity Severity `json:"severity"`
	Caption  string   `json:"caption,omitempty"`
	Text     string   `json:"text"`
}

func (m Message) String() string {
	if m.Caption == "" {
		return fmt.Sprintf("[%s] %s", m.Severity, m.Text)
	}
	return fmt.Sprintf("[%s] %s: %s", m.Severity, m.Caption, m.Text)
}

func Info(caption, text string) Message {
	return Message{Severity: SeverityInfo, Caption: caption, Text: text}
}

func Warning(caption, text string) Message {
	return Message{Severity: SeverityWarning, Caption: caption, Text: text}
}

func Error(caption, text string) Message {
	return Message{Severity: SeverityError, Caption: caption, Text: text}
}

// Captioner is implemented by errors that carry their own caption.
type Captioner interface {
	Caption() string
}

// FromError classifies err. Validation failures become warnings carrying
// the first rejection; anything else becomes an error.
func FromError(err error) Message {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		if first, ok := errs.First(); ok {
			return Warning(FieldCaption(first.Field), first.Message)
		}
	}
	var single validator.ValidationError
	if errors.As(err, &single) {
		return Warning(FieldCaption(single.Field), single.Message)
	}

	caption := "Operation failed"
	var c Captioner
	if errors.As(err, &c) {
		caption = c.Caption()
	}
	return Error(caption, err.Error())
}

// FieldCaption turns "minimum_salary" into "Minimum salary not valid".
func FieldCaption(field string) string {
	if field == "" {
		return "Input not valid"
	}
	words := strings.ReplaceAll(field, "_", " ")
	return strings.ToUpper(words[:1]) + words[1:] + " not valid"
}
