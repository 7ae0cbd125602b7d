// Package rendering maps a resume document and its settings to HTML.
package rendering

import "fmt"

// TemplateError represents an error parsing or executing the HTML template.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// UnknownStyleError reports a settings.Template value with no registered style.
type UnknownStyleError struct {
	Name string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("unknown template style: %q", e.Name)
}
