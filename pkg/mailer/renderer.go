package mailer

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Renderer substitutes {{placeholder}} tokens in an HTML template with
// per-recipient values. Rendering is a pure function of its inputs: no
// I/O, no shared state beyond the immutable sanitizer policies.
type Renderer struct {
	strict *bluemonday.Policy
	ugc    *bluemonday.Policy
}

// NewRenderer creates a renderer with the default sanitization policies.
func NewRenderer() *Renderer {
	return &Renderer{
		strict: bluemonday.StrictPolicy(),
		ugc:    bluemonday.UGCPolicy(),
	}
}

// Render replaces every occurrence of each placeholder named in values
// with the (sanitized) value. Placeholders not named in values are left
// untouched, and absent values substitute as empty strings, so a template
// never fails per-recipient.
func (r *Renderer) Render(template string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for key, value := range values {
		pairs = append(pairs, "{{"+key+"}}", r.sanitize(key, value))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// Validate reports a malformed template up front. The only malformed
// construct literal substitution can hit is an unterminated placeholder,
// which would corrupt the body identically for every recipient, so it
// fails the whole run instead of degrading silently.
func (r *Renderer) Validate(template string) error {
	rest := template
	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			return nil
		}
		rest = rest[open+2:]
		end := strings.Index(rest, "}}")
		if end < 0 {
			return fmt.Errorf("%w: unterminated placeholder", ErrMalformedTemplate)
		}
		rest = rest[end+2:]
	}
}

// sanitize strips markup from spreadsheet-sourced values before they are
// injected into HTML. custom_message keeps basic user-generated formatting;
// every other field is reduced to escaped plain text.
func (r *Renderer) sanitize(key, value string) string {
	if key == "custom_message" {
		return r.ugc.Sanitize(value)
	}
	return r.strict.Sanitize(value)
}
