package mjml

import (
	"context"
	"errors"
	"fmt"
	"strings"

	mjmlgo "github.com/Boostport/mjml-go"
)

// ErrEmptyTemplate is returned when there is nothing to compile
var ErrEmptyTemplate = errors.New("mjml template is empty")

// ToHTML compiles an MJML document into responsive email HTML
func ToHTML(ctx context.Context, source string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", ErrEmptyTemplate
	}
	if !strings.Contains(source, "<mjml") {
		return "", fmt.Errorf("mjml template must start with an <mjml> root element")
	}

	html, err := mjmlgo.ToHTML(ctx, source, mjmlgo.WithMinify(true))
	if err != nil {
		var compileErr mjmlgo.Error
		if errors.As(err, &compileErr) && len(compileErr.Details) > 0 {
			d := compileErr.Details[0]
			return "", fmt.Errorf("failed to compile mjml: %s (line %d, <%s>)", d.Message, d.Line, d.TagName)
		}
		return "", fmt.Errorf("failed to compile mjml: %w", err)
	}
	return html, nil
}
