package alert

import (
	"bytes"
	"text/template"

	"github.com/Masterminds/sprig"
)

const DefaultMessageTemplate = "Error while executing: {{ .Message }}"

type MessageData struct {
	Message string
}

// RenderMessage renders the alert text. Custom templates get the sprig
// function set.
func RenderMessage(tmplText string, data MessageData) (string, error) {
	if tmplText == "" {
		tmplText = DefaultMessageTemplate
	}

	tmpl, err := template.New("alert").Funcs(sprig.TxtFuncMap()).Parse(tmplText)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
