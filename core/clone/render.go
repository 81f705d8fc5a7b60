package clone

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const payloadIndent = "    "

// RenderPayload renders a payload as YAML with keys sorted, for dry-run output.
func RenderPayload(payload map[string]any) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(payload); err != nil {
		return "", errors.Wrap(err, "failed to render payload")
	}
	if err := enc.Close(); err != nil {
		return "", errors.Wrap(err, "failed to render payload")
	}
	return buf.String(), nil
}

func writePayload(w io.Writer, payload map[string]any) error {
	rendered, err := RenderPayload(payload)
	if err != nil {
		return err
	}
	var out strings.Builder
	for _, line := range strings.Split(strings.TrimRight(rendered, "\n"), "\n") {
		out.WriteString(payloadIndent)
		out.WriteString(line)
		out.WriteString("\n")
	}
	_, err = io.WriteString(w, out.String())
	return err
}
