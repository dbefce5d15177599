package cli

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/showorder/internal/config"
	"github.com/danieljhkim/showorder/internal/engine"
)

// render presents a result in the given format. Text is the running order
// alone, one "Name: actor actor" line per unit.
func render(format string, result *engine.OrderResult) ([]byte, error) {
	switch format {
	case config.FormatText:
		if result.Order == nil {
			return nil, nil
		}
		return []byte(strings.Join(result.Order.Lines(), "\n") + "\n"), nil
	case config.FormatJSON:
		var buf bytes.Buffer
		if err := outputJSON(&buf, result); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case config.FormatYAML:
		return yaml.Marshal(result)
	}
	return nil, fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
}
