package artifact

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/crimezones/internal/model"
)

// Format is an artifact serialization
type Format string

const (
	FormatTS   Format = "ts"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts ts, typescript, json, yaml and yml
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ts", "typescript":
		return FormatTS, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown artifact format %q (want ts, json or yaml)", s)
}

// FormatFromPath infers the format from a file extension, defaulting to ts
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTS
}

// Artifact is everything a serializer needs: ordered zones and the reference year
type Artifact struct {
	Year        int              `json:"year" yaml:"year"`
	GeneratedAt time.Time        `json:"generatedAt" yaml:"generatedAt"`
	Source      string           `json:"source,omitempty" yaml:"source,omitempty"`
	RunID       string           `json:"runId,omitempty" yaml:"runId,omitempty"`
	Zones       []model.RiskZone `json:"zones" yaml:"zones"`
}

// Render writes the artifact in the given format
func Render(w io.Writer, a Artifact, f Format) error {
	switch f {
	case FormatTS:
		return renderTS(w, a)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(a); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(a); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown artifact format %q", f)
}
