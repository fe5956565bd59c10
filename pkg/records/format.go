package records

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/boxgrid/pkg/errors"
)

// Format is an input file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatXML  Format = "xml"
	FormatCSV  Format = "csv"
)

var extensions = map[string]Format{
	".json": FormatJSON,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".toml": FormatTOML,
	".xml":  FormatXML,
	".csv":  FormatCSV,
}

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatTOML, FormatXML, FormatCSV}
}

// ParseFormat accepts a format name or a file extension.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if f, ok := extensions["."+strings.TrimPrefix(name, ".")]; ok {
		return f, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown input format %q", s).
		WithDetail("format", s)
}

// DetectFormat picks the format from a path's extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "cannot tell the format of %q, use --format", path).
		WithDetail("path", path)
}
