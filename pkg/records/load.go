package records

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/arthur-debert/boxgrid/pkg/errors"
	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ListKey is the key holding the records when the top level of a document is
// a mapping rather than a list.
const ListKey = "records"

// Load reads every record from r.
func Load(r io.Reader, format Format) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInputRead, "failed to read input")
	}

	switch format {
	case FormatJSON, FormatYAML:
		return decodeYAML(data, format)
	case FormatTOML:
		return decodeTOML(data)
	case FormatXML:
		return decodeXML(data)
	case FormatCSV:
		return decodeCSV(data)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown input format %q", format)
	}
}

// LoadFile reads records from path. An empty format is detected from the
// extension.
func LoadFile(path string, format Format) ([]Record, error) {
	if format == "" {
		f, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = f
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputRead, "failed to open %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	recs, err := Load(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "failed to load %s", path).
			WithDetail("path", path)
	}
	return recs, nil
}

func parseError(err error, format Format) error {
	return errors.Wrapf(err, errors.ErrInputParse, "invalid %s input", format).
		WithDetail("format", string(format))
}

// decodeYAML walks the node tree instead of decoding into maps, which would
// lose key order. JSON documents are valid YAML.
func decodeYAML(data []byte, format Format) ([]Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, parseError(err, format)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	list := doc.Content[0]
	if list.Kind == yaml.MappingNode {
		list = mappingValue(list, ListKey)
		if list == nil {
			return nil, parseError(fmt.Errorf("mapping has no %q list", ListKey), format)
		}
	}
	if list.Kind != yaml.SequenceNode {
		return nil, parseError(fmt.Errorf("expected a list of records"), format)
	}

	out := make([]Record, 0, len(list.Content))
	for i, item := range list.Content {
		if item.Kind != yaml.MappingNode {
			return nil, parseError(fmt.Errorf("record %d is not a mapping", i), format)
		}
		var rec Record
		for j := 0; j+1 < len(item.Content); j += 2 {
			var v any
			if err := item.Content[j+1].Decode(&v); err != nil {
				return nil, parseError(err, format)
			}
			rec.Set(item.Content[j].Value, v)
		}
		out = append(out, rec)
	}
	return out, nil
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// decodeTOML reads an array of tables under ListKey. TOML tables decode to
// maps, so keys come out sorted.
func decodeTOML(data []byte) ([]Record, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, parseError(err, FormatTOML)
	}
	raw, ok := doc[ListKey]
	if !ok {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, parseError(fmt.Errorf("%q is not an array of tables", ListKey), FormatTOML)
	}

	out := make([]Record, 0, len(list))
	for i, item := range list {
		table, ok := item.(map[string]any)
		if !ok {
			return nil, parseError(fmt.Errorf("record %d is not a table", i), FormatTOML)
		}
		keys := make([]string, 0, len(table))
		for k := range table {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var rec Record
		for _, k := range keys {
			rec.Set(k, table[k])
		}
		out = append(out, rec)
	}
	return out, nil
}

// decodeXML treats each child of the root element as a record. Attributes
// come first, then child elements; values stay strings.
func decodeXML(data []byte) ([]Record, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, parseError(err, FormatXML)
	}
	root := doc.Root()
	if root == nil {
		return nil, nil
	}

	var out []Record
	for _, el := range root.ChildElements() {
		var rec Record
		for _, attr := range el.Attr {
			rec.Set(attr.Key, attr.Value)
		}
		for _, child := range el.ChildElements() {
			rec.Set(child.Tag, strings.TrimSpace(child.Text()))
		}
		if rec.Len() == 0 {
			if text := strings.TrimSpace(el.Text()); text != "" {
				rec.Set(el.Tag, text)
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

// decodeCSV uses the first row as field names. Short rows leave their
// trailing fields unset.
func decodeCSV(data []byte) ([]Record, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, parseError(err, FormatCSV)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	out := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var rec Record
		for i, name := range header {
			if i < len(row) {
				rec.Set(name, row[i])
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

// LoadJSON reads a JSON array of objects, or an object with a records array.
func LoadJSON(r io.Reader) ([]Record, error) { return Load(r, FormatJSON) }

// LoadYAML reads a YAML sequence of mappings, or a mapping with a records
// sequence.
func LoadYAML(r io.Reader) ([]Record, error) { return Load(r, FormatYAML) }

// LoadTOML reads the array of tables under records.
func LoadTOML(r io.Reader) ([]Record, error) { return Load(r, FormatTOML) }

// LoadXML reads the children of the root element.
func LoadXML(r io.Reader) ([]Record, error) { return Load(r, FormatXML) }

// LoadCSV reads a header row followed by data rows.
func LoadCSV(r io.Reader) ([]Record, error) { return Load(r, FormatCSV) }
