package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/boxgrid/pkg/errors"
	"github.com/arthur-debert/boxgrid/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables that override configuration. A
// double underscore separates nested keys.
const EnvPrefix = "BOXGRID_"

// searchPaths are tried, in order, under the XDG config directories when no
// file is given.
var searchPaths = []string{
	"boxgrid/table.toml",
	"boxgrid/table.yaml",
	"boxgrid/table.yml",
}

// Options controls where configuration comes from.
type Options struct {
	// Path is an explicit config file. When empty the XDG config
	// directories are searched.
	Path string
	// Overrides are applied last, keyed like the file ("width", "padding").
	Overrides map[string]interface{}
}

// Load merges every configuration layer into a TableSpec.
func Load(opts Options) (*TableSpec, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	path := opts.Path
	if path == "" {
		path = FindConfigFile()
	} else if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config %s", path).
			WithDetail("path", path)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		log.Debug().Str("path", path).Msg("loaded config file")
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var spec TableSpec
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &spec,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &spec, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	log.Debug().
		Int("columns", len(spec.Columns)).
		Int("groups", len(spec.Groups)).
		Msg("configuration loaded")
	return &spec, nil
}

// envKey maps BOXGRID_VERTICAL_ALIGN to vertical_align and
// BOXGRID_A__B to a.b.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// FindConfigFile returns the first table config in the XDG config
// directories, or "" when there is none.
func FindConfigFile() string {
	xdg.Reload()
	for _, rel := range searchPaths {
		if path, err := xdg.SearchConfigFile(rel); err == nil {
			return path
		}
	}
	return ""
}
