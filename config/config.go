package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	// EnvPrefix prefixes every environment variable the loader reads
	EnvPrefix = "LOGTREE_"
	// PathEnvVar names a config file when Load is called with an empty path
	PathEnvVar = EnvPrefix + "CONFIG"
)

// Output types
const (
	OutputStdout   = "stdout"
	OutputStderr   = "stderr"
	OutputFile     = "file"
	OutputDispatch = "dispatch"
)

// Formats
const (
	FormatText  = "text"
	FormatColor = "color"
	FormatJSON  = "json"
	FormatNone  = "none"
)

// Tree describes one dispatch node and, through its outputs, everything
// below it.
type Tree struct {
	Level   string          `koanf:"level" validate:"omitempty,loglevel"`
	Format  string          `koanf:"format" validate:"omitempty,oneof=text color json none"`
	Caller  bool            `koanf:"caller"`
	Levels  []LevelOverride `koanf:"levels,omitempty" validate:"dive"`
	Outputs []Output        `koanf:"outputs,omitempty" validate:"dive"`
}

// LevelOverride sets the level for one target. Overrides are a list, not
// a map, because targets contain the key delimiter.
type LevelOverride struct {
	Target string `koanf:"target" validate:"required"`
	Level  string `koanf:"level" validate:"required,loglevel"`
}

// Output is one child of a node. Outputs of type dispatch carry their own
// level, format, overrides and outputs.
type Output struct {
	Type string `koanf:"type" validate:"required,oneof=stdout stderr file dispatch"`
	Path string `koanf:"path" validate:"required_if=Type file"`
	Tree `koanf:",squash"`
}

// defaultTree is loaded before the file and the environment
func defaultTree() *Tree {
	return &Tree{
		Level:  "info",
		Format: FormatText,
	}
}

// envKeys maps environment variables, without prefix, to config keys
var envKeys = map[string]string{
	"level":  "level",
	"format": "format",
	"caller": "caller",
}

func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return envKeys[key]
}

// Load reads the tree description. Values are layered: built-in defaults,
// then the YAML file at path (or at $LOGTREE_CONFIG when path is empty),
// then LOGTREE_LEVEL, LOGTREE_FORMAT and LOGTREE_CALLER. Without any
// output the tree writes to stdout.
func Load(path string) (*Tree, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultTree(), "koanf"), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	if path == "" {
		path = os.Getenv(PathEnvVar)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load config file %s", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load environment variables")
	}

	t := &Tree{}
	if err := k.Unmarshal("", t); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal configuration")
	}
	if len(t.Outputs) == 0 {
		t.Outputs = []Output{{Type: OutputStdout}}
	}

	if err := t.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return t, nil
}
