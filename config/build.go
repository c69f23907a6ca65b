package config

import (
	"github.com/pkg/errors"

	"github.com/philipp01105/logtree/core"
	"github.com/philipp01105/logtree/dispatch"
	"github.com/philipp01105/logtree/formatter"
	"github.com/philipp01105/logtree/sink"
)

// Builder turns the description into a dispatch builder. Files are opened
// here; the caller still has to Build or SetGlobal it. On error every file
// opened so far is closed again.
func (t *Tree) Builder() (*dispatch.Dispatch, error) {
	d := dispatch.New()

	if t.Level != "" {
		level, err := core.ParseLevel(t.Level)
		if err != nil {
			return nil, err
		}
		d.WithLevel(level)
	}

	for _, o := range t.Levels {
		level, err := core.ParseLevel(o.Level)
		if err != nil {
			return nil, errors.Wrapf(err, "target %s", o.Target)
		}
		d.WithLevelFor(o.Target, level)
	}

	if f := t.formatter(); f != nil {
		d.WithFormatter(f)
	}

	for i := range t.Outputs {
		out := &t.Outputs[i]
		switch out.Type {
		case OutputStdout:
			d.Chain(sink.Stdout())
		case OutputStderr:
			d.Chain(sink.Stderr())
		case OutputFile:
			d.ChainFile(out.Path)
		case OutputDispatch:
			nested, err := out.Tree.Builder()
			if err != nil {
				_ = d.Close()
				return nil, errors.Wrapf(err, "outputs[%d]", i)
			}
			d.Chain(nested)
		default:
			_ = d.Close()
			return nil, errors.Errorf("outputs[%d]: unknown type %q", i, out.Type)
		}
	}

	if err := d.Err(); err != nil {
		_ = d.Close()
		return nil, err
	}
	return d, nil
}

func (t *Tree) formatter() formatter.Formatter {
	base := formatter.Config{IncludeCaller: t.Caller}
	switch t.Format {
	case FormatText:
		return formatter.NewTextFormatter(formatter.TextConfig{Config: base})
	case FormatColor:
		return formatter.NewTextFormatter(formatter.TextConfig{Config: base, Color: true})
	case FormatJSON:
		return formatter.NewJSONFormatter(base)
	default:
		return nil
	}
}

// Install loads the configuration at path, builds the tree and installs
// it as the global logger.
func Install(path string) (*dispatch.Node, error) {
	t, err := Load(path)
	if err != nil {
		return nil, err
	}
	d, err := t.Builder()
	if err != nil {
		return nil, err
	}
	return d.SetGlobal()
}
