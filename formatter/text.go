package formatter

import (
	"bytes"
	"strconv"
	"time"

	"github.com/fatih/color"

	"github.com/philipp01105/logtree/core"
)

// TextFormatter formats messages as human-readable text:
//
//	2026-01-15T12:00:00Z [INFO] [github.com/acme/app] message
type TextFormatter struct {
	Config
	brackets   [core.OffLevel + 1]string
	omitTarget bool
}

// TextConfig extends Config with text specific options
type TextConfig struct {
	Config
	// Color paints the level tag. See IsTerminal for auto-detection.
	Color bool
	// OmitTarget drops the [target] tag
	OmitTarget bool
}

var levelColors = [...]color.Attribute{
	core.TraceLevel: color.FgHiBlack,
	core.DebugLevel: color.FgBlue,
	core.InfoLevel:  color.FgGreen,
	core.WarnLevel:  color.FgYellow,
	core.ErrorLevel: color.FgRed,
	core.OffLevel:   color.Reset,
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg TextConfig) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	f := &TextFormatter{Config: cfg.Config}

	// pre-formatted level strings to avoid multiple WriteString calls
	for l := core.TraceLevel; l <= core.OffLevel; l++ {
		tag := "[" + l.String() + "]"
		if cfg.Color {
			c := color.New(levelColors[l])
			c.EnableColor()
			tag = c.Sprint(tag)
		}
		f.brackets[l] = " " + tag + " "
	}
	f.omitTarget = cfg.OmitTarget
	return f
}

// Format implements Formatter
func (f *TextFormatter) Format(buf *bytes.Buffer, message string, rec *core.Record) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	if rec.Level >= core.TraceLevel && rec.Level <= core.OffLevel {
		buf.WriteString(f.brackets[rec.Level])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	if !f.omitTarget && rec.Target != "" {
		buf.WriteByte('[')
		buf.WriteString(rec.Target)
		buf.WriteString("] ")
	}

	if f.IncludeCaller && rec.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(rec.Caller.ShortFile)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(rec.Caller.Line), 10))
		buf.WriteString("] ")
	}

	buf.WriteString(message)
}
