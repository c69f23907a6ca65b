package formatter

import (
	"bytes"
	"strconv"
	"time"

	"github.com/philipp01105/logtree/core"
)

// JSONFormatter formats messages as one JSON object per line. The
// trailing newline is left to the sink.
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{Config: cfg}
}

// Format implements Formatter. It builds JSON manually into the buffer
// without allocations.
func (f *JSONFormatter) Format(buf *bytes.Buffer, message string, rec *core.Record) {
	buf.WriteByte('{')

	buf.WriteString(`"time":"`)
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte('"')

	buf.WriteString(`,"level":"`)
	buf.WriteString(rec.Level.String())
	buf.WriteByte('"')

	if rec.Target != "" {
		buf.WriteString(`,"target":"`)
		appendJSONString(buf, rec.Target)
		buf.WriteByte('"')
	}

	buf.WriteString(`,"message":"`)
	appendJSONString(buf, message)
	buf.WriteByte('"')

	if f.IncludeCaller && rec.Caller.Defined {
		buf.WriteString(`,"caller":{"file":"`)
		appendJSONString(buf, rec.Caller.ShortFile)
		buf.WriteString(`","line":`)
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(rec.Caller.Line), 10))
		if rec.Caller.Function != "" {
			buf.WriteString(`,"function":"`)
			appendJSONString(buf, rec.Caller.Function)
			buf.WriteByte('"')
		}
		buf.WriteByte('}')
	}

	buf.WriteByte('}')
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
