package benchmark

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logtree/core"
	"github.com/philipp01105/logtree/dispatch"
	"github.com/philipp01105/logtree/formatter"
)

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework (io.Discard)
// ---------------------------------------------------------------------------

// newTree returns a single node writing JSON to w
func newTree(w io.Writer, level core.Level) *dispatch.Node {
	node, err := dispatch.New().
		WithFormatter(formatter.NewJSONFormatter(formatter.Config{})).
		WithLevel(level).
		Chain(w).
		Build()
	if err != nil {
		panic(err)
	}
	return node
}

// logText routes one record the way the logger package does
func logText(node *dispatch.Node, level core.Level, msg string) {
	rec := core.GetRecord()
	rec.Level = level
	rec.Target = "bench"
	rec.SetText(msg)
	node.Log(rec)
	core.PutRecord(rec)
}

func logFormat(node *dispatch.Node, level core.Level, format string, args ...any) {
	rec := core.GetRecord()
	rec.Level = level
	rec.Target = "bench"
	rec.SetMessage(format, args...)
	node.Log(rec)
	core.PutRecord(rec)
}

func newZapLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}

func newSlogLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func newLogrusLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(level)
	return l
}

func newZerologLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger().Level(level)
}

// ---------------------------------------------------------------------------
// Scenario 1 – Info message
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Info(b *testing.B) {
	b.Run("logtree", func(b *testing.B) {
		node := newTree(io.Discard, core.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			logText(node, core.InfoLevel, "info message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(io.Discard, zap.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(io.Discard, slog.LevelDebug)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(io.Discard, logrus.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(io.Discard, zerolog.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("info message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – printf-style message
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Formatted(b *testing.B) {
	b.Run("logtree", func(b *testing.B) {
		node := newTree(io.Discard, core.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			logFormat(node, core.InfoLevel, "request %s took %dms", "/api/users", 42)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(io.Discard, zap.DebugLevel).Sugar()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("request %s took %dms", "/api/users", 42)
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(io.Discard, logrus.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("request %s took %dms", "/api/users", 42)
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(io.Discard, zerolog.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msgf("request %s took %dms", "/api/users", 42)
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 – Disabled level (measure level-check overhead)
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_DisabledLevel(b *testing.B) {
	b.Run("logtree", func(b *testing.B) {
		node := newTree(io.Discard, core.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			logFormat(node, core.DebugLevel, "should be skipped %d", i)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(io.Discard, zap.ErrorLevel).Sugar()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debugf("should be skipped %d", i)
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(io.Discard, slog.LevelError)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("should be skipped")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(io.Discard, logrus.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debugf("should be skipped %d", i)
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(io.Discard, zerolog.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug().Msgf("should be skipped %d", i)
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 4 – Fan-out to three destinations
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_FanOut(b *testing.B) {
	b.Run("logtree", func(b *testing.B) {
		node, _ := dispatch.New().
			WithFormatter(formatter.NewJSONFormatter(formatter.Config{})).
			Chain(io.Discard).
			Chain(io.Discard).
			Chain(io.Discard).
			Build()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			logText(node, core.InfoLevel, "fan-out message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		tee := zapcore.NewTee(
			zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.InfoLevel),
			zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.InfoLevel),
			zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.InfoLevel),
		)
		l := zap.New(tee)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("fan-out message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(zerolog.MultiLevelWriter(io.Discard, io.Discard, io.Discard), zerolog.InfoLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("fan-out message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 5 – Parallel / high-concurrency logging
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Parallel(b *testing.B) {
	b.Run("logtree", func(b *testing.B) {
		node := newTree(io.Discard, core.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				logText(node, core.InfoLevel, "parallel message")
			}
		})
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(io.Discard, zap.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel message")
			}
		})
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(io.Discard, slog.LevelDebug)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel message")
			}
		})
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(io.Discard, logrus.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel message")
			}
		})
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(io.Discard, zerolog.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info().Msg("parallel message")
			}
		})
	})
}

// ---------------------------------------------------------------------------
// Scenario 6 – File output (real I/O, equal conditions)
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_FileOutput(b *testing.B) {
	b.Run("logtree", func(b *testing.B) {
		f, err := os.CreateTemp(b.TempDir(), "bench-logtree-*.log")
		if err != nil {
			b.Fatal(err)
		}
		node := newTree(f, core.InfoLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			logText(node, core.InfoLevel, "file log")
		}
		b.StopTimer()
		node.Close()
	})

	b.Run("zap", func(b *testing.B) {
		f, err := os.CreateTemp(b.TempDir(), "bench-zap-*.log")
		if err != nil {
			b.Fatal(err)
		}
		l := newZapLogger(f, zap.InfoLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("file log")
		}
		b.StopTimer()
		l.Sync()
		f.Close()
	})

	b.Run("slog", func(b *testing.B) {
		f, err := os.CreateTemp(b.TempDir(), "bench-slog-*.log")
		if err != nil {
			b.Fatal(err)
		}
		l := newSlogLogger(f, slog.LevelInfo)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("file log")
		}
		b.StopTimer()
		f.Close()
	})

	b.Run("logrus", func(b *testing.B) {
		f, err := os.CreateTemp(b.TempDir(), "bench-logrus-*.log")
		if err != nil {
			b.Fatal(err)
		}
		l := newLogrusLogger(f, logrus.InfoLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("file log")
		}
		b.StopTimer()
		f.Close()
	})

	b.Run("zerolog", func(b *testing.B) {
		f, err := os.CreateTemp(b.TempDir(), "bench-zerolog-*.log")
		if err != nil {
			b.Fatal(err)
		}
		l := newZerologLogger(f, zerolog.InfoLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("file log")
		}
		b.StopTimer()
		f.Close()
	})
}
