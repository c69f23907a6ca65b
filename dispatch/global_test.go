package dispatch

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/philipp01105/logtree/core"
	"github.com/philipp01105/logtree/formatter"
	"github.com/philipp01105/logtree/logger"
)

// The global slot can only be filled once per process, so this is the only
// test in the package that installs a tree.
func TestSetGlobal_Once(t *testing.T) {
	var first, second bytes.Buffer

	node, err := New().
		WithLevel(core.WarnLevel).
		WithLevelFor("db", core.DebugLevel).
		WithFormatter(formatter.Prefix("first: ")).
		Chain(&first).
		SetGlobal()
	if err != nil {
		t.Fatalf("first SetGlobal() error = %v", err)
	}
	if logger.Installed() != logger.Log(node) {
		t.Fatal("installed logger is not the built node")
	}

	other, err := New().Chain(&second).SetGlobal()
	if err == nil {
		t.Fatal("second SetGlobal() succeeded")
	}
	var initErr *InitError
	if !errors.As(err, &initErr) || initErr.Op != OpInstall {
		t.Errorf("error = %v, want an install InitError", err)
	}
	if !errors.Is(err, ErrAlreadyInstalled) {
		t.Errorf("error = %v does not wrap ErrAlreadyInstalled", err)
	}
	if other == nil {
		t.Fatal("second SetGlobal() did not return its node")
	}

	logger.For("app").Warn("after")
	logger.For("app").Info("hidden")

	// slog records naming their own target get that target's level.
	sl := slog.New(logger.NewSlogHandler())
	sl.Debug("query", "target", "db")
	sl.Debug("hidden")

	if got := first.String(); !strings.Contains(got, "first: after") || !strings.Contains(got, "first: query") || strings.Contains(got, "hidden") {
		t.Errorf("first tree got %q", got)
	}
	if second.Len() != 0 {
		t.Errorf("second tree got %q", second.String())
	}

	// The rejected tree still works when used directly.
	other.Log(core.NewRecord(core.InfoLevel, "app", "direct"))
	if second.String() != "direct\n" {
		t.Errorf("second tree direct use got %q", second.String())
	}
}
