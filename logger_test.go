package vgcore

import (
	"log/slog"
	"testing"
)

func TestLoggerDefaultsToNonNilNopLogger(t *testing.T) {
	SetLogger(nil) // restore default in case another test changed it
	if Logger() == nil {
		t.Fatal("Logger() should never return nil")
	}
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(nil, nil))
	defer SetLogger(nil)

	SetLogger(custom)
	if Logger() != custom {
		t.Fatal("Logger() should return the just-installed logger")
	}

	SetLogger(nil)
	if Logger() == custom {
		t.Error("SetLogger(nil) should replace the logger, not leave the old one in place")
	}
}

func TestSetLoggerStoresProvidedLogger(t *testing.T) {
	defer SetLogger(nil)
	custom := slog.New(slog.NewTextHandler(nil, nil))
	SetLogger(custom)
	if Logger() != custom {
		t.Error("Logger() should return the custom logger passed to SetLogger")
	}
}
