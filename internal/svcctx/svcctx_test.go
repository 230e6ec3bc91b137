package svcctx

import (
	"context"
	"log/slog"
	"testing"

	"github.com/jackzampolin/tocscan/internal/home"
)

func TestWithServices_RoundTrip(t *testing.T) {
	logger := slog.Default()
	dir, err := home.New("/tmp/svcctx-test")
	if err != nil {
		t.Fatalf("home.New() error = %v", err)
	}

	ctx := WithServices(context.Background(), &Services{Logger: logger, Home: dir})

	if got := LoggerFrom(ctx); got != logger {
		t.Error("LoggerFrom() did not return the attached logger")
	}
	if got := HomeFrom(ctx); got != dir {
		t.Error("HomeFrom() did not return the attached home dir")
	}
}

func TestLoggerFrom_FallsBackToDefault(t *testing.T) {
	if got := LoggerFrom(context.Background()); got == nil {
		t.Error("LoggerFrom() with no services attached returned nil")
	}
}

func TestHomeFrom_NilWhenUnattached(t *testing.T) {
	if got := HomeFrom(context.Background()); got != nil {
		t.Error("HomeFrom() with no services attached should return nil")
	}
}
