package logger

import (
	"context"
	"testing"
)

func TestFatalPanicsWithFatalError(t *testing.T) {
	defer func() {
		if _, ok := recover().(FatalError); !ok {
			t.Fatal("Expected Fatal to panic with FatalError")
		}
	}()
	Fatal(context.Background(), "unexpected internal error: %s", "details")
}

func TestFatalNoTracePanicsWithFatalError(t *testing.T) {
	defer func() {
		if _, ok := recover().(FatalError); !ok {
			t.Fatal("Expected FatalNoTrace to panic with FatalError")
		}
	}()
	FatalNoTrace(context.Background(), "source not found")
}

func TestSetLevelCapsFileLevel(t *testing.T) {
	defer SetLevel(LevelNotice)

	SetLevel(LevelDebug)
	if LevelVar.Level() != LevelDebug {
		t.Errorf("Expected console level %v, got %v", LevelDebug, LevelVar.Level())
	}
	if FileLevelVar.Level() != LevelDebug {
		t.Errorf("Expected file level to follow debug, got %v", FileLevelVar.Level())
	}

	SetLevel(LevelNotice)
	if FileLevelVar.Level() != LevelInfo {
		t.Errorf("Expected file level capped at info, got %v", FileLevelVar.Level())
	}
}
