package machine

import (
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LevelFatalError, "fatal"},
		{Level(12), "level(12)"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLogfSkipsNopAndNil(t *testing.T) {
	// must not panic
	logf(nil, LevelError, "x %d", 1)
	logf(NopLogger{}, LevelError, "x %d", 1)

	rec := &recordingLogger{}
	logf(rec, LevelWarn, "value=%d", 42)
	if len(rec.msgs) != 1 || rec.msgs[0] != "value=42" || rec.lvls[0] != LevelWarn {
		t.Errorf("logf recorded %v %v", rec.lvls, rec.msgs)
	}
}

func TestGouLoggerAllLevels(t *testing.T) {
	SetupGouLogging("debug")
	l := NewGouLogger()
	for _, lvl := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatalError} {
		l.Log(lvl, "gou logger smoke test at "+lvl.String())
	}
}
