package machine

import (
	"errors"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if !cfg.UsePrefilter {
		t.Error("prefilter should be enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"nil logger", DefaultConfig().WithLogger(nil), false},
		{"zero literals", DefaultConfig().WithMaxPrefilterLiterals(0), false},
		{"zero len", DefaultConfig().WithMaxPrefilterLen(0), false},
		{"len too large", DefaultConfig().WithMaxPrefilterLen(17), false},
		{"len at bound", DefaultConfig().WithMaxPrefilterLen(16), true},
		{"prefilter off", DefaultConfig().WithPrefilter(false), true},
		{"gou logger", DefaultConfig().WithLogger(NewGouLogger()), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigSettersDoNotMutateReceiver(t *testing.T) {
	base := DefaultConfig()
	_ = base.WithPrefilter(false).WithMaxPrefilterLen(5)
	if !base.UsePrefilter || base.MaxPrefilterLen != 3 {
		t.Error("WithX setters must return a copy")
	}
}
