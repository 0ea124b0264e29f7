package posixre

import (
	"bytes"
	"io"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfigValidateRejectsBadFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"zero max pattern length", func(c *Config) { c.MaxPatternLength = 0 }, "MaxPatternLength"},
		{"zero max repeat bound", func(c *Config) { c.MaxRepeatBound = 0 }, "MaxRepeatBound"},
		{"negative optimize passes", func(c *Config) { c.MaxOptimizePasses = -1 }, "MaxOptimizePasses"},
		{"too many optimize passes", func(c *Config) { c.MaxOptimizePasses = 65 }, "MaxOptimizePasses"},
	}
	for _, tt := range tests {
		c := DefaultConfig()
		tt.mutate(&c)
		err := c.Validate()
		var cerr *ConfigError
		if err == nil {
			t.Errorf("%s: Validate() = nil, want an error", tt.name)
			continue
		}
		if !asConfigError(err, &cerr) {
			t.Errorf("%s: Validate() = %v, want a *ConfigError", tt.name, err)
			continue
		}
		if cerr.Field != tt.wantErr {
			t.Errorf("%s: Field = %q, want %q", tt.name, cerr.Field, tt.wantErr)
		}
	}
}

func asConfigError(err error, target **ConfigError) bool {
	if ce, ok := err.(*ConfigError); ok {
		*target = ce
		return true
	}
	return false
}

func TestConfigDebugWriterFallsBackToDiscard(t *testing.T) {
	c := Config{}
	if c.debugWriter() != io.Discard {
		t.Error("zero-value Config.debugWriter() should be io.Discard")
	}

	var buf bytes.Buffer
	c.DebugWriter = &buf
	if c.debugWriter() != &buf {
		t.Error("Config.debugWriter() should return the configured writer")
	}
}
