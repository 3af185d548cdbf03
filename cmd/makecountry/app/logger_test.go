package app

import "testing"

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{name: "default", config: Config{}, want: "info"},
		{name: "verbose", config: Config{Verbose: true}, want: "debug"},
		{name: "quiet", config: Config{Quiet: true}, want: "warn"},
		{name: "verbose and quiet", config: Config{Verbose: true, Quiet: true}, want: "warn"},
		{name: "explicit level wins", config: Config{LogLevel: "error", Verbose: true}, want: "error"},
		{name: "invalid level", config: Config{LogLevel: "loud"}, want: "info"},
		{name: "trace", config: Config{LogLevel: "trace"}, want: "trace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := determineLogLevel(&tt.config); got != tt.want {
				t.Errorf("determineLogLevel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger(&Config{LogLevel: "warn", LogFormat: "json", LogOutput: "stderr"})
	if got := logger.GetLevel().String(); got != "warn" {
		t.Errorf("logger level = %q, want %q", got, "warn")
	}
}
