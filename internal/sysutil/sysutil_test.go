package sysutil

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestSetLogLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
		"WARN":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"fatal":   zerolog.FatalLevel,
		"panic":   zerolog.PanicLevel,
		"bogus":   zerolog.InfoLevel,
		" info ":  zerolog.InfoLevel,
	}

	for in, want := range cases {
		SetLogLevel(in)
		if got := zerolog.GlobalLevel(); got != want {
			t.Fatalf("SetLogLevel(%q): level = %v, want %v", in, got, want)
		}
	}
	SetLogLevel("info") // restore
}

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "  ", "x", "y"); got != "x" {
		t.Fatalf("FirstNonEmpty = %q", got)
	}
	if got := FirstNonEmpty("", "   "); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
	if got := FirstNonEmpty(); got != "" {
		t.Fatalf("expected empty result for no args, got %q", got)
	}
}
