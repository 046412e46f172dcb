package hilbert_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"deedles.dev/hilbert"
	"github.com/stretchr/testify/require"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := hilbert.Logger()
	require.NotNil(t, l)
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		require.False(t, l.Enabled(context.Background(), level), "default logger enabled for %v", level)
	}
}

func TestSetLogger(t *testing.T) {
	orig := hilbert.Logger()
	t.Cleanup(func() { hilbert.SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	hilbert.SetLogger(custom)
	require.Same(t, custom, hilbert.Logger())

	_, err := hilbert.Build(2, 3, hilbert.Pt(0, 0), hilbert.Up)
	require.Nil(t, err)

	out := buf.String()
	require.True(t, strings.Contains(out, "build curve"), out)
	require.True(t, strings.Contains(out, "using partner orientation"), out)
	require.True(t, strings.Contains(out, "points=6"), out)

	buf.Reset()
	_, err = hilbert.Build(0, 3, hilbert.Pt(0, 0), hilbert.Up)
	require.ErrorIs(t, err, hilbert.ErrInvalidDimensions)
	require.True(t, strings.Contains(buf.String(), "level=WARN msg=\"rejected curve\""), buf.String())
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := hilbert.Logger()
	t.Cleanup(func() { hilbert.SetLogger(orig) })

	hilbert.SetLogger(slog.Default())
	hilbert.SetLogger(nil)

	l := hilbert.Logger()
	require.NotNil(t, l)
	require.False(t, l.Enabled(context.Background(), slog.LevelError))
}
