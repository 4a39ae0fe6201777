package xlog

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestConsoleCore(t *testing.T) {
	w := &testMemOutWriter{data: make([]byte, 0, 4096)}
	setOutWriterByType(testMemAsOut, zapcore.AddSync(w))

	lvlEnabler := zap.NewAtomicLevelAt(LogLevelDebug.zapLevel())
	cc := newConsoleCore(
		lvlEnabler,
		JSON,
		testMemAsOut,
		zapcore.CapitalLevelEncoder,
		zapcore.ISO8601TimeEncoder,
	)
	require.NotNil(t, cc.outEncoder())
	require.NotNil(t, cc.writeSyncer())
	require.NotNil(t, cc.levelEncoder())
	require.NotNil(t, cc.timeEncoder())

	require.True(t, cc.Enabled(zapcore.DebugLevel))
	lvlEnabler.SetLevel(zapcore.ErrorLevel)
	require.False(t, cc.Enabled(zapcore.DebugLevel))
	require.False(t, cc.Enabled(zapcore.WarnLevel))
	require.True(t, cc.Enabled(zapcore.ErrorLevel))
	require.Nil(t, cc.Check(zapcore.Entry{Level: zapcore.InfoLevel}, nil))
	lvlEnabler.SetLevel(zapcore.DebugLevel)

	require.NotNil(t, cc.With([]zap.Field{zap.String("key", "value")}))

	ent := cc.Check(zapcore.Entry{Level: zapcore.DebugLevel, Message: "console"}, nil)
	require.NotNil(t, ent)
	require.NoError(t, cc.Write(ent.Entry, []zap.Field{zap.String("key", "value")}))
	require.NoError(t, cc.Sync())
	entries := w.entries(t)
	require.Len(t, entries, 1)
	require.Equal(t, "console", entries[0]["msg"])
	require.Equal(t, "value", entries[0]["key"])

	wrapped, err := WrapCore(cc, componentCoreEncoderCfg)
	require.NoError(t, err)
	require.True(t, wrapped.Enabled(zapcore.DebugLevel))
	lvlEnabler.SetLevel(zapcore.ErrorLevel)
	require.False(t, wrapped.Enabled(zapcore.DebugLevel))

	_, err = WrapCore(cc, nil)
	require.Error(t, err)
}

func TestMultiCore(t *testing.T) {
	w := &testMemOutWriter{data: make([]byte, 0, 4096)}
	setOutWriterByType(testMemAsOut, zapcore.AddSync(w))

	tee := make(xLogMultiCore, 0, 2)
	require.Nil(t, tee.writeSyncer())
	require.Nil(t, tee.levelEncoder())
	require.Nil(t, tee.timeEncoder())
	require.Nil(t, tee.outEncoder())
	require.False(t, tee.Enabled(zapcore.ErrorLevel))

	debugLvl := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	warnLvl := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	tee = append(tee,
		newConsoleCore(debugLvl, JSON, testMemAsOut, zapcore.CapitalLevelEncoder, zapcore.ISO8601TimeEncoder),
		newConsoleCore(warnLvl, JSON, testMemAsOut, zapcore.CapitalLevelEncoder, zapcore.ISO8601TimeEncoder),
	)
	require.Equal(t, zapcore.DebugLevel, tee.Level())
	require.True(t, tee.Enabled(zapcore.DebugLevel))

	l := zap.New(XLogTeeCore(tee...))
	l.Info("only first")
	l.Warn("both")
	require.NoError(t, tee.Sync())
	entries := w.entries(t)
	require.Len(t, entries, 3)
	require.Equal(t, "only first", entries[0]["msg"])
	require.Equal(t, "both", entries[1]["msg"])
	require.Equal(t, "both", entries[2]["msg"])

	w.Reset()
	wrapped, err := WrapCores(tee, componentCoreEncoderCfg)
	require.NoError(t, err)
	zap.New(wrapped).Named("Wrapped").Warn("component")
	entries = w.entries(t)
	require.Len(t, entries, 2)
	require.Equal(t, "Wrapped", entries[0]["component"])
	require.NotContains(t, entries[0], "callAt")

	require.Panics(t, func() {
		wrapComponentCore(zapcore.NewNopCore())
	})
	require.Panics(t, func() {
		wrapComponentCore(nil)
	})
}
