/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jplu/urlkit/internal/logger"
)

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment, "unknown"} {
		t.Run(env, func(t *testing.T) {
			require.NoError(t, logger.Setup(env))
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestNew_Levels(t *testing.T) {
	dev, err := logger.New(logger.DevelopmentEnvironment)
	require.NoError(t, err)
	require.True(t, dev.Core().Enabled(zapcore.DebugLevel))

	prod, err := logger.New(logger.ProductionEnvironment)
	require.NoError(t, err)
	require.False(t, prod.Core().Enabled(zapcore.DebugLevel))
}

func TestGet_FromContext(t *testing.T) {
	custom := zap.NewExample()
	ctx := logger.WithLogger(context.Background(), custom)
	require.Equal(t, custom, logger.Get(ctx))
}

func TestFromContext(t *testing.T) {
	_, ok := logger.FromContext(context.Background())
	require.False(t, ok)

	custom := zap.NewExample()
	got, ok := logger.FromContext(logger.WithLogger(context.Background(), custom))
	require.True(t, ok)
	require.Same(t, custom, got)
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("command", "decode"))

	logger.Debug(ctx, "debug message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message", zap.Int("code", 1))

	entries := logs.All()
	require.Len(t, entries, 3)
	for _, entry := range entries {
		require.Equal(t, "decode", entry.ContextMap()["command"])
	}
	require.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	require.EqualValues(t, 1, entries[2].ContextMap()["code"])
}
