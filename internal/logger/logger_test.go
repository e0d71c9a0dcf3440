package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/Additional-Code/order-service/internal/config"
)

func TestBuild(t *testing.T) {
	testCases := map[string]struct {
		observability config.Observability
		enabled       zapcore.Level
		disabled      zapcore.Level
		expectedError string
	}{
		"should honour configured level": {
			observability: config.Observability{LogLevel: "warn", LogEncoding: "json"},
			enabled:       zapcore.WarnLevel,
			disabled:      zapcore.InfoLevel,
		},
		"should default to info when level is empty": {
			observability: config.Observability{LogEncoding: "json"},
			enabled:       zapcore.InfoLevel,
			disabled:      zapcore.DebugLevel,
		},
		"should reject unknown level": {
			observability: config.Observability{LogLevel: "chatty", LogEncoding: "json"},
			expectedError: `invalid log level "chatty"`,
		},
		"should build console encoder": {
			observability: config.Observability{LogLevel: "debug", LogEncoding: "console"},
			enabled:       zapcore.DebugLevel,
			disabled:      zapcore.DebugLevel - 1,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			logger, err := Build(tc.observability)

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			require.NoError(t, err)

			assert.True(t, logger.Core().Enabled(tc.enabled))
			assert.False(t, logger.Core().Enabled(tc.disabled))
		})
	}
}
