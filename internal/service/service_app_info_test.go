package service

import (
	"context"
	"testing"

	"github.com/maxim-ist/mcp-bear/internal/config"
	"github.com/maxim-ist/mcp-bear/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.App
		wantErr error
	}{
		{name: "name and version", cfg: config.App{Name: "mcp-bear", Version: "1.0.0"}},
		{name: "build metadata in version", cfg: config.App{Name: "mcp-bear", Version: "v1.2.3-beta+build.42"}},
		{name: "missing name", cfg: config.App{Version: "1.0.0"}, wantErr: ErrNameIsNotSpecified},
		{name: "missing version", cfg: config.App{Name: "mcp-bear"}, wantErr: ErrVersionIsNotSpecified},
		{name: "missing both reports version first", cfg: config.App{}, wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				assert.Nil(t, svc)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			ctx := context.Background()
			assert.Equal(t, tt.cfg.Name, svc.GetAppName(ctx))
			assert.Equal(t, tt.cfg.Version, svc.GetAppVersion(ctx))
		})
	}
}

func TestAppInfoService_IgnoresCancelledContext(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Name: "bear-notes", Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "bear-notes", svc.GetAppName(ctx))
	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
