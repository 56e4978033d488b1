package handler

import (
	"testing"

	"github.com/maxim-ist/mcp-bear/internal/config"
	"github.com/maxim-ist/mcp-bear/internal/logger"
	"github.com/maxim-ist/mcp-bear/internal/mock"
	"github.com/maxim-ist/mcp-bear/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestServices(t *testing.T) *service.Services {
	t.Helper()
	ctrl := gomock.NewController(t)

	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppName(gomock.Any()).Return("mcp-bear").AnyTimes()
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").AnyTimes()

	return &service.Services{
		AppInfoService: appInfo,
		NoteService:    mock.NewMockNoteService(ctrl),
		CommandService: mock.NewMockCommandService(ctrl),
	}
}

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantHTTP bool
	}{
		{name: "stdio only", cfg: config.Server{}, wantHTTP: false},
		{name: "with http", cfg: config.Server{HTTPAddress: "localhost:8080"}, wantHTTP: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(newTestServices(t), tt.cfg, logger.Nop())
			require.NoError(t, err)

			assert.NotNil(t, h.Dispatcher)
			assert.NotNil(t, h.MCP)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
		})
	}
}

func TestNewHandlers_MissingServices(t *testing.T) {
	_, err := NewHandlers(nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errServicesAreNotSet)

	_, err = NewHandlers(&service.Services{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errServicesAreNotSet)
}
