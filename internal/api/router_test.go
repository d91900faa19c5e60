package api

import (
	"testing"
	"time"

	"shopsmart-ai/internal/api/handlers"
	"shopsmart-ai/pkg/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSetupRouterAppliesServerTimeouts(t *testing.T) {
	serverCfg := &config.ServerConfig{
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 20 * time.Second,
	}

	app := SetupRouter(handlers.NewAssistantHandler(nil, zap.NewNop()), serverCfg, zap.NewNop())

	assert.Equal(t, 15*time.Second, app.Config().ReadTimeout)
	assert.Equal(t, 20*time.Second, app.Config().WriteTimeout)
}
