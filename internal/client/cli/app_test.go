package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/gophaccounts/internal/client/config"
	"github.com/dmitrijs2005/gophaccounts/internal/client/session"
	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend/slot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.APIDelay = 0
	c.GraphURL = "http://127.0.0.1:0"
	c.LocalDB = filepath.Join(t.TempDir(), "client.db")
	c.Storage.Backend = backend
	return c
}

func TestNewApp(t *testing.T) {
	for _, backend := range []string{slot.BackendSQLite, slot.BackendMemory} {
		t.Run(backend, func(t *testing.T) {
			app, err := NewApp(context.Background(), testConfig(t, backend))
			require.NoError(t, err)

			assert.Equal(t, session.RouteLogin, app.currentRoute())
			assert.False(t, app.isLoggedIn())
			assert.Equal(t, "/login", app.status())

			require.NoError(t, app.Close())
			require.NoError(t, app.Close())
		})
	}
}

func TestNewApp_UnknownStorage(t *testing.T) {
	_, err := NewApp(context.Background(), testConfig(t, "floppy"))
	require.ErrorIs(t, err, common.ErrUnknownStorage)
}
