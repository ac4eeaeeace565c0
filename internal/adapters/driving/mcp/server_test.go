package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil library service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports, Options{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingLibraryService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{Library: newMockLibrary()}
		server, err := NewServer(ports, Options{})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})

	t.Run("version option overrides default", func(t *testing.T) {
		ports := &Ports{Library: newMockLibrary()}
		server, err := NewServer(ports, Options{Version: "9.9.9"})
		require.NoError(t, err)
		assert.Equal(t, "9.9.9", server.opts.Version)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil library service returns error", func(t *testing.T) {
		ports := &Ports{}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingLibraryService)
	})

	t.Run("library set is valid", func(t *testing.T) {
		ports := &Ports{Library: newMockLibrary()}
		err := ports.Validate()
		assert.NoError(t, err)
	})
}

func TestServer_RateLimitDefaults(t *testing.T) {
	ports := &Ports{Library: newMockLibrary()}
	server, err := NewServer(ports, Options{})
	require.NoError(t, err)

	// Zero options fall back to the built-in limits inside rateLimited;
	// the handler must be constructible without panicking.
	h := server.rateLimited(nil)
	assert.NotNil(t, h)
}
