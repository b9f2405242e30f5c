package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	doc, err := Load()
	require.NoError(t, err)

	sessions := doc.Paths.Find("/v1/sessions/{session_id}")
	require.NotNil(t, sessions)
	assert.NotNil(t, sessions.Get)
	assert.NotNil(t, sessions.Head)
	assert.NotNil(t, sessions.Delete)

	for _, path := range []string{"/v1/sessions", "/v1/sessions/{session_id}/refresh", "/v1/sessions/{session_id}/files", "/v1/instances", "/v1/apis", "/v1/admin/data"} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}
