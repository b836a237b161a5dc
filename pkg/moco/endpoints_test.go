package moco

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointExpand(t *testing.T) {
	e, ok := LookupEndpoint("project_task_update")
	require.True(t, ok)
	assert.Equal(t, http.MethodPut, e.Method)

	path, err := e.Expand(map[string]any{"project_id": 12, "id": 345})
	require.NoError(t, err)
	assert.Equal(t, "/projects/12/tasks/345", path)
}

func TestEndpointExpandEscapes(t *testing.T) {
	e := Endpoint{Name: "test", Method: http.MethodGet, Path: "/things/{name}"}
	path, err := e.Expand(map[string]any{"name": "a b/c"})
	require.NoError(t, err)
	assert.Equal(t, "/things/a%20b%2Fc", path)
}

func TestEndpointExpandMissingParam(t *testing.T) {
	e, ok := LookupEndpoint("activity_get")
	require.True(t, ok)

	for name, params := range map[string]map[string]any{
		"absent": nil,
		"nil":    {"id": nil},
		"empty":  {"id": ""},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := e.Expand(params)
			assert.ErrorIs(t, err, ErrMissingPathParam)
		})
	}
}

func TestEndpointExpandUnterminated(t *testing.T) {
	e := Endpoint{Name: "broken", Method: http.MethodGet, Path: "/things/{id"}
	_, err := e.Expand(map[string]any{"id": 1})
	assert.Error(t, err)
}

func TestEndpointTable(t *testing.T) {
	list := Endpoints()
	require.NotEmpty(t, list)

	allowed := map[string]bool{
		http.MethodGet:    true,
		http.MethodPost:   true,
		http.MethodPut:    true,
		http.MethodPatch:  true,
		http.MethodDelete: true,
	}
	for i, e := range list {
		assert.True(t, allowed[e.Method], "%s has method %s", e.Name, e.Method)
		assert.True(t, strings.HasPrefix(e.Path, "/"), "%s path %q", e.Name, e.Path)
		if i > 0 {
			assert.Less(t, list[i-1].Name, e.Name, "endpoints are sorted by name")
		}
	}
}

func TestLookupEndpointUnknown(t *testing.T) {
	_, ok := LookupEndpoint("does_not_exist")
	assert.False(t, ok)
}

func TestBuildEndpointsRejectsDuplicates(t *testing.T) {
	assert.Panics(t, func() {
		buildEndpoints([]Endpoint{
			{"twice", http.MethodGet, "/a"},
			{"twice", http.MethodGet, "/b"},
		})
	})
}
