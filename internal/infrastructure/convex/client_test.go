package convex

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Query_RequestShape(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"status":"success","value":{"_id":"t1"}}`))
	}))
	defer srv.Close()

	client := NewClient(DefaultConfig(srv.URL, "dk-secret"))
	value, err := client.Query(context.Background(), "tasks:get", map[string]interface{}{
		"tenantId": "acme",
		"id":       "t1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Convex dk-secret", gotAuth)
	assert.Equal(t, "/api/query", gotPath)
	assert.Equal(t, "tasks:get", gotBody["path"])
	assert.Equal(t, "json", gotBody["format"])

	args, ok := gotBody["args"].(map[string]interface{})
	require.True(t, ok, "args must be an object")
	assert.Equal(t, "acme", args["tenantId"])

	assert.Contains(t, string(value), `"t1"`)
}

func TestClient_Mutation_UsesMutationEndpoint(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"status":"success","value":null}`))
	}))
	defer srv.Close()

	client := NewClient(DefaultConfig(srv.URL, "dk"))
	_, err := client.Mutation(context.Background(), "tasks:remove", nil)
	require.NoError(t, err)
	assert.Equal(t, "/api/mutation", gotPath)
}

func TestClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","errorMessage":"Task not found"}`))
	}))
	defer srv.Close()

	client := NewClient(DefaultConfig(srv.URL, "dk"))
	_, err := client.Query(context.Background(), "tasks:get", map[string]interface{}{"id": "missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Task not found")
}

func TestClient_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(DefaultConfig(srv.URL, "bad-key"))
	_, err := client.Query(context.Background(), "tasks:list", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
