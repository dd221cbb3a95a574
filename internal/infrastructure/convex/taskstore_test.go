package convex

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-agent/internal/application/port/output"
	"task-agent/internal/domain/entity"
)

func newStoreWithHandler(t *testing.T, handler http.HandlerFunc) *TaskStore {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewTaskStore(NewClient(DefaultConfig(srv.URL, "dk")))
}

func TestTaskStore_CreateTask(t *testing.T) {
	var gotBody map[string]interface{}
	store := newStoreWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"status":"success","value":{
			"_id":"t1","tenantId":"acme","title":"Fix login",
			"status":"todo","label":"bug","priority":"high",
			"createdAt":1700000000000,"updatedAt":1700000000000}}`))
	})

	task, err := store.CreateTask(context.Background(), output.CreateTaskParams{
		TenantID: "acme",
		Title:    "Fix login",
		Status:   entity.TaskStatusTodo,
		Label:    entity.TaskLabelBug,
		Priority: entity.TaskPriorityHigh,
	})
	require.NoError(t, err)

	assert.Equal(t, "tasks:create", gotBody["path"])
	args := gotBody["args"].(map[string]interface{})
	assert.NotContains(t, args, "description", "empty description should be omitted")

	assert.Equal(t, "t1", task.ID)
	assert.Equal(t, entity.TaskStatusTodo, task.Status)
	assert.Equal(t, entity.TaskLabelBug, task.Label)
	assert.False(t, task.CreatedAt.IsZero(), "createdAt should be converted from epoch millis")
}

func TestTaskStore_GetTask_NotFound(t *testing.T) {
	store := newStoreWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","value":null}`))
	})

	_, err := store.GetTask(context.Background(), "acme", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestTaskStore_ListTasks_Filter(t *testing.T) {
	var gotBody map[string]interface{}
	store := newStoreWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"status":"success","value":[
			{"_id":"t1","tenantId":"acme","title":"A","status":"todo","label":"feature","priority":"medium","createdAt":1,"updatedAt":1},
			{"_id":"t2","tenantId":"acme","title":"B","status":"todo","label":"bug","priority":"high","createdAt":2,"updatedAt":2}]}`))
	})

	tasks, err := store.ListTasks(context.Background(), "acme", output.TaskFilter{
		Status: entity.TaskStatusTodo,
		Limit:  10,
	})
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	args := gotBody["args"].(map[string]interface{})
	assert.Equal(t, "todo", args["status"])
	assert.Equal(t, float64(10), args["limit"])
	assert.NotContains(t, args, "label", "unset label filter should be omitted")
}

func TestTaskStore_UpdateTask_PartialFields(t *testing.T) {
	var gotBody map[string]interface{}
	store := newStoreWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"status":"success","value":{
			"_id":"t1","tenantId":"acme","title":"A","status":"done","label":"feature","priority":"medium","createdAt":1,"updatedAt":2}}`))
	})

	status := entity.TaskStatusDone
	task, err := store.UpdateTask(context.Background(), output.UpdateTaskParams{
		TenantID: "acme",
		TaskID:   "t1",
		Status:   &status,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusDone, task.Status)

	args := gotBody["args"].(map[string]interface{})
	assert.Equal(t, "done", args["status"])
	for _, absent := range []string{"title", "description", "label", "priority"} {
		assert.NotContains(t, args, absent, "unset field should be omitted")
	}
}

func TestTaskStore_DeleteTask(t *testing.T) {
	var gotBody map[string]interface{}
	store := newStoreWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"status":"success","value":null}`))
	})

	require.NoError(t, store.DeleteTask(context.Background(), "acme", "t1"))
	assert.Equal(t, "tasks:remove", gotBody["path"])
}
