package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"solospark/internal/model"
	"solospark/internal/service"
	"solospark/internal/transport/rest/middleware"
)

// TaskHandler handles task endpoints
type TaskHandler struct {
	taskSvc *service.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskSvc *service.TaskService) *TaskHandler {
	return &TaskHandler{taskSvc: taskSvc}
}

// Create handles POST /v1/tasks
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var task model.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	task.UserID = middleware.GetUserID(r.Context())

	id, err := h.taskSvc.CreateTask(r.Context(), &task)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"taskId": id})
}

// List handles GET /v1/users/{userId}/tasks
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID != middleware.GetUserID(r.Context()) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	tasks, err := h.taskSvc.ListTasks(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks})
}

// Get handles GET /v1/tasks/{taskId}
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	task, err := h.ownedTask(w, r)
	if err != nil {
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// Update handles PUT /v1/tasks/{taskId}
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	task, err := h.ownedTask(w, r)
	if err != nil {
		return
	}

	var update model.TaskUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.taskSvc.UpdateTask(r.Context(), task.ID, &update)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /v1/tasks/{taskId}
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	task, err := h.ownedTask(w, r)
	if err != nil {
		return
	}

	if err := h.taskSvc.DeleteTask(r.Context(), task.ID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ownedTask resolves the path task and checks it belongs to the caller.
// On failure the response is already written.
func (h *TaskHandler) ownedTask(w http.ResponseWriter, r *http.Request) (*model.Task, error) {
	taskID := mux.Vars(r)["taskId"]

	task, err := h.taskSvc.GetTask(r.Context(), taskID)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return nil, err
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, err
	}
	if task.UserID != middleware.GetUserID(r.Context()) {
		writeError(w, http.StatusForbidden, "forbidden")
		return nil, errors.New("forbidden")
	}
	return task, nil
}
