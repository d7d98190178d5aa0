package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"taskhub/internal/auth"
	"taskhub/internal/config"
	"taskhub/internal/db"
	"taskhub/internal/service"
)

// API exposes the domain services as a JSON REST surface. Service
// responses are always written with HTTP 200; the envelope's status_code
// carries the business outcome. Transport-level problems (unparseable ids,
// unknown routes, failed auth) use plain HTTP errors instead.
type API struct {
	users    *service.UserService
	projects *service.ProjectService
	tasks    *service.TaskService
	cfg      config.Config
	log      zerolog.Logger
}

func New(users *service.UserService, projects *service.ProjectService, tasks *service.TaskService, cfg config.Config, log zerolog.Logger) *API {
	return &API{users: users, projects: projects, tasks: tasks, cfg: cfg, log: log}
}

func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("POST /api/login", a.handleLogin)
	mux.HandleFunc("POST /api/forgot-password", a.handleForgotPassword)

	app := http.NewServeMux()

	// Users
	app.HandleFunc("POST /api/users", a.handleCreateUser)
	app.HandleFunc("GET /api/users", a.handleGetUsers)
	app.HandleFunc("GET /api/users/filter", a.handleFilterUsers)
	app.HandleFunc("GET /api/users/{id}", a.handleGetUser)
	app.HandleFunc("PUT /api/users/{id}", a.handleUpdateUser)
	app.HandleFunc("DELETE /api/users/{id}", a.handleDeleteUser)
	app.HandleFunc("GET /api/users/{id}/tasks", a.handleGetUserTasks)

	// Projects
	app.HandleFunc("POST /api/projects", a.handleCreateProject)
	app.HandleFunc("GET /api/projects", a.handleGetProjects)
	app.HandleFunc("GET /api/projects/{id}", a.handleGetProject)
	app.HandleFunc("PUT /api/projects/{id}", a.handleUpdateProject)
	app.HandleFunc("GET /api/projects/{id}/tasks", a.handleGetProjectTasks)

	// Tasks
	app.HandleFunc("POST /api/tasks", a.handleCreateTask)
	app.HandleFunc("GET /api/tasks", a.handleGetTasks)
	app.HandleFunc("GET /api/tasks/filter", a.handleFilterTasks)
	app.HandleFunc("POST /api/tasks/search", a.handleSearchTasks)
	app.HandleFunc("GET /api/tasks/due", a.handleDueTasks)
	app.HandleFunc("GET /api/tasks/{id}", a.handleGetTask)
	app.HandleFunc("PUT /api/tasks/{id}", a.handleUpdateTask)

	var protected http.Handler = app
	if a.cfg.Auth.Enabled {
		protected = a.jwtGuard(app)
	}
	mux.Handle("/api/", protected)

	return a.requestLogger(mux)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func invalidBody[T any]() service.Response[T] {
	return service.Response[T]{StatusCode: 400, Message: "invalid request data"}
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	return id, err == nil
}

// Auth

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserName string `json:"user_name"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, invalidBody[*db.User]())
		return
	}

	resp := a.users.Login(r.Context(), req.UserName, req.Password)
	if resp.StatusCode == 200 && resp.Data != nil {
		token, err := auth.GenerateToken(resp.Data.ID, []byte(a.cfg.Auth.JWTSecret))
		if err == nil {
			w.Header().Set("X-Auth-Token", token)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserName string `json:"user_name"`
		Email    string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, invalidBody[int]())
		return
	}
	writeJSON(w, http.StatusOK, a.users.ForgotPassword(r.Context(), req.UserName, req.Email))
}

// Users

func (a *API) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var user db.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeJSON(w, http.StatusOK, invalidBody[int]())
		return
	}
	writeJSON(w, http.StatusOK, a.users.Create(r.Context(), &user))
}

func (a *API) handleGetUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.users.GetAll(r.Context()))
}

func (a *API) handleFilterUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.users.Filter(r.Context(), r.URL.Query().Get("q")))
}

func (a *API) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	writeJSON(w, http.StatusOK, a.users.GetByID(r.Context(), id))
}

func (a *API) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var user db.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeJSON(w, http.StatusOK, invalidBody[int]())
		return
	}
	user.ID = id
	writeJSON(w, http.StatusOK, a.users.Update(r.Context(), &user))
}

func (a *API) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	writeJSON(w, http.StatusOK, a.users.Delete(r.Context(), id))
}

func (a *API) handleGetUserTasks(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	status, _ := strconv.Atoi(r.URL.Query().Get("status"))
	writeJSON(w, http.StatusOK, a.users.GetTasksByUser(r.Context(), id, status))
}

// Projects

func (a *API) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var project db.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		writeJSON(w, http.StatusOK, invalidBody[int]())
		return
	}
	writeJSON(w, http.StatusOK, a.projects.Create(r.Context(), &project))
}

func (a *API) handleGetProjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.projects.GetAll(r.Context()))
}

func (a *API) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	writeJSON(w, http.StatusOK, a.projects.GetByID(r.Context(), id))
}

func (a *API) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var project db.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		writeJSON(w, http.StatusOK, invalidBody[int]())
		return
	}
	project.ID = id
	writeJSON(w, http.StatusOK, a.projects.Update(r.Context(), &project))
}

func (a *API) handleGetProjectTasks(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	writeJSON(w, http.StatusOK, a.projects.GetTasks(r.Context(), id))
}

// Tasks

func (a *API) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var task db.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		writeJSON(w, http.StatusOK, invalidBody[int]())
		return
	}
	writeJSON(w, http.StatusOK, a.tasks.Create(r.Context(), &task))
}

func (a *API) handleGetTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.tasks.GetAll(r.Context()))
}

func (a *API) handleFilterTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.tasks.Filter(r.Context(), r.URL.Query().Get("q")))
}

func (a *API) handleSearchTasks(w http.ResponseWriter, r *http.Request) {
	var filter service.TaskFilter
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil {
		writeJSON(w, http.StatusOK, invalidBody[[]service.TaskView]())
		return
	}
	writeJSON(w, http.StatusOK, a.tasks.FilterTasks(r.Context(), filter))
}

func (a *API) handleDueTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.tasks.DueToday(r.Context()))
}

func (a *API) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	writeJSON(w, http.StatusOK, a.tasks.GetByID(r.Context(), id))
}

func (a *API) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var task db.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		writeJSON(w, http.StatusOK, invalidBody[int]())
		return
	}
	task.ID = id
	writeJSON(w, http.StatusOK, a.tasks.Update(r.Context(), &task))
}
