package mockd

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/salomonMuriel/ignacio-bot-sub001/internal/mockd/store"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/models"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/utils"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/validation"
)

func registerProjects(r *mux.Router) {
	r.HandleFunc("/projects", createProject).Methods(http.MethodPost)
	r.HandleFunc("/projects", listProjects).Methods(http.MethodGet)
	r.HandleFunc("/projects/{id}", getProject).Methods(http.MethodGet)
	r.HandleFunc("/projects/{id}", updateProject).Methods(http.MethodPut)
	r.HandleFunc("/projects/{id}", deleteProject).Methods(http.MethodDelete)
}

// createProject handles POST /v1/projects. The body is a JSON project;
// id and timestamps are assigned server-side.
func createProject(w http.ResponseWriter, r *http.Request) {
	var p models.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	p.ID = "prj-" + uuid.NewString()
	p.CreatedTS = time.Now().UTC().UnixNano()
	p.UpdatedTS = p.CreatedTS
	p.Deleted = false
	p.DeletedTS = 0
	if err := validation.Struct(p); err != nil {
		utils.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	b, _ := json.Marshal(p)
	if err := store.SaveProject(p.ID, string(b)); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, p)
}

// listProjects handles GET /v1/projects. Archived projects are omitted
// unless ?include_deleted=true.
func listProjects(w http.ResponseWriter, r *http.Request) {
	vals, err := store.ListProjects()
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	includeDeleted := r.URL.Query().Get("include_deleted") == "true"
	out := []models.Project{}
	for _, v := range vals {
		var p models.Project
		if err := json.Unmarshal([]byte(v), &p); err != nil {
			continue
		}
		if p.Deleted && !includeDeleted {
			continue
		}
		out = append(out, p)
	}
	_ = utils.JSONWrite(w, http.StatusOK, map[string]any{"projects": out})
}

func getProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	v, err := store.GetProject(id)
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "project not found")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(v))
}

// updateProject handles PUT /v1/projects/{id} with a partial-field patch.
func updateProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	v, err := store.GetProject(id)
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "project not found")
		return
	}
	var p models.Project
	if err := json.Unmarshal([]byte(v), &p); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "corrupt record")
		return
	}
	var patch models.ProjectPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	p = patch.Apply(p)
	p.UpdatedTS = time.Now().UTC().UnixNano()
	if err := validation.Struct(p); err != nil {
		utils.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	b, _ := json.Marshal(p)
	if err := store.SaveProject(p.ID, string(b)); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, p)
}

// deleteProject archives the project (soft delete, reversible via PUT).
func deleteProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	v, err := store.GetProject(id)
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "project not found")
		return
	}
	var p models.Project
	if err := json.Unmarshal([]byte(v), &p); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "corrupt record")
		return
	}
	p.Deleted = true
	p.DeletedTS = time.Now().UTC().UnixNano()
	b, _ := json.Marshal(p)
	if err := store.SaveProject(p.ID, string(b)); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
