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

func registerTemplates(r *mux.Router) {
	r.HandleFunc("/templates", createTemplate).Methods(http.MethodPost)
	r.HandleFunc("/templates", listTemplates).Methods(http.MethodGet)
	r.HandleFunc("/templates/{id}", getTemplate).Methods(http.MethodGet)
	r.HandleFunc("/templates/{id}", updateTemplate).Methods(http.MethodPut)
	r.HandleFunc("/templates/{id}", deleteTemplate).Methods(http.MethodDelete)
}

func createTemplate(w http.ResponseWriter, r *http.Request) {
	var t models.Template
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	t.ID = "tmpl-" + uuid.NewString()
	t.CreatedTS = time.Now().UTC().UnixNano()
	t.UpdatedTS = t.CreatedTS
	if err := validation.Struct(t); err != nil {
		utils.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	b, _ := json.Marshal(t)
	if err := store.SaveTemplate(t.ID, string(b)); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, t)
}

func listTemplates(w http.ResponseWriter, r *http.Request) {
	vals, err := store.ListTemplates()
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := []models.Template{}
	for _, v := range vals {
		var t models.Template
		if err := json.Unmarshal([]byte(v), &t); err != nil {
			continue
		}
		out = append(out, t)
	}
	_ = utils.JSONWrite(w, http.StatusOK, map[string]any{"templates": out})
}

func getTemplate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	v, err := store.GetTemplate(id)
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "template not found")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(v))
}

func updateTemplate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	v, err := store.GetTemplate(id)
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "template not found")
		return
	}
	var t models.Template
	if err := json.Unmarshal([]byte(v), &t); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "corrupt record")
		return
	}
	var patch models.TemplatePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	t = patch.Apply(t)
	t.UpdatedTS = time.Now().UTC().UnixNano()
	if err := validation.Struct(t); err != nil {
		utils.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	b, _ := json.Marshal(t)
	if err := store.SaveTemplate(t.ID, string(b)); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, t)
}

// deleteTemplate removes the template outright; templates have no
// soft-delete semantics.
func deleteTemplate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := store.GetTemplate(id); err != nil {
		utils.JSONError(w, http.StatusNotFound, "template not found")
		return
	}
	if err := store.DeleteTemplate(id); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
