package mockd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/salomonMuriel/ignacio-bot-sub001/internal/mockd/store"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/models"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/utils"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/validation"
)

func registerAttachments(r *mux.Router) {
	r.HandleFunc("/projects/{projectID}/attachments", createAttachment).Methods(http.MethodPost)
	r.HandleFunc("/projects/{projectID}/attachments", listAttachments).Methods(http.MethodGet)
	r.HandleFunc("/attachments/{id}", deleteAttachment).Methods(http.MethodDelete)
}

// createAttachment registers attachment metadata. The mock does not store
// content; it hands back a would-be upload URL under its own host.
func createAttachment(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectID"]
	if _, err := store.GetProject(projectID); err != nil {
		utils.JSONError(w, http.StatusNotFound, "project not found")
		return
	}
	var a models.Attachment
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	a.ID = "att-" + uuid.NewString()
	a.ProjectID = projectID
	a.TS = time.Now().UTC().UnixNano()
	a.URL = fmt.Sprintf("/v1/attachments/%s/content", a.ID)
	if err := validation.Struct(a); err != nil {
		utils.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	b, _ := json.Marshal(a)
	if err := store.SaveAttachment(projectID, a.ID, string(b)); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, a)
}

func listAttachments(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectID"]
	vals, err := store.ListAttachments(projectID)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := []models.Attachment{}
	for _, v := range vals {
		var a models.Attachment
		if err := json.Unmarshal([]byte(v), &a); err != nil {
			continue
		}
		out = append(out, a)
	}
	_ = utils.JSONWrite(w, http.StatusOK, map[string]any{"attachments": out})
}

func deleteAttachment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := store.GetAttachment(id); err != nil {
		utils.JSONError(w, http.StatusNotFound, "attachment not found")
		return
	}
	if err := store.DeleteAttachment(id); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
