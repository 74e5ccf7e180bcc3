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

func registerConversations(r *mux.Router) {
	r.HandleFunc("/projects/{projectID}/conversations", createConversation).Methods(http.MethodPost)
	r.HandleFunc("/projects/{projectID}/conversations", listConversations).Methods(http.MethodGet)
	r.HandleFunc("/conversations/{id}", getConversation).Methods(http.MethodGet)
	r.HandleFunc("/conversations/{id}", updateConversation).Methods(http.MethodPut)
	r.HandleFunc("/conversations/{id}", deleteConversation).Methods(http.MethodDelete)
}

func createConversation(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectID"]
	if _, err := store.GetProject(projectID); err != nil {
		utils.JSONError(w, http.StatusNotFound, "project not found")
		return
	}
	var c models.Conversation
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	c.ID = "conv-" + uuid.NewString()
	c.ProjectID = projectID
	c.CreatedTS = time.Now().UTC().UnixNano()
	c.UpdatedTS = c.CreatedTS
	c.Slug = utils.MakeSlug(c.Title, c.ID)
	c.Deleted = false
	c.DeletedTS = 0
	if err := validation.Struct(c); err != nil {
		utils.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	b, _ := json.Marshal(c)
	if err := store.SaveConversation(c.ID, string(b)); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, c)
}

// listConversations handles GET /v1/projects/{projectID}/conversations.
// Soft-deleted conversations are omitted.
func listConversations(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectID"]
	vals, err := store.ListConversations()
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := []models.Conversation{}
	for _, v := range vals {
		var c models.Conversation
		if err := json.Unmarshal([]byte(v), &c); err != nil {
			continue
		}
		if c.ProjectID != projectID || c.Deleted {
			continue
		}
		out = append(out, c)
	}
	_ = utils.JSONWrite(w, http.StatusOK, map[string]any{"conversations": out})
}

func getConversation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	v, err := store.GetConversation(id)
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "conversation not found")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(v))
}

func updateConversation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	v, err := store.GetConversation(id)
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "conversation not found")
		return
	}
	var c models.Conversation
	if err := json.Unmarshal([]byte(v), &c); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "corrupt record")
		return
	}
	var patch models.ConversationPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	c = patch.Apply(c)
	if patch.Title != nil {
		c.Slug = utils.MakeSlug(c.Title, c.ID)
	}
	c.UpdatedTS = time.Now().UTC().UnixNano()
	b, _ := json.Marshal(c)
	if err := store.SaveConversation(c.ID, string(b)); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, c)
}

// deleteConversation soft-deletes; messages stay in the log.
func deleteConversation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	v, err := store.GetConversation(id)
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "conversation not found")
		return
	}
	var c models.Conversation
	if err := json.Unmarshal([]byte(v), &c); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "corrupt record")
		return
	}
	c.Deleted = true
	c.DeletedTS = time.Now().UTC().UnixNano()
	b, _ := json.Marshal(c)
	if err := store.SaveConversation(c.ID, string(b)); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
