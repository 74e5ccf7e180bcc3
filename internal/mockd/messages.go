package mockd

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/salomonMuriel/ignacio-bot-sub001/internal/mockd/store"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/logger"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/models"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/utils"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/validation"
)

func registerMessages(r *mux.Router) {
	r.HandleFunc("/conversations/{conversationID}/messages", createMessage).Methods(http.MethodPost)
	r.HandleFunc("/conversations/{conversationID}/messages", listMessages).Methods(http.MethodGet)
	r.HandleFunc("/conversations/{conversationID}/messages/{id}", getMessage).Methods(http.MethodGet)
	r.HandleFunc("/conversations/{conversationID}/messages/{id}", updateMessage).Methods(http.MethodPut)
	r.HandleFunc("/conversations/{conversationID}/messages/{id}", deleteMessage).Methods(http.MethodDelete)
}

// createMessage handles POST /v1/conversations/{conversationID}/messages.
// A user-role message also appends a canned assistant reply, so the chat
// flow works end to end against the mock.
func createMessage(w http.ResponseWriter, r *http.Request) {
	convID := mux.Vars(r)["conversationID"]
	if _, err := store.GetConversation(convID); err != nil {
		utils.JSONError(w, http.StatusNotFound, "conversation not found")
		return
	}
	var m models.Message
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	m.ID = "msg-" + uuid.NewString()
	m.ConversationID = convID
	m.TS = time.Now().UTC().UnixNano()
	m.Pending = false
	if m.Role == "" {
		m.Role = models.RoleUser
	}
	if err := validation.Struct(m); err != nil {
		utils.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	b, _ := json.Marshal(m)
	if err := store.SaveMessage(convID, m.ID, string(b)); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if m.Role == models.RoleUser {
		reply := assistantReply(convID, m.Body)
		rb, _ := json.Marshal(reply)
		if err := store.SaveMessage(convID, reply.ID, string(rb)); err != nil {
			logger.Warn("assistant_reply_save_failed", "conversation", convID, "error", err)
		}
	}
	_ = utils.JSONWrite(w, http.StatusOK, m)
}

func listMessages(w http.ResponseWriter, r *http.Request) {
	convID := mux.Vars(r)["conversationID"]
	if _, err := store.GetConversation(convID); err != nil {
		utils.JSONError(w, http.StatusNotFound, "conversation not found")
		return
	}
	vals, err := store.ListMessages(convID)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := []models.Message{}
	for _, v := range vals {
		var m models.Message
		if err := json.Unmarshal([]byte(v), &m); err != nil {
			continue
		}
		if m.Deleted {
			continue
		}
		out = append(out, m)
	}
	_ = utils.JSONWrite(w, http.StatusOK, map[string]any{"messages": out})
}

func getMessage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	v, err := store.GetMessage(id)
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "message not found")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(v))
}

func updateMessage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	v, err := store.GetMessage(id)
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "message not found")
		return
	}
	var m models.Message
	if err := json.Unmarshal([]byte(v), &m); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "corrupt record")
		return
	}
	var patch models.MessagePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	m = patch.Apply(m)
	if err := validation.Struct(m); err != nil {
		utils.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	b, _ := json.Marshal(m)
	if err := store.UpdateMessage(m.ID, string(b)); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, m)
}

// deleteMessage soft-deletes: the record stays in the log as a tombstone
// and list responses skip it.
func deleteMessage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	v, err := store.GetMessage(id)
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "message not found")
		return
	}
	var m models.Message
	if err := json.Unmarshal([]byte(v), &m); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "corrupt record")
		return
	}
	m.Deleted = true
	b, _ := json.Marshal(m)
	if err := store.UpdateMessage(m.ID, string(b)); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
