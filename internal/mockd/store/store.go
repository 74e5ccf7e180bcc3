// Package store is the pebble-backed storage for the development mock
// backend. Records are stored as JSON strings under typed key prefixes:
//
//	project:<id>
//	conv:<id>
//	msg:<convID>:<ts>-<seq>   (insertion-ordered message log)
//	msgkey:<msgID>            (message id -> primary key)
//	tmpl:<id>
//	att:<projectID>:<id>
package store

import (
	"bytes"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/pebble"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/logger"
)

var db *pebble.DB
var dbPath string

// seq reduces key collisions when messages share a nanosecond timestamp.
var seq uint64

// ErrNotFound is returned when a key has no record.
var ErrNotFound = errors.New("record not found")

// Open opens (or creates) a pebble database at the given path and keeps a
// package-level handle, matching the single-process mock's needs.
func Open(path string) error {
	var err error
	logger.Info("opening_mock_db", "path", path)
	db, err = pebble.Open(path, &pebble.Options{})
	if err != nil {
		logger.Error("mock_db_open_failed", "path", path, "error", err)
		return err
	}
	dbPath = path
	return nil
}

// Close closes the opened pebble DB if present.
func Close() error {
	if db == nil {
		return nil
	}
	if err := db.Close(); err != nil {
		return err
	}
	db = nil
	logger.Info("mock_db_closed")
	return nil
}

// Ready reports whether the store is opened and ready.
func Ready() bool { return db != nil }

func get(key string) (string, error) {
	if db == nil {
		return "", fmt.Errorf("store not opened; call store.Open first")
	}
	v, closer, err := db.Get([]byte(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	out := append([]byte(nil), v...)
	_ = closer.Close()
	return string(out), nil
}

func set(key, value string) error {
	if db == nil {
		return fmt.Errorf("store not opened; call store.Open first")
	}
	return db.Set([]byte(key), []byte(value), pebble.Sync)
}

func listPrefix(prefix string) ([]string, error) {
	if db == nil {
		return nil, fmt.Errorf("store not opened; call store.Open first")
	}
	pfx := []byte(prefix)
	iter, err := db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, err
	}
	defer iter.Close()
	var out []string
	for iter.SeekGE(pfx); iter.Valid(); iter.Next() {
		if !bytes.HasPrefix(iter.Key(), pfx) {
			break
		}
		out = append(out, string(append([]byte(nil), iter.Value()...)))
	}
	return out, nil
}

// Projects

func SaveProject(id, data string) error    { return set("project:"+id, data) }
func GetProject(id string) (string, error) { return get("project:" + id) }
func ListProjects() ([]string, error)      { return listPrefix("project:") }

// Conversations

func SaveConversation(id, data string) error    { return set("conv:"+id, data) }
func GetConversation(id string) (string, error) { return get("conv:" + id) }
func ListConversations() ([]string, error)      { return listPrefix("conv:") }

// Messages

// SaveMessage appends a message to a conversation under a sortable
// timestamp key and records an id index so single-message lookups work.
func SaveMessage(convID, msgID, data string) error {
	s := atomic.AddUint64(&seq, 1)
	key := fmt.Sprintf("msg:%s:%020d-%06d", convID, time.Now().UTC().UnixNano(), s)
	if err := set(key, data); err != nil {
		return err
	}
	return set("msgkey:"+msgID, key)
}

// UpdateMessage overwrites the stored record for msgID in place so the
// message keeps its position in the log.
func UpdateMessage(msgID, data string) error {
	key, err := get("msgkey:" + msgID)
	if err != nil {
		return err
	}
	return set(key, data)
}

// GetMessage returns the stored record for msgID.
func GetMessage(msgID string) (string, error) {
	key, err := get("msgkey:" + msgID)
	if err != nil {
		return "", err
	}
	return get(key)
}

// ListMessages returns all messages of a conversation in insertion order.
func ListMessages(convID string) ([]string, error) {
	return listPrefix("msg:" + convID + ":")
}

// Templates

func SaveTemplate(id, data string) error    { return set("tmpl:"+id, data) }
func GetTemplate(id string) (string, error) { return get("tmpl:" + id) }
func ListTemplates() ([]string, error)      { return listPrefix("tmpl:") }

func DeleteTemplate(id string) error {
	if db == nil {
		return fmt.Errorf("store not opened; call store.Open first")
	}
	return db.Delete([]byte("tmpl:"+id), pebble.Sync)
}

// Attachments

func SaveAttachment(projectID, id, data string) error {
	if err := set("att:"+projectID+":"+id, data); err != nil {
		return err
	}
	return set("attidx:"+id, projectID)
}

func ListAttachments(projectID string) ([]string, error) {
	return listPrefix("att:" + projectID + ":")
}

func GetAttachment(id string) (string, error) {
	pid, err := get("attidx:" + id)
	if err != nil {
		return "", err
	}
	return get("att:" + pid + ":" + id)
}

func DeleteAttachment(id string) error {
	if db == nil {
		return fmt.Errorf("store not opened; call store.Open first")
	}
	pid, err := get("attidx:" + id)
	if err != nil {
		return err
	}
	if err := db.Delete([]byte("att:"+pid+":"+id), pebble.Sync); err != nil {
		return err
	}
	return db.Delete([]byte("attidx:"+id), pebble.Sync)
}
