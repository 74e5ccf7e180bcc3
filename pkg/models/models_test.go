package models

import "testing"

func strptr(s string) *string { return &s }

func TestProjectPatchLeavesUnsetFields(t *testing.T) {
	base := Project{ID: "prj-1", Name: "Huerta", Kind: ProjectKindNGO, Description: "urban farm"}
	got := ProjectPatch{Name: strptr("Huerta Norte")}.Apply(base)
	if got.Name != "Huerta Norte" {
		t.Fatalf("name not applied: %+v", got)
	}
	if got.Kind != ProjectKindNGO || got.Description != "urban farm" {
		t.Fatalf("unset fields must survive: %+v", got)
	}
	// Apply is by value; the base stays as it was
	if base.Name != "Huerta" {
		t.Fatalf("base mutated: %+v", base)
	}
}

func TestMessagePatchDeleteFlag(t *testing.T) {
	deleted := true
	base := Message{ID: "msg-1", ConversationID: "conv-1", Role: RoleUser, Body: "hola"}
	got := MessagePatch{Deleted: &deleted}.Apply(base)
	if !got.Deleted || got.Body != "hola" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestEmptyPatchIsIdentity(t *testing.T) {
	base := Conversation{ID: "conv-1", ProjectID: "prj-1", Title: "Plan", Slug: "plan-1"}
	if got := (ConversationPatch{}).Apply(base); got != base {
		t.Fatalf("empty patch changed the record: %+v", got)
	}
	tpl := Template{ID: "tmpl-1", Name: "Pitch", Prompt: "Review:"}
	if got := (TemplatePatch{}).Apply(tpl); got != tpl {
		t.Fatalf("empty patch changed the record: %+v", got)
	}
}

func TestEntityIDs(t *testing.T) {
	if (Project{ID: "p"}).EntityID() != "p" ||
		(Conversation{ID: "c"}).EntityID() != "c" ||
		(Message{ID: "m"}).EntityID() != "m" ||
		(Attachment{ID: "a"}).EntityID() != "a" ||
		(Template{ID: "t"}).EntityID() != "t" {
		t.Fatalf("EntityID must return the record id")
	}
}
