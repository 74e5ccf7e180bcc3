package models

// Project kinds accepted by the backend.
const (
	ProjectKindStartup    = "startup"
	ProjectKindNGO        = "ngo"
	ProjectKindFoundation = "foundation"
	ProjectKindInternal   = "internal"
)

type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required,max=200"`
	Kind        string `json:"kind" validate:"required,oneof=startup ngo foundation internal"`
	Description string `json:"description,omitempty" validate:"max=4000"`
	// OwnerID is an opaque identity id (clients manage meaning)
	OwnerID string `json:"owner_id,omitempty"`
	// Created/Updated timestamps (ns)
	CreatedTS int64 `json:"created_ts,omitempty"`
	UpdatedTS int64 `json:"updated_ts,omitempty"`
	// Deleted marks a project as archived; DeletedTS records archive time (ns)
	Deleted   bool  `json:"deleted,omitempty"`
	DeletedTS int64 `json:"deleted_ts,omitempty"`
}

func (p Project) EntityID() string { return p.ID }

// ProjectPatch enumerates the project fields that may be patched
// optimistically. Nil fields are left untouched; set fields win.
type ProjectPatch struct {
	Name        *string `json:"name,omitempty"`
	Kind        *string `json:"kind,omitempty"`
	Description *string `json:"description,omitempty"`
	Deleted     *bool   `json:"deleted,omitempty"`
}

func (pp ProjectPatch) Apply(p Project) Project {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Kind != nil {
		p.Kind = *pp.Kind
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Deleted != nil {
		p.Deleted = *pp.Deleted
	}
	return p
}
