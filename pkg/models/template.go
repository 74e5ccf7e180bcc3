package models

// Template is an administrable prompt template used to seed conversations.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required,max=200"`
	Prompt      string `json:"prompt" validate:"required"`
	Description string `json:"description,omitempty" validate:"max=2000"`
	CreatedTS   int64  `json:"created_ts,omitempty"`
	UpdatedTS   int64  `json:"updated_ts,omitempty"`
}

func (t Template) EntityID() string { return t.ID }

// TemplatePatch enumerates the template fields that may be patched
// optimistically.
type TemplatePatch struct {
	Name        *string `json:"name,omitempty"`
	Prompt      *string `json:"prompt,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (tp TemplatePatch) Apply(t Template) Template {
	if tp.Name != nil {
		t.Name = *tp.Name
	}
	if tp.Prompt != nil {
		t.Prompt = *tp.Prompt
	}
	if tp.Description != nil {
		t.Description = *tp.Description
	}
	return t
}
