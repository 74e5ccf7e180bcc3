package models

type Attachment struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id" validate:"required"`
	Name      string `json:"name" validate:"required,max=300"`
	// ContentType is the declared MIME type; the backend does not sniff
	ContentType string `json:"content_type,omitempty"`
	Size        int64  `json:"size,omitempty"`
	// URL is where the content can be fetched from once uploaded
	URL string `json:"url,omitempty"`
	TS  int64  `json:"ts,omitempty"`
}

func (a Attachment) EntityID() string { return a.ID }

// AttachmentPatch enumerates the attachment fields that may be patched
// optimistically. Content itself is immutable once uploaded.
type AttachmentPatch struct {
	Name *string `json:"name,omitempty"`
}

func (ap AttachmentPatch) Apply(a Attachment) Attachment {
	if ap.Name != nil {
		a.Name = *ap.Name
	}
	return a
}
