package domain

import "encoding/json"

// Coverage is a destination coverage record as returned by the Prezly API.
type Coverage struct {
	ID                  int64        `json:"id"`
	ExternalReferenceID string       `json:"external_reference_id"`
	Newsroom            int64        `json:"newsroom"`
	Headline            string       `json:"headline"`
	Author              *string      `json:"author"`
	Organisation        *string      `json:"organisation"`
	Story               *int64       `json:"story"`
	URL                 *string      `json:"url"`
	NoteContent         *NoteContent `json:"note_content"`
	PublishedAt         string       `json:"published_at"`
	IsDeleted           bool         `json:"is_deleted"`
}

type NoteContent struct {
	Text string `json:"text"`
}

// CoverageOembed is the link-preview descriptor attached to print
// coverage that carries an uploaded page scan.
type CoverageOembed struct {
	Type         string `json:"type"`
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	URL          string `json:"url"`
	ProviderName string `json:"provider_name,omitempty"`
}

// CoverageCreateRequest is the payload for creating one coverage record.
// At most one non-deleted record may exist per ExternalReferenceID; the
// orchestrator checks before creating, never after.
type CoverageCreateRequest struct {
	ExternalReferenceID    string          `json:"external_reference_id"`
	Newsroom               int64           `json:"newsroom,omitempty"`
	Headline               string          `json:"headline,omitempty"`
	Author                 *string         `json:"author,omitempty"`
	Organisation           *string         `json:"organisation,omitempty"`
	Story                  *int64          `json:"story,omitempty"`
	URL                    *string         `json:"url,omitempty"`
	NoteContent            *NoteContent    `json:"note_content,omitempty"`
	Attachment             *string         `json:"attachment,omitempty"`
	AttachmentOembed       *CoverageOembed `json:"attachment_oembed,omitempty"`
	PublishedAt            string          `json:"published_at"`
	OriginalMetadataSource json.RawMessage `json:"original_metadata_source,omitempty"`
}

// UploadedFile is the durable file descriptor the upload collaborator
// hands back after storing a binary.
type UploadedFile struct {
	UUID     string
	Size     int64
	IsImage  bool
	MimeType string
	Filename string
}

// PrezlyFileJSON renders the descriptor in the serialized file format the
// destination API expects in the coverage attachment field.
func (f *UploadedFile) PrezlyFileJSON() (string, error) {
	encoded, err := json.Marshal(map[string]any{
		"is_stored":         true,
		"done":              f.Size,
		"file_id":           f.UUID,
		"total":             f.Size,
		"size":              f.Size,
		"uuid":              f.UUID,
		"is_image":          f.IsImage,
		"filename":          f.Filename,
		"video_info":        nil,
		"is_ready":          true,
		"original_filename": f.Filename,
		"image_info":        nil,
		"mime_type":         f.MimeType,
	})
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
