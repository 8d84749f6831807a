package entity

import "time"

const (
	ContentTypeText  = "text"
	ContentTypeImage = "image"
	ContentTypeAudio = "audio"
	ContentTypeVideo = "video"
	ContentTypePdf   = "pdf"
)

// ContentItem is an entry in the reference content library. Ids are opaque
// strings minted by the content service, not UUIDs.
type ContentItem struct {
	Id          string
	Title       string
	Description string
	Category    string
	Tags        []string
	ContentType string
	Body        string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
