package entity

import "time"

// ContentType is the kind of payload a drop carries.
type ContentType string

const (
	ContentTypeText  ContentType = "text"
	ContentTypeImage ContentType = "image"
	ContentTypePDF   ContentType = "pdf"
)

// IsKnown reports whether the content type is one the service can author.
func (t ContentType) IsKnown() bool {
	switch t {
	case ContentTypeText, ContentTypeImage, ContentTypePDF:
		return true
	default:
		return false
	}
}

// IsFile reports whether the payload lives in the content store rather than inline.
func (t ContentType) IsFile() bool {
	return t == ContentTypeImage || t == ContentTypePDF
}

// FileExtension returns the extension used when storing a file payload.
func (t ContentType) FileExtension() string {
	switch t {
	case ContentTypeImage:
		return "jpg"
	case ContentTypePDF:
		return "pdf"
	default:
		return ""
	}
}

// Drop is a point of interest left at a coordinate. Its content is revealed
// only to users standing within RevealDistance meters of Position.
type Drop struct {
	ID          string      // Stable identifier assigned at creation.
	Position    Coordinate  // Where the drop was left.
	ContentType ContentType // text, image or pdf.
	ContentRef  string      // Inline text, or a content-store key for file payloads.
	Teaser      string      // Public hint shown before reveal. Optional.
	// RevealDistance is the collect radius in meters. Legacy records carry no
	// value (zero); the geofence package resolves it to its default.
	RevealDistance float64
	CreatedAt      time.Time
}

// CollectionRecord is a persisted record of a drop being collected.
type CollectionRecord struct {
	ID             string
	EventID        string // Publisher-assigned event ID, unique per collect.
	DropID         string
	SessionID      string
	DistanceMeters float64
	CollectedAt    time.Time
	RecordedAt     time.Time
}
