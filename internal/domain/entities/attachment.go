package entities

import "time"

// Attachment is the metadata of a file uploaded to a request. The bytes live
// in the blob store referenced by URL.
type Attachment struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}
