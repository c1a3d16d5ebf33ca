package entity

// Document is an external reference to an uploaded menu document. It is
// ephemeral: fetched once per extraction run and never persisted by the
// pipeline itself.
type Document struct {
	URL      string `json:"url"`
	Name     string `json:"name"`
	MIMEType string `json:"mime_type"`
}
