package models

// Row is the payload of a feed list item.
type Row struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
}

// Section is the loaded content of one feed section.
type Section struct {
	Header *Row  `json:"header,omitempty"`
	Rows   []Row `json:"items"`
}
