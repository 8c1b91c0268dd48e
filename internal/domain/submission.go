package domain

// Upload is a file received with a request.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Submission is the public submission form. Reports arrive as file parts and
// are set by the transport layer, everything else as JSON.
type Submission struct {
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	Keywords             string   `json:"keywords"`
	NumAuthors           int      `json:"num_authors"`
	SubmitterEmail       string   `json:"submitter_email"`
	Authors              []Author `json:"authors"`
	DocumentURL          string   `json:"document_url"`
	OriginalityConfirmed bool     `json:"originality_confirmed"`

	SimilarityReport *Upload `json:"similarity_report,omitempty"`
	AIReport         *Upload `json:"ai_report,omitempty"`
}
