package documents

import "time"

// DocumentResponse is the outward-facing representation of a document.
type DocumentResponse struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Case      string    `json:"case"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	PublicID  string    `json:"public_id"`
	Format    string    `json:"format"`
	CreatedAt time.Time `json:"createdAt"`
}

func toResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		ID:        doc.ID,
		User:      doc.UserID,
		Case:      doc.CaseID,
		Name:      doc.Name,
		URL:       doc.URL,
		PublicID:  doc.StorageKey,
		Format:    doc.Format,
		CreatedAt: doc.CreatedAt,
	}
}
