package cases

import "time"

type createRequest struct {
	CaseType      string `json:"caseType"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	PoliceStation string `json:"policeStation"`
	Location      string `json:"location"`
	Status        string `json:"status"`
}

type updateRequest struct {
	CaseType      *string `json:"caseType"`
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	PoliceStation *string `json:"policeStation"`
	Location      *string `json:"location"`
	Status        *string `json:"status"`
}

// CaseResponse represents a case with the owner as a plain id, as written.
type CaseResponse struct {
	ID            string    `json:"id"`
	User          string    `json:"user"`
	CaseType      string    `json:"caseType"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	PoliceStation string    `json:"policeStation,omitempty"`
	Location      string    `json:"location"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// OwnerResponse is the populated owner identity on detailed reads.
type OwnerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CaseDetailResponse represents a case with its owner populated.
type CaseDetailResponse struct {
	ID            string        `json:"id"`
	User          OwnerResponse `json:"user"`
	CaseType      string        `json:"caseType"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	PoliceStation string        `json:"policeStation,omitempty"`
	Location      string        `json:"location"`
	Status        string        `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
}

func toResponse(c Case) CaseResponse {
	return CaseResponse{
		ID:            c.ID,
		User:          c.UserID,
		CaseType:      c.CaseType,
		Title:         c.Title,
		Description:   c.Description,
		PoliceStation: c.PoliceStation,
		Location:      c.Location,
		Status:        c.Status,
		CreatedAt:     c.CreatedAt,
	}
}

func toDetailResponse(cw CaseWithOwner) CaseDetailResponse {
	return CaseDetailResponse{
		ID: cw.ID,
		User: OwnerResponse{
			ID:    cw.UserID,
			Name:  cw.OwnerName,
			Email: cw.OwnerEmail,
		},
		CaseType:      cw.CaseType,
		Title:         cw.Title,
		Description:   cw.Description,
		PoliceStation: cw.PoliceStation,
		Location:      cw.Location,
		Status:        cw.Status,
		CreatedAt:     cw.CreatedAt,
	}
}
