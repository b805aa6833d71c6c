package cases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"justicehub-backend/internal/shared/apperr"
	"justicehub-backend/internal/shared/authz"
)

// Service contains business logic for cases. Every read and write applies
// the ownership policy: admins see everything, everyone else only their own.
type Service struct {
	Repo Repo
}

// CreateInput is the data needed to open a case. The owner always comes from
// the authenticated principal, never from input.
type CreateInput struct {
	CaseType      string
	Title         string
	Description   string
	PoliceStation string
	Location      string
	Status        string
}

// UpdateInput carries partial field changes. Nil fields are left untouched.
// The owner is not updatable.
type UpdateInput struct {
	CaseType      *string
	Title         *string
	Description   *string
	PoliceStation *string
	Location      *string
	Status        *string
}

// List returns all cases for admins, the principal's own cases otherwise.
func (s *Service) List(ctx context.Context, p authz.Principal) ([]CaseWithOwner, error) {
	if p.IsAdmin() {
		return s.Repo.ListAll(ctx)
	}
	return s.Repo.ListByUser(ctx, p.ID)
}

// Get returns a case with its owner populated, enforcing the ownership
// policy.
func (s *Service) Get(ctx context.Context, p authz.Principal, id string) (CaseWithOwner, error) {
	cw, err := s.Repo.GetWithOwner(ctx, id)
	if err != nil {
		return CaseWithOwner{}, err
	}
	if !authz.CanAccess(p, cw.UserID) {
		return CaseWithOwner{}, ErrNotAuthorized
	}
	return cw, nil
}

// Create opens a case owned by the principal, defaulting status to Active.
func (s *Service) Create(ctx context.Context, p authz.Principal, in CreateInput) (Case, error) {
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = StatusActive
	}

	c := Case{
		ID:            uuid.NewString(),
		UserID:        p.ID,
		CaseType:      strings.TrimSpace(in.CaseType),
		Title:         strings.TrimSpace(in.Title),
		Description:   in.Description,
		PoliceStation: strings.TrimSpace(in.PoliceStation),
		Location:      strings.TrimSpace(in.Location),
		Status:        status,
		CreatedAt:     time.Now().UTC(),
	}

	if err := validate(c); err != nil {
		return Case{}, err
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return Case{}, err
	}
	return c, nil
}

// Update applies partial changes after checking ownership against the
// pre-update owner, then re-validates the merged record.
func (s *Service) Update(ctx context.Context, p authz.Principal, id string, in UpdateInput) (Case, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Case{}, err
	}
	if !authz.CanAccess(p, existing.UserID) {
		return Case{}, ErrNotAuthorized
	}

	updated := existing
	if in.CaseType != nil {
		updated.CaseType = strings.TrimSpace(*in.CaseType)
	}
	if in.Title != nil {
		updated.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		updated.Description = *in.Description
	}
	if in.PoliceStation != nil {
		updated.PoliceStation = strings.TrimSpace(*in.PoliceStation)
	}
	if in.Location != nil {
		updated.Location = strings.TrimSpace(*in.Location)
	}
	if in.Status != nil {
		updated.Status = strings.TrimSpace(*in.Status)
	}

	if err := validate(updated); err != nil {
		return Case{}, err
	}
	if err := s.Repo.Update(ctx, updated); err != nil {
		return Case{}, err
	}
	return updated, nil
}

// Delete removes a case after the ownership check. Documents referencing the
// case are left behind.
func (s *Service) Delete(ctx context.Context, p authz.Principal, id string) error {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanAccess(p, existing.UserID) {
		return ErrNotAuthorized
	}
	return s.Repo.Delete(ctx, id)
}

func validate(c Case) error {
	if !ValidCaseType(c.CaseType) {
		return apperr.Validation("Please select a valid case type")
	}
	if c.Title == "" {
		return apperr.Validation("Please enter a case title")
	}
	if len(c.Title) > maxTitleLength {
		return apperr.Validationf("Title cannot exceed %d characters", maxTitleLength)
	}
	if c.Description == "" {
		return apperr.Validation("Please enter a case description")
	}
	if c.Location == "" {
		return apperr.Validation("Please enter a location")
	}
	if !ValidStatus(c.Status) {
		return apperr.Validation("Please select a valid case status")
	}
	return nil
}
