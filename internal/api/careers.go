package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/guregu/null/v6"
)

// Career posting statuses.
const (
	PostingActive = "ACTIVE"
	PostingDraft  = "DRAFT"
	PostingClosed = "CLOSED"
)

// CareerPosting is one job posting on the careers page.
type CareerPosting struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Department     string     `json:"department"`
	Location       string     `json:"location"`
	EmploymentType string     `json:"employmentType"`
	Description    string     `json:"description"`
	Requirements   string     `json:"requirements"`
	SalaryMin      null.Int64 `json:"salaryMin"`
	SalaryMax      null.Int64 `json:"salaryMax"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	Counts         struct {
		Applications int `json:"applications"`
	} `json:"_count"`
}

// CareerPostingInput is the create/update payload.
type CareerPostingInput struct {
	Title          string `json:"title" validate:"required"`
	Department     string `json:"department" validate:"required"`
	Location       string `json:"location" validate:"required"`
	EmploymentType string `json:"employmentType" validate:"required,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP REMOTE"`
	Description    string `json:"description" validate:"required"`
	Requirements   string `json:"requirements"`
	SalaryMin      *int64 `json:"salaryMin,omitempty"`
	SalaryMax      *int64 `json:"salaryMax,omitempty"`
	Status         string `json:"status" validate:"required,oneof=ACTIVE DRAFT CLOSED"`
}

// CareerApplication is one application against a posting.
type CareerApplication struct {
	ID          string      `json:"id"`
	PostingID   string      `json:"postingId"`
	FullName    string      `json:"fullName"`
	Email       string      `json:"email"`
	Phone       null.String `json:"phone"`
	ResumeURL   null.String `json:"resumeUrl"`
	CoverLetter null.String `json:"coverLetter"`
	LinkedInURL null.String `json:"linkedInUrl"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// ListCareerPostings fetches one page of career postings.
func (c *Client) ListCareerPostings(ctx context.Context, query url.Values) (*Page[CareerPosting], error) {
	var page Page[CareerPosting]
	if err := c.Get(ctx, "/admin/careers", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateCareerPosting adds a posting.
func (c *Client) CreateCareerPosting(ctx context.Context, in CareerPostingInput) error {
	if err := validate.Struct(in); err != nil {
		return err
	}
	return c.Post(ctx, "/admin/careers", in, nil)
}

// UpdateCareerPosting replaces a posting.
func (c *Client) UpdateCareerPosting(ctx context.Context, id string, in CareerPostingInput) error {
	if err := validate.Struct(in); err != nil {
		return err
	}
	return c.Put(ctx, fmt.Sprintf("/admin/careers/%s", id), in, nil)
}

// DeleteCareerPosting removes a posting.
func (c *Client) DeleteCareerPosting(ctx context.Context, id string) error {
	return c.Delete(ctx, fmt.Sprintf("/admin/careers/%s", id))
}

// ListCareerApplications fetches all applications for one posting.
func (c *Client) ListCareerApplications(ctx context.Context, postingID string) ([]CareerApplication, error) {
	var resp struct {
		Data []CareerApplication `json:"data"`
	}
	if err := c.Get(ctx, fmt.Sprintf("/admin/careers/%s/applications", postingID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// DeleteCareerApplication removes an application.
func (c *Client) DeleteCareerApplication(ctx context.Context, appID string) error {
	return c.Delete(ctx, fmt.Sprintf("/admin/careers/applications/%s", appID))
}
