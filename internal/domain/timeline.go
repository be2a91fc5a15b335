package domain

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_timeline_service.go -package mocks github.com/rllL1/portfolio/internal/domain TimelineService
//go:generate mockgen -destination mocks/mock_timeline_repository.go -package mocks github.com/rllL1/portfolio/internal/domain TimelineRepository

// TimelineKind separates the work and education columns of the resume
type TimelineKind string

const (
	TimelineKindWork      TimelineKind = "work"
	TimelineKindEducation TimelineKind = "education"
)

func ParseTimelineKind(s string) (TimelineKind, error) {
	switch TimelineKind(strings.ToLower(strings.TrimSpace(s))) {
	case TimelineKindWork:
		return TimelineKindWork, nil
	case TimelineKindEducation:
		return TimelineKindEducation, nil
	}
	return "", NewValidationError(fmt.Sprintf("invalid timeline type: %q", s))
}

type TimelineItem struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Organization string       `json:"organization"`
	Description  *string      `json:"description"`
	StartDate    string       `json:"start_date"`
	EndDate      *string      `json:"end_date"`
	Kind         TimelineKind `json:"type"`
	OrderIndex   int          `json:"order_index"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// ScanTimelineItem scans a timeline row and rejects unknown kinds
func ScanTimelineItem(scanner Scanner) (*TimelineItem, error) {
	var (
		item        TimelineItem
		kind        string
		description sql.NullString
		endDate     sql.NullString
	)
	if err := scanner.Scan(
		&item.ID,
		&item.Title,
		&item.Organization,
		&description,
		&item.StartDate,
		&endDate,
		&kind,
		&item.OrderIndex,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}

	k, err := ParseTimelineKind(kind)
	if err != nil {
		return nil, fmt.Errorf("timeline item %s: %w", item.ID, err)
	}
	item.Kind = k
	item.Description = fromNullString(description)
	item.EndDate = fromNullString(endDate)
	return &item, nil
}

type TimelineItemRequest struct {
	ID           string  `json:"id,omitempty"`
	Title        string  `json:"title"`
	Organization string  `json:"organization"`
	Description  *string `json:"description"`
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date"`
	Kind         string  `json:"type"`
	OrderIndex   *int    `json:"order_index,omitempty"`
}

// Validate keeps start/end dates as free text ("2023", "Jan 2024", "Present")
func (r *TimelineItemRequest) Validate(requireID bool) (*TimelineItem, error) {
	r.ID = strings.TrimSpace(r.ID)
	if requireID && r.ID == "" {
		return nil, NewValidationError("id is required")
	}

	title := strings.TrimSpace(r.Title)
	if title == "" {
		return nil, NewValidationError("title is required")
	}
	organization := strings.TrimSpace(r.Organization)
	if organization == "" {
		return nil, NewValidationError("organization is required")
	}
	startDate := strings.TrimSpace(r.StartDate)
	if startDate == "" {
		return nil, NewValidationError("start_date is required")
	}

	kind, err := ParseTimelineKind(r.Kind)
	if err != nil {
		return nil, err
	}

	if r.OrderIndex != nil && *r.OrderIndex < 0 {
		return nil, NewValidationError("order_index must be zero or greater")
	}

	item := &TimelineItem{
		ID:           r.ID,
		Title:        title,
		Organization: organization,
		Description:  OptionalString(r.Description),
		StartDate:    startDate,
		EndDate:      OptionalString(r.EndDate),
		Kind:         kind,
		OrderIndex:   AppendOrder,
	}
	if r.OrderIndex != nil {
		item.OrderIndex = *r.OrderIndex
	}
	return item, nil
}

type TimelineService interface {
	ListTimeline(ctx context.Context) ([]*TimelineItem, error)
	CreateTimelineItem(ctx context.Context, item *TimelineItem) (*TimelineItem, error)
	UpdateTimelineItem(ctx context.Context, item *TimelineItem) (*TimelineItem, error)
	DeleteTimelineItem(ctx context.Context, id string) error
	ReorderTimeline(ctx context.Context, ids []string) error
}

type TimelineRepository interface {
	List(ctx context.Context) ([]*TimelineItem, error)
	GetByID(ctx context.Context, id string) (*TimelineItem, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, item *TimelineItem) error
	Update(ctx context.Context, item *TimelineItem) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}
