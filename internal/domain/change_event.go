package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	svix "github.com/standard-webhooks/standard-webhooks/libraries/go"
	"github.com/tidwall/gjson"
)

//go:generate mockgen -destination mocks/mock_change_publisher.go -package mocks github.com/rllL1/portfolio/internal/domain ChangePublisher

// ChangeType is the DML operation that produced a change
type ChangeType string

const (
	ChangeInsert ChangeType = "INSERT"
	ChangeUpdate ChangeType = "UPDATE"
	ChangeDelete ChangeType = "DELETE"
)

// Tables that emit change events
const (
	TableProjects        = "projects"
	TableSkills          = "skills"
	TableTimelineItems   = "timeline_items"
	TableHeroSection     = "hero_section"
	TableSiteSettings    = "site_settings"
	TableSocialLinks     = "social_links"
	TableContactMessages = "contact_messages"
	TableChatMessages    = "chat_messages"
)

// WatchedTables lists every table with a change trigger
var WatchedTables = []string{
	TableProjects,
	TableSkills,
	TableTimelineItems,
	TableHeroSection,
	TableSiteSettings,
	TableSocialLinks,
	TableContactMessages,
	TableChatMessages,
}

// PublicContentTables feed the cached public portfolio snapshot
var PublicContentTables = map[string]bool{
	TableProjects:      true,
	TableSkills:        true,
	TableTimelineItems: true,
	TableHeroSection:   true,
	TableSiteSettings:  true,
	TableSocialLinks:   true,
}

func IsWatchedTable(table string) bool {
	for _, t := range WatchedTables {
		if t == table {
			return true
		}
	}
	return false
}

// ChangeEvent carries the changed row so subscribers can patch their state instead of refetching.
// Record is empty for deletes and when the row did not fit in the notification payload.
type ChangeEvent struct {
	Type      ChangeType      `json:"type"`
	Table     string          `json:"table"`
	Schema    string          `json:"schema"`
	Record    json.RawMessage `json:"record,omitempty"`
	OldRecord json.RawMessage `json:"old_record,omitempty"`
	RecordID  string          `json:"record_id,omitempty"`
}

// ParseChangeEvent decodes the trigger / database webhook payload
func ParseChangeEvent(payload []byte) (*ChangeEvent, error) {
	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("invalid change payload: not JSON")
	}
	doc := gjson.ParseBytes(payload)

	ev := &ChangeEvent{
		Type:   ChangeType(strings.ToUpper(doc.Get("type").String())),
		Table:  doc.Get("table").String(),
		Schema: doc.Get("schema").String(),
	}
	switch ev.Type {
	case ChangeInsert, ChangeUpdate, ChangeDelete:
	default:
		return nil, fmt.Errorf("invalid change payload: unknown type %q", ev.Type)
	}
	if ev.Table == "" {
		return nil, fmt.Errorf("invalid change payload: table is required")
	}
	if ev.Schema == "" {
		ev.Schema = "public"
	}

	if rec := doc.Get("record"); rec.IsObject() {
		ev.Record = json.RawMessage(rec.Raw)
		ev.RecordID = rec.Get("id").String()
	}
	if old := doc.Get("old_record"); old.IsObject() {
		ev.OldRecord = json.RawMessage(old.Raw)
		if ev.RecordID == "" {
			ev.RecordID = old.Get("id").String()
		}
	}
	if ev.RecordID == "" {
		ev.RecordID = doc.Get("record_id").String()
	}

	return ev, nil
}

// ChangePublisher fans change events out to subscribers
type ChangePublisher interface {
	Publish(ctx context.Context, event ChangeEvent)
}

// VerifyDatabaseWebhook checks the standard-webhooks signature (webhook-id, webhook-timestamp
// and webhook-signature headers) of a hosted database webhook delivery
func VerifyDatabaseWebhook(payload []byte, header http.Header, secret string) error {
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return fmt.Errorf("failed to create webhook verifier: %w", err)
	}

	headers := http.Header{}
	headers.Set("Webhook-Id", header.Get("Webhook-Id"))
	headers.Set("Webhook-Timestamp", header.Get("Webhook-Timestamp"))
	headers.Set("Webhook-Signature", header.Get("Webhook-Signature"))

	if err := wh.Verify(payload, headers); err != nil {
		return fmt.Errorf("signature validation failed: %w", err)
	}
	return nil
}
