package migrations

import (
	"context"
	"fmt"

	"github.com/rllL1/portfolio/config"
)

// V2Migration upgrades tables created by the previous Next.js site:
// contact_messages.read becomes is_read and chat_messages.is_admin becomes sender_kind.
type V2Migration struct{}

func (m *V2Migration) GetMajorVersion() float64 {
	return 2.0
}

func (m *V2Migration) Description() string {
	return "rename legacy read flag and derive chat sender kinds"
}

var v2Statements = []string{
	`DO $$
	BEGIN
		IF EXISTS (SELECT 1 FROM information_schema.columns
			WHERE table_schema = current_schema() AND table_name = 'contact_messages' AND column_name = 'read') THEN
			IF EXISTS (SELECT 1 FROM information_schema.columns
				WHERE table_schema = current_schema() AND table_name = 'contact_messages' AND column_name = 'is_read') THEN
				UPDATE contact_messages SET is_read = is_read OR COALESCE(read, FALSE);
				ALTER TABLE contact_messages DROP COLUMN read;
			ELSE
				ALTER TABLE contact_messages RENAME COLUMN read TO is_read;
			END IF;
		END IF;
	END $$`,
	`ALTER TABLE chat_messages ADD COLUMN IF NOT EXISTS sender_kind TEXT NOT NULL DEFAULT 'visitor'`,
	`DO $$
	BEGIN
		IF EXISTS (SELECT 1 FROM information_schema.columns
			WHERE table_schema = current_schema() AND table_name = 'chat_messages' AND column_name = 'is_admin') THEN
			UPDATE chat_messages SET sender_kind = CASE
				WHEN NOT COALESCE(is_admin, FALSE) THEN 'visitor'
				WHEN sender_name = 'AI Assistant' THEN 'assistant'
				WHEN sender_name = 'Auto Reply' THEN 'auto_reply'
				ELSE 'admin'
			END;
			ALTER TABLE chat_messages DROP COLUMN is_admin;
		END IF;
	END $$`,
	`ALTER TABLE hero_section ADD COLUMN IF NOT EXISTS badges TEXT[] NOT NULL DEFAULT '{}'`,
	`ALTER TABLE site_settings ADD COLUMN IF NOT EXISTS resume_pdf_url TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE projects ADD COLUMN IF NOT EXISTS updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()`,
	`ALTER TABLE skills ADD COLUMN IF NOT EXISTS updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()`,
	`ALTER TABLE timeline_items ADD COLUMN IF NOT EXISTS updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()`,
}

func (m *V2Migration) Up(ctx context.Context, cfg *config.Config, db DBExecutor) error {
	for _, stmt := range v2Statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to upgrade legacy columns: %w", err)
		}
	}
	return nil
}

func init() {
	Register(&V2Migration{})
}
