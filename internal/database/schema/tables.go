// Package schema holds the portfolio tables, the change notification triggers and the seed rows.
// Statements are idempotent so they can run on every boot against the hosted database.
package schema

import "fmt"

// NotifyChannel is the LISTEN/NOTIFY channel fed by the change triggers
const NotifyChannel = "portfolio_changes"

// MaxNotifyPayload stays below the 8000 byte pg_notify limit
const MaxNotifyPayload = 7900

// TableDefinitions contains all the SQL statements to create the database tables
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS app_settings (
		key VARCHAR(255) PRIMARY KEY,
		value TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title TEXT NOT NULL,
		description TEXT,
		tech_stack TEXT[] NOT NULL DEFAULT '{}',
		github_url TEXT,
		live_url TEXT,
		image_url TEXT,
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS skills (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		icon TEXT,
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS timeline_items (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title TEXT NOT NULL,
		organization TEXT NOT NULL,
		description TEXT,
		start_date TEXT NOT NULL,
		end_date TEXT,
		type TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS hero_section (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title TEXT NOT NULL,
		subtitle TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		cta_text TEXT NOT NULL DEFAULT '',
		cta_link TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		badges TEXT[] NOT NULL DEFAULT '{}',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS site_settings (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		site_title TEXT NOT NULL DEFAULT '',
		site_description TEXT NOT NULL DEFAULT '',
		meta_keywords TEXT NOT NULL DEFAULT '',
		footer_text TEXT NOT NULL DEFAULT '',
		resume_pdf_url TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS social_links (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		platform TEXT NOT NULL,
		url TEXT NOT NULL DEFAULT '',
		icon TEXT NOT NULL DEFAULT '',
		display_order INTEGER NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		subject TEXT,
		message TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS chat_messages (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		sender_name TEXT NOT NULL,
		sender_email TEXT,
		message TEXT NOT NULL,
		sender_kind TEXT NOT NULL DEFAULT 'visitor',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_order ON projects(order_index, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_skills_order ON skills(order_index, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_timeline_items_order ON timeline_items(order_index, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_contact_messages_created_at ON contact_messages(created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_messages_created_at ON chat_messages(created_at)`,
}

// TableNames lists the portfolio tables in creation order; each one gets a change trigger
var TableNames = []string{
	"projects",
	"skills",
	"timeline_items",
	"hero_section",
	"site_settings",
	"social_links",
	"contact_messages",
	"chat_messages",
}

// NotifyFunction publishes {type, table, schema, record, old_record} on NotifyChannel.
// Rows too large for NOTIFY are replaced by their record_id.
var NotifyFunction = fmt.Sprintf(`CREATE OR REPLACE FUNCTION notify_portfolio_change() RETURNS trigger AS $$
DECLARE
	rec jsonb;
	old_rec jsonb;
	payload jsonb;
BEGIN
	IF TG_OP <> 'DELETE' THEN
		rec := to_jsonb(NEW);
	END IF;
	IF TG_OP <> 'INSERT' THEN
		old_rec := to_jsonb(OLD);
	END IF;

	payload := jsonb_build_object(
		'type', TG_OP,
		'table', TG_TABLE_NAME,
		'schema', TG_TABLE_SCHEMA,
		'record', rec,
		'old_record', old_rec
	);

	IF octet_length(payload::text) > %d THEN
		payload := jsonb_build_object(
			'type', TG_OP,
			'table', TG_TABLE_NAME,
			'schema', TG_TABLE_SCHEMA,
			'record_id', COALESCE(rec->>'id', old_rec->>'id')
		);
	END IF;

	PERFORM pg_notify('%s', payload::text);
	RETURN NULL;
END;
$$ LANGUAGE plpgsql`, MaxNotifyPayload, NotifyChannel)

// TriggerStatements installs the change trigger on every table
func TriggerStatements() []string {
	statements := make([]string, 0, len(TableNames)*2+1)
	statements = append(statements, NotifyFunction)
	for _, table := range TableNames {
		statements = append(statements,
			fmt.Sprintf(`DROP TRIGGER IF EXISTS %s_notify_change ON %s`, table, table),
			fmt.Sprintf(`CREATE TRIGGER %s_notify_change AFTER INSERT OR UPDATE OR DELETE ON %s FOR EACH ROW EXECUTE FUNCTION notify_portfolio_change()`, table, table),
		)
	}
	return statements
}

// SeedStatements insert the singleton rows the public page expects, only when missing
var SeedStatements = []string{
	`INSERT INTO hero_section (title, subtitle, description, cta_text, cta_link, image_url, badges)
	SELECT 'Ron Hezykiel Arbois', 'Full-Stack Developer and UI/UX Designer',
		'I build fast, accessible web applications and the interfaces that make them a pleasure to use.',
		'View my work', '#projects', '/2.jpg', ARRAY['Available']
	WHERE NOT EXISTS (SELECT 1 FROM hero_section)`,
	`INSERT INTO site_settings (site_title, site_description, meta_keywords, footer_text)
	SELECT 'Ron Hezykiel Arbois | Portfolio', 'Portfolio of a full-stack developer and UI/UX designer',
		'portfolio, full-stack, developer, ui, ux', 'Built with care.'
	WHERE NOT EXISTS (SELECT 1 FROM site_settings)`,
	`INSERT INTO social_links (platform, url, icon, display_order)
	SELECT v.platform, v.url, v.icon, v.display_order
	FROM (VALUES
		('GitHub', 'https://github.com/rllL1', 'github', 0),
		('LinkedIn', 'https://www.linkedin.com/', 'linkedin', 1),
		('Email', '', 'mail', 2)
	) AS v(platform, url, icon, display_order)
	WHERE NOT EXISTS (SELECT 1 FROM social_links)`,
}
