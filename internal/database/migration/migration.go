package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_ontology_terms",
		SQL: `CREATE TABLE IF NOT EXISTS ontology_terms (
  ontology     TEXT        NOT NULL,
  id           TEXT        NOT NULL,
  name         TEXT        NOT NULL DEFAULT '',
  definition   TEXT        NOT NULL DEFAULT '',
  comment      TEXT        NOT NULL DEFAULT '',
  namespace    TEXT        NOT NULL DEFAULT '',
  synonyms     TEXT[]      NOT NULL DEFAULT '{}',
  xrefs        TEXT[]      NOT NULL DEFAULT '{}',
  alt_ids      TEXT[]      NOT NULL DEFAULT '{}',
  obsolete     BOOLEAN     NOT NULL DEFAULT false,
  replaced_by  TEXT        NOT NULL DEFAULT '',
  has_children BOOLEAN     NOT NULL DEFAULT false,
  imported_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  PRIMARY KEY (ontology, id)
);`,
	},
	{
		Name: "create_table_ontology_relations",
		SQL: `CREATE TABLE IF NOT EXISTS ontology_relations (
  ontology  TEXT NOT NULL,
  term_id   TEXT NOT NULL,
  parent_id TEXT NOT NULL,
  type      TEXT NOT NULL DEFAULT 'is_a',
  PRIMARY KEY (ontology, term_id, parent_id, type)
);`,
	},
	{
		Name: "create_index_ontology_terms_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_ontology_terms_name ON ontology_terms (ontology, lower(name));`,
	},
	{
		Name: "create_index_ontology_terms_alt_ids",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_ontology_terms_alt_ids ON ontology_terms USING GIN (alt_ids);`,
	},
	{
		Name: "create_index_ontology_relations_parent",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_ontology_relations_parent ON ontology_relations (ontology, parent_id);`,
	},
}

// EnsureMigrated runs the schema steps unless the ontology_terms sentinel table already exists.
func EnsureMigrated(ctx context.Context, db *sql.DB, log logrus.FieldLogger, dbHost string) error {
	start := time.Now()
	log = log.WithFields(logrus.Fields{"component": "database", "db_host": dbHost})

	log.WithField("event", "db_migration_check").Info("checking schema")

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT to_regclass('public.ontology_terms') IS NOT NULL").Scan(&exists)
	if err != nil {
		log.WithFields(logrus.Fields{
			"event":       "db_migration_failed",
			"duration_ms": time.Since(start).Milliseconds(),
		}).WithError(err).Error("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.WithFields(logrus.Fields{
			"event":       "db_migration_skip",
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("schema already exists, skipping migration")
		return nil
	}

	log.WithField("event", "db_migration_start").Info("migrating schema")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.WithFields(logrus.Fields{
				"event":            "db_migration_failed",
				"migration_step":   step.Name,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			}).WithError(err).Error("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.WithFields(logrus.Fields{
			"event":            "db_migration_step",
			"migration_step":   step.Name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		}).Debug("migration step applied")
	}

	log.WithFields(logrus.Fields{
		"event":       "db_migration_success",
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("schema migrated")

	return nil
}
