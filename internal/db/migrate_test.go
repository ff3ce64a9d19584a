package db

import (
	"os"
	"strings"
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

// The SQL schema and AutoMigrate must describe the same tables: every model
// table and column has to appear in the init migration.
func TestInitMigrationCoversModels(t *testing.T) {
	raw, err := os.ReadFile("../../migrations/0001_init.up.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	sql := strings.ToLower(string(raw))
	cache := &sync.Map{}
	for _, m := range Models() {
		s, err := schema.Parse(m, cache, schema.NamingStrategy{})
		if err != nil {
			t.Fatalf("parse %T: %v", m, err)
		}
		start := strings.Index(sql, "create table "+s.Table+" (")
		if start < 0 {
			t.Errorf("migration missing table %s", s.Table)
			continue
		}
		end := strings.Index(sql[start:], ");")
		if end < 0 {
			t.Fatalf("unterminated create table for %s", s.Table)
		}
		block := sql[start : start+end]
		for name := range s.FieldsByDBName {
			if !strings.Contains(block, name) {
				t.Errorf("table %s missing column %s", s.Table, name)
			}
		}
	}
}
