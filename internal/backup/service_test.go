package backup

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderTablesParentsFirst(t *testing.T) {
	tables := []string{"payments", "rentals", "invoices", "customers", "vehicles"}
	orderTables(tables)
	assert.Equal(t, []string{"customers", "vehicles", "invoices", "payments", "rentals"}, tables)
}

func TestOrderTablesDeterministicAcrossArchiveLayouts(t *testing.T) {
	first := []string{"rentals", "payments", "vehicles", "customers"}
	second := []string{"payments", "rentals", "customers", "vehicles"}
	orderTables(first)
	orderTables(second)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"customers", "vehicles", "payments", "rentals"}, first)
}

func TestOrderTablesUnknownLast(t *testing.T) {
	tables := []string{"audit_log", "customers"}
	orderTables(tables)
	assert.Equal(t, []string{"customers", "audit_log"}, tables)
}

func TestToBindValue(t *testing.T) {
	assert.Equal(t, "1250000", toBindValue(json.Number("1250000")))
	assert.Equal(t, "sara", toBindValue("sara"))
	assert.Nil(t, toBindValue(nil))
	assert.Equal(t, []byte(`{"a":1}`), toBindValue(map[string]any{"a": 1}))
}
