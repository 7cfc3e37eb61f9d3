package ident

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"orders", "orders"},
		{"  orders  ", "orders"},
		{`"Orders"`, "Orders"},
		{`"say ""hi"""`, `say "hi"`},
		{`"a.b"`, "a.b"},
		{`"`, `"`},
		{`""`, ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Unquote(tt.in); got != tt.want {
				t.Errorf("Unquote(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ORDERS", Normalize("orders"))
	assert.Equal(t, "MIXED CASE", Normalize(`"Mixed Case"`))
	assert.Equal(t, Normalize("Sales"), Normalize(`"SALES"`))
}

func TestCanonicalFQN(t *testing.T) {
	tests := []struct {
		name         string
		db, sch, obj string
		want         string
	}{
		{"three parts", "sales", "raw", "orders", "SALES.RAW.ORDERS"},
		{"no database", "", "raw", "orders", "RAW.ORDERS"},
		{"object only", "", "", "orders", "ORDERS"},
		{"database without schema", "sales", "", "orders", "ORDERS"},
		{"quoted parts", `"Sales"`, `"Raw"`, `"Order ""X"""`, `SALES.RAW.ORDER "X"`},
		{"empty object", "sales", "raw", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalFQN(tt.db, tt.sch, tt.obj))
		})
	}
}

func TestSplitQualified(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"orders", []string{"orders"}},
		{"raw.orders", []string{"raw", "orders"}},
		{"sales.raw.orders", []string{"sales", "raw", "orders"}},
		{`"my.db".raw."or.ders"`, []string{`"my.db"`, "raw", `"or.ders"`}},
		{`"a""b".c`, []string{`"a""b"`, "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitQualified(tt.in))
		})
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"orders"`, Quote("orders"))
	assert.Equal(t, `"say ""hi"""`, Quote(`say "hi"`))
	assert.Equal(t, `say "hi"`, Unquote(Quote(`say "hi"`)))
}

func TestObjectID_Deterministic(t *testing.T) {
	id1 := ObjectID("SALES.RAW.ORDERS")
	id2 := ObjectID("SALES.RAW.ORDERS")

	if id1 != id2 {
		t.Errorf("Expected deterministic ID generation, got different IDs: %s vs %s", id1, id2)
	}
	if id1 == uuid.Nil {
		t.Error("Expected non-nil UUID")
	}
	assert.Equal(t, uuid.Version(5), id1.Version())
}

func TestObjectID_DistinctNames(t *testing.T) {
	names := []string{"SALES.RAW.ORDERS", "SALES.RAW.CUSTOMERS", "RAW.ORDERS", "ORDERS"}
	ids := make(map[uuid.UUID]string)

	for _, n := range names {
		id := ObjectID(n)
		if prev, exists := ids[id]; exists {
			t.Errorf("Collision: %q and %q generated same ID: %s", n, prev, id)
		}
		ids[id] = n
	}
}
