package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripSelfDatabaseReferences(t *testing.T) {
	tests := []struct {
		name string
		ddl  string
		db   string
		want string
	}{
		{
			name: "bare reference",
			ddl:  "CREATE VIEW V AS SELECT * FROM MYDB.SCH.T",
			db:   "MYDB",
			want: "CREATE VIEW V AS SELECT * FROM SCH.T",
		},
		{
			name: "case-insensitive database",
			ddl:  "CREATE VIEW V AS SELECT * FROM mydb.sch.t",
			db:   "MyDb",
			want: "CREATE VIEW V AS SELECT * FROM sch.t",
		},
		{
			name: "quoted database part",
			ddl:  `CREATE VIEW V AS SELECT * FROM "MYDB"."Sch"."T"`,
			db:   "mydb",
			want: `CREATE VIEW V AS SELECT * FROM "Sch"."T"`,
		},
		{
			name: "spaces around dots",
			ddl:  "SELECT * FROM MYDB . SCH . T",
			db:   "MYDB",
			want: "SELECT * FROM SCH.T",
		},
		{
			name: "other database untouched",
			ddl:  "SELECT * FROM OTHER.SCH.T JOIN MYDB.SCH.U",
			db:   "MYDB",
			want: "SELECT * FROM OTHER.SCH.T JOIN SCH.U",
		},
		{
			name: "two-part reference untouched",
			ddl:  "SELECT * FROM MYDB.T",
			db:   "MYDB",
			want: "SELECT * FROM MYDB.T",
		},
		{
			name: "inside string literal untouched",
			ddl:  "SELECT 'MYDB.SCH.T' AS C FROM MYDB.SCH.T",
			db:   "MYDB",
			want: "SELECT 'MYDB.SCH.T' AS C FROM SCH.T",
		},
		{
			name: "header rewritten",
			ddl:  "CREATE TABLE MYDB.SCH.T (X INT)",
			db:   "MYDB",
			want: "CREATE TABLE SCH.T (X INT)",
		},
		{
			name: "empty database name",
			ddl:  "SELECT * FROM MYDB.SCH.T",
			db:   "",
			want: "SELECT * FROM MYDB.SCH.T",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripSelfDatabaseReferences(tt.ddl, tt.db)
			if got != tt.want {
				t.Errorf("StripSelfDatabaseReferences() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripSelfDatabaseReferences_Property(t *testing.T) {
	got := StripSelfDatabaseReferences("CREATE VIEW V AS SELECT * FROM MYDB.SCH.T", "MYDB")
	assert.Contains(t, got, "SCH.T")
	assert.NotContains(t, got, "MYDB.SCH.T")
}

func TestStripSelfDatabaseReferences_ThenExtract(t *testing.T) {
	cleaned := StripSelfDatabaseReferences(`CREATE OR REPLACE VIEW "SALES"."MART"."V" AS SELECT * FROM SALES.RAW.ORDERS`, "sales")

	md, err := Extract(cleaned)
	assert.NoError(t, err)
	assert.Equal(t, "", md.Database)
	assert.Equal(t, "MART", md.Schema)
	assert.Equal(t, "V", md.ObjectName)
	assert.Contains(t, md.DDL, "FROM RAW.ORDERS")
}
