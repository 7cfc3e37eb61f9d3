package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func refParts(refs []reference) [][]string {
	out := make([][]string, len(refs))
	for i, r := range refs {
		out[i] = r.parts
	}
	return out
}

func TestScanReferences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want [][]string
	}{
		{"two parts", "SELECT * FROM RAW.ORDERS", [][]string{{"RAW", "ORDERS"}}},
		{"three parts", "SELECT * FROM SALES.RAW.ORDERS", [][]string{{"SALES", "RAW", "ORDERS"}}},
		{"spaces around dots", "FROM SALES . RAW .ORDERS", [][]string{{"SALES", "RAW", "ORDERS"}}},
		{"quoted parts", `FROM "SALES"."MY RAW"."O.X"`, [][]string{{`"SALES"`, `"MY RAW"`, `"O.X"`}}},
		{"several", "FROM A.B JOIN C.D.E ON A.B.X = C.D.E.Y", [][]string{{"A", "B"}, {"C", "D", "E"}, {"A", "B", "X"}, {"C", "D", "E"}}},
		{"no references", "CREATE TABLE T (X INT)", nil},
		{"numeric literal", "SELECT 1.5, 2.0", nil},
		{"empty quoted part", `SELECT "".B`, nil},
		{"function call", "SELECT UTIL.FN(1)", [][]string{{"UTIL", "FN"}}},
		{"dollar in name", "FROM RAW.PRICE$USD", [][]string{{"RAW", "PRICE$USD"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, refParts(scanReferences(tt.in)))
		})
	}
}

func TestScanReferences_WordGuards(t *testing.T) {
	// No match may start inside a word.
	assert.Nil(t, scanReferences("ÉRAW.ORDERS"))

	// A trailing non-ASCII letter rejects the three-part form; the two-part
	// prefix is kept.
	assert.Equal(t, [][]string{{"A", "B"}}, refParts(scanReferences("A.B.CÉ")))

	// A bare name may stop before '$' to satisfy the trailing guard.
	assert.Equal(t, [][]string{{"A", "B", "C"}}, refParts(scanReferences("A.B.C$É")))
}

func TestIdentEnds(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, identEnds("ABC.", 0))
	assert.Equal(t, []int{5}, identEnds(`"A.B"x`, 0))
	assert.Nil(t, identEnds(`""`, 0))
	assert.Nil(t, identEnds(`"open`, 0))
	assert.Nil(t, identEnds("1AB", 0))
	assert.Nil(t, identEnds("", 0))
}
