package checksum

import (
	"strings"
	"testing"
)

// BenchmarkRaw benchmarks raw fingerprinting
func BenchmarkRaw(b *testing.B) {
	calculator := New()
	ddl := strings.Repeat("CREATE TABLE users (id INT);\n", 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calculator.Raw(ddl)
	}
}

// BenchmarkNormalized benchmarks normalized fingerprinting of a large view
func BenchmarkNormalized(b *testing.B) {
	calculator := New()
	var sb strings.Builder
	sb.WriteString("CREATE OR REPLACE VIEW mart.revenue AS\n")
	for i := 0; i < 500; i++ {
		sb.WriteString("-- column comment\n  SUM(CASE WHEN region = 'EU' THEN amount END) AS eu_amount,\n")
	}
	sb.WriteString("  1 AS one FROM raw.orders")
	ddl := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calculator.Normalized(ddl)
	}
}
