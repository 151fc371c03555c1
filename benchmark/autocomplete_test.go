// Package benchmark holds load benchmarks that run against a live server
// on localhost:8080, seeded via benchmark/seed. They are skipped unless
// GORMBASE_JWT_SECRET is set.
package benchmark

import (
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gormbase/gormbase/pkg/middleware"
)

const serverURL = "http://localhost:8080"

func benchToken(b *testing.B) string {
	secret := os.Getenv("GORMBASE_JWT_SECRET")
	if secret == "" {
		b.Skip("Skipping benchmark. Set GORMBASE_JWT_SECRET to the running server's secret.")
	}

	token, err := middleware.IssueToken([]byte(secret), "bench", time.Hour)
	if err != nil {
		b.Fatalf("failed to issue token: %v", err)
	}
	return token
}

func BenchmarkAutocomplete(b *testing.B) {
	token := benchToken(b)

	b.Run("short term: GET /autocomplete/variables?q=bench", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			r, _ := http.NewRequest("GET", serverURL+"/autocomplete/variables?q=bench", nil)
			r.Header.Add("Authorization", "Bearer "+token)
			_, _ = http.DefaultClient.Do(r)
		}
	})

	b.Run("narrow term: GET /autocomplete/variables?q=bench_var_104", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			r, _ := http.NewRequest("GET", serverURL+"/autocomplete/variables?q=bench_var_104", nil)
			r.Header.Add("Authorization", "Bearer "+token)
			_, _ = http.DefaultClient.Do(r)
		}
	})

	b.Run("anonymous: GET /autocomplete/variables?q=bench", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			r, _ := http.NewRequest("GET", serverURL+"/autocomplete/variables?q=bench", nil)
			_, _ = http.DefaultClient.Do(r)
		}
	})
}

func BenchmarkFetchVariable(b *testing.B) {
	token := benchToken(b)

	b.Run("GET /variables/BENCH_VAR_1042", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			r, _ := http.NewRequest("GET", serverURL+"/variables/BENCH_VAR_1042", nil)
			r.Header.Add("Authorization", "Bearer "+token)
			_, _ = http.DefaultClient.Do(r)
		}
	})
}
