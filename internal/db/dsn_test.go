package db

import "testing"

func TestNormalizeDSN(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"url passthrough", "postgres://u:p@localhost:5432/offerd?sslmode=disable", "postgres://u:p@localhost:5432/offerd?sslmode=disable"},
		{"quoted url", `"postgres://u:p@localhost/offerd"`, "postgres://u:p@localhost/offerd"},
		{"kv adds sslmode", "host=localhost user=u dbname=offerd", "host=localhost user=u dbname=offerd sslmode=disable"},
		{"kv keeps sslmode", "host=localhost sslmode=require", "host=localhost sslmode=require"},
		{"kv collapses whitespace", "  host=localhost   dbname=offerd  ", "host=localhost dbname=offerd sslmode=disable"},
		{"empty", "", ""},
		{"opaque passthrough", "not-a-dsn", "not-a-dsn"},
	}
	for _, tc := range cases {
		if got := NormalizeDSN(tc.in); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}
