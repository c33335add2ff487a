package handler

import (
	"net/http/httptest"
	"testing"
)

func TestDateQuery(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"absent", "/attendance", "", false},
		{"valid", "/attendance?date=2024-01-15", "2024-01-15", false},
		{"malformed", "/attendance?date=15-01-2024", "", true},
		{"garbage", "/attendance?date=yesterday", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			got, err := dateQuery(r, "date")
			if (err != nil) != tt.wantErr {
				t.Fatalf("dateQuery() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("dateQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}
