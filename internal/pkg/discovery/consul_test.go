package discovery

import "testing"

func TestParsePort(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"8083", 8083, false},
		{":8083", 8083, false},
		{"0.0.0.0:9000", 9000, false},
		{"localhost", 0, true},
		{":http", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parsePort(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %q", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Expected %d, got %d", tc.want, got)
			}
		})
	}
}
