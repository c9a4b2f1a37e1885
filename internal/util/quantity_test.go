package util_test

import (
	"testing"

	"github.com/spachava753/benchreg/internal/util"
)

func TestParseMemSize(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"32G", 32768, false},
		{"4GiB", 4096, false},
		{"512M", 512, false},
		{"2048", 2048, false},
		{"1T", 1048576, false},
		{"0.5G", 512, false},
		{" 8g ", 8192, false},
		{"", 0, true},
		{"lots", 0, true},
		{"8Q", 0, true},
	}
	for _, tt := range tests {
		got, err := util.ParseMemSize(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMemSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseMemSize(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
