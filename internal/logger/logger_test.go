package logger

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{level: ""},
		{level: "debug"},
		{level: "warn"},
		{level: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l, err := New(tt.level)
			if tt.wantErr {
				if err == nil {
					t.Errorf("New(%q) error = nil, want error", tt.level)
				}
				return
			}
			if err != nil || l == nil {
				t.Errorf("New(%q) = %v, %v", tt.level, l, err)
			}
		})
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Errorf("OrNop(nil) = nil")
	}
}
