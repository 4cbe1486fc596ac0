package respond

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		hidden  string
		visible string
	}{
		{
			"db password in dsn",
			errors.New(`connect "postgres://app:hunter2@db:5432/catalog": refused`),
			"hunter2",
			"db:5432",
		},
		{
			"bearer token",
			errors.New("upstream rejected Bearer abc.def.ghi"),
			"abc.def.ghi",
			"upstream rejected",
		},
		{
			"raw jwt",
			errors.New("bad token eyJhbGciOi.eyJzdWIiOi.c2lnbmF0dXJl"),
			"eyJhbGciOi",
			"bad token",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.err)
			if strings.Contains(got, tt.hidden) {
				t.Errorf("secret %q survived sanitization: %q", tt.hidden, got)
			}
			if !strings.Contains(got, tt.visible) {
				t.Errorf("context %q lost during sanitization: %q", tt.visible, got)
			}
		})
	}

	if got := Sanitize(nil); got != "" {
		t.Errorf("Sanitize(nil) = %q, want empty", got)
	}
}
