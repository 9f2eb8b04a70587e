package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies helper keys stay stable.
func TestHelperKeyNames(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		attr    slog.Attr
		wantKey string
		wantVal string
	}{
		{"Path", Path("recipes/soup.md"), KeyPath, "recipes/soup.md"},
		{"Dest", Dest("dist/soup.html"), KeyDest, "dist/soup.html"},
		{"Title", Title("Soup"), KeyTitle, "Soup"},
		{"Stage", Stage("render"), KeyStage, "render"},
		{"Count", Count(3), KeyCount, "3"},
		{"Template", Template("recipe"), KeyTemplate, "recipe"},
		{"Error", Error(errors.New("boom")), KeyError, "boom"},
		{"NilError", Error(nil), KeyError, ""},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.wantKey {
			t.Errorf("%s: key = %s, want %s", tc.name, tc.attr.Key, tc.wantKey)
		}
		if got := tc.attr.Value.String(); got != tc.wantVal {
			t.Errorf("%s: value = %s, want %s", tc.name, got, tc.wantVal)
		}
	}
}

func TestDurationMS(t *testing.T) {
	t.Parallel()

	a := DurationMS(12.5)
	if a.Key != KeyDurationMS {
		t.Fatalf("key = %s, want %s", a.Key, KeyDurationMS)
	}
	if a.Value.Float64() != 12.5 {
		t.Errorf("value = %v, want 12.5", a.Value.Float64())
	}
}
