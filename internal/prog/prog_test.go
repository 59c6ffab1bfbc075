// Public domain.

package prog

import (
	"testing"
	"time"
)

func TestParseEpoch(t *testing.T) {
	for _, c := range []struct {
		in   string
		want time.Time
	}{
		{"2020-05-31T12:30:00", time.Date(2020, 5, 31, 12, 30, 0, 0, time.UTC)},
		{"2020-05-31", time.Date(2020, 5, 31, 0, 0, 0, 0, time.UTC)},
	} {
		got, err := parseEpoch(c.in)
		if err != nil {
			t.Fatal(c.in, err)
		}
		if !got.Equal(c.want) {
			t.Fatalf("%s parsed as %v", c.in, got)
		}
	}
	if _, err := parseEpoch("May 31 2020"); err == nil {
		t.Fatal("expected error for unsupported layout")
	}
}
