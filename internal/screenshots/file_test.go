package screenshots

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		wantID    int
		wantTaken time.Time
		ok        bool
	}{
		{"20170101010101_1_440.png", 440, time.Date(2017, 1, 1, 1, 1, 1, 0, time.UTC), true},
		{"20201231235959_12_570.jpg", 570, time.Date(2020, 12, 31, 23, 59, 59, 0, time.UTC), true},
		{"garbage_440.png", 440, time.Time{}, true},
		{"440.png", 0, time.Time{}, false},
		{"vacation.png", 0, time.Time{}, false},
		{"20170101010101_1_abc.png", 0, time.Time{}, false},
		{"20170101010101_1_-5.png", 0, time.Time{}, false},
	}

	for _, tt := range tests {
		f, err := Parse("/shots/" + tt.name)
		if tt.ok && err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tt.name, err)
		}
		if !tt.ok && err == nil {
			t.Fatalf("Parse(%q) expected error, got app id %d", tt.name, f.AppID)
		}
		if !tt.ok {
			continue
		}
		if f.AppID != tt.wantID {
			t.Fatalf("Parse(%q) app id = %d, want %d", tt.name, f.AppID, tt.wantID)
		}
		if !f.Taken.Equal(tt.wantTaken) {
			t.Fatalf("Parse(%q) taken = %v, want %v", tt.name, f.Taken, tt.wantTaken)
		}
		if f.Name != tt.name {
			t.Fatalf("Parse(%q) name = %q, want the full filename", tt.name, f.Name)
		}
	}
}

func TestIsImage(t *testing.T) {
	images := []string{"a.jpg", "a.JPG", "shot.jpeg", "shot.png", "old.bmp"}
	for _, name := range images {
		if !IsImage(name) {
			t.Fatalf("IsImage(%q) = false, want true", name)
		}
	}

	other := []string{"notes.txt", "thumb.db", "screenshot", "a.jpg.part", "clip.mp4"}
	for _, name := range other {
		if IsImage(name) {
			t.Fatalf("IsImage(%q) = true, want false", name)
		}
	}
}

func TestStem(t *testing.T) {
	if got := Stem("20170101010101_1.jpg"); got != "20170101010101_1" {
		t.Fatalf("Stem = %q", got)
	}
	if got := Stem("noext"); got != "noext" {
		t.Fatalf("Stem = %q", got)
	}
}
