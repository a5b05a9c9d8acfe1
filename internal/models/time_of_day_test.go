package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"09:30", "09:30:00", false},
		{"15:00:59", "15:00:59", false},
		{"25:00", "", true},
		{"noon", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestTimeOfDayOrdering(t *testing.T) {
	if !At(10, 59).Before(*At(11, 0)) {
		t.Error("10:59 should be before 11:00")
	}
	if At(11, 0).Before(*At(11, 0)) {
		t.Error("a time is not before itself")
	}
	if At(15, 0).Compare(*At(14, 59)) != 1 || At(9, 0).Compare(*At(9, 0)) != 0 {
		t.Error("compare mismatch")
	}
}

func TestTimeOfDayScanAndJSON(t *testing.T) {
	var tod TimeOfDay
	if err := tod.Scan([]byte("08:15:00")); err != nil || tod != *At(8, 15) {
		t.Errorf("scan bytes: %v %v", tod, err)
	}
	if err := tod.Scan(time.Date(2024, 1, 1, 16, 5, 7, 0, time.UTC)); err != nil || tod.String() != "16:05:07" {
		t.Errorf("scan time: %v %v", tod, err)
	}
	if err := tod.Scan(42); err == nil {
		t.Error("expected error scanning an int")
	}

	data, err := json.Marshal(At(7, 5))
	if err != nil || string(data) != `"07:05:00"` {
		t.Errorf("marshal: %s %v", data, err)
	}
	if err := json.Unmarshal([]byte(`"17:45"`), &tod); err != nil || tod != *At(17, 45) {
		t.Errorf("unmarshal: %v %v", tod, err)
	}
}
