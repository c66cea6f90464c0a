package datemath_test

import (
	"testing"
	"time"

	"pacekeeper/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	if _, err := datemath.NewParser("Europe/Madrid"); err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}
	if _, err := datemath.NewParser("Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	today := datemath.NewDate(2024, 5, 1)

	tests := []struct {
		name     string
		relative string
		want     datemath.Date
		wantErr  bool
	}{
		{name: "Empty", relative: "", want: today},
		{name: "Today", relative: "today", want: today},
		{name: "Hoy", relative: "Hoy", want: today},
		{name: "Tomorrow", relative: "tomorrow", want: today.AddDays(1)},
		{name: "Ayer", relative: "ayer", want: today.AddDays(-1)},
		{name: "ISO", relative: "2024-04-20", want: datemath.NewDate(2024, 4, 20)},
		{name: "In 3 days", relative: "in 3 days", want: today.AddDays(3)},
		{name: "En 2 semanas", relative: "en 2 semanas", want: today.AddDays(14)},
		{name: "In 1 month", relative: "in 1 month", want: datemath.NewDate(2024, 6, 1)},
		{name: "Invalid duration", relative: "in a few days", wantErr: true},
		{name: "Next Monday from Wed", relative: "next monday", want: today.AddDays(5)},
		{name: "Next Wednesday from Wed", relative: "next wednesday", want: today.AddDays(7)},
		{name: "Last Monday from Wed", relative: "last monday", want: today.AddDays(-2)},
		{name: "Unknown weekday", relative: "next funday", wantErr: true},
		{name: "Garbage", relative: "some random day", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, base)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToday_UsesLocation(t *testing.T) {
	parser, err := datemath.NewParser("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 02:00 UTC is still the previous evening in New York.
	got := parser.Today(time.Date(2024, 5, 2, 2, 0, 0, 0, time.UTC))
	if got.String() != "2024-05-01" {
		t.Errorf("Today() = %s, want 2024-05-01", got)
	}
}
