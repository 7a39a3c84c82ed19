package render

import (
	"testing"
	"time"

	"inkwell/internal/types"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		ago  time.Duration
		want string
	}{
		{ago: 30 * time.Second, want: "Just now"},
		{ago: -time.Minute, want: "Just now"},
		{ago: 5 * time.Minute, want: "5 min ago"},
		{ago: 59 * time.Minute, want: "59 min ago"},
		{ago: 3 * time.Hour, want: "3 hour ago"},
		{ago: 49 * time.Hour, want: "2 day ago"},
	}
	for _, tc := range cases {
		if got := RelativeTime(now.Add(-tc.ago), now); got != tc.want {
			t.Fatalf("%v: expected %q, got %q", tc.ago, tc.want, got)
		}
	}
	if got := RelativeTime(time.Time{}, now); got != "" {
		t.Fatalf("expected empty for zero time, got %q", got)
	}
}

func TestGreeting(t *testing.T) {
	cases := map[int]string{
		0:  "Good Night",
		4:  "Good Night",
		5:  "Good Morning",
		11: "Good Morning",
		12: "Good Noon",
		15: "Good Afternoon",
		17: "Good Evening",
		20: "Good Night",
		23: "Good Night",
	}
	for hour, want := range cases {
		if got := Greeting(hour); got != want {
			t.Fatalf("hour %d: expected %q, got %q", hour, want, got)
		}
	}
}

func TestFactoriesExposeActions(t *testing.T) {
	item := NewNavItem("1", "Work")
	card := NewCard(types.Note{ID: "n", Title: "T", Text: "line one\nline two"}, time.Now())
	for _, actions := range [][]Action{item.Actions(), card.Actions()} {
		if len(actions) != 2 || actions[0] != ActionEdit || actions[1] != ActionDelete {
			t.Fatalf("unexpected actions: %v", actions)
		}
	}
	if item.Active {
		t.Fatalf("expected new nav item inactive")
	}
	if got := card.Preview(0); got != "line one" {
		t.Fatalf("unexpected preview: %q", got)
	}
	if got := card.Preview(6); got != "lin..." {
		t.Fatalf("unexpected truncated preview: %q", got)
	}
}
