package dates

import (
	"testing"
	"time"
)

func TestDayNormalizesAcrossTimezones(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)

	// 23:30 UTC on the 14th is already the 15th in Jakarta.
	instant := time.Date(2024, 3, 14, 23, 30, 0, 0, time.UTC)

	if got := Format(Day(instant, time.UTC)); got != "2024-03-14" {
		t.Errorf("Day in UTC = %s, want 2024-03-14", got)
	}
	if got := Format(Day(instant, jakarta)); got != "2024-03-15" {
		t.Errorf("Day in WIB = %s, want 2024-03-15", got)
	}
}

func TestDaySameDayInstantsCollapse(t *testing.T) {
	morning := time.Date(2024, 3, 15, 8, 55, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 15, 17, 30, 0, 0, time.UTC)

	if !Day(morning, time.UTC).Equal(Day(evening, time.UTC)) {
		t.Error("instants on the same civil day produced different day values")
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	day, err := Parse("2024-03-15")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := Format(day); got != "2024-03-15" {
		t.Errorf("round trip = %s", got)
	}
}

func TestAddDays(t *testing.T) {
	day, _ := Parse("2024-02-28")
	if got := Format(AddDays(day, 1)); got != "2024-02-29" {
		t.Errorf("AddDays over leap day = %s, want 2024-02-29", got)
	}
	if got := Format(AddDays(day, -7)); got != "2024-02-21" {
		t.Errorf("AddDays(-7) = %s, want 2024-02-21", got)
	}
}
