package services

import (
	"context"
	"sync"
	"testing"
	"time"
)

func fixedClock(value string) func() time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestNextStudentNumberStartsFresh(t *testing.T) {
	students := newMemStudentStore()
	cards := newMemCardStore()
	svc := NewNumberingService(students, cards)
	svc.now = fixedClock("2026-03-15")

	nis, err := svc.NextStudentNumber(context.Background())
	if err != nil {
		t.Fatalf("NextStudentNumber: %v", err)
	}
	if nis != "20260001" {
		t.Errorf("expected 20260001, got %s", nis)
	}
}

func TestNextStudentNumberSequential(t *testing.T) {
	students := newMemStudentStore()
	cards := newMemCardStore()
	svc := NewNumberingService(students, cards)
	svc.now = fixedClock("2026-03-15")

	want := []string{"20260001", "20260002", "20260003"}
	for _, expected := range want {
		nis, err := svc.NextStudentNumber(context.Background())
		if err != nil {
			t.Fatalf("NextStudentNumber: %v", err)
		}
		if nis != expected {
			t.Errorf("expected %s, got %s", expected, nis)
		}
	}
}

func TestNextStudentNumberIgnoresOtherYears(t *testing.T) {
	students := newMemStudentStore()
	cards := newMemCardStore()
	seedStudent(t, students, "1111111111", "20250097")

	svc := NewNumberingService(students, cards)
	svc.now = fixedClock("2026-01-02")

	nis, err := svc.NextStudentNumber(context.Background())
	if err != nil {
		t.Fatalf("NextStudentNumber: %v", err)
	}
	if nis != "20260001" {
		t.Errorf("expected fresh year to start at 20260001, got %s", nis)
	}
}

func TestNextStudentNumberContinuesFromStoredMax(t *testing.T) {
	students := newMemStudentStore()
	cards := newMemCardStore()
	seedStudent(t, students, "1111111111", "20260001")
	seedStudent(t, students, "2222222222", "20260014")

	svc := NewNumberingService(students, cards)
	svc.now = fixedClock("2026-06-01")

	nis, err := svc.NextStudentNumber(context.Background())
	if err != nil {
		t.Fatalf("NextStudentNumber: %v", err)
	}
	if nis != "20260015" {
		t.Errorf("expected 20260015 after stored max 14, got %s", nis)
	}
}

func TestNextStudentNumberIgnoresForeignSuffixes(t *testing.T) {
	students := newMemStudentStore()
	cards := newMemCardStore()
	seedStudent(t, students, "1111111111", "2026-LEGACY")
	seedStudent(t, students, "2222222222", "20260002")

	svc := NewNumberingService(students, cards)
	svc.now = fixedClock("2026-06-01")

	nis, err := svc.NextStudentNumber(context.Background())
	if err != nil {
		t.Fatalf("NextStudentNumber: %v", err)
	}
	if nis != "20260003" {
		t.Errorf("expected non-numeric suffix to be skipped, got %s", nis)
	}
}

func TestNextStudentNumberGrowsPastPadding(t *testing.T) {
	students := newMemStudentStore()
	cards := newMemCardStore()
	seedStudent(t, students, "1111111111", "20269999")

	svc := NewNumberingService(students, cards)
	svc.now = fixedClock("2026-06-01")

	nis, err := svc.NextStudentNumber(context.Background())
	if err != nil {
		t.Fatalf("NextStudentNumber: %v", err)
	}
	if nis != "202610000" {
		t.Errorf("expected sequence to widen past 9999, got %s", nis)
	}
}

func TestNextCardNumberFormat(t *testing.T) {
	students := newMemStudentStore()
	cards := newMemCardStore()
	svc := NewNumberingService(students, cards)
	svc.now = fixedClock("2026-03-15")

	number, err := svc.NextCardNumber(context.Background())
	if err != nil {
		t.Fatalf("NextCardNumber: %v", err)
	}
	if number != "CARD-20260315-001" {
		t.Errorf("expected CARD-20260315-001, got %s", number)
	}
}

func TestNextCardNumberSkipsGaps(t *testing.T) {
	students := newMemStudentStore()
	cards := newMemCardStore()
	seedCard(t, cards, "CARD-20260315-001")
	seedCard(t, cards, "CARD-20260315-003")
	seedCard(t, cards, "CARD-20260315-007")

	svc := NewNumberingService(students, cards)
	svc.now = fixedClock("2026-03-15")

	number, err := svc.NextCardNumber(context.Background())
	if err != nil {
		t.Fatalf("NextCardNumber: %v", err)
	}
	if number != "CARD-20260315-008" {
		t.Errorf("expected gaps to stay unfilled, got %s", number)
	}
}

func TestNextCardNumberIgnoresOtherDays(t *testing.T) {
	students := newMemStudentStore()
	cards := newMemCardStore()
	seedCard(t, cards, "CARD-20260314-042")

	svc := NewNumberingService(students, cards)
	svc.now = fixedClock("2026-03-15")

	number, err := svc.NextCardNumber(context.Background())
	if err != nil {
		t.Fatalf("NextCardNumber: %v", err)
	}
	if number != "CARD-20260315-001" {
		t.Errorf("expected new day to start at 001, got %s", number)
	}
}

func TestConcurrentGenerationNeverDuplicates(t *testing.T) {
	students := newMemStudentStore()
	cards := newMemCardStore()
	svc := NewNumberingService(students, cards)
	svc.now = fixedClock("2026-03-15")

	const workers = 50
	results := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			nis, err := svc.NextStudentNumber(context.Background())
			if err != nil {
				t.Errorf("NextStudentNumber: %v", err)
				return
			}
			results <- nis
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool)
	for nis := range results {
		if seen[nis] {
			t.Errorf("duplicate identifier issued: %s", nis)
		}
		seen[nis] = true
	}
	if len(seen) != workers {
		t.Errorf("expected %d distinct identifiers, got %d", workers, len(seen))
	}
}
