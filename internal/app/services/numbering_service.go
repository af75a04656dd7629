package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"
)

const (
	nisYearLayout     = "2006"
	nisSequenceWidth  = 4
	cardDayLayout     = "20060102"
	cardNumberPrefix  = "CARD-"
	cardSequenceWidth = 3
)

// NISSeries lists assigned student numbers sharing a prefix
type NISSeries interface {
	NISWithPrefix(ctx context.Context, prefix string) ([]string, error)
}

// CardSeries lists assigned card numbers sharing a prefix
type CardSeries interface {
	CardNumbersWithPrefix(ctx context.Context, prefix string) ([]string, error)
}

// NumberingService assigns sequential identifiers for the student number
// (NIS) and card number series.
//
// NIS is partitioned by calendar year: <YYYY><sequence>, sequence zero-padded
// to 4 digits but allowed to grow wider. Card numbers are partitioned by
// calendar day: CARD-<YYYYMMDD>-<sequence>, padded to 3 digits. Both series
// compute the next value by scanning the stored identifiers in the partition
// and taking max+1; gaps are never back-filled.
//
// Generation is serialized through a mutex, and the highest sequence handed
// out per partition is remembered so concurrent callers can never receive
// the same number even before either result is persisted. The unique indexes
// on students.nis and student_cards.card_number are the backstop. This
// assumes a single API instance owns identifier assignment.
type NumberingService struct {
	mu          sync.Mutex
	nis         NISSeries
	cards       CardSeries
	now         func() time.Time
	issuedNIS   map[string]int
	issuedCards map[string]int
}

// NewNumberingService creates a new NumberingService
func NewNumberingService(nis NISSeries, cards CardSeries) *NumberingService {
	return &NumberingService{
		nis:         nis,
		cards:       cards,
		now:         time.Now,
		issuedNIS:   make(map[string]int),
		issuedCards: make(map[string]int),
	}
}

// NextStudentNumber returns the next unused NIS for the current year
func (s *NumberingService) NextStudentNumber(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	year := s.now().Format(nisYearLayout)

	existing, err := s.nis.NISWithPrefix(ctx, year)
	if err != nil {
		return "", fmt.Errorf("scanning student number series: %w", err)
	}

	seq := maxSequence(existing, len(year))
	if issued := s.issuedNIS[year]; issued > seq {
		seq = issued
	}
	seq++
	s.issuedNIS[year] = seq

	return fmt.Sprintf("%s%0*d", year, nisSequenceWidth, seq), nil
}

// NextCardNumber returns the next unused card number for the current day
func (s *NumberingService) NextCardNumber(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := cardNumberPrefix + s.now().Format(cardDayLayout) + "-"

	existing, err := s.cards.CardNumbersWithPrefix(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("scanning card number series: %w", err)
	}

	seq := maxSequence(existing, len(prefix))
	if issued := s.issuedCards[prefix]; issued > seq {
		seq = issued
	}
	seq++
	s.issuedCards[prefix] = seq

	return fmt.Sprintf("%s%0*d", prefix, cardSequenceWidth, seq), nil
}

// maxSequence extracts the highest numeric suffix among identifiers sharing
// a prefix of prefixLen bytes. Identifiers with a non-numeric suffix belong
// to no sequence and are ignored.
func maxSequence(identifiers []string, prefixLen int) int {
	max := 0
	for _, id := range identifiers {
		if len(id) <= prefixLen {
			continue
		}
		n, err := strconv.Atoi(id[prefixLen:])
		if err != nil || n < 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}
