package services

import (
	"context"
	"fmt"
	"rentall/internal/repositories"
	"strconv"
	"strings"
	"time"

	logger "github.com/Bparsons0904/goLogger"
)

const reservationNumberPrefix = "RES"

// ReservationNumberService allocates reservation numbers in the format
// RES-<year>-<5-digit sequence>, monotonically increasing per year.
//
// Allocation is seeded by scanning for the highest existing number, which is
// racy under concurrent creation; the unique index on reservation_number is
// the actual guarantee. Callers retry allocation when an insert reports a
// duplicated key.
type ReservationNumberService struct {
	reservationRepo repositories.ReservationRepository
	log             logger.Logger
	now             func() time.Time
}

func NewReservationNumberService(
	reservationRepo repositories.ReservationRepository,
) *ReservationNumberService {
	return &ReservationNumberService{
		reservationRepo: reservationRepo,
		log:             logger.New("reservationNumberService"),
		now:             time.Now,
	}
}

// Next returns the next reservation number for the current year.
func (s *ReservationNumberService) Next(ctx context.Context) (string, error) {
	log := s.log.Function("Next")

	prefix := fmt.Sprintf("%s-%d-", reservationNumberPrefix, s.now().UTC().Year())

	// The fixed year and zero-padded width make a string sort equivalent to
	// a numeric sort on the suffix.
	last, err := s.reservationRepo.LastNumberForPrefix(ctx, prefix)
	if err != nil {
		return "", log.Err("failed to look up last reservation number", err, "prefix", prefix)
	}

	sequence := 1
	if last != "" {
		suffix, ok := strings.CutPrefix(last, prefix)
		if !ok {
			return "", log.Error("malformed reservation number in store", "number", last)
		}
		parsed, err := strconv.Atoi(suffix)
		if err != nil {
			return "", log.Err("malformed reservation number suffix", err, "number", last)
		}
		sequence = parsed + 1
	}

	return FormatReservationNumber(prefix, sequence), nil
}

// FormatReservationNumber zero-pads the sequence to 5 digits.
func FormatReservationNumber(prefix string, sequence int) string {
	return fmt.Sprintf("%s%05d", prefix, sequence)
}
