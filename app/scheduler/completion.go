package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mytsparks/Campus-Resource-Hub/app/repositories"
)

// CompletionSweeper periodically marks approved bookings whose end time
// has passed as completed. The admission engine itself never drives this
// transition; it only stops counting completed bookings as blocking.
type CompletionSweeper struct {
	cron        *cron.Cron
	bookingRepo repositories.BookingRepository
	schedule    string
}

func NewCompletionSweeper(bookingRepo repositories.BookingRepository, schedule string) *CompletionSweeper {
	return &CompletionSweeper{
		cron:        cron.New(),
		bookingRepo: bookingRepo,
		schedule:    schedule,
	}
}

func (s *CompletionSweeper) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("completion sweeper running (%s)", s.schedule)
	return nil
}

func (s *CompletionSweeper) sweep() {
	n, err := s.bookingRepo.CompleteEnded(time.Now())
	if err != nil {
		log.Printf("completion sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("completed %d ended bookings", n)
	}
}

func (s *CompletionSweeper) Stop() {
	s.cron.Stop()
}
