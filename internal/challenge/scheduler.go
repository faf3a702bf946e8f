package challenge

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// SendFunc posts a reminder message to a channel
type SendFunc func(channelID, content string) error

// Scheduler runs one goroutine per scheduled challenge. Each job sleeps until
// the challenge's next fire time, posts the reminder and re-arms.
type Scheduler struct {
	send SendFunc

	mu   sync.Mutex
	jobs map[string]chan struct{}
	wg   sync.WaitGroup

	now func() time.Time
}

func NewScheduler(send SendFunc) *Scheduler {
	return &Scheduler{
		send: send,
		jobs: make(map[string]chan struct{}),
		now:  time.Now,
	}
}

// Start schedules reminders for a challenge. A job already running under the
// same key is stopped first, so Start doubles as replace-on-edit.
func (s *Scheduler) Start(c Challenge) error {
	loc, err := c.Location()
	if err != nil {
		return fmt.Errorf("challenge %q: %w", c.Name, err)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("challenge %q: %w", c.Name, err)
	}

	stop := make(chan struct{})

	s.mu.Lock()
	if prev, ok := s.jobs[c.Key()]; ok {
		close(prev)
	}
	s.jobs[c.Key()] = stop
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run(c, loc, stop)
	return nil
}

// Stop cancels the job for a challenge, if one is running
func (s *Scheduler) Stop(guildID, name string) {
	key := guildID + ":" + name

	s.mu.Lock()
	defer s.mu.Unlock()
	if stop, ok := s.jobs[key]; ok {
		close(stop)
		delete(s.jobs, key)
	}
}

// Shutdown stops every job and waits for the goroutines to exit
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	for key, stop := range s.jobs {
		close(stop)
		delete(s.jobs, key)
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Scheduler) run(c Challenge, loc *time.Location, stop chan struct{}) {
	defer s.wg.Done()

	for {
		next := nextFire(s.now(), &c, loc)
		timer := time.NewTimer(next.Sub(s.now()))

		select {
		case <-timer.C:
			if err := s.send(c.ChannelID, c.ReminderContent()); err != nil {
				log.Printf("[ERR] Failed to send reminder for challenge %q: %v", c.Name, err)
			}
		case <-stop:
			timer.Stop()
			return
		}
	}
}

// nextFire computes the next occurrence of the challenge's slot strictly
// after now, in the challenge's location. Date arithmetic uses AddDate so
// DST transitions keep the wall-clock time.
func nextFire(now time.Time, c *Challenge, loc *time.Location) time.Time {
	local := now.In(loc)
	candidate := time.Date(local.Year(), local.Month(), local.Day(), c.Hour, c.Minute, 0, 0, loc)

	switch c.Frequency {
	case FrequencyWeekly:
		target, _ := ParseWeekday(c.Day)
		offset := (int(target) - int(candidate.Weekday()) + 7) % 7
		candidate = candidate.AddDate(0, 0, offset)
		if !candidate.After(now) {
			candidate = candidate.AddDate(0, 0, 7)
		}
	default:
		if !candidate.After(now) {
			candidate = candidate.AddDate(0, 0, 1)
		}
	}
	return candidate
}
