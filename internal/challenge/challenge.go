package challenge

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// DefaultMessage is sent when a challenge is created without a reminder text.
const DefaultMessage = "Time for your challenge!"

// Challenge is a recurring reminder shared by a group of members. The creator
// is always the first member. TimeSpec keeps the raw user input; Hour, Minute
// and Timezone hold its parsed form used for scheduling.
type Challenge struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatorID   string    `json:"creator"`
	MemberIDs   []string  `json:"members"`
	Frequency   Frequency `json:"frequency"`
	TimeSpec    string    `json:"time"`
	Hour        int       `json:"hour"`
	Minute      int       `json:"minute"`
	Timezone    string    `json:"timezone"`
	Day         string    `json:"day,omitempty"` // full weekday name, weekly only
	GuildID     string    `json:"guild_id"`
	ChannelID   string    `json:"channel_id"`
	Message     string    `json:"message"`
}

func (c *Challenge) HasMember(userID string) bool {
	return slices.Contains(c.MemberIDs, userID)
}

// Key identifies a challenge across guilds, used by the scheduler job table.
func (c *Challenge) Key() string {
	return c.GuildID + ":" + c.Name
}

// ReminderContent is the message posted when the challenge fires: every
// member mentioned, followed by the reminder text.
func (c *Challenge) ReminderContent() string {
	mentions := make([]string, 0, len(c.MemberIDs))
	for _, id := range c.MemberIDs {
		mentions = append(mentions, "<@"+id+">")
	}
	return strings.Join(mentions, " ") + " " + c.Message
}

// Validate checks frequency and weekday constraints
func (c *Challenge) Validate() error {
	switch c.Frequency {
	case FrequencyDaily:
		return nil
	case FrequencyWeekly:
		if c.Day == "" {
			return fmt.Errorf("day must be specified for weekly challenges")
		}
		if _, ok := ParseWeekday(c.Day); !ok {
			return fmt.Errorf("invalid day %q: use a full day name like 'monday'", c.Day)
		}
		return nil
	default:
		return fmt.Errorf("frequency must be 'daily' or 'weekly'")
	}
}

// Location resolves the challenge's timezone
func (c *Challenge) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday resolves a full weekday name, case-insensitively
func ParseWeekday(name string) (time.Weekday, bool) {
	day, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	return day, ok
}
