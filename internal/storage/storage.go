package storage

import (
	"encoding/json"
	"fmt"

	"challengebot/datastore"
	"challengebot/internal/challenge"
)

// Storage is the typed facade over the JSON datastore. Records are keyed by
// guild ID; each record holds the guild's challenge list.
type Storage struct {
	ds *datastore.DataStore
}

type Record struct {
	Challenges []challenge.Challenge `json:"challenges"`
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// getGuildRecord returns the record for a guild, or an empty one if the
// guild has no data yet. The empty record is not stored; only mutating
// paths write, so pure reads never persist anything. Values come back from
// the datastore as map[string]any, so they are re-marshalled into the
// typed record.
func (s *Storage) getGuildRecord(guildID string) (*Record, error) {
	data, exists := s.ds.Get(guildID)
	if !exists {
		return &Record{}, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling data: %w", err)
	}

	var record Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshalling to *Record: %w", err)
	}
	return &record, nil
}

// Challenges returns the guild's challenges
func (s *Storage) Challenges(guildID string) ([]challenge.Challenge, error) {
	record, err := s.getGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.Challenges, nil
}

// AllChallenges returns every challenge across all guilds, used to arm the
// scheduler at startup.
func (s *Storage) AllChallenges() ([]challenge.Challenge, error) {
	var all []challenge.Challenge
	for _, guildID := range s.ds.Keys() {
		record, err := s.getGuildRecord(guildID)
		if err != nil {
			return nil, err
		}
		all = append(all, record.Challenges...)
	}
	return all, nil
}

// FindChallenge looks up a challenge by name
func (s *Storage) FindChallenge(guildID, name string) (challenge.Challenge, bool, error) {
	record, err := s.getGuildRecord(guildID)
	if err != nil {
		return challenge.Challenge{}, false, err
	}
	for _, c := range record.Challenges {
		if c.Name == name {
			return c, true, nil
		}
	}
	return challenge.Challenge{}, false, nil
}

// AddChallenge appends a challenge; names are unique per guild
func (s *Storage) AddChallenge(guildID string, c challenge.Challenge) error {
	record, err := s.getGuildRecord(guildID)
	if err != nil {
		return err
	}

	for _, existing := range record.Challenges {
		if existing.Name == c.Name {
			return fmt.Errorf("challenge '%s' already exists", c.Name)
		}
	}

	record.Challenges = append(record.Challenges, c)
	s.ds.Add(guildID, record)
	return nil
}

// UpdateChallenge replaces the stored challenge that matches name. The
// replacement may carry a different name (rename on edit), as long as the
// new name does not collide.
func (s *Storage) UpdateChallenge(guildID, name string, c challenge.Challenge) error {
	record, err := s.getGuildRecord(guildID)
	if err != nil {
		return err
	}

	if c.Name != name {
		for _, existing := range record.Challenges {
			if existing.Name == c.Name {
				return fmt.Errorf("challenge '%s' already exists", c.Name)
			}
		}
	}

	for i, existing := range record.Challenges {
		if existing.Name == name {
			record.Challenges[i] = c
			s.ds.Add(guildID, record)
			return nil
		}
	}
	return fmt.Errorf("challenge '%s' not found", name)
}

// RemoveChallenge deletes a challenge by name
func (s *Storage) RemoveChallenge(guildID, name string) error {
	record, err := s.getGuildRecord(guildID)
	if err != nil {
		return err
	}

	for i, existing := range record.Challenges {
		if existing.Name == name {
			record.Challenges = append(record.Challenges[:i], record.Challenges[i+1:]...)
			s.ds.Add(guildID, record)
			return nil
		}
	}
	return fmt.Errorf("challenge '%s' not found", name)
}
