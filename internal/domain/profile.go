package domain

import "time"

// LevelThreshold is the points total that converts into one level.
const LevelThreshold = 100

// Profile is the local user identity plus the points/level state machine.
// Points rest in [0, LevelThreshold) between level-ups; Level never
// decreases.
type Profile struct {
	UserID   string
	Name     string
	Provider string
	JoinedAt time.Time
	Level    int
	Points   int
}

// NewProfile creates a fresh level-1 profile.
func NewProfile(userID, name, provider string, joinedAt time.Time) *Profile {
	return &Profile{
		UserID:   userID,
		Name:     name,
		Provider: provider,
		JoinedAt: joinedAt,
		Level:    1,
		Points:   0,
	}
}

// ApplyCompletion adds the routine's points and normalizes, returning the
// number of level-ups fired so the presentation layer can surface each one.
func (p *Profile) ApplyCompletion(points int) int {
	if points < 0 {
		points = 0
	}
	p.Points += points
	levelUps := 0
	for p.Points >= LevelThreshold {
		p.Points -= LevelThreshold
		p.Level++
		levelUps++
	}
	return levelUps
}

// ApplySkip deducts half the routine's points (integer floor), never going
// below zero. Skipping cannot cost a level.
func (p *Profile) ApplySkip(points int) {
	if points < 0 {
		points = 0
	}
	p.Points -= points / 2
	if p.Points < 0 {
		p.Points = 0
	}
}
