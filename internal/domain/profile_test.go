package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testJoined = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestApplyCompletion_NoLevelUp(t *testing.T) {
	p := NewProfile("u1", "Demo User", "Demo", testJoined)
	ups := p.ApplyCompletion(40)
	assert.Equal(t, 0, ups)
	assert.Equal(t, 40, p.Points)
	assert.Equal(t, 1, p.Level)
}

func TestApplyCompletion_SingleLevelUp(t *testing.T) {
	p := &Profile{Level: 1, Points: 95}
	ups := p.ApplyCompletion(10)
	assert.Equal(t, 1, ups)
	assert.Equal(t, 5, p.Points)
	assert.Equal(t, 2, p.Level)
}

func TestApplyCompletion_MultipleLevelUps(t *testing.T) {
	p := &Profile{Level: 3, Points: 50}
	ups := p.ApplyCompletion(260)
	assert.Equal(t, 3, ups)
	assert.Equal(t, 10, p.Points)
	assert.Equal(t, 6, p.Level)
}

func TestApplyCompletion_ZeroPoints(t *testing.T) {
	p := &Profile{Level: 2, Points: 30}
	ups := p.ApplyCompletion(0)
	assert.Equal(t, 0, ups)
	assert.Equal(t, 30, p.Points)
	assert.Equal(t, 2, p.Level)
}

func TestApplySkip_HalvesAndFloors(t *testing.T) {
	p := &Profile{Level: 1, Points: 20}
	p.ApplySkip(15)
	assert.Equal(t, 13, p.Points, "deducts floor(15/2)=7")
}

func TestApplySkip_FloorsAtZero(t *testing.T) {
	p := &Profile{Level: 2, Points: 0}
	p.ApplySkip(10)
	assert.Equal(t, 0, p.Points)
	assert.Equal(t, 2, p.Level, "skipping never costs a level")
}

func TestApplySkip_NegativeInputTreatedAsZero(t *testing.T) {
	p := &Profile{Level: 1, Points: 50}
	p.ApplySkip(-10)
	assert.Equal(t, 50, p.Points)
}
