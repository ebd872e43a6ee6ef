package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedStepFiresAtRate(t *testing.T) {
	clock := time.Unix(100, 0)
	fs := NewFixedStep(4)
	fs.now = func() time.Time { return clock }

	assert.True(t, fs.ShouldStep(), "first poll fires")
	assert.False(t, fs.ShouldStep())

	clock = clock.Add(100 * time.Millisecond)
	assert.False(t, fs.ShouldStep())
	clock = clock.Add(150 * time.Millisecond)
	assert.True(t, fs.ShouldStep())
	assert.False(t, fs.ShouldStep())
}

func TestFixedStepDefaultsRate(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, time.Second, fs.step)
}
