package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPauseLabel(t *testing.T) {
	assert.Equal(t, labelPause, pauseLabel(false))
	assert.Equal(t, labelResume, pauseLabel(true))
}
