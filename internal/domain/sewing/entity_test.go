package sewing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusPending, StatusInProgress},
		{StatusInProgress, StatusQualityCheck},
		{StatusQualityCheck, StatusDone},
		{StatusQualityCheck, StatusFailed},
		{StatusFailed, StatusInProgress},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransition(tr.from, tr.to), "%s -> %s", tr.from, tr.to)
	}

	denied := []struct{ from, to Status }{
		{StatusPending, StatusDone},
		{StatusPending, StatusQualityCheck},
		{StatusInProgress, StatusDone},
		{StatusDone, StatusInProgress},
		{StatusDone, StatusFailed},
		{StatusQualityCheck, StatusPending},
	}
	for _, tr := range denied {
		assert.False(t, CanTransition(tr.from, tr.to), "%s -> %s", tr.from, tr.to)
	}
}
