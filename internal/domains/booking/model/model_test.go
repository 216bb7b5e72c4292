package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/booking/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{name: "pending to confirmed", from: model.StatusPending, to: model.StatusConfirmed, want: true},
		{name: "pending to declined", from: model.StatusPending, to: model.StatusDeclined, want: true},
		{name: "pending to cancelled", from: model.StatusPending, to: model.StatusCancelled, want: true},
		{name: "confirmed to cancelled", from: model.StatusConfirmed, to: model.StatusCancelled, want: true},
		{name: "confirmed to declined", from: model.StatusConfirmed, to: model.StatusDeclined, want: false},
		{name: "confirmed to pending", from: model.StatusConfirmed, to: model.StatusPending, want: false},
		{name: "declined is terminal", from: model.StatusDeclined, to: model.StatusPending, want: false},
		{name: "cancelled is terminal", from: model.StatusCancelled, to: model.StatusConfirmed, want: false},
		{name: "unknown status", from: "archived", to: model.StatusConfirmed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{model.StatusPending, model.StatusConfirmed, model.StatusDeclined, model.StatusCancelled} {
		assert.True(t, model.IsValidStatus(status))
	}

	assert.False(t, model.IsValidStatus("archived"))
	assert.False(t, model.IsValidStatus(""))
}
