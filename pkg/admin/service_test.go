package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// Both guards below return before any database access, so a nil DB suffices.
func newValidationService() *Service {
	return NewService(nil, nil, nil, zap.NewNop())
}

func TestUpdateMessageStatusRejectsUnknownStatus(t *testing.T) {
	svc := newValidationService()
	ctx := context.Background()

	for _, status := range []string{"bogus", "", "New", "ARCHIVED", "deleted"} {
		_, err := svc.UpdateMessageStatus(ctx, "admin-1", "msg-1", status)
		assert.ErrorIs(t, err, ErrInvalidStatus, "status %q", status)
	}
}

func TestCreateMessageRequiresNameEmailAndBody(t *testing.T) {
	svc := newValidationService()
	ctx := context.Background()

	cases := []struct {
		name, email, body string
	}{
		{"", "asha@example.com", "Where is my order?"},
		{"Asha", "", "Where is my order?"},
		{"Asha", "asha@example.com", ""},
		{"  ", "asha@example.com", "   "},
	}
	for _, tc := range cases {
		_, err := svc.CreateMessage(ctx, tc.name, tc.email, "Order", tc.body)
		assert.ErrorIs(t, err, ErrEmptyMessage, "name=%q email=%q body=%q", tc.name, tc.email, tc.body)
	}
}
