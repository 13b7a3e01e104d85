package email

import (
	"context"
	"errors"
	"testing"
)

func TestBuildMessageValidation(t *testing.T) {
	cases := []struct {
		name    string
		from    string
		msg     Message
		wantErr bool
	}{
		{
			name:    "valid text message",
			from:    "noreply@curaline.app",
			msg:     Message{To: []string{"doc@example.com"}, Subject: "hi", TextBody: "body"},
			wantErr: false,
		},
		{
			name:    "missing from",
			from:    "  ",
			msg:     Message{To: []string{"doc@example.com"}, Subject: "hi", TextBody: "body"},
			wantErr: true,
		},
		{
			name:    "no recipients",
			from:    "noreply@curaline.app",
			msg:     Message{To: []string{" "}, Subject: "hi", TextBody: "body"},
			wantErr: true,
		},
		{
			name:    "missing subject",
			from:    "noreply@curaline.app",
			msg:     Message{To: []string{"doc@example.com"}, TextBody: "body"},
			wantErr: true,
		},
		{
			name:    "no body at all",
			from:    "noreply@curaline.app",
			msg:     Message{To: []string{"doc@example.com"}, Subject: "hi"},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := buildMessage(tc.from, tc.msg)
			if (err != nil) != tc.wantErr {
				t.Errorf("buildMessage() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestSendDisabled(t *testing.T) {
	c, err := New(Config{Enabled: false})
	if err != nil {
		t.Fatal(err)
	}

	err = c.Send(context.Background(), Message{
		To:       []string{"doc@example.com"},
		Subject:  "hi",
		TextBody: "body",
	})
	if !errors.As(err, &ErrDisabled{}) {
		t.Errorf("expected ErrDisabled, got %v", err)
	}
}
