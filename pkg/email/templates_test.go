package email

import (
	"strings"
	"testing"
	"time"
)

func testData() AppointmentEmailData {
	return AppointmentEmailData{
		RecipientName: "Sam Rivera",
		DoctorName:    "Chen",
		PatientName:   "Sam Rivera",
		Start:         time.Date(2026, 3, 9, 14, 30, 0, 0, time.UTC),
		End:           time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC),
		Reason:        "follow-up",
		MeetLink:      "https://meet.google.com/abc-defg-hij",
	}
}

func TestBuildAppointmentBookedEmail(t *testing.T) {
	msg := BuildAppointmentBookedEmail(testData())

	if !strings.Contains(msg.Subject, "Sam Rivera") {
		t.Errorf("subject %q missing patient name", msg.Subject)
	}
	if !strings.Contains(msg.TextBody, "follow-up") {
		t.Error("text body missing reason")
	}
	if !strings.Contains(msg.TextBody, "Curaline") {
		t.Error("text body missing default app name")
	}
	if msg.HTMLBody == "" {
		t.Error("expected html alternative")
	}
}

func TestBuildAppointmentConfirmedEmailIncludesMeetLink(t *testing.T) {
	msg := BuildAppointmentConfirmedEmail(testData())

	if !strings.Contains(msg.Subject, "Dr. Chen") {
		t.Errorf("subject %q missing doctor name", msg.Subject)
	}
	if !strings.Contains(msg.TextBody, "https://meet.google.com/abc-defg-hij") {
		t.Error("text body missing meet link")
	}
	if !strings.Contains(msg.HTMLBody, "https://meet.google.com/abc-defg-hij") {
		t.Error("html body missing meet link")
	}
}

func TestBuildAppointmentCancelledEmail(t *testing.T) {
	msg := BuildAppointmentCancelledEmail(testData())

	if !strings.Contains(msg.Subject, "cancelled") {
		t.Errorf("unexpected subject %q", msg.Subject)
	}
	if !strings.Contains(msg.TextBody, "9 Mar 2026") {
		t.Errorf("text body missing formatted date:\n%s", msg.TextBody)
	}
}

func TestAppNameOverride(t *testing.T) {
	data := testData()
	data.AppName = "Curaline Staging"

	msg := BuildAppointmentCancelledEmail(data)
	if !strings.Contains(msg.TextBody, "Curaline Staging") {
		t.Error("text body missing overridden app name")
	}
}
