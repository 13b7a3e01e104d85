package email

import (
	"fmt"
	"time"
)

// AppointmentEmailData carries everything the appointment templates need.
type AppointmentEmailData struct {
	RecipientName string
	DoctorName    string
	PatientName   string
	Start         time.Time
	End           time.Time
	Reason        string
	MeetLink      string
	AppName       string
}

func (d AppointmentEmailData) appName() string {
	if d.AppName == "" {
		return "Curaline"
	}
	return d.AppName
}

func (d AppointmentEmailData) window() string {
	return fmt.Sprintf("%s – %s",
		d.Start.Format("Mon, 2 Jan 2006 15:04"),
		d.End.Format("15:04 MST"),
	)
}

// BuildAppointmentBookedEmail notifies the doctor that a patient requested
// an appointment slot.
func BuildAppointmentBookedEmail(data AppointmentEmailData) Message {
	subject := fmt.Sprintf("New appointment request from %s", data.PatientName)

	textBody := fmt.Sprintf(`Hi %s,

%s has requested an appointment with you:

When: %s
Reason: %s

Please confirm or decline the request from your %s dashboard.

The %s Team`,
		data.RecipientName, data.PatientName, data.window(), data.Reason,
		data.appName(), data.appName())

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #0d9488;">Hi %s,</h2>
    <p><strong>%s</strong> has requested an appointment with you.</p>
    <p><strong>When:</strong> %s<br><strong>Reason:</strong> %s</p>
    <p>Please confirm or decline the request from your %s dashboard.</p>
</body>
</html>`,
		data.RecipientName, data.PatientName, data.window(), data.Reason, data.appName())

	return Message{Subject: subject, TextBody: textBody, HTMLBody: htmlBody}
}

// BuildAppointmentConfirmedEmail notifies the patient of a confirmed visit,
// including the video meeting link.
func BuildAppointmentConfirmedEmail(data AppointmentEmailData) Message {
	subject := fmt.Sprintf("Your appointment with Dr. %s is confirmed", data.DoctorName)

	textBody := fmt.Sprintf(`Hi %s,

Your appointment with Dr. %s is confirmed.

When: %s
Join the video visit: %s

The %s Team`,
		data.RecipientName, data.DoctorName, data.window(), data.MeetLink, data.appName())

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #0d9488;">Hi %s,</h2>
    <p>Your appointment with <strong>Dr. %s</strong> is confirmed.</p>
    <p><strong>When:</strong> %s</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #0d9488; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Join video visit</a>
    </p>
</body>
</html>`,
		data.RecipientName, data.DoctorName, data.window(), data.MeetLink)

	return Message{Subject: subject, TextBody: textBody, HTMLBody: htmlBody}
}

// BuildAppointmentCancelledEmail notifies the patient of a doctor-initiated
// cancellation.
func BuildAppointmentCancelledEmail(data AppointmentEmailData) Message {
	subject := fmt.Sprintf("Your appointment with Dr. %s was cancelled", data.DoctorName)

	textBody := fmt.Sprintf(`Hi %s,

Your appointment with Dr. %s scheduled for %s has been cancelled.

You can book a new slot from the %s app at any time.

The %s Team`,
		data.RecipientName, data.DoctorName, data.window(), data.appName(), data.appName())

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #b91c1c;">Hi %s,</h2>
    <p>Your appointment with <strong>Dr. %s</strong> scheduled for %s has been cancelled.</p>
    <p>You can book a new slot from the %s app at any time.</p>
</body>
</html>`,
		data.RecipientName, data.DoctorName, data.window(), data.appName())

	return Message{Subject: subject, TextBody: textBody, HTMLBody: htmlBody}
}
