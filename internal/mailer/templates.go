package mailer

import (
	"fmt"
	"time"
)

// Email bodies use day/month ordering with an unpadded month, matching the
// notification mails the frontend links back to.
const bodyDateFormat = "02/1/2006"

// TaskNotification renders the update mail for a task assignee. The send
// timestamp is taken as a parameter so rendering stays deterministic.
func TaskNotification(name, link, statusLabel string, start, end, now time.Time) Email {
	html := "" +
		"<p>Task update notification from TaskHub</p>" +
		"<p>The TaskHub notification system<p>" +
		"<p>Task details:</p>" +
		"<ul>" +
		fmt.Sprintf("<li> Task: <b>%s</b></li>", name) +
		fmt.Sprintf("<li> Link: <b>%s</b></li>", link) +
		fmt.Sprintf("<li> Start date: <b>%s</b></li>", start.Format(bodyDateFormat)) +
		fmt.Sprintf("<li> End date: <b>%s</b></li>", end.Format(bodyDateFormat)) +
		fmt.Sprintf("<li> Status: <b>%s</b></li>", statusLabel) +
		fmt.Sprintf("<li> Updated: <b>%s</b></li>", now.Format(bodyDateFormat)) +
		"</ul>" +
		"<p>We are sending this notification so you can confirm the details.</p>" +
		"<p>Thank you for using TaskHub!</p>"

	return Email{
		Subject: "Task update notification",
		HTML:    html,
	}
}

// AccountRecovery renders the credentials mail sent by the forgot-password
// flow. It embeds the stored password verbatim; see the design notes for
// why this contract is preserved.
func AccountRecovery(username, password string) Email {
	html := "" +
		"<p>Account confirmation email:</p>" +
		"<ul>" +
		fmt.Sprintf("<li> Username: <b>%s</b></li>", username) +
		fmt.Sprintf("<li> Password: <b>%s</b></li>", password) +
		"</ul>" +
		"<p>We are sending this notification so you can confirm the details.</p>" +
		"<p>Thank you for using TaskHub!</p>"

	return Email{
		Subject: "Account confirmation",
		HTML:    html,
	}
}
