package email

import (
	"fmt"
	"html"
	"strings"
)

// InquiryEmailData carries everything the contact-form emails need.
type InquiryEmailData struct {
	To       string
	Subject  string
	SiteName string
	// Body is the staff reply text (reply emails only).
	Body string
	// Headers carries threading headers (In-Reply-To, References, Reply-To).
	Headers map[string]string
	// Submitter is the contact-form sender (staff notification only).
	Submitter string
}

// BuildInquiryReceivedEmail acknowledges a contact-form submission.
func BuildInquiryReceivedEmail(data InquiryEmailData) Message {
	siteName := data.SiteName
	if siteName == "" {
		siteName = "Atrium"
	}

	subject := fmt.Sprintf("We received your message: %s", data.Subject)

	textBody := fmt.Sprintf(`Hi,

Thanks for reaching out to %s.

We received your message about %q and will get back to you as soon as
we can. Replying to this email adds to the same conversation.

Thanks,
The %s Team`,
		siteName, data.Subject, siteName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Thanks for reaching out to %s</h2>
    <p>We received your message about <strong>%s</strong> and will get back to you as soon as we can.</p>
    <p>Replying to this email adds to the same conversation.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		html.EscapeString(siteName), html.EscapeString(data.Subject), html.EscapeString(siteName))

	return Message{
		To:       []string{data.To},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildInquiryNotificationEmail tells staff a new inquiry landed. Replies
// should go through the admin console so they get threaded, hence no
// Reply-To here.
func BuildInquiryNotificationEmail(data InquiryEmailData) Message {
	siteName := data.SiteName
	if siteName == "" {
		siteName = "Atrium"
	}

	subject := fmt.Sprintf("New inquiry: %s", data.Subject)

	textBody := fmt.Sprintf(`New contact-form inquiry on %s.

From:    %s
Subject: %s

%s`,
		siteName, data.Submitter, data.Subject, data.Body)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">New inquiry on %s</h2>
    <p><strong>From:</strong> %s<br><strong>Subject:</strong> %s</p>
    <p style="white-space: pre-wrap; border-left: 3px solid #e5e7eb; padding-left: 12px;">%s</p>
</body>
</html>`,
		html.EscapeString(siteName), html.EscapeString(data.Submitter),
		html.EscapeString(data.Subject), html.EscapeString(data.Body))

	return Message{
		To:       []string{data.To},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildInquiryReplyEmail carries a staff answer back to the submitter,
// threaded onto the original acknowledgement via data.Headers.
func BuildInquiryReplyEmail(data InquiryEmailData) Message {
	siteName := data.SiteName
	if siteName == "" {
		siteName = "Atrium"
	}

	subject := data.Subject
	if !strings.HasPrefix(strings.ToLower(subject), "re:") {
		subject = "Re: " + subject
	}

	textBody := fmt.Sprintf(`%s

--
The %s Team`,
		data.Body, siteName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <p style="white-space: pre-wrap;">%s</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">The %s Team</p>
</body>
</html>`,
		html.EscapeString(data.Body), html.EscapeString(siteName))

	return Message{
		To:       []string{data.To},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
		Headers:  data.Headers,
	}
}
