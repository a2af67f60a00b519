package notifier

import (
	"fmt"
	"html/template"
	"strings"
)

// Shared HTML layout for all four notification emails. Values are
// rendered through html/template so user-supplied titles, messages and
// names are escaped before they reach a mail client.
const emailLayout = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"></head>
<body style="margin:0;padding:0;font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;background-color:#f5f7fa;">
<table width="100%" cellpadding="0" cellspacing="0" style="background-color:#f5f7fa;padding:40px 0;"><tr><td align="center">
<table width="600" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:12px;overflow:hidden;">
<tr><td style="background:linear-gradient(135deg,#667eea 0%,#764ba2 100%);padding:32px 30px;text-align:center;">
<h1 style="color:#ffffff;margin:0;font-size:26px;font-weight:600;">CampusVoice</h1>
<p style="color:rgba(255,255,255,0.9);margin:8px 0 0;font-size:13px;">Empowering Your Campus Experience</p>
</td></tr>
<tr><td style="padding:32px 30px;">
<h2 style="color:#2d3436;margin:0 0 18px;font-size:20px;">{{.Heading}}</h2>
<p style="color:#2d3436;font-size:15px;line-height:1.6;margin:0 0 22px;">{{.Intro}}</p>
{{range .Rows}}<div style="background-color:#f8f9fa;border-left:4px solid #667eea;padding:16px;margin-bottom:14px;border-radius:6px;">
<p style="margin:0 0 6px;color:#6c757d;font-size:11px;text-transform:uppercase;letter-spacing:0.5px;font-weight:600;">{{.Label}}</p>
<p style="margin:0;color:#2d3436;font-size:15px;">{{.Value}}</p>
</div>{{end}}
{{if .ButtonURL}}<div style="text-align:center;margin:28px 0 8px;">
<a href="{{.ButtonURL}}" style="display:inline-block;background:linear-gradient(135deg,#667eea 0%,#764ba2 100%);color:#ffffff;text-decoration:none;padding:13px 30px;border-radius:8px;font-weight:600;font-size:15px;">{{.ButtonLabel}}</a>
</div>{{end}}
</td></tr>
<tr><td style="background-color:#f8f9fa;padding:24px 30px;text-align:center;border-top:1px solid #e9ecef;">
<p style="margin:0;color:#6c757d;font-size:13px;line-height:1.6;">{{.Footer}}</p>
</td></tr>
</table></td></tr></table>
</body>
</html>`

var emailTmpl = template.Must(template.New("email").Parse(emailLayout))

type emailRow struct {
	Label string
	Value string
}

type emailData struct {
	Heading     string
	Intro       string
	Rows        []emailRow
	ButtonURL   string
	ButtonLabel string
	Footer      string
}

func renderEmail(data emailData) (string, error) {
	var sb strings.Builder
	if err := emailTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func adminNewComplaintEmail(n *Notification, adminURL string) (subject, body string, err error) {
	subject = fmt.Sprintf("New Student Concern Received: %s", n.Title)
	body, err = renderEmail(emailData{
		Heading: "New Student Concern Submitted",
		Intro:   "A student has submitted a new concern that requires your attention.",
		Rows: []emailRow{
			{Label: "Student Name", Value: n.StudentName},
			{Label: "Concern Title", Value: n.Title},
			{Label: "Description", Value: n.Description},
			{Label: "Concern ID", Value: n.ComplaintID},
		},
		ButtonURL:   adminURL,
		ButtonLabel: "Review Concern",
		Footer:      "Your prompt response helps create a better campus environment.",
	})
	return
}

func studentResponseEmail(n *Notification, studentName, portalURL string) (subject, body string, err error) {
	subject = fmt.Sprintf("New Message About Your Concern: %s", n.Title)
	body, err = renderEmail(emailData{
		Heading: "Our Support Team Has Responded",
		Intro:   fmt.Sprintf("Hi %s, the support team replied to your concern. You can continue the conversation in your student portal.", studentName),
		Rows: []emailRow{
			{Label: "Concern", Value: n.Title},
			{Label: "Support Team Response", Value: n.Message},
		},
		ButtonURL:   portalURL,
		ButtonLabel: "View & Reply",
		Footer:      "Your concerns drive positive change on campus.",
	})
	return
}

func statusChangeEmail(n *Notification, studentName, portalURL string) (subject, body string, err error) {
	subject = fmt.Sprintf("Complaint Status Updated: %s", n.Title)
	body, err = renderEmail(emailData{
		Heading: "Your Concern Status Changed",
		Intro:   fmt.Sprintf("Hi %s, the status of your concern has been updated.", studentName),
		Rows: []emailRow{
			{Label: "Concern", Value: n.Title},
			{Label: "New Status", Value: n.NewStatus},
		},
		ButtonURL:   portalURL,
		ButtonLabel: "View Concern",
		Footer:      "We will keep you posted on further progress.",
	})
	return
}

func surveyEmail(n *Notification, studentName, surveyURL string) (subject, body string, err error) {
	subject = "We'd Love Your Feedback - CampusVoice"
	body, err = renderEmail(emailData{
		Heading: "Thank You for Using CampusVoice!",
		Intro: fmt.Sprintf("Hello %s, great news! Your concern %q has been resolved. "+
			"We'd love to hear about your experience. The survey takes less than two minutes and your answers are confidential.",
			studentName, n.Title),
		ButtonURL:   surveyURL,
		ButtonLabel: "Share Your Feedback",
		Footer:      "CampusVoice - Empowering Your Campus Experience",
	})
	return
}
