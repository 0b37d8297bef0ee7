package utils

import (
	"fmt"
	"log"

	"institute/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends a transactional HTML email through SendGrid.
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendGridApiKey == "" {
		log.Printf("SendGrid not configured, skipping email to %s", toEmail)
		return nil
	}

	from := mail.NewEmail("Institute Admin", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

// getEmailTemplate wraps body content in the shared layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #FF7A1A; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #333333; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
			.info-box { background: #FFF3E8; padding: 15px; border-radius: 4px; border-left: 4px solid #FF7A1A; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">This is an automated message, please do not reply.</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendFeeReminderEmail notifies a student about an unpaid monthly fee.
func SendFeeReminderEmail(toEmail, studentName, instituteName, month string, amount uint) error {
	body := fmt.Sprintf(`
		<h2>Hi %s,</h2>
		<p>Your monthly fee at <b>%s</b> for <b>%s</b> is still pending.</p>
		<div class="info-box">Amount due: <b>%d</b></div>
		<p>Please complete the payment at the front desk or through your usual payment method.</p>`,
		studentName, instituteName, month, amount)

	subject := fmt.Sprintf("Fee reminder for %s", month)
	return SendEmail(toEmail, studentName, subject, getEmailTemplate("Fee Reminder", body))
}
