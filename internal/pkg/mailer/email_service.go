package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendReturnDecision(toEmail, returnID, status, notes string) error
	SendAppealDecision(toEmail, returnID, status, notes string) error
	SendRefundConfirmation(toEmail, returnID string, amount float64) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) send(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send %q to %s: %v\n", subject, toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] %q sent to %s\n", subject, toEmail)
	return nil
}

func (s *emailService) SendReturnDecision(toEmail, returnID, status, notes string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Update on Your Return Request</h2>
			<p>Your return request <b>%s</b> has been <b>%s</b>.</p>
			<p>%s</p>
			<p>If your return was denied, you may submit an appeal within 14 days of the decision.</p>
		</div>
	`, returnID, status, notes)

	return s.send(toEmail, "Your Return Request Has Been Reviewed", body)
}

func (s *emailService) SendAppealDecision(toEmail, returnID, status, notes string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Update on Your Appeal</h2>
			<p>Your appeal for return request <b>%s</b> has been <b>%s</b>.</p>
			<p>%s</p>
			<p>This decision is final.</p>
		</div>
	`, returnID, status, notes)

	return s.send(toEmail, "Your Appeal Has Been Reviewed", body)
}

func (s *emailService) SendRefundConfirmation(toEmail, returnID string, amount float64) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Refund Processed</h2>
			<p>A refund of <b>%.2f</b> for return request <b>%s</b> has been issued.</p>
			<p>Depending on your payment provider it may take 5-10 business days to appear.</p>
		</div>
	`, amount, returnID)

	return s.send(toEmail, "Your Refund Is on the Way", body)
}
