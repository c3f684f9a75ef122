// utils/email_service.go
package utils

import (
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/petopia/petopia_backend/config"
)

// EmailService sends outbound notifications over SMTP. Most callers
// treat delivery as best-effort and only log failures; the OTP path is
// the exception and propagates the error.
type EmailService struct {
	host string
	port int
	user string
	pass string
	from string
}

// NewEmailService creates an email service from the startup config.
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.FromEmail,
	}
}

// Send delivers a plain-text email and waits for transport acknowledgment.
func (s *EmailService) Send(to, subject, body string) error {
	if s.host == "" || s.port == 0 || s.user == "" || s.pass == "" || s.from == "" {
		return errors.New("missing SMTP configuration")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.user, s.pass)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// SendOTP delivers a registration OTP. Delivery failure must fail the
// issuance, so the error is returned to the caller.
func (s *EmailService) SendOTP(email, name, otp string) error {
	body := fmt.Sprintf("Dear %s,\n\nYour OTP code is: %s\n\nIt will expire in 10 minutes.", name, otp)
	return s.Send(email, "PeTopia - Your OTP Code", body)
}

// SendPasswordResetOTP delivers a password-reset OTP.
func (s *EmailService) SendPasswordResetOTP(email, name, otp string) error {
	body := fmt.Sprintf("Dear %s,\n\nYou requested to reset your password. Your OTP code is: %s\n\n"+
		"Please use this code within 10 minutes to reset your password.\n\n"+
		"If you did not request this, please ignore this email.", name, otp)
	return s.Send(email, "PeTopia - Reset Your Password", body)
}

// SendWelcome greets a newly registered user.
func (s *EmailService) SendWelcome(email, name string) error {
	body := fmt.Sprintf("Hello %s,\n\nWelcome to PeTopia!\n\n"+
		"We're so excited to have you as part of our growing family of pet lovers. "+
		"Whether you're looking to find a loving home for your pet or hoping to adopt your next furry friend, "+
		"you've come to the right place.\n\n"+
		"Start exploring today and discover how PeTopia makes connecting pets with loving homes easier than ever. "+
		"If you have any questions or need support, our team is always here to help.\n\n"+
		"Thank you for being a part of this incredible journey with us!\n\n"+
		"Paws and hugs,\nThe PeTopia Team", name)
	return s.Send(email, "Welcome to PeTopia!", body)
}

// SendSubmissionReceived confirms a pet listing submission.
func (s *EmailService) SendSubmissionReceived(email, name string) error {
	body := fmt.Sprintf("Hi %s,\n\nThank you for trusting PeTopia to help find a loving home for your pet!\n\n"+
		"Our team has received your submission and is currently reviewing the details. "+
		"Once everything checks out, your pet's profile will be featured on our platform, "+
		"connecting them with potential adopters who care just as much as you do.\n\n"+
		"You'll receive a confirmation email as soon as your pet's listing goes live.\n\n"+
		"With gratitude,\nThe PeTopia Team", name)
	return s.Send(email, "Pet Submission Received - PeTopia", body)
}

// SendListingApproved tells an owner their pet's profile went live.
func (s *EmailService) SendListingApproved(email, petName string) error {
	body := fmt.Sprintf("Hello %s's Proud Owner,\n\n"+
		"Exciting news! Your pet's adoption profile has been approved and is now live on the PeTopia platform.\n\n"+
		"Our pet-loving community can now connect with your furry friend and help them find their perfect forever home.\n\n"+
		"You can check out your pet's listing by logging into your account on our website.\n\n"+
		"Warm regards,\nThe PeTopia Team", petName)
	return s.Send(email, "Your Pet is Now Live on PeTopia!", body)
}

// SendListingRemoved tells an owner their listing was taken down.
func (s *EmailService) SendListingRemoved(email, petName string) error {
	body := fmt.Sprintf("Hello %s's Owner,\n\n"+
		"We wanted to let you know that your pet's listing has been removed from the PeTopia platform "+
		"after careful review by our admin team.\n\n"+
		"If you would like more details on the reason behind this or need assistance with next steps, "+
		"feel free to reach out to us.\n\n"+
		"Best regards,\nThe PeTopia Team", petName)
	return s.Send(email, "Pet Submission Removed - PeTopia", body)
}
