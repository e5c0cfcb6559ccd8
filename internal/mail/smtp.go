package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	domain "github.com/Ashugithubb/BookSaloon-Backend/internal/domain/appointment"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/models"
)

// SMTPSender delivers completion codes over plain SMTP.
type SMTPSender struct {
	addr string
	from string
}

func NewSMTPSender(host, port, from string) *SMTPSender {
	if from == "" {
		from = "no-reply@booksaloon.local"
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%s", strings.TrimSpace(host), strings.TrimSpace(port)),
		from: strings.TrimSpace(from),
	}
}

func (s *SMTPSender) SendCompletionCode(
	ctx context.Context,
	email string,
	code string,
	ap *models.Appointment,
) error {

	subject := "Your appointment completion code"
	body := fmt.Sprintf(
		"Share this code with your service provider to confirm completion: %s\r\n\r\n"+
			"The code expires in 15 minutes.\r\n",
		code,
	)

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		s.from, email, subject, body,
	)

	return smtp.SendMail(s.addr, nil, s.from, []string{email}, []byte(msg))
}

var _ domain.EmailSender = (*SMTPSender)(nil)
