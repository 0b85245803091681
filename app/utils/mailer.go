package utils

import (
	"fmt"
	"log"
	"sync"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/mytsparks/Campus-Resource-Hub/app/entities"
	"github.com/mytsparks/Campus-Resource-Hub/app/repositories"
	"github.com/mytsparks/Campus-Resource-Hub/config"
)

type emailNotification struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers booking notifications over SMTP. Messages go through a
// buffered queue drained by worker goroutines so admission requests never
// wait on the mail server; a full queue drops the notification with a log
// line rather than blocking.
type Mailer struct {
	queue     chan emailNotification
	directory repositories.UserDirectory
	dial      func(m ...*gomail.Message) error
	from      string
	wg        sync.WaitGroup
}

func NewMailer(cfg config.SMTPConfig, directory repositories.UserDirectory, workers int) *Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)

	m := &Mailer{
		queue:     make(chan emailNotification, 100),
		directory: directory,
		dial:      dialer.DialAndSend,
		from:      cfg.From,
	}

	for i := 0; i < workers; i++ {
		m.wg.Add(1)
		go m.worker()
	}

	return m
}

func (m *Mailer) worker() {
	defer m.wg.Done()

	for n := range m.queue {
		msg := gomail.NewMessage()
		msg.SetHeader("From", m.from)
		msg.SetHeader("To", n.To)
		msg.SetHeader("Subject", n.Subject)
		msg.SetBody("text/plain", n.Body)

		if err := m.dial(msg); err != nil {
			log.Printf("sending %q to %s failed: %v", n.Subject, n.To, err)
		}
	}
}

func (m *Mailer) enqueue(userID int, subject, body string) {
	email, err := m.directory.EmailByID(userID)
	if err != nil {
		log.Printf("no address for user %d, dropping %q: %v", userID, subject, err)
		return
	}

	select {
	case m.queue <- emailNotification{To: email, Subject: subject, Body: body}:
	default:
		log.Printf("notification queue full, dropping %q to %s", subject, email)
	}
}

// BookingRejected tells the resource owner about a conflicting attempt,
// including the requested window and the requester.
func (m *Mailer) BookingRejected(resource entities.Resource, requesterID int, window entities.Window, message string) {
	body := fmt.Sprintf(
		"A booking request for %q from user %d was rejected because of a schedule conflict.\n\nRequested window: %s to %s\n",
		resource.Title, requesterID,
		window.Start.Format(time.RFC1123), window.End.Format(time.RFC1123),
	)
	if message != "" {
		body += "\nMessage from the requester:\n" + message + "\n"
	}

	m.enqueue(resource.OwnerID, "Booking request rejected: "+resource.Title, body)
}

// WaitlistPromoted tells a waitlisted user their booking was created.
func (m *Mailer) WaitlistPromoted(resource entities.Resource, booking entities.Booking) {
	body := fmt.Sprintf(
		"A slot on %q opened up and your waitlisted request was booked (%s).\n\nWindow: %s to %s\nStatus: %s\n",
		resource.Title, booking.Reference,
		booking.Start.Format(time.RFC1123), booking.End.Format(time.RFC1123),
		booking.Status,
	)

	m.enqueue(booking.RequesterID, "You're booked: "+resource.Title, body)
}

// Shutdown drains the queue and stops the workers.
func (m *Mailer) Shutdown() {
	close(m.queue)
	m.wg.Wait()
}
