package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/wneessen/go-mail"

	"pickles_back_end/internal/config"
	"pickles_back_end/internal/models"
	"pickles_back_end/internal/utils"
)

var ErrNoRecipient = errors.New("aucun destinataire configuré")

type Mailer struct {
	client    *mail.Client
	from      string
	ordersTo  string
	contactTo string
}

func NewMailer(cfg config.Config) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.SMTPUsername != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthLogin),
			mail.WithUsername(cfg.SMTPUsername),
			mail.WithPassword(cfg.SMTPPassword),
		)
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("client SMTP: %w", err)
	}

	return &Mailer{
		client:    client,
		from:      cfg.MailFrom,
		ordersTo:  cfg.OrdersEmail,
		contactTo: cfg.ContactEmail,
	}, nil
}

// OrderPlaced envoie le récapitulatif de commande avec le QR du reçu en pièce jointe
func (m *Mailer) OrderPlaced(ctx context.Context, order models.Order) error {
	msg, err := m.orderMessage(order)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail de commande à", m.ordersTo)
	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("envoi mail commande %s: %w", order.Reference(), err)
	}
	log.Printf("📧 Commande %s envoyée à %s", order.Reference(), m.ordersTo)
	return nil
}

func (m *Mailer) ForwardContact(ctx context.Context, contact utils.ContactMessage) error {
	msg, err := m.contactMessage(contact)
	if err != nil {
		return err
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("envoi mail contact: %w", err)
	}
	log.Printf("📧 Message de contact de %s transmis", contact.Email)
	return nil
}

func (m *Mailer) orderMessage(order models.Order) (*mail.Msg, error) {
	if m.ordersTo == "" {
		return nil, ErrNoRecipient
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, err
	}
	if err := msg.To(m.ordersTo); err != nil {
		return nil, err
	}
	msg.Subject(utils.OrderEmailSubject(order))
	msg.SetBodyString(mail.TypeTextHTML, utils.GenerateOrderHTML(order))

	png, err := utils.ReceiptQRPNG(order.Receipt())
	if err != nil {
		return nil, fmt.Errorf("QR reçu: %w", err)
	}
	if err := msg.AttachReader("recu_"+order.Reference()+".png", bytes.NewReader(png)); err != nil {
		return nil, err
	}
	return msg, nil
}

func (m *Mailer) contactMessage(contact utils.ContactMessage) (*mail.Msg, error) {
	if m.contactTo == "" {
		return nil, ErrNoRecipient
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, err
	}
	if err := msg.To(m.contactTo); err != nil {
		return nil, err
	}
	if contact.Email != "" {
		if err := msg.ReplyTo(contact.Email); err != nil {
			log.Printf("⚠️ Reply-To ignoré (%q): %v", contact.Email, err)
		}
	}
	msg.Subject("✉️ Contact : " + contact.Name)
	msg.SetBodyString(mail.TypeTextHTML, utils.GenerateContactHTML(contact))
	return msg, nil
}
