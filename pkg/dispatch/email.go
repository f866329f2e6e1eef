package dispatch

import (
	"context"

	"go.uber.org/zap"

	"github.com/document-export-service/pkg/backend"
	"github.com/document-export-service/pkg/export"
)

// Message is the user-entered part of an email send.
type Message struct {
	To          string
	Subject     string
	Description string
}

// Emailer sends artifacts through the backend mail endpoint.
type Emailer struct {
	client *backend.Client
	log    *zap.Logger
}

// NewEmailer returns an emailer using the given backend client.
func NewEmailer(client *backend.Client, log *zap.Logger) *Emailer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Emailer{client: client, log: log}
}

// Send attaches the artifact and posts the email.
func (e *Emailer) Send(ctx context.Context, sess backend.Session, msg Message, art *export.Artifact) error {
	err := e.client.SendDocumentEmail(ctx, sess, backend.EmailRequest{
		To:          msg.To,
		Subject:     msg.Subject,
		Description: msg.Description,
		Filename:    art.Filename,
		Attachment:  art.Bytes,
	})
	if err != nil {
		return err
	}
	e.log.Info("document emailed",
		zap.String("to", msg.To),
		zap.String("filename", art.Filename))
	return nil
}
