// Package jobs holds the background job kinds and their handlers.
package jobs

import (
	"context"
	"fmt"

	"agenda.link/mailer"
	"agenda.link/models"
	"agenda.link/pkg/ptbr"
	"agenda.link/queue"
)

// CancellationMailKind identifies the mail sent to a provider when a
// client cancels.
const CancellationMailKind = "cancellation-mail"

// CancellationMailPayload carries the canceled appointment with
// Provider and User preloaded.
type CancellationMailPayload struct {
	Appointment *models.Appointment
}

// NewCancellationMailHandler builds the queue handler that renders and
// sends the cancellation mail.
func NewCancellationMailHandler(m mailer.Mailer) queue.Handler {
	return func(ctx context.Context, payload any) error {
		p, ok := payload.(CancellationMailPayload)
		if !ok {
			return fmt.Errorf("cancellation mail: unexpected payload %T", payload)
		}
		appointment := p.Appointment
		if appointment == nil || appointment.Provider == nil || appointment.User == nil {
			return fmt.Errorf("cancellation mail: incomplete appointment payload")
		}

		body := fmt.Sprintf(
			"Olá, %s!\n\nHouve um cancelamento de horário.\n\nCliente: %s\nData/hora: %s\n\nO horário está novamente disponível para agendamento.",
			appointment.Provider.Name,
			appointment.User.Name,
			ptbr.FormatLong(appointment.Date),
		)

		return m.Send(ctx, mailer.Message{
			To:      appointment.Provider.Email,
			ToName:  appointment.Provider.Name,
			Subject: "Agendamento cancelado",
			Body:    body,
		})
	}
}
