package notify

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
)

// Notifier delivers a message somewhere the user will see it.
type Notifier interface {
	Notify(msg string, sev Severity) error
}

// Desktop sends messages as native desktop notifications.
type Desktop struct {
	Title string
	send  func(text string, opts ...zenity.Option) error
}

func NewDesktop(title string) *Desktop {
	return &Desktop{Title: title, send: zenity.Notify}
}

func (d *Desktop) Notify(msg string, sev Severity) error {
	icon := zenity.InfoIcon
	if sev == Error {
		icon = zenity.ErrorIcon
	}
	if err := d.send(msg, zenity.Title(d.Title), icon); err != nil {
		return fmt.Errorf("desktop notification: %w", err)
	}
	return nil
}

// Multi fans a message out to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(msg string, sev Severity) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(msg, sev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
