package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/travelbooking/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("send email to %s: booking %s at %s (%s - %s), total %.2f\n",
		event.Email, event.Reference, event.HotelName,
		event.CheckIn.Format("2006-01-02"), event.CheckOut.Format("2006-01-02"), event.TotalPrice)
	return nil
}
