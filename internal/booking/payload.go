package booking

import (
	"github.com/slivka2007/golfing-grouper/internal/teetime"
)

// PayloadBuilder shapes a booking request the way one platform's API wants
// it. Builders are pure; they never touch the network.
type PayloadBuilder interface {
	Build(listing teetime.TeeTime, details Details) any
}

// Builders maps platform names to their payload builders.
type Builders map[string]PayloadBuilder

// DefaultBuilders returns the builders for the platforms with known booking
// formats.
func DefaultBuilders() Builders {
	return Builders{
		"GolfNow API": golfNowBuilder{},
		"TeeOff API":  teeOffBuilder{},
	}
}

type golfNowPlayer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type golfNowPayment struct {
	PaymentMethodID string `json:"payment_method_id"`
}

type golfNowBooking struct {
	TeeTimeID   int             `json:"tee_time_id"`
	PlayerCount int             `json:"player_count"`
	Players     []golfNowPlayer `json:"players"`
	Payment     golfNowPayment  `json:"payment"`
}

type golfNowBuilder struct{}

func (golfNowBuilder) Build(listing teetime.TeeTime, details Details) any {
	players := make([]golfNowPlayer, len(details.Players))
	for i, p := range details.Players {
		players[i] = golfNowPlayer{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
		}
	}
	return golfNowBooking{
		TeeTimeID:   listing.ID,
		PlayerCount: details.PlayerCount(),
		Players:     players,
		Payment:     golfNowPayment{PaymentMethodID: details.PaymentMethodID},
	}
}

type teeOffCustomer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// teeOffBooking books the whole party under the lead player; TeeOff only
// takes one customer record.
type teeOffBooking struct {
	TimeID              int            `json:"timeId"`
	Players             int            `json:"players"`
	CustomerInformation teeOffCustomer `json:"customerInformation"`
	PaymentToken        string         `json:"paymentToken"`
}

type teeOffBuilder struct{}

func (teeOffBuilder) Build(listing teetime.TeeTime, details Details) any {
	lead := details.Players[0]
	return teeOffBooking{
		TimeID:  listing.ID,
		Players: details.PlayerCount(),
		CustomerInformation: teeOffCustomer{
			FirstName: lead.FirstName,
			LastName:  lead.LastName,
			Email:     lead.Email,
			Phone:     lead.Phone,
		},
		PaymentToken: details.PaymentMethodID,
	}
}
