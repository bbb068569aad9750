package notify

import (
	"context"
	"fmt"

	"github.com/sharafhazem/portfolio-ops/adapters/notify"
)

// Both use cases accept a payload, hand it to the dispatcher and return
// immediately. Delivery outcome never reaches the caller.

type ContactUseCase struct {
	dispatcher *notify.Dispatcher
}

func NewContactUseCase(d *notify.Dispatcher) *ContactUseCase {
	return &ContactUseCase{dispatcher: d}
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (uc *ContactUseCase) Execute(_ context.Context, input ContactInput) {
	uc.dispatcher.Dispatch(notify.Message{
		Kind:    notify.KindContact,
		Subject: fmt.Sprintf("New Work Queue Request from %s", input.Name),
		Fields: []notify.Field{
			{Name: "Operator Name", Value: input.Name, Inline: true},
			{Name: "Comms Frequency", Value: input.Email, Inline: true},
		},
		Body: input.Message,
		Raw:  input,
	})
}

type BookingUseCase struct {
	dispatcher *notify.Dispatcher
}

func NewBookingUseCase(d *notify.Dispatcher) *BookingUseCase {
	return &BookingUseCase{dispatcher: d}
}

type BookingInput struct {
	Alias            string `json:"alias"`
	Email            string `json:"email"`
	Discord          string `json:"discord"`
	Twitter          string `json:"twitter"`
	PreferredChannel string `json:"preferredChannel"`
	ProjectCategory  string `json:"projectCategory"`
	Budget           string `json:"budget"`
	Timeline         string `json:"timeline"`
	MissionBrief     string `json:"missionBrief"`
	PlanName         string `json:"planName"`
	PlanLevel        string `json:"planLevel"`
}

func (uc *BookingUseCase) Execute(_ context.Context, input BookingInput) {
	uc.dispatcher.Dispatch(notify.Message{
		Kind:    notify.KindBooking,
		Subject: fmt.Sprintf("New Mission Parameter: %s (%s)", input.PlanName, input.PlanLevel),
		Fields: []notify.Field{
			{Name: "Client Alias", Value: input.Alias, Inline: true},
			{Name: "Preferred Channel", Value: input.PreferredChannel, Inline: true},
			{Name: "Email", Value: input.Email},
			{Name: "Discord", Value: input.Discord, Inline: true},
			{Name: "Twitter", Value: input.Twitter, Inline: true},
			{Name: "Project Category", Value: input.ProjectCategory},
			{Name: "Allocated Budget", Value: input.Budget, Inline: true},
			{Name: "Estimated Timeline", Value: input.Timeline, Inline: true},
		},
		Body: input.MissionBrief,
		Raw:  input,
	})
}
