package kegbot

import "github.com/kegbot/client-go/internal/api"

// Wire models returned by the API.
type (
	// Tap describes a beverage dispensing point.
	Tap = api.Tap

	// Drink is a recorded pour.
	Drink = api.Drink

	// ThermoLog is a recorded temperature sensor reading.
	ThermoLog = api.ThermoLog

	// AuthToken is a credential presented by a physical access-control
	// device, distinct from the api_key authenticating the client.
	AuthToken = api.AuthToken

	// SoundEvent binds a sound file to a server-side event.
	SoundEvent = api.SoundEvent

	// RecordDrinkRequest carries the parameters for RecordDrink.
	RecordDrinkRequest = api.RecordDrinkRequest
)
