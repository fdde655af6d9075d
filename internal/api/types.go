package api

import "time"

// Tap describes a beverage dispensing point.
type Tap struct {
	Name        string  `json:"name"`
	MeterName   string  `json:"meter_name"`
	Description string  `json:"description"`
	MLPerTick   float64 `json:"ml_per_tick"`
	TempSensor  string  `json:"thermo_sensor"`
}

// Drink is a recorded pour.
type Drink struct {
	ID       int     `json:"id"`
	TapName  string  `json:"tap_name"`
	Ticks    int     `json:"ticks"`
	VolumeML float64 `json:"volume_ml"`
	Username string  `json:"username"`
	PourTime string  `json:"pour_time"`
	Duration int     `json:"duration"`
	Status   string  `json:"status"`
	Spilled  bool    `json:"spilled"`
	Shout    string  `json:"shout"`
}

// ThermoLog is a recorded temperature sensor reading.
type ThermoLog struct {
	SensorName string  `json:"sensor_name"`
	TempC      float64 `json:"temp_c"`
	RecordTime string  `json:"record_time"`
}

// AuthToken is a credential presented by a physical access-control
// device, distinct from the api_key authenticating the client itself.
type AuthToken struct {
	AuthDevice string `json:"auth_device"`
	TokenValue string `json:"token_value"`
	Username   string `json:"username"`
	Enabled    bool   `json:"enabled"`
	Pin        string `json:"pin"`
}

// SoundEvent binds a sound file to a server-side event.
type SoundEvent struct {
	EventName      string `json:"event_name"`
	EventPredicate string `json:"event_predicate"`
	SoundURL       string `json:"sound_url"`
	Username       string `json:"user"`
}

// RecordDrinkRequest carries the parameters for recording a pour.
// Optional fields are dropped from the request body entirely when unset;
// they are never sent as empty strings.
type RecordDrinkRequest struct {
	// TapName and Ticks are always sent.
	TapName string
	Ticks   int

	// VolumeML overrides the server's tick-to-volume conversion when
	// non-nil.
	VolumeML *float64

	// Username attributes the pour when non-empty.
	Username string

	// PourTime is the time of the pour. When non-zero it is sent as whole
	// epoch seconds together with a "now" field carrying the current time,
	// letting the server correct for client clock skew.
	PourTime time.Time

	// Duration is the pour duration in seconds; sent only when positive.
	Duration int

	// AuthToken is the token value of the authenticating device, sent
	// when non-empty.
	AuthToken string

	// Spilled marks the pour as spillage; sent only when true.
	Spilled bool

	// Shout is a free-form message attached to the pour, sent when
	// non-empty.
	Shout string
}
