package api

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/kegbot/client-go/internal/apierrors"
)

// RecordDrink records a pour against a tap.
func (c *Client) RecordDrink(ctx context.Context, req RecordDrinkRequest) (*Drink, error) {
	form := url.Values{}
	form.Set("tap_name", req.TapName)
	form.Set("ticks", strconv.Itoa(req.Ticks))
	if req.VolumeML != nil {
		form.Set("volume_ml", strconv.FormatFloat(*req.VolumeML, 'f', -1, 64))
	}
	if req.Username != "" {
		form.Set("username", req.Username)
	}
	if req.Duration > 0 {
		form.Set("duration", strconv.Itoa(req.Duration))
	}
	if req.AuthToken != "" {
		form.Set("auth_token", req.AuthToken)
	}
	if req.Spilled {
		form.Set("spilled", strconv.FormatBool(req.Spilled))
	}
	if req.Shout != "" {
		form.Set("shout", req.Shout)
	}
	if !req.PourTime.IsZero() {
		// Whole-second epoch timestamps; sub-second precision is truncated.
		form.Set("pour_time", strconv.FormatInt(req.PourTime.Unix(), 10))
		form.Set("now", strconv.FormatInt(time.Now().Unix(), 10))
	}

	env, err := c.Do(ctx, "taps/"+url.PathEscape(req.TapName), nil, form)
	if err != nil {
		return nil, err
	}

	var drink Drink
	if err := env.DecodeObject(&drink); err != nil {
		return nil, err
	}
	return &drink, nil
}

// CancelDrink cancels a previously recorded drink by sequence number.
func (c *Client) CancelDrink(ctx context.Context, seqNum int, spilled bool) (*Drink, error) {
	form := url.Values{}
	form.Set("id", strconv.Itoa(seqNum))
	form.Set("spilled", strconv.FormatBool(spilled))

	env, err := c.Do(ctx, "cancel-drink", nil, form)
	if err != nil {
		return nil, err
	}

	var drink Drink
	if err := env.DecodeObject(&drink); err != nil {
		return nil, err
	}
	return &drink, nil
}

// LogSensorReading records a temperature reading for a sensor.
//
// The when parameter is accepted for interface compatibility but is not
// transmitted; the server timestamps the reading itself.
// TODO(api): send the reading time once the server defines a field for it.
func (c *Client) LogSensorReading(ctx context.Context, sensorName string, tempC float64, when time.Time) (*ThermoLog, error) {
	_ = when

	form := url.Values{}
	form.Set("temp_c", strconv.FormatFloat(tempC, 'f', -1, 64))

	env, err := c.Do(ctx, "thermo-sensors/"+url.PathEscape(sensorName), nil, form)
	if err != nil {
		return nil, err
	}

	var log ThermoLog
	if err := env.DecodeObject(&log); err != nil {
		return nil, err
	}
	return &log, nil
}

// TapStatus returns the status of all taps.
func (c *Client) TapStatus(ctx context.Context) ([]*Tap, error) {
	env, err := c.Do(ctx, "taps", nil, nil)
	if err != nil {
		return nil, err
	}

	var taps []*Tap
	if err := env.DecodeObjects(&taps); err != nil {
		return nil, err
	}
	return taps, nil
}

// GetToken looks up an auth token presented by a device.
func (c *Client) GetToken(ctx context.Context, authDevice, tokenValue string) (*AuthToken, error) {
	endpoint := "auth-tokens/" + url.PathEscape(authDevice) + "/" + url.PathEscape(tokenValue)
	env, err := c.Do(ctx, endpoint, nil, nil)
	if err != nil {
		// The server reports an unknown token on this endpoint as a
		// generic server failure; reinterpret it as not-found.
		var remote *apierrors.RemoteError
		if errors.As(err, &remote) && remote.Kind == apierrors.KindServerError {
			return nil, &apierrors.RemoteError{
				Kind:    apierrors.KindNotFound,
				Code:    remote.Code,
				Message: remote.Summary(),
			}
		}
		return nil, err
	}

	var token AuthToken
	if err := env.DecodeObject(&token); err != nil {
		return nil, err
	}
	return &token, nil
}

// AllDrinks returns all recorded drinks.
func (c *Client) AllDrinks(ctx context.Context) ([]*Drink, error) {
	env, err := c.Do(ctx, "drinks", nil, nil)
	if err != nil {
		return nil, err
	}

	var drinks []*Drink
	if err := env.DecodeObjects(&drinks); err != nil {
		return nil, err
	}
	return drinks, nil
}

// AllSoundEvents returns all configured sound events.
func (c *Client) AllSoundEvents(ctx context.Context) ([]*SoundEvent, error) {
	env, err := c.Do(ctx, "sound-events", nil, nil)
	if err != nil {
		return nil, err
	}

	var events []*SoundEvent
	if err := env.DecodeObjects(&events); err != nil {
		return nil, err
	}
	return events, nil
}
