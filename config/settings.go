package config

import (
	"github.com/npillmayer/csscascade/cascade"
	"github.com/npillmayer/csscascade/signal"
	"github.com/npillmayer/schuko"
)

// Settings provides runtime settings to a cascade.
type Settings struct {
	values  Values
	changed *signal.Signal
}

var _ cascade.SettingsProvider = (*Settings)(nil)

// NewSettings creates a settings provider serving a copy of values.
func NewSettings(values map[string]string) *Settings {
	s := &Settings{changed: signal.New("settings-changed")}
	s.values = copyValues(values)
	return s
}

// Changed is emitted by Update.
func (s *Settings) Changed() *signal.Signal {
	return s.changed
}

// GetSettings returns the current settings. The result must not be
// modified.
func (s *Settings) GetSettings() schuko.Configuration {
	return s.values
}

// Update replaces the settings and emits Changed.
func (s *Settings) Update(values map[string]string) {
	s.values = copyValues(values)
	tracer().Debugf("settings updated, %d entries", len(s.values))
	s.changed.Emit()
}

func copyValues(values map[string]string) Values {
	vals := make(Values, len(values))
	for k, v := range values {
		vals[k] = v
	}
	return vals
}
