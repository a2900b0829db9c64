package config

import (
	"fmt"

	"github.com/npillmayer/csscascade/cascade"
	"github.com/npillmayer/csscascade/cssprovider"
)

// Cascade creates a cascade from the configured style sheets, with the
// configured scale and the settings at PrioritySettings. Diagnostics of
// the style sheets are traced, not returned. A style sheet which cannot
// be read is an error.
func (f *File) Cascade() (*cascade.Cascade, error) {
	c := cascade.New()
	c.SetScale(f.ScaleFactor())
	if len(f.Settings) > 0 {
		c.AddProvider(NewSettings(f.Settings), cascade.PrioritySettings)
	}
	for _, entry := range f.Providers {
		p := cssprovider.New()
		path := f.ProviderPath(entry)
		if err := p.LoadFromFile(path); err != nil {
			return nil, fmt.Errorf("provider %s: %w", entry.Label(), err)
		}
		for _, d := range p.Diagnostics() {
			tracer().Infof("provider %s: %v", entry.Label(), d)
		}
		c.AddProvider(p, entry.Priority)
		tracer().Debugf("provider %s added with priority %d", entry.Label(), entry.Priority)
	}
	return c, nil
}
