package window

import "testing"

func TestConfigDefaults(t *testing.T) {
	c := (*Config)(nil).withDefaults()
	if *c != DefaultConfig {
		t.Errorf("expected defaults for nil config, got %+v", *c)
	}
	if DefaultConfig.TPS != 10 {
		t.Errorf("expected 10 frames per second, got %d", DefaultConfig.TPS)
	}

	c = (&Config{Width: 320, Height: -1, Scale: 2}).withDefaults()
	if c.Width != DefaultConfig.Width || c.Height != DefaultConfig.Height {
		t.Errorf("expected default size for an invalid size, got %dx%d", c.Width, c.Height)
	}
	if c.Scale != 2 || c.Title != DefaultConfig.Title || c.TPS != DefaultConfig.TPS {
		t.Errorf("unexpected config %+v", *c)
	}
}
