package domain

import "testing"

func TestDefaultGameConfig(t *testing.T) {
	config := DefaultGameConfig()

	if !config.Validate() {
		t.Fatalf("Default config failed validation: %+v", config)
	}
	if config.WindowWidth() != 600 {
		t.Errorf("Expected window width 600, got %d", config.WindowWidth())
	}
	if config.WindowHeight() != 400 {
		t.Errorf("Expected window height 400, got %d", config.WindowHeight())
	}
	if config.TPS != 12 {
		t.Errorf("Expected 12 ticks per second, got %d", config.TPS)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"width too small", func(c *GameConfig) { c.Width = 5 }},
		{"height too large", func(c *GameConfig) { c.Height = 500 }},
		{"zero cell size", func(c *GameConfig) { c.CellSize = 0 }},
		{"zero tps", func(c *GameConfig) { c.TPS = 0 }},
		{"snake longer than half the field", func(c *GameConfig) { c.InitialLength = 20 }},
	}

	for _, c := range cases {
		config := DefaultGameConfig()
		c.mutate(config)
		if config.Validate() {
			t.Errorf("%s: expected validation to fail for %+v", c.name, config)
		}
	}
}

func TestCopyIsIndependent(t *testing.T) {
	config := DefaultGameConfig()
	copied := config.Copy()

	copied.Width = 50
	if config.Width == 50 {
		t.Errorf("Copy shares storage with the original")
	}
}
