package command

import (
	"testing"

	"github.com/pixil98/go-codex/internal/codex"
	"github.com/pixil98/go-codex/internal/items"
	"github.com/pixil98/go-testutil"
)

func TestListenerType_UnmarshalText(t *testing.T) {
	tests := map[string]struct {
		input   string
		expType ListenerType
		expErr  string
	}{
		"telnet":     {input: "telnet", expType: ListenerTypeTelnet},
		"ssh":        {input: "ssh", expType: ListenerTypeSSH},
		"mixed case": {input: "SSH", expType: ListenerTypeSSH},
		"unknown":    {input: "http", expErr: "unknown listener type"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var lt ListenerType
			err := lt.UnmarshalText([]byte(tt.input))

			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "type", lt, tt.expType)
		})
	}
}

func TestListenerType_String(t *testing.T) {
	testutil.AssertEqual(t, "telnet", ListenerTypeTelnet.String(), "telnet")
	testutil.AssertEqual(t, "ssh", ListenerTypeSSH.String(), "ssh")
	testutil.AssertEqual(t, "unknown", ListenerType(7).String(), "ListenerType(7)")
}

func TestListenerConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		config ListenerConfig
		expErr string
	}{
		"valid telnet": {
			config: ListenerConfig{Protocol: ListenerTypeTelnet, Port: 2323},
		},
		"valid ssh with host key": {
			config: ListenerConfig{Protocol: ListenerTypeSSH, Port: 2222, HostKeyPath: "/etc/codex/host_key"},
		},
		"missing port": {
			config: ListenerConfig{Protocol: ListenerTypeTelnet},
			expErr: "port must be set",
		},
		"host key on telnet": {
			config: ListenerConfig{Protocol: ListenerTypeTelnet, Port: 2323, HostKeyPath: "/etc/codex/host_key"},
			expErr: "host_key_path only applies to ssh listeners",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.config.validate()

			if tt.expErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestNatsConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		config NatsConfig
		expErr string
	}{
		"defaults":       {config: NatsConfig{}},
		"fixed port":     {config: NatsConfig{Port: 4222}},
		"ephemeral port": {config: NatsConfig{Port: -1}},
		"named broker":   {config: NatsConfig{Name: "codex-dev"}},
		"port too low": {
			config: NatsConfig{Port: -2},
			expErr: "port -2 is out of range",
		},
		"port too high": {
			config: NatsConfig{Port: 70000},
			expErr: "port 70000 is out of range",
		},
		"bad start timeout": {
			config: NatsConfig{StartTimeout: "soon"},
			expErr: "parsing start_timeout",
		},
		"name with whitespace": {
			config: NatsConfig{Name: "codex dev"},
			expErr: "name must not contain whitespace",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.config.validate()

			if tt.expErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestStatsConfig_Validate(t *testing.T) {
	if err := (&StatsConfig{Publish: true, Subject: "codex.stats"}).validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (&StatsConfig{}).validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := (&StatsConfig{Subject: "codex stats"}).validate()
	testutil.AssertErrorContains(t, err, "subject must not contain whitespace")
}

func testStorageConfig(t *testing.T) StorageConfig {
	t.Helper()
	dir := t.TempDir()
	return StorageConfig{
		Items:            AssetConfig[*items.Item]{Path: dir},
		Craft:            AssetConfig[*codex.CraftRecipe]{Path: dir},
		Research:         AssetConfig[*codex.ResearchCost]{Path: dir},
		Recycle:          AssetConfig[*codex.RecycleYield]{Path: dir},
		DurabilityItems:  AssetConfig[*codex.DurabilitySet]{Path: dir},
		DurabilityBlocks: AssetConfig[*codex.DurabilitySet]{Path: dir},
		DurabilityOther:  AssetConfig[*codex.DurabilitySet]{Path: dir},
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func(t *testing.T) *Config {
		return &Config{
			TickInterval: "30s",
			Listeners: []ListenerConfig{
				{Protocol: ListenerTypeTelnet, Port: 2323},
			},
			Storage: testStorageConfig(t),
		}
	}

	t.Run("valid", func(t *testing.T) {
		if err := valid(t).Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("tick interval too short", func(t *testing.T) {
		c := valid(t)
		c.TickInterval = "500ms"

		testutil.AssertErrorContains(t, c.Validate(), "tick_interval must be at least 1 second")
	})

	t.Run("tick interval unparsable", func(t *testing.T) {
		c := valid(t)
		c.TickInterval = "whenever"

		testutil.AssertErrorContains(t, c.Validate(), "parsing tick_interval")
	})

	t.Run("listener errors name their index", func(t *testing.T) {
		c := valid(t)
		c.Listeners = append(c.Listeners, ListenerConfig{Protocol: ListenerTypeSSH})

		testutil.AssertErrorContains(t, c.Validate(), "listener 1: port must be set")
	})

	t.Run("missing storage path", func(t *testing.T) {
		c := valid(t)
		c.Storage.Craft.Path = ""

		testutil.AssertErrorContains(t, c.Validate(), "craft: path is required")
	})
}
