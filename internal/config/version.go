package config

import (
	"encoding/json"
	"fmt"
)

// CurrentVersion is the current config schema version
const CurrentVersion = 1

// Migration upgrades raw config data by one schema version
type Migration struct {
	FromVersion int
	ToVersion   int
	Migrate     func(data map[string]any) (map[string]any, error)
}

// migrations is the list of migrations in order
var migrations = []Migration{
	// 0 -> 1: unversioned files kept the frame interval at the top level.
	{
		FromVersion: 0,
		ToVersion:   1,
		Migrate: func(data map[string]any) (map[string]any, error) {
			if frame, ok := data["frameMs"]; ok {
				in, _ := data["input"].(map[string]any)
				if in == nil {
					in = map[string]any{}
				}
				if _, set := in["frameMs"]; !set {
					in["frameMs"] = frame
				}
				data["input"] = in
				delete(data, "frameMs")
			}
			data["version"] = 1
			return data, nil
		},
	},
}

// ParseVersionedConfig parses config data, migrating older schemas
func ParseVersionedConfig(data []byte) (*Config, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	// Missing version means an unversioned file
	version := 0
	if v, ok := raw["version"].(float64); ok {
		version = int(v)
	}

	if version > CurrentVersion {
		return nil, fmt.Errorf("config version %d is newer than supported version %d", version, CurrentVersion)
	}

	if version < CurrentVersion {
		var err error
		raw, err = ApplyMigrations(raw, version)
		if err != nil {
			return nil, fmt.Errorf("failed to migrate config: %w", err)
		}
	}

	migrated, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal migrated config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(migrated, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// ApplyMigrations applies all migrations from the given version to CurrentVersion
func ApplyMigrations(data map[string]any, fromVersion int) (map[string]any, error) {
	for _, m := range migrations {
		if m.FromVersion != fromVersion {
			continue
		}
		var err error
		data, err = m.Migrate(data)
		if err != nil {
			return nil, fmt.Errorf("migration %d -> %d failed: %w", m.FromVersion, m.ToVersion, err)
		}
		fromVersion = m.ToVersion
	}

	if fromVersion < CurrentVersion {
		return nil, fmt.Errorf("no migration path from version %d to %d", fromVersion, CurrentVersion)
	}

	return data, nil
}

// MarshalVersionedConfig serializes a config with the version at the top level
func MarshalVersionedConfig(cfg *Config) ([]byte, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	out["version"] = CurrentVersion

	return json.MarshalIndent(out, "", "  ")
}
