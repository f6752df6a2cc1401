package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

type profilesFile struct {
	Profiles map[string]yaml.Node `yaml:"profiles"`
}

// LoadProfiles returns the builtin profiles with any overrides from the
// given YAML file merged in. Override files list only the fields they
// change; unknown level names define new profiles from scratch. An
// empty path returns the builtins untouched.
func LoadProfiles(path string) (map[Level]*DifficultyProfile, error) {
	profiles := BuiltinProfiles()
	if path == "" {
		return profiles, nil
	}

	var file profilesFile
	if err := loadYAML(path, &file); err != nil {
		return nil, fmt.Errorf("loading profiles from %s: %w", path, err)
	}

	for name, node := range file.Profiles {
		level := Level(name)
		profile, ok := profiles[level]
		if !ok {
			profile = &DifficultyProfile{FoulLimit: DefaultFoulLimit}
		}
		if err := node.Decode(profile); err != nil {
			return nil, fmt.Errorf("decoding profile %q: %w", name, err)
		}
		profiles[level] = profile
	}

	for level, profile := range profiles {
		if err := profile.Validate(); err != nil {
			return nil, fmt.Errorf("profile %q: %w", level, err)
		}
	}
	return profiles, nil
}

// LoadLeague returns the league defined in the given YAML file, or the
// builtin league when the path is empty.
func LoadLeague(path string) (*League, error) {
	if path == "" {
		return DefaultLeague(), nil
	}

	var league League
	if err := loadYAML(path, &league); err != nil {
		return nil, fmt.Errorf("loading league from %s: %w", path, err)
	}
	if err := league.Validate(); err != nil {
		return nil, fmt.Errorf("league %s: %w", path, err)
	}
	return &league, nil
}
