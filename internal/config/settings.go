// Package config loads CLI settings and user-authored palette documents.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	coolererrors "github.com/alexisbeaulieu97/cooler/pkg/errors"

	"github.com/alexisbeaulieu97/cooler/internal/theme"
)

const (
	KeyAppearance = "appearance"
	KeyAlpha      = "alpha"
	KeyPalette    = "palette"
	KeyLogLevel   = "log.level"
	KeyLogHuman   = "log.human"
)

const (
	AppearanceAuto = "auto"
	envPrefix      = "COOLER"
)

// Settings is the resolved CLI configuration.
type Settings struct {
	Appearance string  `validate:"oneof=auto light dark"`
	Alpha      float64 `validate:"gte=0,lte=1"`
	Palette    string
	Log        LogSettings
}

// LogSettings configures the zerolog output.
type LogSettings struct {
	Level string `validate:"oneof=trace debug info warn error disabled"`
	Human bool
}

type loadSettings struct {
	userConfigPath string
	overrides      map[string]any
}

// Option configures Load. Useful for tests to override paths.
type Option func(*loadSettings)

// WithUserConfig overrides the default user config path.
func WithUserConfig(path string) Option {
	return func(s *loadSettings) {
		s.userConfigPath = path
	}
}

// WithOverrides injects values typically coming from CLI flags. Nil values are
// skipped so unset flags do not mask lower layers.
func WithOverrides(overrides map[string]any) Option {
	return func(s *loadSettings) {
		if s.overrides == nil {
			s.overrides = make(map[string]any, len(overrides))
		}
		for k, v := range overrides {
			if v != nil {
				s.overrides[k] = v
			}
		}
	}
}

// Load resolves settings using the precedence:
// defaults < user config < environment variables < overrides.
func Load(opts ...Option) (*Settings, error) {
	settings := loadSettings{}
	for _, opt := range opts {
		opt(&settings)
	}

	userConfigPath := strings.TrimSpace(settings.userConfigPath)
	if userConfigPath == "" {
		path, err := defaultUserConfigPath()
		if err != nil {
			return nil, err
		}
		userConfigPath = path
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := mergeConfigFile(v, userConfigPath); err != nil {
		return nil, fmt.Errorf("load user config: %w", err)
	}
	for k, val := range settings.overrides {
		v.Set(k, val)
	}

	s := &Settings{
		Appearance: strings.ToLower(strings.TrimSpace(v.GetString(KeyAppearance))),
		Alpha:      v.GetFloat64(KeyAlpha),
		Palette:    strings.TrimSpace(v.GetString(KeyPalette)),
		Log: LogSettings{
			Level: strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
			Human: v.GetBool(KeyLogHuman),
		},
	}
	if err := validatorInstance().Struct(s); err != nil {
		return nil, convertValidationError(err)
	}
	return s, nil
}

// ResolveAppearance maps the appearance setting to a concrete Appearance,
// probing the terminal when it is "auto".
func (s *Settings) ResolveAppearance(probe theme.DarkBackgroundFunc) (theme.Appearance, error) {
	if s == nil || s.Appearance == "" || s.Appearance == AppearanceAuto {
		return theme.DetectAppearanceWith(probe), nil
	}
	a, err := theme.ParseAppearance(s.Appearance)
	if err != nil {
		return theme.AppearanceLight, coolererrors.NewValidationError(KeyAppearance, err.Error(), err)
	}
	return a, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyAppearance, AppearanceAuto)
	v.SetDefault(KeyAlpha, 0.7)
	v.SetDefault(KeyPalette, "")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogHuman, true)
}

func mergeConfigFile(v *viper.Viper, path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return "", fmt.Errorf("determine user config dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "cooler", "config.yaml"), nil
}
