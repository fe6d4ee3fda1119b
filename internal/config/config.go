package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/arcanaland/flashpack/internal/card"
	"github.com/arcanaland/flashpack/internal/packet"
)

// Config represents the application configuration
type Config struct {
	InDir         string `toml:"in_dir"`
	OutDir        string `toml:"out_dir"`
	PacketExt     string `toml:"packet_ext"`
	CardExt       string `toml:"card_ext"`
	FormatVersion uint16 `toml:"format_version"`
	DefaultPacket string `toml:"default_packet"`
}

// ConfigPathOverride replaces the XDG config file location when set
var ConfigPathOverride string

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		InDir:         "unencoded",
		OutDir:        "encoded",
		PacketExt:     ".pkt",
		CardExt:       packet.DefaultCardExtension,
		FormatVersion: card.DefaultFormatVersion,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	if ConfigPathOverride != "" {
		return ConfigPathOverride
	}
	return filepath.Join(GetXDGConfigHome(), "flashpack", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults on first use
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := saveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func saveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// Validate checks the values a packet build depends on
func (c *Config) Validate() error {
	if strings.TrimSpace(c.InDir) == "" {
		return fmt.Errorf("in_dir is required")
	}
	if strings.TrimSpace(c.OutDir) == "" {
		return fmt.Errorf("out_dir is required")
	}
	if !strings.HasPrefix(c.CardExt, ".") {
		return fmt.Errorf("card_ext must start with '.': %q", c.CardExt)
	}
	if !strings.HasPrefix(c.PacketExt, ".") {
		return fmt.Errorf("packet_ext must start with '.': %q", c.PacketExt)
	}
	if c.FormatVersion == 0 {
		return fmt.Errorf("format_version must be non-zero")
	}
	return nil
}

// Options converts the config into packet build options
func (c *Config) Options(logger zerolog.Logger) packet.Options {
	return packet.Options{
		CardExtension: c.CardExt,
		FormatVersion: c.FormatVersion,
		Logger:        logger,
	}
}

// GetPacketInputPath returns the source directory of a packet
func (c *Config) GetPacketInputPath(packetName string) string {
	return filepath.Join(c.InDir, packetName)
}

// GetPacketOutputPath returns the file a packet is encoded to
func (c *Config) GetPacketOutputPath(packetName string) string {
	return filepath.Join(c.OutDir, packetName+c.PacketExt)
}

// ResolvePacketPath returns the source directory for a packet name, either
// under in_dir or as a path of its own
func (c *Config) ResolvePacketPath(nameOrPath string) (string, error) {
	inPath := c.GetPacketInputPath(nameOrPath)
	if _, err := os.Stat(inPath); err == nil {
		return inPath, nil
	}

	if _, err := os.Stat(nameOrPath); err == nil {
		return nameOrPath, nil
	}

	return "", &packet.PathNotFoundError{Path: inPath}
}

// SetDefaultPacket sets the default packet in the config
func SetDefaultPacket(packetName string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultPacket = packetName
	return saveConfig(config)
}
