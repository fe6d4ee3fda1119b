package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/flashpack/internal/packet"
)

// FileName is the manifest file looked up at the root of a packet directory
const FileName = "packet.toml"

var ErrNoManifest = errors.New("manifest: packet.toml not found")

// Manifest describes a packet directory. All fields are optional.
type Manifest struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Author      string   `toml:"author"`
	Tags        []string `toml:"tags"`

	// Overrides of the global config for this packet
	CardExt       string `toml:"card_ext"`
	FormatVersion uint16 `toml:"format_version"`

	Path string `toml:"-"`
}

// Load reads packet.toml from a packet directory
func Load(packetPath string) (*Manifest, error) {
	manifestPath := filepath.Join(packetPath, FileName)
	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w in %s", ErrNoManifest, packetPath)
	}

	var m Manifest
	if _, err := toml.DecodeFile(manifestPath, &m); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", manifestPath, err)
	}
	m.Path = packetPath

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", manifestPath, err)
	}
	return &m, nil
}

// LoadOptional is Load, treating a missing manifest as an empty one
func LoadOptional(packetPath string) (*Manifest, error) {
	m, err := Load(packetPath)
	if errors.Is(err, ErrNoManifest) {
		return &Manifest{Path: packetPath}, nil
	}
	return m, err
}

func (m *Manifest) Validate() error {
	if m.CardExt != "" && !strings.HasPrefix(m.CardExt, ".") {
		return fmt.Errorf("card_ext must start with '.': %q", m.CardExt)
	}
	return nil
}

// Apply returns opts with the manifest's overrides applied
func (m *Manifest) Apply(opts packet.Options) packet.Options {
	if m.CardExt != "" {
		opts.CardExtension = m.CardExt
	}
	if m.FormatVersion != 0 {
		opts.FormatVersion = m.FormatVersion
	}
	return opts
}

// DisplayName returns the manifest name, or the directory name when unset
func (m *Manifest) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return filepath.Base(m.Path)
}
