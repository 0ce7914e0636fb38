package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "AMDL_CLIENT_CONFIG"

// File is the optional YAML file that seeds preferences at startup.
// Zero values leave the stored preference untouched.
type File struct {
	ServerURL   string `yaml:"server_url"`
	Codec       string `yaml:"codec"`
	MaxParallel int    `yaml:"max_parallel"`
	Language    string `yaml:"language"`
	ExportDir   string `yaml:"export_directory"`
	ShowTips    *bool  `yaml:"show_tips"`
}

// ResolvePath returns flagPath when set, otherwise the environment value
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvConfigPath)
}

// LoadFile reads a config file. A missing file is not an error and yields nil.
func LoadFile(path string) (*File, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	var cfg File
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Apply copies the non-zero file values into the preferences
func (s *Settings) Apply(cfg *File) {
	if cfg == nil {
		return
	}
	if cfg.ServerURL != "" {
		s.SetServerURL(cfg.ServerURL)
	}
	if cfg.Codec != "" {
		c := Codec(cfg.Codec)
		if !c.valid() {
			log.Printf("Ignoring unknown codec %q in config file", cfg.Codec)
		} else {
			s.SetCodec(c)
		}
	}
	if cfg.MaxParallel != 0 {
		s.SetMaxParallelDownloads(cfg.MaxParallel)
	}
	if cfg.Language != "" {
		s.SetLanguage(cfg.Language)
	}
	if cfg.ExportDir != "" {
		s.SetExportDirectory(cfg.ExportDir)
	}
	if cfg.ShowTips != nil {
		s.SetShowTips(*cfg.ShowTips)
	}
}
