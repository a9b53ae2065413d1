package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"okada/internal/workflow"

	"gopkg.in/yaml.v3"
)

// Profile holds the connection settings of okadactl.
//
//	server: https://admin.okada.cm
//	token: eyJhbGciOi...
//	timeout: 10s
type Profile struct {
	Server  string        `yaml:"server"`
	Token   string        `yaml:"token"`
	Timeout time.Duration `yaml:"timeout"`
}

func defaultProfile() Profile {
	return Profile{Server: "http://localhost:8080", Timeout: workflow.DefaultTimeout}
}

// DefaultProfilePath is $XDG_CONFIG_HOME/okadactl/profile.yaml or its
// platform equivalent.
func DefaultProfilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "okadactl", "profile.yaml")
}

// LoadProfile reads path over the defaults. A missing file is only an error
// when required is set.
func LoadProfile(path string, required bool) (Profile, error) {
	p := defaultProfile()
	if path == "" {
		return p, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return p, nil
		}
		return Profile{}, fmt.Errorf("reading profile: %w", err)
	}

	if err = yaml.Unmarshal(raw, &p); err != nil {
		return Profile{}, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	if p.Timeout <= 0 {
		p.Timeout = workflow.DefaultTimeout
	}
	return p, nil
}
