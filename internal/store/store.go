// Package store persists the canonical athlete profile as a single JSON
// file. Saves are atomic (temp file + rename); loads degrade to an empty
// profile rather than failing the caller.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/joseantonio2001/Running-Fit-Tech/internal/profile"
)

const (
	DefaultProfileFilename  = "athlete_profile.json"
	DefaultTemplateFilename = "profile_template.json"
)

type Store struct {
	path string
	log  zerolog.Logger
}

// New returns a store bound to path. An empty path means
// DefaultProfileFilename in the working directory.
func New(path string, log zerolog.Logger) *Store {
	if path == "" {
		path = DefaultProfileFilename
	}
	return &Store{path: path, log: log}
}

func (s *Store) Path() string { return s.path }

// Save writes the profile atomically: the document is written to a temp
// file in the target directory and renamed over the destination, so a
// failed save never leaves a partial file behind.
func (s *Store) Save(p *profile.AthleteProfile) error {
	return s.saveTo(p, s.path)
}

func (s *Store) saveTo(p *profile.AthleteProfile, path string) error {
	data, err := profile.EncodeDocument(p.ToDocument())
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".profile-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write profile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace profile file: %w", err)
	}

	s.log.Info().Str("path", path).Msg("profile saved")
	return nil
}

// Load reads the profile from disk. A missing, unreadable or corrupt file
// yields a fresh empty profile, never an error: persistence problems must
// not block the editing flow.
func (s *Store) Load() *profile.AthleteProfile {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Info().Str("path", s.path).Msg("profile file not found, starting empty")
		} else {
			s.log.Error().Err(err).Str("path", s.path).Msg("profile file unreadable, starting empty")
		}
		return profile.NewEmpty()
	}

	doc, err := profile.ParseDocument(data)
	if err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("profile file corrupt, starting empty")
		return profile.NewEmpty()
	}

	s.log.Info().Str("path", s.path).Msg("profile loaded")
	return profile.FromDocument(doc)
}

// Exists reports whether a profile file is present at the store's path.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && !info.IsDir()
}

// Backup writes a timestamped copy of the profile next to the main file.
// It returns the backup path.
func (s *Store) Backup(p *profile.AthleteProfile) (string, error) {
	suffix := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("athlete_profile_backup_%s.json", suffix)
	path := filepath.Join(filepath.Dir(s.path), name)
	if err := s.saveTo(p, path); err != nil {
		return "", err
	}
	return path, nil
}

// Info is lightweight metadata about the persisted profile file, for
// display without a full load.
type Info struct {
	Exists      bool
	Path        string
	SizeBytes   int64
	Modified    time.Time
	AthleteName string
}

// ProbeInfo reads file metadata and, when the file parses, the athlete
// name. Parse failures leave the name empty without failing the probe.
func (s *Store) ProbeInfo() Info {
	stat, err := os.Stat(s.path)
	if err != nil {
		return Info{Path: s.path}
	}
	info := Info{
		Exists:    true,
		Path:      s.path,
		SizeBytes: stat.Size(),
		Modified:  stat.ModTime(),
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return info
	}
	var probe struct {
		Name    string `json:"name"`
		Summary struct {
			Name string `json:"name"`
		} `json:"athlete_summary"`
	}
	if json.Unmarshal(data, &probe) == nil {
		// older files kept the name at top level
		info.AthleteName = probe.Summary.Name
		if info.AthleteName == "" {
			info.AthleteName = probe.Name
		}
	}
	return info
}
