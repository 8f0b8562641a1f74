package service

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chicogong/ffmpeg-lint/pkg/kb"
)

// kbOverrideFile is the on-disk shape of a knowledge-base override file:
// additional codecs, containers, and extensions layered onto the default
// catalogs (filters cannot be overridden from the file), the way Koodeyo-Media-shaka-streamer-go loads its
// YAML-configured pipeline tables.
type kbOverrideFile struct {
	Codecs []struct {
		Name       string   `yaml:"name"`
		Aliases    []string `yaml:"aliases"`
		Kind       string   `yaml:"kind"`
		Containers []string `yaml:"containers"`
	} `yaml:"codecs"`

	Containers []struct {
		Name       string   `yaml:"name"`
		Extensions []string `yaml:"extensions"`
		Codecs     []string `yaml:"codecs"`
	} `yaml:"containers"`

	Extensions map[string][]string `yaml:"extensions"`
}

// LoadKnowledgeBaseFile reads a YAML override file and registers its
// entries onto reg. Entries with an unrecognized "kind" are rejected with
// an error rather than silently skipped, since a typo there would silently
// admit codecs into the wrong validation branch.
func LoadKnowledgeBaseFile(reg *kb.Registry, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading knowledge-base file %q: %w", path, err)
	}

	var file kbOverrideFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parsing knowledge-base file %q: %w", path, err)
	}

	for _, c := range file.Codecs {
		kind, err := parseStreamKind(c.Kind)
		if err != nil {
			return fmt.Errorf("codec %q: %w", c.Name, err)
		}
		reg.RegisterCodec(kb.Codec{
			Name:       c.Name,
			Aliases:    c.Aliases,
			Kind:       kind,
			Containers: toSet(c.Containers),
		})
	}

	for _, c := range file.Containers {
		reg.RegisterContainer(kb.Container{
			Name:       c.Name,
			Extensions: c.Extensions,
			Codecs:     toSet(c.Codecs),
		})
	}

	for ext, kinds := range file.Extensions {
		parsed := make([]kb.StreamKind, 0, len(kinds))
		for _, k := range kinds {
			kind, err := parseStreamKind(k)
			if err != nil {
				return fmt.Errorf("extension %q: %w", ext, err)
			}
			parsed = append(parsed, kind)
		}
		reg.RegisterExtension(ext, parsed)
	}

	return nil
}

func parseStreamKind(s string) (kb.StreamKind, error) {
	switch kb.StreamKind(s) {
	case kb.Video, kb.Audio, kb.Subtitle:
		return kb.StreamKind(s), nil
	default:
		return "", fmt.Errorf("unrecognized stream kind %q", s)
	}
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
