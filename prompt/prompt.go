// Package prompt provides the evaluation prompt presets offered in the
// prompt-evaluation dialog.
package prompt

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// embeddedPresets holds the default prompts shipped with the console.
//
//go:embed prompts/*.txt
var embeddedPresets embed.FS

// ErrUnknownTopic indicates no preset exists for the requested topic.
var ErrUnknownTopic = errors.New("unknown evaluation topic")

// Preset is one selectable evaluation prompt.
type Preset struct {
	// Topic is the preset key, e.g. "closing".
	Topic string

	// Label is the display name derived from the topic.
	Label string

	// Text is the default prompt text; the reviewer may edit it before
	// submitting.
	Text string
}

// Catalog loads presets by topic. Directories are searched in order before
// the embedded defaults, so deployments can override or add presets.
type Catalog struct {
	dirs   []string
	titler cases.Caser
}

// NewCatalog creates a preset catalog with optional override directories.
func NewCatalog(dirs ...string) *Catalog {
	return &Catalog{
		dirs:   dirs,
		titler: cases.Title(language.English),
	}
}

// Load returns the preset for a topic.
func (c *Catalog) Load(topic string) (Preset, error) {
	text, err := c.loadText(topic)
	if err != nil {
		return Preset{}, err
	}

	return Preset{
		Topic: topic,
		Label: c.titler.String(strings.ReplaceAll(topic, "-", " ")),
		Text:  strings.TrimRight(text, "\n"),
	}, nil
}

// Topics returns all available topics, sorted.
func (c *Catalog) Topics() []string {
	seen := make(map[string]bool)

	for _, dir := range c.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if name, ok := strings.CutSuffix(entry.Name(), ".txt"); ok {
				seen[name] = true
			}
		}
	}

	entries, err := embeddedPresets.ReadDir("prompts")
	if err == nil {
		for _, entry := range entries {
			if name, ok := strings.CutSuffix(entry.Name(), ".txt"); ok {
				seen[name] = true
			}
		}
	}

	topics := make([]string, 0, len(seen))
	for topic := range seen {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

func (c *Catalog) loadText(topic string) (string, error) {
	filename := topic + ".txt"

	for _, dir := range c.dirs {
		data, err := os.ReadFile(filepath.Join(dir, filename))
		if err == nil {
			return string(data), nil
		}
	}

	data, err := embeddedPresets.ReadFile("prompts/" + filename)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
	}

	return string(data), nil
}
