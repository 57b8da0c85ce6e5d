// Package deck loads the fixed item collection shown by the carousel.
package deck

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MinItems mirrors the carousel's lower bound.
const MinItems = 3

// ErrInvalidDeck wraps every parse and validation failure.
var ErrInvalidDeck = errors.New("invalid deck")

// Item is one card on the ring.
type Item struct {
	ID     string
	Label  string
	Accent color.RGBA
}

// Deck is an ordered, immutable item collection plus the item focused at
// startup.
type Deck struct {
	Title string
	Focus int
	Items []Item
}

// IDs returns the item ids in order.
func (d *Deck) IDs() []string {
	ids := make([]string, len(d.Items))
	for i, it := range d.Items {
		ids[i] = it.ID
	}
	return ids
}

// Default returns the built-in five-colour deck focused on its middle item.
func Default() *Deck {
	accents := []string{"#ff6b6b", "#4ecdc4", "#45b7d1", "#f9ca24", "#6c5ce7"}
	d := &Deck{Title: "Sliding scale", Focus: 2}
	for i, hex := range accents {
		c, _ := ParseHex(hex)
		d.Items = append(d.Items, Item{
			ID:     strconv.Itoa(i),
			Label:  strconv.Itoa(i + 1),
			Accent: c,
		})
	}
	return d
}

type fileItem struct {
	ID     string `yaml:"id"`
	Label  string `yaml:"label"`
	Accent string `yaml:"accent"`
}

type file struct {
	Title string     `yaml:"title"`
	Focus *int       `yaml:"focus"`
	Items []fileItem `yaml:"items"`
}

// Load reads a YAML deck from path.
func Load(path string) (*Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse decodes and validates a YAML deck. Missing labels default to the
// 1-based position, a missing focus to the middle item.
func Parse(r io.Reader) (*Deck, error) {
	var raw file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDeck)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDeck, err)
	}

	if len(raw.Items) < MinItems {
		return nil, fmt.Errorf("%w: %d items, need at least %d", ErrInvalidDeck, len(raw.Items), MinItems)
	}

	d := &Deck{Title: raw.Title, Focus: len(raw.Items) / 2}
	if raw.Focus != nil {
		d.Focus = *raw.Focus
	}
	if d.Focus < 0 || d.Focus >= len(raw.Items) {
		return nil, fmt.Errorf("%w: focus %d out of range", ErrInvalidDeck, d.Focus)
	}

	seen := make(map[string]bool, len(raw.Items))
	for i, fi := range raw.Items {
		id := strings.TrimSpace(fi.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: item %d has no id", ErrInvalidDeck, i+1)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidDeck, id)
		}
		seen[id] = true

		accent, err := ParseHex(fi.Accent)
		if err != nil {
			return nil, fmt.Errorf("%w: item %q: %v", ErrInvalidDeck, id, err)
		}
		label := fi.Label
		if label == "" {
			label = strconv.Itoa(i + 1)
		}
		d.Items = append(d.Items, Item{ID: id, Label: label, Accent: accent})
	}
	return d, nil
}

// ParseHex parses #rgb or #rrggbb into an opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("bad colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
