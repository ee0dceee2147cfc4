package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"shiftrota/internal"
)

var (
	ErrNoBlocks        = errors.New("session has no blocks")
	ErrDuplicatePerson = errors.New("duplicate person")
	ErrUnknownPerson   = errors.New("person not on the session roster")
)

// LoadSession reads and checks a session yaml file.
func LoadSession(path string) (*internal.Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := ParseSession(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func ParseSession(r io.Reader) (*internal.Session, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s internal.Session
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoBlocks
		}
		return nil, err
	}
	normalize(&s)
	if err := check(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// WriteSession encodes s the same way ParseSession expects it.
func WriteSession(w io.Writer, s *internal.Session) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func normalize(s *internal.Session) {
	for i, p := range s.People {
		s.People[i] = strings.TrimSpace(p)
	}
	for bi := range s.Blocks {
		b := &s.Blocks[bi]
		b.Start = strings.TrimSpace(b.Start)
		b.End = strings.TrimSpace(b.End)
		for i, p := range b.People {
			b.People[i] = strings.TrimSpace(p)
		}
	}
}

func check(s *internal.Session) error {
	if len(s.Blocks) == 0 {
		return ErrNoBlocks
	}
	roster := map[string]bool{}
	for _, p := range s.People {
		if p == "" {
			continue
		}
		if roster[p] {
			return fmt.Errorf("people: %w %q", ErrDuplicatePerson, p)
		}
		roster[p] = true
	}
	for i, b := range s.Blocks {
		seen := map[string]bool{}
		for _, p := range b.People {
			if p == "" {
				return fmt.Errorf("block %d: empty person name", i+1)
			}
			if seen[p] {
				return fmt.Errorf("block %d: %w %q", i+1, ErrDuplicatePerson, p)
			}
			seen[p] = true
			// the roster is optional; when present every block draws from it
			if len(roster) > 0 && !roster[p] {
				return fmt.Errorf("block %d: %w: %q", i+1, ErrUnknownPerson, p)
			}
		}
	}
	return nil
}
