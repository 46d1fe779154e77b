package domains

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// document is the on-disk JSON form of a [DomainList].
type document struct {
	Name    string   `json:"name"`
	Domains []string `json:"domains"`
}

// DefaultDomains are the domains a freshly generated list starts with.
var DefaultDomains = []string{"localhost", "build.cloud.unity3d.com"}

// WriteFile stores list at path as a JSON document, creating parent
// directories as needed.
func WriteFile(path string, list *DomainList) error {
	payload, err := json.MarshalIndent(document{Name: list.name, Domains: list.entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode domain list: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create domain list dir: %w", err)
		}
	}
	if err = os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write domain list: %w", err)
	}
	return nil
}

// ReadFile loads a list written by [WriteFile].
func ReadFile(path string) (*DomainList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read domain list: %w", err)
	}

	var doc document
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidDocument)
	}
	return &DomainList{name: doc.Name, entries: doc.Domains}, nil
}

// WriteText writes domains one per line, the format served as a remote list.
func WriteText(w io.Writer, domains []string) error {
	if len(domains) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(domains, "\n")+"\n")
	return err
}

// Describe writes a human-readable summary of the plaintext domains of a list.
func Describe(w io.Writer, name string, domains []string) error {
	var b strings.Builder
	if len(domains) == 0 {
		fmt.Fprintf(&b, "Domain list %q is empty.\n", name)
	} else {
		fmt.Fprintf(&b, "Domain list %q contains the following domains:\n", name)
		for _, d := range domains {
			b.WriteString("* ")
			b.WriteString(strconv.Quote(d))
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
