package reader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// AgentCard is one agent discovery file.
type AgentCard struct {
	UUID         string   `json:"uuid"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
}

// AgentScan is the outcome of scanning the discovery directory. Skipped
// lists the card files that could not be read or parsed.
type AgentScan struct {
	Cards   []AgentCard
	Skipped []SkippedFile
}

// SkippedFile records one file a reader ignored and why.
type SkippedFile struct {
	Path   string
	Reason error
}

var (
	errNoUUID = errors.New("card has no uuid")
	errNoName = errors.New("card has no name")
)

// rawCard mirrors AgentCard with pointers so absent required keys are
// distinguishable from empty strings.
type rawCard struct {
	UUID         *string  `json:"uuid"`
	Name         *string  `json:"name"`
	Description  string   `json:"description"`
	Capabilities []string `json:"capabilities"`
}

// ScanAgents reads every *.json card in dir. Files are visited in lexical
// order; malformed cards are skipped without aborting the scan.
func ScanAgents(dir string) Result[AgentScan] {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Absent[AgentScan](fmt.Errorf("read discovery dir %s: %w", dir, err))
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var scan AgentScan
	for _, name := range names {
		path := filepath.Join(dir, name)
		card, err := readCard(path)
		if err != nil {
			scan.Skipped = append(scan.Skipped, SkippedFile{Path: path, Reason: err})
			continue
		}
		scan.Cards = append(scan.Cards, card)
	}
	return Present(scan)
}

func readCard(path string) (AgentCard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AgentCard{}, fmt.Errorf("read card: %w", err)
	}
	var raw rawCard
	if err := json.Unmarshal(data, &raw); err != nil {
		return AgentCard{}, fmt.Errorf("parse card: %w", err)
	}
	switch {
	case raw.UUID == nil || *raw.UUID == "":
		return AgentCard{}, errNoUUID
	case raw.Name == nil:
		return AgentCard{}, errNoName
	}
	return AgentCard{
		UUID:         *raw.UUID,
		Name:         *raw.Name,
		Description:  raw.Description,
		Capabilities: raw.Capabilities,
	}, nil
}
