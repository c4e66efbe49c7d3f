package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// PhrasePack is a YAML file that adds accepted phrasings to existing
// catalog intents, typically for another language or dialect. Packs
// never define new intents or templates.
//
//	name: hinglish-extra
//	locale: hi-en
//	phrases:
//	  make_directory:
//	    - naya folder banao
type PhrasePack struct {
	Name    string              `yaml:"name"`
	Locale  string              `yaml:"locale"`
	Phrases map[string][]string `yaml:"phrases"`
}

// LoadPhrasePack parses a single pack file.
func LoadPhrasePack(path string) (*PhrasePack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pack PhrasePack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("invalid phrase pack %s: %v", path, err)
	}
	if pack.Name == "" {
		pack.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if len(pack.Phrases) == 0 {
		return nil, fmt.Errorf("phrase pack %s contains no phrases", path)
	}
	return &pack, nil
}

// LoadPhrasePackDir loads every .yaml/.yml pack in dir, skipping files
// that fail to parse. A missing directory is not an error.
func LoadPhrasePackDir(dir string) ([]*PhrasePack, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var packs []*PhrasePack
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		pack, err := LoadPhrasePack(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		packs = append(packs, pack)
	}
	return packs, nil
}

// ApplyPhrasePack merges a pack's phrasings into the catalog. Unknown
// intent IDs are reported so pack authors notice typos.
func (c *Catalog) ApplyPhrasePack(pack *PhrasePack) error {
	for id, phrasings := range pack.Phrases {
		if err := c.AddPhrasings(IntentID(id), phrasings); err != nil {
			return fmt.Errorf("phrase pack %s: %v", pack.Name, err)
		}
	}
	return nil
}
