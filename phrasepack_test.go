package main

import (
	"os"
	"path/filepath"
	"testing"
)

const samplePack = `name: hinglish-extra
locale: hi-en
phrases:
  make_directory:
    - naya folder banao
  delete_file:
    - file mitao
`

func TestLoadPhrasePack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hinglish-extra.yaml")
	if err := os.WriteFile(path, []byte(samplePack), 0644); err != nil {
		t.Fatalf("write pack: %v", err)
	}

	pack, err := LoadPhrasePack(path)
	if err != nil {
		t.Fatalf("LoadPhrasePack: %v", err)
	}
	if pack.Name != "hinglish-extra" {
		t.Errorf("Name = %q, want hinglish-extra", pack.Name)
	}
	if pack.Locale != "hi-en" {
		t.Errorf("Locale = %q, want hi-en", pack.Locale)
	}
	if got := pack.Phrases["make_directory"]; len(got) != 1 || got[0] != "naya folder banao" {
		t.Errorf("Phrases[make_directory] = %v", got)
	}
}

func TestLoadPhrasePackNameFallsBackToFilename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unnamed.yml")
	blob := "phrases:\n  list_files:\n    - dikha de\n"
	if err := os.WriteFile(path, []byte(blob), 0644); err != nil {
		t.Fatalf("write pack: %v", err)
	}

	pack, err := LoadPhrasePack(path)
	if err != nil {
		t.Fatalf("LoadPhrasePack: %v", err)
	}
	if pack.Name != "unnamed" {
		t.Errorf("Name = %q, want unnamed", pack.Name)
	}
}

func TestLoadPhrasePackRejectsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(path, []byte("name: empty\n"), 0644); err != nil {
		t.Fatalf("write pack: %v", err)
	}
	if _, err := LoadPhrasePack(path); err == nil {
		t.Error("LoadPhrasePack accepted a pack with no phrases")
	}
}

func TestLoadPhrasePackDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "good.yaml"), []byte(samplePack), 0644); err != nil {
		t.Fatalf("write pack: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(":\nnot yaml ["), 0644); err != nil {
		t.Fatalf("write pack: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	packs, err := LoadPhrasePackDir(dir)
	if err != nil {
		t.Fatalf("LoadPhrasePackDir: %v", err)
	}
	if len(packs) != 1 {
		t.Fatalf("loaded %d packs, want 1", len(packs))
	}
	if packs[0].Name != "hinglish-extra" {
		t.Errorf("pack name = %q", packs[0].Name)
	}
}

func TestLoadPhrasePackDirMissing(t *testing.T) {
	packs, err := LoadPhrasePackDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("LoadPhrasePackDir on missing dir: %v", err)
	}
	if packs != nil {
		t.Errorf("packs = %v, want nil", packs)
	}
}

func TestApplyPhrasePack(t *testing.T) {
	catalog, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	pack := &PhrasePack{
		Name:    "extra",
		Phrases: map[string][]string{"make_directory": {"naya folder banao"}},
	}
	if err := catalog.ApplyPhrasePack(pack); err != nil {
		t.Fatalf("ApplyPhrasePack: %v", err)
	}
	in := mustIntent(t, catalog, IntentMakeDirectory)
	found := false
	for _, p := range in.Phrasings {
		if p == "naya folder banao" {
			found = true
		}
	}
	if !found {
		t.Error("pack phrasing not merged into intent")
	}

	bad := &PhrasePack{
		Name:    "typo",
		Phrases: map[string][]string{"make_directoryy": {"x"}},
	}
	if err := catalog.ApplyPhrasePack(bad); err == nil {
		t.Error("ApplyPhrasePack accepted an unknown intent id")
	}
}
