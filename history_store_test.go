package main

import (
	"path/filepath"
	"reflect"
	"testing"
)

func newTestHistory(t *testing.T, limit int) *HistoryStore {
	t.Helper()
	store, err := NewHistoryStore(filepath.Join(t.TempDir(), "history.db"), limit)
	if err != nil {
		t.Fatalf("NewHistoryStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestHistoryAppendAndRecent(t *testing.T) {
	store := newTestHistory(t, 100)

	for _, line := range []string{"list files", "mkdir docs", "git status"} {
		if err := store.Append(line); err != nil {
			t.Fatalf("Append(%q): %v", line, err)
		}
	}

	lines, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	want := []string{"list files", "mkdir docs", "git status"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Recent = %v, want %v", lines, want)
	}
}

func TestHistorySkipsBlankAndDuplicate(t *testing.T) {
	store := newTestHistory(t, 100)

	if err := store.Append(""); err != nil {
		t.Fatalf("Append blank: %v", err)
	}
	if err := store.Append("pwd"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := store.Append("pwd"); err != nil {
		t.Fatalf("Append duplicate: %v", err)
	}
	if err := store.Append("ls"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := store.Append("pwd"); err != nil {
		t.Fatalf("Append non-adjacent repeat: %v", err)
	}

	lines, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	want := []string{"pwd", "ls", "pwd"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Recent = %v, want %v", lines, want)
	}
}

func TestHistoryTrimsToLimit(t *testing.T) {
	store := newTestHistory(t, 3)

	for _, line := range []string{"one", "two", "three", "four", "five"} {
		if err := store.Append(line); err != nil {
			t.Fatalf("Append(%q): %v", line, err)
		}
	}

	lines, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	want := []string{"three", "four", "five"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Recent = %v, want %v", lines, want)
	}
}

func TestHistoryAppendAfterClose(t *testing.T) {
	store, err := NewHistoryStore(filepath.Join(t.TempDir(), "history.db"), 10)
	if err != nil {
		t.Fatalf("NewHistoryStore: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := store.Append("ls"); err == nil {
		t.Error("Append on a closed store returned nil, want error")
	}
}

func TestHistoryRecentCap(t *testing.T) {
	store := newTestHistory(t, 100)

	for _, line := range []string{"one", "two", "three"} {
		if err := store.Append(line); err != nil {
			t.Fatalf("Append(%q): %v", line, err)
		}
	}

	lines, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	want := []string{"two", "three"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Recent(2) = %v, want %v", lines, want)
	}
}
