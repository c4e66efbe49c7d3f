package main

import (
	"errors"
	"reflect"
	"testing"
)

func mustIntent(t *testing.T, c *Catalog, id IntentID) *Intent {
	t.Helper()
	intent, ok := c.Lookup(id)
	if !ok {
		t.Fatalf("intent %s not in catalog", id)
	}
	return intent
}

func TestRenderCommand(t *testing.T) {
	catalog, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	tests := []struct {
		name        string
		id          IntentID
		slots       map[string]string
		target      OSName
		wantArgv    []string
		wantDisplay string
	}{
		{
			name:        "mkdir on linux",
			id:          IntentMakeDirectory,
			slots:       map[string]string{"path": "MyProject"},
			target:      OSLinux,
			wantArgv:    []string{"mkdir", "MyProject"},
			wantDisplay: "mkdir MyProject",
		},
		{
			name:        "mkdir on windows",
			id:          IntentMakeDirectory,
			slots:       map[string]string{"path": "docs"},
			target:      OSWindows,
			wantArgv:    []string{"md", "docs"},
			wantDisplay: "md docs",
		},
		{
			name:        "commit message is quoted for display only",
			id:          IntentGitCommit,
			slots:       map[string]string{"message": "fix bug"},
			target:      OSLinux,
			wantArgv:    []string{"git", "commit", "-m", "fix bug"},
			wantDisplay: `git commit -m "fix bug"`,
		},
		{
			name:        "darwin falls back to linux template",
			id:          IntentDisplayFile,
			slots:       map[string]string{"path": "notes.txt"},
			target:      OSDarwin,
			wantArgv:    []string{"cat", "notes.txt"},
			wantDisplay: "cat notes.txt",
		},
		{
			name:        "darwin override wins when present",
			id:          IntentMemoryUsage,
			slots:       nil,
			target:      OSDarwin,
			wantArgv:    []string{"vm_stat"},
			wantDisplay: "vm_stat",
		},
		{
			name:        "optional slot drops its argv entry",
			id:          IntentChangeDirectory,
			slots:       nil,
			target:      OSLinux,
			wantArgv:    []string{"cd"},
			wantDisplay: "cd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := mustIntent(t, catalog, tt.id)
			got, err := RenderCommand(intent, tt.slots, tt.target)
			if err != nil {
				t.Fatalf("RenderCommand: %v", err)
			}
			if !reflect.DeepEqual(got.Argv, tt.wantArgv) {
				t.Errorf("Argv = %v, want %v", got.Argv, tt.wantArgv)
			}
			if got.Display != tt.wantDisplay {
				t.Errorf("Display = %q, want %q", got.Display, tt.wantDisplay)
			}
		})
	}
}

func TestRenderMissingArgument(t *testing.T) {
	catalog, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	for _, id := range []IntentID{IntentDeleteFile, IntentMakeDirectory, IntentGitCommit, IntentMoveRename} {
		t.Run(string(id), func(t *testing.T) {
			intent := mustIntent(t, catalog, id)
			_, err := RenderCommand(intent, nil, OSLinux)
			var missing *MissingArgumentError
			if !errors.As(err, &missing) {
				t.Fatalf("RenderCommand(%s, empty slots) = %v, want MissingArgumentError", id, err)
			}
		})
	}
}

// Rendering with every required slot filled never reports a missing
// argument, for any intent on any platform.
func TestRenderAllRequiredFilled(t *testing.T) {
	catalog, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	for _, intent := range catalog.Intents() {
		slots := make(map[string]string)
		for _, s := range intent.Slots {
			slots[s.Name] = "value"
		}
		for _, target := range []OSName{OSLinux, OSDarwin, OSWindows} {
			rendered, err := RenderCommand(intent, slots, target)
			if err != nil {
				t.Errorf("RenderCommand(%s, %s) = %v", intent.ID, target, err)
				continue
			}
			for _, arg := range rendered.Argv {
				if placeholderPattern.MatchString(arg) {
					t.Errorf("intent %s on %s left unresolved placeholder in %q", intent.ID, target, arg)
				}
			}
		}
	}
}

// The same inputs must always render the same command.
func TestRenderDeterministic(t *testing.T) {
	catalog, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	intent := mustIntent(t, catalog, IntentMoveRename)
	slots := map[string]string{"source": "a.txt", "destination": "b dir/a.txt"}

	first, err := RenderCommand(intent, slots, OSLinux)
	if err != nil {
		t.Fatalf("RenderCommand: %v", err)
	}
	second, err := RenderCommand(intent, slots, OSLinux)
	if err != nil {
		t.Fatalf("RenderCommand: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated render differs: %+v vs %+v", first, second)
	}
	if second.Display != `mv a.txt "b dir/a.txt"` {
		t.Errorf("Display = %q", second.Display)
	}
}
