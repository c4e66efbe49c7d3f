package main

import (
	"fmt"
	"regexp"
	"runtime"
)

// OSName identifies a rendering target platform.
type OSName string

const (
	OSLinux   OSName = "linux"
	OSDarwin  OSName = "darwin"
	OSWindows OSName = "windows"
)

// CurrentOS maps runtime.GOOS onto a rendering target. Unknown
// platforms get the linux command set.
func CurrentOS() OSName {
	switch runtime.GOOS {
	case "windows":
		return OSWindows
	case "darwin":
		return OSDarwin
	default:
		return OSLinux
	}
}

// SlotKind is the kind of value an argument slot accepts.
type SlotKind string

const (
	SlotPath SlotKind = "path"
	SlotText SlotKind = "text"
)

// Slot is a named argument position on an intent.
type Slot struct {
	Name     string
	Kind     SlotKind
	Required bool
}

// IntentID uniquely identifies a supported abstract action.
type IntentID string

const (
	IntentListFiles       IntentID = "list_files"
	IntentShowPath        IntentID = "show_path"
	IntentChangeDirectory IntentID = "change_directory"
	IntentMakeDirectory   IntentID = "make_directory"
	IntentCreateFile      IntentID = "create_file"
	IntentDeleteFile      IntentID = "delete_file"
	IntentDeleteDirectory IntentID = "delete_directory"
	IntentDisplayFile     IntentID = "display_file"
	IntentMoveRename      IntentID = "move_rename"
	IntentCopyFile        IntentID = "copy_file"
	IntentWhoAmI          IntentID = "whoami"
	IntentGitStatus       IntentID = "git_status"
	IntentGitInit         IntentID = "git_init"
	IntentGitCommit       IntentID = "git_commit"
	IntentShowProcesses   IntentID = "show_processes"
	IntentDiskUsage       IntentID = "disk_usage"
	IntentMemoryUsage     IntentID = "memory_usage"
)

// Intent describes one supported action: its argument slots, the argv
// template for each platform, and the natural-language phrasings that
// map to it. Intents are immutable after catalog construction apart
// from phrase-pack phrasing additions at startup.
type Intent struct {
	ID          IntentID
	Description string
	Slots       []Slot
	Templates   map[OSName][]string
	Phrasings   []string
}

// Template returns the argv template for the target platform. Darwin
// falls back to the linux command set when no darwin override exists.
func (in *Intent) Template(target OSName) ([]string, bool) {
	if tpl, ok := in.Templates[target]; ok {
		return tpl, true
	}
	if target == OSDarwin {
		if tpl, ok := in.Templates[OSLinux]; ok {
			return tpl, true
		}
	}
	return nil, false
}

// Slot looks up a declared slot by name.
func (in *Intent) Slot(name string) (Slot, bool) {
	for _, s := range in.Slots {
		if s.Name == name {
			return s, true
		}
	}
	return Slot{}, false
}

// RequiredSlots returns the slots that must be filled before rendering.
func (in *Intent) RequiredSlots() []Slot {
	var req []Slot
	for _, s := range in.Slots {
		if s.Required {
			req = append(req, s)
		}
	}
	return req
}

// Catalog is the static table of supported intents. Registration order
// is significant: it is the final tie-breaker during matching.
type Catalog struct {
	intents []*Intent
	index   map[IntentID]*Intent
}

// NewCatalog builds and validates the built-in catalog.
func NewCatalog() (*Catalog, error) {
	c := &Catalog{index: make(map[IntentID]*Intent)}
	for _, in := range builtinIntents() {
		if err := c.register(in); err != nil {
			return nil, err
		}
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) register(in *Intent) error {
	if _, exists := c.index[in.ID]; exists {
		return fmt.Errorf("duplicate intent id %q", in.ID)
	}
	c.intents = append(c.intents, in)
	c.index[in.ID] = in
	return nil
}

// Lookup returns the intent registered under id.
func (c *Catalog) Lookup(id IntentID) (*Intent, bool) {
	in, ok := c.index[id]
	return in, ok
}

// Intents returns all intents in registration order.
func (c *Catalog) Intents() []*Intent {
	return c.intents
}

// AddPhrasings appends extra accepted phrasings to an existing intent.
// Phrase packs may only extend phrasings, never templates or slots.
func (c *Catalog) AddPhrasings(id IntentID, phrasings []string) error {
	in, ok := c.index[id]
	if !ok {
		return fmt.Errorf("unknown intent %q", id)
	}
	in.Phrasings = append(in.Phrasings, phrasings...)
	return nil
}

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// validate checks every template against the intent's declared slots:
// each placeholder must name a declared slot, and every required slot
// must appear in every platform template.
func (c *Catalog) validate() error {
	for _, in := range c.intents {
		if len(in.Phrasings) == 0 {
			return fmt.Errorf("intent %q has no phrasings", in.ID)
		}
		if len(in.Templates) == 0 {
			return fmt.Errorf("intent %q has no templates", in.ID)
		}
		for os, tpl := range in.Templates {
			seen := make(map[string]bool)
			for _, part := range tpl {
				for _, m := range placeholderPattern.FindAllStringSubmatch(part, -1) {
					name := m[1]
					if _, ok := in.Slot(name); !ok {
						return fmt.Errorf("intent %q template for %s references undeclared slot %q", in.ID, os, name)
					}
					seen[name] = true
				}
			}
			for _, s := range in.RequiredSlots() {
				if !seen[s.Name] {
					return fmt.Errorf("intent %q template for %s is missing required slot %q", in.ID, os, s.Name)
				}
			}
		}
	}
	return nil
}

// builtinIntents is the supported command table. The delete_file intent
// is registered ahead of delete_directory so a bare "remove" resolves
// to the file variant when scores tie.
func builtinIntents() []*Intent {
	pathSlot := func(name string) Slot { return Slot{Name: name, Kind: SlotPath, Required: true} }

	return []*Intent{
		{
			ID:          IntentListFiles,
			Description: "List directory contents",
			Templates: map[OSName][]string{
				OSLinux:   {"ls", "-la"},
				OSWindows: {"dir"},
			},
			Phrasings: []string{
				"list files", "show files", "ls", "display files",
				"contents of", "what files are", "list all",
				"show directory contents", "files dikhao", "saari files dikhao",
			},
		},
		{
			ID:          IntentShowPath,
			Description: "Print the current working directory",
			Templates: map[OSName][]string{
				OSLinux:   {"pwd"},
				OSWindows: {"cd"},
			},
			Phrasings: []string{
				"show current directory", "current directory", "where am i",
				"print working directory", "pwd", "what's the path",
				"tell me the current folder", "kahan hoon main",
			},
		},
		{
			ID:          IntentChangeDirectory,
			Description: "Change the current directory",
			Slots:       []Slot{{Name: "path", Kind: SlotPath}},
			Templates: map[OSName][]string{
				OSLinux:   {"cd", "{path}"},
				OSWindows: {"cd", "{path}"},
			},
			Phrasings: []string{
				"change directory", "move to directory", "go to directory",
				"cd", "change dir to", "change directory to", "go into",
				"enter the directory", "change my location to", "move to",
				"go up one level", "go back", "folder badlo",
			},
		},
		{
			ID:          IntentMakeDirectory,
			Description: "Create a new directory",
			Slots:       []Slot{pathSlot("path")},
			Templates: map[OSName][]string{
				OSLinux:   {"mkdir", "{path}"},
				OSWindows: {"md", "{path}"},
			},
			Phrasings: []string{
				"make folder", "create folder", "make directory",
				"create directory", "mkdir", "make dir", "create dir",
				"generate directory", "new folder", "folder banao",
				"nayi folder banao", "directory banao",
			},
		},
		{
			ID:          IntentCreateFile,
			Description: "Create an empty file",
			Slots:       []Slot{pathSlot("path")},
			Templates: map[OSName][]string{
				OSLinux:   {"touch", "{path}"},
				OSWindows: {"cmd", "/c", "copy", "nul", "{path}"},
			},
			Phrasings: []string{
				"create file", "make file", "touch file", "new file",
				"touch", "generate empty file", "file banao",
				"nayi file banao",
			},
		},
		{
			ID:          IntentDeleteFile,
			Description: "Delete a file",
			Slots:       []Slot{pathSlot("path")},
			Templates: map[OSName][]string{
				OSLinux:   {"rm", "{path}"},
				OSWindows: {"del", "{path}"},
			},
			Phrasings: []string{
				"delete file", "remove file", "rm", "remove",
				"get rid of file", "get rid of", "file hatao",
				"file delete karo",
			},
		},
		{
			ID:          IntentDeleteDirectory,
			Description: "Delete a directory and its contents",
			Slots:       []Slot{pathSlot("path")},
			Templates: map[OSName][]string{
				OSLinux:   {"rm", "-r", "{path}"},
				OSWindows: {"rd", "/s", "/q", "{path}"},
			},
			Phrasings: []string{
				"delete folder", "remove folder", "delete directory",
				"remove directory", "delete dir", "remove dir", "rmdir",
				"get rid of folder", "get rid of directory", "folder hatao",
				"folder delete karo",
			},
		},
		{
			ID:          IntentDisplayFile,
			Description: "Print the contents of a file",
			Slots:       []Slot{pathSlot("path")},
			Templates: map[OSName][]string{
				OSLinux:   {"cat", "{path}"},
				OSWindows: {"type", "{path}"},
			},
			Phrasings: []string{
				"display file", "display file content", "show file content",
				"cat file", "view file", "cat", "view", "show me",
				"print file", "file dikhao",
			},
		},
		{
			ID:          IntentMoveRename,
			Description: "Move or rename a file",
			Slots:       []Slot{pathSlot("source"), pathSlot("destination")},
			Templates: map[OSName][]string{
				OSLinux:   {"mv", "{source}", "{destination}"},
				OSWindows: {"move", "{source}", "{destination}"},
			},
			Phrasings: []string{
				"rename file", "move file", "mv", "rename", "move",
				"change name of",
			},
		},
		{
			ID:          IntentCopyFile,
			Description: "Copy a file",
			Slots:       []Slot{pathSlot("source"), pathSlot("destination")},
			Templates: map[OSName][]string{
				OSLinux:   {"cp", "{source}", "{destination}"},
				OSWindows: {"copy", "{source}", "{destination}"},
			},
			Phrasings: []string{
				"copy file", "cp", "duplicate file", "make copy", "copy",
			},
		},
		{
			ID:          IntentWhoAmI,
			Description: "Show the current user",
			Templates: map[OSName][]string{
				OSLinux:   {"whoami"},
				OSWindows: {"whoami"},
			},
			Phrasings: []string{
				"who am i", "whoami", "who is the current user",
			},
		},
		{
			ID:          IntentGitStatus,
			Description: "Show git working tree status",
			Templates: map[OSName][]string{
				OSLinux:   {"git", "status"},
				OSWindows: {"git", "status"},
			},
			Phrasings: []string{
				"git status", "check git status",
			},
		},
		{
			ID:          IntentGitInit,
			Description: "Initialize a git repository",
			Templates: map[OSName][]string{
				OSLinux:   {"git", "init"},
				OSWindows: {"git", "init"},
			},
			Phrasings: []string{
				"initialize git", "git init",
			},
		},
		{
			ID:          IntentGitCommit,
			Description: "Commit staged changes with a message",
			Slots:       []Slot{{Name: "message", Kind: SlotText, Required: true}},
			Templates: map[OSName][]string{
				OSLinux:   {"git", "commit", "-m", "{message}"},
				OSWindows: {"git", "commit", "-m", "{message}"},
			},
			Phrasings: []string{
				"commit changes", "git commit", "commit these changes",
				"commit karo", "changes commit karo",
			},
		},
		{
			ID:          IntentShowProcesses,
			Description: "List running processes",
			Templates: map[OSName][]string{
				OSLinux:   {"ps", "aux"},
				OSWindows: {"tasklist"},
			},
			Phrasings: []string{
				"show processes", "list processes", "ps",
				"list running processes",
			},
		},
		{
			ID:          IntentDiskUsage,
			Description: "Show disk usage",
			Templates: map[OSName][]string{
				OSLinux:   {"df", "-h"},
				OSWindows: {"wmic", "logicaldisk", "get", "size,freespace,caption"},
			},
			Phrasings: []string{
				"disk usage", "show disk space", "df", "how much disk space",
			},
		},
		{
			ID:          IntentMemoryUsage,
			Description: "Show memory usage",
			Templates: map[OSName][]string{
				OSLinux:   {"free", "-m"},
				OSDarwin:  {"vm_stat"},
				OSWindows: {"wmic", "OS", "get", "FreePhysicalMemory,TotalVisibleMemorySize", "/Value"},
			},
			Phrasings: []string{
				"memory usage", "show memory", "free", "check system memory",
				"memory dikhao",
			},
		},
	}
}
