package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// DispatchState is the dispatch loop's current state.
type DispatchState int

const (
	StateAwaitingInput DispatchState = iota
	StateResolving
	StateExiting
)

// exitPhrases end the session.
var exitPhrases = map[string]bool{"exit": true, "quit": true}

// passthroughIntents maps literal command prefixes to their intents.
// Input starting with one of these skips fuzzy matching entirely.
// Two-word prefixes (git subcommands) are checked before single words.
var passthroughIntents = []struct {
	prefix string
	id     IntentID
}{
	{"git status", IntentGitStatus},
	{"git init", IntentGitInit},
	{"git commit", IntentGitCommit},
	{"cd", IntentChangeDirectory},
	{"ls", IntentListFiles},
	{"pwd", IntentShowPath},
	{"mkdir", IntentMakeDirectory},
	{"rmdir", IntentDeleteDirectory},
	{"rm", IntentDeleteFile},
	{"mv", IntentMoveRename},
	{"cp", IntentCopyFile},
	{"cat", IntentDisplayFile},
	{"touch", IntentCreateFile},
	{"whoami", IntentWhoAmI},
	{"df", IntentDiskUsage},
	{"free", IntentMemoryUsage},
	{"ps", IntentShowProcesses},
}

// Dispatcher drives one input line through extraction, matching and
// rendering, and hands rendered commands to the executor. Every
// resolution failure is recovered here; only exit phrases change the
// returned state to Exiting.
type Dispatcher struct {
	catalog   *Catalog
	extractor *EntityExtractor
	matcher   *IntentMatcher
	executor  Executor
	target    OSName
	out       io.Writer

	// confirm asks the user a yes/no question; the CLI wires it to the
	// readline prompt. Nil disables suggestion confirmation.
	confirm func(prompt string) bool

	passthroughEnabled bool
	state              DispatchState
}

// NewDispatcher assembles the dispatch loop around its collaborators.
func NewDispatcher(catalog *Catalog, extractor *EntityExtractor, matcher *IntentMatcher, executor Executor, target OSName, out io.Writer) *Dispatcher {
	return &Dispatcher{
		catalog:            catalog,
		extractor:          extractor,
		matcher:            matcher,
		executor:           executor,
		target:             target,
		out:                out,
		passthroughEnabled: true,
		state:              StateAwaitingInput,
	}
}

// SetConfirm installs the yes/no prompt used for suggestions.
func (d *Dispatcher) SetConfirm(confirm func(prompt string) bool) {
	d.confirm = confirm
}

// SetPassthrough toggles the literal-command fast path.
func (d *Dispatcher) SetPassthrough(enabled bool) {
	d.passthroughEnabled = enabled
}

// State returns the loop's current state.
func (d *Dispatcher) State() DispatchState {
	return d.state
}

// Dispatch processes one line of input and returns the resulting state.
func (d *Dispatcher) Dispatch(input string) DispatchState {
	input = strings.TrimSpace(input)
	if input == "" {
		d.state = StateAwaitingInput
		return d.state
	}
	if exitPhrases[strings.ToLower(input)] {
		d.state = StateExiting
		return d.state
	}
	if strings.EqualFold(input, "help") {
		printHelp(d.out, d.catalog)
		d.state = StateAwaitingInput
		return d.state
	}

	d.state = StateResolving
	if err := d.resolve(input); err != nil {
		d.recover(err)
	}
	d.state = StateAwaitingInput
	return d.state
}

// resolve runs one input through passthrough, extraction and matching.
// Resolution failures come back as typed errors for recover to handle.
func (d *Dispatcher) resolve(input string) error {
	if d.passthroughEnabled {
		if intent, slots, ok := d.matchPassthrough(input); ok {
			d.execute(intent, slots)
			return nil
		}
	}

	utt := d.extractor.Parse(input)
	result := d.matcher.Match(utt)

	switch {
	case result.Intent != nil:
		d.execute(result.Intent, result.Slots)
		return nil

	case len(result.Suggestions) > 0:
		return &AmbiguousInputError{Input: input, Suggestions: result.Suggestions}

	default:
		return &UnrecognizedInputError{Input: input}
	}
}

// recover turns a resolution error into user-facing behavior. The loop
// itself never terminates on these.
func (d *Dispatcher) recover(err error) {
	var ambiguous *AmbiguousInputError
	if errors.As(err, &ambiguous) {
		d.offerSuggestions(d.extractor.Parse(ambiguous.Input), ambiguous.Suggestions)
		return
	}
	var unrecognized *UnrecognizedInputError
	if errors.As(err, &unrecognized) {
		fmt.Fprintf(d.out, "❓ Command not recognized. Type 'help' to see what I understand.\n")
		return
	}
	fmt.Fprintf(d.out, "❌ %v\n", err)
}

// matchPassthrough recognizes input that already is a literal command.
// Remaining words fill the intent's slots positionally; a git commit
// message is recovered from the raw input.
func (d *Dispatcher) matchPassthrough(input string) (*Intent, map[string]string, bool) {
	lower := strings.ToLower(input)
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, nil, false
	}

	for _, entry := range passthroughIntents {
		if lower != entry.prefix && !strings.HasPrefix(lower, entry.prefix+" ") {
			continue
		}
		intent, ok := d.catalog.Lookup(entry.id)
		if !ok {
			return nil, nil, false
		}

		rest := strings.Fields(strings.TrimSpace(input[len(entry.prefix):]))
		slots := make(map[string]string)
		if len(intent.Slots) == 0 && len(rest) > 0 {
			fmt.Fprintf(d.out, "Note: '%s' doesn't take arguments, ignoring: %s\n", entry.prefix, strings.Join(rest, " "))
		}
		if intent.ID == IntentGitCommit {
			if msg, ok := CommitMessage(input, entry.prefix, Entities{}); ok {
				slots["message"] = msg
			}
			return intent, slots, true
		}
		for i, slot := range intent.Slots {
			if i < len(rest) {
				slots[slot.Name] = rest[i]
			}
		}
		if intent.ID == IntentChangeDirectory && strings.EqualFold(slots["path"], "home") {
			slots["path"] = "~"
		}
		return intent, slots, true
	}
	return nil, nil, false
}

// offerSuggestions prints the ranked candidates and, when confirmation
// is wired up, runs the top one on a yes.
func (d *Dispatcher) offerSuggestions(utt *ParsedUtterance, suggestions []Suggestion) {
	if len(suggestions) == 1 {
		fmt.Fprintf(d.out, "Did you mean '%s'?\n", suggestions[0].Phrase)
	} else {
		fmt.Fprintln(d.out, "Did you mean one of these?")
		for i, s := range suggestions {
			fmt.Fprintf(d.out, "  %d. %s (%s)\n", i+1, s.Phrase, s.Intent.Description)
		}
	}

	if d.confirm == nil {
		return
	}
	top := suggestions[0]
	if !d.confirm(fmt.Sprintf("Run '%s'? (y/n): ", top.Phrase)) {
		fmt.Fprintln(d.out, "Okay, command cancelled.")
		return
	}
	slots := d.matcher.ResolveAs(top.Intent, top.Phrase, utt)
	d.execute(top.Intent, slots)
}

// execute renders the command for the target platform and hands it to
// the executor. cd is handled in-process since a child cannot change
// this process's directory.
func (d *Dispatcher) execute(intent *Intent, slots map[string]string) {
	if intent.ID == IntentChangeDirectory {
		if err := changeDirectory(slots["path"]); err != nil {
			fmt.Fprintf(d.out, "❌ %v\n", err)
		}
		return
	}

	rendered, err := RenderCommand(intent, slots, d.target)
	if err != nil {
		if missing, ok := err.(*MissingArgumentError); ok {
			fmt.Fprintf(d.out, "❗ Please specify the %s for %s.\n", missing.Slot, missing.Intent)
		} else {
			fmt.Fprintf(d.out, "❌ %v\n", err)
		}
		return
	}

	fmt.Fprintf(d.out, "🛠  Executing: %s\n", rendered.Display)
	result, err := d.executor.Run(rendered.Argv, "")
	if err != nil {
		fmt.Fprintf(d.out, "❌ %v\n", err)
		return
	}
	d.report(result)
}

func (d *Dispatcher) report(result ExecResult) {
	if out := strings.TrimRight(result.Stdout, "\n"); out != "" {
		fmt.Fprintln(d.out, out)
	}
	if errOut := strings.TrimRight(result.Stderr, "\n"); errOut != "" {
		fmt.Fprintln(d.out, errOut)
	}
	if result.ExitCode != 0 {
		failure := &ExecutionFailureError{ExitCode: result.ExitCode}
		fmt.Fprintf(d.out, "⚠️  %v\n", failure)
	}
}
