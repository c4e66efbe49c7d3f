package main

import (
	"strings"
)

// RenderedCommand is a fully resolved, executable command. Argv carries
// the exact arguments handed to the executor (no shell involved);
// Display is the quoted form shown to the user.
type RenderedCommand struct {
	Argv    []string
	Display string
	OS      OSName
}

// RenderCommand fills the intent's platform template with slot values.
// It fails with MissingArgumentError when a required slot is empty and
// never emits a partially substituted command. Rendering is pure: the
// same (intent, slots, target) always yields the same result.
func RenderCommand(intent *Intent, slots map[string]string, target OSName) (*RenderedCommand, error) {
	tpl, ok := intent.Template(target)
	if !ok {
		return nil, &MissingArgumentError{Intent: intent.ID, Slot: "template for " + string(target)}
	}

	var argv []string
	for _, part := range tpl {
		resolved, used, err := resolvePart(intent, part, slots)
		if err != nil {
			return nil, err
		}
		// An optional slot with no value drops its argv entry entirely
		// ("cd" with no target).
		if used && resolved == "" {
			continue
		}
		argv = append(argv, resolved)
	}

	return &RenderedCommand{
		Argv:    argv,
		Display: displayString(argv),
		OS:      target,
	}, nil
}

// resolvePart substitutes every placeholder in one template token.
// The bool result reports whether the token referenced any slot.
func resolvePart(intent *Intent, part string, slots map[string]string) (string, bool, error) {
	matches := placeholderPattern.FindAllStringSubmatch(part, -1)
	if len(matches) == 0 {
		return part, false, nil
	}
	resolved := part
	for _, m := range matches {
		name := m[1]
		slot, _ := intent.Slot(name)
		value := slots[name]
		if value == "" {
			if slot.Required {
				return "", true, &MissingArgumentError{Intent: intent.ID, Slot: name}
			}
			resolved = strings.ReplaceAll(resolved, m[0], "")
			continue
		}
		resolved = strings.ReplaceAll(resolved, m[0], value)
	}
	return strings.TrimSpace(resolved), true, nil
}

// displayString joins argv for display, quoting arguments that contain
// whitespace or shell metacharacters. This is a readability transform,
// not a security boundary: execution goes through argv, never a shell.
func displayString(argv []string) string {
	parts := make([]string, len(argv))
	for i, a := range argv {
		parts[i] = quoteArg(a)
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" {
		return `""`
	}
	if !strings.ContainsAny(arg, " \t\"'$&|;<>*?()") {
		return arg
	}
	return `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
}
