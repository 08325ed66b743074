package commands

import (
	"fmt"
	"strings"
	"unicode"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeToggle Type = "toggle"
	TypeDone   Type = "done"
	TypeUndone Type = "undone"
	TypeRename Type = "rename"
	TypeDelete Type = "delete"
	TypeClear  Type = "clear"
)

var aliases = map[string]Type{
	"rm":   TypeDelete,
	"del":  TypeDelete,
	"edit": TypeRename,
	"mv":   TypeRename,
}

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Title string
}

// TargetArgs names one task by id, id prefix or 1-based position.
type TargetArgs struct {
	Ref string
}

type RenameArgs struct {
	Ref   string
	Title string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Target *TargetArgs
	Rename *RenameArgs
}

// Parse reads one command line. Titles are taken verbatim from the line
// after the verb (and reference), trimmed at both ends only. A blank title
// is passed through; the handler decides what an empty add or rename means.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	word, rest := splitWord(raw)
	head := strings.ToLower(word)
	typ := Type(head)
	if alias, ok := aliases[head]; ok {
		typ = alias
	}

	switch typ {
	case TypeAdd:
		return Command{Type: TypeAdd, Raw: input, Add: &AddArgs{Title: rest}}, nil
	case TypeToggle, TypeDone, TypeUndone, TypeDelete:
		return parseTarget(input, typ, strings.Fields(rest))
	case TypeRename:
		return parseRename(input, rest)
	case TypeClear:
		return Command{Type: TypeClear, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// splitWord cuts s at its first run of whitespace.
func splitWord(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

func parseTarget(raw string, typ Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires exactly one task reference", typ)}
	}
	return Command{Type: typ, Raw: raw, Target: &TargetArgs{Ref: args[0]}}, nil
}

func parseRename(raw, rest string) (Command, error) {
	ref, title := splitWord(rest)
	if ref == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "rename requires a task reference"}
	}
	return Command{Type: TypeRename, Raw: raw, Rename: &RenameArgs{Ref: ref, Title: title}}, nil
}
