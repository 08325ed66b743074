package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add pay rent tomorrow", TypeAdd},
		{"toggle 2", TypeToggle},
		{"done abc", TypeDone},
		{"undone abc", TypeUndone},
		{"rename 1 new title", TypeRename},
		{"edit 1 new title", TypeRename},
		{"delete 3", TypeDelete},
		{"rm 3", TypeDelete},
		{"/clear", TypeClear},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseArguments(t *testing.T) {
	cmd, err := Parse("/add   pay   rent ")
	if err != nil {
		t.Fatalf("parse add: %v", err)
	}
	if cmd.Add.Title != "pay   rent" {
		t.Fatalf("unexpected add title: %q", cmd.Add.Title)
	}

	cmd, err = Parse("rename ab12 buy oat milk")
	if err != nil {
		t.Fatalf("parse rename: %v", err)
	}
	if cmd.Rename.Ref != "ab12" || cmd.Rename.Title != "buy oat milk" {
		t.Fatalf("unexpected rename args: %+v", cmd.Rename)
	}
}

func TestParseKeepsInteriorSpacing(t *testing.T) {
	cmd, err := Parse("add Buy   oat    milk")
	if err != nil {
		t.Fatalf("parse add: %v", err)
	}
	if cmd.Add.Title != "Buy   oat    milk" {
		t.Fatalf("add title lost spacing: %q", cmd.Add.Title)
	}

	cmd, err = Parse("mv \t2   Walk  the\tdog  ")
	if err != nil {
		t.Fatalf("parse rename: %v", err)
	}
	if cmd.Rename.Ref != "2" || cmd.Rename.Title != "Walk  the\tdog" {
		t.Fatalf("rename args lost spacing: %+v", cmd.Rename)
	}
}

func TestParseBlankTitlesReachHandlers(t *testing.T) {
	cmd, err := Parse("add   ")
	if err != nil {
		t.Fatalf("blank add should parse: %v", err)
	}
	if cmd.Type != TypeAdd || cmd.Add == nil || cmd.Add.Title != "" {
		t.Fatalf("unexpected blank add: %+v", cmd)
	}

	cmd, err = Parse("rename 1")
	if err != nil {
		t.Fatalf("blank rename should parse: %v", err)
	}
	if cmd.Rename == nil || cmd.Rename.Ref != "1" || cmd.Rename.Title != "" {
		t.Fatalf("unexpected blank rename: %+v", cmd.Rename)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]ErrorCode{
		"":           ErrCodeEmptyInput,
		"/":          ErrCodeEmptyInput,
		"/unknown x": ErrCodeUnknownCommand,
		"done":       ErrCodeInvalidArgument,
		"delete 1 2": ErrCodeInvalidArgument,
		"rename":     ErrCodeInvalidArgument,
	}
	for in, want := range cases {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != want {
			t.Fatalf("parse %q: expected %s, got %v", in, want, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Title != "write docs" {
				t.Fatalf("unexpected title: %q", a.Title)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteTargetDispatch(t *testing.T) {
	var got []string
	record := func(name string) func(TargetArgs) (Result, error) {
		return func(a TargetArgs) (Result, error) {
			got = append(got, name+":"+a.Ref)
			return Result{}, nil
		}
	}
	handlers := Handlers{
		Toggle: record("toggle"),
		Done:   record("done"),
		Undone: record("undone"),
		Delete: record("delete"),
		Clear:  func() (Result, error) { got = append(got, "clear"); return Result{}, nil },
	}
	for _, in := range []string{"toggle 1", "done 2", "undone 3", "rm 4", "clear"} {
		cmd, err := Parse(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if _, err := Execute(cmd, handlers); err != nil {
			t.Fatalf("execute %q: %v", in, err)
		}
	}
	want := []string{"toggle:1", "done:2", "undone:3", "delete:4", "clear"}
	if len(got) != len(want) {
		t.Fatalf("unexpected dispatch: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dispatch[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("delete 1")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}

func TestExecuteRejectsMissingArguments(t *testing.T) {
	handlers := Handlers{
		Add:    func(AddArgs) (Result, error) { return Result{}, nil },
		Rename: func(RenameArgs) (Result, error) { return Result{}, nil },
		Toggle: func(TargetArgs) (Result, error) { return Result{}, nil },
	}
	for _, typ := range []Type{TypeAdd, TypeRename, TypeToggle} {
		_, err := Execute(Command{Type: typ}, handlers)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("%s without arguments: expected invalid_argument, got %v", typ, err)
		}
	}
}
