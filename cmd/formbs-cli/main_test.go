package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-formbs/pkg/prompt"
)

var signupSource = filepath.Join("..", "..", "testdata", "signup.yaml")

func execute(t *testing.T, c *cli, args ...string) (string, error) {
	t.Helper()

	cmd := c.command()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestOperationsCommand(t *testing.T) {
	out, err := execute(t, &cli{}, "operations", "--source", signupSource)
	if err != nil {
		t.Fatalf("operations: %v", err)
	}
	want := "createUser\tPOST\t/users\tCreate account\n" +
		"get:/users/{id}\tGET\t/users/{id}\tShow account\n" +
		"updateUser\tPATCH\t/users/{id}\tUpdate account\n"
	if out != want {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRenderCommand(t *testing.T) {
	out, err := execute(t, &cli{}, "--source", signupSource, "--operation", "createUser", "--inline")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, fragment := range []string{
		`<form method="post" action="/users" name="createUser" class="form-inline" novalidate>`,
		`value="Sign up"`,
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("expected fragment %q in:\n%s", fragment, out)
		}
	}

	target := filepath.Join(t.TempDir(), "form.html")
	out, err = execute(t, &cli{}, "-s", signupSource, "-o", "updateUser", "--output", target)
	if err != nil {
		t.Fatalf("render to file: %v", err)
	}
	if !strings.Contains(out, "Form written to") {
		t.Fatalf("unexpected output %q", out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `value="PATCH"`) {
		t.Fatalf("expected method spoofing in:\n%s", data)
	}
}

func TestRenderCommand_Errors(t *testing.T) {
	if _, err := execute(t, &cli{}, "--operation", "createUser"); err == nil || !strings.Contains(err.Error(), "--source") {
		t.Fatalf("expected missing source error, got %v", err)
	}
	if _, err := execute(t, &cli{}, "--source", signupSource); err == nil || !strings.Contains(err.Error(), "--operation") {
		t.Fatalf("expected missing operation error, got %v", err)
	}
	if _, err := execute(t, &cli{}, "--source", signupSource, "--renderer", "vanilla", "-o", "createUser"); err == nil {
		t.Fatal("expected unknown renderer error")
	}
}

func TestRenderCommand_Interactive(t *testing.T) {
	driver := &scriptedDriver{
		inputs:    []string{"grace@example.com", "", "", "42"},
		passwords: []string{"pw"},
		selects:   []int{0, 0},
		multi:     [][]int{{1}},
		confirms:  []bool{false},
	}
	out, err := execute(t, &cli{driver: driver}, "--source", signupSource, "--interactive")
	if err != nil {
		t.Fatalf("interactive render: %v", err)
	}
	for _, fragment := range []string{
		`name="createUser"`,
		`value="grace@example.com"`,
		`value="42"`,
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("expected fragment %q in:\n%s", fragment, out)
		}
	}
}

func TestLintCommand(t *testing.T) {
	if _, err := execute(t, &cli{}, "lint", "--source", signupSource); err != nil {
		t.Fatalf("expected clean lint, got %v", err)
	}

	out, err := execute(t, &cli{}, "lint", "--source", filepath.Join("testdata", "lint.yaml"))
	if err == nil {
		t.Fatal("expected lint failure")
	}
	for _, fragment := range []string{
		`operation > createNote -> unsupported extension "x-formbs-widget" here`,
		`operation > createNote > requestBody -> x-formbs-order names unknown property "body"`,
		`operation > createNote > requestBody > properties.title -> unknown widget "slider"`,
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("expected %q in:\n%s", fragment, out)
		}
	}
}

type scriptedDriver struct {
	inputs    []string
	passwords []string
	confirms  []bool
	selects   []int
	multi     [][]int
}

func (s *scriptedDriver) Ask(_ context.Context, q prompt.Question) (prompt.Answer, error) {
	switch q.Style {
	case prompt.StyleLine:
		text, err := pop(&s.inputs, "input")
		return prompt.Answer{Text: text}, err
	case prompt.StyleSecret:
		text, err := pop(&s.passwords, "password")
		return prompt.Answer{Text: text}, err
	case prompt.StyleToggle:
		checked, err := pop(&s.confirms, "confirm")
		return prompt.Answer{Checked: checked}, err
	case prompt.StyleChoice:
		idx, err := pop(&s.selects, "select")
		if err != nil || idx < 0 || idx >= len(q.Choices) {
			return prompt.Answer{}, err
		}
		return prompt.Answer{Text: q.Choices[idx].Value}, nil
	case prompt.StyleChoices:
		indices, err := pop(&s.multi, "multiselect")
		var values []string
		for _, idx := range indices {
			values = append(values, q.Choices[idx].Value)
		}
		return prompt.Answer{Values: values}, err
	default:
		return prompt.Answer{}, errors.New("no textarea scripted")
	}
}

func pop[T any](queue *[]T, kind string) (T, error) {
	var zero T
	if len(*queue) == 0 {
		return zero, errors.New("no " + kind + " scripted")
	}
	val := (*queue)[0]
	*queue = (*queue)[1:]
	return val, nil
}
