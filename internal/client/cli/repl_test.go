package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeExec records which commands the REPL dispatched.
type fakeExec struct {
	loggedIn bool
	calls    []string
	errOn    string
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	if f.errOn != "" && strings.HasPrefix(call, f.errOn) {
		return errors.New("boom")
	}
	return nil
}

func (f *fakeExec) isLoggedIn(_ context.Context) bool { return f.loggedIn }
func (f *fakeExec) Register(_ context.Context) error  { return f.record("register") }
func (f *fakeExec) Login(_ context.Context) error     { return f.record("login") }
func (f *fakeExec) Logout(_ context.Context) error    { return f.record("logout") }
func (f *fakeExec) Tools(_ context.Context) error     { return f.record("tools") }
func (f *fakeExec) Keys(_ context.Context) error      { return f.record("keys") }
func (f *fakeExec) GenerateKey(_ context.Context, keyType string) error {
	return f.record("genkey " + keyType)
}
func (f *fakeExec) Scan(_ context.Context, tool, domain string) error {
	return f.record(fmt.Sprintf("scan %s %s", tool, domain))
}
func (f *fakeExec) History(_ context.Context, limit string) error {
	return f.record("history " + limit)
}
func (f *fakeExec) Result(_ context.Context, id string) error { return f.record("result " + id) }
func (f *fakeExec) Profile(_ context.Context) error           { return f.record("profile") }
func (f *fakeExec) Pay(_ context.Context, amount string) error {
	return f.record("pay " + amount)
}
func (f *fakeExec) Theme(_ context.Context, value string) error {
	return f.record("theme " + value)
}
func (f *fakeExec) Admin(_ context.Context, args []string) error {
	return f.record("admin " + strings.Join(args, " "))
}

func runScript(t *testing.T, f *fakeExec, script string) []string {
	t.Helper()

	var out []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		out = append(out, fmt.Sprintln(a...))
		return 0, nil
	}
	defer func() { printlnFn = orig }()

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), f, func() string { return "" }, scanner)
	return out
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	f := &fakeExec{loggedIn: true}
	runScript(t, f, strings.Join([]string{
		"tools",
		"keys",
		"genkey free",
		"scan dig example.com",
		"history 5",
		"result 42",
		"profile",
		"pay 49.99",
		"theme dark",
		"admin users",
		"logout",
		"exit",
	}, "\n"))

	assert.Equal(t, []string{
		"tools",
		"keys",
		"genkey free",
		"scan dig example.com",
		"history 5",
		"result 42",
		"profile",
		"pay 49.99",
		"theme dark",
		"admin users",
		"logout",
	}, f.calls)
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	f := &fakeExec{}
	out := runScript(t, f, "frobnicate\nexit\n")

	assert.Empty(t, f.calls)
	assert.Contains(t, strings.Join(out, ""), "Unknown command: frobnicate")
}

func TestRunREPL_UsageOnMissingArgs(t *testing.T) {
	f := &fakeExec{loggedIn: true}
	out := runScript(t, f, "scan dig\ngenkey\npay\nexit\n")

	assert.Empty(t, f.calls)
	joined := strings.Join(out, "")
	assert.Contains(t, joined, "Usage: scan <tool> <domain>")
	assert.Contains(t, joined, "Usage: genkey <free|paid>")
	assert.Contains(t, joined, "Usage: pay <amount>")
}

func TestRunREPL_HandlerErrorIsPrintedNotFatal(t *testing.T) {
	f := &fakeExec{loggedIn: true, errOn: "tools"}
	out := runScript(t, f, "tools\nkeys\nexit\n")

	// The loop survives a failing handler and keeps dispatching.
	assert.Equal(t, []string{"tools", "keys"}, f.calls)
	assert.Contains(t, strings.Join(out, ""), "Error: boom")
}

func TestRunREPL_HelpDependsOnLoginState(t *testing.T) {
	out := strings.Join(runScript(t, &fakeExec{loggedIn: false}, "help\nexit\n"), "")
	assert.Contains(t, out, "register, login, exit")

	out = strings.Join(runScript(t, &fakeExec{loggedIn: true}, "help\nexit\n"), "")
	assert.Contains(t, out, "scan <tool> <domain>")
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "tools")
	assert.Equal(t, []string{"tools"}, f.calls)
}

func TestRunREPL_BlankLinesIgnored(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "\n\n   \nexit\n")
	assert.Empty(t, f.calls)
}
