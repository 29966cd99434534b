package alfred

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fwojciec/flixsearch"
)

// Ensure Notifier implements flixsearch.Notifier.
var _ flixsearch.Notifier = (*Notifier)(nil)

// CommandFunc runs an external command.
type CommandFunc func(ctx context.Context, name string, args ...string) error

// Notifier calls an external trigger of the running workflow via osascript.
type Notifier struct {
	bundleID string
	run      CommandFunc
}

// NewNotifier creates a Notifier for the workflow with the given bundle ID.
// A nil run executes the command with os/exec. An empty bundle ID makes
// Notify a no-op, which is the case outside Alfred.
func NewNotifier(bundleID string, run CommandFunc) *Notifier {
	if run == nil {
		run = execCommand
	}
	return &Notifier{bundleID: bundleID, run: run}
}

// Notify runs the external trigger with the given argument.
func (n *Notifier) Notify(ctx context.Context, trigger, argument string) error {
	if n.bundleID == "" {
		return nil
	}
	script := fmt.Sprintf(
		`tell application id "com.runningwithcrayons.Alfred" to run trigger "%s" in workflow "%s" with argument "%s"`,
		quote(trigger), quote(n.bundleID), quote(argument),
	)
	if err := n.run(ctx, "osascript", "-e", script); err != nil {
		return fmt.Errorf("run trigger %q: %w", trigger, err)
	}
	return nil
}

var quoter = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quote(s string) string {
	return quoter.Replace(s)
}

func execCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}
