package alfred_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/flixsearch/alfred"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_Notify(t *testing.T) {
	t.Parallel()

	t.Run("runs external trigger through osascript", func(t *testing.T) {
		t.Parallel()

		var gotName string
		var gotArgs []string
		run := func(_ context.Context, name string, args ...string) error {
			gotName = name
			gotArgs = args
			return nil
		}

		n := alfred.NewNotifier("net.deanishe.flixsearch", run)
		err := n.Notify(context.Background(), "countries", "")

		require.NoError(t, err)
		assert.Equal(t, "osascript", gotName)
		require.Len(t, gotArgs, 2)
		assert.Equal(t, "-e", gotArgs[0])
		assert.Equal(t,
			`tell application id "com.runningwithcrayons.Alfred" to run trigger "countries" in workflow "net.deanishe.flixsearch" with argument ""`,
			gotArgs[1])
	})

	t.Run("escapes quotes in argument", func(t *testing.T) {
		t.Parallel()

		var script string
		run := func(_ context.Context, _ string, args ...string) error {
			script = args[1]
			return nil
		}

		err := alfred.NewNotifier("wf", run).Notify(context.Background(), "countries", `say "hi"`)

		require.NoError(t, err)
		assert.Contains(t, script, `with argument "say \"hi\""`)
	})

	t.Run("is a no-op without bundle id", func(t *testing.T) {
		t.Parallel()

		called := false
		run := func(context.Context, string, ...string) error {
			called = true
			return nil
		}

		err := alfred.NewNotifier("", run).Notify(context.Background(), "countries", "")

		require.NoError(t, err)
		assert.False(t, called)
	})

	t.Run("wraps command error", func(t *testing.T) {
		t.Parallel()

		run := func(context.Context, string, ...string) error {
			return errors.New("exit status 1")
		}

		err := alfred.NewNotifier("wf", run).Notify(context.Background(), "countries", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), `run trigger "countries"`)
		assert.Contains(t, err.Error(), "exit status 1")
	})
}
