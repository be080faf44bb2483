// Package cli implements the ggview command line: flag and environment
// parsing, scene loading, and the three-view area run loop.
//
// The package does not import the desktop host; the command supplies it
// through Env.Desktop so the rest of the command can run without a display.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggview/host"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// User-facing messages printed on standard output.
const (
	MsgNoPath   = "Please specify a 3d model or image file on the command line."
	MsgBadScene = "Failed to load a valid scene graph. Please specify a valid 3d model or image file on the command line."
)

// ContainerTitle is the title of the window holding every view.
const ContainerTitle = "ggview"

// viewTitles are the titles of the views opened on the scene.
var viewTitles = []string{"First Window", "Second Window", "Third Window"}

// DesktopFunc opens the on-screen container.
type DesktopFunc func(title string, width, height int, fullscreen bool) (host.ViewContainer, error)

// Env is what the command needs from the process.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer

	// Desktop opens the on-screen container. Without it only --headless
	// runs are possible.
	Desktop DesktopFunc
}

// exitError carries an exit code and, for resource errors, the message
// shown to the user.
type exitError struct {
	code int
	msg  string
	err  error
}

func (e *exitError) Error() string {
	switch {
	case e.err != nil:
		return e.err.Error()
	case e.msg != "":
		return e.msg
	}
	return fmt.Sprintf("exit status %d", e.code)
}

func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error { return &exitError{code: ExitUsage, err: err} }

func failure(err error) error { return &exitError{code: ExitFailure, err: err} }

// Execute runs the command with args (without the program name) and
// returns the process exit code.
func Execute(ctx context.Context, args []string, env Env) int {
	if env.Stdout == nil {
		env.Stdout = io.Discard
	}
	if env.Stderr == nil {
		env.Stderr = io.Discard
	}

	cmd := newCommand(env)
	cmd.SetArgs(joinWindowArgs(args))
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	var ee *exitError
	if !errors.As(err, &ee) {
		// Flag and argument errors come straight from cobra.
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		fmt.Fprintf(env.Stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
		return ExitUsage
	}
	if ee.msg != "" {
		fmt.Fprintln(env.Stdout, ee.msg)
		if ee.err != nil {
			fmt.Fprintf(env.Stderr, "ggview: %v\n", ee.err)
		}
		return ee.code
	}
	fmt.Fprintf(env.Stderr, "ggview: %v\n", ee.err)
	return ee.code
}

func newCommand(env Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ggview [flags] FILE",
		Short: "View a 3d model or image in three windows sharing one GPU device",
		Long: `ggview loads a scene from a Wavefront OBJ file or an image and shows it in
three views that share one rendering device. Drag with the left button to
rotate, the middle button to pan and the right button or the wheel to zoom.
Press Escape or close the window to quit.

Files are looked up in the directories listed in VSG_FILE_PATH. Converted
images are cached in VSG_FILE_CACHE when it is set. Every flag can also be
set through a GGVIEW_ environment variable or a YAML file given with --config.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd.Flags())
			if err != nil {
				return usageError(err)
			}
			return run(cmd.Context(), s, args, env)
		},
	}
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)
	defineFlags(cmd)
	return cmd
}
