package common

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Command describes one invocation of an external tool.
type Command struct {
	Name  string
	Args  []string
	Dir   string
	Env   []string // when empty the current environment is inherited
	Stdin []byte
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Output is what an external tool left behind. A non-zero ExitCode is not
// an error of the runner; callers decide what it means.
type Output struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner is the only way the counting and signature engines are reached,
// so both can be replaced in tests.
type Runner interface {
	Run(Command) (Output, error)
}

// ExecRunner runs commands with os/exec. It blocks until the process
// exits; there is no timeout.
type ExecRunner struct{}

func NewExecRunner() ExecRunner {
	return ExecRunner{}
}

func (ExecRunner) Run(cmd Command) (out Output, err error) {
	c := exec.Command(cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		c.Env = cmd.Env
	}
	if cmd.Stdin != nil {
		c.Stdin = bytes.NewReader(cmd.Stdin)
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	log.Debug("running external command", "command", cmd.String(), "dir", cmd.Dir)

	err = c.Run()
	out.Stdout = stdout.Bytes()
	out.Stderr = stderr.Bytes()

	if exitErr, ok := err.(*exec.ExitError); ok {
		out.ExitCode = exitErr.ExitCode()
		err = nil
		log.Debug("external command exited", "command", cmd.Name, "exit-code", out.ExitCode)
		return
	} else if err != nil {
		err = errors.Wrapf(err, "failed to run %q", cmd.Name)
		return
	}

	return
}
