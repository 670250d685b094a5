// Package stage executes an install plan against a staging root.
//
// The staging root is exclusively owned by one orchestrator run; all writes
// during installation are confined to paths under it. Execution is strictly
// sequential: every install shares the staging root's package-metadata
// database, so concurrent writers would corrupt it.
package stage

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/conn-castle/wheelstage/internal/messages"
	"github.com/conn-castle/wheelstage/internal/plan"
)

// Orchestrator installs plan actions into the staging root under a fixed
// prefix via the external package-index installer.
type Orchestrator struct {
	// StagingRoot receives all installation writes.
	StagingRoot string
	// Prefix is the install prefix inside the staging root, e.g. /usr.
	Prefix string
	// Python is the interpreter used to invoke the installer ("python3"
	// when empty). Tests point this at a stub on PATH.
	Python string
	// Env is the full subprocess environment; nil inherits the parent's.
	Env []string
	// Out and Err receive the installer's output verbatim, so a failing
	// install surfaces its diagnostic output unchanged.
	Out io.Writer
	Err io.Writer
}

// InstallError wraps an external installer failure for one plan entry.
// Unwrap exposes the underlying exec.ExitError so callers can propagate the
// installer's exit code unchanged.
type InstallError struct {
	Subject string
	Err     error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf(messages.StageInstallFailedFmt, e.Subject, e.Err)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// Execute runs every action of the plan in order. Any single failure aborts
// the remaining plan; partial staging state is left in place for external
// inspection, never auto-cleaned.
//
// Execute re-checks the classifier's exclusivity invariant: it refuses to
// invoke two installs for the same normalized name, even when two plan
// entries arrived through different channels.
func (o *Orchestrator) Execute(p *plan.InstallPlan) error {
	if o.StagingRoot == "" {
		return fmt.Errorf(messages.StageStagingRootRequired)
	}
	if err := os.MkdirAll(o.StagingRoot, 0o755); err != nil {
		return fmt.Errorf(messages.StageCreateStagingFmt, o.StagingRoot, err)
	}

	seen := make(map[string]plan.Channel)
	for _, action := range p.Actions() {
		name := action.Name()
		if first, dup := seen[name]; dup {
			return &plan.DuplicateActionError{Name: name, First: first, Second: action.Channel}
		}
		seen[name] = action.Channel

		if err := o.install(action); err != nil {
			return err
		}
	}
	return nil
}

// install runs one plan action. Host-managed entries never reach here; the
// classifier records them outside the executable action list.
func (o *Orchestrator) install(action plan.Action) error {
	if action.Channel == plan.ChannelLocalArtifactInstall && action.DepsRouted && !action.NoDeps {
		return &plan.DepsRoutedError{Artifact: action.Artifact.Name, Field: "primary_deps"}
	}

	args := []string{"-m", "pip", "install",
		"--root", o.StagingRoot,
		"--prefix", o.Prefix,
		"--no-compile",
		"--no-warn-script-location",
		"--disable-pip-version-check",
	}
	if action.NoDeps {
		args = append(args, "--no-deps")
	}

	var subject string
	switch action.Channel {
	case plan.ChannelLocalArtifactInstall:
		subject = action.Artifact.Name
		args = append(args, action.Artifact.Path)
	case plan.ChannelIndexInstall:
		subject = action.Dependency.Name
		args = append(args, action.Dependency.Specifier())
	default:
		// HostManaged is a documented precondition, not an executable step.
		return nil
	}

	cmd := exec.Command(o.python(), args...)
	cmd.Stdout = o.Out
	cmd.Stderr = o.Err
	cmd.Env = o.Env
	if err := cmd.Run(); err != nil {
		return &InstallError{Subject: subject, Err: err}
	}
	return nil
}

func (o *Orchestrator) python() string {
	if o.Python == "" {
		return "python3"
	}
	return o.Python
}
