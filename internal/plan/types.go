// Package plan classifies declared dependencies into installation channels
// and produces the ordered, immutable install plan the orchestrator executes.
package plan

import (
	"github.com/conn-castle/wheelstage/internal/wheel"
)

// Channel is the installation pathway chosen for a dependency or artifact.
// Channels are mutually exclusive per dependency: every declared dependency
// is assigned to exactly one.
type Channel string

const (
	// ChannelHostManaged marks a dependency the host package manager is
	// trusted to have satisfied; no action is taken.
	ChannelHostManaged Channel = "host-managed"
	// ChannelIndexInstall fetches and installs via the language package index.
	ChannelIndexInstall Channel = "index-install"
	// ChannelLocalArtifactInstall installs a locally built wheel.
	ChannelLocalArtifactInstall Channel = "local-artifact"
)

// DependencyRef names one declared runtime dependency.
type DependencyRef struct {
	Name string
	// MinVersion optionally pins a minimum version for index installs.
	MinVersion string
}

// Specifier renders the dependency as an installer argument.
func (d DependencyRef) Specifier() string {
	if d.MinVersion == "" {
		return d.Name
	}
	return d.Name + ">=" + d.MinVersion
}

// Action is one executable step of an install plan.
type Action struct {
	Channel Channel
	// Dependency is set for index installs.
	Dependency DependencyRef
	// Artifact is set for local-artifact installs.
	Artifact wheel.Artifact
	// NoDeps suppresses dependency resolution for this action.
	NoDeps bool
	// DepsRouted marks an artifact whose declared dependencies were routed
	// to other channels by the classifier. The orchestrator refuses a
	// full-dependency install of such an artifact.
	DepsRouted bool
}

// Name returns the normalized name this action installs.
func (a Action) Name() string {
	if a.Channel == ChannelLocalArtifactInstall {
		return a.Artifact.Name
	}
	return wheel.NormalizeName(a.Dependency.Name)
}

// InstallPlan is the ordered result of classification. It is immutable
// after creation: accessors return copies.
type InstallPlan struct {
	actions     []Action
	hostManaged []DependencyRef
}

// Actions returns the executable actions in installation order.
func (p *InstallPlan) Actions() []Action {
	return append([]Action(nil), p.actions...)
}

// HostManaged returns the dependencies recorded as pre-satisfied by the
// host package manager. They appear in no executable action.
func (p *InstallPlan) HostManaged() []DependencyRef {
	return append([]DependencyRef(nil), p.hostManaged...)
}
