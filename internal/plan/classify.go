package plan

import (
	"sort"

	"github.com/conn-castle/wheelstage/internal/wheel"
)

// Input is everything classification needs, passed explicitly. Nothing is
// implied by which recipe happens to run: the host-satisfied set and the
// locally built artifacts arrive as data.
type Input struct {
	// Dependencies are the declared runtime dependencies of the primary
	// package, in declaration order.
	Dependencies []DependencyRef
	// HostSatisfied lists dependency names the host package manager is
	// trusted to have installed before this stage runs.
	HostSatisfied []string
	// Primary is the wheel built from the primary source tree.
	Primary wheel.Artifact
	// Subprojects are wheels built from bundled subprojects; a declared
	// dependency matching one by name is satisfied locally.
	Subprojects []wheel.Artifact
	// PrimaryFullDeps requests a full-dependency install of the primary
	// wheel. Valid only when no declared dependencies were routed.
	PrimaryFullDeps bool
	// IndexNoDeps suppresses dependency resolution for index installs.
	IndexNoDeps bool
}

// Classify partitions every declared dependency into exactly one channel
// and returns the ordered plan:
//
//  1. the primary artifact, so its metadata is registered before any index
//     install that might declare it transitively,
//  2. index installs in declaration order,
//  3. subproject artifacts, installed with dependency resolution suppressed
//     since their dependencies were already routed.
//
// A name present in both the host-satisfied set and the local artifact set
// is a policy conflict and yields a ConflictError, never a silent choice.
func Classify(in Input) (*InstallPlan, error) {
	hostSet := make(map[string]bool, len(in.HostSatisfied))
	for _, name := range in.HostSatisfied {
		hostSet[wheel.NormalizeName(name)] = true
	}
	local := make(map[string]wheel.Artifact, len(in.Subprojects))
	for _, artifact := range in.Subprojects {
		local[artifact.Name] = artifact
	}

	if err := detectConflicts(hostSet, local); err != nil {
		return nil, err
	}

	depsRouted := len(in.Dependencies) > 0

	actions := []Action{{
		Channel:    ChannelLocalArtifactInstall,
		Artifact:   in.Primary,
		NoDeps:     !in.PrimaryFullDeps,
		DepsRouted: depsRouted,
	}}

	var hostManaged []DependencyRef
	var localDeps []Action
	for _, dep := range in.Dependencies {
		name := wheel.NormalizeName(dep.Name)
		switch {
		case hostSet[name]:
			hostManaged = append(hostManaged, dep)
		case local[name].Path != "":
			localDeps = append(localDeps, Action{
				Channel:    ChannelLocalArtifactInstall,
				Artifact:   local[name],
				NoDeps:     true,
				DepsRouted: true,
			})
		default:
			actions = append(actions, Action{
				Channel:    ChannelIndexInstall,
				Dependency: dep,
				NoDeps:     in.IndexNoDeps,
			})
		}
	}

	// Subproject artifacts install last and are order-independent of index
	// installs; include subprojects nothing declared, so a bundled artifact
	// is never silently dropped.
	scheduled := make(map[string]bool, len(localDeps))
	for _, action := range localDeps {
		actions = append(actions, action)
		scheduled[action.Artifact.Name] = true
	}
	for _, artifact := range in.Subprojects {
		if scheduled[artifact.Name] {
			continue
		}
		actions = append(actions, Action{
			Channel:    ChannelLocalArtifactInstall,
			Artifact:   artifact,
			NoDeps:     true,
			DepsRouted: true,
		})
	}

	return &InstallPlan{actions: actions, hostManaged: hostManaged}, nil
}

// detectConflicts rejects names routed to both the host-managed set and a
// local artifact.
func detectConflicts(hostSet map[string]bool, local map[string]wheel.Artifact) error {
	var names []string
	for name := range local {
		if hostSet[name] {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)
	return &ConflictError{Names: names}
}
