package plan

import (
	"fmt"
	"strings"

	"github.com/conn-castle/wheelstage/internal/messages"
)

// ConflictError reports dependencies assigned to more than one channel.
// Two of the historical recipe variants shipped exactly this mistake
// (a dependency declared host-satisfied and reinstalled via the index), so
// the classifier surfaces it instead of silently picking a channel.
type ConflictError struct {
	// Names are the normalized dependency names in conflict, sorted.
	Names []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(messages.PlanConflictFmt, strings.Join(e.Names, ", "))
}

// DuplicateActionError reports a dependency scheduled for installation twice.
// Classification should make this impossible; the orchestrator re-checks as
// defense in depth.
type DuplicateActionError struct {
	Name   string
	First  Channel
	Second Channel
}

func (e *DuplicateActionError) Error() string {
	return fmt.Sprintf(messages.PlanDuplicateActionFmt, e.Name, e.First, e.Second)
}

// DepsRoutedError reports a full-dependency install requested for an
// artifact whose declared dependencies the classifier already routed.
type DepsRoutedError struct {
	Artifact string
	Field    string
}

func (e *DepsRoutedError) Error() string {
	return fmt.Sprintf(messages.PlanDepsRoutedFmt, e.Artifact, e.Field)
}
