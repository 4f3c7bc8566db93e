// Package membership implements the consent-based workflows that change
// who can see a holograph: invitations, principal removal requests, and
// ownership transfers.
//
// Nobody gains or loses access unilaterally. Invitations require the
// invitee to accept; removals require the target to consent; ownership
// moves only at the current owner's request. The services here enforce
// the actor checks and delegate the state transitions to the stores,
// whose transactions hold the storage-level invariants.
package membership
