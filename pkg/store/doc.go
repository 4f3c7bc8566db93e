// Package store provides the persistence port for the Holograph core.
//
// This package defines interfaces for database operations, allowing the
// services and endpoints to be decoupled from the specific database
// implementation. This enables easier testing with mocks and potential
// support for different storage backends.
//
// # Available Stores
//
//   - HolographsStore: Holograph lifecycle and ownership transfer
//   - AccessStore: Principal/Delegate membership and section permissions
//   - InvitationsStore: Pending invitations and their resolution
//   - RemovalsStore: Pending principal-removal requests
//   - UsersStore: Registered user lookup
//   - RecordsStore: Encrypted record rows
//
// # Usage
//
//	holographs := gorm.NewHolographsStore(db)
//	h, err := holographs.Fetch(id)
//	if err != nil {
//	    if errors.Is(err, store.ErrNotFound) {
//	        // Handle not found
//	    }
//	}
package store
