package membership_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ankush-tewari/holograph/pkg/access"
	"github.com/ankush-tewari/holograph/pkg/audit"
	"github.com/ankush-tewari/holograph/pkg/membership"
	"github.com/ankush-tewari/holograph/pkg/model"
	"github.com/ankush-tewari/holograph/pkg/store"
	"github.com/ankush-tewari/holograph/pkg/store/storetest"
)

const (
	testHolograph = "holo-1"
	testOwner     = "user-owner"
	testPrincipal = "user-principal"
	testDelegate  = "user-delegate"
	testInvitee   = "user-invitee"
	inviteeEmail  = "invitee@example.com"
)

func TestMain(m *testing.M) {
	audit.SetEnabled(false)
	os.Exit(m.Run())
}

type fixtures struct {
	accessStore *storetest.MockAccessStore
	holographs  *storetest.MockHolographsStore
	invitations *storetest.MockInvitationsStore
	removals    *storetest.MockRemovalsStore
	users       *storetest.MockUsersStore
	registry    *access.Registry
}

func newFixtures() *fixtures {
	f := &fixtures{
		accessStore: storetest.NewMockAccessStore(),
		holographs:  storetest.NewMockHolographsStore(),
		invitations: storetest.NewMockInvitationsStore(),
		removals:    storetest.NewMockRemovalsStore(),
		users:       storetest.NewMockUsersStore(),
	}
	f.registry = access.NewRegistry(f.accessStore, f.holographs)
	return f
}

func TestInviteCreatesPendingInvitation(t *testing.T) {
	f := newFixtures()
	f.accessStore.On("IsPrincipal", testHolograph, testPrincipal).Return(true, nil)
	f.users.On("ByEmail", inviteeEmail).Return(&model.User{ID: testInvitee, Email: inviteeEmail}, nil)
	f.accessStore.On("IsPrincipal", testHolograph, testInvitee).Return(false, nil)
	f.accessStore.On("IsDelegate", testHolograph, testInvitee).Return(false, nil)
	f.invitations.On("HasPendingForEmail", testHolograph, inviteeEmail).Return(false, nil)
	f.invitations.On("Create", mock.AnythingOfType("*model.Invitation")).Return(nil)

	service := membership.NewInvitations(f.registry, f.invitations, f.users)
	inv, err := service.Invite(testPrincipal, testHolograph, inviteeEmail, model.RoleDelegate)

	require.NoError(t, err)
	assert.NotEmpty(t, inv.ID)
	assert.Equal(t, model.InvitationPending, inv.Status)
	assert.Equal(t, model.RoleDelegate, inv.Role)
	assert.Equal(t, testPrincipal, inv.InviterID)
	f.invitations.AssertExpectations(t)
}

func TestInviteRejectsUnknownRole(t *testing.T) {
	f := newFixtures()
	service := membership.NewInvitations(f.registry, f.invitations, f.users)

	_, err := service.Invite(testPrincipal, testHolograph, inviteeEmail, "observer")
	assert.ErrorIs(t, err, access.ErrValidation)
}

func TestInviteRequiresPrincipalInviter(t *testing.T) {
	f := newFixtures()
	f.accessStore.On("IsPrincipal", testHolograph, testDelegate).Return(false, nil)

	service := membership.NewInvitations(f.registry, f.invitations, f.users)
	_, err := service.Invite(testDelegate, testHolograph, inviteeEmail, model.RolePrincipal)

	assert.ErrorIs(t, err, access.ErrDenied)
	f.invitations.AssertNotCalled(t, "Create")
}

func TestInviteRequiresRegisteredInvitee(t *testing.T) {
	f := newFixtures()
	f.accessStore.On("IsPrincipal", testHolograph, testPrincipal).Return(true, nil)
	f.users.On("ByEmail", "ghost@example.com").Return(nil, store.ErrNotFound)

	service := membership.NewInvitations(f.registry, f.invitations, f.users)
	_, err := service.Invite(testPrincipal, testHolograph, "ghost@example.com", model.RolePrincipal)

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestInviteRejectsExistingMember(t *testing.T) {
	f := newFixtures()
	f.accessStore.On("IsPrincipal", testHolograph, testPrincipal).Return(true, nil)
	f.users.On("ByEmail", inviteeEmail).Return(&model.User{ID: testInvitee, Email: inviteeEmail}, nil)
	// Already a delegate, so a principal invitation must not stack.
	f.accessStore.On("IsPrincipal", testHolograph, testInvitee).Return(false, nil)
	f.accessStore.On("IsDelegate", testHolograph, testInvitee).Return(true, nil)

	service := membership.NewInvitations(f.registry, f.invitations, f.users)
	_, err := service.Invite(testPrincipal, testHolograph, inviteeEmail, model.RolePrincipal)

	assert.ErrorIs(t, err, store.ErrConflict)
	f.invitations.AssertNotCalled(t, "Create")
}

func TestInviteRejectsDuplicatePending(t *testing.T) {
	f := newFixtures()
	f.accessStore.On("IsPrincipal", testHolograph, testPrincipal).Return(true, nil)
	f.users.On("ByEmail", inviteeEmail).Return(&model.User{ID: testInvitee, Email: inviteeEmail}, nil)
	f.accessStore.On("IsPrincipal", testHolograph, testInvitee).Return(false, nil)
	f.accessStore.On("IsDelegate", testHolograph, testInvitee).Return(false, nil)
	f.invitations.On("HasPendingForEmail", testHolograph, inviteeEmail).Return(true, nil)

	service := membership.NewInvitations(f.registry, f.invitations, f.users)
	_, err := service.Invite(testPrincipal, testHolograph, inviteeEmail, model.RoleDelegate)

	assert.ErrorIs(t, err, store.ErrConflict)
}

func pendingInvitation(role string) *model.Invitation {
	return &model.Invitation{
		ID:           "inv-1",
		HolographID:  testHolograph,
		InviterID:    testPrincipal,
		InviteeEmail: inviteeEmail,
		Role:         role,
		Status:       model.InvitationPending,
	}
}

func TestRespondAcceptGrantsRole(t *testing.T) {
	f := newFixtures()
	inv := pendingInvitation(model.RoleDelegate)
	f.invitations.On("Fetch", "inv-1").Return(inv, nil)
	f.users.On("ByID", testInvitee).Return(&model.User{ID: testInvitee, Email: inviteeEmail}, nil)
	f.invitations.On("Accept", inv, testInvitee).Return(nil)

	service := membership.NewInvitations(f.registry, f.invitations, f.users)
	require.NoError(t, service.Respond(testInvitee, "inv-1", true))
	f.invitations.AssertExpectations(t)
}

func TestRespondDeclineDiscardsInvitation(t *testing.T) {
	f := newFixtures()
	inv := pendingInvitation(model.RolePrincipal)
	f.invitations.On("Fetch", "inv-1").Return(inv, nil)
	f.users.On("ByID", testInvitee).Return(&model.User{ID: testInvitee, Email: inviteeEmail}, nil)
	f.invitations.On("Decline", inv).Return(nil)

	service := membership.NewInvitations(f.registry, f.invitations, f.users)
	require.NoError(t, service.Respond(testInvitee, "inv-1", false))
	f.invitations.AssertNotCalled(t, "Accept")
}

func TestRespondOnlyInvitee(t *testing.T) {
	f := newFixtures()
	inv := pendingInvitation(model.RoleDelegate)
	f.invitations.On("Fetch", "inv-1").Return(inv, nil)
	f.users.On("ByID", testDelegate).Return(&model.User{ID: testDelegate, Email: "other@example.com"}, nil)

	service := membership.NewInvitations(f.registry, f.invitations, f.users)
	err := service.Respond(testDelegate, "inv-1", true)

	assert.ErrorIs(t, err, access.ErrDenied)
}

func TestRespondResolvedInvitation(t *testing.T) {
	f := newFixtures()
	inv := pendingInvitation(model.RoleDelegate)
	inv.Status = model.InvitationAccepted
	f.invitations.On("Fetch", "inv-1").Return(inv, nil)
	f.users.On("ByID", testInvitee).Return(&model.User{ID: testInvitee, Email: inviteeEmail}, nil)

	service := membership.NewInvitations(f.registry, f.invitations, f.users)
	err := service.Respond(testInvitee, "inv-1", true)

	assert.ErrorIs(t, err, store.ErrInvalidState)
}

func TestRemovalRequestHappyPath(t *testing.T) {
	f := newFixtures()
	f.accessStore.On("IsPrincipal", testHolograph, testOwner).Return(true, nil)
	f.accessStore.On("IsPrincipal", testHolograph, testPrincipal).Return(true, nil)
	f.holographs.On("Fetch", testHolograph).
		Return(&model.Holograph{ID: testHolograph, OwnerID: testOwner}, nil)
	f.removals.On("Create", mock.AnythingOfType("*model.PendingPrincipalRemoval")).Return(nil)

	service := membership.NewRemovals(f.registry, f.removals)
	removal, err := service.Request(testOwner, testHolograph, testPrincipal)

	require.NoError(t, err)
	assert.Equal(t, testPrincipal, removal.TargetUserID)
	assert.Equal(t, testOwner, removal.RequestedByID)
	assert.Equal(t, model.RemovalPending, removal.Status)
}

func TestRemovalRequestRefusesOwnerTarget(t *testing.T) {
	f := newFixtures()
	f.accessStore.On("IsPrincipal", testHolograph, testPrincipal).Return(true, nil)
	f.accessStore.On("IsPrincipal", testHolograph, testOwner).Return(true, nil)
	f.holographs.On("Fetch", testHolograph).
		Return(&model.Holograph{ID: testHolograph, OwnerID: testOwner}, nil)

	service := membership.NewRemovals(f.registry, f.removals)
	_, err := service.Request(testPrincipal, testHolograph, testOwner)

	assert.ErrorIs(t, err, access.ErrDenied)
	f.removals.AssertNotCalled(t, "Create")
}

func TestRemovalRequestTargetMustBePrincipal(t *testing.T) {
	f := newFixtures()
	f.accessStore.On("IsPrincipal", testHolograph, testOwner).Return(true, nil)
	f.accessStore.On("IsPrincipal", testHolograph, testDelegate).Return(false, nil)

	service := membership.NewRemovals(f.registry, f.removals)
	_, err := service.Request(testOwner, testHolograph, testDelegate)

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRemovalRequestDuplicateConflict(t *testing.T) {
	f := newFixtures()
	f.accessStore.On("IsPrincipal", testHolograph, testOwner).Return(true, nil)
	f.accessStore.On("IsPrincipal", testHolograph, testPrincipal).Return(true, nil)
	f.holographs.On("Fetch", testHolograph).
		Return(&model.Holograph{ID: testHolograph, OwnerID: testOwner}, nil)
	f.removals.On("Create", mock.AnythingOfType("*model.PendingPrincipalRemoval")).Return(store.ErrConflict)

	service := membership.NewRemovals(f.registry, f.removals)
	_, err := service.Request(testOwner, testHolograph, testPrincipal)

	assert.ErrorIs(t, err, store.ErrConflict)
}

func pendingRemoval() *model.PendingPrincipalRemoval {
	return &model.PendingPrincipalRemoval{
		ID:            "rem-1",
		HolographID:   testHolograph,
		TargetUserID:  testPrincipal,
		RequestedByID: testOwner,
		Status:        model.RemovalPending,
	}
}

func TestRemovalRespondAccept(t *testing.T) {
	f := newFixtures()
	removal := pendingRemoval()
	f.removals.On("Fetch", "rem-1").Return(removal, nil)
	f.removals.On("Accept", removal).Return(nil)

	service := membership.NewRemovals(f.registry, f.removals)
	require.NoError(t, service.Respond(testPrincipal, "rem-1", true))
	f.removals.AssertExpectations(t)
}

func TestRemovalRespondOnlyTarget(t *testing.T) {
	f := newFixtures()
	f.removals.On("Fetch", "rem-1").Return(pendingRemoval(), nil)

	service := membership.NewRemovals(f.registry, f.removals)
	err := service.Respond(testDelegate, "rem-1", true)

	assert.ErrorIs(t, err, access.ErrDenied)
	f.removals.AssertNotCalled(t, "Accept")
}

func TestRemovalRespondLastPrincipalConflictKeepsRequest(t *testing.T) {
	f := newFixtures()
	removal := pendingRemoval()
	f.removals.On("Fetch", "rem-1").Return(removal, nil)
	f.removals.On("Accept", removal).Return(store.ErrLastPrincipal)

	service := membership.NewRemovals(f.registry, f.removals)
	err := service.Respond(testPrincipal, "rem-1", true)

	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestTransferHappyPath(t *testing.T) {
	f := newFixtures()
	f.holographs.On("Fetch", testHolograph).
		Return(&model.Holograph{ID: testHolograph, OwnerID: testOwner}, nil)
	f.users.On("ByID", testPrincipal).Return(&model.User{ID: testPrincipal}, nil)
	f.holographs.On("TransferOwnership", testHolograph, testPrincipal).Return(testOwner, nil)

	service := membership.NewTransfers(f.holographs, f.users)
	require.NoError(t, service.Transfer(testOwner, testHolograph, testPrincipal))
	f.holographs.AssertExpectations(t)
}

func TestTransferOnlyOwner(t *testing.T) {
	f := newFixtures()
	f.holographs.On("Fetch", testHolograph).
		Return(&model.Holograph{ID: testHolograph, OwnerID: testOwner}, nil)

	service := membership.NewTransfers(f.holographs, f.users)
	err := service.Transfer(testPrincipal, testHolograph, testDelegate)

	assert.ErrorIs(t, err, access.ErrDenied)
	f.holographs.AssertNotCalled(t, "TransferOwnership")
}

func TestTransferToSelfRejected(t *testing.T) {
	f := newFixtures()
	f.holographs.On("Fetch", testHolograph).
		Return(&model.Holograph{ID: testHolograph, OwnerID: testOwner}, nil)

	service := membership.NewTransfers(f.holographs, f.users)
	err := service.Transfer(testOwner, testHolograph, testOwner)

	assert.ErrorIs(t, err, access.ErrValidation)
}

func TestTransferRequiresExistingUser(t *testing.T) {
	f := newFixtures()
	f.holographs.On("Fetch", testHolograph).
		Return(&model.Holograph{ID: testHolograph, OwnerID: testOwner}, nil)
	f.users.On("ByID", "user-ghost").Return(nil, store.ErrNotFound)

	service := membership.NewTransfers(f.holographs, f.users)
	err := service.Transfer(testOwner, testHolograph, "user-ghost")

	assert.ErrorIs(t, err, store.ErrNotFound)
}
