package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankush-tewari/holograph/pkg/access"
	"github.com/ankush-tewari/holograph/pkg/model"
	"github.com/ankush-tewari/holograph/pkg/store"
	"github.com/ankush-tewari/holograph/pkg/store/storetest"
)

const (
	testHolograph = "holo-1"
	testOwner     = "user-owner"
	testPrincipal = "user-principal"
	testDelegate  = "user-delegate"
	testStranger  = "user-stranger"
)

func newRegistry() (*access.Registry, *storetest.MockAccessStore, *storetest.MockHolographsStore) {
	accessStore := storetest.NewMockAccessStore()
	holographs := storetest.NewMockHolographsStore()
	return access.NewRegistry(accessStore, holographs), accessStore, holographs
}

func TestCanReadPrincipalReadsEverySection(t *testing.T) {
	registry, accessStore, _ := newRegistry()
	accessStore.On("IsPrincipal", testHolograph, testPrincipal).Return(true, nil)

	for _, section := range []string{model.SectionVitalDocuments, model.SectionFinancialAccounts} {
		assert.NoError(t, registry.CanRead(testHolograph, testPrincipal, section))
	}
	accessStore.AssertExpectations(t)
}

func TestCanReadDelegateHonoursPerSectionGrants(t *testing.T) {
	registry, accessStore, _ := newRegistry()
	accessStore.On("IsPrincipal", testHolograph, testDelegate).Return(false, nil)
	accessStore.On("IsDelegate", testHolograph, testDelegate).Return(true, nil)
	accessStore.On("DelegatePermission", testHolograph, testDelegate, model.SectionVitalDocuments).
		Return(model.AccessViewOnly, nil)
	accessStore.On("DelegatePermission", testHolograph, testDelegate, model.SectionFinancialAccounts).
		Return(model.AccessNone, nil)

	assert.NoError(t, registry.CanRead(testHolograph, testDelegate, model.SectionVitalDocuments))

	err := registry.CanRead(testHolograph, testDelegate, model.SectionFinancialAccounts)
	assert.ErrorIs(t, err, access.ErrDenied)
}

func TestCanReadStrangerDenied(t *testing.T) {
	registry, accessStore, _ := newRegistry()
	accessStore.On("IsPrincipal", testHolograph, testStranger).Return(false, nil)
	accessStore.On("IsDelegate", testHolograph, testStranger).Return(false, nil)

	assert.ErrorIs(t, registry.CanRead(testHolograph, testStranger, model.SectionVitalDocuments), access.ErrDenied)
}

func TestCanWriteDelegateAlwaysDenied(t *testing.T) {
	registry, accessStore, _ := newRegistry()
	// Even a delegate holding view-only on the section cannot write it.
	accessStore.On("IsPrincipal", testHolograph, testDelegate).Return(false, nil)

	err := registry.CanWrite(testHolograph, testDelegate, model.SectionVitalDocuments)
	assert.ErrorIs(t, err, access.ErrDenied)
	accessStore.AssertNotCalled(t, "DelegatePermission")
}

func TestCanWritePrincipalAllowed(t *testing.T) {
	registry, accessStore, _ := newRegistry()
	accessStore.On("IsPrincipal", testHolograph, testPrincipal).Return(true, nil)

	assert.NoError(t, registry.CanWrite(testHolograph, testPrincipal, model.SectionFinancialAccounts))
}

func TestCanManage(t *testing.T) {
	registry, accessStore, _ := newRegistry()
	accessStore.On("IsPrincipal", testHolograph, testPrincipal).Return(true, nil)
	accessStore.On("IsPrincipal", testHolograph, testDelegate).Return(false, nil)

	assert.NoError(t, registry.CanManage(testHolograph, testPrincipal))
	assert.ErrorIs(t, registry.CanManage(testHolograph, testDelegate), access.ErrDenied)
}

func TestRemovePrincipalRefusesOwner(t *testing.T) {
	registry, accessStore, holographs := newRegistry()
	holographs.On("Fetch", testHolograph).
		Return(&model.Holograph{ID: testHolograph, OwnerID: testOwner}, nil)

	err := registry.RemovePrincipal(testHolograph, testOwner)
	require.ErrorIs(t, err, access.ErrDenied)
	accessStore.AssertNotCalled(t, "RemovePrincipal")
}

func TestRemovePrincipalDelegatesToStore(t *testing.T) {
	registry, accessStore, holographs := newRegistry()
	holographs.On("Fetch", testHolograph).
		Return(&model.Holograph{ID: testHolograph, OwnerID: testOwner}, nil)
	accessStore.On("RemovePrincipal", testHolograph, testPrincipal).Return(nil)

	require.NoError(t, registry.RemovePrincipal(testHolograph, testPrincipal))
	accessStore.AssertExpectations(t)
}

func TestRemovePrincipalPropagatesLastPrincipalConflict(t *testing.T) {
	registry, accessStore, holographs := newRegistry()
	holographs.On("Fetch", testHolograph).
		Return(&model.Holograph{ID: testHolograph, OwnerID: testOwner}, nil)
	accessStore.On("RemovePrincipal", testHolograph, testPrincipal).Return(store.ErrLastPrincipal)

	err := registry.RemovePrincipal(testHolograph, testPrincipal)
	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestSetDelegatePermissionValidatesLevel(t *testing.T) {
	registry, _, _ := newRegistry()

	err := registry.SetDelegatePermission(testHolograph, testDelegate, model.SectionVitalDocuments, "full-control")
	assert.ErrorIs(t, err, access.ErrValidation)

	err = registry.SetDelegatePermission(testHolograph, testDelegate, "", model.AccessViewOnly)
	assert.ErrorIs(t, err, access.ErrValidation)
}

func TestSetDelegatePermissionRequiresDelegate(t *testing.T) {
	registry, accessStore, _ := newRegistry()
	accessStore.On("IsDelegate", testHolograph, testStranger).Return(false, nil)

	err := registry.SetDelegatePermission(testHolograph, testStranger, model.SectionVitalDocuments, model.AccessViewOnly)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSetDelegatePermissionUpserts(t *testing.T) {
	registry, accessStore, _ := newRegistry()
	accessStore.On("IsDelegate", testHolograph, testDelegate).Return(true, nil)
	accessStore.On("SetDelegatePermission", testHolograph, testDelegate, model.SectionFinancialAccounts, model.AccessNone).
		Return(nil)

	require.NoError(t, registry.SetDelegatePermission(testHolograph, testDelegate, model.SectionFinancialAccounts, model.AccessNone))
	accessStore.AssertExpectations(t)
}

func TestIsOwner(t *testing.T) {
	registry, _, holographs := newRegistry()
	holographs.On("Fetch", testHolograph).
		Return(&model.Holograph{ID: testHolograph, OwnerID: testOwner}, nil)

	isOwner, err := registry.IsOwner(testHolograph, testOwner)
	require.NoError(t, err)
	assert.True(t, isOwner)

	isOwner, err = registry.IsOwner(testHolograph, testPrincipal)
	require.NoError(t, err)
	assert.False(t, isOwner)
}
