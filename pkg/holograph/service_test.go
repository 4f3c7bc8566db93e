package holograph_test

import (
	"context"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ankush-tewari/holograph/pkg/access"
	"github.com/ankush-tewari/holograph/pkg/audit"
	"github.com/ankush-tewari/holograph/pkg/holograph"
	"github.com/ankush-tewari/holograph/pkg/keys"
	"github.com/ankush-tewari/holograph/pkg/model"
	"github.com/ankush-tewari/holograph/pkg/objectstore"
	"github.com/ankush-tewari/holograph/pkg/store"
	"github.com/ankush-tewari/holograph/pkg/store/storetest"
)

const testOwner = "user-owner"

func TestMain(m *testing.M) {
	audit.SetEnabled(false)
	os.Exit(m.Run())
}

type fixtures struct {
	holographs  *storetest.MockHolographsStore
	accessStore *storetest.MockAccessStore
	users       *storetest.MockUsersStore
	objects     objectstore.Store
	keyManager  *keys.Manager
	service     *holograph.Service
}

func newFixtures() *fixtures {
	f := &fixtures{
		holographs:  storetest.NewMockHolographsStore(),
		accessStore: storetest.NewMockAccessStore(),
		users:       storetest.NewMockUsersStore(),
	}
	f.objects = objectstore.NewFsStore(afero.NewMemMapFs())
	f.keyManager = keys.NewManager(f.objects)
	registry := access.NewRegistry(f.accessStore, f.holographs)
	f.service = holograph.NewService(registry, f.holographs, f.users, f.keyManager)
	return f
}

func TestCreateProvisionsKeys(t *testing.T) {
	f := newFixtures()
	f.users.On("ByID", testOwner).Return(&model.User{ID: testOwner}, nil)

	var created *model.Holograph
	f.holographs.On("CreateWithOwner", mock.AnythingOfType("*model.Holograph")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*model.Holograph)
		}).
		Return(nil)

	h, err := f.service.Create(context.Background(), testOwner, "Mom's estate")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, testOwner, h.OwnerID)
	assert.Equal(t, "Mom's estate", h.Title)
	assert.NotEmpty(t, h.ID)

	// Key paths are recorded on the row and the material exists.
	publicKey, privateKey, symmetricKey := keys.MaterialPaths(h.ID)
	assert.Equal(t, publicKey, h.PublicKeyPath)
	assert.Equal(t, privateKey, h.PrivateKeyPath)
	assert.Equal(t, symmetricKey, h.SymmetricKeyPath)

	exists, err := f.keyManager.Exists(context.Background(), h.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCreateRequiresTitle(t *testing.T) {
	f := newFixtures()

	_, err := f.service.Create(context.Background(), testOwner, "")
	assert.ErrorIs(t, err, access.ErrValidation)
}

func TestCreateRequiresRegisteredOwner(t *testing.T) {
	f := newFixtures()
	f.users.On("ByID", "user-ghost").Return(nil, store.ErrNotFound)

	_, err := f.service.Create(context.Background(), "user-ghost", "Estate")
	assert.ErrorIs(t, err, store.ErrNotFound)
	f.holographs.AssertNotCalled(t, "CreateWithOwner")
}

func TestFetchRequiresMembership(t *testing.T) {
	f := newFixtures()
	f.accessStore.On("IsPrincipal", "holo-1", "user-stranger").Return(false, nil)
	f.accessStore.On("IsDelegate", "holo-1", "user-stranger").Return(false, nil)

	_, err := f.service.Fetch("holo-1", "user-stranger")
	assert.ErrorIs(t, err, access.ErrDenied)
}

func TestFetchAllowsDelegate(t *testing.T) {
	f := newFixtures()
	f.accessStore.On("IsPrincipal", "holo-1", "user-delegate").Return(false, nil)
	f.accessStore.On("IsDelegate", "holo-1", "user-delegate").Return(true, nil)
	f.holographs.On("Fetch", "holo-1").
		Return(&model.Holograph{ID: "holo-1", OwnerID: testOwner}, nil)

	h, err := f.service.Fetch("holo-1", "user-delegate")
	require.NoError(t, err)
	assert.Equal(t, "holo-1", h.ID)
}

func TestOwnershipHistoryPrincipalsOnly(t *testing.T) {
	f := newFixtures()
	f.accessStore.On("IsPrincipal", "holo-1", testOwner).Return(true, nil)
	f.accessStore.On("IsPrincipal", "holo-1", "user-delegate").Return(false, nil)
	f.holographs.On("OwnershipAudit", "holo-1").
		Return([]model.OwnershipAudit{{HolographID: "holo-1", OldOwnerID: testOwner, NewOwnerID: "user-2"}}, nil)

	history, err := f.service.OwnershipHistory("holo-1", testOwner)
	require.NoError(t, err)
	require.Len(t, history, 1)

	_, err = f.service.OwnershipHistory("holo-1", "user-delegate")
	assert.ErrorIs(t, err, access.ErrDenied)
}
