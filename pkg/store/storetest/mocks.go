// Package storetest provides testify mocks for the store interfaces,
// shared by the service and endpoint tests.
package storetest

import (
	"github.com/stretchr/testify/mock"

	"github.com/ankush-tewari/holograph/pkg/model"
	"github.com/ankush-tewari/holograph/pkg/store"
)

// MockHolographsStore implements store.HolographsStore using testify/mock
type MockHolographsStore struct {
	mock.Mock
}

var _ store.HolographsStore = (*MockHolographsStore)(nil)

func NewMockHolographsStore() *MockHolographsStore {
	return &MockHolographsStore{}
}

func (m *MockHolographsStore) CreateWithOwner(holograph *model.Holograph) error {
	args := m.Called(holograph)
	return args.Error(0)
}

func (m *MockHolographsStore) Fetch(id string) (*model.Holograph, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Holograph), args.Error(1)
}

func (m *MockHolographsStore) TransferOwnership(holographID, newOwnerID string) (string, error) {
	args := m.Called(holographID, newOwnerID)
	return args.String(0), args.Error(1)
}

func (m *MockHolographsStore) OwnershipAudit(holographID string) ([]model.OwnershipAudit, error) {
	args := m.Called(holographID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OwnershipAudit), args.Error(1)
}

// MockAccessStore implements store.AccessStore using testify/mock
type MockAccessStore struct {
	mock.Mock
}

var _ store.AccessStore = (*MockAccessStore)(nil)

func NewMockAccessStore() *MockAccessStore {
	return &MockAccessStore{}
}

func (m *MockAccessStore) IsPrincipal(holographID, userID string) (bool, error) {
	args := m.Called(holographID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccessStore) IsDelegate(holographID, userID string) (bool, error) {
	args := m.Called(holographID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccessStore) CountPrincipals(holographID string) (int, error) {
	args := m.Called(holographID)
	return args.Int(0), args.Error(1)
}

func (m *MockAccessStore) DelegatePermission(holographID, userID, sectionID string) (string, error) {
	args := m.Called(holographID, userID, sectionID)
	return args.String(0), args.Error(1)
}

func (m *MockAccessStore) AddPrincipal(holographID, userID string) error {
	args := m.Called(holographID, userID)
	return args.Error(0)
}

func (m *MockAccessStore) RemovePrincipal(holographID, userID string) error {
	args := m.Called(holographID, userID)
	return args.Error(0)
}

func (m *MockAccessStore) AddDelegate(holographID, userID string) error {
	args := m.Called(holographID, userID)
	return args.Error(0)
}

func (m *MockAccessStore) RemoveDelegate(holographID, userID string) error {
	args := m.Called(holographID, userID)
	return args.Error(0)
}

func (m *MockAccessStore) SetDelegatePermission(holographID, userID, sectionID, accessLevel string) error {
	args := m.Called(holographID, userID, sectionID, accessLevel)
	return args.Error(0)
}

// MockInvitationsStore implements store.InvitationsStore using testify/mock
type MockInvitationsStore struct {
	mock.Mock
}

var _ store.InvitationsStore = (*MockInvitationsStore)(nil)

func NewMockInvitationsStore() *MockInvitationsStore {
	return &MockInvitationsStore{}
}

func (m *MockInvitationsStore) Create(invitation *model.Invitation) error {
	args := m.Called(invitation)
	return args.Error(0)
}

func (m *MockInvitationsStore) Fetch(id string) (*model.Invitation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invitation), args.Error(1)
}

func (m *MockInvitationsStore) HasPendingForEmail(holographID, email string) (bool, error) {
	args := m.Called(holographID, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvitationsStore) Accept(invitation *model.Invitation, userID string) error {
	args := m.Called(invitation, userID)
	return args.Error(0)
}

func (m *MockInvitationsStore) Decline(invitation *model.Invitation) error {
	args := m.Called(invitation)
	return args.Error(0)
}

// MockRemovalsStore implements store.RemovalsStore using testify/mock
type MockRemovalsStore struct {
	mock.Mock
}

var _ store.RemovalsStore = (*MockRemovalsStore)(nil)

func NewMockRemovalsStore() *MockRemovalsStore {
	return &MockRemovalsStore{}
}

func (m *MockRemovalsStore) Create(removal *model.PendingPrincipalRemoval) error {
	args := m.Called(removal)
	return args.Error(0)
}

func (m *MockRemovalsStore) Fetch(id string) (*model.PendingPrincipalRemoval, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PendingPrincipalRemoval), args.Error(1)
}

func (m *MockRemovalsStore) Accept(removal *model.PendingPrincipalRemoval) error {
	args := m.Called(removal)
	return args.Error(0)
}

func (m *MockRemovalsStore) Decline(removal *model.PendingPrincipalRemoval) error {
	args := m.Called(removal)
	return args.Error(0)
}

// MockUsersStore implements store.UsersStore using testify/mock
type MockUsersStore struct {
	mock.Mock
}

var _ store.UsersStore = (*MockUsersStore)(nil)

func NewMockUsersStore() *MockUsersStore {
	return &MockUsersStore{}
}

func (m *MockUsersStore) ByID(id string) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) ByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// MockHealthStore implements store.HealthStore using testify/mock
type MockHealthStore struct {
	mock.Mock
}

var _ store.HealthStore = (*MockHealthStore)(nil)

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}

// MockRecordsStore implements store.RecordsStore using testify/mock
type MockRecordsStore struct {
	mock.Mock
}

var _ store.RecordsStore = (*MockRecordsStore)(nil)

func NewMockRecordsStore() *MockRecordsStore {
	return &MockRecordsStore{}
}

func (m *MockRecordsStore) CreateVitalDocument(doc *model.VitalDocument) error {
	args := m.Called(doc)
	return args.Error(0)
}

func (m *MockRecordsStore) FetchVitalDocument(holographID, id string) (*model.VitalDocument, error) {
	args := m.Called(holographID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VitalDocument), args.Error(1)
}

func (m *MockRecordsStore) ListVitalDocuments(holographID string) ([]model.VitalDocument, error) {
	args := m.Called(holographID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VitalDocument), args.Error(1)
}

func (m *MockRecordsStore) SetVitalDocumentFile(holographID, id string, filePath *string) error {
	args := m.Called(holographID, id, filePath)
	return args.Error(0)
}

func (m *MockRecordsStore) DeleteVitalDocument(holographID, id string) error {
	args := m.Called(holographID, id)
	return args.Error(0)
}

func (m *MockRecordsStore) CreateFinancialAccount(account *model.FinancialAccount) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockRecordsStore) FetchFinancialAccount(holographID, id string) (*model.FinancialAccount, error) {
	args := m.Called(holographID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FinancialAccount), args.Error(1)
}

func (m *MockRecordsStore) ListFinancialAccounts(holographID string) ([]model.FinancialAccount, error) {
	args := m.Called(holographID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FinancialAccount), args.Error(1)
}
