package roles

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/metrorail/docudesk/internal/logger"
	"github.com/metrorail/docudesk/models"
)

type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) GetAll(ctx context.Context) ([]models.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Role), args.Error(1)
}

func (m *MockRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Role), args.Error(1)
}

func (m *MockRepo) GetMaxPosition(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRepo) CreateWithUsers(ctx context.Context, role *models.Role, users []models.User) error {
	args := m.Called(ctx, role, users)
	return args.Error(0)
}

func (m *MockRepo) Update(ctx context.Context, role *models.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRepo) ReplaceUsers(ctx context.Context, role *models.Role, users []models.User) error {
	args := m.Called(ctx, role, users)
	return args.Error(0)
}

func (m *MockRepo) DeleteAndShift(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepo) UpdatePositions(ctx context.Context, orderedIDs []uuid.UUID) error {
	args := m.Called(ctx, orderedIDs)
	return args.Error(0)
}

func (m *MockRepo) GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type ServiceTestSuite struct {
	suite.Suite
	service Service
	repo    *MockRepo
}

func (suite *ServiceTestSuite) SetupTest() {
	suite.repo = &MockRepo{}
	suite.service = NewService(suite.repo, logger.NewNullLogger())
}

func TestRoleService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func orderedRoles(names ...string) []models.Role {
	list := make([]models.Role, len(names))
	for i, name := range names {
		list[i] = models.Role{
			ID:       uuid.New(),
			Name:     name,
			Position: i + 1,
		}
	}
	return list
}

func stateFrom(list []models.Role) []RoleStateItem {
	items := make([]RoleStateItem, len(list))
	for i := range list {
		items[i] = RoleStateItem{RoleID: list[i].ID, Name: list[i].Name}
	}
	return items
}

func (suite *ServiceTestSuite) TestListRoles() {
	list := orderedRoles("Admin", "Editor", "Viewer")
	suite.repo.On("GetAll", mock.Anything).Return(list, nil)

	result, err := suite.service.ListRoles(context.Background())

	suite.NoError(err)
	suite.Len(result, 3)
	suite.Equal("Admin", result[0].Name)
	suite.Equal(1, result[0].Position)
}

func (suite *ServiceTestSuite) TestGetRole_NotFound() {
	id := uuid.New()
	suite.repo.On("GetByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.service.GetRole(context.Background(), id)

	suite.Nil(result)
	suite.ErrorIs(err, models.ErrRecordNotFound)
}

func (suite *ServiceTestSuite) TestCreateRole_AppendsAtEnd() {
	req := &CreateRoleRequest{
		Name:        "Archivist",
		Permissions: models.PermRolesRead,
	}

	suite.repo.On("GetMaxPosition", mock.Anything).Return(4, nil)
	suite.repo.On("CreateWithUsers", mock.Anything, mock.MatchedBy(func(role *models.Role) bool {
		return role.Name == "Archivist" && role.Position == 5
	}), mock.Anything).Return(nil)

	result, err := suite.service.CreateRole(context.Background(), req)

	suite.NoError(err)
	suite.Equal(5, result.Position)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ServiceTestSuite) TestCreateRole_FirstRoleGetsPositionOne() {
	req := &CreateRoleRequest{Name: "Admin"}

	suite.repo.On("GetMaxPosition", mock.Anything).Return(0, nil)
	suite.repo.On("CreateWithUsers", mock.Anything, mock.MatchedBy(func(role *models.Role) bool {
		return role.Position == 1
	}), mock.Anything).Return(nil)

	result, err := suite.service.CreateRole(context.Background(), req)

	suite.NoError(err)
	suite.Equal(1, result.Position)
}

func (suite *ServiceTestSuite) TestCreateRole_InvalidName() {
	suite.repo.On("GetMaxPosition", mock.Anything).Return(0, nil)

	result, err := suite.service.CreateRole(context.Background(), &CreateRoleRequest{Name: "   "})

	suite.Nil(result)
	suite.ErrorIs(err, models.ErrInvalidRoleName)
	suite.repo.AssertNotCalled(suite.T(), "CreateWithUsers", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ServiceTestSuite) TestCreateRole_WithUsers() {
	users := []models.User{
		{ID: uuid.New(), Email: "a@metrorail.example"},
		{ID: uuid.New(), Email: "b@metrorail.example"},
	}
	req := &CreateRoleRequest{
		Name:    "Reviewers",
		UserIDs: []uuid.UUID{users[0].ID, users[1].ID},
	}

	suite.repo.On("GetMaxPosition", mock.Anything).Return(1, nil)
	suite.repo.On("GetUsersByIDs", mock.Anything, req.UserIDs).Return(users, nil)
	suite.repo.On("CreateWithUsers", mock.Anything, mock.Anything, users).Return(nil)

	result, err := suite.service.CreateRole(context.Background(), req)

	suite.NoError(err)
	suite.Len(result.Users, 2)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ServiceTestSuite) TestCreateRole_UnknownUser() {
	req := &CreateRoleRequest{
		Name:    "Reviewers",
		UserIDs: []uuid.UUID{uuid.New(), uuid.New()},
	}

	suite.repo.On("GetMaxPosition", mock.Anything).Return(1, nil)
	suite.repo.On("GetUsersByIDs", mock.Anything, req.UserIDs).
		Return([]models.User{{ID: req.UserIDs[0]}}, nil)

	result, err := suite.service.CreateRole(context.Background(), req)

	suite.Nil(result)
	suite.ErrorIs(err, models.ErrRecordNotFound)
	suite.repo.AssertNotCalled(suite.T(), "CreateWithUsers", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ServiceTestSuite) TestUpdateRole_PartialUpdate() {
	existing := &models.Role{
		ID:          uuid.New(),
		Name:        "Editor",
		Permissions: models.PermRolesRead,
		Position:    2,
	}
	newName := "Senior Editor"

	suite.repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	suite.repo.On("Update", mock.Anything, mock.MatchedBy(func(role *models.Role) bool {
		return role.Name == newName && role.Permissions == models.PermRolesRead
	})).Return(nil)

	result, err := suite.service.UpdateRole(context.Background(), existing.ID, &UpdateRoleRequest{Name: &newName})

	suite.NoError(err)
	suite.Equal(newName, result.Name)
	suite.Equal(2, result.Position)
	suite.repo.AssertNotCalled(suite.T(), "ReplaceUsers", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ServiceTestSuite) TestUpdateRole_ClearUsers() {
	existing := &models.Role{ID: uuid.New(), Name: "Editor", Position: 1}
	empty := []uuid.UUID{}

	suite.repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	suite.repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	suite.repo.On("ReplaceUsers", mock.Anything, mock.Anything, []models.User{}).Return(nil)

	result, err := suite.service.UpdateRole(context.Background(), existing.ID, &UpdateRoleRequest{UserIDs: &empty})

	suite.NoError(err)
	suite.Empty(result.Users)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ServiceTestSuite) TestDeleteRole_ReturnsPriorState() {
	existing := &models.Role{ID: uuid.New(), Name: "Viewer", Position: 3}

	suite.repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	suite.repo.On("DeleteAndShift", mock.Anything, existing.ID).Return(nil)

	result, err := suite.service.DeleteRole(context.Background(), existing.ID)

	suite.NoError(err)
	suite.Equal("Viewer", result.Name)
	suite.Equal(3, result.Position)
}

func (suite *ServiceTestSuite) TestDeleteRole_NotFound() {
	id := uuid.New()
	suite.repo.On("GetByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.service.DeleteRole(context.Background(), id)

	suite.Nil(result)
	suite.ErrorIs(err, models.ErrRecordNotFound)
}

func (suite *ServiceTestSuite) TestReorderRoles_Success() {
	current := orderedRoles("Admin", "Editor", "Viewer")
	reordered := []models.Role{current[2], current[0], current[1]}

	req := &ReorderRolesRequest{
		InitialState: stateFrom(current),
		UpdatedState: stateFrom(reordered),
	}
	wantIDs := []uuid.UUID{current[2].ID, current[0].ID, current[1].ID}

	suite.repo.On("GetAll", mock.Anything).Return(current, nil).Once()
	suite.repo.On("UpdatePositions", mock.Anything, wantIDs).Return(nil)
	suite.repo.On("GetAll", mock.Anything).Return(reordered, nil).Once()

	result, err := suite.service.ReorderRoles(context.Background(), req)

	suite.NoError(err)
	suite.Len(result, 3)
	suite.Equal(current[2].ID, result[0].ID)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ServiceTestSuite) TestReorderRoles_StaleInitialState() {
	// The client captured [Admin, Editor] but another session already swapped
	// them. No positions may be written.
	current := orderedRoles("Admin", "Editor")
	stale := []models.Role{current[1], current[0]}

	req := &ReorderRolesRequest{
		InitialState: stateFrom(stale),
		UpdatedState: stateFrom(stale),
	}

	suite.repo.On("GetAll", mock.Anything).Return(current, nil)

	result, err := suite.service.ReorderRoles(context.Background(), req)

	suite.Nil(result)
	suite.ErrorIs(err, models.ErrRoleOrderConflict)
	suite.repo.AssertNotCalled(suite.T(), "UpdatePositions", mock.Anything, mock.Anything)
}

func (suite *ServiceTestSuite) TestReorderRoles_LengthMismatch() {
	current := orderedRoles("Admin", "Editor", "Viewer")

	req := &ReorderRolesRequest{
		InitialState: stateFrom(current[:2]),
		UpdatedState: stateFrom(current[:2]),
	}

	suite.repo.On("GetAll", mock.Anything).Return(current, nil)

	result, err := suite.service.ReorderRoles(context.Background(), req)

	suite.Nil(result)
	suite.ErrorIs(err, models.ErrRoleOrderConflict)
	suite.repo.AssertNotCalled(suite.T(), "UpdatePositions", mock.Anything, mock.Anything)
}

func (suite *ServiceTestSuite) TestReorderRoles_RoleVanishedDuringWrite() {
	current := orderedRoles("Admin", "Editor")

	req := &ReorderRolesRequest{
		InitialState: stateFrom(current),
		UpdatedState: stateFrom([]models.Role{current[1], current[0]}),
	}

	suite.repo.On("GetAll", mock.Anything).Return(current, nil)
	suite.repo.On("UpdatePositions", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound)

	result, err := suite.service.ReorderRoles(context.Background(), req)

	suite.Nil(result)
	suite.ErrorIs(err, models.ErrRoleOrderConflict)
}

func (suite *ServiceTestSuite) TestReorderRoles_SingleRoleNoOp() {
	current := orderedRoles("Admin")

	req := &ReorderRolesRequest{
		InitialState: stateFrom(current),
		UpdatedState: stateFrom(current),
	}

	suite.repo.On("GetAll", mock.Anything).Return(current, nil)
	suite.repo.On("UpdatePositions", mock.Anything, []uuid.UUID{current[0].ID}).Return(nil)

	result, err := suite.service.ReorderRoles(context.Background(), req)

	suite.NoError(err)
	suite.Len(result, 1)
}

func (suite *ServiceTestSuite) TestCreateRole_DuplicateUserIDs() {
	id := uuid.New()
	req := &CreateRoleRequest{
		Name:    "Reviewers",
		UserIDs: []uuid.UUID{id, id},
	}

	suite.repo.On("GetMaxPosition", mock.Anything).Return(0, nil)

	result, err := suite.service.CreateRole(context.Background(), req)

	suite.Nil(result)
	suite.ErrorIs(err, models.ErrDuplicateUserIDs)
	suite.repo.AssertNotCalled(suite.T(), "CreateWithUsers", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ServiceTestSuite) TestReorderRoles_DuplicateUpdatedIDs() {
	current := orderedRoles("Admin", "Editor")

	req := &ReorderRolesRequest{
		InitialState: stateFrom(current),
		UpdatedState: []RoleStateItem{
			{RoleID: current[0].ID},
			{RoleID: current[0].ID},
		},
	}

	suite.repo.On("GetAll", mock.Anything).Return(current, nil)

	result, err := suite.service.ReorderRoles(context.Background(), req)

	suite.Nil(result)
	suite.ErrorIs(err, models.ErrRoleOrderConflict)
	suite.repo.AssertNotCalled(suite.T(), "UpdatePositions", mock.Anything, mock.Anything)
}
