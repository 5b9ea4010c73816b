package roles

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/metrorail/docudesk/models"
)

// Transaction-path tests run against sqlmock so rollback behavior can be
// asserted without a live database.

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewRepository(db), mock
}

func TestUpdatePositions_CommitsAllRows(t *testing.T) {
	repo, mock := newMockRepo(t)
	first, second := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "roles" SET "position"=\$1 WHERE id = \$2`).
		WithArgs(1, first).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "roles" SET "position"=\$1 WHERE id = \$2`).
		WithArgs(2, second).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdatePositions(context.Background(), []uuid.UUID{first, second})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePositions_RollsBackWhenRoleMissing(t *testing.T) {
	repo, mock := newMockRepo(t)
	first, missing := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "roles" SET "position"=\$1 WHERE id = \$2`).
		WithArgs(1, first).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "roles" SET "position"=\$1 WHERE id = \$2`).
		WithArgs(2, missing).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.UpdatePositions(context.Background(), []uuid.UUID{first, missing})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAndShift_DeletesThenRenumbers(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`DELETE FROM "roles" WHERE id = \$1 RETURNING "position"`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"position"}).AddRow(2))
	mock.ExpectExec(`UPDATE "roles" SET "position"=position - 1 WHERE position > \$1`).
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := repo.DeleteAndShift(context.Background(), id)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The shift pivot must be the position the DELETE observed, so a reorder
// committing after the caller last read the role cannot leave duplicate or
// gapped positions behind.
func TestDeleteAndShift_ShiftsFromDeletedRowPosition(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`DELETE FROM "roles" WHERE id = \$1 RETURNING "position"`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"position"}).AddRow(5))
	mock.ExpectExec(`UPDATE "roles" SET "position"=position - 1 WHERE position > \$1`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.DeleteAndShift(context.Background(), id)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAndShift_RollsBackWhenRoleAlreadyGone(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`DELETE FROM "roles" WHERE id = \$1 RETURNING "position"`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"position"}))
	mock.ExpectRollback()

	err := repo.DeleteAndShift(context.Background(), id)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failure while attaching members must roll the role insert back too.
func TestCreateWithUsers_RollsBackWhenAttachFails(t *testing.T) {
	repo, mock := newMockRepo(t)
	member := models.User{ID: uuid.New(), Email: "member@metrorail.example"}
	role := &models.Role{Name: "Reviewers", Permissions: models.PermRolesRead, Position: 1}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "roles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectExec(`UPDATE "roles" SET "updated_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.CreateWithUsers(context.Background(), role, []models.User{member})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
