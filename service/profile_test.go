package service

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"Persona/dao"
	"Persona/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newService(t *testing.T) (*ProfileService, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return &ProfileService{UserDao: dao.NewUsers(gdb)}, mock
}

func userColumns() []string {
	return []string{"id", "username", "email", "phone", "gender", "birthday", "avatar", "created_at", "updated_at"}
}

func TestGetFormatsBirthdayAsDate(t *testing.T) {
	svc, mock := newService(t)

	birthday := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(1, "Alice", "alice@example.com", "13888888888", 0, birthday, "data:image/png;base64,QUJD", time.Now(), time.Now()))

	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	require.NotNil(t, resp.Birthday)
	assert.Equal(t, "1990-04-12", *resp.Birthday)
	require.NotNil(t, resp.Avatar)
	assert.Equal(t, "data:image/png;base64,QUJD", *resp.Avatar)
}

func TestGetOmitsAbsentBirthday(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(2, "Bob", "bob@example.com", nil, nil, nil, nil, time.Now(), time.Now()))

	resp, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, resp.Birthday)
	assert.Nil(t, resp.Phone)
	assert.Nil(t, resp.Gender)
}

func TestGetMissingRow(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := svc.Get(context.Background(), 9)
	assert.ErrorIs(t, err, dao.ErrNotFound)
}

func TestUpdatePersistsProvidedFieldsOnly(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	phone := "13888888888"
	birthday := "1990-04-12"
	err := svc.Update(context.Background(), 1, &types.UpdateProfileReq{
		Username: "Alice",
		Email:    "alice@example.com",
		Phone:    &phone,
		Birthday: &birthday,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRejectsUnparseableBirthday(t *testing.T) {
	svc, mock := newService(t)

	bad := "12/04/1990"
	err := svc.Update(context.Background(), 1, &types.UpdateProfileReq{
		Username: "Alice",
		Email:    "alice@example.com",
		Birthday: &bad,
	})

	var ve *dao.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Birthday is invalid", ve.Message)
	// no statement should have reached the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUploadAvatarBuildsDataURI(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	content := []byte("png-bytes")
	avatar, err := svc.UploadAvatar(context.Background(), 1, "image/png", content)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(content), avatar)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUploadAvatarMissingRow(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	_, err := svc.UploadAvatar(context.Background(), 404, "image/png", []byte("x"))
	assert.ErrorIs(t, err, dao.ErrNotFound)
}
