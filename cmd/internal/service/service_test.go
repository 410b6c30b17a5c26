package service

import (
	"testing"

	"campusnotes/cmd/internal/courses"
	"campusnotes/cmd/internal/domain/entity"
	"campusnotes/cmd/internal/domain/sqlite"
	"campusnotes/cmd/internal/utils/uid"
	"campusnotes/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := sqlite.InitMemory()
	require.NoError(t, err)
	return db
}

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()

	validate := validator.New()
	require.NoError(t, validators.Register(validate))
	return validate
}

func testCatalog(t *testing.T) *courses.Catalog {
	t.Helper()
	// A missing file yields the built-in fallback catalog.
	return courses.Load("does-not-exist.json")
}

func seedUser(t *testing.T, db *gorm.DB, sub, email string, admin bool) *entity.User {
	t.Helper()

	user := &entity.User{
		SubUUID:       sub,
		Username:      email,
		Email:         email,
		EmailVerified: true,
		Admin:         admin,
		Active:        true,
		CreatedAt:     1700000000000,
		UpdatedAt:     1700000000000,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedNote(t *testing.T, db *gorm.DB, owner *entity.User, title, body, course, tags string, createdAt int64) *entity.Note {
	t.Helper()

	note := &entity.Note{
		Author:     owner.Email,
		OwnerSub:   owner.SubUUID,
		Title:      title,
		Body:       body,
		CourseCode: course,
		Tags:       tags,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
	require.NoError(t, db.Create(note).Error)
	return note
}

// fakeS3 records the keys it holds; good enough to observe upload and
// delete ordering from the note service.
type fakeS3 struct {
	objects map[string][]byte
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string][]byte)}
}

func (f *fakeS3) UploadFile(data []byte, key string) error {
	f.objects[key] = data
	return nil
}

func (f *fakeS3) DownloadFile(key string) ([]byte, error) {
	return f.objects[key], nil
}

func (f *fakeS3) DeleteFile(key string) error {
	delete(f.objects, key)
	return nil
}

func TestMain(m *testing.M) {
	uid.Init(1)
	m.Run()
}
