package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"linkvault/internal/domain/entities"
)

// Each test gets its own named in-memory database; a plain ":memory:" DSN
// would give every pooled connection a separate database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&UserModel{}, &BookmarkModel{}))

	return db
}

func TestUserUpsertCreatesAndOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	first, err := repo.Upsert(ctx, entities.NewUser("Jo", "Doe", "jodoe", "pass"))
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.NotZero(t, first.ID)
	assert.Equal(t, "jodoe", first.Username)

	second, err := repo.Upsert(ctx, entities.NewUser("Joanna", "Doering", "jodoe", "newpass"))
	require.NoError(t, err)
	require.NotNil(t, second)

	// same row, overwritten fields
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Joanna", second.Firstname)
	assert.Equal(t, "Doering", second.Lastname)
	assert.Equal(t, "newpass", second.Password)

	stored, err := repo.FindByUsername(ctx, "jodoe")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "newpass", stored.Password)
}

func TestFindByUsernameMissingReturnsNil(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user, err := repo.FindByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestBookmarkOwnershipScoping(t *testing.T) {
	ctx := context.Background()
	repo := NewBookmarkRepository(newTestDB(t))

	owned, err := repo.Create(ctx, entities.NewBookmark(1, "Aa", "http://x", "1"))
	require.NoError(t, err)
	require.NotZero(t, owned.ID)

	_, err = repo.Create(ctx, entities.NewBookmark(2, "Bb", "http://y", "2"))
	require.NoError(t, err)

	listOne, err := repo.ListByOwner(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, listOne, 1)
	assert.Equal(t, "Aa", listOne[0].Title)

	listTwo, err := repo.ListByOwner(ctx, 2, 10)
	require.NoError(t, err)
	require.Len(t, listTwo, 1)
	assert.Equal(t, "Bb", listTwo[0].Title)

	// user 2 targeting user 1's row matches nothing
	count, err := repo.UpdateOwned(ctx, owned.ID, 2, "stolen", "http://z", "9")
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = repo.DeleteOwned(ctx, owned.ID, 2)
	require.NoError(t, err)
	assert.Zero(t, count)

	// the owner succeeds
	count, err = repo.UpdateOwned(ctx, owned.ID, 1, "renamed", "http://z", "9")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	listOne, err = repo.ListByOwner(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, listOne, 1)
	assert.Equal(t, "renamed", listOne[0].Title)
	assert.Equal(t, "http://z", listOne[0].Link)

	count, err = repo.DeleteOwned(ctx, owned.ID, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestListByOwnerHonorsLimitAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewBookmarkRepository(newTestDB(t))

	for i := 0; i < 12; i++ {
		_, err := repo.Create(ctx, entities.NewBookmark(1, fmt.Sprintf("title-%d", i), "http://x", "1"))
		require.NoError(t, err)
	}

	list, err := repo.ListByOwner(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, list, 10)

	for i := 1; i < len(list); i++ {
		assert.Greater(t, list[i].ID, list[i-1].ID)
	}
	assert.Equal(t, "title-0", list[0].Title)
}
