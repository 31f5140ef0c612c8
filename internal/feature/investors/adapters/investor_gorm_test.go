package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	commitmententity "invest_backend/internal/feature/commitments/domain/entity"
	"invest_backend/internal/feature/investors/domain"
	"invest_backend/internal/feature/investors/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database with foreign keys enabled.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// in-memory database lives on a single connection
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&entity.Investor{}, &commitmententity.Commitment{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// seedInvestor creates a test investor in the database.
func seedInvestor(t *testing.T, db *gorm.DB, id, name string) *entity.Investor {
	t.Helper()

	investor := &entity.Investor{
		InvestorID:          id,
		InvestorName:        name,
		InvestoryType:       "fund manager",
		InvestorCountry:     "United Kingdom",
		InvestorDateAdded:   "2020-01-01",
		InvestorLastUpdated: "2020-01-01",
	}
	err := db.Create(investor).Error
	require.NoError(t, err, "failed to seed investor")

	return investor
}

// seedCommitment creates a test commitment referencing an existing investor.
func seedCommitment(t *testing.T, db *gorm.DB, id, investorID string, amount int64) *commitmententity.Commitment {
	t.Helper()

	commitment := &commitmententity.Commitment{
		CommitmentID:         id,
		CommitmentAssetClass: "Infrastructure",
		CommitmentAmount:     amount,
		CommitmentCurrency:   "GBP",
		InvestorID:           investorID,
	}
	err := db.Create(commitment).Error
	require.NoError(t, err, "failed to seed commitment")

	return commitment
}

func TestNewInvestorRepository(t *testing.T) {
	db := setupTestDB(t)

	repo := NewInvestorRepository(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestInvestorGorm_List(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewInvestorRepository(db)

	seedInvestor(t, db, "id-c", "Cushon Master Trust")
	seedInvestor(t, db, "id-a", "Acme Fund")
	seedInvestor(t, db, "id-b", "Beta Capital")

	ctx := context.Background()

	t.Run("returns investors ordered by name", func(t *testing.T) {
		investors, err := repo.List(ctx, 0, 10)
		require.NoError(t, err)

		require.Len(t, investors, 3)
		assert.Equal(t, "Acme Fund", investors[0].InvestorName)
		assert.Equal(t, "Beta Capital", investors[1].InvestorName)
		assert.Equal(t, "Cushon Master Trust", investors[2].InvestorName)
	})

	t.Run("applies offset and limit", func(t *testing.T) {
		investors, err := repo.List(ctx, 1, 1)
		require.NoError(t, err)

		require.Len(t, investors, 1)
		assert.Equal(t, "Beta Capital", investors[0].InvestorName)
	})

	t.Run("offset past the end returns empty slice", func(t *testing.T) {
		investors, err := repo.List(ctx, 10, 10)
		require.NoError(t, err)

		assert.Empty(t, investors)
	})
}

func TestInvestorGorm_Count(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewInvestorRepository(db)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	seedInvestor(t, db, "id-a", "Acme Fund")
	seedInvestor(t, db, "id-b", "Beta Capital")

	count, err = repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestInvestorGorm_FindByID(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewInvestorRepository(db)
	seedInvestor(t, db, "id-a", "Acme Fund")

	t.Run("returns the investor", func(t *testing.T) {
		investor, err := repo.FindByID(context.Background(), "id-a")
		require.NoError(t, err)

		assert.Equal(t, "Acme Fund", investor.InvestorName)
		assert.Equal(t, "fund manager", investor.InvestoryType)
	})

	t.Run("unknown id returns ErrInvestorNotFound", func(t *testing.T) {
		_, err := repo.FindByID(context.Background(), "missing")
		assert.ErrorIs(t, err, domain.ErrInvestorNotFound)
	})
}

func TestInvestorGorm_NameByID(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewInvestorRepository(db)
	seedInvestor(t, db, "id-a", "Acme Fund")

	name, err := repo.NameByID(context.Background(), "id-a")
	require.NoError(t, err)
	assert.Equal(t, "Acme Fund", name)

	_, err = repo.NameByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrInvestorNotFound)
}

func TestInvestorGorm_Delete_CascadesToCommitments(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewInvestorRepository(db)

	seedInvestor(t, db, "id-a", "Acme Fund")
	seedInvestor(t, db, "id-b", "Beta Capital")
	seedCommitment(t, db, "c-1", "id-a", 100)
	seedCommitment(t, db, "c-2", "id-a", 200)
	seedCommitment(t, db, "c-3", "id-b", 300)

	err := repo.Delete(context.Background(), "id-a")
	require.NoError(t, err)

	var investorCount int64
	db.Model(&entity.Investor{}).Count(&investorCount)
	assert.Equal(t, int64(1), investorCount, "only the deleted investor should be gone")

	// deleting the investor removes its commitments through the foreign key
	var commitmentCount int64
	db.Model(&commitmententity.Commitment{}).Count(&commitmentCount)
	assert.Equal(t, int64(1), commitmentCount, "commitments of the deleted investor should cascade")

	var remaining commitmententity.Commitment
	require.NoError(t, db.First(&remaining).Error)
	assert.Equal(t, "c-3", remaining.CommitmentID)
}
