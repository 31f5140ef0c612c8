package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invest_backend/internal/feature/investors/domain"
	"invest_backend/internal/feature/investors/domain/entity"
)

// mockInvestorRepository はInvestorRepositoryインターフェースのモック実装です。
type mockInvestorRepository struct {
	ListFunc     func(ctx context.Context, offset, limit int) ([]entity.Investor, error)
	CountFunc    func(ctx context.Context) (int64, error)
	FindByIDFunc func(ctx context.Context, investorID string) (*entity.Investor, error)
}

func (m *mockInvestorRepository) List(ctx context.Context, offset, limit int) ([]entity.Investor, error) {
	return m.ListFunc(ctx, offset, limit)
}

func (m *mockInvestorRepository) Count(ctx context.Context) (int64, error) {
	return m.CountFunc(ctx)
}

func (m *mockInvestorRepository) FindByID(ctx context.Context, investorID string) (*entity.Investor, error) {
	return m.FindByIDFunc(ctx, investorID)
}

// mockSummaryReader はCommitmentSummaryReaderインターフェースのモック実装です。
type mockSummaryReader struct {
	SumByInvestorFunc func(ctx context.Context) (map[string]int64, error)
}

func (m *mockSummaryReader) SumByInvestor(ctx context.Context) (map[string]int64, error) {
	return m.SumByInvestorFunc(ctx)
}

func TestInvestorsUsecase_ListInvestors(t *testing.T) {
	t.Parallel()

	sample := []entity.Investor{
		{InvestorID: "id-a", InvestorName: "Acme Fund"},
		{InvestorID: "id-b", InvestorName: "Beta Capital"},
	}

	t.Run("success: returns investors with aggregated totals", func(t *testing.T) {
		t.Parallel()

		var gotOffset, gotLimit int
		repo := &mockInvestorRepository{
			ListFunc: func(ctx context.Context, offset, limit int) ([]entity.Investor, error) {
				gotOffset, gotLimit = offset, limit
				return sample, nil
			},
			CountFunc: func(ctx context.Context) (int64, error) { return 42, nil },
		}
		summaries := &mockSummaryReader{
			SumByInvestorFunc: func(ctx context.Context) (map[string]int64, error) {
				return map[string]int64{"id-a": 600, "id-b": 400}, nil
			},
		}

		uc := NewInvestorsUsecase(repo, summaries)
		res, err := uc.ListInvestors(context.Background(), 2, 5)
		require.NoError(t, err)

		assert.Equal(t, 10, gotOffset, "offset should be page*size")
		assert.Equal(t, 5, gotLimit)
		assert.Equal(t, 2, res.Page)
		assert.Equal(t, 5, res.Size)
		assert.Equal(t, int64(42), res.TotalRecords)
		assert.Equal(t, sample, res.Investors)
		assert.Equal(t, int64(600), res.TotalCommitments["id-a"])
	})

	t.Run("defaults: negative page and zero size are normalized", func(t *testing.T) {
		t.Parallel()

		var gotOffset, gotLimit int
		repo := &mockInvestorRepository{
			ListFunc: func(ctx context.Context, offset, limit int) ([]entity.Investor, error) {
				gotOffset, gotLimit = offset, limit
				return sample, nil
			},
			CountFunc: func(ctx context.Context) (int64, error) { return 2, nil },
		}
		summaries := &mockSummaryReader{
			SumByInvestorFunc: func(ctx context.Context) (map[string]int64, error) {
				return map[string]int64{}, nil
			},
		}

		res, err := NewInvestorsUsecase(repo, summaries).ListInvestors(context.Background(), -1, 0)
		require.NoError(t, err)

		assert.Equal(t, 0, gotOffset)
		assert.Equal(t, 10, gotLimit, "size defaults to 10")
		assert.Equal(t, 0, res.Page)
	})

	t.Run("empty page returns ErrInvestorNotFound", func(t *testing.T) {
		t.Parallel()

		repo := &mockInvestorRepository{
			ListFunc: func(ctx context.Context, offset, limit int) ([]entity.Investor, error) {
				return nil, nil
			},
		}

		_, err := NewInvestorsUsecase(repo, &mockSummaryReader{}).ListInvestors(context.Background(), 99, 10)
		assert.ErrorIs(t, err, domain.ErrInvestorNotFound)
	})

	t.Run("repository error is passed through", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("db down")
		repo := &mockInvestorRepository{
			ListFunc: func(ctx context.Context, offset, limit int) ([]entity.Investor, error) {
				return nil, wantErr
			},
		}

		_, err := NewInvestorsUsecase(repo, &mockSummaryReader{}).ListInvestors(context.Background(), 0, 10)
		assert.ErrorIs(t, err, wantErr)
	})
}

func TestInvestorsUsecase_GetInvestor(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		repo := &mockInvestorRepository{
			FindByIDFunc: func(ctx context.Context, investorID string) (*entity.Investor, error) {
				assert.Equal(t, "id-a", investorID)
				return &entity.Investor{InvestorID: "id-a", InvestorName: "Acme Fund"}, nil
			},
		}

		investor, err := NewInvestorsUsecase(repo, &mockSummaryReader{}).GetInvestor(context.Background(), "id-a")
		require.NoError(t, err)
		assert.Equal(t, "Acme Fund", investor.InvestorName)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		repo := &mockInvestorRepository{
			FindByIDFunc: func(ctx context.Context, investorID string) (*entity.Investor, error) {
				return nil, domain.ErrInvestorNotFound
			},
		}

		_, err := NewInvestorsUsecase(repo, &mockSummaryReader{}).GetInvestor(context.Background(), "missing")
		assert.ErrorIs(t, err, domain.ErrInvestorNotFound)
	})
}
