// Package usecase は投資家クエリのビジネスロジックを実装します。
package usecase

import (
	"context"

	"invest_backend/internal/feature/investors/domain"
	"invest_backend/internal/feature/investors/domain/entity"
	"invest_backend/internal/shared/pagination"
)

// InvestorRepository は投資家データの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type InvestorRepository interface {
	// List はページングされた投資家一覧を返します。
	List(ctx context.Context, offset, limit int) ([]entity.Investor, error)
	// Count は投資家の総件数を返します。
	Count(ctx context.Context) (int64, error)
	// FindByID はIDで投資家を1件検索します。
	FindByID(ctx context.Context, investorID string) (*entity.Investor, error)
}

// CommitmentSummaryReader は投資家ごとのコミットメント合計額を提供します。
// 一覧レスポンスの content_meta に使用します。
type CommitmentSummaryReader interface {
	SumByInvestor(ctx context.Context) (map[string]int64, error)
}

// ListResult は投資家一覧クエリの結果と集計メタデータです。
type ListResult struct {
	Page             int
	Size             int
	TotalRecords     int64
	Investors        []entity.Investor
	TotalCommitments map[string]int64 // investor_id -> sum of commitment amounts
}

// investorsUsecase は投資家クエリのユースケースを定義します。
type investorsUsecase struct {
	investors InvestorRepository
	summaries CommitmentSummaryReader
}

// NewInvestorsUsecase はinvestorsUsecaseの新しいインスタンスを生成します。
func NewInvestorsUsecase(investors InvestorRepository, summaries CommitmentSummaryReader) *investorsUsecase {
	return &investorsUsecase{investors: investors, summaries: summaries}
}

// ListInvestors は指定ページの投資家一覧と投資家ごとの合計額を取得します。
// 該当ページにレコードが1件もない場合は ErrInvestorNotFound を返します。
func (iu *investorsUsecase) ListInvestors(ctx context.Context, page, size int) (*ListResult, error) {
	page, size = pagination.Normalize(page, size)

	investors, err := iu.investors.List(ctx, page*size, size)
	if err != nil {
		return nil, err
	}
	if len(investors) == 0 {
		return nil, domain.ErrInvestorNotFound
	}

	total, err := iu.investors.Count(ctx)
	if err != nil {
		return nil, err
	}

	sums, err := iu.summaries.SumByInvestor(ctx)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Page:             page,
		Size:             size,
		TotalRecords:     total,
		Investors:        investors,
		TotalCommitments: sums,
	}, nil
}

// GetInvestor はIDで投資家を1件取得します。
func (iu *investorsUsecase) GetInvestor(ctx context.Context, investorID string) (*entity.Investor, error) {
	return iu.investors.FindByID(ctx, investorID)
}
