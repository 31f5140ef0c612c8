// Package usecase はコミットメントクエリのビジネスロジックを実装します。
package usecase

import (
	"context"

	"invest_backend/internal/feature/commitments/domain"
	"invest_backend/internal/feature/commitments/domain/entity"
	"invest_backend/internal/shared/pagination"
)

// AssetClassAll はアセットクラスフィルタなしを意味するクエリ値です。
const AssetClassAll = "all"

// CommitmentRepository はコミットメントデータの読み取りレイヤーを抽象化します。
// investorID と assetClass が空文字列の場合、そのフィルタは適用されません。
type CommitmentRepository interface {
	List(ctx context.Context, investorID, assetClass string, offset, limit int) ([]entity.Commitment, error)
	Count(ctx context.Context, investorID, assetClass string) (int64, error)
	FindByID(ctx context.Context, commitmentID string) (*entity.Commitment, error)
}

// SummaryRepository はコミットメント金額の集計クエリを抽象化します。
// Redisキャッシュのデコレータはこのインターフェースを実装します。
type SummaryRepository interface {
	// SumByInvestor returns the grouped sum of commitment amounts per investor.
	SumByInvestor(ctx context.Context) (map[string]int64, error)
	// SumForInvestor returns the total commitment amount of one investor.
	SumForInvestor(ctx context.Context, investorID string) (int64, error)
	// SumByAssetClass returns one investor's amounts grouped by asset class.
	SumByAssetClass(ctx context.Context, investorID string) (map[string]int64, error)
}

// InvestorNameReader は投資家名の解決を抽象化します（investorsフィーチャーのアダプタが実装）。
type InvestorNameReader interface {
	NameByID(ctx context.Context, investorID string) (string, error)
}

// ListResult はコミットメント一覧クエリの結果です。
type ListResult struct {
	Page         int
	Size         int
	TotalRecords int64
	Commitments  []entity.Commitment
}

// InvestorCommitmentsResult は特定投資家のコミットメント一覧と集計メタデータです。
type InvestorCommitmentsResult struct {
	Page              int
	Size              int
	TotalRecords      int64
	Commitments       []entity.Commitment
	InvestorName      string
	TotalCommitment   int64
	TotalByAssetClass map[string]int64
}

// commitmentsUsecase はコミットメントクエリのユースケースを定義します。
type commitmentsUsecase struct {
	commitments CommitmentRepository
	summaries   SummaryRepository
	names       InvestorNameReader
}

// NewCommitmentsUsecase はcommitmentsUsecaseの新しいインスタンスを生成します。
func NewCommitmentsUsecase(commitments CommitmentRepository, summaries SummaryRepository, names InvestorNameReader) *commitmentsUsecase {
	return &commitmentsUsecase{commitments: commitments, summaries: summaries, names: names}
}

// ListCommitments は指定ページの全コミットメント一覧を取得します。
func (cu *commitmentsUsecase) ListCommitments(ctx context.Context, page, size int) (*ListResult, error) {
	page, size = pagination.Normalize(page, size)

	commitments, err := cu.commitments.List(ctx, "", "", page*size, size)
	if err != nil {
		return nil, err
	}
	if len(commitments) == 0 {
		return nil, domain.ErrCommitmentNotFound
	}

	total, err := cu.commitments.Count(ctx, "", "")
	if err != nil {
		return nil, err
	}

	return &ListResult{Page: page, Size: size, TotalRecords: total, Commitments: commitments}, nil
}

// GetCommitment はIDでコミットメントを1件取得します。
func (cu *commitmentsUsecase) GetCommitment(ctx context.Context, commitmentID string) (*entity.Commitment, error) {
	return cu.commitments.FindByID(ctx, commitmentID)
}

// ListByInvestor は特定投資家のコミットメント一覧を取得します。
// assetClass が "all" または空の場合はフィルタしません。
// 集計メタデータ（合計額・アセットクラス別合計）は常にフィルタなしで計算します。
func (cu *commitmentsUsecase) ListByInvestor(ctx context.Context, investorID, assetClass string, page, size int) (*InvestorCommitmentsResult, error) {
	page, size = pagination.Normalize(page, size)

	name, err := cu.names.NameByID(ctx, investorID)
	if err != nil {
		return nil, err
	}

	filter := assetClass
	if filter == AssetClassAll || filter == "" {
		filter = ""
	}

	commitments, err := cu.commitments.List(ctx, investorID, filter, page*size, size)
	if err != nil {
		return nil, err
	}
	if len(commitments) == 0 {
		return nil, domain.ErrCommitmentNotFound
	}

	total, err := cu.commitments.Count(ctx, investorID, filter)
	if err != nil {
		return nil, err
	}

	sum, err := cu.summaries.SumForInvestor(ctx, investorID)
	if err != nil {
		return nil, err
	}

	byAssetClass, err := cu.summaries.SumByAssetClass(ctx, investorID)
	if err != nil {
		return nil, err
	}

	return &InvestorCommitmentsResult{
		Page:              page,
		Size:              size,
		TotalRecords:      total,
		Commitments:       commitments,
		InvestorName:      name,
		TotalCommitment:   sum,
		TotalByAssetClass: byAssetClass,
	}, nil
}
