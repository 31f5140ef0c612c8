// Package adapters はcommitmentsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"invest_backend/internal/feature/commitments/domain"
	"invest_backend/internal/feature/commitments/domain/entity"
	"invest_backend/internal/feature/commitments/usecase"
)

// commitmentGorm はCommitmentRepositoryとSummaryRepositoryのGORM実装です。
type commitmentGorm struct {
	db *gorm.DB
}

var _ usecase.CommitmentRepository = (*commitmentGorm)(nil)
var _ usecase.SummaryRepository = (*commitmentGorm)(nil)

// NewCommitmentRepository は指定されたDB接続でcommitmentGormリポジトリの新しいインスタンスを生成します。
func NewCommitmentRepository(db *gorm.DB) *commitmentGorm {
	return &commitmentGorm{db: db}
}

// filtered applies the optional investor and asset-class filters.
func (r *commitmentGorm) filtered(ctx context.Context, investorID, assetClass string) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&entity.Commitment{})
	if investorID != "" {
		q = q.Where("investor_id = ?", investorID)
	}
	if assetClass != "" {
		q = q.Where("commitment_asset_class = ?", assetClass)
	}
	return q
}

// List は条件に合致するコミットメントをID順にオフセットページングで返します。
func (r *commitmentGorm) List(ctx context.Context, investorID, assetClass string, offset, limit int) ([]entity.Commitment, error) {
	var commitments []entity.Commitment
	if err := r.filtered(ctx, investorID, assetClass).
		Order("commitment_id ASC").
		Offset(offset).
		Limit(limit).
		Find(&commitments).Error; err != nil {
		return nil, err
	}
	return commitments, nil
}

// Count は条件に合致するコミットメントの総件数を返します。
func (r *commitmentGorm) Count(ctx context.Context, investorID, assetClass string) (int64, error) {
	var count int64
	if err := r.filtered(ctx, investorID, assetClass).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByID はIDでコミットメントを1件検索します。見つからない場合は ErrCommitmentNotFound を返します。
func (r *commitmentGorm) FindByID(ctx context.Context, commitmentID string) (*entity.Commitment, error) {
	var commitment entity.Commitment
	if err := r.db.WithContext(ctx).
		Where("commitment_id = ?", commitmentID).
		First(&commitment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCommitmentNotFound
		}
		return nil, err
	}
	return &commitment, nil
}

// groupedSum is the scan target for grouped aggregate queries.
type groupedSum struct {
	Key   string
	Total int64
}

// SumByInvestor は投資家ごとのコミットメント合計額を返します。
func (r *commitmentGorm) SumByInvestor(ctx context.Context) (map[string]int64, error) {
	var rows []groupedSum
	if err := r.db.WithContext(ctx).
		Model(&entity.Commitment{}).
		Select("investor_id AS key, SUM(commitment_amount) AS total").
		Group("investor_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toMap(rows), nil
}

// SumForInvestor は特定投資家のコミットメント合計額を返します。
func (r *commitmentGorm) SumForInvestor(ctx context.Context, investorID string) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Commitment{}).
		Where("investor_id = ?", investorID).
		Select("COALESCE(SUM(commitment_amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// SumByAssetClass は特定投資家のアセットクラス別コミットメント合計額を返します。
func (r *commitmentGorm) SumByAssetClass(ctx context.Context, investorID string) (map[string]int64, error) {
	var rows []groupedSum
	if err := r.db.WithContext(ctx).
		Model(&entity.Commitment{}).
		Where("investor_id = ?", investorID).
		Select("commitment_asset_class AS key, SUM(commitment_amount) AS total").
		Group("commitment_asset_class").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toMap(rows), nil
}

func toMap(rows []groupedSum) map[string]int64 {
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Total
	}
	return out
}
