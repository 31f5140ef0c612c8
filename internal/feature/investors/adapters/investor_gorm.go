// Package adapters はinvestorsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"invest_backend/internal/feature/investors/domain"
	"invest_backend/internal/feature/investors/domain/entity"
	"invest_backend/internal/feature/investors/usecase"
)

// investorGorm はInvestorRepositoryインターフェースのGORM実装です。
type investorGorm struct {
	db *gorm.DB
}

var _ usecase.InvestorRepository = (*investorGorm)(nil)

// NewInvestorRepository は指定されたDB接続でinvestorGormリポジトリの新しいインスタンスを生成します。
func NewInvestorRepository(db *gorm.DB) *investorGorm {
	return &investorGorm{db: db}
}

// List は投資家名順に投資家をオフセットページングで返します。
func (r *investorGorm) List(ctx context.Context, offset, limit int) ([]entity.Investor, error) {
	var investors []entity.Investor
	if err := r.db.WithContext(ctx).
		Order("investor_name ASC").
		Offset(offset).
		Limit(limit).
		Find(&investors).Error; err != nil {
		return nil, err
	}
	return investors, nil
}

// Count は投資家の総件数を返します。
func (r *investorGorm) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Investor{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByID はIDで投資家を1件検索します。見つからない場合は ErrInvestorNotFound を返します。
func (r *investorGorm) FindByID(ctx context.Context, investorID string) (*entity.Investor, error) {
	var investor entity.Investor
	if err := r.db.WithContext(ctx).
		Where("investor_id = ?", investorID).
		First(&investor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvestorNotFound
		}
		return nil, err
	}
	return &investor, nil
}

// NameByID はIDから投資家名のみを返します。コミットメント一覧のメタデータ用です。
func (r *investorGorm) NameByID(ctx context.Context, investorID string) (string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&entity.Investor{}).
		Where("investor_id = ?", investorID).
		Pluck("investor_name", &names).Error; err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", domain.ErrInvestorNotFound
	}
	return names[0], nil
}

// Delete は投資家を1件削除します。外部キーのカスケードにより
// その投資家のコミットメントも削除されます。
func (r *investorGorm) Delete(ctx context.Context, investorID string) error {
	return r.db.WithContext(ctx).
		Where("investor_id = ?", investorID).
		Delete(&entity.Investor{}).Error
}
