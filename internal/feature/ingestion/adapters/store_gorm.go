package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	commitmententity "invest_backend/internal/feature/commitments/domain/entity"
	"invest_backend/internal/feature/ingestion/domain"
	"invest_backend/internal/feature/ingestion/usecase"
	investorentity "invest_backend/internal/feature/investors/domain/entity"
)

// insertBatchSize はコミットメント一括挿入の1バッチあたりの行数です。
const insertBatchSize = 500

// storeGorm はStoreRepositoryインターフェースのGORM実装です。
type storeGorm struct {
	db *gorm.DB
}

var _ usecase.StoreRepository = (*storeGorm)(nil)

// NewStoreRepository は指定されたDB接続でstoreGormリポジトリの新しいインスタンスを生成します。
func NewStoreRepository(db *gorm.DB) *storeGorm {
	return &storeGorm{db: db}
}

// ExistingInvestors はストア内の全投資家を 名前 -> ID のマップで返します。
func (s *storeGorm) ExistingInvestors(ctx context.Context) (map[string]string, error) {
	var rows []investorentity.Investor
	if err := s.db.WithContext(ctx).
		Select("investor_name", "investor_id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.InvestorName] = row.InvestorID
	}
	return out, nil
}

// MergeBatch は1回の取り込み実行分を単一トランザクションで永続化します。
// いずれかの挿入・更新が失敗した場合は全体がロールバックされ、
// 部分的な書き込みは残りません。
func (s *storeGorm) MergeBatch(ctx context.Context, inserts, updates []investorentity.Investor, commitments []commitmententity.Commitment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(inserts) > 0 {
			if err := tx.Create(&inserts).Error; err != nil {
				return translateMergeError(err)
			}
		}

		// upsertポリシー時の属性更新。IDと登録日は既存行のものを維持します。
		for _, inv := range updates {
			if err := tx.Model(&investorentity.Investor{}).
				Where("investor_id = ?", inv.InvestorID).
				Updates(map[string]any{
					"investory_type":        inv.InvestoryType,
					"investor_country":      inv.InvestorCountry,
					"investor_last_updated": inv.InvestorLastUpdated,
				}).Error; err != nil {
				return translateMergeError(err)
			}
		}

		if len(commitments) > 0 {
			if err := tx.CreateInBatches(&commitments, insertBatchSize).Error; err != nil {
				return translateMergeError(err)
			}
		}

		return nil
	})
}

// translateMergeError はドライバの制約違反をドメインエラーに変換します。
// gorm.Config{TranslateError: true} を前提とします。
func translateMergeError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", domain.ErrNameConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", domain.ErrMissingInvestor, err)
	}
	return err
}
