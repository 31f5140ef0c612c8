// Package entity defines the domain models for the ingestion feature.
package entity

import (
	commitmententity "invest_backend/internal/feature/commitments/domain/entity"
	investorentity "invest_backend/internal/feature/investors/domain/entity"
	"invest_backend/internal/feature/ingestion/domain"
)

// Batch は1つの入力ファイルから正規化された取り込み単位です。
//
// Investors は投資家名で重複排除済みで、ファイル内の初出順を保ちます。
// Commitments の InvestorID は、同名投資家の初出行から導出した正準キーを
// 参照します（同じ投資家が複数行に登場しても参照整合性が保たれます）。
type Batch struct {
	Investors   []investorentity.Investor
	Commitments []commitmententity.Commitment
	RowErrors   []domain.RowError // malformed rows skipped by the loader
}
