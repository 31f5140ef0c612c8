// Package usecase はCSVバッチを既存ストアへマージするユースケースを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	commitmententity "invest_backend/internal/feature/commitments/domain/entity"
	"invest_backend/internal/feature/ingestion/domain"
	"invest_backend/internal/feature/ingestion/domain/entity"
	investorentity "invest_backend/internal/feature/investors/domain/entity"
)

// MergePolicy はバッチの投資家名が既存レコードと衝突したときの挙動を定めます。
// 照合は名前で行います（IDではなく）。既存行のIDが正となります。
type MergePolicy string

const (
	// PolicySkip は既存レコードを正としてバッチ側の投資家を挿入しません（デフォルト）。
	PolicySkip MergePolicy = "skip"
	// PolicyUpsert は既存IDを保ったまま属性（種別・国・最終更新日）を更新します。
	PolicyUpsert MergePolicy = "upsert"
	// PolicyReject は名前の衝突を競合エラーとして実行全体を中断します。
	PolicyReject MergePolicy = "reject"
)

// ParseMergePolicy は設定値からマージポリシーを解決します。空文字列はskipです。
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch p := MergePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", PolicySkip:
		return PolicySkip, nil
	case PolicyUpsert, PolicyReject:
		return p, nil
	default:
		return "", fmt.Errorf("unknown merge policy %q", s)
	}
}

// SourceLoader は入力ファイルの読み取りを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SourceLoader interface {
	Load(ctx context.Context) (*entity.Batch, error)
}

// StoreRepository は取り込み実行のストア操作を抽象化します。
// MergeBatch は1実行分を原子的に永続化しなければなりません。
type StoreRepository interface {
	ExistingInvestors(ctx context.Context) (map[string]string, error)
	MergeBatch(ctx context.Context, inserts, updates []investorentity.Investor, commitments []commitmententity.Commitment) error
}

// Result は1回の取り込み実行のサマリです。
type Result struct {
	RunID               string
	InvestorsInserted   int
	InvestorsUpdated    int
	CommitmentsInserted int
	RowsSkipped         int
}

// IngestUsecase はローダーとストアをつなぎ、差分を計算してマージします。
type IngestUsecase struct {
	loader SourceLoader
	store  StoreRepository
	policy MergePolicy
}

// NewIngestUsecase は新しい IngestUsecase を作成します。
func NewIngestUsecase(loader SourceLoader, store StoreRepository, policy MergePolicy) *IngestUsecase {
	if policy == "" {
		policy = PolicySkip
	}
	return &IngestUsecase{loader: loader, store: store, policy: policy}
}

// Run は入力ファイル1件分の取り込みを実行します。
//
// バッチの投資家を既存ストアの名前集合と突き合わせて挿入・更新・スキップに振り分け、
// コミットメントの参照先を正となるIDに付け替えた上で、1トランザクションでマージします。
// コミットメントは追記専用で、内容による重複排除は行いません。
func (iu *IngestUsecase) Run(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	logger := slog.With("run_id", runID)

	batch, err := iu.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range batch.RowErrors {
		re := &batch.RowErrors[i]
		logger.Warn("skipping malformed row", "row", re.Row, "column", re.Column, "error", re.Err)
	}

	existing, err := iu.store.ExistingInvestors(ctx)
	if err != nil {
		return nil, fmt.Errorf("load existing investors: %w", err)
	}

	// バッチ内キー -> 正となるID。新規投資家は自身のキー、既存投資家は既存行のIDです。
	finalID := make(map[string]string, len(batch.Investors))

	var inserts, updates []investorentity.Investor
	for _, inv := range batch.Investors {
		storedID, ok := existing[inv.InvestorName]
		if !ok {
			finalID[inv.InvestorID] = inv.InvestorID
			inserts = append(inserts, inv)
			continue
		}

		finalID[inv.InvestorID] = storedID
		switch iu.policy {
		case PolicyUpsert:
			upd := inv
			upd.InvestorID = storedID
			updates = append(updates, upd)
		case PolicyReject:
			return nil, fmt.Errorf("%w: %q", domain.ErrNameConflict, inv.InvestorName)
		}
	}

	commitments := make([]commitmententity.Commitment, 0, len(batch.Commitments))
	for _, c := range batch.Commitments {
		id, ok := finalID[c.InvestorID]
		if !ok {
			return nil, fmt.Errorf("%w: commitment %s", domain.ErrMissingInvestor, c.CommitmentID)
		}
		c.InvestorID = id
		commitments = append(commitments, c)
	}

	if err := iu.store.MergeBatch(ctx, inserts, updates, commitments); err != nil {
		return nil, err
	}

	logger.Info("ingestion run complete",
		"investors_inserted", len(inserts),
		"investors_updated", len(updates),
		"commitments_inserted", len(commitments),
		"rows_skipped", len(batch.RowErrors),
	)

	return &Result{
		RunID:               runID,
		InvestorsInserted:   len(inserts),
		InvestorsUpdated:    len(updates),
		CommitmentsInserted: len(commitments),
		RowsSkipped:         len(batch.RowErrors),
	}, nil
}
