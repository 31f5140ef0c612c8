// Package adapters はingestionフィーチャーの入出力実装を提供します。
package adapters

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	commitmententity "invest_backend/internal/feature/commitments/domain/entity"
	"invest_backend/internal/feature/ingestion/domain"
	"invest_backend/internal/feature/ingestion/domain/entity"
	"invest_backend/internal/feature/ingestion/usecase"
	investorentity "invest_backend/internal/feature/investors/domain/entity"
	"invest_backend/internal/shared/identifier"
)

// 入力ファイルの必須カラム（正規化後の名前）。
const (
	colInvestorName    = "investor_name"
	colInvestoryType   = "investory_type" // sic: the source feed spells it this way
	colInvestorCountry = "investor_country"
	colDateAdded       = "investor_date_added"
	colLastUpdated     = "investor_last_updated"
	colAssetClass      = "commitment_asset_class"
	colAmount          = "commitment_amount"
	colCurrency        = "commitment_currency"
)

var requiredColumns = []string{
	colInvestorName,
	colInvestoryType,
	colInvestorCountry,
	colDateAdded,
	colLastUpdated,
	colAssetClass,
	colAmount,
	colCurrency,
}

var (
	errEmptyValue = errors.New("required value is empty")
	errNotANumber = errors.New("amount is not a valid integer")
	errNegative   = errors.New("amount must not be negative")
)

// csvLoader はSourceLoaderインターフェースのCSV実装です。
// 1行 = 1投資家のコミットメントイベントとして読み取ります。
type csvLoader struct {
	r io.Reader
}

var _ usecase.SourceLoader = (*csvLoader)(nil)

// NewCSVLoader は指定されたリーダーを読むcsvLoaderの新しいインスタンスを生成します。
func NewCSVLoader(r io.Reader) *csvLoader {
	return &csvLoader{r: r}
}

// normalizeHeader はヘッダー名をトリムし、小文字化し、空白をアンダースコアに置換します。
func normalizeHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(h))), "_")
}

// Load はCSVを読み込み、投資家射影とコミットメント射影に分割した正規化バッチを返します。
//
// 必須カラムの欠落はSchemaErrorとしてバッチ全体を失敗させます。
// 値レベルの不正（空値、数値でない金額）は該当行をスキップし、RowErrorとして報告します。
// 投資家射影は名前で重複排除し、初出行を採用します。同名の後続行のコミットメントは
// 初出行から導出した正準キーを参照します。
func (l *csvLoader) Load(ctx context.Context) (*entity.Batch, error) {
	reader := csv.NewReader(l.r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &domain.SchemaError{Missing: requiredColumns}
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[normalizeHeader(h)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.SchemaError{Missing: missing}
	}

	batch := &entity.Batch{}
	keyByName := make(map[string]string) // investor name -> canonical key from its first row

	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// ragged row (wrong field count)
			batch.RowErrors = append(batch.RowErrors, domain.RowError{Row: row, Column: "", Err: err})
			continue
		}

		value := func(col string) string {
			return strings.TrimSpace(record[index[col]])
		}

		badColumn := ""
		for _, col := range requiredColumns {
			if value(col) == "" {
				badColumn = col
				break
			}
		}
		if badColumn != "" {
			batch.RowErrors = append(batch.RowErrors, domain.RowError{Row: row, Column: badColumn, Err: errEmptyValue})
			continue
		}

		amount, err := strconv.ParseInt(value(colAmount), 10, 64)
		if err != nil {
			batch.RowErrors = append(batch.RowErrors, domain.RowError{Row: row, Column: colAmount, Err: errNotANumber})
			continue
		}
		if amount < 0 {
			batch.RowErrors = append(batch.RowErrors, domain.RowError{Row: row, Column: colAmount, Err: errNegative})
			continue
		}

		name := value(colInvestorName)
		key, seen := keyByName[name]
		if !seen {
			key = identifier.InvestorKey(name, value(colDateAdded))
			keyByName[name] = key
			batch.Investors = append(batch.Investors, investorentity.Investor{
				InvestorID:          key,
				InvestorName:        name,
				InvestoryType:       value(colInvestoryType),
				InvestorCountry:     value(colInvestorCountry),
				InvestorDateAdded:   value(colDateAdded),
				InvestorLastUpdated: value(colLastUpdated),
			})
		}

		commitmentID, err := identifier.NewCommitmentID()
		if err != nil {
			return nil, fmt.Errorf("generate commitment id: %w", err)
		}

		batch.Commitments = append(batch.Commitments, commitmententity.Commitment{
			CommitmentID:         commitmentID,
			CommitmentAssetClass: value(colAssetClass),
			CommitmentAmount:     amount,
			CommitmentCurrency:   value(colCurrency),
			InvestorID:           key,
		})
	}

	return batch, nil
}
