// Package domain defines domain-level errors for the ingestion feature.
package domain

import (
	"errors"
	"fmt"
)

// Domain errors for the ingestion run.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrNameConflict indicates that the merge would violate the
	// investor-name uniqueness invariant. The run's transaction is rolled
	// back and no partial state is persisted.
	ErrNameConflict = errors.New("investor name already exists")

	// ErrMissingInvestor indicates that a commitment references an investor
	// that is not part of the batch or the store. The run's transaction is
	// rolled back and no partial state is persisted.
	ErrMissingInvestor = errors.New("commitment references a missing investor")
)

// SchemaError は入力ファイルに必須カラムが欠けていることを示します。
// 取り込み処理は書き込み前に中断されます。
type SchemaError struct {
	Missing []string // normalized names of the missing columns
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("input file is missing required columns: %v", e.Missing)
}

// RowError は1行分の不正な値を示します。該当行はスキップされ、
// 行番号とカラム名とともに報告されます。
type RowError struct {
	Row    int    // 1-based data row index (header row excluded)
	Column string // normalized column name
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d, column %q: %v", e.Row, e.Column, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
