// Package identifier は投資家・コミットメントの主キーを生成します。
package identifier

import (
	"crypto/sha256"
	"encoding/hex"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// commitmentIDLength はコミットメントIDの文字数です。
	commitmentIDLength = 10

	// commitmentIDAlphabet はURLセーフな文字集合です。
	commitmentIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

	// keySeparator keeps "ab"+"c" and "a"+"bc" from hashing to the same key.
	keySeparator = "\x1f"
)

// NewCommitmentID はコミットメント1件ごとの不透明なランダムIDを生成します。
// 同一ファイルを再取り込みした場合、コミットメントは別レコードとして扱われます。
func NewCommitmentID() (string, error) {
	return gonanoid.Generate(commitmentIDAlphabet, commitmentIDLength)
}

// InvestorKey は投資家名と登録日から決定的なキーを導出します。
// プロセスをまたいでも同じ入力は常に同じキーになります（再取り込みの冪等性に必要）。
func InvestorKey(name, dateAdded string) string {
	sum := sha256.Sum256([]byte(name + keySeparator + dateAdded))
	return hex.EncodeToString(sum[:])
}
