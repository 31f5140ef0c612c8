// Package pagination はページングされたクエリの共通レスポンス形式を提供します。
package pagination

import "math"

const (
	// DefaultPage はページ番号のデフォルト値です（0始まり）。
	DefaultPage = 0
	// DefaultSize は1ページあたりのデフォルト件数です。
	DefaultSize = 10
	// MaxSize は1ページあたりの最大件数です。
	MaxSize = 100
)

// Page はページングされたクエリのレスポンスです。
// content_meta にはエンドポイントごとの集計情報が入ります。
type Page[T any] struct {
	PageNumber   int   `json:"page_number"`
	PageSize     int   `json:"page_size"`
	TotalPages   int   `json:"total_pages"`
	TotalRecords int64 `json:"total_records"`
	Content      []T   `json:"content"`
	ContentMeta  any   `json:"content_meta"`
}

// Normalize はページ番号とページサイズを有効な範囲に丸めます。
func Normalize(page, size int) (int, int) {
	if page < 0 {
		page = DefaultPage
	}
	if size <= 0 || size > MaxSize {
		size = DefaultSize
	}
	return page, size
}

// TotalPages は総件数とページサイズから総ページ数を計算します。
func TotalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(size)))
}
