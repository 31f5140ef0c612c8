package dto

// InvestorResponse は投資家1件分のレスポンスDTOです。
// フィールド名はダッシュボード側の型定義と揃えています（investory_typeはフィード由来の表記）。
type InvestorResponse struct {
	InvestorID          string `json:"investor_id"`
	InvestorName        string `json:"investor_name"`
	InvestoryType       string `json:"investory_type"`
	InvestorCountry     string `json:"investor_country"`
	InvestorDateAdded   string `json:"investor_date_added"`
	InvestorLastUpdated string `json:"investor_last_updated"`
}

// InvestorListMeta は投資家一覧の content_meta です。
type InvestorListMeta struct {
	// TotalCommitments は投資家IDごとのコミットメント合計額です。
	TotalCommitments map[string]int64 `json:"total_commitments"`
}
