package dto

// CommitmentResponse はコミットメント1件分のレスポンスDTOです。
type CommitmentResponse struct {
	CommitmentID         string `json:"commitment_id"`
	CommitmentAssetClass string `json:"commitment_asset_class"`
	CommitmentAmount     int64  `json:"commitment_amount"`
	CommitmentCurrency   string `json:"commitment_currency"`
	InvestorID           string `json:"investor_id"`
}

// InvestorCommitmentsMeta は特定投資家のコミットメント一覧の content_meta です。
type InvestorCommitmentsMeta struct {
	InvestorName                  string           `json:"investor_name"`
	TotalCommitment               int64            `json:"total_commitment"`
	TotalCommitmentsPerAssetClass map[string]int64 `json:"total_commitments_per_asset_class"`
}
