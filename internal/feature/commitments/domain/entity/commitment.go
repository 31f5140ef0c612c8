// Package entity defines the domain models for the commitments feature.
package entity

import (
	investorentity "invest_backend/internal/feature/investors/domain/entity"
)

// Commitment represents a single pledged-amount event tied to one investor,
// one asset class and one currency. Commitments are append-only: the id is
// random per ingested row and rows are never deduplicated by content.
type Commitment struct {
	CommitmentID         string `gorm:"column:commitment_id;size:10;primaryKey"`
	CommitmentAssetClass string `gorm:"column:commitment_asset_class;size:100;not null;index"`
	CommitmentAmount     int64  `gorm:"column:commitment_amount;not null"`
	CommitmentCurrency   string `gorm:"column:commitment_currency;size:8;not null"`
	InvestorID           string `gorm:"column:investor_id;size:64;not null;index"`

	// Investor declares the foreign key with cascade semantics: updating or
	// deleting an investor updates or deletes its commitments.
	Investor *investorentity.Investor `gorm:"foreignKey:InvestorID;references:InvestorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName はコミットメントテーブル名を指定します。
func (Commitment) TableName() string {
	return "commitments"
}
