// Package entity defines the domain models for the investors feature.
package entity

// Investor represents an entity making capital commitments, uniquely
// identified by name. The primary key is a deterministic content hash of
// the name and date-added fields so re-ingestion yields the same id.
type Investor struct {
	InvestorID          string `gorm:"column:investor_id;size:64;primaryKey"`
	InvestorName        string `gorm:"column:investor_name;size:255;not null;uniqueIndex"`
	InvestoryType       string `gorm:"column:investory_type;size:100;not null"` // sic: column name preserved from the source feed
	InvestorCountry     string `gorm:"column:investor_country;size:100;not null"`
	InvestorDateAdded   string `gorm:"column:investor_date_added;size:32;not null"`
	InvestorLastUpdated string `gorm:"column:investor_last_updated;size:32;not null"`
}

// TableName は投資家テーブル名を指定します。
func (Investor) TableName() string {
	return "investors"
}
