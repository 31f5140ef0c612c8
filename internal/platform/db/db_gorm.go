// Package db はGORMによるデータベース接続の初期化を提供します。
package db

import (
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	commitmententity "invest_backend/internal/feature/commitments/domain/entity"
	investorentity "invest_backend/internal/feature/investors/domain/entity"
)

// defaultSQLitePath は元システムと同じデフォルトのデータベースファイルです。
const defaultSQLitePath = "./InvestorCommitments.db"

// OpenDB は環境変数に従ってデータベース接続を開きます。
//
//	DB_DRIVER      "sqlite"（デフォルト）または "postgres"
//	DB_PATH        sqliteファイルのパス
//	DATABASE_URL   postgres接続文字列
//	RUN_MIGRATIONS "true" でスキーマを作成
//
// 制約違反をドメインエラーに変換できるよう TranslateError を有効にします。
func OpenDB() *gorm.DB {
	dialector := newDialector()

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := Migrate(db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

func newDialector() gorm.Dialector {
	if os.Getenv("DB_DRIVER") == "postgres" {
		return gpostgres.Open(os.Getenv("DATABASE_URL"))
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = defaultSQLitePath
	}
	// sqliteは外部キー制約をDSNで明示的に有効化する必要がある
	return gsqlite.Open(path + "?_foreign_keys=on")
}

// Migrate は投資家・コミットメントのスキーマを作成します（既存なら何もしません）。
// 外部キーのカスケードはCommitmentエンティティの制約タグで宣言されています。
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&investorentity.Investor{},
		&commitmententity.Commitment{},
	)
}
