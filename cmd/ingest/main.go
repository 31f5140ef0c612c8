package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"invest_backend/internal/feature/ingestion/adapters"
	"invest_backend/internal/feature/ingestion/usecase"
	"invest_backend/internal/platform/cache"
	"invest_backend/internal/platform/db"
	infraredis "invest_backend/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	database := db.OpenDB()

	// スキーマは無ければ作成する（元システムのビルドスクリプトと同じ挙動）
	if err := db.Migrate(database); err != nil {
		log.Fatal("failed to create schema:", err)
	}

	path := os.Getenv("CSV_PATH")
	if path == "" {
		path = "./data.csv"
	}
	f, err := os.Open(path)
	if err != nil {
		log.Fatal("failed to open source file:", err)
	}
	defer f.Close()

	policy, err := usecase.ParseMergePolicy(os.Getenv("MERGE_POLICY"))
	if err != nil {
		log.Fatal(err)
	}

	loader := adapters.NewCSVLoader(f)
	store := adapters.NewStoreRepository(database)
	uc := usecase.NewIngestUsecase(loader, store, policy)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := uc.Run(ctx)
	if err != nil {
		log.Fatal(err)
	}

	// 取り込み完了後、キャッシュ済みの集計を無効化（Redis未設定ならスキップ）
	if os.Getenv("REDIS_HOST") != "" {
		if rdb, rerr := infraredis.NewRedisClient(); rerr == nil {
			if cerr := cache.Invalidate(ctx, rdb, "commitments"); cerr != nil {
				log.Println("[WARN] Failed to invalidate summary cache:", cerr)
			}
			_ = rdb.Close()
		}
	}

	log.Printf("ingest ok: run=%s investors_inserted=%d investors_updated=%d commitments_inserted=%d rows_skipped=%d",
		res.RunID, res.InvestorsInserted, res.InvestorsUpdated, res.CommitmentsInserted, res.RowsSkipped)
}
