package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"invest_backend/internal/app/router"
	commitmentadapters "invest_backend/internal/feature/commitments/adapters"
	commitmenthandler "invest_backend/internal/feature/commitments/transport/handler"
	commitmentusecase "invest_backend/internal/feature/commitments/usecase"
	investoradapters "invest_backend/internal/feature/investors/adapters"
	investorhandler "invest_backend/internal/feature/investors/transport/handler"
	investorusecase "invest_backend/internal/feature/investors/usecase"
	"invest_backend/internal/platform/cache"
	infradb "invest_backend/internal/platform/db"
	infraredis "invest_backend/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	investorRepo := investoradapters.NewInvestorRepository(db)
	commitmentRepo := commitmentadapters.NewCommitmentRepository(db)

	// 集計クエリをRedisキャッシュでラップ（CACHE_TTL未設定時は5分）
	ttl, _ := time.ParseDuration(os.Getenv("CACHE_TTL"))
	summaries := cache.NewCachingSummaryRepository(rdb, ttl, commitmentRepo, "commitments")

	// Usecase
	investorsUC := investorusecase.NewInvestorsUsecase(investorRepo, summaries)
	commitmentsUC := commitmentusecase.NewCommitmentsUsecase(commitmentRepo, summaries, investorRepo)

	// Handler
	investorH := investorhandler.NewInvestorHandler(investorsUC)
	commitmentH := commitmenthandler.NewCommitmentHandler(commitmentsUC)

	// ルータ生成
	r := router.NewRouter(investorH, commitmentH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
