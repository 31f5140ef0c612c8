package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	commitmenthandler "invest_backend/internal/feature/commitments/transport/handler"
	investorhandler "invest_backend/internal/feature/investors/transport/handler"
	"invest_backend/internal/platform/http/handler"
)

func NewRouter(investors *investorhandler.InvestorHandler, commitments *commitmenthandler.CommitmentHandler) *gin.Engine {
	r := gin.Default()

	// CORS: ダッシュボードはブラウザからAPIを読むため全オリジンのGETを許可
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{"GET", "HEAD", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	// 導通確認用（元システムはルートでhealthcheckを返す）
	r.GET("/", handler.Health)
	r.GET("/healthz", handler.Health)

	v1 := r.Group("/api/v1")
	{
		// 投資家一覧（投資家ごとの合計額メタ付き）
		v1.GET("/investors", investors.List)
		// 投資家1件取得
		v1.GET("/investors/:id", investors.GetByID)
		// 特定投資家のコミットメント一覧（アセットクラスフィルタ可）
		v1.GET("/investors/:id/commitments", commitments.ListByInvestor)
		// 全コミットメント一覧
		v1.GET("/commitments", commitments.List)
		// コミットメント1件取得
		v1.GET("/commitments/:id", commitments.GetByID)
	}

	return r
}
