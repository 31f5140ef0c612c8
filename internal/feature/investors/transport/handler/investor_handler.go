// Package handler はinvestorsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"invest_backend/internal/feature/investors/domain"
	"invest_backend/internal/feature/investors/domain/entity"
	"invest_backend/internal/feature/investors/transport/http/dto"
	"invest_backend/internal/feature/investors/usecase"
	"invest_backend/internal/shared/pagination"
)

// InvestorsUsecase は投資家クエリのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type InvestorsUsecase interface {
	ListInvestors(ctx context.Context, page, size int) (*usecase.ListResult, error)
	GetInvestor(ctx context.Context, investorID string) (*entity.Investor, error)
}

// InvestorHandler は投資家のHTTPリクエストを処理します。
type InvestorHandler struct {
	uc InvestorsUsecase
}

// NewInvestorHandler は指定されたusecaseでInvestorHandlerの新しいインスタンスを生成します。
func NewInvestorHandler(uc InvestorsUsecase) *InvestorHandler {
	return &InvestorHandler{uc: uc}
}

// List はページングされた投資家一覧を返します。
// content_meta に投資家IDごとのコミットメント合計額を含みます。
//
// エンドポイント例:
// GET /api/v1/investors?page=0&size=10
func (h *InvestorHandler) List(c *gin.Context) {
	// 文字列を整数に変換。不正値はusecase側でデフォルトに丸められる
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	res, err := h.uc.ListInvestors(c.Request.Context(), page, size)
	if err != nil {
		if errors.Is(err, domain.ErrInvestorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "could not return investors"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	content := make([]dto.InvestorResponse, 0, len(res.Investors))
	for _, inv := range res.Investors {
		content = append(content, toResponse(inv))
	}

	c.JSON(http.StatusOK, pagination.Page[dto.InvestorResponse]{
		PageNumber:   res.Page,
		PageSize:     res.Size,
		TotalPages:   pagination.TotalPages(res.TotalRecords, res.Size),
		TotalRecords: res.TotalRecords,
		Content:      content,
		ContentMeta:  dto.InvestorListMeta{TotalCommitments: res.TotalCommitments},
	})
}

// GetByID はIDで投資家を1件返します。存在しない場合は404を返します。
//
// エンドポイント例:
// GET /api/v1/investors/:id
func (h *InvestorHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	investor, err := h.uc.GetInvestor(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrInvestorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("could not return investor by ID: %s", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toResponse(*investor))
}

func toResponse(inv entity.Investor) dto.InvestorResponse {
	return dto.InvestorResponse{
		InvestorID:          inv.InvestorID,
		InvestorName:        inv.InvestorName,
		InvestoryType:       inv.InvestoryType,
		InvestorCountry:     inv.InvestorCountry,
		InvestorDateAdded:   inv.InvestorDateAdded,
		InvestorLastUpdated: inv.InvestorLastUpdated,
	}
}
