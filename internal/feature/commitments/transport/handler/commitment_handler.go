// Package handler はcommitmentsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"invest_backend/internal/feature/commitments/domain"
	"invest_backend/internal/feature/commitments/domain/entity"
	"invest_backend/internal/feature/commitments/transport/http/dto"
	"invest_backend/internal/feature/commitments/usecase"
	investordomain "invest_backend/internal/feature/investors/domain"
	"invest_backend/internal/shared/pagination"
)

// CommitmentsUsecase はコミットメントクエリのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CommitmentsUsecase interface {
	ListCommitments(ctx context.Context, page, size int) (*usecase.ListResult, error)
	GetCommitment(ctx context.Context, commitmentID string) (*entity.Commitment, error)
	ListByInvestor(ctx context.Context, investorID, assetClass string, page, size int) (*usecase.InvestorCommitmentsResult, error)
}

// CommitmentHandler はコミットメントのHTTPリクエストを処理します。
type CommitmentHandler struct {
	uc CommitmentsUsecase
}

// NewCommitmentHandler は指定されたusecaseでCommitmentHandlerの新しいインスタンスを生成します。
func NewCommitmentHandler(uc CommitmentsUsecase) *CommitmentHandler {
	return &CommitmentHandler{uc: uc}
}

// List はページングされた全コミットメント一覧を返します。
//
// エンドポイント例:
// GET /api/v1/commitments?page=0&size=10
func (h *CommitmentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	res, err := h.uc.ListCommitments(c.Request.Context(), page, size)
	if err != nil {
		if errors.Is(err, domain.ErrCommitmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "could not return commitments"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pagination.Page[dto.CommitmentResponse]{
		PageNumber:   res.Page,
		PageSize:     res.Size,
		TotalPages:   pagination.TotalPages(res.TotalRecords, res.Size),
		TotalRecords: res.TotalRecords,
		Content:      toResponses(res.Commitments),
	})
}

// GetByID はIDでコミットメントを1件返します。存在しない場合は404を返します。
//
// エンドポイント例:
// GET /api/v1/commitments/:id
func (h *CommitmentHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	commitment, err := h.uc.GetCommitment(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCommitmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("could not return commitment by ID: %s", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toResponse(*commitment))
}

// ListByInvestor は特定投資家のコミットメント一覧を返します。
// content_meta に投資家名・合計額・アセットクラス別合計を含みます。
//
// エンドポイント例:
// GET /api/v1/investors/:id/commitments?page=0&size=10&asset_class=all
func (h *CommitmentHandler) ListByInvestor(c *gin.Context) {
	id := c.Param("id")
	assetClass := c.DefaultQuery("asset_class", usecase.AssetClassAll)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	res, err := h.uc.ListByInvestor(c.Request.Context(), id, assetClass, page, size)
	if err != nil {
		if errors.Is(err, domain.ErrCommitmentNotFound) || errors.Is(err, investordomain.ErrInvestorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("could not return commitments for investor: %s", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pagination.Page[dto.CommitmentResponse]{
		PageNumber:   res.Page,
		PageSize:     res.Size,
		TotalPages:   pagination.TotalPages(res.TotalRecords, res.Size),
		TotalRecords: res.TotalRecords,
		Content:      toResponses(res.Commitments),
		ContentMeta: dto.InvestorCommitmentsMeta{
			InvestorName:                  res.InvestorName,
			TotalCommitment:               res.TotalCommitment,
			TotalCommitmentsPerAssetClass: res.TotalByAssetClass,
		},
	})
}

func toResponse(cm entity.Commitment) dto.CommitmentResponse {
	return dto.CommitmentResponse{
		CommitmentID:         cm.CommitmentID,
		CommitmentAssetClass: cm.CommitmentAssetClass,
		CommitmentAmount:     cm.CommitmentAmount,
		CommitmentCurrency:   cm.CommitmentCurrency,
		InvestorID:           cm.InvestorID,
	}
}

func toResponses(cms []entity.Commitment) []dto.CommitmentResponse {
	out := make([]dto.CommitmentResponse, 0, len(cms))
	for _, cm := range cms {
		out = append(out, toResponse(cm))
	}
	return out
}
