package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/dongycare/checker-backend/internal/entity"
)

// MockConnector returns a canned schema-shaped analysis without calling
// the provider. Used for local development and tests (ENABLE_MOCKS).
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) GenerateAnalysis(ctx context.Context, systemPrompt string, parts []entity.Part) (json.RawMessage, error) {
	ctxzap.Info(ctx, "[MOCK] generating analysis", zap.Int("part_count", len(parts)))

	resp := entity.AnalysisResponse{
		Analysis: &entity.Analysis{
			PrincipalStatus:     "Thận Dương hư",
			CooperativeStatuses: []string{"Tỳ Khí hư"},
			CombinedStatus:      "",
		},
		Results: &entity.AnalysisResult{
			TrieuChung: []string{
				"- Lưng đau, gối lạnh, bụng dưới dễ lạnh → Dương khí của Thận suy, không ôn ấm được hạ tiêu (**Thận Dương hư**).",
				"- Ăn xong đầy bụng, khó tiêu → Tỳ khí yếu, vận hóa kém (**Tỳ Khí hư**).",
			},
			KetLuan: "Tình trạng chính là **Thận Dương hư**, kèm theo **Tỳ Khí hư** phối hợp.\n\n" +
				"Dương khí suy giảm khiến cơ thể sợ lạnh, tiêu hóa kém và thiếu sinh khí vào buổi sáng.",
			HuongHoTro: "Ôn bổ Thận dương, kiện Tỳ ích khí.\n\n" +
				"Ưu tiên giữ ấm vùng bụng dưới và lưng, kết hợp ăn uống dễ tiêu.",
			GoiYSanPham: "- **Viên bổ thận dương**: hỗ trợ Thận Dương hư, lạnh bụng, tiểu đêm.\n" +
				"- **Bổ Tỳ hoàn**: kiện Tỳ, hỗ trợ tiêu hóa và khí huyết.",
			CachDung: "Viên bổ thận dương: ngày 3 lần, 30 viên/lần sau ăn.\n" +
				"Bổ Tỳ hoàn: ngày 3 lần, 30 viên/lần.\n" +
				"--- KIÊNG KỴ CHUNG ---\n" +
				"Không ăn rau muống, giá đỗ, đậu xanh trong thời gian dùng thuốc.",
			AnUongSinhHoat: "- Ăn đồ ấm, nấu chín kỹ, hạn chế đồ sống lạnh.\n" +
				"- Ngủ trước 23h, giữ ấm bàn chân.\n" +
				"- Vận động nhẹ buổi sáng để sinh dương khí.",
		},
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("marshal mock analysis: %w", err)
	}

	ctxzap.Info(ctx, "[MOCK] analysis generated", zap.Int("result_length", len(raw)))
	return raw, nil
}
