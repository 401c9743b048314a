package gemini

import "github.com/dongycare/checker-backend/internal/entity"

// ResponseSchema constrains the model output to the analysis document
// shape. The descriptions are part of the prompt contract and steer the
// model's content for each field.
var ResponseSchema = &entity.Schema{
	Type: "OBJECT",
	Properties: map[string]*entity.Schema{
		"analysis": {
			Type: "OBJECT",
			Properties: map[string]*entity.Schema{
				"principalStatus": {
					Type:        "STRING",
					Description: "Tình trạng chính (ví dụ: Thận Dương hư).",
				},
				"cooperativeStatuses": {
					Type:        "ARRAY",
					Items:       &entity.Schema{Type: "STRING"},
					Description: "Các tình trạng phối hợp (nếu có ≥2 triệu chứng).",
				},
				"combinedStatus": {
					Type:        "STRING",
					Description: "Kết quả tổng hợp nếu có 3 nhóm trở lên cùng yếu (ví dụ: Thận hư tổng hợp + Tỳ dương hư + Tâm huyết hư).",
				},
			},
			PropertyOrdering: []string{"principalStatus", "cooperativeStatuses", "combinedStatus"},
		},
		"results": {
			Type: "OBJECT",
			Properties: map[string]*entity.Schema{
				"trieuChung": {
					Type:        "ARRAY",
					Items:       &entity.Schema{Type: "STRING"},
					Description: "Hiển thị lại các triệu chứng đã chọn/nhập, kèm phân loại Đông y.",
				},
				"ketLuan": {
					Type:        "STRING",
					Description: "Tóm tắt tình trạng tổng quát, phân tích rõ nhóm chính và các nhóm phối hợp.",
				},
				"huongHoTro": {
					Type:        "STRING",
					Description: "Đề xuất HƯỚNG giải pháp/phương pháp điều trị phù hợp theo từng nhóm.",
				},
				"goiYSanPham": {
					Type:        "STRING",
					Description: "Đề xuất sản phẩm cụ thể (Viên bổ thận âm, Viên bổ thận dương, Bổ Tỳ hoàn) dựa trên phân tích tình trạng bệnh.",
				},
				"cachDung": {
					Type:        "STRING",
					Description: "Hướng dẫn liều lượng cơ bản theo ngày/tháng và KIÊNG KỴ cho từng sản phẩm đã gợi ý.",
				},
				"anUongSinhHoat": {
					Type:        "STRING",
					Description: "Liệt kê món ăn nên dùng, kiêng, thói quen tốt.",
				},
			},
			PropertyOrdering: []string{"trieuChung", "ketLuan", "huongHoTro", "goiYSanPham", "cachDung", "anUongSinhHoat"},
		},
	},
	PropertyOrdering: []string{"analysis", "results"},
}
