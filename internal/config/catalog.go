package config

import "github.com/dongycare/checker-backend/internal/entity"

// DefaultSymptomGroups returns the built-in Đông y symptom catalog used
// when no symptom_groups.json override is present. Callers receive a
// fresh slice; the catalog itself is never mutated.
func DefaultSymptomGroups() []entity.SymptomGroup {
	return []entity.SymptomGroup{
		{
			ID:    "than_am_hu",
			Title: "Thận Âm hư",
			Symptoms: []string{
				"Nóng bứt rứt, hay khát nước, miệng khô",
				"Đêm khó ngủ, dễ tỉnh giấc, hay mơ nhiều",
				"Lưng gối mỏi, ù tai, hoa mắt",
				"Đổ mồ hôi trộm ban đêm",
				"Lòng bàn tay – bàn chân nóng",
			},
		},
		{
			ID:    "than_duong_hu",
			Title: "Thận Dương hư",
			Symptoms: []string{
				"Lưng đau, gối lạnh, bụng dưới dễ lạnh",
				"Sợ lạnh, tay chân lạnh, mùa đông càng rõ",
				"Tiểu đêm nhiều lần, tiểu trong loãng",
				"Buổi sáng dậy mệt, thiếu sinh khí",
				"Sinh lý giảm, đau hông, xuất tinh sớm",
			},
		},
		{
			ID:    "than_khi_tinh_suy",
			Title: "Thận Khí hư / Tinh suy",
			Symptoms: []string{
				"Sinh lý yếu, ham muốn kém",
				"Xuất tinh sớm, di tinh, mộng tinh",
				"Mắt mờ, mỏi mắt, thính lực giảm",
				"Mệt mỏi, suy giảm trí nhớ, thiếu tập trung",
				"Đau hông, mỏi gối, sức bền kém",
			},
		},
		{
			ID:    "ty_khi_hu",
			Title: "Tỳ Khí hư",
			Symptoms: []string{
				"Ăn xong đầy bụng, khó tiêu, hay ợ hơi",
				"Bụng sôi òng ọc, phân lúc nát lúc táo",
				"Người mệt mỏi, da xanh, hay buồn ngủ sau ăn",
				"Ăn nhiều mà không hấp thu, khó lên cân",
				"Lưỡi nhợt, có dấu răng ở viền",
			},
		},
		{
			ID:    "ty_duong_hu",
			Title: "Tỳ Dương hư",
			Symptoms: []string{
				"Ăn xong lạnh bụng, dễ đi ngoài",
				"Lưỡi nhạt, rêu trắng dày",
				"Người sợ lạnh, bụng dưới dễ lạnh",
				"Ăn ít cũng đầy, khó tiêu lâu",
				"Dễ phù nề, mặt hay sưng",
			},
		},
		{
			ID:    "tam_huyet_khi_hu",
			Title: "Tâm Huyết hư / Khí hư",
			Symptoms: []string{
				"Khó ngủ, hay hồi hộp, tim đập nhanh",
				"Sắc mặt nhợt nhạt, môi nhạt màu",
				"Hay quên, dễ lo âu, tinh thần kém",
				"Ngủ nhiều mà vẫn mệt",
				"Chóng mặt, váng đầu, hoa mắt",
			},
		},
	}
}
