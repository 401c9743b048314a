package formatter

import (
	"strings"

	"github.com/dongycare/checker-backend/internal/entity"
	"github.com/dongycare/checker-backend/internal/pkg/markup"
)

// BuildReport flattens an analysis response into the plain-text report
// the formatters consume. Sections with no content are omitted.
func BuildReport(resp *entity.AnalysisResponse) string {
	var sections []string

	if resp.Analysis != nil {
		var b strings.Builder
		if resp.Analysis.PrincipalStatus != "" {
			b.WriteString("Tình trạng chính: " + resp.Analysis.PrincipalStatus + "\n")
		}
		if len(resp.Analysis.CooperativeStatuses) > 0 {
			b.WriteString("Tình trạng phối hợp: " + strings.Join(resp.Analysis.CooperativeStatuses, ", ") + "\n")
		}
		if resp.Analysis.CombinedStatus != "" {
			b.WriteString("Kết quả tổng hợp: " + resp.Analysis.CombinedStatus + "\n")
		}
		if b.Len() > 0 {
			sections = append(sections, section("BIỆN CHỨNG", b.String()))
		}
	}

	if r := resp.Results; r != nil {
		if len(r.TrieuChung) > 0 {
			sections = append(sections, section("TRIỆU CHỨNG", renderField(strings.Join(r.TrieuChung, "\n"))))
		}
		for _, part := range []struct {
			title   string
			content string
		}{
			{"KẾT LUẬN", r.KetLuan},
			{"HƯỚNG HỖ TRỢ", r.HuongHoTro},
			{"GỢI Ý SẢN PHẨM", r.GoiYSanPham},
			{"CÁCH DÙNG", r.CachDung},
			{"ĂN UỐNG – SINH HOẠT", r.AnUongSinhHoat},
		} {
			if part.content != "" {
				sections = append(sections, section(part.title, renderField(part.content)))
			}
		}
	}

	return strings.Join(sections, "\n\n")
}

func renderField(content string) string {
	return markup.RenderPlain(markup.Parse(content))
}

func section(title, body string) string {
	return title + "\n" + strings.TrimRight(body, "\n")
}
