package formatter

import (
	"strings"
	"testing"

	"github.com/dongycare/checker-backend/internal/entity"
)

func sampleResponse() *entity.AnalysisResponse {
	return &entity.AnalysisResponse{
		Analysis: &entity.Analysis{
			PrincipalStatus:     "Thận Dương hư",
			CooperativeStatuses: []string{"Tỳ Khí hư"},
		},
		Results: &entity.AnalysisResult{
			TrieuChung: []string{"- Lưng đau, gối lạnh → **Thận Dương hư**"},
			KetLuan:    "Tình trạng chính là **Thận Dương hư**.",
			CachDung:   "Ngày 3 lần, 30 viên/lần sau ăn.",
		},
	}
}

func TestBuildReportSections(t *testing.T) {
	report := BuildReport(sampleResponse())

	for _, want := range []string{
		"BIỆN CHỨNG",
		"Tình trạng chính: Thận Dương hư",
		"TRIỆU CHỨNG",
		"KẾT LUẬN",
		"CÁCH DÙNG",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}

	// Empty sections are omitted entirely.
	if strings.Contains(report, "HƯỚNG HỖ TRỢ") {
		t.Errorf("empty section rendered:\n%s", report)
	}

	// Markup is flattened to plain text for export.
	if strings.Contains(report, "**") {
		t.Errorf("bold markers leaked into report:\n%s", report)
	}
	if !strings.Contains(report, "• Lưng đau") {
		t.Errorf("bullet not rendered:\n%s", report)
	}
}

func TestBuildReportEmptyResponse(t *testing.T) {
	if got := BuildReport(&entity.AnalysisResponse{}); got != "" {
		t.Errorf("expected empty report, got %q", got)
	}
}

func TestFactory(t *testing.T) {
	factory := NewFactory()

	tests := []struct {
		format      entity.ReportFormat
		contentType string
		wantErr     bool
	}{
		{entity.FormatMarkdown, "text/markdown; charset=utf-8", false},
		{entity.FormatPDF, "application/pdf", false},
		{entity.ReportFormat("docx"), "", true},
	}

	for _, tt := range tests {
		f, err := factory.Create(tt.format)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Create(%q): expected error", tt.format)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Create(%q): %v", tt.format, err)
		}
		if f.ContentType() != tt.contentType {
			t.Errorf("ContentType() = %q, want %q", f.ContentType(), tt.contentType)
		}
	}
}

func TestMarkdownFormat(t *testing.T) {
	data, err := NewMarkdownFormatter().Format("nội dung")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# Kết quả phân tích Đông y") {
		t.Errorf("markdown output = %q", data)
	}
}

func TestPDFFormatProducesDocument(t *testing.T) {
	data, err := NewPDFFormatter().Format("report body")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Errorf("output does not look like a PDF: %q", data[:min(16, len(data))])
	}
}
