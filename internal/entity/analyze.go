package entity

// Part is one fragment of a multi-modal prompt: plain text or an
// inline base64-encoded image. Exactly one of the fields is set.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// InlineData carries an inline image payload.
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// AnalyzeRequest is the wire contract between clients and the relay.
type AnalyzeRequest struct {
	SystemPrompt string `json:"systemPrompt"`
	ContentParts []Part `json:"contentParts"`
}

// Analysis is the model's status breakdown: the dominant group, the
// secondary groups with at least two symptoms, and the combined verdict
// when three or more groups are weak.
type Analysis struct {
	PrincipalStatus     string   `json:"principalStatus"`
	CooperativeStatuses []string `json:"cooperativeStatuses"`
	CombinedStatus      string   `json:"combinedStatus"`
}

// AnalysisResult holds the six user-facing result sections. Field names
// follow the response schema the model is constrained to.
type AnalysisResult struct {
	TrieuChung     []string `json:"trieuChung"`
	KetLuan        string   `json:"ketLuan"`
	HuongHoTro     string   `json:"huongHoTro"`
	GoiYSanPham    string   `json:"goiYSanPham"`
	CachDung       string   `json:"cachDung"`
	AnUongSinhHoat string   `json:"anUongSinhHoat"`
}

// AnalysisResponse is the full schema-shaped document returned by the
// model. All fields are optional; absent sections render as nothing.
type AnalysisResponse struct {
	Analysis *Analysis       `json:"analysis,omitempty"`
	Results  *AnalysisResult `json:"results,omitempty"`
}

// ReportFormat selects the export format for an analysis report.
type ReportFormat string

const (
	FormatMarkdown ReportFormat = "markdown"
	FormatPDF      ReportFormat = "pdf"
)
