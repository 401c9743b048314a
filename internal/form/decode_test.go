package form

import (
	"errors"
	"testing"

	"github.com/dongycare/checker-backend/internal/entity"
)

func TestUnwrapNestedResults(t *testing.T) {
	raw := []byte(`{"analysis":{"principalStatus":"Thận Âm hư"},"results":{"ketLuan":"kết luận","trieuChung":["- a → b"]}}`)

	result, err := UnwrapResponse(raw)
	if err != nil {
		t.Fatal(err)
	}
	if result.KetLuan != "kết luận" {
		t.Errorf("unexpected conclusion: %q", result.KetLuan)
	}
	if len(result.TrieuChung) != 1 {
		t.Errorf("expected 1 symptom line, got %d", len(result.TrieuChung))
	}
}

func TestUnwrapTopLevelResult(t *testing.T) {
	raw := []byte(`{"ketLuan":"kết luận","huongHoTro":"hướng"}`)

	result, err := UnwrapResponse(raw)
	if err != nil {
		t.Fatal(err)
	}
	if result.KetLuan != "kết luận" || result.HuongHoTro != "hướng" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestUnwrapMalformed(t *testing.T) {
	for _, raw := range []string{"not json", `[1,2,3]`, `{"results":"a string"}`} {
		if _, err := UnwrapResponse([]byte(raw)); !errors.Is(err, entity.ErrMalformedResponse) {
			t.Errorf("%q: expected ErrMalformedResponse, got %v", raw, err)
		}
	}
}
