package domain

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestDecodeImage(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(pngHeader)

	t.Run("base64 文字列から MIME タイプを判定すること", func(t *testing.T) {
		img, err := DecodeImage(encoded)
		if err != nil {
			t.Fatalf("DecodeImage() error = %v", err)
		}
		if img.MIMEType != "image/png" {
			t.Errorf("MIMEType = %q", img.MIMEType)
		}
	})

	t.Run("data URL の MIME タイプを優先すること", func(t *testing.T) {
		img, err := DecodeImage("data:image/jpeg;base64," + encoded)
		if err != nil {
			t.Fatalf("DecodeImage() error = %v", err)
		}
		if img.MIMEType != "image/jpeg" {
			t.Errorf("MIMEType = %q", img.MIMEType)
		}
	})

	t.Run("空文字は ErrEmptyImage", func(t *testing.T) {
		if _, err := DecodeImage("  "); !errors.Is(err, ErrEmptyImage) {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("不正な base64 はエラー", func(t *testing.T) {
		if _, err := DecodeImage("not base64!"); err == nil {
			t.Error("エラーが返されませんでした")
		}
	})
}

func TestImage_UnmarshalJSON(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(pngHeader)

	var fromString Image
	if err := json.Unmarshal([]byte(`"`+encoded+`"`), &fromString); err != nil {
		t.Fatalf("string: %v", err)
	}
	var fromObject Image
	if err := json.Unmarshal([]byte(`{"mimeType":"image/png","data":"`+encoded+`"}`), &fromObject); err != nil {
		t.Fatalf("object: %v", err)
	}
	if diff := cmp.Diff(fromString, fromObject); diff != "" {
		t.Errorf("mismatch (-string +object):\n%s", diff)
	}

	var empty Image
	if err := json.Unmarshal([]byte(`""`), &empty); err != nil || !empty.Empty() {
		t.Errorf("empty = %+v, err = %v", empty, err)
	}
}

func TestOrderByRole(t *testing.T) {
	data := []byte("x")
	in := []ReferenceImage{
		{Role: RoleBorder, Image: Image{Data: data}},
		{Role: RoleInspiration, Image: Image{Data: data}},
		{Role: RoleMain, Image: Image{Data: data}},
		{Role: RoleTop, Image: Image{}},
	}
	var roles []ImageRole
	for _, ri := range OrderByRole(in) {
		roles = append(roles, ri.Role)
	}
	if diff := cmp.Diff([]ImageRole{RoleMain, RoleBorder}, roles); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}
