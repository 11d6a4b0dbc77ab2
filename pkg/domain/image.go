package domain

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ImageRole は参照画像がリクエスト内で担う役割です。
type ImageRole string

const (
	RoleTop         ImageRole = "top"
	RoleMain        ImageRole = "main"
	RoleBorder      ImageRole = "border"
	RoleInspiration ImageRole = "inspiration"
)

// DefaultImageMIMEType は MIME タイプを判別できなかった場合に使用します。
const DefaultImageMIMEType = "image/png"

// compositeRoleOrder は合成リクエストでの画像の並び順です。生成側は位置で画像を区別します。
var compositeRoleOrder = []ImageRole{RoleTop, RoleMain, RoleBorder}

// Image はエンコード済みのビットマップデータです。
type Image struct {
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"data"`
}

// ReferenceImage は役割付きの参照画像です。
type ReferenceImage struct {
	Role ImageRole
	Image
}

// ErrEmptyImage は画像データが空の場合に返されます。
var ErrEmptyImage = errors.New("画像データが空です")

// DecodeImage は base64 文字列（data URL 形式も可）を Image に変換します。
func DecodeImage(encoded string) (Image, error) {
	raw := strings.TrimSpace(encoded)
	if raw == "" {
		return Image{}, ErrEmptyImage
	}

	mimeType := ""
	if strings.HasPrefix(raw, "data:") {
		header, body, ok := strings.Cut(raw, ",")
		if !ok {
			return Image{}, fmt.Errorf("data URL の形式が不正です")
		}
		mimeType = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		raw = body
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return Image{}, fmt.Errorf("base64 のデコードに失敗しました: %w", err)
	}
	if len(data) == 0 {
		return Image{}, ErrEmptyImage
	}

	if mimeType == "" {
		mimeType = sniffImageType(data)
	}
	return Image{MIMEType: mimeType, Data: data}, nil
}

// NewImage は生のバイト列から Image を作成します。MIME タイプは内容から判定します。
func NewImage(data []byte) Image {
	return Image{MIMEType: sniffImageType(data), Data: data}
}

// UnmarshalJSON は base64 文字列（data URL 可）と {mimeType, data} 形式の両方を受け付けます。
// 空文字は画像なしとして扱います。
func (img *Image) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var encoded string
		if err := json.Unmarshal(b, &encoded); err != nil {
			return err
		}
		if strings.TrimSpace(encoded) == "" {
			*img = Image{}
			return nil
		}
		decoded, err := DecodeImage(encoded)
		if err != nil {
			return err
		}
		*img = decoded
		return nil
	}

	type plain Image
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*img = Image(p)
	if img.MIMEType == "" && len(img.Data) > 0 {
		img.MIMEType = sniffImageType(img.Data)
	}
	return nil
}

// Encode は画像データを base64 文字列として返します。
func (img Image) Encode() string {
	return base64.StdEncoding.EncodeToString(img.Data)
}

// Empty は画像データが無いかを判定します。
func (img *Image) Empty() bool {
	return img == nil || len(img.Data) == 0
}

func sniffImageType(data []byte) string {
	detected := http.DetectContentType(data)
	if strings.HasPrefix(detected, "image/") {
		return detected
	}
	return DefaultImageMIMEType
}

// OrderByRole は top → main → border の固定順で画像を並べ替えます。
// 欠けている役割は詰めて省略し、合成対象外の役割は含めません。
func OrderByRole(images []ReferenceImage) []ReferenceImage {
	ordered := make([]ReferenceImage, 0, len(images))
	for _, role := range compositeRoleOrder {
		for _, img := range images {
			if img.Role == role && !img.Empty() {
				ordered = append(ordered, img)
				break
			}
		}
	}
	return ordered
}
