package domain

import "strings"

// Catalog は UI が選択肢として提示するスタイル項目の一覧です。
type Catalog struct {
	Outfits       []string            `json:"outfits"`
	Necklines     []string            `json:"necklines"`
	CameraViews   []string            `json:"cameraViews"`
	ModelSizes    []string            `json:"modelSizes"`
	Fabrics       []string            `json:"fabrics"`
	Environments  []string            `json:"environments"`
	Poses         []string            `json:"poses"`
	DesignEras    []string            `json:"designEras"`
	WearingStyles map[string][]string `json:"wearingStyles"`
}

// 試着の固定文で使う既定値です。値が空の場合に使用します。
const (
	DefaultModelSize   = "Standard"
	DefaultCameraView  = "Full Body view"
	DefaultEnvironment = "Minimalist Studio"
	DefaultPose        = "Standing"
)

// DefaultCatalog は既定の選択肢を返します。
func DefaultCatalog() Catalog {
	return Catalog{
		Outfits:      []string{"Saree with Blouse", "Lehenga Choli", "Punjabi Suit", "Anarkali Suit", "Kurta Pajama", "Sherwani"},
		Necklines:    []string{"Round Neck", "V-Neck", "Boat Neck", "Sweetheart Neck", "High Neck", "Square Neck"},
		CameraViews:  []string{"Front", "Three-Quarter", "Full Body", "Back", "Left Side", "Right Side"},
		ModelSizes:   []string{"Standard", "XL", "XXL", "XXXL"},
		Fabrics:      []string{SentinelAuto, "Silk", "Cotton", "Chiffon", "Georgette", "Velvet", "Brocade", "Linen", "Denim"},
		Environments: []string{"Minimalist Studio", "Sunny Beach", "Lush Garden", "Urban Street", "Evening Gala", "Royal Palace Interior"},
		Poses:        []string{"Standing", "Walking", "Hands on Hips", "Seated Gracefully", "Twirling"},
		DesignEras:   []string{"Default", "Mughal", "Art Deco", "Victorian", "60s Psychedelic", "Japanese Ukiyo-e"},
		WearingStyles: map[string][]string{
			"Saree with Blouse": {"Standard Nivi Drape", "Gujarati (Seedha Pallu)", "Bengali (Athpourey)", "Maharashtrian (Nauvari)", "South Indian (Madisar)", "Lehenga Saree Drape"},
			"Lehenga Choli":     {"Standard Dupatta Drape", "Gujarati Dupatta Drape", "Dupatta Over Head (Bridal)", "Cape Style Dupatta"},
			"Punjabi Suit":      {"Standard Kameez", "Patiala Salwar Style", "Sharara Style"},
			"Anarkali Suit":     {"Standard Anarkali", "Floor-Length Anarkali", "Jacket Style Anarkali"},
			"Kurta Pajama":      {"Classic Kurta Pajama", "Kurta with Dhoti", "Pathani Suit Style"},
			"Sherwani":          {"Classic Sherwani", "Indo-Western Sherwani", "Jodhpuri Sherwani"},
		},
	}
}

// CameraViewLabel は UI のカメラ方向名を指示文用の表現にします（"Front" → "Front view"）。
func CameraViewLabel(view string) string {
	if !HasValue(view) {
		return DefaultCameraView
	}
	view = strings.TrimSpace(view)
	if strings.HasSuffix(strings.ToLower(view), " view") {
		return view
	}
	return view + " view"
}
