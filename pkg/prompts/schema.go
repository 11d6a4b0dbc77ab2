package prompts

import "google.golang.org/genai"

func stringSchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString}
}

func stringArraySchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: stringSchema()}
}

// objectSchema は宣言順をプロパティ順として保持するオブジェクトスキーマを作ります。
func objectSchema(fields ...schemaField) *genai.Schema {
	s := &genai.Schema{
		Type:       genai.TypeObject,
		Properties: make(map[string]*genai.Schema, len(fields)),
	}
	for _, f := range fields {
		s.Properties[f.name] = f.schema
		s.PropertyOrdering = append(s.PropertyOrdering, f.name)
		s.Required = append(s.Required, f.name)
	}
	return s
}

type schemaField struct {
	name   string
	schema *genai.Schema
}

func field(name string, schema *genai.Schema) schemaField {
	return schemaField{name: name, schema: schema}
}

// ColorSwatchSchema は {name, hex} の色エントリです。
func ColorSwatchSchema() *genai.Schema {
	return objectSchema(field("name", stringSchema()), field("hex", stringSchema()))
}

// PaletteSchema は色エントリの配列です。
func PaletteSchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: ColorSwatchSchema()}
}

// PromptIdeasSchema は文字列の配列です。
func PromptIdeasSchema() *genai.Schema {
	return stringArraySchema()
}

// TrendForecastSchema は {name, description, prompt} の配列です。
func TrendForecastSchema() *genai.Schema {
	return &genai.Schema{
		Type:  genai.TypeArray,
		Items: objectSchema(field("name", stringSchema()), field("description", stringSchema()), field("prompt", stringSchema())),
	}
}

// SustainabilitySchema は {name, reason} の配列です。
func SustainabilitySchema() *genai.Schema {
	return &genai.Schema{
		Type:  genai.TypeArray,
		Items: objectSchema(field("name", stringSchema()), field("reason", stringSchema())),
	}
}

// TechPackSchema はテックパックの二階層のスキーマです。
func TechPackSchema() *genai.Schema {
	return objectSchema(
		field("outfit_name", stringSchema()),
		field("description", stringSchema()),
		field("fabric_recommendation", stringSchema()),
		field("color_palette", PaletteSchema()),
		field("construction_notes", stringArraySchema()),
	)
}

// EcommerceCopySchema は商品コピーのスキーマです。
func EcommerceCopySchema() *genai.Schema {
	return objectSchema(
		field("title", stringSchema()),
		field("description", stringSchema()),
		field("keywords", stringArraySchema()),
	)
}
