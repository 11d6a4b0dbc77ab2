package prompts

const (
	// PatternBaseTemplate はテキスタイル柄生成の固定の書き出しです。%s は柄の説明です。
	PatternBaseTemplate = `Generate a seamless, repeating textile pattern based on this description: "%s". The image should be a high-quality, print-ready pattern. Focus on the pattern itself, making it tileable.`

	patternFabricTemplate  = " The pattern should be rendered as if it were on a high-quality %s fabric, accurately showing its characteristic texture, sheen, and drape."
	patternWeaveTemplate   = " The weave type should be %s."
	patternTextureTemplate = " The texture should look %s."
	patternScaleTemplate   = " The scale of the pattern elements should be %s."
)

const (
	tryOnSubjectTemplate = "Show a photorealistic image of a beautiful Indian woman with a %s body type as a model. She is wearing a stylish %s with a %s neck."
	tryOnFabricTemplate  = " The outfit is made from a high-quality %s fabric. The drape, folds, and light reflection on the clothing must accurately represent this material."
	// tryOnWearingStyleTemplate は特例の無い着こなしに使う汎用の言い回しです。
	tryOnWearingStyleTemplate = " The outfit is worn in the %s style."

	tryOnTopExclusive  = " The top/blouse of the outfit must be made *exclusively* from the first provided pattern image."
	tryOnMainExclusive = " The bottom/saree/lehenga/main body of the outfit must be made *exclusively* from the second provided pattern image. The patterns should not be mixed or blended."
	tryOnMainEntire    = " The entire outfit should be covered in the single provided textile pattern."
	tryOnBorderTrim    = " The final provided image is a border pattern. This border pattern must be applied to the edges of the outfit, such as the hem of the sleeves, the neckline, the hem of a skirt/lehenga, or the pallu/dupatta edges. It should act as a decorative trim and should not cover the main body of the fabric."

	tryOnPoseTemplate        = " The model should be posed in a '%s' stance."
	tryOnAccessories         = " Style the model with appropriate and elegant accessories (like jewelry, shoes, handbag) that complement the outfit and the occasion."
	tryOnEnvironmentTemplate = " Place the model in a '%s' environment. The lighting, shadows, and mood must be consistent with this setting."
	tryOnClosingTemplate     = " This should be a %s shot. The final image must be ultra-realistic and high-fashion."

	recolorTemplate = `Recolor the provided image using this new color palette: "%s". It is crucial to maintain the original pattern, structure, and details exactly. Only change the colors.`
)

// drapeOverrides は着こなし名（小文字）から専用の言い回しへの対応表です。
// 地域特有のドレープは既定の左肩の慣習を反転するため、汎用の言い回しでは表現しません。
var drapeOverrides = map[string]string{
	"gujarati (seedha pallu)": " The saree is draped in the Gujarati (Seedha Pallu) style: the pallu is brought from the back over the right shoulder and spread across the front of the body, reversing the usual Nivi drape where the pallu falls over the left shoulder.",
	"gujarati dupatta drape":  " The dupatta is draped in the Gujarati style: it is brought from the back over the right shoulder and spread across the front of the lehenga, reversing the usual left-shoulder dupatta drape.",
}

const (
	paletteInstruction = "Analyze this image and extract the 5 most dominant and defining colors. Return them as a JSON array with a creative 'name' for the color (e.g., 'Midnight Silk', 'Sunset Gold') and the 'hex' code."

	analysisInstruction = "Describe this textile pattern in detail. Identify the main motifs, color palette, style (e.g., geometric, floral, abstract), and any noticeable texture or weave. Create a descriptive prompt that an AI image generator could use to recreate this design."

	borderPromptInstruction = "Analyze this textile pattern in detail. Based on its motifs, color palette, and style, create a short, descriptive text prompt for an AI image generator to create a complementary and matching *border* or *lining* design. The border prompt should describe elements like intricate embroidery, trim, or edge patterns that would stylistically match the main fabric. For example, if the main fabric is floral, the border could be a delicate vine pattern. Return only the new prompt for the border design."
)

const (
	promptIdeasInstruction = "Generate 3 diverse, creative, and inspiring prompts for textile design for Indian fashion. Return as a JSON array of strings."

	enhancementSystemInstruction = "You are a professional fashion and textile design assistant. Refine the user's prompt into a vivid, detailed, and professional description for an AI image generator. Focus on keywords for patterns, textures, colors, and artistic style. Return only the enhanced prompt."

	trendForecastInstruction = "You are a fashion trend forecaster for WGSN. Based on current data, generate 4 diverse, actionable textile and pattern trend forecasts for the upcoming season in Indian fashion. For each trend, provide a 'name', a short 'description', and a 'prompt' that an AI image generator could use."

	sustainabilityTemplate = "The user wants to use %s for their design. Suggest 2 sustainable or ethical alternative fabrics. For each, provide its 'name' and a brief 'reason' explaining its benefit (e.g., lower water usage, cruelty-free)."

	techPackTemplate = "You are a fashion production assistant. Analyze the provided image of a model wearing an outfit and the details below. Generate a technical specification sheet (tech pack). Extract the main colors and provide their approximate HEX codes. Details: %s"

	ecommerceTemplate = "You are an expert e-commerce copywriter for a luxury fashion brand. Based on the following outfit details, write a compelling product page. Details: %s"
)
