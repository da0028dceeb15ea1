// Package ai wraps the OpenAI collaborators that enrich dreams with an
// interpretation and an illustrative image.
package ai

// defaultStylePrompt is used when the requested style is unknown or empty.
const defaultStylePrompt = "a surreal and artistic image"

// stylePrompts maps a visual style tag to the prompt fragment handed to the
// image model. Unknown tags fall back to defaultStylePrompt.
var stylePrompts = map[string]string{
	"abstract":         "an abstract painting with bold shapes and colors",
	"anime":            "a Japanese anime scene with vibrant colors and expressive characters",
	"watercolor":       "a soft and ethereal watercolor painting with delicate brush strokes",
	"art-nouveau":      "an Art Nouveau piece with ornate, nature-inspired designs and flowing lines",
	"cartoon":          "a colorful cartoon scene with exaggerated features and lively expressions",
	"cyberpunk":        "a futuristic cyberpunk scene with neon lights, advanced technology, and urban dystopia",
	"pixar":            "a Pixar-style 3D animated scene with vibrant colors and charming characters",
	"van-gogh":         "a post-impressionist painting in the style of Van Gogh with bold brushstrokes and vivid colors",
	"medieval-fantasy": "a medieval fantasy scene with castles, mythical creatures, and magical elements",
	"minimalist":       "a minimalist design with simple shapes, limited color palette, and lots of negative space",
	"oil":              "a richly textured oil painting with deep colors and visible brush strokes",
	"pixel-art":        "a retro-style pixel art scene with distinct, blocky pixels and limited color palette",
	"pop-art":          "a bold pop art piece inspired by Roy Lichtenstein with bright colors and comic-like elements",
	"realistic":        "a highly detailed, photorealistic image with accurate lighting and textures",
	"surrealist":       "a surrealist painting in the style of Salvador Dalí with dreamlike and impossible elements",
}

// StylePrompt resolves a style tag to its prompt fragment.
func StylePrompt(style string) string {
	if p, ok := stylePrompts[style]; ok {
		return p
	}
	return defaultStylePrompt
}

// KnownStyle reports whether the tag names one of the supported styles.
func KnownStyle(style string) bool {
	_, ok := stylePrompts[style]
	return ok
}
