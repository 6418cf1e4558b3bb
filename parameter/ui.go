package parameter

// Authoring & Rendering
const (
	// PickRadius is the world-space radius for hit-testing points
	PickRadius = 2.0

	// RenderScale maps screen height to zoom, 1/RenderScale world units fill the height
	RenderScale = 0.01

	// CellAspect is the width/height ratio of a terminal cell
	CellAspect = 0.5

	// PointGlyph marks a point, LinkGlyph fills a stick
	PointGlyph = '●'
	LinkGlyph  = '·'
)
