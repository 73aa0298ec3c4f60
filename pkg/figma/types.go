package figma

// FileResponse represents the response from the Figma file API endpoint.
// Only the fields the token pipeline reads are decoded; everything else in the payload is ignored.
type FileResponse struct {
	Name          string `json:"name"`
	LastModified  string `json:"lastModified"`
	ThumbnailURL  string `json:"thumbnailUrl"`
	Version       string `json:"version"`
	Document      *Node  `json:"document"`
	SchemaVersion int    `json:"schemaVersion"`
}

// Pages returns the top-level page nodes of the document in document order.
// The second return value is false when the response has no document or the document
// carries no children sequence at all, which callers treat as a malformed file.
func (f *FileResponse) Pages() ([]Node, bool) {
	if f == nil || f.Document == nil || f.Document.Children == nil {
		return nil, false
	}
	return f.Document.Children, true
}

// Node represents a single element in the Figma document tree hierarchy.
// A node either has children or carries the payload fields (fills, effects, style, bounding box)
// its eventual token kind needs; a missing children field decodes to an empty sequence.
type Node struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Type                string     `json:"type"`
	Children            []Node     `json:"children,omitempty"`
	Fills               []Paint    `json:"fills,omitempty"`
	Effects             []Effect   `json:"effects,omitempty"`
	Style               *TypeStyle `json:"style,omitempty"`
	AbsoluteBoundingBox *Rectangle `json:"absoluteBoundingBox,omitempty"`
}

// Node types the extractor cares about.
const (
	NodeTypeDocument = "DOCUMENT"
	NodeTypeCanvas   = "CANVAS"
	NodeTypeFrame    = "FRAME"
	NodeTypeGroup    = "GROUP"
)

// Effect types.
const (
	EffectDropShadow  = "DROP_SHADOW"
	EffectInnerShadow = "INNER_SHADOW"
)

// Color represents an RGBA color with float values ranging from 0 to 1.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint represents a fill applied to a Figma node.
// Opacity is omitted by the API when it equals 1, hence the pointer.
type Paint struct {
	Type    string   `json:"type"`
	Opacity *float64 `json:"opacity,omitempty"`
	Color   *Color   `json:"color,omitempty"`
}

// Effect represents a visual effect applied to a Figma node such as a drop or inner shadow.
type Effect struct {
	Type   string  `json:"type"`
	Radius float64 `json:"radius,omitempty"`
	Color  *Color  `json:"color,omitempty"`
	Offset *Vector `json:"offset,omitempty"`
	Spread float64 `json:"spread,omitempty"`
}

// Vector represents a 2D offset.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TypeStyle represents the text styling properties of a TEXT node.
type TypeStyle struct {
	FontFamily         string  `json:"fontFamily"`
	FontPostScriptName string  `json:"fontPostScriptName"`
	FontWeight         float64 `json:"fontWeight"`
	FontSize           float64 `json:"fontSize"`
	LineHeightPx       float64 `json:"lineHeightPx"`
	LetterSpacing      float64 `json:"letterSpacing"`
}

// Rectangle represents a bounding box with position (X, Y) and dimensions (Width, Height).
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
