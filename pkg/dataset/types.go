package dataset

// Item is the serialized form of a weighted item.
type Item struct {
	ID        string  `json:"id,omitempty" toml:"id" yaml:"id,omitempty" bson:"id,omitempty"`
	Text      string  `json:"text" toml:"text" yaml:"text" bson:"text"`
	Weight    float64 `json:"weight" toml:"weight" yaml:"weight" bson:"weight"`
	Secondary string  `json:"secondary,omitempty" toml:"secondary" yaml:"secondary,omitempty" bson:"secondary,omitempty"`
	URL       string  `json:"url,omitempty" toml:"url" yaml:"url,omitempty" bson:"url,omitempty"`
}

// ItemSet is the top-level document of an item file.
type ItemSet struct {
	Items []Item `json:"items" toml:"items" yaml:"items"`
}

// Layout is the serialized form of a computed treemap.
type Layout struct {
	Width      float64 `json:"width" bson:"width"`
	Height     float64 `json:"height" bson:"height"`
	MaxDisplay int     `json:"max_display" bson:"max_display"`
	Mode       string  `json:"mode" bson:"mode"`
	Inset      float64 `json:"inset" bson:"inset"`
	Tiles      []Tile  `json:"tiles" bson:"tiles"`
}

// Tile is a placed item. X, Y, Width and Height are the drawn rectangle;
// Bounds is the un-inset cell.
type Tile struct {
	Index     int     `json:"index" bson:"index"`
	ID        string  `json:"id" bson:"id"`
	Text      string  `json:"text" bson:"text"`
	Secondary string  `json:"secondary,omitempty" bson:"secondary,omitempty"`
	URL       string  `json:"url,omitempty" bson:"url,omitempty"`
	Weight    float64 `json:"weight" bson:"weight"`
	X         float64 `json:"x" bson:"x"`
	Y         float64 `json:"y" bson:"y"`
	Width     float64 `json:"width" bson:"width"`
	Height    float64 `json:"height" bson:"height"`
	Bounds    Rect    `json:"bounds" bson:"bounds"`
	Color     Color   `json:"color" bson:"color"`
}

// Rect is a serialized rectangle.
type Rect struct {
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Color is a serialized HSL colour with its hex rendering.
type Color struct {
	Hue        float64 `json:"hue" bson:"hue"`
	Saturation float64 `json:"saturation" bson:"saturation"`
	Lightness  float64 `json:"lightness" bson:"lightness"`
	Hex        string  `json:"hex" bson:"hex"`
}
