package block

// Kind is the wire discriminator carried in every block's "type" field.
type Kind string

const (
	KindCode    Kind = "code"
	KindImage   Kind = "cutaway-image"
	KindGif     Kind = "cutaway-gif"
	KindVideo   Kind = "cutaway-video"
	KindConsole Kind = "cutaway-console"
	KindLayout  Kind = "layout-split"
)

// Block is one element of a content tree. The set of implementations is closed:
// Code, Image, Gif, Video, Console and Layout.
type Block interface {
	Kind() Kind
	sealed()
}

// Code is a source snippet that is typed onto the screen.
type Code struct {
	Language       string `yaml:"language" json:"language"`
	Title          string `yaml:"title" json:"title,omitempty"`
	Content        string `yaml:"content" json:"content"`
	Highlight      *bool  `yaml:"highlight" json:"highlight,omitempty"`
	TypeFillin     *bool  `yaml:"typeFillin" json:"typeFillin,omitempty"`
	StartFromBlank bool   `yaml:"startFromBlank" json:"startFromBlank,omitempty"`
}

// Highlighted reports whether the block gets a highlight phase (default true).
func (c Code) Highlighted() bool { return boolOr(c.Highlight, true) }

// TypesIn reports whether content is revealed character by character (default true).
func (c Code) TypesIn() bool { return boolOr(c.TypeFillin, true) }

// Cutaway holds the fields shared by every media cutaway.
type Cutaway struct {
	Title           string   `yaml:"title" json:"title,omitempty"`
	DurationSeconds *float64 `yaml:"durationSeconds" json:"durationSeconds,omitempty"`
}

// ExplicitSeconds returns the author-supplied duration, if any.
func (c Cutaway) ExplicitSeconds() (float64, bool) {
	if c.DurationSeconds == nil {
		return 0, false
	}
	return *c.DurationSeconds, true
}

// Image is a still image cutaway.
type Image struct {
	Cutaway `yaml:",inline"`
	Src     string `yaml:"src" json:"src"`
	Alt     string `yaml:"alt" json:"alt,omitempty"`
	Width   int    `yaml:"width" json:"width,omitempty"`
	Height  int    `yaml:"height" json:"height,omitempty"`
}

// Gif is an animated image cutaway.
type Gif struct {
	Cutaway `yaml:",inline"`
	Src     string `yaml:"src" json:"src"`
	Alt     string `yaml:"alt" json:"alt,omitempty"`
	Width   int    `yaml:"width" json:"width,omitempty"`
	Height  int    `yaml:"height" json:"height,omitempty"`
}

// Video is a clip cutaway with an optional playback window.
type Video struct {
	Cutaway   `yaml:",inline"`
	Src       string   `yaml:"src" json:"src"`
	StartSec  *float64 `yaml:"startSec" json:"startSec,omitempty"`
	EndSec    *float64 `yaml:"endSec" json:"endSec,omitempty"`
	PlayToEnd bool     `yaml:"playToEnd" json:"playToEnd,omitempty"`
	Muted     bool     `yaml:"muted" json:"muted,omitempty"`
	Width     int      `yaml:"width" json:"width,omitempty"`
	Height    int      `yaml:"height" json:"height,omitempty"`
}

// Window returns the designated playback window in seconds when both ends are
// set and the window is non-empty.
func (v Video) Window() (start, end float64, ok bool) {
	if v.StartSec == nil || v.EndSec == nil {
		return 0, 0, false
	}
	start, end = *v.StartSec, *v.EndSec
	if start < 0 {
		start = 0
	}
	if end <= start {
		return 0, 0, false
	}
	return start, end, true
}

// Console is a simulated terminal session. The leading CommandLines lines of
// Content are typed as the command; the rest is printed as output.
type Console struct {
	Cutaway        `yaml:",inline"`
	Content        string   `yaml:"content" json:"content"`
	DurationFrames *int     `yaml:"durationFrames" json:"durationFrames,omitempty"`
	CommandLines   int      `yaml:"commandLines" json:"commandLines,omitempty"`
	CommandCPS     *float64 `yaml:"commandCps" json:"commandCps,omitempty"`
	OutputCPS      *float64 `yaml:"outputCps" json:"outputCps,omitempty"`
	EnterDelay     *float64 `yaml:"enterDelay" json:"enterDelay,omitempty"`
	Append         bool     `yaml:"append" json:"append,omitempty"`
	Prompt         string   `yaml:"prompt" json:"prompt,omitempty"`
	Cwd            string   `yaml:"cwd" json:"cwd,omitempty"`
	Prefix         string   `yaml:"prefix" json:"prefix,omitempty"`
	ShowPrompt     *bool    `yaml:"showPrompt" json:"showPrompt,omitempty"`
}

// PromptVisible reports whether the prompt is drawn before the command (default true).
func (c Console) PromptVisible() bool { return boolOr(c.ShowPrompt, true) }

// Layout arranges panes side by side (row) or stacked (column).
type Layout struct {
	Direction string    `yaml:"direction" json:"direction"`
	Gap       *int      `yaml:"gap" json:"gap,omitempty"`
	Sizes     []float64 `yaml:"sizes" json:"sizes,omitempty"`
	Panes     []Pane    `yaml:"-" json:"-"`
}

// Pane is one column or row of a Layout with its own block sequence.
type Pane struct {
	Blocks []Block
}

func (Code) Kind() Kind    { return KindCode }
func (Image) Kind() Kind   { return KindImage }
func (Gif) Kind() Kind     { return KindGif }
func (Video) Kind() Kind   { return KindVideo }
func (Console) Kind() Kind { return KindConsole }
func (Layout) Kind() Kind  { return KindLayout }

func (Code) sealed()    {}
func (Image) sealed()   {}
func (Gif) sealed()     {}
func (Video) sealed()   {}
func (Console) sealed() {}
func (Layout) sealed()  {}

// Title returns the block's title, or "" for layouts.
func Title(b Block) string {
	switch v := b.(type) {
	case Code:
		return v.Title
	case Image:
		return v.Title
	case Gif:
		return v.Title
	case Video:
		return v.Title
	case Console:
		return v.Title
	default:
		return ""
	}
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}
