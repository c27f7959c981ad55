package timeline

// Channel names one animatable scalar.
type Channel int

const (
	TranslateX Channel = iota
	TranslateY
	Scale
	DrawerY
	LightBoxOpacity
	BadgeRotation
	BadgeOpacity
	TokenOpacity
	ChannelCount // Must be last - used for array sizing
)

var channelNames = [ChannelCount]string{
	TranslateX:      "translateX",
	TranslateY:      "translateY",
	Scale:           "scale",
	DrawerY:         "drawerTranslateY",
	LightBoxOpacity: "lightBoxOpacity",
	BadgeRotation:   "twoDayStreakRotation",
	BadgeOpacity:    "twoDayStreakOpacity",
	TokenOpacity:    "silverTokenOpacity",
}

func (c Channel) Valid() bool {
	return c >= 0 && c < ChannelCount
}

func (c Channel) String() string {
	if !c.Valid() {
		return "none"
	}
	return channelNames[c]
}

// Reader exposes channel values without write access. Renderers take a
// Reader; only timelines and the drawer model hold *Cells.
type Reader interface {
	Value(ch Channel) float32
}

// Cells holds the current value of every channel.
type Cells struct {
	values [ChannelCount]float32
}

// NewCells returns cells initialised to the given values.
func NewCells(values [ChannelCount]float32) *Cells {
	return &Cells{values: values}
}

func (c *Cells) Value(ch Channel) float32 {
	if !ch.Valid() {
		return 0
	}
	return c.values[ch]
}

func (c *Cells) Set(ch Channel, v float32) {
	if !ch.Valid() {
		return
	}
	c.values[ch] = v
}

// Snapshot copies every channel value.
func (c *Cells) Snapshot() [ChannelCount]float32 {
	return c.values
}

// Restore assigns the listed channels from values. With no channels listed
// every channel is restored.
func (c *Cells) Restore(values [ChannelCount]float32, chs ...Channel) {
	if len(chs) == 0 {
		c.values = values
		return
	}
	for _, ch := range chs {
		if ch.Valid() {
			c.values[ch] = values[ch]
		}
	}
}
