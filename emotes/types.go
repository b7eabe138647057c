package emotes

// Format identifies the encoding of one rendered emote asset.
type Format string

const (
	FormatWEBP Format = "WEBP"
	FormatAVIF Format = "AVIF"
	FormatPNG  Format = "PNG"
	FormatGIF  Format = "GIF"
)

// File is one rendered asset variant of an emote, verbatim from the API.
type File struct {
	Name       string `json:"name" validate:"required"`
	StaticName string `json:"static_name"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	FrameCount int    `json:"frame_count"`
	Size       int64  `json:"size"`
	Format     Format `json:"format" validate:"required"`
}

// Host is a base URL plus the ordered asset variants served under it.
type Host struct {
	URL   string `json:"url" validate:"required"`
	Files []File `json:"files" validate:"dive"`
}

// File returns the first variant with the given format.
func (h Host) File(format Format) (File, bool) {
	for _, f := range h.Files {
		if f.Format == format {
			return f, true
		}
	}
	return File{}, false
}

// Owner is the summary of the account that owns an emote or set.
type Owner struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// Data carries the lifecycle and hosting detail nested inside an emote.
type Data struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Flags     int64    `json:"flags"`
	Lifecycle int      `json:"lifecycle"`
	State     []string `json:"state"`
	Listed    bool     `json:"listed"`
	Animated  bool     `json:"animated"`
	Owner     Owner    `json:"owner"`
	Host      Host     `json:"host"`
}

// Emote is one entry of a set. Instances are immutable once decoded; the
// loader replaces the whole list on every fetch.
type Emote struct {
	ID        string  `json:"id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Flags     int64   `json:"flags"`
	Timestamp int64   `json:"timestamp"`
	ActorID   *string `json:"actor_id"`
	Data      Data    `json:"data"`
}

// Set is the top-level emote-set resource. It is used transiently to extract
// the emote list and is not retained by callers.
type Set struct {
	ID         string   `json:"id" validate:"required"`
	Name       string   `json:"name"`
	Flags      int64    `json:"flags"`
	Tags       []string `json:"tags"`
	Immutable  bool     `json:"immutable"`
	Privileged bool     `json:"privileged"`
	Emotes     []Emote  `json:"emotes" validate:"dive"`
	EmoteCount int      `json:"emote_count"`
	Capacity   int      `json:"capacity"`
	Owner      *Owner   `json:"owner"`
}
