package protocol

// RoomEntry is one configured room. Values are never mutated after the
// directory that owns them is loaded.
type RoomEntry struct {
	Title    string `yaml:"title" json:"title"`
	URL      string `yaml:"url" json:"url,omitempty"`
	YtURL    string `yaml:"ytURL" json:"ytURL,omitempty"`
	Hint     string `yaml:"hint" json:"hint,omitempty"`
	Disabled bool   `yaml:"disabled" json:"disabled,omitempty"`
}

// DisplayEntry is the render-ready projection of a RoomEntry. Empty strings
// stand for omitted optional fields.
type DisplayEntry struct {
	Title         string `json:"title"`
	URL           string `json:"url,omitempty"`
	ThumbnailRef  string `json:"thumbnailRef,omitempty"`
	DisabledLabel string `json:"disabledLabel,omitempty"`

	Position  int  `json:"position"`
	Pressable bool `json:"pressable"`
}

func (e DisplayEntry) HasURL() bool       { return e.URL != "" }
func (e DisplayEntry) HasThumbnail() bool { return e.ThumbnailRef != "" }
func (e DisplayEntry) IsDisabled() bool   { return e.DisabledLabel != "" }

// Section groups display entries for consumers with section semantics.
type Section struct {
	Title string         `json:"title,omitempty"`
	Data  []DisplayEntry `json:"data"`
}

type (
	// LocalizeFunc translates a stable message key.
	LocalizeFunc func(key string) string
	// NavigateFunc switches the active room to an absolute target.
	NavigateFunc func(url string)
	// DeleteEntryFunc removes an entry from the recent list.
	DeleteEntryFunc func(id string)
	// DialInSummaryFunc shows dial-in numbers for a room url.
	DialInSummaryFunc func(url string)
)
