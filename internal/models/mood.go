package models

// MoodEntry records how the user felt on a single day. One entry per
// day-key; logging again on the same day replaces the previous entry.
type MoodEntry struct {
	Date  string `json:"date"` // YYYY-MM-DD format
	Mood  string `json:"mood"`
	Emoji string `json:"emoji"`
}

// Mood pairs a mood name with its emoji glyph
type Mood struct {
	Name  string
	Emoji string
}

// Moods returns the fixed mood palette in display order
func Moods() []Mood {
	return []Mood{
		{Name: "amazing", Emoji: "🤩"},
		{Name: "great", Emoji: "😊"},
		{Name: "good", Emoji: "🙂"},
		{Name: "okay", Emoji: "😐"},
		{Name: "meh", Emoji: "😕"},
		{Name: "stressed", Emoji: "😤"},
		{Name: "sad", Emoji: "😢"},
	}
}

// MoodByName looks up a palette mood by name
func MoodByName(name string) (Mood, bool) {
	for _, m := range Moods() {
		if m.Name == name {
			return m, true
		}
	}
	return Mood{}, false
}

// Theme is the stored UI theme preference
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}
