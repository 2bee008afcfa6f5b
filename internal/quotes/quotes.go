package quotes

import (
	"hash/fnv"
	"time"

	"github.com/julianstephens/wellness/internal/utils"
)

// Quote is one entry of the fixed wellness-quote table
type Quote struct {
	Text   string
	Author string
}

var quotes = []Quote{
	{Text: "Take care of your body. It's the only place you have to live.", Author: "Jim Rohn"},
	{Text: "Health is not about the weight you lose, but about the life you gain.", Author: "Dr. Josh Axe"},
	{Text: "The groundwork for all happiness is good health.", Author: "Leigh Hunt"},
	{Text: "Your body can stand almost anything. It's your mind that you have to convince.", Author: "Unknown"},
	{Text: "Wellness is the complete integration of body, mind, and spirit.", Author: "Greg Anderson"},
	{Text: "To keep the body in good health is a duty... otherwise we shall not be able to keep our mind strong and clear.", Author: "Buddha"},
	{Text: "The first wealth is health.", Author: "Ralph Waldo Emerson"},
	{Text: "A healthy outside starts from the inside.", Author: "Robert Urich"},
	{Text: "Progress, not perfection, is what we should strive for.", Author: "Unknown"},
	{Text: "Small steps daily lead to big changes yearly.", Author: "Unknown"},
	{Text: "You don't have to be great to get started, but you have to get started to be great.", Author: "Les Brown"},
	{Text: "The only bad workout is the one that didn't happen.", Author: "Unknown"},
	{Text: "Mindfulness is about being fully awake in our lives.", Author: "Jon Kabat-Zinn"},
	{Text: "Rest when you're weary. Refresh and renew yourself, your body, your mind, your spirit.", Author: "Ralph Marston"},
}

// OfTheDay returns the quote for the given instant's calendar day. The pick
// is a pure function of the day-key, so it is stable all day and changes at
// midnight.
func OfTheDay(t time.Time) Quote {
	h := fnv.New32a()
	h.Write([]byte(utils.DayKey(t)))
	return quotes[int(h.Sum32())%len(quotes)]
}

// All returns the full quote table
func All() []Quote {
	out := make([]Quote, len(quotes))
	copy(out, quotes)
	return out
}
