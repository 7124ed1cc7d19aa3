package intelligence

import "time"

// Built-in quotes served when the model is unavailable or its output is
// unusable. Rotated by day of year so repeated calls on one day agree.
var fallbackQuotes = []Quote{
	{Text: "Well begun is half done.", Author: "Aristotle"},
	{Text: "What gets scheduled gets done.", Author: "Michael Hyatt"},
	{Text: "You do not rise to the level of your goals. You fall to the level of your systems.", Author: "James Clear"},
	{Text: "The secret of getting ahead is getting started.", Author: "Mark Twain"},
	{Text: "Small deeds done are better than great deeds planned.", Author: "Peter Marshall"},
	{Text: "Focus on being productive instead of busy.", Author: "Tim Ferriss"},
	{Text: "It always seems impossible until it is done.", Author: "Nelson Mandela"},
}

func fallbackQuote() *Quote {
	q := fallbackQuotes[time.Now().YearDay()%len(fallbackQuotes)]
	q.Source = "deterministic"
	return &q
}
