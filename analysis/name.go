package analysis

import (
	"encoding/hex"
	"strings"
)

// NameWords is the number of words in a generated design name.
const NameWords = 2

// wordlist maps a byte to a word; 256 entries, sorted.
var wordlist = [256]string{
	"ack", "alabama", "alanine", "alaska", "alpha", "angel", "apart", "april", "arizona",
	"arkansas", "artist", "asparagus", "aspen", "august", "autumn", "avocado", "bacon",
	"bakerloo", "batman", "beer", "berlin", "beryllium", "black", "blossom", "blue", "bluebird",
	"bravo", "bulldog", "burger", "butter", "california", "carbon", "cardinal", "carolina",
	"carpet", "cat", "ceiling", "charlie", "chicken", "coffee", "cola", "cold", "colorado",
	"comet", "connecticut", "crazy", "cup", "dakota", "december", "delaware", "delta", "diet",
	"don", "double", "early", "earth", "east", "echo", "edward", "eight", "eighteen", "eleven",
	"emma", "enemy", "equal", "failed", "fanta", "fifteen", "fillet", "finch", "fish", "five",
	"fix", "floor", "florida", "football", "four", "fourteen", "foxtrot", "freddie", "friend",
	"fruit", "gee", "georgia", "glucose", "golf", "green", "grey", "hamper", "happy", "harry",
	"hawaii", "helium", "high", "hot", "hotel", "hydrogen", "idaho", "illinois", "india",
	"indigo", "ink", "iowa", "island", "item", "jersey", "jig", "johnny", "juliet", "july",
	"jupiter", "kansas", "kentucky", "kilo", "king", "kitten", "lactose", "lake", "lamp", "lemon",
	"leopard", "lima", "lion", "lithium", "london", "louisiana", "low", "magazine", "magnesium",
	"maine", "mango", "march", "mars", "maryland", "massachusetts", "may", "mexico", "michigan",
	"mike", "minnesota", "mirror", "mississippi", "missouri", "mobile", "mockingbird", "monkey",
	"montana", "moon", "mountain", "muppet", "music", "nebraska", "neptune", "network", "nevada",
	"nine", "nineteen", "nitrogen", "north", "november", "nuts", "october", "ohio", "oklahoma",
	"one", "orange", "oranges", "oregon", "oscar", "oven", "oxygen", "papa", "paris", "pasta",
	"pennsylvania", "pip", "pizza", "pluto", "potato", "princess", "purple", "quebec", "queen",
	"quiet", "red", "river", "robert", "robin", "romeo", "rugby", "sad", "salami", "saturn",
	"september", "seven", "seventeen", "shade", "sierra", "single", "sink", "six", "sixteen",
	"skylark", "snake", "social", "sodium", "solar", "south", "spaghetti", "speaker", "spring",
	"stairway", "steak", "stream", "summer", "sweet", "table", "tango", "ten", "tennessee",
	"tennis", "texas", "thirteen", "three", "timing", "triple", "twelve", "twenty", "two",
	"uncle", "undress", "uniform", "uranus", "utah", "vegan", "venus", "vermont", "victor",
	"video", "violet", "virginia", "washington", "west", "whiskey", "white", "william", "winner",
	"winter", "wisconsin", "wolfram", "wyoming", "xray", "yankee", "yellow", "zebra", "zulu",
}

// Humanize turns a hex digest into words joined by sep: the digest bytes are
// split into words equal segments (the last one takes the remainder) and
// each segment is XOR-folded into one byte, which picks a word.
// Returns "" for invalid hex, words < 1, or fewer digest bytes than words.
func Humanize(digest string, words int, sep string) string {
	b, err := hex.DecodeString(digest)
	if err != nil || words < 1 || len(b) < words {
		return ""
	}

	size := len(b) / words
	out := make([]string, words)
	for i := range out {
		end := (i + 1) * size
		if i == words-1 {
			end = len(b)
		}
		var x byte
		for _, v := range b[i*size : end] {
			x ^= v
		}
		out[i] = wordlist[x]
	}

	return strings.Join(out, sep)
}

// DesignName derives the default name of a design from its id.
func DesignName(id string) string {
	return Humanize(strings.ReplaceAll(id, "-", ""), NameWords, " ")
}
