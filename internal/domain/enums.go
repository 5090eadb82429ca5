package domain

// Compact integer enums travel over the wire; descriptive tokens are
// what storage keeps. Unknown values on either side fall back to the
// lowest-ordinal default instead of erroring so that schema drift
// between dashboard and service versions stays tolerable.

// Memo color wire values
const (
	MemoColorYellow = 0
	MemoColorBlue   = 1
	MemoColorGreen  = 2
	MemoColorPink   = 3
	MemoColorPurple = 4
	MemoColorOrange = 5
)

// DefaultMemoColorToken is the storage default for memo color
const DefaultMemoColorToken = "yellow"

var memoColorTokens = map[int]string{
	MemoColorYellow: "yellow",
	MemoColorBlue:   "blue",
	MemoColorGreen:  "green",
	MemoColorPink:   "pink",
	MemoColorPurple: "purple",
	MemoColorOrange: "orange",
}

var memoColorWire = map[string]int{
	"yellow": MemoColorYellow,
	"blue":   MemoColorBlue,
	"green":  MemoColorGreen,
	"pink":   MemoColorPink,
	"purple": MemoColorPurple,
	"orange": MemoColorOrange,
}

// MemoColorToToken maps a wire color to its storage token
func MemoColorToToken(wire int) string {
	if token, ok := memoColorTokens[wire]; ok {
		return token
	}
	return DefaultMemoColorToken
}

// MemoColorFromToken maps a storage token to its wire color
func MemoColorFromToken(token string) int {
	if wire, ok := memoColorWire[token]; ok {
		return wire
	}
	return MemoColorYellow
}

// Article status wire values
const (
	ArticleStatusDraft     = 0
	ArticleStatusPublished = 1
	ArticleStatusArchived  = 2
)

// DefaultArticleStatusToken is the storage default for article status
const DefaultArticleStatusToken = "draft"

var articleStatusTokens = map[int]string{
	ArticleStatusDraft:     "draft",
	ArticleStatusPublished: "published",
	ArticleStatusArchived:  "archived",
}

var articleStatusWire = map[string]int{
	"draft":     ArticleStatusDraft,
	"published": ArticleStatusPublished,
	"archived":  ArticleStatusArchived,
}

// ArticleStatusToToken maps a wire status to its storage token
func ArticleStatusToToken(wire int) string {
	if token, ok := articleStatusTokens[wire]; ok {
		return token
	}
	return DefaultArticleStatusToken
}

// ArticleStatusFromToken maps a storage token to its wire status
func ArticleStatusFromToken(token string) int {
	if wire, ok := articleStatusWire[token]; ok {
		return wire
	}
	return ArticleStatusDraft
}
