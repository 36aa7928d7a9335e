// Package lexicon holds the static lookup tables the affective engine is
// built on: the emotion keyword lexicon, the energy node table, theme seeds,
// the reflection-count fallback ladder and the pairwise node affinity table.
// All tables are populated once at init and never mutated afterwards, so the
// package is safe to share across requests.
package lexicon

// EmotionCategory identifies one of the fixed emotion categories.
type EmotionCategory string

const (
	EmotionLove       EmotionCategory = "love"
	EmotionJoy        EmotionCategory = "joy"
	EmotionPeace      EmotionCategory = "peace"
	EmotionPower      EmotionCategory = "power"
	EmotionWisdom     EmotionCategory = "wisdom"
	EmotionCreativity EmotionCategory = "creativity"
	EmotionFear       EmotionCategory = "fear"
	EmotionAnger      EmotionCategory = "anger"
	EmotionSadness    EmotionCategory = "sadness"
)

// CategoryOrder is the declaration order of the lexicon. Ranking ties in the
// content analyzer are broken by this order, so it must stay stable.
var CategoryOrder = []EmotionCategory{
	EmotionLove,
	EmotionJoy,
	EmotionPeace,
	EmotionPower,
	EmotionWisdom,
	EmotionCreativity,
	EmotionFear,
	EmotionAnger,
	EmotionSadness,
}

// Keywords maps each category to its keyword stems. Matching is whole-word
// and case-insensitive; stems are stored lowercase.
var Keywords = map[EmotionCategory][]string{
	EmotionLove:       {"love", "loved", "loving", "heart", "caring", "affection", "warmth", "tenderness", "compassion"},
	EmotionJoy:        {"joy", "happy", "happiness", "delight", "smile", "laughter", "grateful", "gratitude", "excited"},
	EmotionPeace:      {"peace", "peaceful", "calm", "serene", "serenity", "still", "stillness", "quiet", "tranquil"},
	EmotionPower:      {"power", "strong", "strength", "confident", "confidence", "courage", "determined", "will"},
	EmotionWisdom:     {"wisdom", "wise", "insight", "clarity", "understanding", "truth", "awareness", "perspective"},
	EmotionCreativity: {"create", "creative", "creativity", "imagine", "imagination", "inspired", "inspiration", "flow"},
	EmotionFear:       {"fear", "afraid", "scared", "anxious", "anxiety", "worry", "worried", "dread", "nervous"},
	EmotionAnger:      {"anger", "angry", "frustrated", "frustration", "rage", "irritated", "resentment", "bitter"},
	EmotionSadness:    {"sad", "sadness", "grief", "loss", "lonely", "loneliness", "empty", "tears", "heavy"},
}

// NodeIndex identifies one of the seven fixed energy nodes (0..6).
type NodeIndex int

const (
	NodeRoot        NodeIndex = 0
	NodeSacral      NodeIndex = 1
	NodeHeart       NodeIndex = 2
	NodeSolarPlexus NodeIndex = 3
	NodeThroat      NodeIndex = 4
	NodeThirdEye    NodeIndex = 5
	NodeCrown       NodeIndex = 6
)

// NodeCount is the fixed size of the energy node table.
const NodeCount = 7

// NodeInfo describes one energy node's display attributes.
type NodeInfo struct {
	Index NodeIndex
	Name  string
	Color string
}

// Nodes is the full node table, indexed by NodeIndex.
var Nodes = [NodeCount]NodeInfo{
	{NodeRoot, "Root", "#E53935"},
	{NodeSacral, "Sacral", "#FB8C00"},
	{NodeHeart, "Heart", "#43A047"},
	{NodeSolarPlexus, "Solar Plexus", "#FDD835"},
	{NodeThroat, "Throat", "#1E88E5"},
	{NodeThirdEye, "Third Eye", "#5E35B1"},
	{NodeCrown, "Crown", "#8E24AA"},
}

// CategoryNode maps an emotion category to the node it activates. Several
// categories share a node; the merger keeps the first activation and skips
// later duplicates.
var CategoryNode = map[EmotionCategory]NodeIndex{
	EmotionLove:       NodeHeart,
	EmotionJoy:        NodeSacral,
	EmotionPeace:      NodeCrown,
	EmotionPower:      NodeSolarPlexus,
	EmotionWisdom:     NodeThirdEye,
	EmotionCreativity: NodeSacral,
	EmotionFear:       NodeRoot,
	EmotionAnger:      NodeSolarPlexus,
	EmotionSadness:    NodeHeart,
}

// CategoryInsight is the authored insight attached when a category drives an
// activation.
var CategoryInsight = map[EmotionCategory]string{
	EmotionLove:       "Your heart center is open. Connection is flowing through your words.",
	EmotionJoy:        "Joy is moving through your reflections. Let it anchor you.",
	EmotionPeace:      "A deep stillness is present in your writing.",
	EmotionPower:      "Your inner strength is speaking clearly.",
	EmotionWisdom:     "You are seeing your experiences with unusual clarity.",
	EmotionCreativity: "Creative energy is surfacing in your entries.",
	EmotionFear:       "Naming fear is the first step to grounding it.",
	EmotionAnger:      "Strong fire is present. Notice what it is protecting.",
	EmotionSadness:    "Grief is being honored here. Be gentle with yourself.",
}

// ThemeSeed is the fixed triple a recognised dream theme contributes before
// content analysis runs.
type ThemeSeed struct {
	Nodes    []NodeIndex
	Emotions []EmotionCategory
	Insights []string
}

// ThemeSeeds maps the closed theme vocabulary to its seed triple. Unknown
// themes are simply absent and yield an empty seed.
var ThemeSeeds = map[string]ThemeSeed{
	"love": {
		Nodes:    []NodeIndex{NodeHeart},
		Emotions: []EmotionCategory{EmotionLove},
		Insights: []string{"You are being drawn toward deeper connection."},
	},
	"peace": {
		Nodes:    []NodeIndex{NodeCrown, NodeHeart},
		Emotions: []EmotionCategory{EmotionPeace},
		Insights: []string{"Stillness is calling you home to yourself."},
	},
	"power": {
		Nodes:    []NodeIndex{NodeSolarPlexus, NodeRoot},
		Emotions: []EmotionCategory{EmotionPower},
		Insights: []string{"Your will is gathering. Direct it with intention."},
	},
	"wisdom": {
		Nodes:    []NodeIndex{NodeThirdEye},
		Emotions: []EmotionCategory{EmotionWisdom},
		Insights: []string{"Inner sight is sharpening. Trust what you perceive."},
	},
	"creativity": {
		Nodes:    []NodeIndex{NodeSacral, NodeThroat},
		Emotions: []EmotionCategory{EmotionCreativity},
		Insights: []string{"Something in you wants to be expressed."},
	},
	"spirituality": {
		Nodes:    []NodeIndex{NodeCrown, NodeThirdEye},
		Emotions: []EmotionCategory{EmotionPeace, EmotionWisdom},
		Insights: []string{"You are reaching beyond the everyday."},
	},
	"healing": {
		Nodes:    []NodeIndex{NodeHeart, NodeRoot},
		Emotions: []EmotionCategory{EmotionLove, EmotionPeace},
		Insights: []string{"Old wounds are ready to be tended."},
	},
}

// LadderStep is one rung of the fallback ladder: once Threshold reflections
// exist, the listed nodes activate even with no textual signal.
type LadderStep struct {
	Threshold int
	Nodes     []NodeIndex
}

// FallbackLadder activates nodes top-down as the reflection count grows. The
// final rung brings in both remaining nodes so a twelve-entry journal lights
// the full set.
var FallbackLadder = []LadderStep{
	{Threshold: 1, Nodes: []NodeIndex{NodeThirdEye}},
	{Threshold: 3, Nodes: []NodeIndex{NodeThroat}},
	{Threshold: 5, Nodes: []NodeIndex{NodeSolarPlexus}},
	{Threshold: 7, Nodes: []NodeIndex{NodeHeart}},
	{Threshold: 9, Nodes: []NodeIndex{NodeSacral}},
	{Threshold: 12, Nodes: []NodeIndex{NodeRoot, NodeCrown}},
}

// pairKey orders a node pair so lookups are symmetric.
type pairKey struct {
	A, B NodeIndex
}

func key(a, b NodeIndex) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// affinities holds authored base affinities for node pairs with a known
// strong relationship. Pairs not listed fall back to DefaultAffinity.
var affinities = map[pairKey]float64{
	key(NodeRoot, NodeSacral):        0.55,
	key(NodeRoot, NodeSolarPlexus):   0.5,
	key(NodeSacral, NodeSolarPlexus): 0.55,
	key(NodeSacral, NodeHeart):       0.5,
	key(NodeSolarPlexus, NodeHeart):  0.55,
	key(NodeHeart, NodeThroat):       0.6,
	key(NodeHeart, NodeThirdEye):     0.5,
	key(NodeHeart, NodeCrown):        0.55,
	key(NodeThroat, NodeThirdEye):    0.6,
	key(NodeThirdEye, NodeCrown):     0.65,
}

// DefaultAffinity is the base resonance for pairs with no authored entry.
const DefaultAffinity = 0.4

// Affinity returns the base resonance between two nodes before any
// set-conditioning or time perturbation is applied.
func Affinity(a, b NodeIndex) float64 {
	if v, ok := affinities[key(a, b)]; ok {
		return v
	}
	return DefaultAffinity
}

// NodeRecommendation holds an authored suggestion for an inactive node. Only
// a subset of nodes carry authored templates.
type NodeRecommendation struct {
	Title       string
	Description string
}

// NodeRecommendations maps nodes to their authored inactive-node suggestion.
var NodeRecommendations = map[NodeIndex]NodeRecommendation{
	NodeRoot: {
		Title:       "Ground Yourself",
		Description: "Your foundation could use attention. Try writing about what makes you feel safe and stable.",
	},
	NodeHeart: {
		Title:       "Open Your Heart",
		Description: "Reflect on a moment of connection or gratitude, however small.",
	},
	NodeThirdEye: {
		Title:       "Look Inward",
		Description: "Spend a few minutes writing about a pattern you have noticed in yourself lately.",
	},
}

// EmotionRecommendations maps dominant emotions to an authored follow-up
// suggestion.
var EmotionRecommendations = map[EmotionCategory]NodeRecommendation{
	EmotionFear: {
		Title:       "Name the Fear",
		Description: "Write down what you are afraid of in one sentence, then what you would do if it were gone.",
	},
	EmotionSadness: {
		Title:       "Honor the Feeling",
		Description: "Let the sadness have a page of its own. It does not need to be fixed today.",
	},
	EmotionJoy: {
		Title:       "Anchor the Joy",
		Description: "Describe one joyful moment in enough detail that future-you can relive it.",
	},
}

// GenericRecommendation pads the recommendation list when fewer than two
// authored suggestions apply.
var GenericRecommendation = NodeRecommendation{
	Title:       "Daily Practice",
	Description: "Keep a short daily entry going. Consistency matters more than length.",
}
