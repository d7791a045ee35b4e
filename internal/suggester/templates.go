package suggester

// Methodology selects which template sets are consulted in addition to
// the always-active general set.
type Methodology string

const (
	MethodologyGeneral      Methodology = "general"
	MethodologyJobsToBeDone Methodology = "jobs-to-be-done"
	MethodologyUsability    Methodology = "usability"
	MethodologyDiscovery    Methodology = "discovery"
)

// Category groups suggestions by intent
type Category string

const (
	CategoryClarification Category = "clarification"
	CategoryProbing       Category = "probing"
	CategoryElaboration   Category = "elaboration"
	CategoryEmotional     Category = "emotional"
	CategoryExample       Category = "example"
	CategoryGeneral       Category = "general"
)

// candidate is a template-defined suggestion before it is stamped with an id
type candidate struct {
	text      string
	reason    string
	relevance float64
	category  Category
}

// template fires when any trigger substring appears in the utterance,
// emitting all of its candidates. The tables are pure data; adding a
// methodology never touches the matching logic.
type template struct {
	triggers   []string
	candidates []candidate
}

var generalTemplates = []template{
	{
		triggers: []string{"difficult", "hard", "struggle", "challenge"},
		candidates: []candidate{
			{
				text:      "What made that particularly difficult for you?",
				reason:    "Participant mentioned a difficulty worth unpacking",
				relevance: 0.85,
				category:  CategoryProbing,
			},
			{
				text:      "Can you walk me through the last time that happened?",
				reason:    "Grounding a reported difficulty in a concrete episode",
				relevance: 0.80,
				category:  CategoryExample,
			},
		},
	},
	{
		triggers: []string{"confusing", "confused", "don't understand", "unclear", "not sure what"},
		candidates: []candidate{
			{
				text:      "Which part was most confusing?",
				reason:    "Participant signalled confusion; locate its source",
				relevance: 0.90,
				category:  CategoryClarification,
			},
			{
				text:      "What did you expect to happen instead?",
				reason:    "Contrast expectation with what they experienced",
				relevance: 0.80,
				category:  CategoryClarification,
			},
		},
	},
	{
		triggers: []string{"workaround", "work around", "hack", "manually"},
		candidates: []candidate{
			{
				text:      "How did you come up with that workaround?",
				reason:    "Workarounds reveal unmet needs",
				relevance: 0.85,
				category:  CategoryProbing,
			},
		},
	},
	{
		triggers: []string{"love", "like", "great", "awesome", "fantastic"},
		candidates: []candidate{
			{
				text:      "What specifically do you like about it?",
				reason:    "Turn broad praise into concrete attributes",
				relevance: 0.75,
				category:  CategoryElaboration,
			},
		},
	},
	{
		triggers: []string{"hate", "annoying", "frustrating", "terrible", "awful"},
		candidates: []candidate{
			{
				text:      "What about it frustrates you most?",
				reason:    "Negative reaction worth grounding in specifics",
				relevance: 0.85,
				category:  CategoryProbing,
			},
		},
	},
	{
		triggers: []string{"used to", "before", "previously", "in the past"},
		candidates: []candidate{
			{
				text:      "What changed since then?",
				reason:    "Participant compared to a past state",
				relevance: 0.75,
				category:  CategoryElaboration,
			},
		},
	},
	{
		triggers: []string{"team", "colleague", "coworker", "manager"},
		candidates: []candidate{
			{
				text:      "How do others on your team handle that?",
				reason:    "Widen from individual to team practice",
				relevance: 0.70,
				category:  CategoryElaboration,
			},
		},
	},
}

var jobsToBeDoneTemplates = []template{
	{
		triggers: []string{"switch", "instead", "alternative", "replaced", "moved to"},
		candidates: []candidate{
			{
				text:      "What was happening in your life when you started looking for an alternative?",
				reason:    "Situate the switch in its triggering context",
				relevance: 0.90,
				category:  CategoryProbing,
			},
			{
				text:      "What would have to be true for you to switch back?",
				reason:    "Surface the forces holding the current solution in place",
				relevance: 0.80,
				category:  CategoryProbing,
			},
		},
	},
	{
		triggers: []string{"goal", "trying to", "so that", "outcome", "get done"},
		candidates: []candidate{
			{
				text:      "What does success look like when that job is done?",
				reason:    "Anchor on the outcome, not the tool",
				relevance: 0.85,
				category:  CategoryElaboration,
			},
		},
	},
	{
		triggers: []string{"hire", "chose", "picked", "decided on"},
		candidates: []candidate{
			{
				text:      "What almost stopped you from choosing it?",
				reason:    "Anxieties at the moment of choice are decision-critical",
				relevance: 0.85,
				category:  CategoryProbing,
			},
		},
	},
}

var usabilityTemplates = []template{
	{
		triggers: []string{"click", "button", "tap", "menu"},
		candidates: []candidate{
			{
				text:      "What did you expect that control to do?",
				reason:    "Expectation mismatch is the core usability signal",
				relevance: 0.85,
				category:  CategoryClarification,
			},
		},
	},
	{
		triggers: []string{"find", "search", "looking for", "where is", "couldn't locate"},
		candidates: []candidate{
			{
				text:      "Where did you look first, and why there?",
				reason:    "First-look placement reveals the user's mental model",
				relevance: 0.85,
				category:  CategoryProbing,
			},
		},
	},
	{
		triggers: []string{"screen", "page", "navigate", "scroll"},
		candidates: []candidate{
			{
				text:      "What would you do next from here?",
				reason:    "Probe the expected navigation path",
				relevance: 0.75,
				category:  CategoryProbing,
			},
		},
	},
	{
		triggers: []string{"slow", "loading", "waiting", "took forever"},
		candidates: []candidate{
			{
				text:      "At what point did the wait start to bother you?",
				reason:    "Locate the tolerance threshold for delay",
				relevance: 0.80,
				category:  CategoryProbing,
			},
		},
	},
}

var discoveryTemplates = []template{
	{
		triggers: []string{"problem", "pain", "issue", "biggest"},
		candidates: []candidate{
			{
				text:      "How are you dealing with that today?",
				reason:    "Current coping behavior sizes the problem",
				relevance: 0.90,
				category:  CategoryProbing,
			},
			{
				text:      "How often does that come up?",
				reason:    "Frequency separates annoyances from real pain",
				relevance: 0.80,
				category:  CategoryElaboration,
			},
		},
	},
	{
		triggers: []string{"process", "workflow", "routine", "typically", "usually"},
		candidates: []candidate{
			{
				text:      "Can you walk me through that process step by step?",
				reason:    "Concrete walkthroughs beat summaries",
				relevance: 0.85,
				category:  CategoryExample,
			},
		},
	},
	{
		triggers: []string{"need", "wish", "would be nice", "if only"},
		candidates: []candidate{
			{
				text:      "What would having that let you do that you can't today?",
				reason:    "Separate the stated want from the underlying need",
				relevance: 0.85,
				category:  CategoryProbing,
			},
		},
	},
}

// methodologyTemplates maps each methodology to its extra template set;
// the general set is always consulted.
var methodologyTemplates = map[Methodology][]template{
	MethodologyJobsToBeDone: jobsToBeDoneTemplates,
	MethodologyUsability:    usabilityTemplates,
	MethodologyDiscovery:    discoveryTemplates,
}

// emotionCandidates holds one candidate per recognized dominant emotion
var emotionCandidates = map[string]candidate{
	"frustration": {
		text:      "That sounds frustrating. What part gets in your way the most?",
		reason:    "Detected frustration; acknowledge and localize it",
		relevance: 0.85,
		category:  CategoryEmotional,
	},
	"delight": {
		text:      "You sound pleased with that. What made it work so well for you?",
		reason:    "Detected delight; capture what produced it",
		relevance: 0.85,
		category:  CategoryEmotional,
	},
	"confusion": {
		text:      "It sounds like that wasn't clear. What would have made it clearer?",
		reason:    "Detected confusion; invite a concrete fix",
		relevance: 0.85,
		category:  CategoryEmotional,
	},
	"anxiety": {
		text:      "What worries you most about that?",
		reason:    "Detected anxiety; name the underlying concern",
		relevance: 0.85,
		category:  CategoryEmotional,
	},
	"satisfaction": {
		text:      "What about it meets your needs best?",
		reason:    "Detected satisfaction; identify its source",
		relevance: 0.80,
		category:  CategoryEmotional,
	},
	"disappointment": {
		text:      "What were you hoping would happen instead?",
		reason:    "Detected disappointment; recover the expectation",
		relevance: 0.85,
		category:  CategoryEmotional,
	},
	"excitement": {
		text:      "What possibilities does that open up for you?",
		reason:    "Detected excitement; follow the energy",
		relevance: 0.80,
		category:  CategoryEmotional,
	},
	"relief": {
		text:      "What was the situation like before that improved?",
		reason:    "Detected relief; contrast with the prior state",
		relevance: 0.80,
		category:  CategoryEmotional,
	},
}

// fallbackCandidate is emitted when no template or emotion produced
// anything for a valid participant utterance.
var fallbackCandidate = candidate{
	text:      "Can you tell me more about that?",
	reason:    "No specific cue matched; keep the participant talking",
	relevance: 0.60,
	category:  CategoryGeneral,
}
