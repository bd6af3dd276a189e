package intent

// Pattern tables. Order matters everywhere: matching scans each list from the
// top and stops at the first hit, so longer phrases must precede their
// prefixes ("save it to" before "save it").

// createTemplates are prefix-matched. Templates ending in "called"/"named"
// carry the new document's title after them.
type createTemplate struct {
	prefix   string
	hasTitle bool
}

var createTemplates = []createTemplate{
	{"create new doc called ", true},
	{"create new document called ", true},
	{"create a new doc called ", true},
	{"create a new document called ", true},
	{"create a doc called ", true},
	{"create a document called ", true},
	{"create a note called ", true},
	{"create new doc named ", true},
	{"create new document named ", true},
	{"create a new doc named ", true},
	{"create a new document named ", true},
	{"create a note named ", true},
	{"create new doc", false},
	{"create new document", false},
	{"create a new doc", false},
	{"create a new document", false},
	{"create a new note", false},
}

// confirmWords are matched by exact equality after trimming and lowering.
var confirmWords = []string{
	"yes",
	"yeah",
	"yep",
	"yup",
	"ok",
	"sure",
	"please",
}

// showRecentPhrases are matched by exact equality.
var showRecentPhrases = []string{
	"show recent",
	"show recent docs",
	"show recent documents",
	"show my recent docs",
	"list recent",
	"list recent docs",
	"list recent documents",
}

// savePatterns are matched by substring anywhere in the utterance. The target
// title is whatever follows the first pattern found, minus an optional
// leading "called"/"named" token.
var savePatterns = []string{
	"yeah save it to",
	"yes save it to",
	"yep save it to",
	"yup save it to",
	"please save it to",
	"ok save it to",
	"yeah save to",
	"yes save to",
	"yep save to",
	"yup save to",
	"please save to",
	"ok save to",
	"save it to",
	"save this to",
	"save that to",
	"save to",
	"yeah save it",
	"yes save it",
	"yep save it",
	"yup save it",
	"please save it",
	"ok save it",
	"save it",
	"save this",
	"save that",
}

// titlePrefixes are stripped from the front of an extracted save target.
var titlePrefixes = []string{
	"called ",
	"named ",
}
