package constant

// RewritePromptTemplate wraps the raw note for the rewrite gateway. The model
// is instructed to answer in plain text so the reply can be stored directly.
const RewritePromptTemplate = `You are Gorlea, a smart AI note assistant. Always respond in plain text without any formatting. Just rewrite this note in a clearer and more structured way:

"%s"`

// User-facing conversation messages. The state machine renders exactly one of
// these per turn; controllers never compose reply text themselves.
const (
	MsgWriteNoteFirst = "Sorry, I don't have a note to save. Please write a note first."

	MsgSavedTo        = "I've saved your note to %q!"
	MsgCreatedDoc     = "I've created a new document %q and saved your note!"
	MsgConfirmCreate  = "I couldn't find a document named %q. Would you like me to create a new one with this name?"
	MsgRecentDocsHead = "Here are your recent documents, reply with a number to pick one:"
	MsgNoDocumentsYet = "You don't have any documents yet. Tell me where to save it, for example \"save to Groceries\"."
	MsgInvalidChoice  = "That number isn't on the list. Please pick one of the documents above."

	MsgRewriteFailed   = "Sorry, I had trouble processing your note. Please try again."
	MsgRewriteThrottle = "I'm getting too many requests right now. Please try again in a little while."
	MsgSaveFailed      = "Sorry, I had trouble saving your note. Please try again."
	MsgCreateFailed    = "Sorry, I had trouble creating the document. Please try again."
	MsgDocVanished     = "It looks like that document was just removed. Please try saving again."
)
