package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gorlea-notes-be/internal/constant"
	"gorlea-notes-be/internal/pkg/apperror"
	"gorlea-notes-be/pkg/assistant/intent"
	"gorlea-notes-be/pkg/assistant/resolver"
	"gorlea-notes-be/pkg/rewrite"
)

// Rewriter is the slice of the rewrite gateway the machine needs.
type Rewriter interface {
	Rewrite(ctx context.Context, note string) (string, error)
}

// Logger is the slice of the application logger the machine needs. The
// replies sent on failure are deliberately vague, so the real cause has to
// land in the log.
type Logger interface {
	Warn(module, message string, details map[string]interface{})
	Error(module, message string, details map[string]interface{})
}

type nopLogger struct{}

func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}

// Result is the outcome of one conversation turn. Reply is always set; the
// session passed to HandleTurn is mutated in place and must be persisted by
// the caller afterwards.
type Result struct {
	Reply   string
	IsError bool
}

// Machine executes one turn of the assistant conversation: classify the
// utterance, run the resolved action against the store or the rewrite
// gateway, and advance the session state. Action failures reset the session
// to Idle so a broken turn never wedges the conversation; the one exception
// is an out-of-range numeric choice, which re-prompts in place.
type Machine struct {
	store    resolver.Store
	resolver *resolver.Resolver
	rewriter Rewriter
	logger   Logger
}

func NewMachine(store resolver.Store, rewriter Rewriter, logger Logger) *Machine {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Machine{
		store:    store,
		resolver: resolver.New(store),
		rewriter: rewriter,
		logger:   logger,
	}
}

func (m *Machine) HandleTurn(ctx context.Context, userID uuid.UUID, sess *Session, utterance string) Result {
	it, err := intent.Classify(utterance, intent.Context{
		HasPendingNote:       sess.HasPendingNote(),
		HasPendingCreate:     sess.PendingCreateTitle != nil,
		AwaitingRecentChoice: sess.AwaitingRecentChoice,
		RecentCount:          len(sess.RecentDocs),
	})
	if err != nil {
		switch {
		case errors.Is(err, intent.ErrNoPendingNote):
			return Result{Reply: constant.MsgWriteNoteFirst, IsError: true}
		case errors.Is(err, intent.ErrInvalidChoice):
			// Keep the list on offer; the user just picked a bad number.
			return Result{Reply: constant.MsgInvalidChoice, IsError: true}
		default:
			m.logger.Error("conversation", "classify failed", map[string]interface{}{"error": err.Error()})
			sess.Reset()
			return Result{Reply: constant.MsgSaveFailed, IsError: true}
		}
	}

	switch it.Kind {
	case intent.KindExplicitCreate:
		return m.createDocument(ctx, userID, sess, it.Title)
	case intent.KindConfirmCreate:
		return m.createDocument(ctx, userID, sess, *sess.PendingCreateTitle)
	case intent.KindNumericChoice:
		return m.appendToChosen(ctx, userID, sess, it.Index)
	case intent.KindShowRecent:
		return m.offerRecent(ctx, userID, sess)
	case intent.KindSaveToNamed:
		return m.saveToNamed(ctx, userID, sess, it.Title)
	default:
		return m.rewriteNote(ctx, sess, it.Text)
	}
}

func (m *Machine) rewriteNote(ctx context.Context, sess *Session, text string) Result {
	cleaned, err := m.rewriter.Rewrite(ctx, text)
	if err != nil {
		m.logger.Error("conversation", "rewrite failed", map[string]interface{}{"error": err.Error()})
		sess.Reset()
		if errors.Is(err, rewrite.ErrRateLimited) {
			return Result{Reply: constant.MsgRewriteThrottle, IsError: true}
		}
		return Result{Reply: constant.MsgRewriteFailed, IsError: true}
	}

	sess.SetPendingNote(cleaned)
	return Result{Reply: cleaned}
}

func (m *Machine) createDocument(ctx context.Context, userID uuid.UUID, sess *Session, title string) Result {
	outcome, err := m.resolver.ResolveCreate(ctx, userID, title, *sess.PendingNote)
	if err != nil {
		m.logger.Error("conversation", "create document failed", map[string]interface{}{"error": err.Error()})
		sess.Reset()
		return Result{Reply: constant.MsgCreateFailed, IsError: true}
	}

	sess.Reset()
	return Result{Reply: fmt.Sprintf(constant.MsgCreatedDoc, outcome.Title)}
}

func (m *Machine) appendToChosen(ctx context.Context, userID uuid.UUID, sess *Session, index int) Result {
	chosen := sess.RecentDocs[index]

	appended, err := m.store.Append(ctx, userID, chosen.Id, *sess.PendingNote)
	if err != nil {
		m.logger.Error("conversation", "append to chosen document failed", map[string]interface{}{"error": err.Error()})
		sess.Reset()
		if apperror.IsKind(err, apperror.KindNotFound) {
			return Result{Reply: constant.MsgDocVanished, IsError: true}
		}
		return Result{Reply: constant.MsgSaveFailed, IsError: true}
	}

	sess.Reset()
	return Result{Reply: fmt.Sprintf(constant.MsgSavedTo, appended.Title)}
}

func (m *Machine) offerRecent(ctx context.Context, userID uuid.UUID, sess *Session) Result {
	docs, err := m.store.ListRecent(ctx, userID, MaxRecentDocs)
	if err != nil {
		m.logger.Error("conversation", "list recent documents failed", map[string]interface{}{"error": err.Error()})
		sess.Reset()
		return Result{Reply: constant.MsgSaveFailed, IsError: true}
	}

	if len(docs) == 0 {
		// Nothing to offer; the pending note stays on the table.
		return Result{Reply: constant.MsgNoDocumentsYet}
	}

	refs := make([]DocumentRef, len(docs))
	var b strings.Builder
	b.WriteString(constant.MsgRecentDocsHead)
	for i, doc := range docs {
		refs[i] = DocumentRef{Id: doc.Id, Title: doc.Title}
		fmt.Fprintf(&b, "\n%d. %s", i+1, doc.Title)
	}

	sess.PendingCreateTitle = nil
	sess.AwaitingRecentChoice = true
	sess.RecentDocs = refs
	return Result{Reply: b.String()}
}

func (m *Machine) saveToNamed(ctx context.Context, userID uuid.UUID, sess *Session, title string) Result {
	outcome, err := m.resolver.ResolveSave(ctx, userID, title, *sess.PendingNote)
	if err != nil {
		m.logger.Error("conversation", "save to named document failed", map[string]interface{}{"error": err.Error()})
		sess.Reset()
		if apperror.IsKind(err, apperror.KindNotFound) {
			return Result{Reply: constant.MsgDocVanished, IsError: true}
		}
		return Result{Reply: constant.MsgSaveFailed, IsError: true}
	}

	if outcome.Action == resolver.ActionNeedsConfirmation {
		suggested := outcome.SuggestedTitle
		sess.PendingCreateTitle = &suggested
		sess.AwaitingRecentChoice = false
		sess.RecentDocs = nil
		return Result{Reply: fmt.Sprintf(constant.MsgConfirmCreate, suggested)}
	}

	sess.Reset()
	return Result{Reply: fmt.Sprintf(constant.MsgSavedTo, outcome.Title)}
}
