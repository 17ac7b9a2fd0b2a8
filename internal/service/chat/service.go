package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campuscare/maya/backend/internal/analysis/crisis"
	chatmodel "github.com/campuscare/maya/backend/internal/model/chat"
)

var ErrSessionNotFound = errors.New("session not found")

// replyQueueSize bounds pending companion replies per session. Submissions
// are human-paced, so the queue is effectively never full.
const replyQueueSize = 64

// CrisisTemplate renders the fixed escalation message: the supportive text,
// the hotline block, and the counsellor offer.
func CrisisTemplate(hotlines []string) string {
	var b strings.Builder
	b.WriteString(CrisisReply)
	if len(hotlines) > 0 {
		b.WriteString("\n\nImmediate support available:")
		for _, line := range hotlines {
			b.WriteString("\n• ")
			b.WriteString(line)
		}
	}
	b.WriteString("\n\nWould you like me to notify a counsellor?")
	return b.String()
}

// Config carries the injected conversation policy.
type Config struct {
	CrisisPhrases []string
	Hotlines      []string
	Rules         []Rule
	Fallback      string
	Greeting      string
	ReplyDelay    time.Duration
}

// DefaultConfig returns the production conversation policy.
func DefaultConfig() Config {
	return Config{
		CrisisPhrases: crisis.DefaultPhrases(),
		Hotlines:      DefaultHotlines(),
		Rules:         DefaultRules(),
		Fallback:      FallbackReply,
		Greeting:      Greeting,
		ReplyDelay:    time.Second,
	}
}

// Service owns all live conversation sessions. Each session keeps an ordered
// transcript, a monotonic crisis flag, and a worker that appends companion
// replies after the configured thinking delay without blocking submissions.
type Service struct {
	detector   *crisis.Detector
	responder  *Responder
	crisisText string
	greeting   string
	replyDelay time.Duration

	mu       sync.RWMutex
	sessions map[string]*session
	alerts   int
}

type session struct {
	id           string
	createdAt    time.Time
	messages     []chatmodel.Message
	nextID       int
	crisisActive bool

	ctx    context.Context
	cancel context.CancelFunc
	queue  chan string

	subs map[chan chatmodel.Snapshot]struct{}
}

// NewService bootstraps the in-memory chat service.
func NewService(cfg Config) *Service {
	return &Service{
		detector:   crisis.NewDetector(cfg.CrisisPhrases),
		responder:  NewResponder(cfg.Rules, cfg.Fallback),
		crisisText: CrisisTemplate(cfg.Hotlines),
		greeting:   cfg.Greeting,
		replyDelay: cfg.ReplyDelay,
		sessions:   make(map[string]*session),
	}
}

// CreateSession provisions an anonymous session opened by a chat screen and
// seeds the transcript with the companion greeting.
func (s *Service) CreateSession(_ context.Context) (chatmodel.Session, error) {
	ctx, cancel := context.WithCancel(context.Background())
	sess := &session{
		id:        uuid.NewString(),
		createdAt: time.Now().UTC(),
		ctx:       ctx,
		cancel:    cancel,
		queue:     make(chan string, replyQueueSize),
		subs:      make(map[chan chatmodel.Snapshot]struct{}),
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	if s.greeting != "" {
		s.appendLocked(sess, chatmodel.SenderSystem, s.greeting)
	}
	s.mu.Unlock()

	go s.deliverReplies(sess)

	return chatmodel.Session{ID: sess.id, CreatedAt: sess.createdAt}, nil
}

// Submit records a user message and schedules the companion reply. Trimmed
// empty input is ignored and leaves the transcript untouched. Crisis
// detection runs before reply selection; a flagged submission always gets
// the crisis template and latches the session's crisis state.
func (s *Service) Submit(_ context.Context, sessionID, text string) (chatmodel.Snapshot, error) {
	trimmed := strings.TrimSpace(text)

	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return chatmodel.Snapshot{}, ErrSessionNotFound
	}

	if trimmed == "" {
		snap := snapshotLocked(sess)
		s.mu.Unlock()
		return snap, nil
	}

	s.appendLocked(sess, chatmodel.SenderUser, text)

	var reply string
	if res := s.detector.Detect(text); res.Crisis {
		sess.crisisActive = true
		s.alerts++
		reply = s.crisisText
	} else {
		reply = s.responder.Reply(text)
	}

	snap := snapshotLocked(sess)
	notifyLocked(sess, snap)
	s.mu.Unlock()

	select {
	case sess.queue <- reply:
	case <-sess.ctx.Done():
	}

	return snap, nil
}

// AcknowledgeCrisis clears the crisis flag after the consumer has surfaced
// the escalation offer. The transcript is untouched.
func (s *Service) AcknowledgeCrisis(_ context.Context, sessionID string) (chatmodel.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return chatmodel.Snapshot{}, ErrSessionNotFound
	}

	sess.crisisActive = false
	snap := snapshotLocked(sess)
	notifyLocked(sess, snap)
	return snap, nil
}

// Snapshot returns the render-ready view of a session.
func (s *Service) Snapshot(_ context.Context, sessionID string) (chatmodel.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return chatmodel.Snapshot{}, ErrSessionNotFound
	}
	return snapshotLocked(sess), nil
}

// Subscribe registers for snapshots pushed after every session mutation.
// The returned cancel func must be called when the consumer goes away.
func (s *Service) Subscribe(sessionID string) (<-chan chatmodel.Snapshot, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil, ErrSessionNotFound
	}

	ch := make(chan chatmodel.Snapshot, 8)
	sess.subs[ch] = struct{}{}

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, live := sess.subs[ch]; live {
			delete(sess.subs, ch)
			close(ch)
		}
	}
	return ch, cancel, nil
}

// CloseSession discards a session when its screen unmounts. Pending replies
// are cancelled and must not mutate the discarded transcript.
func (s *Service) CloseSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}

	sess.cancel()
	delete(s.sessions, sessionID)
	for ch := range sess.subs {
		delete(sess.subs, ch)
		close(ch)
	}
	return nil
}

// ActiveSessions reports the number of live conversations.
func (s *Service) ActiveSessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// CrisisAlerts reports how many submissions tripped the detector since boot.
func (s *Service) CrisisAlerts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alerts
}

// deliverReplies drains a session's reply queue in FIFO order, waiting out
// the thinking delay before each append. It exits as soon as the session is
// discarded.
func (s *Service) deliverReplies(sess *session) {
	for {
		select {
		case <-sess.ctx.Done():
			return
		case reply := <-sess.queue:
			timer := time.NewTimer(s.replyDelay)
			select {
			case <-sess.ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
			s.appendSystem(sess, reply)
		}
	}
}

// appendSystem lands a deferred reply, re-checking that the session is still
// registered so a stale task cannot touch a discarded transcript.
func (s *Service) appendSystem(sess *session, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.sessions[sess.id]; !ok || current != sess {
		return
	}

	s.appendLocked(sess, chatmodel.SenderSystem, text)
	notifyLocked(sess, snapshotLocked(sess))
}

func (s *Service) appendLocked(sess *session, sender, text string) {
	sess.nextID++
	sess.messages = append(sess.messages, chatmodel.Message{
		ID:        sess.nextID,
		SessionID: sess.id,
		Sender:    sender,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
}

func snapshotLocked(sess *session) chatmodel.Snapshot {
	messages := make([]chatmodel.Message, len(sess.messages))
	copy(messages, sess.messages)
	return chatmodel.Snapshot{
		SessionID:    sess.id,
		Messages:     messages,
		CrisisActive: sess.crisisActive,
	}
}

// notifyLocked pushes a snapshot to every subscriber without blocking; a
// slow consumer simply misses intermediate states, each snapshot being
// complete on its own.
func notifyLocked(sess *session, snap chatmodel.Snapshot) {
	for ch := range sess.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}
