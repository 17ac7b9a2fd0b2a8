package chat_test

import (
	"context"
	"strings"
	"testing"
	"time"

	chatmodel "github.com/campuscare/maya/backend/internal/model/chat"
	chat "github.com/campuscare/maya/backend/internal/service/chat"
)

func newTestService() *chat.Service {
	cfg := chat.DefaultConfig()
	cfg.ReplyDelay = 5 * time.Millisecond
	return chat.NewService(cfg)
}

func waitForMessages(t *testing.T, svc *chat.Service, sessionID string, want int) chatmodel.Snapshot {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		snap, err := svc.Snapshot(context.Background(), sessionID)
		if err != nil {
			t.Fatalf("Snapshot err: %v", err)
		}
		if len(snap.Messages) >= want {
			return snap
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d messages", want)
	return chatmodel.Snapshot{}
}

func TestCreateSessionSeedsGreeting(t *testing.T) {
	svc := newTestService()
	sess, err := svc.CreateSession(context.Background())
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	snap, err := svc.Snapshot(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("Snapshot err: %v", err)
	}
	if len(snap.Messages) != 1 {
		t.Fatalf("expected greeting message, got %d messages", len(snap.Messages))
	}
	if snap.Messages[0].Sender != chatmodel.SenderSystem {
		t.Fatalf("greeting sender: %s", snap.Messages[0].Sender)
	}
	if snap.CrisisActive {
		t.Fatal("new session must not start in crisis state")
	}
}

func TestSubmitAnxietyBeatsExamPriority(t *testing.T) {
	svc := newTestService()
	sess, _ := svc.CreateSession(context.Background())

	snap, err := svc.Submit(context.Background(), sess.ID, "I feel very anxious about my exam")
	if err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if snap.CrisisActive {
		t.Fatal("non-crisis submission flagged")
	}

	// greeting + user + reply
	snap = waitForMessages(t, svc, sess.ID, 3)
	reply := snap.Messages[len(snap.Messages)-1]
	if reply.Sender != chatmodel.SenderSystem {
		t.Fatalf("reply sender: %s", reply.Sender)
	}
	if !strings.Contains(reply.Text, "anxiety is temporary") {
		t.Fatalf("expected anxiety-category reply, got %q", reply.Text)
	}
	if strings.Contains(reply.Text, "Academic pressure") {
		t.Fatal("exam category must not outrank anxiety")
	}
}

func TestSubmitCrisisLatchesAndAppendsTemplate(t *testing.T) {
	svc := newTestService()
	sess, _ := svc.CreateSession(context.Background())

	snap, err := svc.Submit(context.Background(), sess.ID, "I want to kill myself, exams are too much")
	if err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if !snap.CrisisActive {
		t.Fatal("expected crisis flag after detection")
	}

	snap = waitForMessages(t, svc, sess.ID, 3)
	reply := snap.Messages[len(snap.Messages)-1]
	want := chat.CrisisTemplate(chat.DefaultHotlines())
	if reply.Text != want {
		t.Fatalf("expected the fixed crisis template, got %q", reply.Text)
	}

	systemReplies := 0
	for _, m := range snap.Messages[1:] {
		if m.Sender == chatmodel.SenderSystem {
			systemReplies++
		}
	}
	if systemReplies != 1 {
		t.Fatalf("expected exactly one system reply, got %d", systemReplies)
	}
	if !snap.CrisisActive {
		t.Fatal("crisis flag must stay latched until acknowledged")
	}
}

func TestCrisisFlagSurvivesCalmFollowUp(t *testing.T) {
	svc := newTestService()
	sess, _ := svc.CreateSession(context.Background())

	if _, err := svc.Submit(context.Background(), sess.ID, "there is no point living"); err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	waitForMessages(t, svc, sess.ID, 3)

	snap, err := svc.Submit(context.Background(), sess.ID, "actually I feel a bit better")
	if err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if !snap.CrisisActive {
		t.Fatal("crisis flag must not auto-clear on later calm messages")
	}
}

func TestAcknowledgeCrisisKeepsTranscript(t *testing.T) {
	svc := newTestService()
	sess, _ := svc.CreateSession(context.Background())

	svc.Submit(context.Background(), sess.ID, "I think about suicide")
	snap := waitForMessages(t, svc, sess.ID, 3)
	before := len(snap.Messages)

	snap, err := svc.AcknowledgeCrisis(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("AcknowledgeCrisis err: %v", err)
	}
	if snap.CrisisActive {
		t.Fatal("expected crisis flag cleared")
	}
	if len(snap.Messages) != before {
		t.Fatalf("acknowledge must not alter messages: %d -> %d", before, len(snap.Messages))
	}
}

func TestSubmitEmptyIsNoOp(t *testing.T) {
	svc := newTestService()
	sess, _ := svc.CreateSession(context.Background())

	for i := 0; i < 5; i++ {
		snap, err := svc.Submit(context.Background(), sess.ID, "   ")
		if err != nil {
			t.Fatalf("Submit err: %v", err)
		}
		if len(snap.Messages) != 1 {
			t.Fatalf("empty submission changed transcript: %d messages", len(snap.Messages))
		}
	}
}

func TestMessageIDsStrictlyIncrease(t *testing.T) {
	svc := newTestService()
	sess, _ := svc.CreateSession(context.Background())

	svc.Submit(context.Background(), sess.ID, "hello there")
	svc.Submit(context.Background(), sess.ID, "still here")
	snap := waitForMessages(t, svc, sess.ID, 5)

	for i := 1; i < len(snap.Messages); i++ {
		if snap.Messages[i].ID <= snap.Messages[i-1].ID {
			t.Fatalf("ids not strictly increasing at %d: %d then %d",
				i, snap.Messages[i-1].ID, snap.Messages[i].ID)
		}
		if snap.Messages[i].CreatedAt.Before(snap.Messages[i-1].CreatedAt) {
			t.Fatal("timestamps must be non-decreasing")
		}
	}
}

func TestCloseSessionCancelsPendingReply(t *testing.T) {
	cfg := chat.DefaultConfig()
	cfg.ReplyDelay = 200 * time.Millisecond
	svc := chat.NewService(cfg)

	sess, _ := svc.CreateSession(context.Background())
	if _, err := svc.Submit(context.Background(), sess.ID, "feeling stressed"); err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if err := svc.CloseSession(context.Background(), sess.ID); err != nil {
		t.Fatalf("CloseSession err: %v", err)
	}

	time.Sleep(300 * time.Millisecond)
	if _, err := svc.Snapshot(context.Background(), sess.ID); err != chat.ErrSessionNotFound {
		t.Fatalf("expected discarded session, got %v", err)
	}
}

func TestSubscribeReceivesDeferredReply(t *testing.T) {
	svc := newTestService()
	sess, _ := svc.CreateSession(context.Background())

	ch, cancel, err := svc.Subscribe(sess.ID)
	if err != nil {
		t.Fatalf("Subscribe err: %v", err)
	}
	defer cancel()

	svc.Submit(context.Background(), sess.ID, "I worry a lot")

	deadline := time.After(2 * time.Second)
	for {
		select {
		case snap, open := <-ch:
			if !open {
				t.Fatal("subscription closed early")
			}
			last := snap.Messages[len(snap.Messages)-1]
			if last.Sender == chatmodel.SenderSystem && last.ID > 1 {
				return
			}
		case <-deadline:
			t.Fatal("no deferred reply observed")
		}
	}
}

func TestSubmitUnknownSession(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Submit(context.Background(), "missing", "hi"); err != chat.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
