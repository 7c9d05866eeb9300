// Package fetch runs the selection-to-delivery step: resolve the user's
// choice against their session, download into a scoped temp directory,
// classify, deliver, clean up.
package fetch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"ytfetch-bot/internal/fault"
	"ytfetch-bot/internal/format"
	"ytfetch-bot/internal/session"
)

// ErrNoSession signals that the user pressed a format button without an
// active session. No extraction call is made in that case.
var ErrNoSession = fault.New(fault.Validation, errors.New("no active session, send a link first"))

// ErrUnknownChoice signals a callback payload that was never offered to this
// user. The session is kept so a valid button still works.
var ErrUnknownChoice = fault.New(fault.Validation, errors.New("unknown format selection, send the link again"))

// Downloader fetches media bytes for a link into dir. *ytdlp.Client
// satisfies it.
type Downloader interface {
	Fetch(ctx context.Context, url, selector, dir string) (string, error)
}

// Delivery hands a finished file back to the chat, as audio or video.
type Delivery interface {
	SendAudio(chatID int64, path, title string) error
	SendVideo(chatID int64, path, title string) error
}

// Orchestrator owns the download flow for a single selection.
type Orchestrator struct {
	dl       Downloader
	sessions *session.Store
	delivery Delivery
	tempRoot string
	timeout  time.Duration
	log      *logrus.Logger
}

// New builds an orchestrator. tempRoot is where per-download scratch
// directories are created; timeout bounds the external download call.
func New(dl Downloader, sessions *session.Store, delivery Delivery, tempRoot string, timeout time.Duration, log *logrus.Logger) *Orchestrator {
	return &Orchestrator{
		dl:       dl,
		sessions: sessions,
		delivery: delivery,
		tempRoot: tempRoot,
		timeout:  timeout,
		log:      log,
	}
}

// Run downloads the format chosen by key and delivers the file to chatID.
// The session is removed on every terminal outcome, success or failure;
// only the two validation errors above leave it in place.
func (o *Orchestrator) Run(ctx context.Context, userID, chatID int64, key string) error {
	sess, ok := o.sessions.Get(userID)
	if !ok {
		return ErrNoSession
	}
	selector, ok := sess.Selector(key)
	if !ok {
		return ErrUnknownChoice
	}

	jobID := uuid.NewString()
	log := o.log.WithFields(logrus.Fields{
		"job":      jobID,
		"user_id":  userID,
		"chat_id":  chatID,
		"selector": selector,
	})

	dir := filepath.Join(o.tempRoot, "ytfetch-"+jobID)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		o.sessions.Remove(userID)
		return fault.Wrap(fault.Download, err, "create scratch dir")
	}
	defer os.RemoveAll(dir)

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	start := time.Now()
	path, err := o.dl.Fetch(ctx, sess.Link, selector, dir)
	if err != nil {
		o.sessions.Remove(userID)
		log.WithError(err).Error("download failed")
		return err
	}
	log.WithField("elapsed", time.Since(start).Round(time.Millisecond)).Info("download finished")

	if format.IsAudioFile(path) {
		err = o.delivery.SendAudio(chatID, path, sess.Title)
	} else {
		err = o.delivery.SendVideo(chatID, path, sess.Title)
	}
	o.sessions.Remove(userID)
	if err != nil {
		log.WithError(err).Error("delivery failed")
		return fault.Wrap(fault.Delivery, err, "send file")
	}
	return nil
}
