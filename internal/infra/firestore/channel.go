// Package firestore implements the remote document channel on Cloud
// Firestore: one document per store, subscribed for changes and written with
// top-level field merges.
package firestore

import (
	"context"
	"log/slog"
	"sync/atomic"

	"storehub/config"
	domainerrors "storehub/internal/domain/errors"
	"storehub/internal/domain/service"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

const defaultCollection = "stores"

// ChannelParams holds dependencies for the Firestore channel, injected by Fx
type ChannelParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type channel struct {
	client     *firestore.Client
	collection string
	logger     *slog.Logger
}

// NewChannel creates the Firestore-backed document channel and registers
// client teardown with the fx lifecycle.
func NewChannel(params ChannelParams) (service.DocumentChannel, error) {
	cfg := params.Config.Firestore
	if cfg == nil {
		return nil, errors.New("firestore configuration is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get firestore client")
	}

	collection := cfg.Collection
	if collection == "" {
		collection = defaultCollection
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return &channel{
		client:     client,
		collection: collection,
		logger:     params.Logger,
	}, nil
}

func (c *channel) doc(ownerID string) *firestore.DocumentRef {
	return c.client.Collection(c.collection).Doc(ownerID)
}

// Subscribe pumps the document's snapshot stream into onSnapshot until the
// returned Unsubscribe is called. Stream failures go to onError once; the
// stream is not retried.
func (c *channel) Subscribe(ctx context.Context, ownerID string, onSnapshot func(service.Document), onError func(error)) (service.Unsubscribe, error) {
	if ownerID == "" {
		return nil, domainerrors.NewChannelError(errors.New("empty owner id"), "subscribe requires an owner id")
	}

	streamCtx, cancel := context.WithCancel(ctx)
	var stopped atomic.Bool

	unsubscribe := func() {
		stopped.Store(true)
		cancel()
	}

	iter := c.doc(ownerID).Snapshots(streamCtx)

	go func() {
		defer iter.Stop()
		for {
			snap, err := iter.Next()
			if err != nil {
				if stopped.Load() || streamCtx.Err() != nil {
					return
				}
				c.logger.Warn("snapshot stream failed",
					slog.String("owner_id", ownerID),
					slog.Any("error", err),
				)
				onError(domainerrors.NewChannelError(err, "snapshot stream closed"))

				return
			}
			if stopped.Load() {
				return
			}
			if !snap.Exists() {
				onSnapshot(nil)

				continue
			}
			onSnapshot(service.Document(snap.Data()))
		}
	}()

	return unsubscribe, nil
}

// MergeWrite shallow-merges the given top-level fields into the document.
func (c *channel) MergeWrite(ctx context.Context, ownerID string, fields map[string]any) error {
	if ownerID == "" {
		return domainerrors.NewChannelError(errors.New("empty owner id"), "merge write requires an owner id")
	}

	if _, err := c.doc(ownerID).Set(ctx, fields, firestore.MergeAll); err != nil {
		return domainerrors.NewChannelError(err, "merge write rejected")
	}

	return nil
}

// Create writes the complete document, replacing any existing content (the
// provisioning path writes exactly once per store).
func (c *channel) Create(ctx context.Context, ownerID string, fields map[string]any) error {
	if ownerID == "" {
		return domainerrors.NewChannelError(errors.New("empty owner id"), "create requires an owner id")
	}

	if _, err := c.doc(ownerID).Set(ctx, fields); err != nil {
		return domainerrors.NewChannelError(err, "create rejected")
	}

	return nil
}

// Get performs a one-shot read; a nil document means it does not exist.
func (c *channel) Get(ctx context.Context, ownerID string) (service.Document, error) {
	if ownerID == "" {
		return nil, domainerrors.NewChannelError(errors.New("empty owner id"), "get requires an owner id")
	}

	snap, err := c.doc(ownerID).Get(ctx)
	if snap != nil && !snap.Exists() {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.NewChannelError(err, "get rejected")
	}

	return service.Document(snap.Data()), nil
}
