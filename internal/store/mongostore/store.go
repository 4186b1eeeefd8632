// Package mongostore provides the MongoDB-backed game repository.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	domaingames "github.com/preston-bernstein/games-api/internal/domain/games"
	"github.com/preston-bernstein/games-api/internal/store"
)

const defaultConnectTimeout = 10 * time.Second

var errNotConnected = errors.New("mongo store is not connected")

// Options addresses the collection holding game documents.
type Options struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
}

// Store persists games as documents in a single MongoDB collection.
type Store struct {
	opts Options

	mu     sync.RWMutex
	client *mongo.Client
	coll   *mongo.Collection
}

var _ store.Store = (*Store)(nil)

type gameDocument struct {
	ID          bson.ObjectID `bson:"_id"`
	Title       string        `bson:"title"`
	Genre       string        `bson:"genre"`
	ReleaseDate string        `bson:"releaseDate,omitempty"`
}

func (d gameDocument) toDomain() domaingames.Game {
	return domaingames.Game{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Genre:       d.Genre,
		ReleaseDate: d.ReleaseDate,
	}
}

// New builds an unconnected Store; call Connect before use.
func New(opts Options) *Store {
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = defaultConnectTimeout
	}
	return &Store{opts: opts}
}

func (s *Store) Name() string { return "mongo" }

// Connect dials the deployment and verifies it with a ping.
func (s *Store) Connect(ctx context.Context) error {
	if strings.TrimSpace(s.opts.URI) == "" {
		return fmt.Errorf("mongo uri is required")
	}
	if s.opts.Database == "" || s.opts.Collection == "" {
		return fmt.Errorf("mongo database and collection are required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.ConnectTimeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(s.opts.URI).
		SetConnectTimeout(s.opts.ConnectTimeout).
		SetServerSelectionTimeout(s.opts.ConnectTimeout)
	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("ping mongo: %w", err)
	}

	s.mu.Lock()
	s.client = client
	s.coll = client.Database(s.opts.Database).Collection(s.opts.Collection)
	s.mu.Unlock()
	return nil
}

// Disconnect closes the client; safe to call when not connected.
func (s *Store) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	client := s.client
	s.client = nil
	s.coll = nil
	s.mu.Unlock()

	if client == nil {
		return nil
	}
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongo: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	client := s.client
	s.mu.RUnlock()
	if client == nil {
		return errNotConnected
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongo: %w", err)
	}
	return nil
}

func (s *Store) collection() (*mongo.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.coll == nil {
		return nil, errNotConnected
	}
	return s.coll, nil
}

// List returns every game ordered by id, which follows creation time.
func (s *Store) List(ctx context.Context) ([]domaingames.Game, error) {
	coll, err := s.collection()
	if err != nil {
		return nil, err
	}
	cursor, err := coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find games: %w", err)
	}
	var docs []gameDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode games: %w", err)
	}

	games := make([]domaingames.Game, 0, len(docs))
	for _, d := range docs {
		games = append(games, d.toDomain())
	}
	return games, nil
}

func (s *Store) Get(ctx context.Context, id string) (domaingames.Game, error) {
	oid, err := domaingames.ParseID(id)
	if err != nil {
		return domaingames.Game{}, err
	}
	coll, err := s.collection()
	if err != nil {
		return domaingames.Game{}, err
	}

	var doc gameDocument
	if err := coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domaingames.Game{}, domaingames.ErrNotFound
		}
		return domaingames.Game{}, fmt.Errorf("find game %s: %w", id, err)
	}
	return doc.toDomain(), nil
}

// Create validates the game and inserts it under a fresh object id.
func (s *Store) Create(ctx context.Context, game domaingames.Game) (domaingames.Game, error) {
	if err := game.Validate(); err != nil {
		return domaingames.Game{}, err
	}
	coll, err := s.collection()
	if err != nil {
		return domaingames.Game{}, err
	}

	doc := gameDocument{
		ID:          bson.NewObjectID(),
		Title:       game.Title,
		Genre:       game.Genre,
		ReleaseDate: game.ReleaseDate,
	}
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return domaingames.Game{}, fmt.Errorf("insert game: %w", err)
	}
	return doc.toDomain(), nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	oid, err := domaingames.ParseID(id)
	if err != nil {
		return err
	}
	coll, err := s.collection()
	if err != nil {
		return err
	}

	res, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("delete game %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return domaingames.ErrNotFound
	}
	return nil
}

// Clear removes every document from the collection.
func (s *Store) Clear(ctx context.Context) error {
	coll, err := s.collection()
	if err != nil {
		return err
	}
	if _, err := coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("clear games: %w", err)
	}
	return nil
}
