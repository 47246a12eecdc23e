package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/itemkit/itemkit/internal/domain"
	"github.com/itemkit/itemkit/internal/store"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ItemCollection is the collection holding one document per item.
const ItemCollection = "items"

// itemDocument is the BSON layout of an item. The service-generated UUID is
// stored as the document ID so both backends share one identifier contract.
type itemDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description *string   `bson:"description,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func toDocument(item *domain.Item) itemDocument {
	return itemDocument{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func (d itemDocument) toDomain() (*domain.Item, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed document ID %q", domain.ErrInvalidID, d.ID)
	}
	return &domain.Item{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}, nil
}

// ItemStore implements store.ItemStore on a MongoDB collection.
// Consistency is whatever the server provides per operation; no
// multi-document transactions are used.
type ItemStore struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

var _ store.ItemStore = (*ItemStore)(nil)

// NewItemStore creates a MongoDB implementation of the ItemStore interface
// over the given database. If logger is nil, the default logger is used.
func NewItemStore(db *mongo.Database, logger *slog.Logger) *ItemStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("database cannot be nil for ItemStore")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ItemStore{
		collection: db.Collection(ItemCollection),
		logger:     logger.With(slog.String("component", "mongo_item_store")),
	}
}

// Create implements store.ItemStore.Create.
func (s *ItemStore) Create(ctx context.Context, item *domain.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	if _, err := s.collection.InsertOne(ctx, toDocument(item)); err != nil {
		s.logger.Error("failed to insert item",
			slog.String("item_id", item.ID.String()),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	return nil
}

// GetByID implements store.ItemStore.GetByID.
func (s *ItemStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	var doc itemDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		return nil, MapError(err)
	}
	return doc.toDomain()
}

// Update implements store.ItemStore.Update. Only the fields present in the
// update are written; updated_at is always refreshed.
func (s *ItemStore) Update(
	ctx context.Context,
	id uuid.UUID,
	update domain.ItemUpdate,
) (*domain.Item, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc itemDocument
	err := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id.String()},
		bson.M{"$set": set},
		opts,
	).Decode(&doc)
	if err != nil {
		return nil, MapError(err)
	}

	return doc.toDomain()
}

// Delete implements store.ItemStore.Delete.
func (s *ItemStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return MapError(err)
	}
	if result.DeletedCount == 0 {
		return store.ErrItemNotFound
	}
	return nil
}

// List implements store.ItemStore.List. The optional search filter becomes a
// case-insensitive regex on the name field with the query text escaped, so it
// matches as a literal substring. Results are sorted by creation time with
// the document ID as tiebreak for a stable order.
func (s *ItemStore) List(ctx context.Context, params store.ListParams) (*store.Page, error) {
	params, err := params.Normalize()
	if err != nil {
		return nil, err
	}

	filter := bson.M{}
	if params.Search != "" {
		filter["name"] = bson.Regex{Pattern: regexp.QuoteMeta(params.Search), Options: "i"}
	}

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, MapError(err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(params.Offset())).
		SetLimit(int64(params.PageSize))

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, MapError(err)
	}

	var docs []itemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, MapError(err)
	}

	items := make([]*domain.Item, 0, len(docs))
	for _, doc := range docs {
		item, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return store.NewPage(items, int(total), params), nil
}
