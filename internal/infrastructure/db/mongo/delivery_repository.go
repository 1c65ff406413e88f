package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mercadito/marketplace-api/internal/core/domain"
	"github.com/mercadito/marketplace-api/internal/core/ports"
)

const collectionDeliveries = "deliveries"

type DeliveryRepository struct {
	col *mongo.Collection
}

func NewDeliveryRepository(db *mongo.Database) *DeliveryRepository {
	return &DeliveryRepository{col: db.Collection(collectionDeliveries)}
}

type deliveryDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Owner    primitive.ObjectID `bson:"user"`
	Product  primitive.ObjectID `bson:"product"`
	Quantity int                `bson:"quantity"`
	Date     time.Time          `bson:"date"`
	Status   string             `bson:"status"`
	Comments string             `bson:"comments,omitempty"`
	Score    int                `bson:"score,omitempty"`
}

func (d *deliveryDoc) toDomain() *domain.Delivery {
	return &domain.Delivery{
		ID:        d.ID.Hex(),
		OwnerID:   d.Owner.Hex(),
		ProductID: d.Product.Hex(),
		Quantity:  d.Quantity,
		Date:      d.Date.UTC(),
		Status:    domain.DeliveryStatus(d.Status),
		Comments:  d.Comments,
		Score:     d.Score,
	}
}

// Create inserts a new delivery document.
func (r *DeliveryRepository) Create(ctx context.Context, d *domain.Delivery) (*domain.Delivery, error) {
	owner, err := primitive.ObjectIDFromHex(d.OwnerID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	product, err := primitive.ObjectIDFromHex(d.ProductID)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := deliveryDoc{
		Owner:    owner,
		Product:  product,
		Quantity: d.Quantity,
		Date:     d.Date,
		Status:   string(d.Status),
		Comments: d.Comments,
		Score:    d.Score,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert delivery: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// FindByID returns the delivery with the given id. Deliveries carry no
// soft-delete flag; ownership filtering happens in the service layer.
func (r *DeliveryRepository) FindByID(ctx context.Context, id string) (*domain.Delivery, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDeliveryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc deliveryDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("find delivery: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns the owner's deliveries, optionally bounded to the inclusive
// [Start, End] date range, oldest first.
func (r *DeliveryRepository) List(ctx context.Context, filter ports.DeliveryFilter) ([]*domain.Delivery, error) {
	owner, err := primitive.ObjectIDFromHex(filter.OwnerID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	query := bson.M{"user": owner}
	dateRange := bson.M{}
	if !filter.Start.IsZero() {
		dateRange["$gte"] = filter.Start
	}
	if !filter.End.IsZero() {
		dateRange["$lte"] = filter.End
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer cur.Close(ctx)

	deliveries := make([]*domain.Delivery, 0)
	for cur.Next(ctx) {
		var doc deliveryDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode delivery: %w", err)
		}
		deliveries = append(deliveries, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return deliveries, nil
}

// Update writes the buyer-editable fields. Nil pointers are not written, so a
// request can touch comments and score independently.
func (r *DeliveryRepository) Update(ctx context.Context, id string, update ports.DeliveryUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrDeliveryNotFound
	}

	set := bson.M{}
	if update.Comments != nil {
		set["comments"] = *update.Comments
	}
	if update.Score != nil {
		set["score"] = *update.Score
	}
	if len(set) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update delivery: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrDeliveryNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing delivery queries.
func (r *DeliveryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "date", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
