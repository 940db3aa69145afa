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

	"github.com/cjalex1313/trex-gym/internal/core/domain"
	"github.com/cjalex1313/trex-gym/internal/core/ports"
)

const subscriptionsCollection = "subscriptions"

// SubscriptionRepository persists subscriptions.
type SubscriptionRepository struct {
	collection *mongo.Collection
}

func NewSubscriptionRepository(db *mongo.Database) *SubscriptionRepository {
	return &SubscriptionRepository{collection: db.Collection(subscriptionsCollection)}
}

type subscriptionDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ClientID  primitive.ObjectID `bson:"clientId"`
	PlanType  string             `bson:"planType"`
	PlanName  string             `bson:"planName,omitempty"`
	StartDate time.Time          `bson:"startDate"`
	EndDate   time.Time          `bson:"endDate"`
	Status    string             `bson:"status"`
	Price     float64            `bson:"price"`
	Currency  string             `bson:"currency"`
	Notes     string             `bson:"notes,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *subscriptionDocument) toDomain() *domain.Subscription {
	return &domain.Subscription{
		ID:        d.ID.Hex(),
		ClientID:  d.ClientID.Hex(),
		PlanType:  domain.PlanType(d.PlanType),
		PlanName:  d.PlanName,
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
		Status:    domain.SubscriptionStatus(d.Status),
		Price:     d.Price,
		Currency:  domain.Currency(d.Currency),
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	clientOID, err := primitive.ObjectIDFromHex(sub.ClientID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	now := time.Now().UTC()
	doc := subscriptionDocument{
		ClientID:  clientOID,
		PlanType:  string(sub.PlanType),
		PlanName:  sub.PlanName,
		StartDate: sub.StartDate,
		EndDate:   sub.EndDate,
		Status:    string(sub.Status),
		Price:     sub.Price,
		Currency:  string(sub.Currency),
		Notes:     sub.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert subscription: %w", err)
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *SubscriptionRepository) FindByID(ctx context.Context, id string) (*domain.Subscription, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var doc subscriptionDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("find subscription: %w", err)
	}
	return doc.toDomain(), nil
}

// FindByClient returns a client's subscriptions, most recent first.
func (r *SubscriptionRepository) FindByClient(ctx context.Context, clientID string) ([]domain.Subscription, error) {
	oid, err := primitive.ObjectIDFromHex(clientID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"clientId": oid}, opts)
	if err != nil {
		return nil, fmt.Errorf("find subscriptions: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeSubscriptions(ctx, cursor)
}

// FindByStatuses returns all subscriptions in any of the given states. Used
// by the outstanding-balance scan.
func (r *SubscriptionRepository) FindByStatuses(ctx context.Context, statuses []domain.SubscriptionStatus) ([]domain.Subscription, error) {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"status": bson.M{"$in": values}})
	if err != nil {
		return nil, fmt.Errorf("find subscriptions by status: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeSubscriptions(ctx, cursor)
}

func (r *SubscriptionRepository) Update(ctx context.Context, id string, update ports.SubscriptionUpdate) (*domain.Subscription, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.PlanType != nil {
		set["planType"] = string(*update.PlanType)
	}
	if update.PlanName != nil {
		set["planName"] = *update.PlanName
	}
	if update.StartDate != nil {
		set["startDate"] = *update.StartDate
	}
	if update.EndDate != nil {
		set["endDate"] = *update.EndDate
	}
	if update.Status != nil {
		set["status"] = string(*update.Status)
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Currency != nil {
		set["currency"] = string(*update.Currency)
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc subscriptionDocument
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("update subscription: %w", err)
	}
	return doc.toDomain(), nil
}

func decodeSubscriptions(ctx context.Context, cursor *mongo.Cursor) ([]domain.Subscription, error) {
	var docs []subscriptionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode subscriptions: %w", err)
	}

	subs := make([]domain.Subscription, 0, len(docs))
	for i := range docs {
		subs = append(subs, *docs[i].toDomain())
	}
	return subs, nil
}
