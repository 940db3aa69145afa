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

const paymentsCollection = "payments"

// PaymentRepository persists payments.
type PaymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{collection: db.Collection(paymentsCollection)}
}

type paymentDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	SubscriptionID primitive.ObjectID `bson:"subscriptionId"`
	ClientID       primitive.ObjectID `bson:"clientId"`
	Amount         float64            `bson:"amount"`
	PaymentDate    time.Time          `bson:"paymentDate"`
	Method         string             `bson:"method"`
	Notes          string             `bson:"notes,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

func (d *paymentDocument) toDomain() *domain.Payment {
	return &domain.Payment{
		ID:             d.ID.Hex(),
		SubscriptionID: d.SubscriptionID.Hex(),
		ClientID:       d.ClientID.Hex(),
		Amount:         d.Amount,
		PaymentDate:    d.PaymentDate,
		Method:         domain.PaymentMethod(d.Method),
		Notes:          d.Notes,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	subOID, err := primitive.ObjectIDFromHex(payment.SubscriptionID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	clientOID, err := primitive.ObjectIDFromHex(payment.ClientID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	now := time.Now().UTC()
	doc := paymentDocument{
		SubscriptionID: subOID,
		ClientID:       clientOID,
		Amount:         payment.Amount,
		PaymentDate:    payment.PaymentDate,
		Method:         string(payment.Method),
		Notes:          payment.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// FindBySubscription returns a subscription's payments, newest first.
func (r *PaymentRepository) FindBySubscription(ctx context.Context, subscriptionID string) ([]domain.Payment, error) {
	oid, err := primitive.ObjectIDFromHex(subscriptionID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	return r.findSorted(ctx, bson.M{"subscriptionId": oid})
}

// FindByClient returns all of a client's payments across subscriptions,
// newest first.
func (r *PaymentRepository) FindByClient(ctx context.Context, clientID string) ([]domain.Payment, error) {
	oid, err := primitive.ObjectIDFromHex(clientID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	return r.findSorted(ctx, bson.M{"clientId": oid})
}

// FindBySubscriptionIDs returns every payment belonging to any of the given
// subscriptions. Malformed ids are skipped.
func (r *PaymentRepository) FindBySubscriptionIDs(ctx context.Context, subscriptionIDs []string) ([]domain.Payment, error) {
	oids := make([]primitive.ObjectID, 0, len(subscriptionIDs))
	for _, id := range subscriptionIDs {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return nil, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"subscriptionId": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find payments by subscriptions: %w", err)
	}
	defer cursor.Close(ctx)

	return decodePayments(ctx, cursor)
}

func (r *PaymentRepository) Update(ctx context.Context, id string, update ports.PaymentUpdate) (*domain.Payment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Amount != nil {
		set["amount"] = *update.Amount
	}
	if update.PaymentDate != nil {
		set["paymentDate"] = *update.PaymentDate
	}
	if update.Method != nil {
		set["method"] = string(*update.Method)
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc paymentDocument
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("update payment: %w", err)
	}
	return doc.toDomain(), nil
}

// Delete removes a payment permanently.
func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

func (r *PaymentRepository) findSorted(ctx context.Context, filter bson.M) ([]domain.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "paymentDate", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find payments: %w", err)
	}
	defer cursor.Close(ctx)

	return decodePayments(ctx, cursor)
}

func decodePayments(ctx context.Context, cursor *mongo.Cursor) ([]domain.Payment, error) {
	var docs []paymentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}

	payments := make([]domain.Payment, 0, len(docs))
	for i := range docs {
		payments = append(payments, *docs[i].toDomain())
	}
	return payments, nil
}
