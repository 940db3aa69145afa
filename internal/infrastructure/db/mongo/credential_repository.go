package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cjalex1313/trex-gym/internal/core/domain"
)

const (
	adminsCollection  = "admins"
	clientsCollection = "clients"
)

// CredentialRepository resolves login credentials for both roles. Admins live
// in their own collection with a password hash; clients reuse the member
// collection with a PIN hash.
type CredentialRepository struct {
	admins  *mongo.Collection
	clients *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{
		admins:  db.Collection(adminsCollection),
		clients: db.Collection(clientsCollection),
	}
}

type adminDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"passwordHash"`
}

type clientCredentialDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Email   string             `bson:"email"`
	PinHash string             `bson:"pinHash"`
}

// FindByEmail looks up a credential in the collection matching role.
func (r *CredentialRepository) FindByEmail(ctx context.Context, role, email string) (*domain.Credential, error) {
	filter := bson.M{"email": strings.ToLower(email)}

	switch role {
	case domain.RoleAdmin:
		var doc adminDocument
		if err := r.admins.FindOne(ctx, filter).Decode(&doc); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, domain.ErrCredentialNotFound
			}
			return nil, fmt.Errorf("find admin credential: %w", err)
		}
		return &domain.Credential{
			ID:         doc.ID.Hex(),
			Email:      doc.Email,
			SecretHash: doc.PasswordHash,
			Role:       domain.RoleAdmin,
		}, nil

	case domain.RoleClient:
		var doc clientCredentialDocument
		if err := r.clients.FindOne(ctx, filter).Decode(&doc); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, domain.ErrCredentialNotFound
			}
			return nil, fmt.Errorf("find client credential: %w", err)
		}
		return &domain.Credential{
			ID:         doc.ID.Hex(),
			Email:      doc.Email,
			SecretHash: doc.PinHash,
			Role:       domain.RoleClient,
		}, nil

	default:
		return nil, domain.ErrCredentialNotFound
	}
}
