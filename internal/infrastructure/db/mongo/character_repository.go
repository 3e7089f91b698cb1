package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/charactervault/character-api/internal/core/domain"
)

const charactersCollection = "characters"

// CharacterRepository persists character documents as opaque JSON text. The
// payload is a single string field; this layer never parses or validates it.
type CharacterRepository struct {
	coll *mongo.Collection
}

func NewCharacterRepository(db *mongo.Database) *CharacterRepository {
	return &CharacterRepository{coll: db.Collection(charactersCollection)}
}

type mongoCharacter struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Data string             `bson:"data"`
}

func (r *CharacterRepository) Insert(ctx context.Context, data string) (*domain.CharacterRecord, error) {
	res, err := r.coll.InsertOne(ctx, mongoCharacter{Data: data})
	if err != nil {
		return nil, fmt.Errorf("insert character: %w", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	return &domain.CharacterRecord{ID: oid.Hex(), Data: data}, nil
}

func (r *CharacterRepository) FindAll(ctx context.Context) ([]*domain.CharacterRecord, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find characters: %w", err)
	}
	defer cur.Close(ctx)

	var records []*domain.CharacterRecord
	for cur.Next(ctx) {
		var mc mongoCharacter
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode character: %w", err)
		}
		records = append(records, &domain.CharacterRecord{ID: mc.ID.Hex(), Data: mc.Data})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate characters: %w", err)
	}
	return records, nil
}

func (r *CharacterRepository) FindByID(ctx context.Context, id string) (*domain.CharacterRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCharacterNotFound
	}

	var mc mongoCharacter
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, fmt.Errorf("find character: %w", err)
	}
	return &domain.CharacterRecord{ID: mc.ID.Hex(), Data: mc.Data}, nil
}

func (r *CharacterRepository) Replace(ctx context.Context, id, data string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCharacterNotFound
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"data": data}})
	if err != nil {
		return fmt.Errorf("replace character: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

// Delete is idempotent: an unknown or malformed id is not an error.
func (r *CharacterRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete character: %w", err)
	}
	return nil
}
