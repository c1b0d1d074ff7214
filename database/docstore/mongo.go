package docstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStore implements Store on MongoDB. Documents keep their identifier in _id.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore uses the named database of a connected client.
func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{client: client, db: client.Database(database)}
}

func (s *MongoStore) List(ctx context.Context, collection string) ([]Document, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, wrap("list", collection, "", err)
	}
	defer cursor.Close(ctx)

	var docs []Document
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, wrap("list", collection, "", fmt.Errorf("failed to decode document: %w", err))
		}
		docs = append(docs, fromBSON(raw))
	}
	if err := cursor.Err(); err != nil {
		return nil, wrap("list", collection, "", err)
	}
	return docs, nil
}

func (s *MongoStore) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	id := uuid.New().String()
	doc := bson.M{"_id": id}
	for key, value := range fields {
		doc[key] = value
	}
	if _, err := s.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return "", wrap("create", collection, "", err)
	}
	return id, nil
}

func (s *MongoStore) Patch(ctx context.Context, collection, id string, fields map[string]any) error {
	result, err := s.db.Collection(collection).UpdateOne(ctx, idFilter(id), bson.M{"$set": bson.M(fields)})
	if err != nil {
		return wrap("patch", collection, id, err)
	}
	if result.MatchedCount == 0 {
		return wrap("patch", collection, id, ErrNotFound)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.db.Collection(collection).DeleteOne(ctx, idFilter(id)); err != nil {
		return wrap("delete", collection, id, err)
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// fromBSON converts a decoded document into plain Go values.
func fromBSON(raw bson.M) Document {
	doc := Document{Fields: make(map[string]any, len(raw))}
	for key, value := range raw {
		if key == "_id" {
			doc.ID = idString(value)
			continue
		}
		doc.Fields[key] = plain(value)
	}
	return doc
}

// idFilter matches documents created here (string ids) as well as documents
// inserted by other writers with an ObjectID.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{id, oid}}}
	}
	return bson.M{"_id": id}
}

func idString(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case primitive.ObjectID:
		return id.Hex()
	default:
		return fmt.Sprint(id)
	}
}

func plain(v any) any {
	switch val := v.(type) {
	case bson.M:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = plain(inner)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(val))
		for _, e := range val {
			out[e.Key] = plain(e.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = plain(inner)
		}
		return out
	default:
		return val
	}
}
