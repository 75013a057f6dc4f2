package catalog

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"marketplace-api/internal/models"
)

const (
	findTimeout    = 3 * time.Second
	defaultTimeout = 5 * time.Second
	queryTimeout   = 10 * time.Second
)

// MongoStore es el backend primario del catálogo
type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{collection: collection}
}

// bsonFilter traduce el Filter neutral al filtro de Mongo. La regex de
// búsqueda va escapada para que sea contención literal de substring,
// igual que Filter.Match.
func bsonFilter(f Filter) bson.M {
	filter := bson.M{}

	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.SellerID != nil {
		filter["seller_id"] = *f.SellerID
	}
	if f.Search != "" {
		pattern := regexp.QuoteMeta(f.Search)
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": pattern, "$options": "i"}},
			{"description": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}

	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	return filter
}

// bsonSort arma el ordenamiento con _id como desempate: los ObjectID
// crecen con la creación, así la paginación queda estable entre
// consultas repetidas.
func bsonSort(pg Page) bson.D {
	field := "created_at"
	switch pg.SortField {
	case SortPrice:
		field = "price"
	case SortName:
		field = "name"
	case SortViews:
		field = "views"
	}

	order := -1
	if pg.Ascending {
		order = 1
	}

	// El desempate por _id va siempre ascendente: es el orden de
	// inserción, igual que el sort estable del snapshot.
	return bson.D{{Key: field, Value: order}, {Key: "_id", Value: 1}}
}

// List ejecuta filtro + orden + paginado contra la colección, contando
// el total en paralelo
func (s *MongoStore) List(ctx context.Context, f Filter, pg Page) (*PagedResult, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bsonFilter(f)

	totalCh := make(chan int64, 1)
	errCh := make(chan error, 1)

	go func() {
		total, err := s.collection.CountDocuments(ctx, filter)
		if err != nil {
			errCh <- err
			return
		}
		totalCh <- total
	}()

	opts := options.Find().
		SetSkip(int64((pg.Number - 1) * pg.Size)).
		SetLimit(int64(pg.Size)).
		SetSort(bsonSort(pg))

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	var total int64
	select {
	case total = <-totalCh:
	case err := <-errCh:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return NewPagedResult(products, total, pg), nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, findTimeout)
	defer cancel()

	var product models.Product
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *MongoStore) Create(ctx context.Context, p *models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	p.ID = primitive.NewObjectID().Hex()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := s.collection.InsertOne(ctx, p)
	return err
}

// Update aplica un $set con solo los campos presentes del patch y
// devuelve el documento resultante. views no aparece nunca en el $set,
// así un update concurrente no pisa al contador.
func (s *MongoStore) Update(ctx context.Context, id string, u *models.ProductUpdate) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Images != nil {
		set["images"] = u.Images
	}
	if u.Stock != nil {
		set["stock"] = *u.Stock
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product models.Product
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementViews usa $inc: incremento atómico en el storage, sin
// read-modify-write que pueda perder actualizaciones concurrentes.
func (s *MongoStore) IncrementViews(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
